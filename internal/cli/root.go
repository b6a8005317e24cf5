package cli

import (
	"time"

	"github.com/ostrella/clockwise/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Workers    service.WorkerService
	Schedules  service.ScheduleService
	Attendance service.AttendanceService
	Reports    service.ReportService

	// Display is the timezone shifts and reports are rendered in.
	Display *time.Location
	// Refresh is the interval for live report refreshes.
	Refresh time.Duration
}

// NewRootCmd creates the top-level "clockwise" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "clockwise",
		Short: "Shift tracking and attendance reports",
	}

	root.AddCommand(
		newWorkerCmd(app),
		newScheduleCmd(app),
		newClockCmd(app),
		newReportCmd(app),
		newWatchCmd(app),
	)

	return root
}
