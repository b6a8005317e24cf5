package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ostrella/clockwise/internal/cli/formatter"
	"github.com/ostrella/clockwise/internal/domain"
	"github.com/ostrella/clockwise/internal/punch"
	"github.com/ostrella/clockwise/internal/service"
	"github.com/spf13/cobra"
)

func formatDuration(e *domain.Entry) string {
	return punch.FormatElapsed(e.Duration())
}

func newClockCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clock",
		Short: "Clock in and out of shifts",
	}

	cmd.AddCommand(
		newClockInCmd(app),
		newClockOutCmd(app),
		newClockCancelCmd(app),
		newClockStatusCmd(app),
		newClockHistoryCmd(app),
	)

	return cmd
}

func newClockInCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "in <worker>",
		Short: "Clock in for today's shift",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			workerID, err := resolveWorkerID(ctx, app, args[0])
			if err != nil {
				return err
			}

			entry, err := app.Attendance.ClockIn(ctx, workerID, project)
			if errors.Is(err, service.ErrAlreadyClockedIn) {
				return fmt.Errorf("already clocked in")
			}
			if err != nil {
				return err
			}

			fmt.Printf("Clocked in at %s\n",
				formatter.Bold(entry.StartTime.In(app.Display).Format("15:04:05")))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project to book the entry against")
	return cmd
}

func newClockOutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "out <worker>",
		Short: "Clock out and close the open entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			workerID, err := resolveWorkerID(ctx, app, args[0])
			if err != nil {
				return err
			}

			entry, err := app.Attendance.ClockOut(ctx, workerID)
			if errors.Is(err, service.ErrNotClockedIn) {
				return fmt.Errorf("not clocked in")
			}
			if err != nil {
				return err
			}

			fmt.Printf("Clocked out after %s\n", formatter.Bold(formatDuration(entry)))
			return nil
		},
	}
}

func newClockCancelCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <worker>",
		Short: "Discard the open entry without recording time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			workerID, err := resolveWorkerID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Attendance.Cancel(ctx, workerID); err != nil {
				if errors.Is(err, service.ErrNotClockedIn) {
					return fmt.Errorf("not clocked in")
				}
				return err
			}
			fmt.Println("Entry discarded.")
			return nil
		},
	}
}

func newClockStatusCmd(app *App) *cobra.Command {
	var follow bool

	cmd := &cobra.Command{
		Use:   "status <worker>",
		Short: "Show a worker's shift window and clock state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			workerID, err := resolveWorkerID(ctx, app, args[0])
			if err != nil {
				return err
			}
			st, err := app.Attendance.Status(ctx, workerID)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatStatus(st, app.Display))

			if follow && st.OpenEntry != nil {
				followElapsed(ctx, st)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "Keep printing the elapsed time")
	return cmd
}

// followElapsed streams the live elapsed clock for an open entry until
// interrupted. The one-shot reminder is handled by Status, so the local
// controller starts with the flag already set.
func followElapsed(ctx context.Context, st *service.AttendanceStatus) {
	ctrl := punch.NewController(st.Window, true, nil)
	ctrl.Resume(*st.OpenEntry)

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	punch.RunTicker(ctx, ctrl, time.Second, func(tick punch.TickResult) {
		fmt.Printf("\r%s", formatter.Bold(tick.Elapsed))
	})
	fmt.Println()
}

func newClockHistoryCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "history <worker>",
		Short: "List recent closed entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			workerID, err := resolveWorkerID(ctx, app, args[0])
			if err != nil {
				return err
			}

			since := time.Now().AddDate(0, 0, -days)
			regular, suspicious, err := app.Attendance.History(ctx, workerID, since)
			if err != nil {
				return err
			}
			if len(regular) == 0 && len(suspicious) == 0 {
				fmt.Println("No entries.")
				return nil
			}

			rows := make([][]string, 0, len(regular)+len(suspicious))
			for _, e := range regular {
				rows = append(rows, historyRow(e, app.Display, ""))
			}
			for _, e := range suspicious {
				rows = append(rows, historyRow(e, app.Display, formatter.StyleYellow.Render("suspicious")))
			}
			fmt.Print(formatter.RenderTable([]string{"Date", "Start", "Duration", "Flag"}, rows))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 14, "How many days back to list")
	return cmd
}

func historyRow(e domain.Entry, display *time.Location, flag string) []string {
	local := e.StartTime.In(display)
	return []string{
		local.Format("2006-01-02"),
		local.Format("15:04:05"),
		formatDuration(&e),
		flag,
	}
}
