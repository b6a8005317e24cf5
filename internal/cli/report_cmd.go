package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ostrella/clockwise/internal/aggregate"
	"github.com/ostrella/clockwise/internal/cli/formatter"
	"github.com/ostrella/clockwise/internal/service"
	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Worked vs scheduled hour reports",
	}

	cmd.AddCommand(
		newReportWeekCmd(app),
		newReportYTDCmd(app),
		newReportTeamCmd(app),
	)

	return cmd
}

func newReportWeekCmd(app *App) *cobra.Command {
	var follow bool

	cmd := &cobra.Command{
		Use:   "week <worker>",
		Short: "This week's hours, Monday through Friday",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			workerID, err := resolveWorkerID(ctx, app, args[0])
			if err != nil {
				return err
			}

			compute := func(ctx context.Context) (*aggregate.Result, error) {
				return app.Reports.WeeklyHours(ctx, workerID)
			}
			return renderReport(ctx, app, "This week", compute, follow)
		},
	}

	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "Refresh continuously")
	return cmd
}

func newReportYTDCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ytd <worker>",
		Short: "Year-to-date hours, Monday through Sunday",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			workerID, err := resolveWorkerID(ctx, app, args[0])
			if err != nil {
				return err
			}
			r, err := app.Reports.YearToDate(ctx, workerID)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatHoursReport("Year to date", r))
			return nil
		},
	}
}

func newReportTeamCmd(app *App) *cobra.Command {
	var follow bool

	cmd := &cobra.Command{
		Use:   "team",
		Short: "This week's hours across every active worker",
		RunE: func(cmd *cobra.Command, args []string) error {
			compute := func(ctx context.Context) (*aggregate.Result, error) {
				return app.Reports.TeamWeeklyHours(ctx)
			}
			return renderReport(context.Background(), app, "Team, this week", compute, follow)
		},
	}

	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "Refresh continuously")
	return cmd
}

// renderReport prints once, or keeps reprinting on the refresh interval
// until interrupted when follow is set.
func renderReport(
	ctx context.Context,
	app *App,
	title string,
	compute func(ctx context.Context) (*aggregate.Result, error),
	follow bool,
) error {
	if !follow {
		r, err := compute(ctx)
		if err != nil {
			return err
		}
		fmt.Print(formatter.FormatHoursReport(title, r))
		return nil
	}

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	refresher := service.NewRefresher(app.Refresh, compute, nil, nil)
	refresher.Run(ctx, func(snap service.Snapshot) {
		if snap.Err != nil {
			fmt.Fprintf(os.Stderr, "refresh failed: %v\n", snap.Err)
			return
		}
		fmt.Print("\033[H\033[2J")
		fmt.Print(formatter.FormatHoursReport(title, snap.Result))
		fmt.Println(formatter.Dim(fmt.Sprintf("updated %s, ^C to stop", snap.At.In(app.Display).Format("15:04:05"))))
	})
	return nil
}
