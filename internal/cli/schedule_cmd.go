package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/ostrella/clockwise/internal/cli/formatter"
	"github.com/ostrella/clockwise/internal/domain"
	"github.com/ostrella/clockwise/internal/tzconv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// daysFlag is a pflag.Value that parses a comma-separated weekday list.
type daysFlag struct {
	days []domain.Weekday
}

var _ pflag.Value = (*daysFlag)(nil)

func (f *daysFlag) String() string { return formatDays(f.days) }
func (f *daysFlag) Type() string   { return "days" }

func (f *daysFlag) Set(s string) error {
	days, err := parseDays(s)
	if err != nil {
		return err
	}
	f.days = days
	return nil
}

func newScheduleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Manage recurring shift schedules",
	}

	cmd.AddCommand(
		newScheduleAddCmd(app),
		newScheduleListCmd(app),
		newScheduleRemoveCmd(app),
	)

	return cmd
}

// parseDays turns "mon,tue,fri" or "1,2,5" into weekdays.
func parseDays(s string) ([]domain.Weekday, error) {
	names := map[string]domain.Weekday{
		"mon": domain.Monday, "tue": domain.Tuesday, "wed": domain.Wednesday,
		"thu": domain.Thursday, "fri": domain.Friday, "sat": domain.Saturday,
		"sun": domain.Sunday,
		"1": domain.Monday, "2": domain.Tuesday, "3": domain.Wednesday,
		"4": domain.Thursday, "5": domain.Friday, "6": domain.Saturday,
		"7": domain.Sunday,
	}
	var days []domain.Weekday
	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		d, ok := names[part]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", part)
		}
		days = append(days, d)
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("at least one weekday is required")
	}
	return days, nil
}

func validateClock(s string) error {
	if _, err := tzconv.Parse(s); err != nil {
		return fmt.Errorf("expected HH:MM or HH:MM AM/PM")
	}
	return nil
}

func newScheduleAddCmd(app *App) *cobra.Command {
	var workerArg, start, end string
	var days daysFlag
	var interactive bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a recurring shift schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if interactive {
				if err := runScheduleForm(ctx, app, &workerArg, &start, &end, &days); err != nil {
					return err
				}
			}
			if len(days.days) == 0 {
				return fmt.Errorf("at least one weekday is required")
			}

			workerID, err := resolveWorkerID(ctx, app, workerArg)
			if err != nil {
				return err
			}

			s, err := app.Schedules.Create(ctx, workerID, start, end, days.days)
			if err != nil {
				return err
			}
			fmt.Printf("Added schedule %s-%s on %s\n", s.StartTime, s.EndTime, formatDays(s.Days))
			return nil
		},
	}

	cmd.Flags().StringVar(&workerArg, "worker", "", "Worker name or ID")
	cmd.Flags().StringVar(&start, "start", "", "Shift start (HH:MM, 24h or AM/PM)")
	cmd.Flags().StringVar(&end, "end", "", "Shift end (HH:MM, may be past midnight)")
	cmd.Flags().Var(&days, "days", "Weekdays, e.g. mon,tue,wed or 1,2,3")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill in fields interactively")
	return cmd
}

// runScheduleForm collects schedule fields through a themed huh form.
func runScheduleForm(ctx context.Context, app *App, worker, start, end *string, days *daysFlag) error {
	workers, err := app.Workers.List(ctx, false)
	if err != nil {
		return err
	}
	if len(workers) == 0 {
		return fmt.Errorf("no workers registered")
	}

	options := make([]huh.Option[string], 0, len(workers))
	for _, w := range workers {
		options = append(options, huh.NewOption(w.Name, w.ID))
	}

	var selectedDays []string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Worker").
				Options(options...).
				Value(worker),
			huh.NewMultiSelect[string]().
				Title("Days").
				Options(
					huh.NewOption("Monday", "mon"),
					huh.NewOption("Tuesday", "tue"),
					huh.NewOption("Wednesday", "wed"),
					huh.NewOption("Thursday", "thu"),
					huh.NewOption("Friday", "fri"),
					huh.NewOption("Saturday", "sat"),
					huh.NewOption("Sunday", "sun"),
				).
				Value(&selectedDays),
			huh.NewInput().
				Title("Start time").
				Placeholder("09:00").
				Value(start).
				Validate(validateClock),
			huh.NewInput().
				Title("End time").
				Placeholder("17:00").
				Value(end).
				Validate(validateClock),
		),
	).WithTheme(clockwiseHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}
	return days.Set(strings.Join(selectedDays, ","))
}

func newScheduleListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <worker>",
		Short: "List a worker's schedules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			workerID, err := resolveWorkerID(ctx, app, args[0])
			if err != nil {
				return err
			}
			schedules, err := app.Schedules.ListByWorker(ctx, workerID)
			if err != nil {
				return err
			}
			if len(schedules) == 0 {
				fmt.Println("No schedules.")
				return nil
			}

			rows := make([][]string, 0, len(schedules))
			for _, s := range schedules {
				rows = append(rows, []string{
					shortID(s.ID),
					formatDays(s.Days),
					fmt.Sprintf("%s - %s", s.StartTime, s.EndTime),
				})
			}
			fmt.Print(formatter.RenderTable([]string{"ID", "Days", "Shift"}, rows))
			return nil
		},
	}
	return cmd
}

func newScheduleRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <schedule-id>",
		Short: "Remove a schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Schedules.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Schedule removed.")
			return nil
		},
	}
}

func formatDays(days []domain.Weekday) string {
	parts := make([]string, 0, len(days))
	for _, d := range days {
		parts = append(parts, d.Abbrev())
	}
	return strings.Join(parts, ",")
}
