package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/ostrella/clockwise/internal/cli/formatter"
	"github.com/spf13/cobra"
)

// resolveWorkerID matches a name (case-insensitive), a full UUID, or a
// UUID prefix against the active worker list.
func resolveWorkerID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("worker is required")
	}

	workers, err := app.Workers.List(ctx, true)
	if err != nil {
		return "", err
	}

	for _, w := range workers {
		if strings.EqualFold(w.Name, input) {
			return w.ID, nil
		}
	}
	for _, w := range workers {
		if w.ID == input {
			return w.ID, nil
		}
	}

	var matches []string
	for _, w := range workers {
		if strings.HasPrefix(w.ID, input) {
			matches = append(matches, w.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("worker not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("worker %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newWorkerCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Manage workers",
	}

	cmd.AddCommand(
		newWorkerAddCmd(app),
		newWorkerListCmd(app),
		newWorkerArchiveCmd(app),
	)

	return cmd
}

func newWorkerAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Register a new worker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := app.Workers.Create(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Created worker %s (%s)\n", w.Name, shortID(w.ID))
			return nil
		},
	}
}

func newWorkerListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List workers",
		RunE: func(cmd *cobra.Command, args []string) error {
			workers, err := app.Workers.List(context.Background(), all)
			if err != nil {
				return err
			}
			if len(workers) == 0 {
				fmt.Println("No workers.")
				return nil
			}

			rows := make([][]string, 0, len(workers))
			for _, w := range workers {
				status := "active"
				if w.Archived {
					status = formatter.Dim("archived")
				}
				rows = append(rows, []string{shortID(w.ID), w.Name, status})
			}
			fmt.Print(formatter.RenderTable([]string{"ID", "Name", "Status"}, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include archived workers")
	return cmd
}

func newWorkerArchiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "archive <worker>",
		Short: "Archive a worker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveWorkerID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Workers.Archive(ctx, id); err != nil {
				return err
			}
			fmt.Println("Worker archived.")
			return nil
		},
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
