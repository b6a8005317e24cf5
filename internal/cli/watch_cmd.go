package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func newWatchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <worker>",
		Short: "Live shift dashboard with a running clock",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				return fmt.Errorf("watch requires an interactive terminal")
			}

			workerID, err := resolveWorkerID(context.Background(), app, args[0])
			if err != nil {
				return err
			}

			p := tea.NewProgram(newWatchModel(app, workerID), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}
}
