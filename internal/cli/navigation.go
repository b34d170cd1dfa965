package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/faizmokh/stint/internal/ui"
)

func newDashCommand(ctx context.Context, a *app) *cobra.Command {
	var (
		dateFlag string
		noWatch  bool
	)

	cmd := &cobra.Command{
		Use:   "dash",
		Short: "Browse days and their hours in an interactive dashboard.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.dashOptions(dateFlag)
			if err != nil {
				return err
			}

			watchCtx, cancel := context.WithCancel(ctx)
			defer cancel()
			if !noWatch {
				if _, err := a.manager.EnsureLogFile(); err != nil {
					return err
				}
				changes, err := ui.Watch(watchCtx, a.manager.LogPath())
				if err != nil {
					a.logger(cmd).Warn("Live reload disabled: %v", err)
				} else {
					opts.Changes = changes
				}
			}

			m := ui.NewModel(ctx, a.manager, opts)
			if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
				return fmt.Errorf("run TUI: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Day to open in YYYY-MM-DD (default: today)")
	cmd.Flags().BoolVar(&noWatch, "no-watch", false, "Do not reload when the log file changes")

	return cmd
}

func (a *app) dashOptions(dateFlag string) (ui.Options, error) {
	ref, _, err := resolveReference(a.clock(), dateFlag)
	if err != nil {
		return ui.Options{}, err
	}
	return ui.Options{
		Date:          ref,
		LunchMinutes:  a.lunchMinutes(),
		PauseCategory: a.config.Category(),
		Now:           a.now,
	}, nil
}
