package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/cardkit/cardkit/internal/tui/preview"
)

func newPreviewCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Interactively preview a card",
		Long:  "Walk the card token space with the keyboard: cycle variant, size and padding, toggle hover and focus, flip the theme.",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := flags.newLogger()
			if err != nil {
				return err
			}

			log.Debug("starting preview")
			program := tea.NewProgram(preview.NewModel(), tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				log.Error(err, "preview terminated")
				return err
			}
			return nil
		},
	}
}
