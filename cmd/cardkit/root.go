package main

import (
	"github.com/spf13/cobra"

	"github.com/cardkit/cardkit/internal/logger"
)

type rootFlags struct {
	verbose bool
	theme   string
}

func (f *rootFlags) newLogger() (*logger.Logger, error) {
	level := "info"
	if f.verbose {
		level = "debug"
	}
	return logger.New(logger.Options{Level: level, HumanReadable: true})
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "cardkit",
		Short:         "cardkit renders themed card components in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, show the built-in gallery.
			return runGallery(cmd, flags, "")
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.theme, "theme", "", "Theme to render with (light|dark)")

	cmd.AddCommand(newGalleryCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
