package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/ajanata/notepad/internal/host"
	"github.com/ajanata/notepad/internal/host/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Show the display in the terminal",
	Long: `Draws the display with block characters. The terminal needs to be at least 130 columns wide.

Terminals do not report key releases, so keys tap their button. Use the hold keys
(shift+up, shift+down, L, H) to press and later release a button for long presses.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		// log lines would tear the alternate screen
		sim, err := host.NewSim(cfg, host.NewDriver(), host.NewLogger(io.Discard, false))
		if err != nil {
			return err
		}
		return tui.Run(sim)
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
