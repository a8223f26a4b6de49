package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ajanata/notepad/internal/host"
	"github.com/ajanata/notepad/internal/host/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Show the display in a desktop window",
	Long: `Opens a window showing the display at four times its size.

Keys:
  up, down         Up and Down buttons
  enter, space     Select
  escape, bksp     Back
  q                quit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		sim, err := newSim(cmd, host.NewDriver())
		if err != nil {
			return err
		}
		return window.Run(sim, "notepad")
	},
}

func init() {
	rootCmd.AddCommand(windowCmd)
}
