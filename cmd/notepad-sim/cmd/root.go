package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajanata/notepad"
	"github.com/ajanata/notepad/internal/host"
)

var (
	// Global flags
	configPath string
	verbose    bool
	flip       bool
)

var rootCmd = &cobra.Command{
	Use:   "notepad-sim",
	Short: "Desktop simulator for the notepad",
	Long: `Runs the notepad on a simulated 128x64 display.

Examples:
  notepad-sim window                       # Show the display in a window
  notepad-sim tui                          # Show the display in the terminal
  notepad-sim run testdata/unlock.txt      # Play a script on a simulated clock
  notepad-sim notes                        # List the built in notes`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default "+host.ConfigPath()+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().BoolVar(&flip, "flip", false, "rotate the display by 180 degrees")
}

// loadConfig reads the config file and applies the flags over it.
func loadConfig(cmd *cobra.Command) (notepad.Config, error) {
	cfg, err := host.LoadConfig(configPath)
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("flip") {
		cfg.Flip = flip
	}
	return cfg, nil
}

func newSim(cmd *cobra.Command, drv *host.Driver) (*host.Sim, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return host.NewSim(cfg, drv, host.NewLogger(cmd.ErrOrStderr(), verbose))
}
