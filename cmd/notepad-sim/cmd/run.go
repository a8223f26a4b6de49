package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ajanata/notepad/internal/host"
	"github.com/ajanata/notepad/internal/host/script"
)

var (
	startTime string
	trace     bool
)

var runCmd = &cobra.Command{
	Use:   "run <script>",
	Short: "Play a button script on a simulated clock",
	Long: `Parses a script of button presses, waits and expectations and plays it as fast as
possible on a simulated clock. Exits non-zero on the first failed expectation.

Examples:
  notepad-sim run internal/host/script/testdata/unlock.txt
  notepad-sim run --trace --start 2024-05-01T23:59:30Z midnight.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&startTime, "start", "", "RFC 3339 start time of the simulated clock (default now)")
	runCmd.Flags().BoolVarP(&trace, "trace", "t", false, "print the screen stack after every step")
}

func runScript(cmd *cobra.Command, args []string) error {
	s, err := script.ParseFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to parse script: %w", err)
	}

	start := time.Now()
	if startTime != "" {
		start, err = time.Parse(time.RFC3339, startTime)
		if err != nil {
			return fmt.Errorf("bad start time: %w", err)
		}
	}

	sim, err := newSim(cmd, host.NewSimulatedDriver(start))
	if err != nil {
		return err
	}

	r := script.NewRunner(sim)
	out := cmd.OutOrStdout()
	if trace {
		r.Trace = func(step *script.Step, screens []string) {
			fmt.Fprintf(out, "%-6s %-24s %s\n", step.Pos, step, strings.Join(screens, " > "))
		}
	}
	if err = r.Run(s); err != nil {
		return err
	}
	fmt.Fprintf(out, "ok: %d steps, %d frames drawn\n", len(s.Steps), sim.Display.Frames())
	return nil
}
