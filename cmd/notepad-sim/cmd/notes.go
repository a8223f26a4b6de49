package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ajanata/notepad/internal/catalog"
)

var previewLen int

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "List the built in notes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		notes, err := catalog.Builtin()
		if err != nil {
			return fmt.Errorf("failed to load notes: %w", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "#\tTITLE\tBYTES\tPREVIEW")
		for i := 0; i < notes.Len(); i++ {
			n := notes.Note(i)
			fmt.Fprintf(w, "%d\t%s\t%d\t%q\n", n.Index, n.Title, n.Length, notes.Preview(n.Resource, previewLen))
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(notesCmd)

	notesCmd.Flags().IntVarP(&previewLen, "preview", "p", 20, "preview length in bytes")
}
