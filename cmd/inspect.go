package cmd

import (
	"fmt"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/KaramelBytes/datagen-cli/internal/analysis"
	"github.com/KaramelBytes/datagen-cli/internal/sheet"
	"github.com/spf13/cobra"
)

var (
	inspectSheet string
	inspectLimit int
	inspectStats bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Print the first rows of a generated xlsx or csv file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := sheet.ReadFile(args[0], inspectSheet)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(rows) == 0 {
			fmt.Fprintln(out, "(empty)")
			return nil
		}
		shown := rows
		if inspectLimit >= 0 && len(rows) > inspectLimit+1 {
			shown = rows[:inspectLimit+1]
		}
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		for _, r := range shown {
			fmt.Fprintln(tw, strings.Join(r, "\t"))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		if hidden := len(rows) - len(shown); hidden > 0 {
			fmt.Fprintf(out, "... %d more rows\n", hidden)
		}
		if inspectStats {
			fmt.Fprintln(out)
			fmt.Fprint(out, analysis.Profile(filepath.Base(args[0]), rows).Markdown())
		}
		fmt.Fprintf(out, "✓ %d data rows, %d columns\n", len(rows)-1, len(rows[0]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVar(&inspectSheet, "sheet", "", "worksheet to read for xlsx files (default: first sheet)")
	inspectCmd.Flags().IntVarP(&inspectLimit, "limit", "n", 10, "number of data rows to print (-1 for all)")
	inspectCmd.Flags().BoolVar(&inspectStats, "stats", false, "append a per-column profile")
}
