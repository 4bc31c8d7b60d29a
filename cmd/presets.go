package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/KaramelBytes/datagen-cli/internal/presets"
	"github.com/spf13/cobra"
)

var presetsCmd = &cobra.Command{
	Use:   "presets [name]",
	Short: "List column presets, or show the columns of one preset",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if len(args) == 0 {
			for _, name := range presets.Names() {
				summary, _ := presets.Summary(name)
				marker := " "
				if name == presets.Default {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %s: %s\n", marker, name, summary)
			}
			return nil
		}
		cols, err := presets.Columns(args[0])
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "#\tCOLUMN\tKIND\tDETAIL")
		for i, c := range cols {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i+1, c.Header(), c.Kind(), c.Describe())
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}
