package cmd

import (
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"strings"

	"github.com/KaramelBytes/datagen-cli/internal/grid"
	"github.com/KaramelBytes/datagen-cli/internal/presets"
	"github.com/KaramelBytes/datagen-cli/internal/sheet"
	"github.com/KaramelBytes/datagen-cli/internal/utils"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	genRows     int
	genFilename string
	genDir      string
	genPreset   string
	genSheet    string
	genFormat   string
	genSeed     uint64
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate sample data and write it to a file",
	Example: `  datagen generate --rows 100
  datagen generate -r 500 -f orders.xlsx --preset orders --seed 42
  datagen generate -r 50 --format csv --dir ./out`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := effectiveConfig()

		// CLI overrides
		f := cmd.Flags()
		if f.Changed("rows") {
			c.Rows = genRows
		}
		if f.Changed("filename") {
			c.Filename = genFilename
		}
		if f.Changed("dir") {
			c.OutputDir = genDir
		}
		if f.Changed("preset") {
			c.Preset = genPreset
		}
		if f.Changed("sheet") {
			c.Sheet = genSheet
		}
		if f.Changed("format") {
			c.Format = genFormat
		}
		if f.Changed("seed") {
			c.Seed = genSeed
		}

		filename, err := filenameForFormat(c.Filename, c.Format)
		if err != nil {
			return err
		}
		cols, err := presets.Columns(c.Preset)
		if err != nil {
			return err
		}

		seed := c.Seed
		if seed == 0 {
			seed = rand.Uint64()
		}
		runID := uuid.NewString()
		entry := log.WithFields(logrus.Fields{
			"run_id": runID,
			"seed":   seed,
			"preset": c.Preset,
			"rows":   c.Rows,
		})
		entry.Debug("generating")

		g, err := grid.Generate(cols, c.Rows, grid.Options{Rand: grid.NewRand(seed), Logger: entry})
		if err != nil {
			return err
		}
		path, err := utils.OutputPath(c.OutputDir, filename)
		if err != nil {
			return err
		}
		if err := sheet.WriteFile(path, c.Format, g, sheet.Options{
			Sheet:  c.Sheet,
			Title:  c.Preset,
			RunID:  runID,
			Logger: entry,
		}); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %d rows x %d columns to %s (seed %d)\n", g.DataRows(), g.Columns(), path, seed)
		return nil
	},
}

// filenameForFormat swaps the extension when an explicit format disagrees with it.
func filenameForFormat(filename, format string) (string, error) {
	if format == "" {
		return filename, nil
	}
	w, err := sheet.Lookup(format)
	if err != nil {
		return "", err
	}
	if w.CanWrite(filename) {
		return filename, nil
	}
	return strings.TrimSuffix(filename, filepath.Ext(filename)) + "." + w.Name(), nil
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().IntVarP(&genRows, "rows", "r", 1, "number of data rows to generate")
	generateCmd.Flags().StringVarP(&genFilename, "filename", "f", "datagen.xlsx", "output filename")
	generateCmd.Flags().StringVarP(&genDir, "dir", "d", ".", "output directory")
	generateCmd.Flags().StringVarP(&genPreset, "preset", "p", presets.Default, "column preset (see `datagen presets`)")
	generateCmd.Flags().StringVar(&genSheet, "sheet", sheet.DefaultSheet, "worksheet name for xlsx output")
	generateCmd.Flags().StringVar(&genFormat, "format", "", "output format: xlsx, csv or parquet (default: from filename)")
	generateCmd.Flags().Uint64Var(&genSeed, "seed", 0, "random seed for reproducible output (0 picks one)")
}
