package cmd

import (
	"fmt"
	"os"

	cfgpkg "github.com/KaramelBytes/datagen-cli/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Global

	log = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "datagen",
	Short: "datagen: synthesize columnar sample data into a spreadsheet",
	Long: `datagen generates rows of sample data from a set of column generators
(random picks, ranges, increasing counters, deltas, lookups and combinations)
and writes them to an xlsx, csv or parquet file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(setupLogging, loadConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.datagen/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}

func setupLogging() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if debug {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: flags and built-in defaults still work
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		cfg = nil
		return
	}
	cfg = c
	log.WithField("config", cfgFile).Debug("configuration loaded")
}

// effectiveConfig returns a copy of the loaded config, or the defaults when none loaded.
func effectiveConfig() cfgpkg.Global {
	if cfg != nil {
		return *cfg
	}
	return cfgpkg.Global{Rows: 1, Filename: "datagen.xlsx", OutputDir: ".", Sheet: "Data", Preset: "project"}
}
