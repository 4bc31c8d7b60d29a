package cmd

import (
	"fmt"
	"strconv"
	"strings"

	cfgpkg "github.com/KaramelBytes/datagen-cli/internal/config"
	"github.com/KaramelBytes/datagen-cli/internal/presets"
	"github.com/KaramelBytes/datagen-cli/internal/sheet"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set datagen configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "No config loaded")
			return nil
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "rows: %d\n", cfg.Rows)
		fmt.Fprintf(out, "filename: %s\n", cfg.Filename)
		fmt.Fprintf(out, "output_dir: %s\n", cfg.OutputDir)
		fmt.Fprintf(out, "sheet: %s\n", cfg.Sheet)
		if cfg.Format != "" {
			fmt.Fprintf(out, "format: %s\n", cfg.Format)
		}
		fmt.Fprintf(out, "preset: %s\n", cfg.Preset)
		if cfg.Seed != 0 {
			fmt.Fprintf(out, "seed: %d\n", cfg.Seed)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "rows":
			i, err := strconv.Atoi(val)
			if err != nil || i < 1 {
				return fmt.Errorf("invalid int for rows: %v (must be >= 1)", val)
			}
			cfg.Rows = i
		case "filename":
			if strings.TrimSpace(val) == "" {
				return fmt.Errorf("filename cannot be empty")
			}
			cfg.Filename = val
		case "output_dir":
			cfg.OutputDir = val
		case "sheet":
			if strings.TrimSpace(val) == "" {
				return fmt.Errorf("sheet cannot be empty")
			}
			cfg.Sheet = val
		case "format":
			if val != "" {
				w, err := sheet.Lookup(val)
				if err != nil {
					return fmt.Errorf("invalid format: %s (use %s)", val, strings.Join(sheet.Formats(), ", "))
				}
				val = w.Name()
			}
			cfg.Format = val
		case "preset":
			if _, ok := presets.Summary(val); !ok {
				return fmt.Errorf("invalid preset: %s (use %s)", val, strings.Join(presets.Names(), ", "))
			}
			cfg.Preset = val
		case "seed":
			u, err := strconv.ParseUint(val, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid seed: %w", err)
			}
			cfg.Seed = u
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
