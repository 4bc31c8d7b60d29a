package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	Rows      int    `mapstructure:"rows" yaml:"rows"`
	Filename  string `mapstructure:"filename" yaml:"filename"`
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`
	Sheet     string `mapstructure:"sheet" yaml:"sheet"`
	// Format forces an output writer; empty picks it from the filename extension.
	Format string `mapstructure:"format" yaml:"format"`
	Preset string `mapstructure:"preset" yaml:"preset"`
	// Seed makes runs reproducible; 0 draws a fresh seed per run.
	Seed uint64 `mapstructure:"seed" yaml:"seed"`
}

// DefaultPath returns ~/.datagen/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".datagen", "config.yaml"), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.datagen/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	path := cfgFile
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (applied by the caller) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("DATAGEN")
	v.AutomaticEnv()

	v.SetDefault("rows", 1)
	v.SetDefault("filename", "datagen.xlsx")
	v.SetDefault("output_dir", ".")
	v.SetDefault("sheet", "Data")
	v.SetDefault("format", "")
	v.SetDefault("preset", "project")
	v.SetDefault("seed", 0)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		path, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(filepath.Dir(path))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// optional read
		_ = v.ReadInConfig()
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
