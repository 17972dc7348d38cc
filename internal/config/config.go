package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the default config file name.
const FileName = "sieread.yaml"

// Output formats.
const (
	FormatText = "text"
	FormatCSV  = "csv"
)

// Config represents the top-level sieread.yaml configuration.
type Config struct {
	Report ReportConfig `yaml:"report"`
	Log    LogConfig    `yaml:"log"`
}

// ReportConfig controls what the listing commands print.
type ReportConfig struct {
	ShowZeroBalances bool   `yaml:"show_zero_balances"`
	Format           string `yaml:"format"` // "text" or "csv"
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	Level string `yaml:"level"` // zerolog level name, e.g. "info"
	JSON  bool   `yaml:"json"`
}

// Load reads a sieread.yaml file from disk. Fields missing from the file
// keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Report: ReportConfig{
			ShowZeroBalances: false,
			Format:           FormatText,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	switch c.Report.Format {
	case FormatText, FormatCSV:
	default:
		return fmt.Errorf("report.format must be %q or %q, got %q", FormatText, FormatCSV, c.Report.Format)
	}
	return nil
}
