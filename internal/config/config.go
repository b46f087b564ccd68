// Package config loads the cfo configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/etnz/crowdfolio"
	"github.com/etnz/crowdfolio/timeline"
	toml "github.com/pelletier/go-toml/v2"
)

// FileName is the name of the configuration file looked up in the user
// configuration directory.
const FileName = "cfo.toml"

// Config holds all configuration for cfo
type Config struct {
	Logging  LoggingConfig  `toml:"logging"`
	Display  DisplayConfig  `toml:"display"`
	Table    TableConfig    `toml:"table"`
	Timeline TimelineConfig `toml:"timeline"`
	Taxonomy TaxonomyConfig `toml:"taxonomy"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `toml:"level"` // debug, info, warn or error
}

// DisplayConfig holds how amounts are printed.
type DisplayConfig struct {
	Currency string `toml:"currency"`
	Thousand string `toml:"thousand"`
	Decimal  string `toml:"decimal"`
	Template string `toml:"template"` // "1" stands for the number, "$" for the currency
}

// TableConfig holds the tabular views configuration.
type TableConfig struct {
	PageSize int `toml:"page_size"`
}

// TimelineConfig holds the timeline configuration.
type TimelineConfig struct {
	Width int `toml:"width"` // months per window
}

// TaxonomyConfig holds extra transaction type labels.
type TaxonomyConfig struct {
	Aliases map[string]string `toml:"aliases"` // label to kind name
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "warn"},
		Display: DisplayConfig{
			Currency: crowdfolio.DefaultStyle.Grapheme,
			Thousand: crowdfolio.DefaultStyle.Thousand,
			Decimal:  crowdfolio.DefaultStyle.Decimal,
			Template: crowdfolio.DefaultStyle.Template,
		},
		Table:    TableConfig{PageSize: 20},
		Timeline: TimelineConfig{Width: timeline.DefaultWidth},
	}
}

// DefaultPath returns the configuration file path: $CFO_CONFIG when set,
// cfo.toml in the user configuration directory otherwise.
func DefaultPath() string {
	if p := os.Getenv("CFO_CONFIG"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "crowdfolio", FileName)
}

// LoadConfig loads configuration from files with environment overrides.
// Missing files are skipped, later files override earlier ones.
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if level := os.Getenv("CFO_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if size := os.Getenv("CFO_PAGE_SIZE"); size != "" {
		if n, err := strconv.Atoi(size); err == nil {
			config.Table.PageSize = n
		}
	}
	if width := os.Getenv("CFO_TIMELINE_WIDTH"); width != "" {
		if n, err := strconv.Atoi(width); err == nil {
			config.Timeline.Width = n
		}
	}
}

// Validate checks the values that would make a command fail later.
func (c *Config) Validate() error {
	if c.Table.PageSize < 1 {
		return fmt.Errorf("invalid table.page_size %d: must be positive", c.Table.PageSize)
	}
	if c.Timeline.Width < timeline.MinWidth || c.Timeline.Width > timeline.MaxWidth {
		return fmt.Errorf("invalid timeline.width %d: %w", c.Timeline.Width, timeline.ErrInvalidWidth)
	}
	if _, err := c.NewTaxonomy(); err != nil {
		return err
	}
	return nil
}

// Style returns the amount formatting style.
func (c *Config) Style() crowdfolio.Style {
	return crowdfolio.Style{
		Grapheme: c.Display.Currency,
		Thousand: c.Display.Thousand,
		Decimal:  c.Display.Decimal,
		Template: c.Display.Template,
	}
}

// NewTaxonomy returns the default taxonomy extended with the configured aliases.
func (c *Config) NewTaxonomy() (*crowdfolio.Taxonomy, error) {
	tax := crowdfolio.NewTaxonomy()
	for label, name := range c.Taxonomy.Aliases {
		kind, ok := tax.ParseKind(name)
		if !ok {
			return nil, fmt.Errorf("invalid taxonomy alias %q: unknown type %q", label, name)
		}
		tax.Alias(label, kind)
	}
	return tax, nil
}
