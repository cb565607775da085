package truthtable

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config controls table presentation only; it never affects parsing or
// evaluation semantics.
type Config struct {
	Table TableConfig `toml:"table"`
}

// TableConfig holds the rendering knobs for the truth table.
type TableConfig struct {
	TrueGlyph  string `toml:"true_glyph"`
	FalseGlyph string `toml:"false_glyph"`
	Color      bool   `toml:"color"`
	ResultOnly bool   `toml:"result_only"`
}

// DefaultConfig returns the built-in presentation defaults.
func DefaultConfig() *Config {
	return &Config{
		Table: TableConfig{
			TrueGlyph:  "1",
			FalseGlyph: "0",
			Color:      true,
		},
	}
}

// LoadConfig reads a TOML config file and merges it over the defaults. An
// empty path or a missing file silently yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	if cfg.Table.TrueGlyph == "" {
		cfg.Table.TrueGlyph = "1"
	}
	if cfg.Table.FalseGlyph == "" {
		cfg.Table.FalseGlyph = "0"
	}
	return cfg, nil
}

// RenderOptions derives rendering options from the config.
func (c *Config) RenderOptions() RenderOptions {
	return RenderOptions{
		TrueGlyph:  c.Table.TrueGlyph,
		FalseGlyph: c.Table.FalseGlyph,
		Color:      c.Table.Color,
		ResultOnly: c.Table.ResultOnly,
	}
}
