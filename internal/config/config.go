// Package config loads CLI configuration from config file, environment
// variables and flags.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/osada9000/tablehead-go/pkg/tablehead/infer"
)

// Config holds the resolved CLI configuration.
type Config struct {
	ScanRows  int      `koanf:"scan_rows"`
	ScanCols  int      `koanf:"scan_cols"`
	TextRatio float64  `koanf:"text_ratio"`
	Keywords  []string `koanf:"keywords"`
	Joiner    string   `koanf:"joiner"`
	MaxRows   int      `koanf:"max_header_rows"`
	Mode      string   `koanf:"mode"`
	Sheet     string   `koanf:"sheet"`
	Verbose   bool     `koanf:"verbose"`
}

// findConfigFile finds the config file to use.
// Priority: explicit path > tablehead.yaml > tablehead.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat("tablehead.yaml"); err == nil {
		return "tablehead.yaml"
	}
	if _, err := os.Stat("tablehead.yml"); err == nil {
		return "tablehead.yml"
	}
	return ""
}

// Load loads configuration from file, environment variables and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults mirror the library's inference defaults.
	d := infer.DefaultParams()
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"scan_rows":       d.ScanRowLimit,
		"scan_cols":       d.ScanColLimit,
		"text_ratio":      d.TextRatio,
		"keywords":        d.Keywords,
		"joiner":          d.Joiner,
		"max_header_rows": d.MaxHeaderRows,
		"mode":            string(d.Mode),
		"verbose":         false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file, when present.
	if used := findConfigFile(cfgFile); used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// 3. Environment variables (TABLEHEAD_ prefix).
	// Transform: TABLEHEAD_SCAN_ROWS -> scan_rows
	if err := k.Load(env.Provider("TABLEHEAD_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "TABLEHEAD_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags override everything, but only when explicitly set.
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	switch infer.StitchMode(cfg.Mode) {
	case infer.ModePair, infer.ModeSpan:
	default:
		return nil, fmt.Errorf("invalid mode %q (must be pair or span)", cfg.Mode)
	}

	return &cfg, nil
}

// Params maps the configuration onto the library's inference
// parameters.
func (c *Config) Params() infer.Params {
	return infer.Params{
		ScanRowLimit:  c.ScanRows,
		ScanColLimit:  c.ScanCols,
		TextRatio:     c.TextRatio,
		Keywords:      c.Keywords,
		Joiner:        c.Joiner,
		MaxHeaderRows: c.MaxRows,
		Mode:          infer.StitchMode(c.Mode),
	}
}
