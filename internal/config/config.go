// Package config handles configuration loading from TOML files and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	"github.com/xonecas/glance/internal/constants"
)

// Config is the root configuration structure.
type Config struct {
	Viewport ViewportConfig `toml:"viewport"`
	UI       UIConfig       `toml:"ui"`
	Log      LogConfig      `toml:"log"`
}

// ViewportConfig holds layout and scroll settings. The pixel fields
// describe the canvas used by headless dumps; terminal front ends use one
// pixel per cell.
type ViewportConfig struct {
	Wrap     bool   `toml:"wrap"`
	ScrollY  int    `toml:"scroll_y"`
	ScrollX  int    `toml:"scroll_x"`
	Sentinel string `toml:"sentinel"`

	WidthPx       int `toml:"width_px"`
	HeightPx      int `toml:"height_px"`
	FontWidthPx   int `toml:"font_width_px"`
	FontHeightPx  int `toml:"font_height_px"`
	LineSpacingPx int `toml:"line_spacing_px"`
}

// CellWidth is the horizontal size of one cell in pixels.
func (v ViewportConfig) CellWidth() int { return v.FontWidthPx }

// CellHeight is the vertical size of one cell: glyph height plus spacing.
func (v ViewportConfig) CellHeight() int { return v.FontHeightPx + v.LineSpacingPx }

// SentinelRune returns the configured sentinel, or '_' if unset.
func (v ViewportConfig) SentinelRune() rune {
	if r, _ := utf8.DecodeRuneInString(v.Sentinel); r != utf8.RuneError {
		return r
	}
	return '_'
}

// UIConfig holds user-interface settings.
type UIConfig struct {
	// SyntaxTheme is the Chroma theme used to colour text and derive the
	// status bar palette. Defaults to "github-dark" if unset.
	SyntaxTheme string `toml:"syntax_theme"`
	// Language forces a Chroma lexer instead of detecting it from the
	// file name. "none" disables colouring.
	Language string `toml:"language"`
}

// SyntaxThemeOrDefault returns the configured syntax theme or "github-dark" if unset.
func (u UIConfig) SyntaxThemeOrDefault() string {
	if u.SyntaxTheme == "" {
		return constants.SyntaxTheme
	}
	return u.SyntaxTheme
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // defaults to glance.log in the data dir
}

// ZerologLevel parses Level, defaulting to info.
func (l LogConfig) ZerologLevel() zerolog.Level {
	if l.Level == "" {
		return zerolog.InfoLevel
	}
	lvl, err := zerolog.ParseLevel(l.Level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Viewport: ViewportConfig{
			Sentinel:      "_",
			WidthPx:       315,
			HeightPx:      300,
			FontWidthPx:   12,
			FontHeightPx:  12,
			LineSpacingPx: 2,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads configuration from a TOML file over the defaults and applies
// environment variable overrides. An empty path loads the default file in
// the data dir if it exists.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		dir, err := DataDir()
		if err == nil {
			path = filepath.Join(dir, "config.toml")
		}
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			if explicit {
				return nil, fmt.Errorf("config file not found: %s", path)
			}
		} else if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate returns an error if the configuration is invalid.
func (c *Config) Validate() error {
	var errs []error
	v := c.Viewport

	if v.ScrollY < 0 {
		errs = append(errs, fmt.Errorf("viewport.scroll_y=%d must not be negative", v.ScrollY))
	}
	if v.ScrollX < 0 {
		errs = append(errs, fmt.Errorf("viewport.scroll_x=%d must not be negative", v.ScrollX))
	}
	if v.Wrap && v.ScrollX != 0 {
		errs = append(errs, errors.New("viewport.scroll_x must be 0 when viewport.wrap is set"))
	}
	if utf8.RuneCountInString(v.Sentinel) > 1 {
		errs = append(errs, fmt.Errorf("viewport.sentinel=%q must be a single character", v.Sentinel))
	}
	if v.FontWidthPx <= 0 || v.FontHeightPx <= 0 {
		errs = append(errs, fmt.Errorf("viewport font size %dx%d must be positive", v.FontWidthPx, v.FontHeightPx))
	}
	if v.LineSpacingPx < 0 {
		errs = append(errs, fmt.Errorf("viewport.line_spacing_px=%d must not be negative", v.LineSpacingPx))
	}
	if v.WidthPx <= 0 || v.HeightPx <= 0 {
		errs = append(errs, fmt.Errorf("viewport size %dx%d must be positive", v.WidthPx, v.HeightPx))
	}

	if c.Log.Level != "" {
		if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
			errs = append(errs, fmt.Errorf("log.level=%q is invalid: %v", c.Log.Level, err))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
func applyEnvOverrides(cfg *Config) error {
	var errs []error
	for _, setter := range []struct {
		env   string
		apply func(string) error
	}{
		{"GLANCE_WRAP", func(v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("GLANCE_WRAP=%q: %w", v, err)
			}
			cfg.Viewport.Wrap = b
			if b {
				cfg.Viewport.ScrollX = 0
			}
			return nil
		}},
		{"GLANCE_SYNTAX_THEME", func(v string) error {
			cfg.UI.SyntaxTheme = v
			return nil
		}},
		{"GLANCE_LOG_LEVEL", func(v string) error {
			cfg.Log.Level = v
			return nil
		}},
	} {
		if v := os.Getenv(setter.env); v != "" {
			if err := setter.apply(v); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// DataDir returns the path to the glance data directory (~/.config/glance).
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", constants.AppName), nil
}

// EnsureDataDir creates the data directory if it doesn't exist.
func EnsureDataDir() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", err
	}
	return dir, nil
}

// LogPath returns the configured log file, or glance.log in the data dir.
func (c *Config) LogPath() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	dir, err := EnsureDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, constants.AppName+".log"), nil
}
