// Package config loads the amanita configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
)

// Config is the user configuration, read from TOML.
type Config struct {
	// HistoryLimit caps the undo history of each buffer. Zero means the
	// editor default, negative disables undo.
	HistoryLimit int `toml:"history_limit"`
	// TabWidth is the number of tab runes a tab keystroke inserts.
	TabWidth int `toml:"tab_width"`
	// SystemClipboard mirrors yanks and deletes to the system clipboard.
	SystemClipboard bool `toml:"system_clipboard"`
	// LogFile receives the editor log. Empty disables logging.
	LogFile  string `toml:"log_file"`
	LogLevel string `toml:"log_level"`
	// ShowStatus renders the status line under the text.
	ShowStatus bool `toml:"show_status"`
	// LineNumbers renders a line-number gutter left of the text.
	LineNumbers bool `toml:"line_numbers"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		TabWidth:   4,
		LogLevel:   "info",
		ShowStatus: true,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/amanita/config.toml, falling back to
// the user config directory of the platform.
func DefaultPath() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		var err error
		dir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("locating config directory: %w", err)
		}
	}
	return filepath.Join(dir, "amanita", "config.toml"), nil
}

// Load reads the configuration at path over the defaults. A missing file
// yields the defaults, not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("parsing %s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.TabWidth < 1 || c.TabWidth > 16 {
		return fmt.Errorf("tab_width %d out of range [1, 16]", c.TabWidth)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// Level returns the parsed log level, info when it does not parse.
func (c Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
