// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/magicpad/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config     `toml:"logger"`
	Editor EditorConfig      `toml:"editor"`
	Colors map[string]string `toml:"colors"` // Extra color names -> "#rrggbb"
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	TagLimit        int    `toml:"tag_limit"`
	TriggerChars    string `toml:"trigger_chars"`
	ScanEveryKey    bool   `toml:"scan_every_key"`
	TabWidth        int    `toml:"tab_width"`
	SystemClipboard bool   `toml:"system_clipboard"`
	ConfirmNew      bool   `toml:"confirm_new"`
	ThemeFile       string `toml:"theme_file"`
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Editor: EditorConfig{
			TagLimit:        DefaultTagLimit,
			TriggerChars:    DefaultTriggerChars,
			TabWidth:        DefaultTabWidth,
			SystemClipboard: SystemClipboard,
			ConfirmNew:      ConfirmNew,
		},
		Colors: map[string]string{},
	}
}

// DefaultPath returns the default config file location, or "" when the
// user config directory is unknown.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName, DefaultConfigFileName)
}

// loadFromFile decodes filePath over cfg. A missing file is not an error.
// It returns the keys the file set that no field consumed.
func loadFromFile(filePath string, cfg *Config) ([]string, error) {
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	var undecoded []string
	for _, key := range metadata.Undecoded() {
		undecoded = append(undecoded, key.String())
	}
	return undecoded, nil
}

// validate resets invalid values to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.TagLimit < MinTagLimit {
		c.Editor.TagLimit = defaults.Editor.TagLimit
	}
	if c.Editor.TriggerChars == "" {
		c.Editor.TriggerChars = defaults.Editor.TriggerChars
	}
	if c.Editor.TabWidth <= 0 {
		c.Editor.TabWidth = defaults.Editor.TabWidth
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
	if c.Colors == nil {
		c.Colors = map[string]string{}
	}
}

// Load builds the effective configuration: defaults, then the TOML file
// (configFilePath, or DefaultPath when empty), then explicitly set flags,
// then validation. Unknown keys in the file are returned for the caller to
// report once logging is up.
func Load(configFilePath string, flags *Flags) (*Config, []string, error) {
	cfg := NewDefaultConfig()

	path := configFilePath
	if path == "" {
		path = DefaultPath()
	}

	var undecoded []string
	if path != "" {
		var err error
		undecoded, err = loadFromFile(path, cfg)
		if err != nil {
			return nil, nil, err
		}
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}
	cfg.validate()
	return cfg, undecoded, nil
}
