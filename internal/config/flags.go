// internal/config/flags.go
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// Flags holds command-line overrides and the flag set they were parsed
// from. Only flags the user actually set override the config file.
type Flags struct {
	ConfigFilePath  string
	LogLevel        string
	LogFilePath     string
	LogTags         string
	LogDisableTags  string
	TagLimit        int
	TriggerChars    string
	ScanEveryKey    bool
	SystemClipboard bool
	ThemeFile       string

	fs *pflag.FlagSet
}

// Define registers the flags on fs.
func (f *Flags) Define(fs *pflag.FlagSet) {
	f.fs = fs
	fs.StringVarP(&f.ConfigFilePath, "config", "c", "", fmt.Sprintf("path to TOML configuration file (default ~/.config/%s/%s)", AppName, DefaultConfigFileName))
	fs.StringVar(&f.LogLevel, "loglevel", "", "log level (debug, info, warn, error)")
	fs.StringVar(&f.LogFilePath, "logfile", "", "path to write log file (use '-' for stderr)")
	fs.StringVar(&f.LogTags, "log-tags", "", "comma-separated list of log tags to enable")
	fs.StringVar(&f.LogDisableTags, "log-disable-tags", "", "comma-separated list of log tags to disable")
	fs.IntVar(&f.TagLimit, "tag-limit", 0, "maximum number of distinct style tags")
	fs.StringVar(&f.TriggerChars, "trigger-chars", "", "characters that trigger formatting besides space and enter")
	fs.BoolVar(&f.ScanEveryKey, "scan-every-key", false, "format after every keystroke")
	fs.BoolVar(&f.SystemClipboard, "system-clipboard", false, "copy lines to the system clipboard")
	fs.StringVar(&f.ThemeFile, "theme", "", "path to a TOML theme file")
}

// ApplyOverrides copies the flags that were set onto cfg.
func (f *Flags) ApplyOverrides(cfg *Config) {
	if f.fs == nil {
		return
	}
	f.fs.Visit(func(fl *pflag.Flag) {
		switch fl.Name {
		case "loglevel":
			if f.LogLevel != "" {
				cfg.Logger.LogLevel = f.LogLevel
			}
		case "logfile":
			cfg.Logger.LogFilePath = f.LogFilePath
		case "log-tags":
			cfg.Logger.EnabledTags = splitCommaList(f.LogTags)
		case "log-disable-tags":
			cfg.Logger.DisabledTags = splitCommaList(f.LogDisableTags)
		case "tag-limit":
			if f.TagLimit > 0 {
				cfg.Editor.TagLimit = f.TagLimit
			}
		case "trigger-chars":
			if f.TriggerChars != "" {
				cfg.Editor.TriggerChars = f.TriggerChars
			}
		case "scan-every-key":
			cfg.Editor.ScanEveryKey = f.ScanEveryKey
		case "system-clipboard":
			cfg.Editor.SystemClipboard = f.SystemClipboard
		case "theme":
			cfg.Editor.ThemeFile = f.ThemeFile
		}
	})
}

func splitCommaList(list string) []string {
	if list == "" {
		return nil
	}
	items := strings.Split(list, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
