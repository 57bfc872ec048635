// Package config loads viewer settings from an optional INI file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

// Config holds user-tunable viewer settings.
type Config struct {
	UI     UIConfig
	Export ExportConfig
	Log    LogConfig
}

// UIConfig controls the terminal layout.
type UIConfig struct {
	TreeWidth int  // columns reserved for the part tree panel
	ShowSizes bool // show part sizes next to file names
}

// ExportConfig controls where HTML exports are written.
type ExportConfig struct {
	Dir string
}

// LogConfig mirrors logging.Config.
type LogConfig struct {
	File  string
	Level string
}

// Default returns the built-in settings used when no config file exists.
func Default() Config {
	return Config{
		UI:  UIConfig{TreeWidth: 36, ShowSizes: true},
		Log: LogConfig{Level: "info"},
	}
}

// DefaultPath returns the conventional config file location, or an empty
// string when the home directory cannot be resolved.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "ooxml-viewer", "config.ini")
}

// Load reads settings from path. A missing file is not an error: the
// defaults are returned unchanged. A present but unreadable or malformed
// file is reported.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	file, err := ini.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}

	ui := file.Section("ui")
	cfg.UI.TreeWidth = ui.Key("tree_width").MustInt(cfg.UI.TreeWidth)
	cfg.UI.ShowSizes = ui.Key("show_sizes").MustBool(cfg.UI.ShowSizes)

	cfg.Export.Dir = file.Section("export").Key("dir").MustString(cfg.Export.Dir)

	logSec := file.Section("log")
	cfg.Log.File = logSec.Key("file").MustString(cfg.Log.File)
	cfg.Log.Level = logSec.Key("level").MustString(cfg.Log.Level)

	if cfg.UI.TreeWidth < 16 {
		cfg.UI.TreeWidth = 16
	}
	return cfg, nil
}
