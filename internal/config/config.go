package config

import (
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	MusicDir  string `koanf:"music_dir"`  // directory scanned on rebuild
	StorePath string `koanf:"store_path"` // catalog store path (empty = default under data dir)

	// UI settings
	VisibleRows int `koanf:"visible_rows"` // menu rows shown at once

	// Timing settings (milliseconds)
	FrameIntervalMs int `koanf:"frame_interval_ms"` // redraw budget
	DebounceMs      int `koanf:"debounce_ms"`       // button debounce interval
	DoubleClickMs   int `koanf:"double_click_ms"`   // prev double-click window
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	configPaths := getConfigPaths()

	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.MusicDir = expandPath(cfg.MusicDir)
	cfg.StorePath = expandPath(cfg.StorePath)

	applyDefaults(cfg)

	return cfg, nil
}

// applyDefaults fills in zero or out-of-range values.
func applyDefaults(cfg *Config) {
	if cfg.VisibleRows <= 0 {
		cfg.VisibleRows = 5
	}
	if cfg.FrameIntervalMs <= 0 {
		cfg.FrameIntervalMs = 33
	}
	if cfg.DebounceMs <= 0 {
		cfg.DebounceMs = 25
	}
	if cfg.DoubleClickMs <= 0 {
		cfg.DoubleClickMs = 300
	}
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/minipod/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "minipod", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
