package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/music",
			expected: filepath.Join(home, "music"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/usr/local/music",
			expected: "/usr/local/music",
		},
		{
			name:     "relative path unchanged",
			input:    "music/albums",
			expected: "music/albums",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := expandPath(tt.input)
			if got != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.VisibleRows != 5 {
		t.Errorf("VisibleRows = %d, want 5", cfg.VisibleRows)
	}
	if cfg.FrameIntervalMs != 33 {
		t.Errorf("FrameIntervalMs = %d, want 33", cfg.FrameIntervalMs)
	}
	if cfg.DebounceMs != 25 {
		t.Errorf("DebounceMs = %d, want 25", cfg.DebounceMs)
	}
	if cfg.DoubleClickMs != 300 {
		t.Errorf("DoubleClickMs = %d, want 300", cfg.DoubleClickMs)
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		VisibleRows:     8,
		FrameIntervalMs: 16,
		DebounceMs:      50,
		DoubleClickMs:   250,
	}
	applyDefaults(cfg)

	if cfg.VisibleRows != 8 {
		t.Errorf("VisibleRows = %d, want 8", cfg.VisibleRows)
	}
	if cfg.FrameIntervalMs != 16 {
		t.Errorf("FrameIntervalMs = %d, want 16", cfg.FrameIntervalMs)
	}
	if cfg.DebounceMs != 50 {
		t.Errorf("DebounceMs = %d, want 50", cfg.DebounceMs)
	}
	if cfg.DoubleClickMs != 250 {
		t.Errorf("DoubleClickMs = %d, want 250", cfg.DoubleClickMs)
	}
}

func TestApplyDefaults_NegativeValues(t *testing.T) {
	cfg := &Config{
		VisibleRows:     -1,
		FrameIntervalMs: -10,
	}
	applyDefaults(cfg)

	if cfg.VisibleRows != 5 {
		t.Errorf("VisibleRows = %d, want 5", cfg.VisibleRows)
	}
	if cfg.FrameIntervalMs != 33 {
		t.Errorf("FrameIntervalMs = %d, want 33", cfg.FrameIntervalMs)
	}
}
