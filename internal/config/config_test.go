package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := NewLoader().Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Game.KeyRepeatMs != DefaultKeyRepeatMs || cfg.Game.FPS != DefaultFPS || !cfg.Game.ObstacleDino {
		t.Errorf("Unexpected defaults %+v", cfg.Game)
	}
	if cfg.Server.Listen != DefaultListenAddr {
		t.Errorf("Listen = %q, want %q", cfg.Server.Listen, DefaultListenAddr)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("game:\n  ascii_only: true\n  key_repeat_ms: 350\nlog:\n  level: debug\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	l := NewLoader()
	l.SetConfigFile(path)
	cfg, err := l.Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !cfg.Game.ASCIIOnly || cfg.Game.KeyRepeatMs != 350 || cfg.Log.Level != "debug" {
		t.Errorf("Unexpected config %+v", cfg)
	}
	if cfg.Game.FPS != DefaultFPS {
		t.Errorf("Expected unset keys to keep defaults, got fps %d", cfg.Game.FPS)
	}
	if l.ConfigFileUsed() != path {
		t.Errorf("ConfigFileUsed = %q, want %q", l.ConfigFileUsed(), path)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("TERMREX_GAME_KEY_REPEAT_MS", "600")
	t.Setenv("TERMREX_SERVER_LISTEN", "127.0.0.1:2022")

	cfg, err := NewLoader().Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Game.KeyRepeatMs != 600 {
		t.Errorf("KeyRepeatMs = %d, want 600", cfg.Game.KeyRepeatMs)
	}
	if cfg.Server.Listen != "127.0.0.1:2022" {
		t.Errorf("Listen = %q", cfg.Server.Listen)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"lowest repeat", func(c *Config) { c.Game.KeyRepeatMs = MinKeyRepeatMs }, false},
		{"highest repeat", func(c *Config) { c.Game.KeyRepeatMs = MaxKeyRepeatMs }, false},
		{"repeat too low", func(c *Config) { c.Game.KeyRepeatMs = 49 }, true},
		{"repeat too high", func(c *Config) { c.Game.KeyRepeatMs = 1201 }, true},
		{"zero fps", func(c *Config) { c.Game.FPS = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	written, err := WriteDefault(path)
	if err != nil || !written {
		t.Fatalf("Expected config to be written, got %v %v", written, err)
	}

	l := NewLoader()
	l.SetConfigFile(path)
	cfg, err := l.Load()
	if err != nil {
		t.Fatalf("Expected written config to load: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("Expected defaults round trip, got %+v", cfg)
	}

	if err := os.WriteFile(path, []byte("game:\n  fps: 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	written, err = WriteDefault(path)
	if err != nil || written {
		t.Fatalf("Expected existing config to be kept, got %v %v", written, err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "game:\n  fps: 30\n" {
		t.Errorf("Existing config was modified: %q", data)
	}
}
