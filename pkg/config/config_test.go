// pkg/config/config_test.go
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Display.Renderer != RendererEngo {
		t.Errorf("Renderer = %q, want %q", config.Display.Renderer, RendererEngo)
	}
	if config.Loop.TickRate != 60 {
		t.Errorf("TickRate = %d, want 60", config.Loop.TickRate)
	}
	if config.Loop.Seed != 0 || config.Loop.MaxTicks != 0 {
		t.Errorf("Loop = %+v, want wall clock seed and no tick limit", config.Loop)
	}
	if err := config.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

func TestLoadConfig_Success(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gravnav.json")
	content := `{"scenePath": "scenes/basic.txt", "loop": {"tickRate": 30, "seed": 7}}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if config.ScenePath != "scenes/basic.txt" {
		t.Errorf("ScenePath = %q, want scenes/basic.txt", config.ScenePath)
	}
	if config.Loop.TickRate != 30 || config.Loop.Seed != 7 {
		t.Errorf("Loop = %+v, want tick rate 30 and seed 7", config.Loop)
	}
	// settings absent from the file keep their defaults
	if config.Display.Renderer != RendererEngo || config.Logging.Format != "json" {
		t.Errorf("defaults not kept: %+v", config)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadConfig(filepath.Join(dir, "missing.json"))
	if err == nil || !strings.Contains(err.Error(), "failed to read config file") {
		t.Errorf("LoadConfig(missing) error = %v", err)
	}

	invalid := filepath.Join(dir, "invalid.json")
	if err := os.WriteFile(invalid, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	_, err = LoadConfig(invalid)
	if err == nil || !strings.Contains(err.Error(), "failed to parse config file") {
		t.Errorf("LoadConfig(invalid) error = %v", err)
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.json")

	config := DefaultConfig()
	config.ScenePath = "universe.txt"
	config.Display.ShowVectors = true
	config.Loop.MaxTicks = 500

	if err := SaveConfig(config, path); err != nil {
		t.Fatalf("SaveConfig() error = %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if *loaded != *config {
		t.Errorf("loaded = %+v, want %+v", loaded, config)
	}
}

func TestSaveConfig_InvalidPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "config.json")

	err := SaveConfig(DefaultConfig(), path)
	if err == nil || !strings.Contains(err.Error(), "failed to write config file") {
		t.Errorf("SaveConfig() error = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *GameConfig)
		field  string
	}{
		{"valid", func(c *GameConfig) {}, ""},
		{"terminal renderer", func(c *GameConfig) { c.Display.Renderer = RendererTerminal }, ""},
		{"lowercase level", func(c *GameConfig) { c.Logging.Level = "debug" }, ""},
		{"unknown renderer", func(c *GameConfig) { c.Display.Renderer = "sdl" }, "display.renderer"},
		{"negative width", func(c *GameConfig) { c.Display.Width = -1 }, "display.size"},
		{"tiny terminal", func(c *GameConfig) { c.Display.TerminalRows = 1 }, "display.terminal"},
		{"zero tick rate", func(c *GameConfig) { c.Loop.TickRate = 0 }, "loop.tickRate"},
		{"huge tick rate", func(c *GameConfig) { c.Loop.TickRate = 5000 }, "loop.tickRate"},
		{"negative max ticks", func(c *GameConfig) { c.Loop.MaxTicks = -3 }, "loop.maxTicks"},
		{"unknown level", func(c *GameConfig) { c.Logging.Level = "LOUD" }, "logging.level"},
		{"unknown format", func(c *GameConfig) { c.Logging.Format = "xml" }, "logging.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(config)

			err := config.Validate()
			if tt.field == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}

			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("Validate() = %v, want a *ValidationError", err)
			}
			if validationErr.Field != tt.field {
				t.Errorf("Field = %q, want %q", validationErr.Field, tt.field)
			}
		})
	}
}
