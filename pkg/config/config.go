// pkg/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Renderers available to the play and run commands
const (
	RendererEngo     = "engo"
	RendererTerminal = "terminal"
	RendererNull     = "null"
)

// GameConfig contains the runtime settings of gravnav.
// The universe itself always comes from the scene file.
type GameConfig struct {
	ScenePath string        `json:"scenePath"`
	Display   DisplayConfig `json:"display"`
	Loop      LoopConfig    `json:"loop"`
	Logging   LoggingConfig `json:"logging"`
}

// DisplayConfig contains rendering settings
type DisplayConfig struct {
	Renderer        string `json:"renderer"`
	Title           string `json:"title"`
	ShowVectors     bool   `json:"showVectors"`
	Width           int    `json:"width"`  // 0 uses the scene width
	Height          int    `json:"height"` // 0 uses the scene height
	Fullscreen      bool   `json:"fullscreen"`
	TerminalColumns int    `json:"terminalColumns"`
	TerminalRows    int    `json:"terminalRows"`
}

// LoopConfig contains tick driver settings
type LoopConfig struct {
	TickRate int   `json:"tickRate"` // ticks per second
	MaxTicks int   `json:"maxTicks"` // 0 runs until the game ends
	Seed     int64 `json:"seed"`     // 0 seeds from the wall clock
}

// LoggingConfig contains logger settings
type LoggingConfig struct {
	Level  string `json:"level"`
	Format string `json:"format"`
}

// ValidationError reports an invalid setting
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s (%v): %s", e.Field, e.Value, e.Message)
}

// LoadConfig loads a configuration from a file.
// Settings missing from the file keep their default value.
func LoadConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *GameConfig, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default settings
func DefaultConfig() *GameConfig {
	return &GameConfig{
		Display: DisplayConfig{
			Renderer:        RendererEngo,
			Title:           "gravnav",
			TerminalColumns: 80,
			TerminalRows:    24,
		},
		Loop: LoopConfig{
			TickRate: 60,
		},
		Logging: LoggingConfig{
			Level:  "INFO",
			Format: "json",
		},
	}
}

// Validate checks every setting and returns the first invalid one as a *ValidationError
func (c *GameConfig) Validate() error {
	switch c.Display.Renderer {
	case RendererEngo, RendererTerminal, RendererNull:
	default:
		return &ValidationError{"display.renderer", c.Display.Renderer, "must be engo, terminal or null"}
	}
	if c.Display.Width < 0 || c.Display.Height < 0 {
		return &ValidationError{"display.size", fmt.Sprintf("%dx%d", c.Display.Width, c.Display.Height), "cannot be negative"}
	}
	if c.Display.TerminalColumns < 2 || c.Display.TerminalRows < 2 {
		return &ValidationError{"display.terminal", fmt.Sprintf("%dx%d", c.Display.TerminalColumns, c.Display.TerminalRows), "needs at least 2 columns and 2 rows"}
	}
	if c.Loop.TickRate < 1 || c.Loop.TickRate > 1000 {
		return &ValidationError{"loop.tickRate", c.Loop.TickRate, "must be between 1 and 1000"}
	}
	if c.Loop.MaxTicks < 0 {
		return &ValidationError{"loop.maxTicks", c.Loop.MaxTicks, "cannot be negative"}
	}
	switch strings.ToUpper(c.Logging.Level) {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR":
	default:
		return &ValidationError{"logging.level", c.Logging.Level, "must be DEBUG, INFO, WARN or ERROR"}
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "text":
	default:
		return &ValidationError{"logging.format", c.Logging.Format, "must be json or text"}
	}
	return nil
}
