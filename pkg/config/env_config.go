// pkg/config/env_config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables overriding the settings file
const (
	EnvScene       = "GRAVNAV_SCENE"
	EnvRenderer    = "GRAVNAV_RENDERER"
	EnvTickRate    = "GRAVNAV_TICK_RATE"
	EnvMaxTicks    = "GRAVNAV_MAX_TICKS"
	EnvSeed        = "GRAVNAV_SEED"
	EnvShowVectors = "GRAVNAV_SHOW_VECTORS"
	EnvLogLevel    = "GRAVNAV_LOG_LEVEL"
	EnvLogFormat   = "GRAVNAV_LOG_FORMAT"
)

// DefaultDotEnv is the env file read when LoadDotEnv gets no path
const DefaultDotEnv = ".env"

// LoadDotEnv loads variables from env files into the process environment.
// Files that do not exist are skipped and variables already set are kept.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{DefaultDotEnv}
	}

	var existing []string
	for _, path := range paths {
		_, err := os.Stat(path)
		switch {
		case err == nil:
			existing = append(existing, path)
		case errors.Is(err, fs.ErrNotExist):
		default:
			return fmt.Errorf("failed to stat env file %s: %w", path, err)
		}
	}

	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

// ApplyEnvironmentOverrides replaces settings with the GRAVNAV_* environment
// variables that are set, then validates the result.
// Unparsable numeric or boolean values are ignored.
func ApplyEnvironmentOverrides(config *GameConfig) error {
	config.ScenePath = getEnvOrDefault(EnvScene, config.ScenePath)
	config.Display.Renderer = getEnvOrDefault(EnvRenderer, config.Display.Renderer)
	config.Display.ShowVectors = getEnvAsBoolOrDefault(EnvShowVectors, config.Display.ShowVectors)
	config.Loop.TickRate = getEnvAsIntOrDefault(EnvTickRate, config.Loop.TickRate)
	config.Loop.MaxTicks = getEnvAsIntOrDefault(EnvMaxTicks, config.Loop.MaxTicks)
	config.Loop.Seed = getEnvAsInt64OrDefault(EnvSeed, config.Loop.Seed)
	config.Logging.Level = getEnvOrDefault(EnvLogLevel, config.Logging.Level)
	config.Logging.Format = getEnvOrDefault(EnvLogFormat, config.Logging.Format)

	return config.Validate()
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64OrDefault(key string, defaultValue int64) int64 {
	if value, err := strconv.ParseInt(os.Getenv(key), 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}
