// pkg/config/env_config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestApplyEnvironmentOverrides(t *testing.T) {
	t.Setenv(EnvScene, "scenes/env.txt")
	t.Setenv(EnvRenderer, RendererTerminal)
	t.Setenv(EnvTickRate, "120")
	t.Setenv(EnvMaxTicks, "900")
	t.Setenv(EnvSeed, "-42")
	t.Setenv(EnvShowVectors, "true")
	t.Setenv(EnvLogLevel, "DEBUG")
	t.Setenv(EnvLogFormat, "text")

	config := DefaultConfig()
	if err := ApplyEnvironmentOverrides(config); err != nil {
		t.Fatalf("ApplyEnvironmentOverrides() error = %v", err)
	}

	if config.ScenePath != "scenes/env.txt" {
		t.Errorf("ScenePath = %q", config.ScenePath)
	}
	if config.Display.Renderer != RendererTerminal || !config.Display.ShowVectors {
		t.Errorf("Display = %+v", config.Display)
	}
	if config.Loop.TickRate != 120 || config.Loop.MaxTicks != 900 || config.Loop.Seed != -42 {
		t.Errorf("Loop = %+v", config.Loop)
	}
	if config.Logging.Level != "DEBUG" || config.Logging.Format != "text" {
		t.Errorf("Logging = %+v", config.Logging)
	}
}

func TestApplyEnvironmentOverrides_InvalidValues(t *testing.T) {
	t.Setenv(EnvTickRate, "fast")
	t.Setenv(EnvShowVectors, "maybe")

	config := DefaultConfig()
	if err := ApplyEnvironmentOverrides(config); err != nil {
		t.Fatalf("ApplyEnvironmentOverrides() error = %v", err)
	}
	if config.Loop.TickRate != 60 || config.Display.ShowVectors {
		t.Errorf("unparsable values should be ignored, got %+v", config)
	}

	t.Setenv(EnvRenderer, "vulkan")
	if err := ApplyEnvironmentOverrides(DefaultConfig()); err == nil {
		t.Error("ApplyEnvironmentOverrides() should reject an unknown renderer")
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	content := "GRAVNAV_TEST_DOTENV_SCENE=scenes/dotenv.txt\nGRAVNAV_TEST_DOTENV_KEPT=from-file\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	t.Setenv("GRAVNAV_TEST_DOTENV_KEPT", "from-env")
	// registered so t restores the variable after godotenv sets it
	t.Setenv("GRAVNAV_TEST_DOTENV_SCENE", "")
	os.Unsetenv("GRAVNAV_TEST_DOTENV_SCENE")

	if err := LoadDotEnv(filepath.Join(dir, "missing.env"), path); err != nil {
		t.Fatalf("LoadDotEnv() error = %v", err)
	}

	if got := os.Getenv("GRAVNAV_TEST_DOTENV_SCENE"); got != "scenes/dotenv.txt" {
		t.Errorf("GRAVNAV_TEST_DOTENV_SCENE = %q, want scenes/dotenv.txt", got)
	}
	if got := os.Getenv("GRAVNAV_TEST_DOTENV_KEPT"); got != "from-env" {
		t.Errorf("GRAVNAV_TEST_DOTENV_KEPT = %q, existing variables must win", got)
	}
}

func TestLoadDotEnv_NoFiles(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Errorf("LoadDotEnv() with missing file = %v, want nil", err)
	}
}

func TestGetEnvHelperFunctions(t *testing.T) {
	t.Setenv("GRAVNAV_TEST_STRING", "test_value")
	if result := getEnvOrDefault("GRAVNAV_TEST_STRING", "default"); result != "test_value" {
		t.Errorf("getEnvOrDefault: expected 'test_value', got '%s'", result)
	}
	if result := getEnvOrDefault("GRAVNAV_TEST_NONEXISTENT", "default"); result != "default" {
		t.Errorf("getEnvOrDefault: expected 'default', got '%s'", result)
	}

	t.Setenv("GRAVNAV_TEST_INT", "42")
	if result := getEnvAsIntOrDefault("GRAVNAV_TEST_INT", 10); result != 42 {
		t.Errorf("getEnvAsIntOrDefault: expected 42, got %d", result)
	}
	t.Setenv("GRAVNAV_TEST_INT", "invalid")
	if result := getEnvAsIntOrDefault("GRAVNAV_TEST_INT", 10); result != 10 {
		t.Errorf("getEnvAsIntOrDefault with invalid value: expected 10, got %d", result)
	}

	t.Setenv("GRAVNAV_TEST_INT64", "9000000000")
	if result := getEnvAsInt64OrDefault("GRAVNAV_TEST_INT64", 1); result != 9000000000 {
		t.Errorf("getEnvAsInt64OrDefault: expected 9000000000, got %d", result)
	}

	t.Setenv("GRAVNAV_TEST_BOOL", "true")
	if result := getEnvAsBoolOrDefault("GRAVNAV_TEST_BOOL", false); !result {
		t.Errorf("getEnvAsBoolOrDefault: expected true, got %v", result)
	}
	if result := getEnvAsBoolOrDefault("GRAVNAV_TEST_NONEXISTENT", false); result {
		t.Errorf("getEnvAsBoolOrDefault: expected false, got %v", result)
	}
}
