// cmd/gravnav/app.go
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/opd-ai/go-gravnav/pkg/config"
	"github.com/opd-ai/go-gravnav/pkg/engine"
	"github.com/opd-ai/go-gravnav/pkg/event"
	"github.com/opd-ai/go-gravnav/pkg/logging"
)

const defaultConfigPath = "gravnav.json"

// app holds the output streams shared by every command
type app struct {
	stdout io.Writer
	stderr io.Writer
}

// newApp builds the gravnav command tree writing to stdout and stderr
func newApp(stdout, stderr io.Writer) *cli.Command {
	a := &app{stdout: stdout, stderr: stderr}

	return &cli.Command{
		Name:      "gravnav",
		Usage:     "pilot a spaceship through the gravity of a toroidal universe",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   defaultConfigPath,
				Usage:   "settings file, skipped when missing",
				Sources: cli.EnvVars("GRAVNAV_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "env-file",
				Value:   config.DefaultDotEnv,
				Usage:   "env file loaded before the GRAVNAV_* overrides",
				Sources: cli.EnvVars("GRAVNAV_ENV_FILE"),
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "DEBUG, INFO, WARN or ERROR",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "json or text",
			},
		},
		Commands: []*cli.Command{
			a.playCommand(),
			a.runCommand(),
			a.validateCommand(),
			a.configCommand(),
		},
	}
}

// settings loads the settings file, the env file and the environment
// overrides, then applies the global flags
func (a *app) settings(cmd *cli.Command) (*config.GameConfig, error) {
	if err := config.LoadDotEnv(cmd.String("env-file")); err != nil {
		return nil, err
	}

	path := cmd.String("config")
	settings, err := config.LoadConfig(path)
	if errors.Is(err, fs.ErrNotExist) {
		settings = config.DefaultConfig()
	} else if err != nil {
		return nil, err
	}

	if err := config.ApplyEnvironmentOverrides(settings); err != nil {
		return nil, err
	}

	if cmd.IsSet("log-level") {
		settings.Logging.Level = cmd.String("log-level")
	}
	if cmd.IsSet("log-format") {
		settings.Logging.Format = cmd.String("log-format")
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// logger creates the logger described by settings
func (a *app) logger(settings *config.GameConfig) *logging.Logger {
	return logging.NewLoggerWithWriter(a.stderr, settings.Logging.Level, settings.Logging.Format)
}

// scenePath returns the scene given on the command line, or the one of the settings
func scenePath(cmd *cli.Command, settings *config.GameConfig) (string, error) {
	if path := cmd.Args().First(); path != "" {
		return path, nil
	}
	if settings.ScenePath != "" {
		return settings.ScenePath, nil
	}
	return "", fmt.Errorf("no scene given: pass a scene file or set %s", config.EnvScene)
}

// announceWin prints the score when game is won
func (a *app) announceWin(game *engine.Game) {
	game.EventBus.Subscribe(event.GameWon, func(e event.Event) {
		if won, ok := e.(*event.OutcomeEvent); ok {
			fmt.Fprintf(a.stdout, "Well played ! Score : %d\n", won.Score)
		}
	})
}

// withRunID tags every log line of a game with the same correlation ID
func withRunID(ctx context.Context) context.Context {
	return logging.WithCorrelationID(ctx, logging.GenerateCorrelationID())
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
