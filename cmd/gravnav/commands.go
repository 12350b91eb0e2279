// cmd/gravnav/commands.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/opd-ai/go-gravnav/pkg/config"
	"github.com/opd-ai/go-gravnav/pkg/engine"
	"github.com/opd-ai/go-gravnav/pkg/render"
	engorender "github.com/opd-ai/go-gravnav/pkg/render/engo"
	"github.com/opd-ai/go-gravnav/pkg/scene"
)

// loopFlags are shared by play and run
func loopFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{Name: "tick-rate", Usage: "ticks per second"},
		&cli.Int64Flag{Name: "seed", Usage: "launch angle seed, 0 uses the clock"},
		&cli.BoolFlag{Name: "vectors", Usage: "show the trajectory and gravity vectors"},
	}
}

// applyLoopFlags overrides settings with the loop flags that were given
func applyLoopFlags(cmd *cli.Command, settings *config.GameConfig) error {
	if cmd.IsSet("tick-rate") {
		settings.Loop.TickRate = cmd.Int("tick-rate")
	}
	if cmd.IsSet("seed") {
		settings.Loop.Seed = cmd.Int64("seed")
	}
	if cmd.IsSet("vectors") {
		settings.Display.ShowVectors = cmd.Bool("vectors")
	}
	return settings.Validate()
}

// loadGame reads the scene of the command into a waiting game
func (a *app) loadGame(ctx context.Context, cmd *cli.Command, settings *config.GameConfig) (*engine.Game, error) {
	path, err := scenePath(cmd, settings)
	if err != nil {
		return nil, err
	}
	cfg, err := scene.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load scene %s: %w", path, err)
	}

	game := engine.NewGame(cfg)
	a.announceWin(game)
	a.logger(settings).Info(ctx, "scene loaded",
		"scene", path,
		"width", cfg.Width,
		"height", cfg.Height,
		"solar_systems", len(cfg.SolarSystems),
		"stars", cfg.StarCount,
	)
	return game, nil
}

func (a *app) playCommand() *cli.Command {
	return &cli.Command{
		Name:      "play",
		Usage:     "open a window and fly the scene",
		ArgsUsage: "<scene>",
		Flags: append(loopFlags(),
			&cli.BoolFlag{Name: "fullscreen", Usage: "use the whole screen"},
			&cli.IntFlag{Name: "width", Usage: "window width, 0 uses the scene width"},
			&cli.IntFlag{Name: "height", Usage: "window height, 0 uses the scene height"},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			settings, err := a.settings(cmd)
			if err != nil {
				return err
			}
			if cmd.IsSet("fullscreen") {
				settings.Display.Fullscreen = cmd.Bool("fullscreen")
			}
			if cmd.IsSet("width") {
				settings.Display.Width = cmd.Int("width")
			}
			if cmd.IsSet("height") {
				settings.Display.Height = cmd.Int("height")
			}
			if err := applyLoopFlags(cmd, settings); err != nil {
				return err
			}

			ctx = withRunID(ctx)
			game, err := a.loadGame(ctx, cmd, settings)
			if err != nil {
				return err
			}

			logger := a.logger(settings)
			outcome := engorender.Run(game, engorender.Options{
				Title:       settings.Display.Title,
				Width:       settings.Display.Width,
				Height:      settings.Display.Height,
				Fullscreen:  settings.Display.Fullscreen,
				TickRate:    settings.Loop.TickRate,
				Seed:        engine.ResolveSeed(settings.Loop.Seed),
				ShowVectors: settings.Display.ShowVectors,
				Logger:      logger,
			})
			logger.Info(ctx, "window closed", "outcome", outcome.String(), "score", game.Config.Score)
			return nil
		},
	}
}

func (a *app) runCommand() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "fly the scene headless with a random launch and no steering",
		ArgsUsage: "<scene>",
		Flags: append(loopFlags(),
			&cli.StringFlag{Name: "renderer", Usage: "terminal or null"},
			&cli.IntFlag{Name: "max-ticks", Usage: "stop after this many ticks, 0 runs until the game ends"},
			&cli.BoolFlag{Name: "unpaced", Usage: "tick as fast as possible"},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			settings, err := a.settings(cmd)
			if err != nil {
				return err
			}
			if cmd.IsSet("renderer") {
				settings.Display.Renderer = cmd.String("renderer")
			}
			if cmd.IsSet("max-ticks") {
				settings.Loop.MaxTicks = cmd.Int("max-ticks")
			}
			if err := applyLoopFlags(cmd, settings); err != nil {
				return err
			}

			ctx = withRunID(ctx)
			game, err := a.loadGame(ctx, cmd, settings)
			if err != nil {
				return err
			}

			tickRate := settings.Loop.TickRate
			if cmd.Bool("unpaced") {
				tickRate = 0
			}
			return a.runHeadless(ctx, game, settings, tickRate)
		},
	}
}

// runHeadless launches the spaceship at a seeded random angle and ticks
// until the game ends, the tick limit is reached or the process is interrupted
func (a *app) runHeadless(ctx context.Context, game *engine.Game, settings *config.GameConfig, tickRate int) error {
	logger := a.logger(settings)

	runner := engine.NewRunner(game, engine.NewSystemClock(), tickRate, logger)
	runner.ShowVectors = settings.Display.ShowVectors
	runner.MaxTicks = settings.Loop.MaxTicks

	var terminal *render.TerminalRenderer
	switch settings.Display.Renderer {
	case config.RendererNull:
		runner.Renderer = render.NewNullRenderer(logger)
	default:
		cfg := game.Config
		terminal = render.NewTerminalRenderer(a.stdout,
			settings.Display.TerminalColumns, settings.Display.TerminalRows, cfg.Width, cfg.Height)
		terminal.ClearScreen = true
		runner.Renderer = terminal
		runner.OnFrame = func(f engine.Frame) {
			terminal.SetTitle(render.Title(f.FPS, f.Config.Score))
		}
	}

	seed := engine.ResolveSeed(settings.Loop.Seed)
	angle := engine.LaunchAngle(seed)
	if err := game.Launch(angle); err != nil {
		return err
	}
	logger.Info(ctx, "spaceship launched", "seed", seed, "angle", angle)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	outcome, err := runner.Run(ctx)
	if terminal != nil && terminal.Err() != nil {
		return fmt.Errorf("failed to draw frame: %w", terminal.Err())
	}
	if err != nil {
		logger.Warn(ctx, "run interrupted", "error", err)
	}

	fmt.Fprintf(a.stdout, "%s after %d ticks, score %d\n", outcome, game.CurrentTick, game.Config.Score)
	return nil
}

func (a *app) validateCommand() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "check that scene files load",
		ArgsUsage: "<scene>...",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			paths := cmd.Args().Slice()
			if len(paths) == 0 {
				return fmt.Errorf("no scene given")
			}

			failed := 0
			for _, path := range paths {
				cfg, err := scene.Load(path)
				if err != nil {
					failed++
					fmt.Fprintf(a.stdout, "%s: %v\n", path, err)
					continue
				}
				fmt.Fprintf(a.stdout, "%s: ok (%dx%d, %d solar systems, %d stars)\n",
					path, cfg.Width, cfg.Height, len(cfg.SolarSystems), cfg.StarCount)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d scenes are invalid", failed, len(paths))
			}
			return nil
		},
	}
}

func (a *app) configCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "manage the settings file",
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "write the default settings to the --config path",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "force", Usage: "overwrite an existing file"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					path := cmd.String("config")
					if fileExists(path) && !cmd.Bool("force") {
						return fmt.Errorf("%s already exists, use --force to overwrite it", path)
					}
					if err := config.SaveConfig(config.DefaultConfig(), path); err != nil {
						return err
					}
					fmt.Fprintf(a.stdout, "wrote %s\n", path)
					return nil
				},
			},
		},
	}
}

