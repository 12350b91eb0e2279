// pkg/render/engo/scene.go
package engo

import (
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-gravnav/pkg/engine"
	"github.com/opd-ai/go-gravnav/pkg/entity"
	"github.com/opd-ai/go-gravnav/pkg/logging"
)

// Options configures the game window
type Options struct {
	Title       string
	Width       int // 0 uses the universe width
	Height      int // 0 uses the universe height
	Fullscreen  bool
	TickRate    int
	Seed        int64
	ShowVectors bool
	Logger      *logging.Logger
	OnEnd       func(engine.Outcome) // called once when the game is won or lost
}

// GameScene represents the main game scene in Engo
type GameScene struct {
	game   *engine.Game
	opts   Options
	system *GameSystem
}

// NewGameScene creates a scene playing game
func NewGameScene(game *engine.Game, opts Options) *GameScene {
	if opts.Title == "" {
		opts.Title = "gravnav"
	}
	if opts.Width <= 0 {
		opts.Width = game.Config.Width
	}
	if opts.Height <= 0 {
		opts.Height = game.Config.Height
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNopLogger()
	}
	return &GameScene{game: game, opts: opts}
}

// Type returns the scene type (required by Engo)
func (scene *GameScene) Type() string {
	return "GameScene"
}

// Preload is called before the scene starts (required by Engo)
func (scene *GameScene) Preload() {}

// Setup is called when the scene starts (required by Engo)
func (scene *GameScene) Setup(u engo.Updater) {
	world, _ := u.(*ecs.World)
	cfg := scene.game.Config

	common.SetBackground(color.Black)

	renderSystem := &common.RenderSystem{}
	world.AddSystem(renderSystem)

	SetupInputBindings()
	input := NewInputSystem()
	world.AddSystem(input)

	camera := NewCamera(cfg.Width, cfg.Height, float32(scene.opts.Width), float32(scene.opts.Height))
	renderer := NewEngoRenderer(renderSystem, NewAssetManager(), camera)
	renderer.AddBorder(cfg.Width, cfg.Height)

	// the clock starts with the scene so planets orbit before the launch
	runner := engine.NewRunner(scene.game, engine.NewSystemClock(), 0, scene.opts.Logger)
	runner.Renderer = renderer
	runner.Pilot = input
	runner.ShowVectors = scene.opts.ShowVectors
	runner.OnFrame = NewHUD().Show

	scene.system = NewGameSystem(runner, input, scene.opts.Seed, scene.opts.TickRate, scene.opts.Logger)
	if scene.opts.OnEnd != nil {
		scene.system.onEnd = scene.opts.OnEnd
	}
	world.AddSystem(scene.system)

	entity.RenderUniverse(renderer, cfg, runner.ShowVectors)
}

// Outcome returns how the game ended, OutcomeContinue when it was stopped
func (scene *GameScene) Outcome() engine.Outcome {
	if scene.system == nil {
		return engine.OutcomeContinue
	}
	return scene.system.Outcome()
}

// RunOptions returns the window settings of the scene
func (scene *GameScene) RunOptions() engo.RunOptions {
	return engo.RunOptions{
		Title:      scene.opts.Title,
		Width:      scene.opts.Width,
		Height:     scene.opts.Height,
		Fullscreen: scene.opts.Fullscreen,
		VSync:      true,
	}
}

// Run opens the window and plays game until it ends or the player quits.
// It blocks until the window is closed.
func Run(game *engine.Game, opts Options) engine.Outcome {
	scene := NewGameScene(game, opts)
	engo.Run(scene.RunOptions(), scene)
	return scene.Outcome()
}
