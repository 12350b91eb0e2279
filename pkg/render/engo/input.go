// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-gravnav/pkg/entity"
)

// Button names registered with engo
const (
	ButtonTurnLeft  = "turnLeft"
	ButtonTurnRight = "turnRight"
	ButtonLaunch    = "launch"
	ButtonVectors   = "vectors"
	ButtonQuit      = "quit"
)

// Controls is the player input of one frame.
// Turning is held, the other controls trigger once per key press.
type Controls struct {
	Left          bool
	Right         bool
	Launch        bool
	ToggleVectors bool
	Quit          bool
}

// ButtonReader gives the state of named buttons
type ButtonReader interface {
	Down(name string) bool
	JustPressed(name string) bool
}

type engoButtons struct{}

func (engoButtons) Down(name string) bool {
	return engo.Input.Button(name).Down()
}

func (engoButtons) JustPressed(name string) bool {
	return engo.Input.Button(name).JustPressed()
}

// ReadControls samples the buttons
func ReadControls(buttons ButtonReader) Controls {
	return Controls{
		Left:          buttons.Down(ButtonTurnLeft),
		Right:         buttons.Down(ButtonTurnRight),
		Launch:        buttons.JustPressed(ButtonLaunch),
		ToggleVectors: buttons.JustPressed(ButtonVectors),
		Quit:          buttons.JustPressed(ButtonQuit),
	}
}

// InputSystem samples the keyboard once per frame
type InputSystem struct {
	buttons  ButtonReader
	controls Controls
}

// NewInputSystem creates an input system reading the engo keyboard
func NewInputSystem() *InputSystem {
	return &InputSystem{buttons: engoButtons{}}
}

// Priority makes the world update input before the game system
func (is *InputSystem) Priority() int {
	return 100
}

// Remove satisfies the ecs.System interface
func (is *InputSystem) Remove(basic ecs.BasicEntity) {}

// Update samples the controls of this frame
func (is *InputSystem) Update(dt float32) {
	is.controls = ReadControls(is.buttons)
}

// Controls returns the controls sampled by the last Update
func (is *InputSystem) Controls() Controls {
	return is.controls
}

// Steer implements engine.Pilot with the turn keys
func (is *InputSystem) Steer(cfg *entity.Configuration) (left, right bool) {
	return is.controls.Left, is.controls.Right
}

// SetupInputBindings sets up the key bindings for the game
func SetupInputBindings() {
	engo.Input.RegisterButton(ButtonTurnLeft, engo.KeyArrowLeft)
	engo.Input.RegisterButton(ButtonTurnRight, engo.KeyArrowRight)
	engo.Input.RegisterButton(ButtonLaunch, engo.KeySpace)
	engo.Input.RegisterButton(ButtonVectors, engo.KeyV)
	engo.Input.RegisterButton(ButtonQuit, engo.KeyEscape)
}
