// pkg/render/engo/hud.go
package engo

import (
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-gravnav/pkg/engine"
	"github.com/opd-ai/go-gravnav/pkg/render"
)

// HUD shows the frame rate and the score in the window title
type HUD struct {
	setTitle func(string)
	title    string
}

// NewHUD creates a HUD writing to the engo window title
func NewHUD() *HUD {
	return &HUD{setTitle: engo.SetTitle}
}

// Show updates the title after a tick. The window is only touched when
// the text changes.
func (hud *HUD) Show(frame engine.Frame) {
	title := render.Title(frame.FPS, frame.Config.Score)
	if title == hud.title {
		return
	}
	hud.title = title
	hud.setTitle(title)
}

// Title returns the last title shown
func (hud *HUD) Title() string {
	return hud.title
}
