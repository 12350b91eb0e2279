// pkg/render/engo/camera.go
package engo

import (
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-gravnav/pkg/physics"
)

// Camera fits the whole universe in the window, keeping its aspect ratio
type Camera struct {
	zoom   float32
	offset engo.Point
}

// NewCamera creates a camera showing a worldWidth x worldHeight universe
// centered in a screenWidth x screenHeight window
func NewCamera(worldWidth, worldHeight int, screenWidth, screenHeight float32) *Camera {
	if worldWidth <= 0 || worldHeight <= 0 || screenWidth <= 0 || screenHeight <= 0 {
		return &Camera{zoom: 1}
	}

	zoom := screenWidth / float32(worldWidth)
	if zy := screenHeight / float32(worldHeight); zy < zoom {
		zoom = zy
	}

	return &Camera{
		zoom: zoom,
		offset: engo.Point{
			X: (screenWidth - float32(worldWidth)*zoom) / 2,
			Y: (screenHeight - float32(worldHeight)*zoom) / 2,
		},
	}
}

// GetZoom returns the number of pixels per world unit
func (c *Camera) GetZoom() float32 {
	return c.zoom
}

// WorldToScreen converts world coordinates to screen coordinates
func (c *Camera) WorldToScreen(worldPos physics.Vector2D) engo.Point {
	return engo.Point{
		X: float32(worldPos.X)*c.zoom + c.offset.X,
		Y: float32(worldPos.Y)*c.zoom + c.offset.Y,
	}
}

// ScreenToWorld converts screen coordinates to world coordinates
func (c *Camera) ScreenToWorld(screenPos engo.Point) physics.Vector2D {
	return physics.Vector2D{
		X: float64((screenPos.X - c.offset.X) / c.zoom),
		Y: float64((screenPos.Y - c.offset.Y) / c.zoom),
	}
}

// Length converts a world distance to pixels
func (c *Camera) Length(worldLength float64) float32 {
	return float32(worldLength) * c.zoom
}
