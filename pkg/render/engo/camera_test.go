// pkg/render/engo/camera_test.go
package engo

import (
	"testing"

	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-gravnav/pkg/physics"
)

func TestNewCamera(t *testing.T) {
	tests := []struct {
		name           string
		worldW, worldH int
		screenW        float32
		screenH        float32
		zoom           float32
		offset         engo.Point
	}{
		{"same size", 800, 600, 800, 600, 1, engo.Point{}},
		{"narrow window", 800, 600, 400, 600, 0.5, engo.Point{X: 0, Y: 150}},
		{"wide window", 800, 600, 1600, 600, 1, engo.Point{X: 400, Y: 0}},
		{"doubled", 400, 300, 800, 600, 2, engo.Point{}},
		{"empty universe", 0, 0, 800, 600, 1, engo.Point{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCamera(tt.worldW, tt.worldH, tt.screenW, tt.screenH)
			if c.GetZoom() != tt.zoom {
				t.Errorf("GetZoom() = %v, want %v", c.GetZoom(), tt.zoom)
			}
			if c.offset != tt.offset {
				t.Errorf("offset = %v, want %v", c.offset, tt.offset)
			}
		})
	}
}

func TestCamera_WorldToScreen(t *testing.T) {
	c := NewCamera(800, 600, 400, 600)

	tests := []struct {
		world  physics.Vector2D
		screen engo.Point
	}{
		{physics.Vector2D{X: 0, Y: 0}, engo.Point{X: 0, Y: 150}},
		{physics.Vector2D{X: 800, Y: 600}, engo.Point{X: 400, Y: 450}},
		{physics.Vector2D{X: 400, Y: 300}, engo.Point{X: 200, Y: 300}},
	}

	for _, tt := range tests {
		if got := c.WorldToScreen(tt.world); got != tt.screen {
			t.Errorf("WorldToScreen(%v) = %v, want %v", tt.world, got, tt.screen)
		}
		if got := c.ScreenToWorld(tt.screen); got != tt.world {
			t.Errorf("ScreenToWorld(%v) = %v, want %v", tt.screen, got, tt.world)
		}
	}
}

func TestCamera_Length(t *testing.T) {
	c := NewCamera(800, 600, 400, 600)
	if got := c.Length(100); got != 50 {
		t.Errorf("Length(100) = %v, want 50", got)
	}
}
