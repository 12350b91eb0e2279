// pkg/render/engo/assets.go
package engo

import (
	"image/color"

	"github.com/EngoEngine/engo/common"
)

// Role identifies what a sprite depicts
type Role int

const (
	RoleBorder Role = iota
	RoleOrbit
	RoleSun
	RolePlanet
	RoleStart
	RoleArrival
	RoleTrajectory
	RoleGravity
	RoleSpaceship
)

// Sizes in world units
const (
	SpaceshipSize = 10
	MarkerSize    = 10
	BorderEdge    = 10
)

// asset is how one role is drawn
type asset struct {
	drawable common.Drawable
	color    color.Color
	zIndex   float32
}

// AssetManager hands out the shapes and colors of every role.
// Everything is drawn with engo's shape drawables so no texture is loaded.
type AssetManager struct {
	assets map[Role]asset
}

// NewAssetManager creates the default palette: yellow suns, cyan planets,
// red spaceship, white markers.
func NewAssetManager() *AssetManager {
	white := color.RGBA{255, 255, 255, 255}
	gray := color.RGBA{90, 90, 90, 255}

	return &AssetManager{
		assets: map[Role]asset{
			RoleBorder:     {common.Rectangle{BorderWidth: 1, BorderColor: white}, color.Transparent, 0},
			RoleOrbit:      {common.Circle{BorderWidth: 1, BorderColor: gray}, color.Transparent, 0},
			RoleSun:        {common.Circle{}, color.RGBA{255, 255, 0, 255}, 1},
			RolePlanet:     {common.Circle{}, color.RGBA{0, 255, 255, 255}, 1},
			RoleStart:      {common.Rectangle{BorderWidth: 1, BorderColor: white}, color.Transparent, 2},
			RoleArrival:    {common.Rectangle{BorderWidth: 1, BorderColor: white}, color.Transparent, 2},
			RoleTrajectory: {common.Rectangle{}, color.RGBA{0, 255, 0, 255}, 3},
			RoleGravity:    {common.Rectangle{}, color.RGBA{255, 128, 0, 255}, 3},
			RoleSpaceship:  {common.Rectangle{}, color.RGBA{255, 0, 0, 255}, 4},
		},
	}
}

// Drawable returns the shape of a role
func (am *AssetManager) Drawable(role Role) common.Drawable {
	if a, exists := am.assets[role]; exists {
		return a.drawable
	}
	return common.Rectangle{}
}

// Color returns the fill color of a role
func (am *AssetManager) Color(role Role) color.Color {
	if a, exists := am.assets[role]; exists {
		return a.color
	}
	return color.White
}

// ZIndex returns the drawing layer of a role, higher is drawn on top
func (am *AssetManager) ZIndex(role Role) float32 {
	return am.assets[role].zIndex
}
