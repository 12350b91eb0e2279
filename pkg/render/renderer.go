// pkg/render/renderer.go
package render

import (
	"context"
	"fmt"

	"github.com/opd-ai/go-gravnav/pkg/entity"
	"github.com/opd-ai/go-gravnav/pkg/logging"
	"github.com/opd-ai/go-gravnav/pkg/physics"
)

// Title formats the window title shown while a game runs
func Title(fps float64, score int) string {
	return fmt.Sprintf("gravnav | FPS: %.1f | Score: %d", fps, score)
}

// NullRenderer is an implementation of entity.Renderer that only logs.
type NullRenderer struct {
	logger *logging.Logger
}

// NewNullRenderer creates a NullRenderer logging at debug level.
// A nil logger discards everything.
func NewNullRenderer(logger *logging.Logger) *NullRenderer {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &NullRenderer{logger: logger}
}

// Clear implements entity.Renderer.
func (d *NullRenderer) Clear() {
	d.logger.Debug(context.Background(), "Clear called")
}

// Present implements entity.Renderer.
func (d *NullRenderer) Present() {
	d.logger.Debug(context.Background(), "Present called")
}

// RenderMarker implements entity.Renderer.
func (d *NullRenderer) RenderMarker(marker entity.Marker, position physics.Vector2D) {
	d.logger.Debug(context.Background(), "RenderMarker called",
		"marker", marker.String(),
		"x", position.X,
		"y", position.Y,
	)
}

// RenderSpaceship implements entity.Renderer.
func (d *NullRenderer) RenderSpaceship(ship *entity.Spaceship) {
	ctx := context.Background()
	if ship == nil {
		d.logger.Debug(ctx, "RenderSpaceship called with nil spaceship")
		return
	}
	d.logger.Debug(ctx, "RenderSpaceship called",
		"x", ship.Position.X,
		"y", ship.Position.Y,
		"speed", ship.Trajectory.Strength,
		"heading", ship.Trajectory.Angle,
	)
}

// RenderVector implements entity.Renderer.
func (d *NullRenderer) RenderVector(kind entity.VectorKind, origin physics.Vector2D, vector physics.Polar) {
	d.logger.Debug(context.Background(), "RenderVector called",
		"vector", kind.String(),
		"strength", vector.Strength,
		"angle", vector.Angle,
	)
}

// RenderSun implements entity.Renderer.
func (d *NullRenderer) RenderSun(sun *entity.Sun) {
	ctx := context.Background()
	if sun == nil {
		d.logger.Debug(ctx, "RenderSun called with nil sun")
		return
	}
	d.logger.Debug(ctx, "RenderSun called",
		"x", sun.Position.X,
		"y", sun.Position.Y,
		"radius", sun.Radius,
	)
}

// RenderPlanet implements entity.Renderer.
func (d *NullRenderer) RenderPlanet(planet *entity.Planet, center physics.Vector2D) {
	ctx := context.Background()
	if planet == nil {
		d.logger.Debug(ctx, "RenderPlanet called with nil planet")
		return
	}
	d.logger.Debug(ctx, "RenderPlanet called",
		"x", planet.Position.X,
		"y", planet.Position.Y,
		"radius", planet.Radius,
		"orbit", planet.Orbit,
	)
}
