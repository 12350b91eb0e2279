// pkg/render/engo/renderer.go
package engo

import (
	"math"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-gravnav/pkg/entity"
	"github.com/opd-ai/go-gravnav/pkg/physics"
)

// SpriteSink receives the sprites created by the renderer.
// *common.RenderSystem is the production sink.
type SpriteSink interface {
	Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent)
}

// sprite is an entity drawn by the render system
type sprite struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent
}

// pool holds the sprites of one role, reused from frame to frame
type pool struct {
	sprites []*sprite
	used    int
}

// EngoRenderer implements entity.Renderer using the Engo game engine.
// Each frame reuses the sprites of the previous one and hides the extra ones.
type EngoRenderer struct {
	sink   SpriteSink
	assets *AssetManager
	camera *Camera
	pools  map[Role]*pool
	border *sprite
}

// NewEngoRenderer creates a renderer adding its sprites to sink
func NewEngoRenderer(sink SpriteSink, assets *AssetManager, camera *Camera) *EngoRenderer {
	return &EngoRenderer{
		sink:   sink,
		assets: assets,
		camera: camera,
		pools:  make(map[Role]*pool),
	}
}

// newSprite creates a sprite for role and hands it to the sink.
// The drawable is set first since the render system picks its shader from it.
func (r *EngoRenderer) newSprite(role Role) *sprite {
	s := &sprite{BasicEntity: ecs.NewBasic()}
	s.Drawable = r.assets.Drawable(role)
	s.Color = r.assets.Color(role)
	s.Scale = engo.Point{X: 1, Y: 1}
	s.SetZIndex(r.assets.ZIndex(role))

	r.sink.Add(&s.BasicEntity, &s.RenderComponent, &s.SpaceComponent)
	return s
}

// next returns the next free sprite of role for this frame
func (r *EngoRenderer) next(role Role) *sprite {
	p, exists := r.pools[role]
	if !exists {
		p = &pool{}
		r.pools[role] = p
	}

	if p.used == len(p.sprites) {
		p.sprites = append(p.sprites, r.newSprite(role))
	}

	s := p.sprites[p.used]
	p.used++
	s.Hidden = false
	return s
}

// AddBorder draws the frame of a worldWidth x worldHeight universe.
// The border is not part of any frame and stays until the scene ends.
func (r *EngoRenderer) AddBorder(worldWidth, worldHeight int) {
	if r.border == nil {
		r.border = r.newSprite(RoleBorder)
	}
	topLeft := r.camera.WorldToScreen(physics.Vector2D{X: BorderEdge, Y: BorderEdge})
	r.border.Position = topLeft
	r.border.Width = r.camera.Length(float64(worldWidth - 2*BorderEdge))
	r.border.Height = r.camera.Length(float64(worldHeight - 2*BorderEdge))
}

func (r *EngoRenderer) placeCircle(s *sprite, center physics.Vector2D, radius float64) {
	pos := r.camera.WorldToScreen(center)
	size := r.camera.Length(radius)
	s.Position = engo.Point{X: pos.X - size, Y: pos.Y - size}
	s.Width = 2 * size
	s.Height = 2 * size
	s.Rotation = 0
}

func (r *EngoRenderer) placeSquare(s *sprite, center physics.Vector2D, side float64) {
	r.placeCircle(s, center, side/2)
}

// Clear implements entity.Renderer
func (r *EngoRenderer) Clear() {
	for _, p := range r.pools {
		p.used = 0
	}
}

// Present implements entity.Renderer
func (r *EngoRenderer) Present() {
	for _, p := range r.pools {
		for _, s := range p.sprites[p.used:] {
			s.Hidden = true
		}
	}
}

// RenderMarker implements entity.Renderer
func (r *EngoRenderer) RenderMarker(marker entity.Marker, position physics.Vector2D) {
	role := RoleStart
	if marker == entity.ArrivalMarker {
		role = RoleArrival
	}
	r.placeSquare(r.next(role), position, MarkerSize)
}

// RenderSpaceship implements entity.Renderer
func (r *EngoRenderer) RenderSpaceship(ship *entity.Spaceship) {
	r.placeSquare(r.next(RoleSpaceship), ship.Position, SpaceshipSize)
}

// RenderVector implements entity.Renderer.
// The line starts at origin and is VectorScale times the vector strength long.
func (r *EngoRenderer) RenderVector(kind entity.VectorKind, origin physics.Vector2D, vector physics.Polar) {
	role := RoleTrajectory
	if kind == entity.GravityVector {
		role = RoleGravity
	}

	s := r.next(role)
	s.Position = r.camera.WorldToScreen(origin)
	s.Width = r.camera.Length(vector.Strength * entity.VectorScale)
	s.Height = 1
	s.Rotation = float32(vector.Angle * 180 / math.Pi)
}

// RenderSun implements entity.Renderer
func (r *EngoRenderer) RenderSun(sun *entity.Sun) {
	r.placeCircle(r.next(RoleSun), sun.Position, sun.GetCollider().Radius)
}

// RenderPlanet implements entity.Renderer
func (r *EngoRenderer) RenderPlanet(planet *entity.Planet, center physics.Vector2D) {
	r.placeCircle(r.next(RoleOrbit), center, planet.OrbitRadius())
	r.placeCircle(r.next(RolePlanet), planet.Position, planet.GetCollider().Radius)
}

// SpriteCount returns the number of sprites created so far, border included
func (r *EngoRenderer) SpriteCount() int {
	count := 0
	for _, p := range r.pools {
		count += len(p.sprites)
	}
	if r.border != nil {
		count++
	}
	return count
}
