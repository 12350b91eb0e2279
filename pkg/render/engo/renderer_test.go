// pkg/render/engo/renderer_test.go
package engo

import (
	"math"
	"os"
	"testing"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-gravnav/pkg/entity"
	"github.com/opd-ai/go-gravnav/pkg/physics"
)

func TestMain(m *testing.M) {
	// z-index changes are announced on the engo mailbox, which only engo.Run creates
	if engo.Mailbox == nil {
		engo.Mailbox = &engo.MessageManager{}
	}
	os.Exit(m.Run())
}

// fakeSink records the sprites added to the render system
type fakeSink struct {
	added []*common.RenderComponent
}

func (s *fakeSink) Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent) {
	s.added = append(s.added, render)
}

// universe builds an 800x600 universe with one sun and two planets
func universe() *entity.Configuration {
	start := physics.Vector2D{X: 100, Y: 100}
	cfg := &entity.Configuration{
		Width:         800,
		Height:        600,
		StartingPoint: start,
		ArrivalPoint:  physics.Vector2D{X: 700, Y: 500},
		Spaceship:     entity.NewSpaceship(start),
		StarCount:     3,
		SolarSystems: []entity.SolarSystem{{
			Sun:     *entity.NewSun(physics.Vector2D{X: 400, Y: 300}, 50),
			Planets: []entity.Planet{entity.NewPlanet(10, 100), entity.NewPlanet(5, -150)},
		}},
	}
	cfg.Spaceship.Launch(start, math.Pi/2)
	return cfg
}

func newTestRenderer() (*EngoRenderer, *fakeSink) {
	sink := &fakeSink{}
	return NewEngoRenderer(sink, NewAssetManager(), NewCamera(800, 600, 800, 600)), sink
}

func visible(p *pool) int {
	count := 0
	for _, s := range p.sprites {
		if !s.Hidden {
			count++
		}
	}
	return count
}

func TestEngoRenderer_RenderUniverse(t *testing.T) {
	r, sink := newTestRenderer()

	entity.RenderUniverse(r, universe(), true)

	// two markers, the ship, two vectors, the sun, two orbits and two planets
	if len(sink.added) != 10 {
		t.Errorf("sprites added = %d, want 10", len(sink.added))
	}
	if r.SpriteCount() != 10 {
		t.Errorf("SpriteCount() = %d, want 10", r.SpriteCount())
	}

	counts := map[Role]int{
		RoleStart: 1, RoleArrival: 1, RoleSpaceship: 1, RoleTrajectory: 1,
		RoleGravity: 1, RoleSun: 1, RoleOrbit: 2, RolePlanet: 2,
	}
	for role, want := range counts {
		if got := len(r.pools[role].sprites); got != want {
			t.Errorf("sprites of role %d = %d, want %d", role, got, want)
		}
	}
}

func TestEngoRenderer_ReusesSprites(t *testing.T) {
	r, sink := newTestRenderer()
	cfg := universe()

	for i := 0; i < 5; i++ {
		entity.RenderUniverse(r, cfg, true)
	}

	if len(sink.added) != 10 {
		t.Errorf("sprites added after 5 frames = %d, want 10", len(sink.added))
	}
}

func TestEngoRenderer_HidesUnusedSprites(t *testing.T) {
	r, sink := newTestRenderer()
	cfg := universe()

	entity.RenderUniverse(r, cfg, true)
	entity.RenderUniverse(r, cfg, false)

	if len(sink.added) != 10 {
		t.Errorf("sprites added = %d, want 10", len(sink.added))
	}
	if got := visible(r.pools[RoleTrajectory]); got != 0 {
		t.Errorf("visible trajectory sprites = %d, want 0", got)
	}
	if got := visible(r.pools[RoleSpaceship]); got != 1 {
		t.Errorf("visible spaceship sprites = %d, want 1", got)
	}

	entity.RenderUniverse(r, cfg, true)
	if got := visible(r.pools[RoleTrajectory]); got != 1 {
		t.Errorf("visible trajectory sprites = %d, want 1", got)
	}
}

func TestEngoRenderer_Placement(t *testing.T) {
	r, _ := newTestRenderer()
	entity.RenderUniverse(r, universe(), true)

	tests := []struct {
		name     string
		role     Role
		position engo.Point
		width    float32
		height   float32
		rotation float32
	}{
		{"sun", RoleSun, engo.Point{X: 350, Y: 250}, 100, 100, 0},
		{"spaceship", RoleSpaceship, engo.Point{X: 95, Y: 95}, SpaceshipSize, SpaceshipSize, 0},
		{"start", RoleStart, engo.Point{X: 95, Y: 95}, MarkerSize, MarkerSize, 0},
		{"arrival", RoleArrival, engo.Point{X: 695, Y: 495}, MarkerSize, MarkerSize, 0},
		{"trajectory", RoleTrajectory, engo.Point{X: 100, Y: 100}, 40, 1, 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := r.pools[tt.role].sprites[0]
			if s.Position != tt.position {
				t.Errorf("Position = %v, want %v", s.Position, tt.position)
			}
			if s.Width != tt.width || s.Height != tt.height {
				t.Errorf("size = %vx%v, want %vx%v", s.Width, s.Height, tt.width, tt.height)
			}
			if s.Rotation != tt.rotation {
				t.Errorf("Rotation = %v, want %v", s.Rotation, tt.rotation)
			}
		})
	}
}

func TestEngoRenderer_Orbits(t *testing.T) {
	r, _ := newTestRenderer()
	entity.RenderUniverse(r, universe(), false)

	orbits := r.pools[RoleOrbit].sprites
	wantWidths := []float32{200, 300}
	for i, want := range wantWidths {
		if orbits[i].Width != want {
			t.Errorf("orbit %d Width = %v, want %v", i, orbits[i].Width, want)
		}
		center := engo.Point{X: orbits[i].Position.X + want/2, Y: orbits[i].Position.Y + want/2}
		if center != (engo.Point{X: 400, Y: 300}) {
			t.Errorf("orbit %d center = %v, want the sun", i, center)
		}
	}
}

func TestEngoRenderer_SpriteSetup(t *testing.T) {
	r, _ := newTestRenderer()
	entity.RenderUniverse(r, universe(), false)

	ship := r.pools[RoleSpaceship].sprites[0]
	if _, ok := ship.Drawable.(common.Rectangle); !ok {
		t.Errorf("spaceship Drawable = %T, want common.Rectangle", ship.Drawable)
	}
	if ship.Scale != (engo.Point{X: 1, Y: 1}) {
		t.Errorf("spaceship Scale = %v, want (1,1)", ship.Scale)
	}

	sun := r.pools[RoleSun].sprites[0]
	if _, ok := sun.Drawable.(common.Circle); !ok {
		t.Errorf("sun Drawable = %T, want common.Circle", sun.Drawable)
	}
}

func TestEngoRenderer_AddBorder(t *testing.T) {
	r, sink := newTestRenderer()

	r.AddBorder(800, 600)
	r.AddBorder(800, 600)

	if len(sink.added) != 1 {
		t.Errorf("sprites added = %d, want 1", len(sink.added))
	}
	if r.border.Position != (engo.Point{X: BorderEdge, Y: BorderEdge}) {
		t.Errorf("border Position = %v, want (%d,%d)", r.border.Position, BorderEdge, BorderEdge)
	}
	if r.border.Width != 780 || r.border.Height != 580 {
		t.Errorf("border size = %vx%v, want 780x580", r.border.Width, r.border.Height)
	}

	// the border survives frames
	entity.RenderUniverse(r, universe(), false)
	if r.border.Hidden {
		t.Error("border hidden after a frame")
	}
}
