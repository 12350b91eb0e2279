package render

import (
	"bufio"
	"io"
	"math"
	"strings"

	"github.com/opd-ai/go-gravnav/pkg/entity"
	"github.com/opd-ai/go-gravnav/pkg/physics"
)

// Glyphs drawn by the TerminalRenderer
const (
	GlyphSpaceship  = 'A'
	GlyphStart      = 'S'
	GlyphArrival    = 'X'
	GlyphSun        = '@'
	GlyphSunBody    = '*'
	GlyphPlanet     = 'o'
	GlyphOrbit      = '.'
	GlyphTrajectory = '+'
	GlyphGravity    = '~'
)

// clearScreen moves the cursor home and clears the terminal
const clearScreen = "\033[H\033[2J"

// orbitSamples is the number of points drawn along an orbit
const orbitSamples = 72

// vectorSamples is the number of points drawn along a vector
const vectorSamples = 12

type cell struct {
	x, y  int
	glyph rune
}

// TerminalRenderer provides a simple ASCII-based rendering of a universe.
// The whole universe is scaled down to the character grid.
type TerminalRenderer struct {
	out         io.Writer
	width       int
	height      int
	buffer      [][]rune
	scaleX      float64
	scaleY      float64
	overlay     []cell
	title       string
	ClearScreen bool
	err         error
}

// NewTerminalRenderer creates a renderer drawing a worldWidth x worldHeight
// universe on a grid of columns x rows characters.
func NewTerminalRenderer(out io.Writer, columns, rows, worldWidth, worldHeight int) *TerminalRenderer {
	buffer := make([][]rune, rows)
	for i := range buffer {
		buffer[i] = make([]rune, columns)
	}

	return &TerminalRenderer{
		out:    out,
		width:  columns,
		height: rows,
		buffer: buffer,
		scaleX: float64(worldWidth) / float64(columns),
		scaleY: float64(worldHeight) / float64(rows),
	}
}

// SetTitle sets the line printed under the frame
func (r *TerminalRenderer) SetTitle(title string) {
	r.title = title
}

// Err returns the first write error met by Present
func (r *TerminalRenderer) Err() error {
	return r.err
}

// worldToScreen converts world coordinates to grid coordinates
func (r *TerminalRenderer) worldToScreen(pos physics.Vector2D) (int, int) {
	return int(math.Floor(pos.X / r.scaleX)), int(math.Floor(pos.Y / r.scaleY))
}

// screenToWorld returns the world position of the center of a grid cell
func (r *TerminalRenderer) screenToWorld(x, y int) physics.Vector2D {
	return physics.Vector2D{
		X: (float64(x) + 0.5) * r.scaleX,
		Y: (float64(y) + 0.5) * r.scaleY,
	}
}

func (r *TerminalRenderer) inBounds(x, y int) bool {
	return x >= 0 && x < r.width && y >= 0 && y < r.height
}

func (r *TerminalRenderer) plot(pos physics.Vector2D, glyph rune) {
	if x, y := r.worldToScreen(pos); r.inBounds(x, y) {
		r.buffer[y][x] = glyph
	}
}

// plotBlank only draws on empty cells
func (r *TerminalRenderer) plotBlank(pos physics.Vector2D, glyph rune) {
	if x, y := r.worldToScreen(pos); r.inBounds(x, y) && r.buffer[y][x] == ' ' {
		r.buffer[y][x] = glyph
	}
}

// disk fills every cell whose center lies inside the circle
func (r *TerminalRenderer) disk(circle physics.Circle, glyph rune) {
	for y := range r.buffer {
		for x := range r.buffer[y] {
			if circle.Contains(r.screenToWorld(x, y)) {
				r.buffer[y][x] = glyph
			}
		}
	}
}

// Clear implements entity.Renderer
func (r *TerminalRenderer) Clear() {
	for y := range r.buffer {
		for x := range r.buffer[y] {
			r.buffer[y][x] = ' '
		}
	}
	r.overlay = r.overlay[:0]
}

// Present implements entity.Renderer
func (r *TerminalRenderer) Present() {
	// the spaceship and markers stay visible over the bodies
	for _, c := range r.overlay {
		if r.inBounds(c.x, c.y) {
			r.buffer[c.y][c.x] = c.glyph
		}
	}

	w := bufio.NewWriter(r.out)
	if r.ClearScreen {
		w.WriteString(clearScreen)
	}

	border := "+" + strings.Repeat("-", r.width) + "+\n"
	w.WriteString(border)
	for y := range r.buffer {
		w.WriteByte('|')
		w.WriteString(string(r.buffer[y]))
		w.WriteString("|\n")
	}
	w.WriteString(border)

	if r.title != "" {
		w.WriteString(r.title)
		w.WriteByte('\n')
	}

	if err := w.Flush(); err != nil && r.err == nil {
		r.err = err
	}
}

// RenderMarker implements entity.Renderer
func (r *TerminalRenderer) RenderMarker(marker entity.Marker, position physics.Vector2D) {
	glyph := GlyphStart
	if marker == entity.ArrivalMarker {
		glyph = GlyphArrival
	}
	x, y := r.worldToScreen(position)
	r.overlay = append(r.overlay, cell{x, y, glyph})
}

// RenderSpaceship implements entity.Renderer
func (r *TerminalRenderer) RenderSpaceship(ship *entity.Spaceship) {
	x, y := r.worldToScreen(ship.Position)
	r.overlay = append(r.overlay, cell{x, y, GlyphSpaceship})
}

// RenderVector implements entity.Renderer
func (r *TerminalRenderer) RenderVector(kind entity.VectorKind, origin physics.Vector2D, vector physics.Polar) {
	glyph := GlyphTrajectory
	if kind == entity.GravityVector {
		glyph = GlyphGravity
	}

	end := physics.Polar{Strength: vector.Strength * entity.VectorScale, Angle: vector.Angle}.Cartesian()
	for i := 1; i <= vectorSamples; i++ {
		r.plot(origin.Add(end.Scale(float64(i)/vectorSamples)), glyph)
	}
}

// RenderSun implements entity.Renderer
func (r *TerminalRenderer) RenderSun(sun *entity.Sun) {
	r.disk(sun.GetCollider(), GlyphSunBody)
	r.plot(sun.Position, GlyphSun)
}

// RenderPlanet implements entity.Renderer
func (r *TerminalRenderer) RenderPlanet(planet *entity.Planet, center physics.Vector2D) {
	orbit := planet.OrbitRadius()
	for i := 0; i < orbitSamples; i++ {
		angle := float64(i) * physics.TwoPi / orbitSamples
		r.plotBlank(center.Add(physics.FromAngle(angle, orbit)), GlyphOrbit)
	}

	r.disk(planet.GetCollider(), GlyphPlanet)
	r.plot(planet.Position, GlyphPlanet)
}
