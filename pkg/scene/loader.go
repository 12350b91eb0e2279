package scene

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/opd-ai/go-gravnav/pkg/entity"
	"github.com/opd-ai/go-gravnav/pkg/physics"
)

// Load reads, validates and decodes the scene file at path
func Load(path string) (*entity.Configuration, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{
			Kind:    ErrorKindOpen,
			Message: fmt.Sprintf("can't open scene file %s", path),
			Err:     err,
		}
	}
	return Parse(content)
}

// Parse validates content then decodes it
func Parse(content []byte) (*entity.Configuration, error) {
	if err := Validate(content); err != nil {
		return nil, err
	}
	return Decode(content)
}

// Decode builds a configuration from content without validating the grammar.
// Directives are consumed in grammar order and every bound of the universe is
// checked as soon as the value is read.
func Decode(content []byte) (*entity.Configuration, error) {
	d := &decoder{directives: splitDirectives(content)}
	cfg := &entity.Configuration{}

	size, err := d.ints(KeywordWinSize, 2)
	if err != nil {
		return nil, err
	}
	cfg.Width, cfg.Height = size[0], size[1]
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, errorf(ErrorKindFrame, d.line(), KeywordWinSize,
			"the window size %dx%d must be positive", cfg.Width, cfg.Height)
	}
	torus := cfg.Torus()

	if cfg.StartingPoint, err = d.position(KeywordStart); err != nil {
		return nil, err
	}
	if !torus.Contains(cfg.StartingPoint) {
		return nil, errorf(ErrorKindFrame, d.line(), KeywordStart, "the starting point is outside of the frame")
	}

	if cfg.ArrivalPoint, err = d.position(KeywordEnd); err != nil {
		return nil, err
	}
	if !torus.Contains(cfg.ArrivalPoint) {
		return nil, errorf(ErrorKindFrame, d.line(), KeywordEnd, "the arrival point is outside of the frame")
	}

	cfg.Spaceship = entity.NewSpaceship(cfg.StartingPoint)

	count, err := d.ints(KeywordSolarSystems, 1)
	if err != nil {
		return nil, err
	}
	systemCount := count[0]
	if systemCount < 0 {
		return nil, errorf(ErrorKindSyntax, d.line(), KeywordSolarSystems, "negative solar system count %d", systemCount)
	}

	cfg.SolarSystems = make([]entity.SolarSystem, 0, min(systemCount, d.remaining()))
	for i := 0; i < systemCount; i++ {
		if !d.next(KeywordStarPosition) {
			return nil, errorf(ErrorKindShortRead, d.peekLine(), KeywordStarPosition,
				"expected %d solar systems but only got %d", systemCount, i)
		}
		system, err := d.solarSystem(torus, i+1)
		if err != nil {
			return nil, err
		}
		cfg.SolarSystems = append(cfg.SolarSystems, system)
		cfg.StarCount += 1 + len(system.Planets)
	}

	if d.remaining() > 0 {
		extra := d.directives[d.pos]
		return nil, errorf(ErrorKindTrailing, extra.line, extra.keyword,
			"unexpected %s after the last declared solar system", extra.keyword)
	}

	return cfg, nil
}

// decoder walks the directives of a scene in order
type decoder struct {
	directives []directive
	pos        int
	last       directive
}

// next reports whether the following directive has the given keyword
func (d *decoder) next(keyword string) bool {
	return d.pos < len(d.directives) && d.directives[d.pos].keyword == keyword
}

func (d *decoder) remaining() int {
	return len(d.directives) - d.pos
}

// line returns the line of the last consumed directive
func (d *decoder) line() int {
	return d.last.line
}

// peekLine returns the line of the following directive, or of the last one at the end
func (d *decoder) peekLine() int {
	if d.pos < len(d.directives) {
		return d.directives[d.pos].line
	}
	return d.last.line
}

// take consumes a directive with the given keyword and arity
func (d *decoder) take(keyword string, arity int) ([]string, error) {
	if !d.next(keyword) {
		found := "the end of the file"
		if d.pos < len(d.directives) {
			found = d.directives[d.pos].keyword
		}
		return nil, errorf(ErrorKindShortRead, d.peekLine(), keyword, "expected %s but found %s", keyword, found)
	}

	d.last = d.directives[d.pos]
	d.pos++

	segments := d.last.segments()
	if len(segments) != arity {
		return nil, errorf(ErrorKindArity, d.last.line, keyword,
			"%s takes %d parameters but got %d", keyword, arity, len(segments))
	}
	return segments, nil
}

func (d *decoder) ints(keyword string, arity int) ([]int, error) {
	segments, err := d.take(keyword, arity)
	if err != nil {
		return nil, err
	}

	values := make([]int, len(segments))
	for i, s := range segments {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, &Error{
				Kind:    ErrorKindSyntax,
				Line:    d.last.line,
				Keyword: keyword,
				Message: fmt.Sprintf("invalid %s parameter %q", keyword, s),
				Err:     err,
			}
		}
		values[i] = v
	}
	return values, nil
}

func (d *decoder) position(keyword string) (physics.Vector2D, error) {
	segments, err := d.take(keyword, 2)
	if err != nil {
		return physics.Vector2D{}, err
	}

	var coords [2]float64
	for i, s := range segments {
		v, err := strconv.ParseFloat(s, 64)
		if err == nil && (math.IsNaN(v) || math.IsInf(v, 0)) {
			err = strconv.ErrSyntax
		}
		if err != nil {
			return physics.Vector2D{}, &Error{
				Kind:    ErrorKindSyntax,
				Line:    d.last.line,
				Keyword: keyword,
				Message: fmt.Sprintf("invalid %s coordinate %q", keyword, s),
				Err:     err,
			}
		}
		coords[i] = v
	}
	return physics.Vector2D{X: coords[0], Y: coords[1]}, nil
}

// solarSystem decodes the sun and the planets of the system with the given 1-based index
func (d *decoder) solarSystem(torus physics.Torus, index int) (entity.SolarSystem, error) {
	var system entity.SolarSystem

	position, err := d.position(KeywordStarPosition)
	if err != nil {
		return system, err
	}
	radius, err := d.ints(KeywordStarRadius, 1)
	if err != nil {
		return system, err
	}
	system.Sun = *entity.NewSun(position, radius[0])

	if !torus.Contains(system.Sun.Position) {
		return system, errorf(ErrorKindFrame, d.line(), KeywordStarPosition,
			"the sun of solar system %d is outside of the frame", index)
	}

	count, err := d.ints(KeywordPlanets, 1)
	if err != nil {
		return system, err
	}
	planetCount := count[0]
	if planetCount < 0 {
		return system, errorf(ErrorKindSyntax, d.line(), KeywordPlanets, "negative planet count %d", planetCount)
	}

	system.Planets = make([]entity.Planet, 0, min(planetCount, d.remaining()))
	for j := 0; j < planetCount; j++ {
		planet, ok, err := d.planet()
		if err != nil {
			return system, err
		}
		if !ok {
			return system, errorf(ErrorKindShortRead, d.peekLine(), KeywordPlanetRadius,
				"expected %d planets in solar system %d but only got %d", planetCount, index, j)
		}

		if system.Sun.Position.Y-planet.OrbitRadius() < 0 {
			return system, errorf(ErrorKindOrbit, d.line(), KeywordPlanetOrbit,
				"planet %d of solar system %d is going to leave the frame", j+1, index)
		}
		system.Planets = append(system.Planets, planet)
	}

	return system, nil
}

// planet decodes a radius and orbit pair. ok is false when the pair is incomplete.
func (d *decoder) planet() (entity.Planet, bool, error) {
	if !d.next(KeywordPlanetRadius) {
		return entity.Planet{}, false, nil
	}
	radius, err := d.ints(KeywordPlanetRadius, 1)
	if err != nil {
		return entity.Planet{}, false, err
	}

	if !d.next(KeywordPlanetOrbit) {
		return entity.Planet{}, false, nil
	}
	orbit, err := d.ints(KeywordPlanetOrbit, 1)
	if err != nil {
		return entity.Planet{}, false, err
	}

	return entity.NewPlanet(radius[0], orbit[0]), true, nil
}
