// Package scene reads the textual description of a universe.
//
// A scene file is a sequence of directive lines, each made of a keyword
// followed by space separated integer parameters. The grammar below fixes the
// arity of every keyword, whether its parameters may be negative, and which
// keywords may appear directly before and after it.
package scene

// Keywords of the scene grammar
const (
	KeywordWinSize      = "WIN_SIZE"
	KeywordStart        = "START"
	KeywordEnd          = "END"
	KeywordSolarSystems = "NB_SOLAR_SYSTEM"
	KeywordStarPosition = "STAR_POS"
	KeywordStarRadius   = "STAR_RADIUS"
	KeywordPlanets      = "NB_PLANET"
	KeywordPlanetRadius = "PLANET_RADIUS"
	KeywordPlanetOrbit  = "PLANET_ORBIT"
)

// boundary stands for the start or the end of the file
const boundary = ""

// Rule describes how a keyword may be used.
// The empty keyword in Follows stands for the start of the file and in
// Precedes for its end.
type Rule struct {
	Keyword       string
	Params        int
	AllowNegative bool
	Follows       []string
	Precedes      []string
}

// CanFollow reports whether the rule's keyword may come right after previous
func (r Rule) CanFollow(previous string) bool {
	return contains(r.Follows, previous)
}

// CanPrecede reports whether the rule's keyword may come right before next
func (r Rule) CanPrecede(next string) bool {
	return contains(r.Precedes, next)
}

var grammar = map[string]Rule{
	KeywordWinSize: {
		Keyword:  KeywordWinSize,
		Params:   2,
		Follows:  []string{boundary},
		Precedes: []string{KeywordStart},
	},
	KeywordStart: {
		Keyword:  KeywordStart,
		Params:   2,
		Follows:  []string{KeywordWinSize},
		Precedes: []string{KeywordEnd},
	},
	KeywordEnd: {
		Keyword:  KeywordEnd,
		Params:   2,
		Follows:  []string{KeywordStart},
		Precedes: []string{KeywordSolarSystems},
	},
	KeywordSolarSystems: {
		Keyword:  KeywordSolarSystems,
		Params:   1,
		Follows:  []string{KeywordEnd},
		Precedes: []string{KeywordStarPosition, boundary},
	},
	KeywordStarPosition: {
		Keyword:  KeywordStarPosition,
		Params:   2,
		Follows:  []string{KeywordSolarSystems, KeywordPlanets, KeywordPlanetOrbit},
		Precedes: []string{KeywordStarRadius},
	},
	KeywordStarRadius: {
		Keyword:  KeywordStarRadius,
		Params:   1,
		Follows:  []string{KeywordStarPosition},
		Precedes: []string{KeywordPlanets},
	},
	KeywordPlanets: {
		Keyword:  KeywordPlanets,
		Params:   1,
		Follows:  []string{KeywordStarRadius, KeywordPlanetOrbit},
		Precedes: []string{KeywordPlanetRadius, KeywordStarPosition, boundary},
	},
	KeywordPlanetRadius: {
		Keyword:  KeywordPlanetRadius,
		Params:   1,
		Follows:  []string{KeywordPlanets, KeywordPlanetOrbit},
		Precedes: []string{KeywordPlanetOrbit},
	},
	KeywordPlanetOrbit: {
		Keyword:       KeywordPlanetOrbit,
		Params:        1,
		AllowNegative: true,
		Follows:       []string{KeywordPlanetRadius},
		Precedes:      []string{KeywordPlanetOrbit, KeywordPlanetRadius, KeywordStarPosition, boundary},
	},
}

// Lookup returns the rule of a keyword
func Lookup(keyword string) (Rule, bool) {
	rule, ok := grammar[keyword]
	return rule, ok
}

func contains(list []string, word string) bool {
	for _, w := range list {
		if w == word {
			return true
		}
	}
	return false
}
