package scene

import (
	"bytes"
	"strings"
)

const (
	// MaxConsecutiveNewlines allows at most one blank line between directives
	MaxConsecutiveNewlines = 2
	// MaxConsecutiveSpaces forbids padding between parameters
	MaxConsecutiveSpaces = 1
)

// directive is a non-empty line of a scene file
type directive struct {
	line    int
	keyword string
	params  string
	hasArgs bool
}

// segments returns the space separated parameters of the directive
func (d directive) segments() []string {
	if !d.hasArgs {
		return nil
	}
	return strings.Split(d.params, " ")
}

// splitDirectives returns every non-empty line with its 1-based line number
func splitDirectives(content []byte) []directive {
	var directives []directive
	for i, text := range strings.Split(string(content), "\n") {
		if text == "" {
			continue
		}
		keyword, params, hasArgs := strings.Cut(text, " ")
		directives = append(directives, directive{
			line:    i + 1,
			keyword: keyword,
			params:  params,
			hasArgs: hasArgs,
		})
	}
	return directives
}

// Validate checks that content follows the scene grammar.
// Checks run in order and the first failure is returned as an *Error:
// runs of line breaks, runs of spaces, the content of every line, then the
// order of the directives.
func Validate(content []byte) error {
	if line, ok := checkRun(content, '\n', MaxConsecutiveNewlines); !ok {
		return errorf(ErrorKindBlankLines, line, "", "too many lines skipped consecutively")
	}
	if line, ok := checkRun(content, ' ', MaxConsecutiveSpaces); !ok {
		return errorf(ErrorKindSpacing, line, "", "successive spaces are not allowed")
	}

	directives := splitDirectives(content)
	for _, d := range directives {
		if err := checkDirective(d); err != nil {
			return err
		}
	}

	return checkOrder(directives)
}

// checkRun reports whether no run of c is longer than max.
// On failure it returns the line on which the offending run ends.
func checkRun(content []byte, c byte, max int) (int, bool) {
	run := 0
	for i, b := range content {
		if b != c {
			run = 0
			continue
		}
		run++
		if run > max {
			return bytes.Count(content[:i], []byte{'\n'}) + 1, false
		}
	}
	return 0, true
}

// checkDirective validates the keyword, the characters and the arity of a line
func checkDirective(d directive) error {
	rule, ok := Lookup(d.keyword)
	if !ok {
		return errorf(ErrorKindUnknownKeyword, d.line, d.keyword, "unknown keyword %q", d.keyword)
	}

	for _, c := range d.params {
		switch {
		case c == ' ' || isDigit(c):
		case c == '-':
			if !rule.AllowNegative {
				return errorf(ErrorKindNegativeParameter, d.line, d.keyword,
					"%s parameters cannot be negative", d.keyword)
			}
		default:
			return errorf(ErrorKindInvalidCharacter, d.line, d.keyword,
				"%s parameters must be integers, found %q", d.keyword, c)
		}
	}

	segments := d.segments()
	if len(segments) != rule.Params {
		return errorf(ErrorKindArity, d.line, d.keyword,
			"%s takes %d parameters but got %d", d.keyword, rule.Params, len(segments))
	}
	for _, s := range segments {
		if s == "" {
			return errorf(ErrorKindArity, d.line, d.keyword, "%s has an empty parameter", d.keyword)
		}
	}

	return nil
}

// checkOrder validates every directive against its neighbors.
// Blank lines are not directives and do not take part in the ordering.
func checkOrder(directives []directive) error {
	for i, d := range directives {
		rule, ok := Lookup(d.keyword)
		if !ok {
			return errorf(ErrorKindUnknownKeyword, d.line, d.keyword, "unknown keyword %q", d.keyword)
		}

		previous, next := boundary, boundary
		if i > 0 {
			previous = directives[i-1].keyword
		}
		if i < len(directives)-1 {
			next = directives[i+1].keyword
		}

		if !rule.CanFollow(previous) {
			return errorf(ErrorKindOrder, d.line, d.keyword,
				"%s cannot come after %s", d.keyword, describe(previous, "the start of the file"))
		}
		if !rule.CanPrecede(next) {
			return errorf(ErrorKindOrder, d.line, d.keyword,
				"%s cannot be followed by %s", d.keyword, describe(next, "the end of the file"))
		}
	}
	return nil
}

func describe(keyword, atBoundary string) string {
	if keyword == boundary {
		return atBoundary
	}
	return keyword
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}
