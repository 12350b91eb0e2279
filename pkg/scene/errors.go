package scene

import (
	"errors"
	"fmt"
)

// ErrorKind is the category of a scene error
type ErrorKind string

const (
	// ErrorKindOpen indicates the scene file could not be read
	ErrorKindOpen ErrorKind = "open"
	// ErrorKindBlankLines indicates too many consecutive line breaks
	ErrorKindBlankLines ErrorKind = "blank_lines"
	// ErrorKindSpacing indicates consecutive spaces
	ErrorKindSpacing ErrorKind = "spacing"
	// ErrorKindUnknownKeyword indicates a line starting with an unknown word
	ErrorKindUnknownKeyword ErrorKind = "unknown_keyword"
	// ErrorKindInvalidCharacter indicates a parameter that is not made of digits
	ErrorKindInvalidCharacter ErrorKind = "invalid_character"
	// ErrorKindNegativeParameter indicates a '-' where negatives are not allowed
	ErrorKindNegativeParameter ErrorKind = "negative_parameter"
	// ErrorKindArity indicates a wrong number of parameters
	ErrorKindArity ErrorKind = "arity"
	// ErrorKindOrder indicates a misplaced directive
	ErrorKindOrder ErrorKind = "order"
	// ErrorKindFrame indicates a window size or position outside the frame
	ErrorKindFrame ErrorKind = "frame"
	// ErrorKindOrbit indicates a planet orbit leaving the frame
	ErrorKindOrbit ErrorKind = "orbit"
	// ErrorKindShortRead indicates fewer directives than declared
	ErrorKindShortRead ErrorKind = "short_read"
	// ErrorKindTrailing indicates directives after the last declared solar system
	ErrorKindTrailing ErrorKind = "trailing"
	// ErrorKindSyntax indicates a directive that could not be decoded
	ErrorKindSyntax ErrorKind = "syntax"
)

// Error is the error returned for any rejected scene
type Error struct {
	Kind    ErrorKind
	Line    int // 1-based, 0 when unknown
	Keyword string
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// errorf creates a scene error with formatting
func errorf(kind ErrorKind, line int, keyword, format string, args ...interface{}) error {
	return &Error{
		Kind:    kind,
		Line:    line,
		Keyword: keyword,
		Message: fmt.Sprintf(format, args...),
	}
}

// KindOf returns the kind of a scene error, or "" for any other error
func KindOf(err error) ErrorKind {
	var sceneErr *Error
	if errors.As(err, &sceneErr) {
		return sceneErr.Kind
	}
	return ""
}

// IsKind reports whether err is a scene error of the given kind
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
