// internal/types/position.go
package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidPosition is returned when a position string cannot be parsed.
var ErrInvalidPosition = errors.New("invalid position")

// Position represents a point in a document.
// Line is 1-based to match "<line>.<offset>" addressing.
// Col is the 0-based rune offset within the line.
type Position struct {
	Line int
	Col  int // Rune index
}

// String formats the position as "<line>.<offset>".
func (p Position) String() string {
	return strconv.Itoa(p.Line) + "." + strconv.Itoa(p.Col)
}

// Before reports whether p sorts strictly before o.
func (p Position) Before(o Position) bool {
	if p.Line != o.Line {
		return p.Line < o.Line
	}
	return p.Col < o.Col
}

// ParsePosition parses a "<line>.<offset>" string. Line must be >= 1 and
// offset >= 0; anything else (signs, spaces, missing parts) is rejected.
func ParsePosition(s string) (Position, error) {
	lineStr, colStr, ok := strings.Cut(s, ".")
	if !ok {
		return Position{}, fmt.Errorf("%w: %q has no '.' separator", ErrInvalidPosition, s)
	}
	line, err := parseDigits(lineStr)
	if err != nil || line < 1 {
		return Position{}, fmt.Errorf("%w: bad line in %q", ErrInvalidPosition, s)
	}
	col, err := parseDigits(colStr)
	if err != nil {
		return Position{}, fmt.Errorf("%w: bad offset in %q", ErrInvalidPosition, s)
	}
	return Position{Line: line, Col: col}, nil
}

// parseDigits accepts only a non-empty run of ASCII digits.
func parseDigits(s string) (int, error) {
	if s == "" {
		return 0, strconv.ErrSyntax
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.Atoi(s)
}

// Range is a span within a single line, start inclusive and end exclusive.
type Range struct {
	Start Position
	End   Position
}

// Valid reports whether the range is non-empty, well ordered, and confined
// to one line.
func (r Range) Valid() bool {
	return r.Start.Line >= 1 &&
		r.Start.Line == r.End.Line &&
		r.Start.Col >= 0 &&
		r.Start.Col < r.End.Col
}

// Len returns the number of runes covered by the range.
func (r Range) Len() int {
	return r.End.Col - r.Start.Col
}

func (r Range) String() string {
	return r.Start.String() + "-" + r.End.String()
}
