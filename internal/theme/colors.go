package theme

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ColorTable is the set of color names the renderer understands: tcell's
// named colors plus any names added from configuration.
type ColorTable struct {
	extra map[string]tcell.Color
}

// NewColorTable builds a table whose extra entries map names to color
// strings ("#rrggbb" or an existing color name).
func NewColorTable(extra map[string]string) (*ColorTable, error) {
	ct := &ColorTable{extra: make(map[string]tcell.Color, len(extra))}
	names := make([]string, 0, len(extra))
	for name := range extra {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" || !isIdentifier(key) {
			return nil, fmt.Errorf("invalid color name %q: must be letters, digits or '_'", name)
		}
		c, err := parseColorString(extra[name])
		if err != nil {
			return nil, fmt.Errorf("color %q: %w", name, err)
		}
		ct.extra[key] = c
	}
	return ct, nil
}

// Lookup resolves a color name, case-insensitively.
func (ct *ColorTable) Lookup(name string) (tcell.Color, bool) {
	key := strings.ToLower(name)
	if ct != nil {
		if c, ok := ct.extra[key]; ok {
			return c, true
		}
	}
	c, ok := tcell.ColorNames[key]
	return c, ok
}

// Valid reports whether name is a renderable color name.
func (ct *ColorTable) Valid(name string) bool {
	_, ok := ct.Lookup(name)
	return ok
}

// Hex returns the "#rrggbb" form of a color name.
func (ct *ColorTable) Hex(name string) (string, bool) {
	c, ok := ct.Lookup(name)
	if !ok {
		return "", false
	}
	v := c.Hex()
	if v < 0 {
		return "", false
	}
	return fmt.Sprintf("#%06x", v), true
}

// isIdentifier matches the name part of the color markup: word characters.
func isIdentifier(s string) bool {
	for _, r := range s {
		if !(r == '_' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')) {
			return false
		}
	}
	return true
}
