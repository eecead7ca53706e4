// Package style holds the style tags produced by inline markup and the
// registry that maps each tag to the document ranges it covers.
package style

import (
	"fmt"
	"strings"
)

// Kind identifies the variant of a Tag.
type Kind uint8

const (
	KindBold Kind = iota + 1
	KindItalic
	KindColor
)

func (k Kind) String() string {
	switch k {
	case KindBold:
		return "bold"
	case KindItalic:
		return "italic"
	case KindColor:
		return "color"
	default:
		return "unknown"
	}
}

// Persisted tag names used by the .ntp format.
const (
	boldName        = "bold_style"
	italicName      = "italic_style"
	colorNamePrefix = "dynamic_color_"
)

// Tag is a rendering style applied to ranges: Bold, Italic, or Color(name).
// Tags are comparable and usable as map keys.
type Tag struct {
	kind  Kind
	color string
}

// Structural tags.
var (
	Bold   = Tag{kind: KindBold}
	Italic = Tag{kind: KindItalic}
)

// Color returns the tag for a named foreground color. The name is lowercased.
func Color(name string) Tag {
	return Tag{kind: KindColor, color: strings.ToLower(name)}
}

// Kind returns the tag's variant.
func (t Tag) Kind() Kind { return t.kind }

// ColorName returns the color identifier of a color tag, or "".
func (t Tag) ColorName() string { return t.color }

// IsStructural reports whether t is Bold or Italic.
func (t Tag) IsStructural() bool {
	return t.kind == KindBold || t.kind == KindItalic
}

// String returns "bold", "italic" or "color:<name>".
func (t Tag) String() string {
	if t.kind == KindColor {
		return "color:" + t.color
	}
	return t.kind.String()
}

// PersistName returns the key used for the tag in a saved document.
func (t Tag) PersistName() string {
	switch t.kind {
	case KindBold:
		return boldName
	case KindItalic:
		return italicName
	default:
		return colorNamePrefix + t.color
	}
}

// ParsePersistName maps a saved tag key back to its Tag.
func ParsePersistName(name string) (Tag, error) {
	switch {
	case name == boldName:
		return Bold, nil
	case name == italicName:
		return Italic, nil
	case strings.HasPrefix(name, colorNamePrefix):
		color := strings.TrimPrefix(name, colorNamePrefix)
		if color == "" {
			return Tag{}, fmt.Errorf("%w: %q has no color name", ErrUnknownTag, name)
		}
		return Color(color), nil
	}
	return Tag{}, fmt.Errorf("%w: %q", ErrUnknownTag, name)
}

// Less orders tags bold, italic, then colors by name.
func Less(a, b Tag) bool {
	if a.kind != b.kind {
		return a.kind < b.kind
	}
	return a.color < b.color
}
