// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/bethropolis/magicpad/internal/logger"
	"github.com/bethropolis/magicpad/internal/style"
	"github.com/gdamore/tcell/v2"
)

// Theme maps UI element names to tcell styles.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle returns the named style, falling back to the part before the
// first dot, then to "Default".
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		if style, ok := t.Styles[name[:dotIndex]]; ok {
			return style
		}
	}

	if defStyle, ok := t.Styles["Default"]; ok {
		return defStyle
	}

	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// TagStyle layers the rendering of tags over base, in the given order.
// Unknown colors leave the foreground untouched.
func (t *Theme) TagStyle(base tcell.Style, tags []style.Tag, colors *ColorTable) tcell.Style {
	st := base
	for _, tag := range tags {
		switch tag.Kind() {
		case style.KindBold:
			st = st.Bold(true)
		case style.KindItalic:
			st = st.Italic(true)
		case style.KindColor:
			if colors == nil {
				continue
			}
			if c, ok := colors.Lookup(tag.ColorName()); ok {
				st = st.Foreground(c)
			}
		}
	}
	return st
}

// MagicDark is the built-in dark theme.
var MagicDark Theme

func init() {
	background := tcell.NewHexColor(0x1e1e1e)
	foreground := tcell.NewHexColor(0xd4d4d4)
	chrome := tcell.NewHexColor(0x2d2d2d)
	muted := tcell.NewHexColor(0x808080)
	accent := tcell.NewHexColor(0x00b0ff)
	alert := tcell.NewHexColor(0xf44747)

	base := tcell.StyleDefault.Background(background).Foreground(foreground)

	MagicDark = Theme{
		Name:   "Magic Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			"Default":          base,
			"LineNumber":       base.Foreground(muted),
			"StatusBar":        tcell.StyleDefault.Background(chrome).Foreground(tcell.ColorWhite),
			"StatusBarMessage": tcell.StyleDefault.Background(chrome).Foreground(accent).Bold(true),
			"StatusBarError":   tcell.StyleDefault.Background(chrome).Foreground(alert).Bold(true),
			"StatusBarHint":    tcell.StyleDefault.Background(chrome).Foreground(muted),
		},
	}
}
