package scanner

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/bethropolis/magicpad/internal/style"
)

// rule is one markup pattern. Inner text is capture group innerGroup; color
// rules also capture the color name in group 1.
type rule struct {
	kind       style.Kind
	re         *regexp.Regexp
	innerGroup int
}

// rules in priority order: bold, italic, color. Inner captures are
// non-greedy so each match ends at the first closing delimiter.
var rules = []rule{
	{kind: style.KindBold, re: regexp.MustCompile(`\*\*(.+?)\*\*`), innerGroup: 1},
	{kind: style.KindItalic, re: regexp.MustCompile(`//(.+?)//`), innerGroup: 1},
	{kind: style.KindColor, re: regexp.MustCompile(`(\w+)::(.+?)::`), innerGroup: 2},
}

// Match is one markup span found in a line. Offsets are rune offsets into
// the scanned text; [Start, End) covers delimiters and inner text.
type Match struct {
	Kind       style.Kind
	Color      string // lowercased; only for KindColor
	Start      int
	End        int
	InnerStart int
	Inner      string
}

// InnerLen is the rune length of the inner text.
func (m Match) InnerLen() int {
	return utf8.RuneCountInString(m.Inner)
}

// Tag returns the style tag the match resolves to.
func (m Match) Tag() style.Tag {
	switch m.Kind {
	case style.KindBold:
		return style.Bold
	case style.KindItalic:
		return style.Italic
	default:
		return style.Color(m.Color)
	}
}

// Scan finds the next span to process in text: the first rule, in priority
// order, with a match not rejected by skip. Within a rule the leftmost
// acceptable match wins. skip may be nil.
func Scan(text string, skip func(Match) bool) (Match, bool) {
	for _, r := range rules {
		for _, loc := range r.re.FindAllStringSubmatchIndex(text, -1) {
			m := newMatch(text, r, loc)
			if skip != nil && skip(m) {
				continue
			}
			return m, true
		}
	}
	return Match{}, false
}

func newMatch(text string, r rule, loc []int) Match {
	innerFrom, innerTo := loc[2*r.innerGroup], loc[2*r.innerGroup+1]
	m := Match{
		Kind:       r.kind,
		Start:      runeOffset(text, loc[0]),
		End:        runeOffset(text, loc[1]),
		InnerStart: runeOffset(text, innerFrom),
		Inner:      text[innerFrom:innerTo],
	}
	if r.kind == style.KindColor {
		m.Color = strings.ToLower(text[loc[2]:loc[3]])
	}
	return m
}

// runeOffset converts a byte offset in s to a rune offset.
func runeOffset(s string, byteOff int) int {
	return utf8.RuneCountInString(s[:byteOff])
}
