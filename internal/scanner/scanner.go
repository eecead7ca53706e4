// Package scanner turns inline markup in a line of text into plain text
// plus style ranges.
package scanner

import (
	"fmt"
	"unicode/utf8"

	"github.com/bethropolis/magicpad/internal/logger"
	"github.com/bethropolis/magicpad/internal/style"
	"github.com/bethropolis/magicpad/internal/types"
)

// ColorOracle reports whether a name is a renderable color.
type ColorOracle interface {
	Valid(name string) bool
}

// Applied describes one markup span that was resolved during a pass.
type Applied struct {
	Tag   style.Tag
	Range types.Range // Inner text in the rewritten line
	Edit  types.Edit  // Replacement that produced it
}

// Result is the outcome of one scan pass over a line.
type Result struct {
	Text     string
	Cursor   types.Position
	Applied  []Applied
	Warnings []error // ErrInvalidColor / style.ErrTagLimitReached, wrapped
}

// Changed reports whether the pass rewrote the line.
func (r Result) Changed() bool {
	return len(r.Applied) > 0
}

// Scanner resolves markup against a style registry.
type Scanner struct {
	registry *style.Registry
	colors   ColorOracle
}

// New creates a scanner that records ranges in registry and validates color
// names with colors.
func New(registry *style.Registry, colors ColorOracle) *Scanner {
	return &Scanner{registry: registry, colors: colors}
}

// span is a rejected match, tracked through later edits on the line.
type span struct{ start, end int }

// ScanLine runs one pass over text, the content of line. Each iteration
// resolves a single match (bold before italic before color) and restarts
// from the beginning of the rewritten text, until nothing matches.
// Existing ranges on the line are moved along with each replacement.
func (s *Scanner) ScanLine(line int, text string, cursor types.Position) Result {
	res := Result{Text: text, Cursor: cursor}

	var rejected []span
	limitHit := false
	skip := func(m Match) bool {
		if m.Kind != style.KindColor {
			return false
		}
		for _, sp := range rejected {
			if sp.start == m.Start && sp.end == m.End {
				return true
			}
		}
		return false
	}

	// Every replacement shortens the line and every rejection is a new span,
	// so this bound is never reached by a well-formed pass.
	maxIterations := 4*utf8.RuneCountInString(text) + 8
	for iter := 0; ; iter++ {
		if iter == maxIterations {
			logger.Warnf("Scanner: line %d: stopping after %d iterations", line, iter)
			break
		}
		m, ok := Scan(res.Text, skip)
		if !ok {
			break
		}
		tag := m.Tag()

		if m.Kind == style.KindColor {
			if err := s.checkColor(tag, &limitHit); err != nil {
				if err != errLimitSilenced {
					logger.Warnf("Scanner: line %d: %v", line, err)
					res.Warnings = append(res.Warnings, err)
				}
				rejected = append(rejected, span{m.Start, m.End})
				continue
			}
		}

		edit := types.Edit{
			Line:   line,
			Start:  m.Start,
			End:    m.End,
			NewLen: m.InnerLen(),
			Keep:   m.InnerStart - m.Start,
		}
		res.Text = replaceRunes(res.Text, m.Start, m.End, m.Inner)
		s.registry.ApplyEdit(edit)

		rng := types.Range{
			Start: types.Position{Line: line, Col: m.Start},
			End:   types.Position{Line: line, Col: m.Start + edit.NewLen},
		}
		if err := s.registry.RecordRange(tag, rng); err != nil {
			logger.Warnf("Scanner: line %d: recording %s %s: %v", line, tag, rng, err)
			res.Warnings = append(res.Warnings, err)
		} else {
			res.Applied = append(res.Applied, Applied{Tag: tag, Range: rng, Edit: edit})
			logger.DebugTagf("scan", "Scanner: line %d: applied %s at %s", line, tag, rng)
		}

		res.Cursor = Adjust(res.Cursor, edit)
		rejected = remapSpans(rejected, edit)
	}
	return res
}

// errLimitSilenced marks a cap rejection after the cap was already reported
// in this pass.
var errLimitSilenced = fmt.Errorf("%w (already reported)", style.ErrTagLimitReached)

// checkColor validates the color name and makes sure its tag exists.
func (s *Scanner) checkColor(tag style.Tag, limitHit *bool) error {
	if s.colors == nil || !s.colors.Valid(tag.ColorName()) {
		return fmt.Errorf("%w: '%s' is not a valid color", ErrInvalidColor, tag.ColorName())
	}
	if s.registry.Has(tag) {
		return nil
	}
	if *limitHit {
		return errLimitSilenced
	}
	if err := s.registry.Ensure(tag); err != nil {
		*limitHit = true
		return err
	}
	return nil
}

func remapSpans(spans []span, e types.Edit) []span {
	out := spans[:0]
	for _, sp := range spans {
		mapped := span{start: e.MapCol(sp.start), end: e.MapCol(sp.end)}
		if mapped.start < mapped.end {
			out = append(out, mapped)
		}
	}
	return out
}

// replaceRunes replaces the runes [start, end) of s with repl.
func replaceRunes(s string, start, end int, repl string) string {
	runes := []rune(s)
	out := make([]rune, 0, len(runes)-(end-start)+utf8.RuneCountInString(repl))
	out = append(out, runes[:start]...)
	out = append(out, []rune(repl)...)
	out = append(out, runes[end:]...)
	return string(out)
}
