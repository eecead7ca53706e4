// Package render prints a styled document with ANSI escapes.
package render

import (
	"fmt"
	"io"
	"sort"

	"github.com/bethropolis/magicpad/internal/document"
	"github.com/bethropolis/magicpad/internal/style"
	"github.com/bethropolis/magicpad/internal/theme"
	"github.com/charmbracelet/lipgloss"
)

// Run is a maximal stretch of a line covered by the same tags.
type Run struct {
	Text string
	Tags []style.Tag
}

// LineRuns splits line n of doc into runs at every range boundary.
func LineRuns(doc *document.Document, reg *style.Registry, n int) ([]Run, error) {
	text, err := doc.Line(n)
	if err != nil {
		return nil, err
	}
	runes := []rune(text)
	ranges := reg.LineRanges(n)

	cuts := map[int]struct{}{0: {}, len(runes): {}}
	for _, tr := range ranges {
		cuts[clamp(tr.Range.Start.Col, len(runes))] = struct{}{}
		cuts[clamp(tr.Range.End.Col, len(runes))] = struct{}{}
	}
	bounds := make([]int, 0, len(cuts))
	for c := range cuts {
		bounds = append(bounds, c)
	}
	sort.Ints(bounds)

	var runs []Run
	for i := 0; i+1 < len(bounds); i++ {
		start, end := bounds[i], bounds[i+1]
		if start == end {
			continue
		}
		var tags []style.Tag
		for _, tr := range ranges {
			if start >= tr.Range.Start.Col && start < tr.Range.End.Col {
				if len(tags) == 0 || tags[len(tags)-1] != tr.Tag {
					tags = append(tags, tr.Tag)
				}
			}
		}
		runs = append(runs, Run{Text: string(runes[start:end]), Tags: tags})
	}
	return runs, nil
}

func clamp(col, n int) int {
	if col < 0 {
		return 0
	}
	if col > n {
		return n
	}
	return col
}

// Renderer writes documents to one output, using that output's color
// profile.
type Renderer struct {
	out    io.Writer
	lg     *lipgloss.Renderer
	colors *theme.ColorTable
}

// New creates a Renderer for w. Color tags are resolved through colors.
func New(w io.Writer, colors *theme.ColorTable) *Renderer {
	return &Renderer{out: w, lg: lipgloss.NewRenderer(w), colors: colors}
}

// Style returns the lipgloss style for a set of tags.
func (r *Renderer) Style(tags []style.Tag) lipgloss.Style {
	st := r.lg.NewStyle().TabWidth(lipgloss.NoTabConversion)
	for _, tag := range tags {
		switch tag.Kind() {
		case style.KindBold:
			st = st.Bold(true)
		case style.KindItalic:
			st = st.Italic(true)
		case style.KindColor:
			if r.colors == nil {
				continue
			}
			if hex, ok := r.colors.Hex(tag.ColorName()); ok {
				st = st.Foreground(lipgloss.Color(hex))
			}
		}
	}
	return st
}

// Document writes every line of doc followed by a newline.
func (r *Renderer) Document(doc *document.Document, reg *style.Registry) error {
	for n := 1; n <= doc.LineCount(); n++ {
		runs, err := LineRuns(doc, reg, n)
		if err != nil {
			return err
		}
		for _, run := range runs {
			out := run.Text
			if len(run.Tags) > 0 {
				out = r.Style(run.Tags).Render(run.Text)
			}
			if _, err := io.WriteString(r.out, out); err != nil {
				return fmt.Errorf("writing line %d: %w", n, err)
			}
		}
		if _, err := io.WriteString(r.out, "\n"); err != nil {
			return fmt.Errorf("writing line %d: %w", n, err)
		}
	}
	return nil
}
