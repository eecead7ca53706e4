// internal/tui/drawing.go
package tui

import (
	"fmt"
	"math"
	"slices"

	"github.com/bethropolis/magicpad/internal/document"
	"github.com/bethropolis/magicpad/internal/style"
	"github.com/bethropolis/magicpad/internal/theme"
	"github.com/bethropolis/magicpad/internal/types"
	"github.com/rivo/uniseg"
)

// StatusBarHeight is the number of rows reserved below the text area.
const StatusBarHeight = 1

// View describes what part of the document is on screen. Top is the first
// visible line (1-based); Left is the first visible visual column.
type View struct {
	Top      int
	Left     int
	TabWidth int
}

// GutterWidth returns the width of the line-number gutter for a document
// of lineCount lines on a screen width cells wide, or 0 if it does not fit.
func GutterWidth(lineCount, width int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	maxDigits := int(math.Log10(float64(lineCount))) + 1
	gutter := maxDigits + 1
	if gutter >= width {
		return 0
	}
	return gutter
}

// VisualColumn returns the display width of the first runeIndex runes of
// line, with tabs expanded to tabWidth stops.
func VisualColumn(line string, runeIndex, tabWidth int) int {
	if runeIndex <= 0 {
		return 0
	}
	if tabWidth <= 0 {
		tabWidth = 4
	}
	visual := 0
	runes := 0
	gr := uniseg.NewGraphemes(line)
	for gr.Next() {
		if runes >= runeIndex {
			break
		}
		cluster := gr.Runes()
		if cluster[0] == '\t' {
			visual += tabWidth - visual%tabWidth
		} else {
			visual += gr.Width()
		}
		runes += len(cluster)
	}
	return visual
}

// DrawDocument draws the visible lines of doc, styling each grapheme with
// the tags the registry records over it.
func DrawDocument(t *TUI, doc *document.Document, reg *style.Registry, activeTheme *theme.Theme, colors *theme.ColorTable, cursor types.Position, view View) {
	if activeTheme == nil {
		activeTheme = &theme.MagicDark
	}
	defaultStyle := activeTheme.GetStyle("Default")
	lineNumberStyle := activeTheme.GetStyle("LineNumber")
	tabWidth := view.TabWidth
	if tabWidth <= 0 {
		tabWidth = 4
	}

	width, height := t.Size()
	viewHeight := height - StatusBarHeight
	if viewHeight <= 0 || width <= 0 {
		return
	}

	lineCount := doc.LineCount()
	gutterWidth := GutterWidth(lineCount, width)
	maxDigits := gutterWidth - 1
	textAreaWidth := width - gutterWidth

	for screenY := 0; screenY < viewHeight; screenY++ {
		lineNo := view.Top + screenY

		for x := 0; x < width; x++ {
			t.screen.SetContent(x, screenY, ' ', nil, defaultStyle)
		}
		if lineNo < 1 || lineNo > lineCount {
			continue
		}

		if gutterWidth > 0 {
			numStyle := lineNumberStyle
			if cursor.Line == lineNo {
				numStyle = numStyle.Bold(true)
			}
			for i, r := range fmt.Sprintf("%*d", maxDigits, lineNo) {
				t.screen.SetContent(i, screenY, r, nil, numStyle)
			}
		}

		text, err := doc.Line(lineNo)
		if err != nil {
			continue
		}
		ranges := reg.LineRanges(lineNo)

		visualX := 0
		runeIndex := 0
		gr := uniseg.NewGraphemes(text)
		for gr.Next() {
			cluster := gr.Runes()
			clusterWidth := gr.Width()
			isTab := cluster[0] == '\t'
			if isTab {
				clusterWidth = tabWidth - visualX%tabWidth
			}

			if visualX+clusterWidth > view.Left && visualX < view.Left+textAreaWidth {
				cellStyle := activeTheme.TagStyle(defaultStyle, tagsAt(ranges, runeIndex), colors)
				screenX := visualX - view.Left + gutterWidth
				for cw := 0; cw < clusterWidth; cw++ {
					x := screenX + cw
					if x < gutterWidth || x >= width {
						continue
					}
					if cw == 0 && !isTab {
						t.screen.SetContent(x, screenY, cluster[0], cluster[1:], cellStyle)
					} else {
						t.screen.SetContent(x, screenY, ' ', nil, cellStyle)
					}
				}
			}

			visualX += clusterWidth
			runeIndex += len(cluster)
			if visualX >= view.Left+textAreaWidth {
				break
			}
		}
	}
}

// tagsAt returns the distinct tags of ranges covering col, in ranges order.
func tagsAt(ranges []style.TaggedRange, col int) []style.Tag {
	var out []style.Tag
	for _, tr := range ranges {
		if col >= tr.Range.Start.Col && col < tr.Range.End.Col {
			if !slices.Contains(out, tr.Tag) {
				out = append(out, tr.Tag)
			}
		}
	}
	return out
}

// DrawCursor positions the terminal cursor, hiding it when it falls
// outside the text area.
func DrawCursor(t *TUI, doc *document.Document, cursor types.Position, view View) {
	width, height := t.Size()
	viewHeight := height - StatusBarHeight
	gutterWidth := GutterWidth(doc.LineCount(), width)

	text, err := doc.Line(cursor.Line)
	if err != nil {
		t.screen.HideCursor()
		return
	}
	screenX := VisualColumn(text, cursor.Col, view.TabWidth) - view.Left + gutterWidth
	screenY := cursor.Line - view.Top

	if screenX < gutterWidth || screenX >= width || screenY < 0 || screenY >= viewHeight {
		t.screen.HideCursor()
		return
	}
	t.screen.ShowCursor(screenX, screenY)
}

// Reset returns the view scrolled back to the top-left corner.
func (v View) Reset() View {
	return View{Top: 1, TabWidth: v.TabWidth}
}
