// Package document holds the plain text of an open file and its .ntp
// persistence format.
package document

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bethropolis/magicpad/internal/types"
)

// Document is an ordered sequence of plain-text lines. Line numbers are
// 1-based; columns are rune offsets.
type Document struct {
	lines []string
}

// New creates a document with a single empty line.
func New() *Document {
	return &Document{lines: []string{""}}
}

// FromText splits text on '\n' into lines. The result always has at least
// one line, so Text returns exactly the input.
func FromText(text string) *Document {
	return &Document{lines: strings.Split(text, "\n")}
}

// Text joins the lines with '\n'.
func (d *Document) Text() string {
	return strings.Join(d.lines, "\n")
}

// LineCount returns the number of lines.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// IsEmpty reports whether the document has no visible content.
func (d *Document) IsEmpty() bool {
	return strings.TrimSpace(d.Text()) == ""
}

// Line returns the text of line n.
func (d *Document) Line(n int) (string, error) {
	if n < 1 || n > len(d.lines) {
		return "", fmt.Errorf("%w: line %d (1-%d)", ErrLineOutOfRange, n, len(d.lines))
	}
	return d.lines[n-1], nil
}

// LineLen returns the rune length of line n, or -1 if it does not exist.
func (d *Document) LineLen(n int) int {
	if n < 1 || n > len(d.lines) {
		return -1
	}
	return utf8.RuneCountInString(d.lines[n-1])
}

// SetLine replaces the text of line n. The text must not contain '\n'.
func (d *Document) SetLine(n int, text string) error {
	if n < 1 || n > len(d.lines) {
		return fmt.Errorf("%w: line %d (1-%d)", ErrLineOutOfRange, n, len(d.lines))
	}
	if strings.ContainsRune(text, '\n') {
		return fmt.Errorf("line %d: replacement text spans lines", n)
	}
	d.lines[n-1] = text
	return nil
}

// Contains reports whether pos addresses a point in the document. The
// column just past the last rune of a line is included.
func (d *Document) Contains(pos types.Position) bool {
	n := d.LineLen(pos.Line)
	return n >= 0 && pos.Col >= 0 && pos.Col <= n
}

// ContainsRange reports whether both ends of rng are in the document.
func (d *Document) ContainsRange(rng types.Range) bool {
	return d.Contains(rng.Start) && d.Contains(rng.End)
}

// Clamp moves pos to the nearest position inside the document.
func (d *Document) Clamp(pos types.Position) types.Position {
	if pos.Line < 1 {
		pos.Line = 1
	}
	if pos.Line > len(d.lines) {
		pos.Line = len(d.lines)
	}
	if pos.Col < 0 {
		pos.Col = 0
	}
	if n := d.LineLen(pos.Line); pos.Col > n {
		pos.Col = n
	}
	return pos
}

// Insert inserts single-line text at pos and returns the resulting edit.
func (d *Document) Insert(pos types.Position, text string) (types.Edit, error) {
	if !d.Contains(pos) {
		return types.Edit{}, fmt.Errorf("%w: insert at %s", ErrLineOutOfRange, pos)
	}
	if strings.ContainsRune(text, '\n') {
		return types.Edit{}, fmt.Errorf("insert at %s: text spans lines", pos)
	}
	runes := []rune(d.lines[pos.Line-1])
	ins := []rune(text)
	out := make([]rune, 0, len(runes)+len(ins))
	out = append(out, runes[:pos.Col]...)
	out = append(out, ins...)
	out = append(out, runes[pos.Col:]...)
	d.lines[pos.Line-1] = string(out)
	return types.Insertion(pos, len(ins)), nil
}

// Delete removes the runes [start, end) of line and returns the edit.
func (d *Document) Delete(line, start, end int) (types.Edit, error) {
	n := d.LineLen(line)
	if n < 0 || start < 0 || end > n || start > end {
		return types.Edit{}, fmt.Errorf("%w: delete %d.%d-%d.%d", ErrLineOutOfRange, line, start, line, end)
	}
	runes := []rune(d.lines[line-1])
	d.lines[line-1] = string(append(runes[:start:start], runes[end:]...))
	return types.Deletion(line, start, end), nil
}

// SplitLine breaks the line at pos into two lines.
func (d *Document) SplitLine(pos types.Position) error {
	if !d.Contains(pos) {
		return fmt.Errorf("%w: split at %s", ErrLineOutOfRange, pos)
	}
	runes := []rune(d.lines[pos.Line-1])
	head, tail := string(runes[:pos.Col]), string(runes[pos.Col:])

	d.lines = append(d.lines, "")
	copy(d.lines[pos.Line+1:], d.lines[pos.Line:])
	d.lines[pos.Line-1] = head
	d.lines[pos.Line] = tail
	return nil
}

// JoinLines appends line+1 to line and returns the former rune length of
// line.
func (d *Document) JoinLines(line int) (int, error) {
	if line < 1 || line >= len(d.lines) {
		return 0, fmt.Errorf("%w: join %d with next", ErrLineOutOfRange, line)
	}
	prevLen := utf8.RuneCountInString(d.lines[line-1])
	d.lines[line-1] += d.lines[line]
	d.lines = append(d.lines[:line], d.lines[line+1:]...)
	return prevLen, nil
}
