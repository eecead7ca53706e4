package types

// Edit describes a replacement within one line: the runes [Start, End) on
// Line were replaced by NewLen runes. Keep is the offset inside the old span
// at which the surviving text began (the length of an opening delimiter);
// it is zero for plain inserts and deletes.
type Edit struct {
	Line   int
	Start  int
	End    int
	NewLen int
	Keep   int
}

// Delta is the signed change in line length caused by the edit.
func (e Edit) Delta() int {
	return e.NewLen - (e.End - e.Start)
}

// Insertion builds an Edit for n runes inserted at pos.
func Insertion(pos Position, n int) Edit {
	return Edit{Line: pos.Line, Start: pos.Col, End: pos.Col, NewLen: n}
}

// Deletion builds an Edit for the runes [start, end) removed on line.
func Deletion(line, start, end int) Edit {
	return Edit{Line: line, Start: start, End: end}
}

// IsInsertion reports whether the edit removes nothing.
func (e Edit) IsInsertion() bool {
	return e.Start == e.End
}

// MapCol maps a column on the edited line from the old text to the new one.
// Columns before the edit are unchanged and columns at or after the old end
// shift by Delta. A column inside a replaced span lands on the same surviving
// character, clamped to the new text [Start, Start+NewLen]. For insertions a
// column at the insertion point moves past the inserted text.
func (e Edit) MapCol(col int) int {
	if e.IsInsertion() {
		if col >= e.Start {
			return col + e.NewLen
		}
		return col
	}
	switch {
	case col <= e.Start:
		return col
	case col >= e.End:
		return col + e.Delta()
	}
	mapped := col - e.Keep
	if mapped < e.Start {
		return e.Start
	}
	if mapped > e.Start+e.NewLen {
		return e.Start + e.NewLen
	}
	return mapped
}
