package scanner

import "github.com/bethropolis/magicpad/internal/types"

// Adjust recomputes a cursor after e. A cursor on another line, or before
// the edit, is unchanged; one at or after the old span end shifts by the
// net delta; one inside the span stays on the same surviving character.
func Adjust(cursor types.Position, e types.Edit) types.Position {
	if cursor.Line != e.Line {
		return cursor
	}
	cursor.Col = e.MapCol(cursor.Col)
	return cursor
}
