package session

import (
	"github.com/bethropolis/magicpad/internal/event"
	"github.com/bethropolis/magicpad/internal/types"
)

// These helpers apply host keystrokes to the document and move existing
// ranges with the text, the way a text widget moves its tags. Each returns
// the cursor position after the edit.

// InsertText inserts single-line text at cursor.
func (s *Session) InsertText(cursor types.Position, text string) (types.Position, error) {
	edit, err := s.doc.Insert(cursor, text)
	if err != nil {
		return cursor, err
	}
	s.reg.ApplyEdit(edit)
	s.touched(edit)
	return types.Position{Line: cursor.Line, Col: cursor.Col + edit.NewLen}, nil
}

// InsertNewline splits the line at cursor.
func (s *Session) InsertNewline(cursor types.Position) (types.Position, error) {
	if err := s.doc.SplitLine(cursor); err != nil {
		return cursor, err
	}
	s.reg.SplitLine(cursor.Line, cursor.Col)
	s.touched(types.Edit{})
	return types.Position{Line: cursor.Line + 1, Col: 0}, nil
}

// DeleteBackward removes the rune before cursor, joining with the previous
// line at column 0.
func (s *Session) DeleteBackward(cursor types.Position) (types.Position, error) {
	if cursor.Col > 0 {
		edit, err := s.doc.Delete(cursor.Line, cursor.Col-1, cursor.Col)
		if err != nil {
			return cursor, err
		}
		s.reg.ApplyEdit(edit)
		s.touched(edit)
		return types.Position{Line: cursor.Line, Col: cursor.Col - 1}, nil
	}
	if cursor.Line <= 1 {
		return cursor, nil
	}
	prev := cursor.Line - 1
	prevLen, err := s.doc.JoinLines(prev)
	if err != nil {
		return cursor, err
	}
	s.reg.JoinLines(prev, prevLen)
	s.touched(types.Edit{})
	return types.Position{Line: prev, Col: prevLen}, nil
}

// DeleteForward removes the rune at cursor, joining with the next line at
// the end of a line.
func (s *Session) DeleteForward(cursor types.Position) (types.Position, error) {
	n := s.doc.LineLen(cursor.Line)
	if cursor.Col < n {
		edit, err := s.doc.Delete(cursor.Line, cursor.Col, cursor.Col+1)
		if err != nil {
			return cursor, err
		}
		s.reg.ApplyEdit(edit)
		s.touched(edit)
		return cursor, nil
	}
	if cursor.Line >= s.doc.LineCount() {
		return cursor, nil
	}
	prevLen, err := s.doc.JoinLines(cursor.Line)
	if err != nil {
		return cursor, err
	}
	s.reg.JoinLines(cursor.Line, prevLen)
	s.touched(types.Edit{})
	return cursor, nil
}

func (s *Session) touched(edit types.Edit) {
	s.modified = true
	s.events.Dispatch(event.TypeDocumentModified, event.DocumentModifiedData{Edit: edit})
}
