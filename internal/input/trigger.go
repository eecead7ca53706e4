package input

import "strings"

// Trigger decides which edits are worth a formatting scan: a space, a line
// break, or one of the delimiter characters. With everyKey set, every text
// edit triggers a scan.
type Trigger struct {
	chars    string
	everyKey bool
}

// NewTrigger creates a Trigger for the given delimiter characters.
func NewTrigger(chars string, everyKey bool) Trigger {
	return Trigger{chars: chars, everyKey: everyKey}
}

// ShouldScan reports whether ev should be followed by a scan of the line.
func (t Trigger) ShouldScan(ev ActionEvent) bool {
	switch ev.Action {
	case ActionInsertNewLine:
		return true
	case ActionInsertRune:
		return t.everyKey || ev.Rune == ' ' || strings.ContainsRune(t.chars, ev.Rune)
	case ActionDeleteCharBackward, ActionDeleteCharForward:
		return t.everyKey
	}
	return false
}
