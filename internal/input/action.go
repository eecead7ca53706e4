// internal/input/action.go
package input

// Action represents an operation requested by a key press.
type Action int

const (
	ActionUnknown Action = iota
	ActionQuit
	ActionForceQuit
	ActionSave
	ActionNew
	ActionCopyLine

	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionMoveHome
	ActionMoveEnd

	ActionInsertRune // Requires Rune
	ActionInsertNewLine
	ActionDeleteCharForward
	ActionDeleteCharBackward
)

// ActionEvent is a decoded key press.
type ActionEvent struct {
	Action Action
	Rune   rune // Used for ActionInsertRune
}
