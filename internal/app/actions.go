package app

import (
	"github.com/atotto/clipboard"
	"github.com/bethropolis/magicpad/internal/input"
	"github.com/bethropolis/magicpad/internal/logger"
	"github.com/bethropolis/magicpad/internal/types"
)

func writeClipboard(text string) error {
	return clipboard.WriteAll(text)
}

// handleAction applies one decoded key press.
func (a *App) handleAction(ev input.ActionEvent) {
	if ev.Action != input.ActionNew {
		a.confirmNew = false
	}
	if ev.Action != input.ActionQuit {
		a.confirmQuit = false
	}

	var err error
	switch ev.Action {
	case input.ActionQuit:
		a.requestQuit()
	case input.ActionForceQuit:
		a.quit = true
	case input.ActionSave:
		a.save()
	case input.ActionNew:
		a.newDocument()
	case input.ActionCopyLine:
		a.copyLine()

	case input.ActionMoveUp:
		a.moveCursor(-1, 0)
	case input.ActionMoveDown:
		a.moveCursor(1, 0)
	case input.ActionMoveLeft:
		a.moveCursor(0, -1)
	case input.ActionMoveRight:
		a.moveCursor(0, 1)
	case input.ActionMoveHome:
		a.cursor.Col = 0
	case input.ActionMoveEnd:
		a.cursor.Col = a.session.Document().LineLen(a.cursor.Line)

	case input.ActionInsertRune:
		a.cursor, err = a.session.InsertText(a.cursor, string(ev.Rune))
		if err == nil && a.trigger.ShouldScan(ev) {
			a.scanCurrentLine()
		}
	case input.ActionInsertNewLine:
		// The finished line is scanned before it is split.
		if a.trigger.ShouldScan(ev) {
			a.scanCurrentLine()
		}
		a.cursor, err = a.session.InsertNewline(a.cursor)
	case input.ActionDeleteCharBackward:
		a.cursor, err = a.session.DeleteBackward(a.cursor)
		if err == nil && a.trigger.ShouldScan(ev) {
			a.scanCurrentLine()
		}
	case input.ActionDeleteCharForward:
		a.cursor, err = a.session.DeleteForward(a.cursor)
		if err == nil && a.trigger.ShouldScan(ev) {
			a.scanCurrentLine()
		}
	}

	if err != nil {
		logger.Errorf("App: action %d failed: %v", ev.Action, err)
		a.statusBar.SetErrorMessage("Error: %v", err)
	}
}

// scanCurrentLine runs the formatting scanner over the cursor's line.
// Warnings reach the status bar through the event manager.
func (a *App) scanCurrentLine() {
	res, err := a.session.ScanAt(a.cursor)
	if err != nil {
		logger.Errorf("App: scan of line %d failed: %v", a.cursor.Line, err)
		return
	}
	a.cursor = res.Cursor
}

// moveCursor moves by dLine lines or dCol columns, wrapping across line
// ends for horizontal moves.
func (a *App) moveCursor(dLine, dCol int) {
	doc := a.session.Document()
	pos := a.cursor
	switch {
	case dLine != 0:
		pos.Line += dLine
	case dCol < 0 && pos.Col == 0 && pos.Line > 1:
		pos.Line--
		pos.Col = doc.LineLen(pos.Line)
	case dCol > 0 && pos.Col >= doc.LineLen(pos.Line) && pos.Line < doc.LineCount():
		pos.Line++
		pos.Col = 0
	default:
		pos.Col += dCol
	}
	a.cursor = doc.Clamp(pos)
}

func (a *App) requestQuit() {
	if a.session.IsModified() && !a.confirmQuit {
		a.confirmQuit = true
		a.statusBar.SetErrorMessage("Unsaved changes! Press Esc again to quit, Ctrl+S to save.")
		return
	}
	a.quit = true
}

func (a *App) save() {
	if err := a.session.Save(a.savePath); err != nil {
		a.statusBar.SetErrorMessage("File error: %v", err)
		return
	}
	a.savePath = a.session.FilePath()
}

// newDocument clears the document, asking first when it has content.
func (a *App) newDocument() {
	if a.cfg.Editor.ConfirmNew && !a.confirmNew && !a.session.Document().IsEmpty() {
		a.confirmNew = true
		a.statusBar.SetErrorMessage("Discard the current document? Press Ctrl+N again to confirm.")
		return
	}
	a.confirmNew = false
	a.session.Clear()
	a.cursor = types.Position{Line: 1, Col: 0}
	a.view = a.view.Reset()
}

func (a *App) copyLine() {
	if !a.cfg.Editor.SystemClipboard {
		a.statusBar.SetErrorMessage("System clipboard is disabled")
		return
	}
	line, err := a.session.Document().Line(a.cursor.Line)
	if err != nil {
		return
	}
	if err := a.copyToClipboard(line); err != nil {
		logger.Warnf("App: clipboard write failed: %v", err)
		a.statusBar.SetErrorMessage("Clipboard error: %v", err)
		return
	}
	a.statusBar.SetTemporaryMessage("Copied line %d", a.cursor.Line)
}
