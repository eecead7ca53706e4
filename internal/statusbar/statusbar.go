// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"time"

	"github.com/bethropolis/magicpad/internal/theme"
	"github.com/bethropolis/magicpad/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// DefaultMessageTimeout is how long a temporary message stays visible.
const DefaultMessageTimeout = 4 * time.Second

// Hint is shown on the right when there is room.
const Hint = "Tip: **bold** //italic// blue::text::"

// StatusBar is the bottom line: file state, cursor, and temporary messages.
type StatusBar struct {
	timeout time.Duration
	now     func() time.Time

	filePath   string
	cursorPos  types.Position
	isModified bool

	message     string
	messageErr  bool
	messageTime time.Time
}

// New creates a status bar whose messages expire after timeout.
func New(timeout time.Duration) *StatusBar {
	if timeout <= 0 {
		timeout = DefaultMessageTimeout
	}
	return &StatusBar{timeout: timeout, now: time.Now}
}

// SetFileInfo updates the file path and modified flag.
func (sb *StatusBar) SetFileInfo(path string, modified bool) {
	sb.filePath = path
	sb.isModified = modified
}

// SetCursorInfo updates the cursor position shown.
func (sb *StatusBar) SetCursorInfo(pos types.Position) {
	sb.cursorPos = pos
}

// SetTemporaryMessage displays an informational message.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.setMessage(false, format, args...)
}

// SetErrorMessage displays an error message.
func (sb *StatusBar) SetErrorMessage(format string, args ...interface{}) {
	sb.setMessage(true, format, args...)
}

func (sb *StatusBar) setMessage(isErr bool, format string, args ...interface{}) {
	sb.message = fmt.Sprintf(format, args...)
	sb.messageErr = isErr
	sb.messageTime = sb.now()
}

// ResetTemporaryMessage clears any message being displayed.
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.message = ""
	sb.messageTime = time.Time{}
}

// Message returns the active message, if any, and whether it is an error.
func (sb *StatusBar) Message() (string, bool, bool) {
	if sb.messageTime.IsZero() || sb.now().Sub(sb.messageTime) > sb.timeout {
		return "", false, false
	}
	return sb.message, sb.messageErr, true
}

// Text returns the default status text.
func (sb *StatusBar) Text() string {
	name := sb.filePath
	if name == "" {
		name = "[No Name]"
	}
	modified := ""
	if sb.isModified {
		modified = " [Modified]"
	}
	return fmt.Sprintf("Magic Notepad - %s%s -- Line: %d, Col: %d",
		name, modified, sb.cursorPos.Line, sb.cursorPos.Col+1)
}

// Draw renders the status bar on the last screen row.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int, activeTheme *theme.Theme) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1

	text := sb.Text()
	style := activeTheme.GetStyle("StatusBar")
	if msg, isErr, ok := sb.Message(); ok {
		text = msg
		style = activeTheme.GetStyle("StatusBarMessage")
		if isErr {
			style = activeTheme.GetStyle("StatusBarError")
		}
	} else if sb.message != "" {
		sb.ResetTemporaryMessage()
	}

	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}
	used := drawText(screen, 0, y, width, text, style)

	hintWidth := uniseg.StringWidth(Hint)
	if used+hintWidth+2 <= width {
		drawText(screen, width-hintWidth, y, width, Hint, activeTheme.GetStyle("StatusBarHint"))
	}
}

// drawText draws text from column x, stopping at maxX, and returns the
// column after the last cell drawn.
func drawText(screen tcell.Screen, x, y, maxX int, text string, style tcell.Style) int {
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		w := gr.Width()
		if x+w > maxX {
			break
		}
		runes := gr.Runes()
		screen.SetContent(x, y, runes[0], runes[1:], style)
		x += w
	}
	return x
}
