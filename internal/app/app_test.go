package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/magicpad/internal/config"
	"github.com/bethropolis/magicpad/internal/scanner"
	"github.com/bethropolis/magicpad/internal/style"
	"github.com/bethropolis/magicpad/internal/types"
)

func newTestApp(t *testing.T, path string) *App {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	a, err := NewApp(Options{FilePath: path, Config: config.NewDefaultConfig(), Screen: screen})
	require.NoError(t, err)
	t.Cleanup(a.tuiManager.Close)
	screen.SetSize(60, 10)
	return a
}

func typeText(a *App, text string) {
	for _, r := range text {
		a.HandleEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
}

func press(a *App, key tcell.Key) {
	a.HandleEvent(tcell.NewEventKey(key, 0, tcell.ModNone))
}

func message(a *App) string {
	msg, _, _ := a.StatusBar().Message()
	return msg
}

func TestSavePath(t *testing.T) {
	require.Equal(t, UntitledFile, SavePath(""))
	require.Equal(t, "notes.ntp", SavePath("notes"))
	require.Equal(t, "notes.txt", SavePath("notes.txt"))
}

func TestWarningMessage(t *testing.T) {
	err := fmt.Errorf("%w: 'bogus' is not a valid color", scanner.ErrInvalidColor)
	require.Equal(t, "Invalid Color: 'bogus' is not a valid color.", WarningMessage(err))

	err = fmt.Errorf("%w: 100 distinct tags", style.ErrTagLimitReached)
	require.Equal(t, "Tag Limit Reached: Too many dynamic tags. Clear some text.", WarningMessage(err))

	require.Equal(t, "other", WarningMessage(errors.New("other")))
}

func TestApp_TypingFormats(t *testing.T) {
	a := newTestApp(t, "")
	typeText(a, "**hi** ")

	require.Equal(t, "hi ", a.Session().Document().Text())
	require.Equal(t, types.Position{Line: 1, Col: 3}, a.Cursor())
	require.Len(t, a.Session().Registry().Ranges(style.Bold), 1)

	typeText(a, "bogus::x:: ")
	require.Equal(t, "hi bogus::x:: ", a.Session().Document().Text())
	require.Equal(t, "Invalid Color: 'bogus' is not a valid color.", message(a))

	// Enter scans the line before breaking it.
	typeText(a, "//it//")
	press(a, tcell.KeyEnter)
	require.Equal(t, "hi bogus::x:: it\n", a.Session().Document().Text())
	require.Equal(t, types.Position{Line: 2, Col: 0}, a.Cursor())
	require.Len(t, a.Session().Registry().Ranges(style.Italic), 1)

	a.drawEditor()
}

func TestApp_Movement(t *testing.T) {
	a := newTestApp(t, "")
	typeText(a, "ab")
	press(a, tcell.KeyEnter)
	typeText(a, "cd")

	press(a, tcell.KeyHome)
	require.Equal(t, types.Position{Line: 2, Col: 0}, a.Cursor())
	press(a, tcell.KeyLeft)
	require.Equal(t, types.Position{Line: 1, Col: 2}, a.Cursor())
	press(a, tcell.KeyRight)
	require.Equal(t, types.Position{Line: 2, Col: 0}, a.Cursor())
	press(a, tcell.KeyEnd)
	press(a, tcell.KeyUp)
	require.Equal(t, types.Position{Line: 1, Col: 2}, a.Cursor())
	press(a, tcell.KeyUp)
	require.Equal(t, types.Position{Line: 1, Col: 2}, a.Cursor())

	press(a, tcell.KeyBackspace2)
	require.Equal(t, "a\ncd", a.Session().Document().Text())
}

func TestApp_SaveAndReopen(t *testing.T) {
	dir := t.TempDir()
	a := newTestApp(t, filepath.Join(dir, "notes"))
	require.Contains(t, message(a), "New file")

	typeText(a, "red::warm:: day ")
	press(a, tcell.KeyCtrlS)
	saved := filepath.Join(dir, "notes.ntp")
	require.Equal(t, "Saved: "+saved, message(a))
	require.False(t, a.Session().IsModified())

	b := newTestApp(t, saved)
	require.Equal(t, "Opened: "+saved, message(b))
	require.Equal(t, "warm day ", b.Session().Document().Text())
	require.Equal(t, []types.Range{{
		Start: types.Position{Line: 1, Col: 0},
		End:   types.Position{Line: 1, Col: 4},
	}}, b.Session().Registry().Ranges(style.Color("red")))
}

func TestApp_OpenCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.ntp")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	a := newTestApp(t, path)
	msg, isErr, ok := a.StatusBar().Message()
	require.True(t, ok)
	require.True(t, isErr)
	require.Contains(t, msg, "File error:")
	require.Equal(t, "", a.Session().Document().Text())
}

func TestApp_NewAsksFirst(t *testing.T) {
	a := newTestApp(t, "")
	typeText(a, "text")

	press(a, tcell.KeyCtrlN)
	require.Equal(t, "text", a.Session().Document().Text())
	require.Contains(t, message(a), "Ctrl+N again")

	press(a, tcell.KeyCtrlN)
	require.Equal(t, "", a.Session().Document().Text())
	require.Equal(t, types.Position{Line: 1, Col: 0}, a.Cursor())

	// Any other key cancels the pending confirmation.
	typeText(a, "x")
	press(a, tcell.KeyCtrlN)
	press(a, tcell.KeyLeft)
	press(a, tcell.KeyCtrlN)
	require.Equal(t, "x", a.Session().Document().Text())
}

func TestApp_Quit(t *testing.T) {
	a := newTestApp(t, "")
	press(a, tcell.KeyEscape)
	require.True(t, a.quit)

	b := newTestApp(t, "")
	typeText(b, "unsaved")
	press(b, tcell.KeyEscape)
	require.False(t, b.quit)
	require.Contains(t, message(b), "Unsaved changes")
	press(b, tcell.KeyEscape)
	require.True(t, b.quit)

	c := newTestApp(t, "")
	typeText(c, "unsaved")
	press(c, tcell.KeyCtrlQ)
	require.True(t, c.quit)
}

func TestApp_CopyLine(t *testing.T) {
	a := newTestApp(t, "")
	var copied string
	a.copyToClipboard = func(s string) error {
		copied = s
		return nil
	}
	typeText(a, "**x** y")
	press(a, tcell.KeyCtrlY)
	require.Equal(t, "x y", copied)
	require.Equal(t, "Copied line 1", message(a))

	a.cfg.Editor.SystemClipboard = false
	copied = ""
	press(a, tcell.KeyCtrlY)
	require.Empty(t, copied)
}
