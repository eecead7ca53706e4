package statusbar

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/magicpad/internal/theme"
	"github.com/bethropolis/magicpad/internal/types"
)

func rowText(s tcell.Screen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestStatusBar_Text(t *testing.T) {
	sb := New(0)
	require.Equal(t, "Magic Notepad - [No Name] -- Line: 0, Col: 1", sb.Text())

	sb.SetFileInfo("notes.ntp", true)
	sb.SetCursorInfo(types.Position{Line: 3, Col: 4})
	require.Equal(t, "Magic Notepad - notes.ntp [Modified] -- Line: 3, Col: 5", sb.Text())
}

func TestStatusBar_MessageExpires(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	sb := New(time.Second)
	sb.now = func() time.Time { return now }

	sb.SetErrorMessage("Invalid Color: '%s' is not a valid color.", "bogus")
	msg, isErr, ok := sb.Message()
	require.True(t, ok)
	require.True(t, isErr)
	require.Equal(t, "Invalid Color: 'bogus' is not a valid color.", msg)

	now = now.Add(2 * time.Second)
	_, _, ok = sb.Message()
	require.False(t, ok)

	sb.SetTemporaryMessage("Saved")
	_, isErr, ok = sb.Message()
	require.True(t, ok)
	require.False(t, isErr)

	sb.ResetTemporaryMessage()
	_, _, ok = sb.Message()
	require.False(t, ok)
}

func TestStatusBar_Draw(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(100, 3)

	sb := New(0)
	sb.SetFileInfo("a.ntp", false)
	sb.SetCursorInfo(types.Position{Line: 1, Col: 0})
	sb.Draw(screen, 100, 3, &theme.MagicDark)

	row := rowText(screen, 2, 100)
	require.True(t, strings.HasPrefix(row, "Magic Notepad - a.ntp -- Line: 1, Col: 1"))
	require.True(t, strings.HasSuffix(row, Hint))

	_, _, st, _ := screen.GetContent(0, 2)
	require.Equal(t, theme.MagicDark.GetStyle("StatusBar"), st)

	sb.SetErrorMessage("File error: boom")
	sb.Draw(screen, 100, 3, &theme.MagicDark)
	require.True(t, strings.HasPrefix(rowText(screen, 2, 100), "File error: boom"))
	_, _, st, _ = screen.GetContent(0, 2)
	require.Equal(t, theme.MagicDark.GetStyle("StatusBarError"), st)
}
