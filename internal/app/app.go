// internal/app/app.go
package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bethropolis/magicpad/internal/config"
	"github.com/bethropolis/magicpad/internal/document"
	"github.com/bethropolis/magicpad/internal/event"
	"github.com/bethropolis/magicpad/internal/input"
	"github.com/bethropolis/magicpad/internal/logger"
	"github.com/bethropolis/magicpad/internal/session"
	"github.com/bethropolis/magicpad/internal/statusbar"
	"github.com/bethropolis/magicpad/internal/theme"
	"github.com/bethropolis/magicpad/internal/tui"
	"github.com/bethropolis/magicpad/internal/types"
	"github.com/gdamore/tcell/v2"
)

// UntitledFile is the save path used when none is given.
const UntitledFile = "untitled" + document.FileExtension

// Options configures a new App.
type Options struct {
	FilePath string
	Config   *config.Config
	Theme    *theme.Theme      // nil selects theme.MagicDark
	Colors   *theme.ColorTable // nil selects the tcell color names only
	Screen   tcell.Screen      // nil opens the real terminal
}

// App is the terminal host: it owns the screen, the session and the cursor,
// and runs a single-threaded poll/handle/draw loop.
type App struct {
	tuiManager     *tui.TUI
	session        *session.Session
	statusBar      *statusbar.StatusBar
	eventManager   *event.Manager
	inputProcessor *input.InputProcessor
	trigger        input.Trigger
	activeTheme    *theme.Theme
	colors         *theme.ColorTable
	cfg            *config.Config

	cursor   types.Position
	view     tui.View
	savePath string

	confirmNew  bool // Ctrl+N pressed once on a non-empty document
	confirmQuit bool // Esc pressed once with unsaved changes
	quit        bool

	copyToClipboard func(string) error
}

// NewApp creates the host and opens opts.FilePath when it exists.
func NewApp(opts Options) (*App, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	activeTheme := opts.Theme
	if activeTheme == nil {
		activeTheme = &theme.MagicDark
	}
	colors := opts.Colors
	if colors == nil {
		var err error
		if colors, err = theme.NewColorTable(nil); err != nil {
			return nil, err
		}
	}

	var (
		tuiManager *tui.TUI
		err        error
	)
	if opts.Screen != nil {
		tuiManager, err = tui.NewWithScreen(opts.Screen, activeTheme)
	} else {
		tuiManager, err = tui.New(activeTheme)
	}
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	eventManager := event.NewManager()
	sess := session.New(session.Config{TagLimit: cfg.Editor.TagLimit, Colors: colors}, eventManager)

	a := &App{
		tuiManager:      tuiManager,
		session:         sess,
		statusBar:       statusbar.New(statusbar.DefaultMessageTimeout),
		eventManager:    eventManager,
		inputProcessor:  input.NewInputProcessor(),
		trigger:         input.NewTrigger(cfg.Editor.TriggerChars, cfg.Editor.ScanEveryKey),
		activeTheme:     activeTheme,
		colors:          colors,
		cfg:             cfg,
		cursor:          types.Position{Line: 1, Col: 0},
		view:            tui.View{Top: 1, TabWidth: cfg.Editor.TabWidth},
		savePath:        SavePath(opts.FilePath),
		copyToClipboard: writeClipboard,
	}
	a.subscribe()

	if opts.FilePath != "" {
		a.open(opts.FilePath)
	}
	return a, nil
}

// SavePath returns the path a document named path is saved to: path itself
// when it has an extension, path plus ".ntp" otherwise, and UntitledFile
// when path is empty.
func SavePath(path string) string {
	if path == "" {
		return UntitledFile
	}
	if filepath.Ext(path) == "" {
		return path + document.FileExtension
	}
	return path
}

// open loads path if it exists. A missing file starts a new document that
// will be saved there.
func (a *App) open(path string) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		logger.Infof("App: '%s' does not exist, starting a new document", path)
		a.statusBar.SetTemporaryMessage("New file: %s", a.savePath)
		return
	}
	if err := a.session.Load(path); err != nil {
		a.statusBar.SetErrorMessage("File error: %v", err)
		return
	}
	a.savePath = path
	a.cursor = types.Position{Line: 1, Col: 0}
}

// Session returns the host's session.
func (a *App) Session() *session.Session { return a.session }

// Cursor returns the cursor position.
func (a *App) Cursor() types.Position { return a.cursor }

// StatusBar returns the host's status bar.
func (a *App) StatusBar() *statusbar.StatusBar { return a.statusBar }

// Run polls terminal events until the user quits.
func (a *App) Run() error {
	defer a.tuiManager.Close()

	if _, _, ok := a.statusBar.Message(); !ok {
		a.statusBar.SetTemporaryMessage("Magic Notepad - Ctrl+S Save | Ctrl+N New | Esc Quit")
	}

	for !a.quit {
		a.drawEditor()
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			break
		}
		a.HandleEvent(ev)
	}

	if a.session.IsModified() {
		logger.Warnf("App: exited with unsaved changes")
	}
	logger.Infof("App: exiting")
	return nil
}

// HandleEvent processes one terminal event.
func (a *App) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.tuiManager.Sync()
	case *tcell.EventKey:
		a.handleAction(a.inputProcessor.ProcessEvent(ev))
	}
}

// drawEditor redraws every component.
func (a *App) drawEditor() {
	a.updateStatusBarContent()
	a.scrollToCursor()

	screen := a.tuiManager.GetScreen()
	width, height := a.tuiManager.Size()

	a.tuiManager.Clear()
	tui.DrawDocument(a.tuiManager, a.session.Document(), a.session.Registry(), a.activeTheme, a.colors, a.cursor, a.view)
	a.statusBar.Draw(screen, width, height, a.activeTheme)
	tui.DrawCursor(a.tuiManager, a.session.Document(), a.cursor, a.view)
	a.tuiManager.Show()
}

// updateStatusBarContent pushes the session state to the status bar.
func (a *App) updateStatusBarContent() {
	a.statusBar.SetFileInfo(a.savePath, a.session.IsModified())
	a.statusBar.SetCursorInfo(a.cursor)
}

// scrollToCursor moves the viewport so the cursor is visible.
func (a *App) scrollToCursor() {
	width, height := a.tuiManager.Size()
	viewHeight := height - tui.StatusBarHeight
	if viewHeight < 1 {
		viewHeight = 1
	}
	if a.cursor.Line < a.view.Top {
		a.view.Top = a.cursor.Line
	} else if a.cursor.Line >= a.view.Top+viewHeight {
		a.view.Top = a.cursor.Line - viewHeight + 1
	}

	doc := a.session.Document()
	textWidth := width - tui.GutterWidth(doc.LineCount(), width)
	if textWidth < 1 {
		textWidth = 1
	}
	line, _ := doc.Line(a.cursor.Line)
	col := tui.VisualColumn(line, a.cursor.Col, a.view.TabWidth)
	if col < a.view.Left {
		a.view.Left = col
	} else if col >= a.view.Left+textWidth {
		a.view.Left = col - textWidth + 1
	}
}
