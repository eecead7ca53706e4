package app

import (
	"errors"
	"strings"

	"github.com/bethropolis/magicpad/internal/event"
	"github.com/bethropolis/magicpad/internal/logger"
	"github.com/bethropolis/magicpad/internal/scanner"
	"github.com/bethropolis/magicpad/internal/style"
)

// subscribe wires session events to the status bar.
func (a *App) subscribe() {
	a.eventManager.Subscribe(event.TypeScanWarning, a.handleScanWarning)
	a.eventManager.Subscribe(event.TypeDocumentSaved, a.handleDocumentSaved)
	a.eventManager.Subscribe(event.TypeDocumentLoaded, a.handleDocumentLoaded)
	a.eventManager.Subscribe(event.TypeDocumentCleared, a.handleDocumentCleared)
	a.eventManager.Subscribe(event.TypeRangeApplied, a.handleRangeApplied)
}

// handleScanWarning shows recoverable scan errors to the user.
func (a *App) handleScanWarning(e event.Event) bool {
	data, ok := e.Data.(event.ScanWarningData)
	if !ok {
		logger.Warnf("App: ScanWarning event with unexpected data type: %T", e.Data)
		return false
	}
	a.statusBar.SetErrorMessage("%s", WarningMessage(data.Err))
	return false
}

// WarningMessage formats a scan warning for the status bar.
func WarningMessage(err error) string {
	switch {
	case errors.Is(err, scanner.ErrInvalidColor):
		detail := strings.TrimPrefix(err.Error(), scanner.ErrInvalidColor.Error()+": ")
		return "Invalid Color: " + detail + "."
	case errors.Is(err, style.ErrTagLimitReached):
		return "Tag Limit Reached: Too many dynamic tags. Clear some text."
	}
	return err.Error()
}

func (a *App) handleDocumentSaved(e event.Event) bool {
	if data, ok := e.Data.(event.DocumentSavedData); ok {
		a.statusBar.SetTemporaryMessage("Saved: %s", data.FilePath)
	}
	return false
}

func (a *App) handleDocumentLoaded(e event.Event) bool {
	if data, ok := e.Data.(event.DocumentLoadedData); ok {
		a.statusBar.SetTemporaryMessage("Opened: %s", data.FilePath)
	}
	return false
}

func (a *App) handleDocumentCleared(e event.Event) bool {
	a.statusBar.SetTemporaryMessage("New document")
	return false
}

func (a *App) handleRangeApplied(e event.Event) bool {
	if data, ok := e.Data.(event.RangeAppliedData); ok {
		logger.DebugTagf("scan", "App: %s applied at %s", data.Applied.Tag, data.Applied.Range)
	}
	return false
}
