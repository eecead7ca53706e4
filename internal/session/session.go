// Package session ties one open document to its style registry, scanner and
// configuration. A Session is used from a single goroutine.
package session

import (
	"errors"
	"fmt"

	"github.com/bethropolis/magicpad/internal/document"
	"github.com/bethropolis/magicpad/internal/event"
	"github.com/bethropolis/magicpad/internal/logger"
	"github.com/bethropolis/magicpad/internal/scanner"
	"github.com/bethropolis/magicpad/internal/style"
	"github.com/bethropolis/magicpad/internal/types"
)

// ErrNoFilePath is returned by Save when no path is given or remembered.
var ErrNoFilePath = errors.New("no file path specified for saving")

// Config is the per-session configuration record.
type Config struct {
	TagLimit int                 // Cap on distinct style tags
	Colors   scanner.ColorOracle // Color-name validity oracle
}

// Session owns one Document and one style Registry.
type Session struct {
	cfg      Config
	doc      *document.Document
	reg      *style.Registry
	scan     *scanner.Scanner
	events   *event.Manager
	filePath string
	modified bool
}

// New creates a session with an empty document. A nil events manager gets
// a private one.
func New(cfg Config, events *event.Manager) *Session {
	if cfg.TagLimit < 2 {
		cfg.TagLimit = style.DefaultLimit
	}
	if events == nil {
		events = event.NewManager()
	}
	s := &Session{cfg: cfg, events: events}
	s.replace(document.New(), style.NewRegistry(cfg.TagLimit))
	return s
}

func (s *Session) replace(doc *document.Document, reg *style.Registry) {
	s.doc = doc
	s.reg = reg
	s.scan = scanner.New(reg, s.cfg.Colors)
}

// Document returns the open document.
func (s *Session) Document() *document.Document { return s.doc }

// Registry returns the style-range store of the open document.
func (s *Session) Registry() *style.Registry { return s.reg }

// Events returns the session's event manager.
func (s *Session) Events() *event.Manager { return s.events }

// FilePath returns the path the document was last loaded from or saved to.
func (s *Session) FilePath() string { return s.filePath }

// IsModified reports whether the document changed since the last load/save.
func (s *Session) IsModified() bool { return s.modified }

// TagsAndRanges returns the current tag to ranges mapping.
func (s *Session) TagsAndRanges() map[style.Tag][]types.Range {
	return s.reg.TagsAndRanges()
}

// ScanLine is the host's entry point for a relevant keystroke: text is the
// current content of line. The line is stored, scanned, and the rewritten
// text, adjusted cursor and applied ranges are returned. Scan warnings are
// in the result and are also dispatched as events.
func (s *Session) ScanLine(line int, text string, cursor types.Position) (scanner.Result, error) {
	if err := s.doc.SetLine(line, text); err != nil {
		return scanner.Result{Text: text, Cursor: cursor}, err
	}

	res := s.scan.ScanLine(line, text, cursor)
	if res.Changed() {
		if err := s.doc.SetLine(line, res.Text); err != nil {
			return res, err
		}
		s.modified = true
	}

	for _, applied := range res.Applied {
		s.events.Dispatch(event.TypeRangeApplied, event.RangeAppliedData{Applied: applied})
	}
	for _, err := range res.Warnings {
		s.events.Dispatch(event.TypeScanWarning, event.ScanWarningData{Line: line, Err: err})
	}
	if res.Changed() {
		s.events.Dispatch(event.TypeDocumentModified, event.DocumentModifiedData{})
	}
	return res, nil
}

// OnKeystroke is ScanLine in the shape a host widget consumes: the new
// line text, the new cursor, and the ranges applied by the pass.
func (s *Session) OnKeystroke(text string, line int, cursor types.Position) (string, types.Position, []scanner.Applied, error) {
	res, err := s.ScanLine(line, text, cursor)
	return res.Text, res.Cursor, res.Applied, err
}

// ScanAt scans the line under cursor as it is stored in the document.
func (s *Session) ScanAt(cursor types.Position) (scanner.Result, error) {
	text, err := s.doc.Line(cursor.Line)
	if err != nil {
		return scanner.Result{Cursor: cursor}, err
	}
	return s.ScanLine(cursor.Line, text, cursor)
}

// ScanAll scans every line of the document in order.
func (s *Session) ScanAll() ([]error, error) {
	var warnings []error
	for line := 1; line <= s.doc.LineCount(); line++ {
		res, err := s.ScanAt(types.Position{Line: line})
		if err != nil {
			return warnings, err
		}
		warnings = append(warnings, res.Warnings...)
	}
	return warnings, nil
}

// Clear replaces the document with an empty one and drops every tag.
func (s *Session) Clear() {
	s.replace(document.New(), style.NewRegistry(s.cfg.TagLimit))
	s.filePath = ""
	s.modified = false
	logger.Infof("Session: new document")
	s.events.Dispatch(event.TypeDocumentCleared, nil)
}

// SetText replaces the document with unformatted text and drops every tag.
// The remembered file path is kept.
func (s *Session) SetText(text string) {
	s.replace(document.FromText(text), style.NewRegistry(s.cfg.TagLimit))
	s.modified = true
	s.events.Dispatch(event.TypeDocumentModified, event.DocumentModifiedData{})
}

// Encode serializes the document and its ranges.
func (s *Session) Encode() ([]byte, error) {
	return document.Encode(s.doc, s.reg)
}

// Restore replaces the open document with a decoded payload. On error the
// session is left untouched.
func (s *Session) Restore(data []byte) error {
	doc, reg, err := document.Decode(data, s.cfg.Colors, s.cfg.TagLimit)
	if err != nil {
		return err
	}
	s.replace(doc, reg)
	s.modified = false
	return nil
}

// Save writes the document to path, or to the remembered path when path is
// empty. The write is atomic.
func (s *Session) Save(path string) error {
	if path == "" {
		path = s.filePath
	}
	if path == "" {
		return ErrNoFilePath
	}

	data, err := s.Encode()
	if err != nil {
		return fmt.Errorf("encoding '%s': %w", path, err)
	}
	if err := document.WriteFile(path, data); err != nil {
		logger.Errorf("Session: save '%s' failed: %v", path, err)
		return err
	}

	s.filePath = path
	s.modified = false
	logger.InfoTagf("io", "Session: saved '%s' (%d bytes)", path, len(data))
	s.events.Dispatch(event.TypeDocumentSaved, event.DocumentSavedData{FilePath: path})
	return nil
}

// Load reads and decodes path, replacing the open document. On error the
// open document is left as it was.
func (s *Session) Load(path string) error {
	data, err := document.ReadFile(path)
	if err != nil {
		logger.Errorf("Session: load '%s' failed: %v", path, err)
		return err
	}
	if err := s.Restore(data); err != nil {
		logger.Errorf("Session: load '%s' failed: %v", path, err)
		return fmt.Errorf("loading '%s': %w", path, err)
	}

	s.filePath = path
	logger.InfoTagf("io", "Session: loaded '%s' (%d lines)", path, s.doc.LineCount())
	s.events.Dispatch(event.TypeDocumentLoaded, event.DocumentLoadedData{FilePath: path})
	return nil
}
