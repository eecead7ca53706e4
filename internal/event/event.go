// internal/event/event.go
package event

import (
	"github.com/bethropolis/magicpad/internal/scanner"
	"github.com/bethropolis/magicpad/internal/types"
)

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	TypeRangeApplied     // A markup span was resolved into a styled range
	TypeScanWarning      // A match was skipped (invalid color, tag limit)
	TypeDocumentLoaded   // A document was loaded from disk
	TypeDocumentSaved    // The document was written to disk
	TypeDocumentCleared  // The document was replaced by an empty one
	TypeDocumentModified // Text changed through the host or the scanner
)

func (t Type) String() string {
	switch t {
	case TypeRangeApplied:
		return "range-applied"
	case TypeScanWarning:
		return "scan-warning"
	case TypeDocumentLoaded:
		return "document-loaded"
	case TypeDocumentSaved:
		return "document-saved"
	case TypeDocumentCleared:
		return "document-cleared"
	case TypeDocumentModified:
		return "document-modified"
	default:
		return "unknown"
	}
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// RangeAppliedData carries one resolved markup span.
type RangeAppliedData struct {
	Applied scanner.Applied
}

// ScanWarningData carries a recoverable scan error.
type ScanWarningData struct {
	Line int
	Err  error
}

// DocumentLoadedData names the file that was loaded.
type DocumentLoadedData struct {
	FilePath string
}

// DocumentSavedData names the file that was written.
type DocumentSavedData struct {
	FilePath string
}

// DocumentModifiedData carries the edit, when the change was a single-line
// edit; line splits and joins report a zero Edit.
type DocumentModifiedData struct {
	Edit types.Edit
}
