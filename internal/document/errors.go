package document

import "errors"

// Errors returned by document operations.
var (
	// ErrCorruptDocument indicates a saved document that is malformed or
	// refers to text outside its own content.
	ErrCorruptDocument = errors.New("corrupt document")

	// ErrIO indicates a failed read or write of a document file.
	ErrIO = errors.New("document i/o failure")

	// ErrLineOutOfRange indicates a line or column outside the document.
	ErrLineOutOfRange = errors.New("position out of range")
)
