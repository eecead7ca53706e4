package style

import "errors"

// Errors returned by tag and registry operations.
var (
	// ErrTagLimitReached indicates a new tag would exceed the registry cap.
	ErrTagLimitReached = errors.New("tag limit reached")

	// ErrUnknownTag indicates a persisted tag name that maps to no StyleTag.
	ErrUnknownTag = errors.New("unknown tag")

	// ErrInvalidRange indicates an empty, reversed, or multi-line range.
	ErrInvalidRange = errors.New("invalid range")
)
