package scanner

import "errors"

// ErrInvalidColor is reported when color markup names a color the renderer
// does not know. The match is left as literal text.
var ErrInvalidColor = errors.New("invalid color")
