package life

import "errors"

// Every rejected operation wraps one of these; the engine is left exactly as
// it was before the call.
var (
	ErrInvalidRule       = errors.New("life: invalid rule")
	ErrInvalidPattern    = errors.New("life: invalid pattern")
	ErrOutOfBounds       = errors.New("life: coordinates out of bounds")
	ErrBufferTooSmall    = errors.New("life: render buffer too small")
	ErrInvalidBorderMode = errors.New("life: invalid border mode")
)
