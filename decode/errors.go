package decode

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed marks content that could not be parsed as the declared kind.
	ErrMalformed = errors.New("malformed content")

	// ErrUnsupportedFormat marks an image in a format no registered decoder reads.
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

// Error is the failure of one decoder call. Err keeps the cause reachable, so
// errors.Is(err, fs.ErrNotExist) still works for missing files.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func malformed(op, path string, err error) *Error {
	return &Error{Op: op, Path: path, Err: fmt.Errorf("%w: %w", ErrMalformed, err)}
}
