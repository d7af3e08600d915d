package types

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument matches every InvalidArgumentError through errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError reports an enum value that is not recognised.
type InvalidArgumentError struct {
	Field string
	Value string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument: unsupported %s %q", e.Field, e.Value)
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}
