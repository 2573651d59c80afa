package gomap

import (
	"errors"
	"fmt"

	"github.com/signadot/jsonenc/container"
)

var (
	// ErrCircular is returned when a pointer, map or slice contains itself.
	ErrCircular = errors.New("circular reference")
	// ErrUnsupportedType is returned for values with no JSON form.
	ErrUnsupportedType = errors.New("unsupported type")
)

func visitError(path container.Path, err error, format string, args ...any) error {
	return &container.EncodingError{
		Path:    path,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}
