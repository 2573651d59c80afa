package container

import (
	"errors"
	"fmt"
)

var (
	// ErrContainerAlreadyCreated is returned when an Encoder is asked for a
	// second top level container.
	ErrContainerAlreadyCreated = errors.New("container already created")
	// ErrAlreadyEncoded is returned when a single value slot is written twice.
	ErrAlreadyEncoded = errors.New("value already encoded")
	// ErrDuplicateKey is returned by keyed containers under RejectDuplicates.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrInvalidValue is returned for values JSON cannot represent, such as
	// integers beyond int64 or non finite floats.
	ErrInvalidValue = errors.New("invalid value")
	// ErrNotEncodable is returned by the default visitor for values which do
	// not implement Encodable.
	ErrNotEncodable = errors.New("value is not encodable")
)

// EncodingError reports a failure at a position in the value being encoded.
type EncodingError struct {
	Path    Path
	Message string
	Err     error
}

func (e *EncodingError) Error() string {
	msg := e.Err.Error()
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if len(e.Path) != 0 {
		return fmt.Sprintf("encoding error at %s: %s", e.Path, msg)
	}
	return fmt.Sprintf("encoding error: %s", msg)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

func newError(path Path, err error, format string, args ...any) *EncodingError {
	return &EncodingError{
		Path:    path.Clone(),
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}
