package encode

import "errors"

var (
	// ErrTextEncoding is returned when the rendered output is not valid
	// UTF-8 and binary safe output was not requested.
	ErrTextEncoding = errors.New("output is not valid UTF-8")
	ErrEncoding     = errors.New("encoding error")
)
