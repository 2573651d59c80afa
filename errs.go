package jsonenc

import (
	"github.com/signadot/jsonenc/container"
	"github.com/signadot/jsonenc/encode"
	"github.com/signadot/jsonenc/gomap"
	"github.com/signadot/jsonenc/strategy"
)

var (
	ErrContainerAlreadyCreated = container.ErrContainerAlreadyCreated
	ErrAlreadyEncoded          = container.ErrAlreadyEncoded
	ErrDuplicateKey            = container.ErrDuplicateKey
	ErrInvalidValue            = container.ErrInvalidValue
	ErrNotEncodable            = container.ErrNotEncodable
	ErrTextEncoding            = encode.ErrTextEncoding
	ErrUnsupportedStrategy     = strategy.ErrUnsupportedStrategy
	ErrCircular                = gomap.ErrCircular
	ErrUnsupportedType         = gomap.ErrUnsupportedType
)

// EncodingError reports a failure at a coding path.
type EncodingError = container.EncodingError
