package jsonenc

import (
	"io"

	"github.com/signadot/jsonenc/container"
	"github.com/signadot/jsonenc/encode"
	"github.com/signadot/jsonenc/format"
	"github.com/signadot/jsonenc/gomap"
	"github.com/signadot/jsonenc/ir"
	"github.com/signadot/jsonenc/strategy"
)

// Encoder converts Go values to JSON text. Its fields are read at each
// call to Encode and may be changed between calls. The zero value is ready
// to use and produces compact output.
type Encoder struct {
	OutputFormatting     format.Flags
	DateEncodingStrategy strategy.Date
	DataEncodingStrategy strategy.Data
	KeyEncodingStrategy  strategy.Key

	// DuplicateKeys decides what happens when a keyed container is given
	// the same key twice.
	DuplicateKeys container.DuplicatePolicy

	// UserInfo is made available to Encodable implementations through
	// container.Encoder.UserInfo.
	UserInfo map[any]any

	// BinarySafe allows output which is not valid UTF-8, which only
	// strategy.DataRaw and custom strategies can produce.
	BinarySafe bool

	// Colors, if set, colorizes the output for a terminal.
	Colors *encode.Colors
}

func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode returns the JSON encoding of v.
func (e *Encoder) Encode(v any) ([]byte, error) {
	node, err := e.Value(v)
	if err != nil {
		return nil, err
	}
	return encode.Bytes(node, e.EncodeOptions()...)
}

// EncodeTo writes the JSON encoding of v to w. Nothing is written if
// encoding fails.
func (e *Encoder) EncodeTo(w io.Writer, v any) error {
	node, err := e.Value(v)
	if err != nil {
		return err
	}
	return encode.Encode(node, w, e.EncodeOptions()...)
}

// Value runs the container model over v and returns the resulting tree,
// before any strategy is applied.
func (e *Encoder) Value(v any) (*ir.Node, error) {
	return container.Encode(v, e.ContainerOptions()...)
}

// ContainerOptions returns the container configuration used by e.
func (e *Encoder) ContainerOptions() []container.Option {
	return []container.Option{
		container.WithVisitor(gomap.Visit),
		container.WithDuplicatePolicy(e.DuplicateKeys),
		container.WithUserInfoMap(e.UserInfo),
	}
}

// EncodeOptions returns the formatter configuration used by e.
func (e *Encoder) EncodeOptions() []encode.EncodeOption {
	return []encode.EncodeOption{
		encode.EncodeFlags(e.OutputFormatting),
		encode.EncodeDates(e.DateEncodingStrategy),
		encode.EncodeData(e.DataEncodingStrategy),
		encode.EncodeKeys(e.KeyEncodingStrategy),
		encode.EncodeBinarySafe(e.BinarySafe),
		encode.EncodeContainerOptions(e.ContainerOptions()...),
		encode.EncodeColors(e.Colors),
	}
}

// Marshal returns the compact JSON encoding of v with default strategies.
func Marshal(v any) ([]byte, error) {
	return NewEncoder().Encode(v)
}

// MarshalIndent is like Marshal with pretty printing.
func MarshalIndent(v any) ([]byte, error) {
	e := NewEncoder()
	e.OutputFormatting = format.PrettyPrinted
	return e.Encode(v)
}
