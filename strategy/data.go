package strategy

import (
	"encoding/base64"
	"fmt"

	"github.com/signadot/jsonenc/container"
	"github.com/signadot/jsonenc/ir"
)

type DataKind int

const (
	DataKindBase64 DataKind = iota
	DataKindRaw
	DataKindDeferred
	DataKindCustom
)

func (k DataKind) String() string {
	switch k {
	case DataKindBase64:
		return "base64"
	case DataKindRaw:
		return "raw"
	case DataKindDeferred:
		return "deferred"
	case DataKindCustom:
		return "custom"
	default:
		return fmt.Sprintf("<data kind %d>", int(k))
	}
}

// DataFunc encodes b into e. If it creates no container the data renders
// as an empty object.
type DataFunc func(b []byte, e *container.Encoder) error

// Data decides how binary values render.
type Data struct {
	Kind DataKind
	Func DataFunc
}

var (
	// DataBase64 renders a string in the standard padded base64 alphabet.
	DataBase64 = Data{}
	// DataRaw copies the bytes into the output unchanged. The output is
	// only valid JSON if the bytes are.
	DataRaw = Data{Kind: DataKindRaw}
	// DataDeferred renders an array of byte values.
	DataDeferred = Data{Kind: DataKindDeferred}
)

func DataCustom(f DataFunc) Data {
	return Data{Kind: DataKindCustom, Func: f}
}

// ParseData parses "base64", "raw" or "deferred".
func ParseData(v string) (Data, error) {
	switch v {
	case "", "base64":
		return DataBase64, nil
	case "raw":
		return DataRaw, nil
	case "deferred", "bytes":
		return DataDeferred, nil
	}
	return Data{}, fmt.Errorf("%w: data strategy %q", ErrUnsupportedStrategy, v)
}

func (d Data) String() string { return d.Kind.String() }

func (d Data) Check() error {
	switch d.Kind {
	case DataKindBase64, DataKindRaw, DataKindDeferred:
		return nil
	case DataKindCustom:
		if d.Func == nil {
			return fmt.Errorf("%w: custom data strategy without a function", ErrUnsupportedStrategy)
		}
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedStrategy, d.Kind)
	}
}

// IsRaw reports whether b is written to the output as is, in which case
// Node is not used.
func (d Data) IsRaw() bool { return d.Kind == DataKindRaw }

// Node converts b into the value which is rendered in its place.
func (d Data) Node(b []byte, opts ...container.Option) (*ir.Node, error) {
	if err := d.Check(); err != nil {
		return nil, err
	}
	switch d.Kind {
	case DataKindBase64:
		return ir.FromString(base64.StdEncoding.EncodeToString(b)), nil
	case DataKindDeferred:
		values := make([]*ir.Node, len(b))
		for i, c := range b {
			values[i] = ir.FromInt(int64(c))
		}
		return ir.FromSlice(values), nil
	case DataKindCustom:
		e := container.NewEncoder(opts...)
		if err := d.Func(b, e); err != nil {
			return nil, err
		}
		return customResult(e), nil
	}
	return nil, fmt.Errorf("%w: raw data has no value form", ErrUnsupportedStrategy)
}
