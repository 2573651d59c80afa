package encode

import (
	"github.com/signadot/jsonenc/container"
	"github.com/signadot/jsonenc/format"
	"github.com/signadot/jsonenc/strategy"
)

type EncodeOption func(*EncState)

func EncodeFlags(f format.Flags) EncodeOption {
	return func(es *EncState) { es.flags = f }
}
func EncodePretty(v bool) EncodeOption {
	return func(es *EncState) { es.flags = setFlag(es.flags, format.PrettyPrinted, v) }
}
func EncodeSorted(v bool) EncodeOption {
	return func(es *EncState) { es.flags = setFlag(es.flags, format.SortedKeys, v) }
}

// EncodeIndent sets the number of spaces per nesting level in pretty
// output.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}
func EncodeDates(d strategy.Date) EncodeOption {
	return func(es *EncState) { es.dates = d }
}
func EncodeData(d strategy.Data) EncodeOption {
	return func(es *EncState) { es.data = d }
}
func EncodeKeys(k strategy.Key) EncodeOption {
	return func(es *EncState) { es.keys = k }
}

// EncodeBinarySafe disables the check that the output is valid UTF-8.
func EncodeBinarySafe(v bool) EncodeOption {
	return func(es *EncState) { es.binarySafe = v }
}

// EncodeContainerOptions configures the Encoder handed to custom date and
// data functions.
func EncodeContainerOptions(opts ...container.Option) EncodeOption {
	return func(es *EncState) { es.containerOpts = append(es.containerOpts, opts...) }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}

// FlagsFromOpts extracts the formatting flags from encode options.
func FlagsFromOpts(opts ...EncodeOption) format.Flags {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.flags
}

func setFlag(fs, f format.Flags, v bool) format.Flags {
	if v {
		return fs | f
	}
	return fs &^ f
}
