package container

import (
	"bytes"
	"math"
	"time"

	"github.com/signadot/jsonenc/debug"
	"github.com/signadot/jsonenc/ir"
)

// SingleValueContainer holds one scalar, or the value of one nested
// encode. It may be written exactly once.
type SingleValueContainer struct {
	path    Path
	cfg     *config
	written bool
	value   *ir.Node
}

func newSingle(path Path, cfg *config) *SingleValueContainer {
	if debug.Containers() {
		debug.Logf("container: single value at %s\n", path)
	}
	return &SingleValueContainer{path: path, cfg: cfg}
}

func (c *SingleValueContainer) CodingPath() Path { return c.path.Clone() }

func (c *SingleValueContainer) checkCanEncode(what string) error {
	if !c.written {
		return nil
	}
	if debug.Containers() {
		debug.Logf("container: second write (%s) at %s\n", what, c.path)
	}
	return newError(c.path, ErrAlreadyEncoded,
		"attempt to encode %s through single value container when a value was already encoded", what)
}

func (c *SingleValueContainer) set(what string, n *ir.Node) error {
	if err := c.checkCanEncode(what); err != nil {
		return err
	}
	c.written = true
	c.value = n
	return nil
}

func (c *SingleValueContainer) EncodeNil() error {
	return c.set("null", ir.Null())
}

func (c *SingleValueContainer) EncodeBool(v bool) error {
	return c.set("bool", ir.FromBool(v))
}

func (c *SingleValueContainer) EncodeInt(v int64) error {
	return c.set("int", ir.FromInt(v))
}

// EncodeUint stores v as an integer. Values above math.MaxInt64 fail with
// ErrInvalidValue.
func (c *SingleValueContainer) EncodeUint(v uint64) error {
	if err := c.checkCanEncode("uint"); err != nil {
		return err
	}
	if v > math.MaxInt64 {
		return newError(c.path, ErrInvalidValue, "%d overflows int64", v)
	}
	return c.set("uint", ir.FromInt(int64(v)))
}

func (c *SingleValueContainer) EncodeFloat(v float64) error {
	return c.set("float", ir.FromFloat(v))
}

func (c *SingleValueContainer) EncodeFloat32(v float32) error {
	return c.set("float", ir.FromFloat(float64(v)))
}

func (c *SingleValueContainer) EncodeString(v string) error {
	return c.set("string", ir.FromString(v))
}

func (c *SingleValueContainer) EncodeDate(v time.Time) error {
	return c.set("date", ir.FromDate(v))
}

// EncodeData stores a copy of v.
func (c *SingleValueContainer) EncodeData(v []byte) error {
	return c.set("data", ir.FromData(bytes.Clone(v)))
}

// Encode encodes v in a fresh Encoder which shares this container's
// configuration and starts from its coding path, then stores the result.
// The slot counts as written even if encoding v fails.
func (c *SingleValueContainer) Encode(v any) error {
	if err := c.checkCanEncode("nested value"); err != nil {
		return err
	}
	c.written = true
	c.value = nil
	e := &Encoder{path: c.path.Clone(), cfg: c.cfg}
	if err := e.EncodeValue(v); err != nil {
		return err
	}
	c.value = e.JSONValue()
	return nil
}

func (c *SingleValueContainer) JSONValue() *ir.Node {
	if c.value == nil {
		return ir.Null()
	}
	return c.value
}
