package container

import (
	"time"

	"github.com/signadot/jsonenc/debug"
	"github.com/signadot/jsonenc/ir"
)

// UnkeyedContainer is an append only list of child containers.
type UnkeyedContainer struct {
	path     Path
	cfg      *config
	children []Container
}

func newUnkeyed(path Path, cfg *config) *UnkeyedContainer {
	if debug.Containers() {
		debug.Logf("container: unkeyed at %s\n", path)
	}
	return &UnkeyedContainer{path: path, cfg: cfg}
}

func (c *UnkeyedContainer) CodingPath() Path { return c.path.Clone() }

// Count returns the number of children appended so far.
func (c *UnkeyedContainer) Count() int { return len(c.children) }

func (c *UnkeyedContainer) nestedPath() Path {
	return c.path.Append(IndexKey(len(c.children)))
}

func (c *UnkeyedContainer) AppendSingleValue() *SingleValueContainer {
	child := newSingle(c.nestedPath(), c.cfg)
	c.children = append(c.children, child)
	return child
}

func (c *UnkeyedContainer) AppendKeyed() *KeyedContainer {
	child := newKeyed(c.nestedPath(), c.cfg)
	c.children = append(c.children, child)
	return child
}

func (c *UnkeyedContainer) AppendUnkeyed() *UnkeyedContainer {
	child := newUnkeyed(c.nestedPath(), c.cfg)
	c.children = append(c.children, child)
	return child
}

func (c *UnkeyedContainer) EncodeNil() error {
	return c.AppendSingleValue().EncodeNil()
}

func (c *UnkeyedContainer) EncodeBool(v bool) error {
	return c.AppendSingleValue().EncodeBool(v)
}

func (c *UnkeyedContainer) EncodeInt(v int64) error {
	return c.AppendSingleValue().EncodeInt(v)
}

func (c *UnkeyedContainer) EncodeUint(v uint64) error {
	return c.AppendSingleValue().EncodeUint(v)
}

func (c *UnkeyedContainer) EncodeFloat(v float64) error {
	return c.AppendSingleValue().EncodeFloat(v)
}

func (c *UnkeyedContainer) EncodeString(v string) error {
	return c.AppendSingleValue().EncodeString(v)
}

func (c *UnkeyedContainer) EncodeDate(v time.Time) error {
	return c.AppendSingleValue().EncodeDate(v)
}

func (c *UnkeyedContainer) EncodeData(v []byte) error {
	return c.AppendSingleValue().EncodeData(v)
}

// Encode appends v, encoded through a nested Encoder.
func (c *UnkeyedContainer) Encode(v any) error {
	return c.AppendSingleValue().Encode(v)
}

func (c *UnkeyedContainer) JSONValue() *ir.Node {
	values := make([]*ir.Node, len(c.children))
	for i, child := range c.children {
		values[i] = child.JSONValue()
	}
	return ir.FromSlice(values)
}
