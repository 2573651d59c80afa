package container

import (
	"time"

	"github.com/signadot/jsonenc/debug"
	"github.com/signadot/jsonenc/ir"
)

// KeyedContainer holds an ordered list of (key, child container) pairs.
//
// Children are created by the Nested methods and may be populated after
// the call returns; they only need to be complete by the time JSONValue is
// called. Repeated keys follow the configured DuplicatePolicy.
type KeyedContainer struct {
	path     Path
	cfg      *config
	keys     []string
	children []Container
	index    map[string]int
}

func newKeyed(path Path, cfg *config) *KeyedContainer {
	if debug.Containers() {
		debug.Logf("container: keyed at %s\n", path)
	}
	return &KeyedContainer{path: path, cfg: cfg}
}

func (c *KeyedContainer) CodingPath() Path { return c.path.Clone() }

// Len returns the number of entries.
func (c *KeyedContainer) Len() int { return len(c.keys) }

func (c *KeyedContainer) nestedPath(key string) Path {
	return c.path.Append(FieldKey(key))
}

func (c *KeyedContainer) add(key string, child Container) error {
	if i, ok := c.index[key]; ok {
		switch c.cfg.dups {
		case RejectDuplicates:
			return newError(c.nestedPath(key), ErrDuplicateKey, "%q", key)
		case OverwriteDuplicates:
			c.children[i] = child
			return nil
		}
	} else {
		if c.index == nil {
			c.index = map[string]int{}
		}
		c.index[key] = len(c.keys)
	}
	c.keys = append(c.keys, key)
	c.children = append(c.children, child)
	return nil
}

func (c *KeyedContainer) NestedSingleValue(key string) (*SingleValueContainer, error) {
	child := newSingle(c.nestedPath(key), c.cfg)
	if err := c.add(key, child); err != nil {
		return nil, err
	}
	return child, nil
}

func (c *KeyedContainer) NestedKeyed(key string) (*KeyedContainer, error) {
	child := newKeyed(c.nestedPath(key), c.cfg)
	if err := c.add(key, child); err != nil {
		return nil, err
	}
	return child, nil
}

func (c *KeyedContainer) NestedUnkeyed(key string) (*UnkeyedContainer, error) {
	child := newUnkeyed(c.nestedPath(key), c.cfg)
	if err := c.add(key, child); err != nil {
		return nil, err
	}
	return child, nil
}

func (c *KeyedContainer) EncodeNil(key string) error {
	s, err := c.NestedSingleValue(key)
	if err != nil {
		return err
	}
	return s.EncodeNil()
}

func (c *KeyedContainer) EncodeBool(key string, v bool) error {
	s, err := c.NestedSingleValue(key)
	if err != nil {
		return err
	}
	return s.EncodeBool(v)
}

func (c *KeyedContainer) EncodeInt(key string, v int64) error {
	s, err := c.NestedSingleValue(key)
	if err != nil {
		return err
	}
	return s.EncodeInt(v)
}

func (c *KeyedContainer) EncodeUint(key string, v uint64) error {
	s, err := c.NestedSingleValue(key)
	if err != nil {
		return err
	}
	return s.EncodeUint(v)
}

func (c *KeyedContainer) EncodeFloat(key string, v float64) error {
	s, err := c.NestedSingleValue(key)
	if err != nil {
		return err
	}
	return s.EncodeFloat(v)
}

func (c *KeyedContainer) EncodeString(key string, v string) error {
	s, err := c.NestedSingleValue(key)
	if err != nil {
		return err
	}
	return s.EncodeString(v)
}

func (c *KeyedContainer) EncodeDate(key string, v time.Time) error {
	s, err := c.NestedSingleValue(key)
	if err != nil {
		return err
	}
	return s.EncodeDate(v)
}

func (c *KeyedContainer) EncodeData(key string, v []byte) error {
	s, err := c.NestedSingleValue(key)
	if err != nil {
		return err
	}
	return s.EncodeData(v)
}

// Encode encodes v under key through a nested Encoder.
func (c *KeyedContainer) Encode(key string, v any) error {
	s, err := c.NestedSingleValue(key)
	if err != nil {
		return err
	}
	return s.Encode(v)
}

func (c *KeyedContainer) JSONValue() *ir.Node {
	kvs := make([]ir.KeyVal, len(c.keys))
	for i, key := range c.keys {
		kvs[i] = ir.KeyVal{Key: key, Val: c.children[i].JSONValue()}
	}
	return ir.FromKeyVals(kvs)
}
