package main

import (
	"fmt"

	"github.com/signadot/jsonenc/container"

	"github.com/goccy/go-yaml"
)

// document is a decoded YAML value. Mappings keep their source order.
type document struct {
	v any
}

func (d document) EncodeJSON(e *container.Encoder) error {
	switch x := d.v.(type) {
	case yaml.MapSlice:
		k, err := e.KeyedContainer()
		if err != nil {
			return err
		}
		for _, item := range x {
			if err := k.Encode(mapKey(item.Key), document{item.Value}); err != nil {
				return err
			}
		}
		return nil
	case []any:
		u, err := e.UnkeyedContainer()
		if err != nil {
			return err
		}
		for _, elt := range x {
			if err := u.Encode(document{elt}); err != nil {
				return err
			}
		}
		return nil
	default:
		return e.EncodeValue(x)
	}
}

func mapKey(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	return fmt.Sprint(k)
}
