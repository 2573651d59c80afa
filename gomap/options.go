package gomap

import "github.com/signadot/jsonenc/container"

// MapOption controls the mapping from Go values to containers.
type MapOption func(*mapConfig)

type mapConfig struct {
	tag          string
	omitEmptyAll bool
}

func newMapConfig(opts ...MapOption) *mapConfig {
	cfg := &mapConfig{tag: "json"}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// TagName sets the struct tag key read for field options, "json" by
// default.
func TagName(name string) MapOption {
	return func(c *mapConfig) { c.tag = name }
}

// OmitEmpty treats every struct field as if tagged omitempty.
func OmitEmpty(v bool) MapOption {
	return func(c *mapConfig) { c.omitEmptyAll = v }
}

var defaultConfig = newMapConfig()

// Visit encodes v into e with the default options.
func Visit(v any, e *container.Encoder) error {
	return defaultConfig.visit(v, e)
}

// NewVisitor returns a visitor configured by opts.
func NewVisitor(opts ...MapOption) container.VisitFunc {
	return newMapConfig(opts...).visit
}
