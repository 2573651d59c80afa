package container

import (
	"fmt"
	"maps"
)

// VisitFunc drives the encoding of v into e. It must ask e for exactly one
// container and populate it.
type VisitFunc func(v any, e *Encoder) error

// DuplicatePolicy decides what a keyed container does when a key is used
// more than once.
type DuplicatePolicy int

const (
	// PreserveDuplicates keeps every entry, in insertion order.
	PreserveDuplicates DuplicatePolicy = iota
	// RejectDuplicates fails the second use of a key with ErrDuplicateKey.
	RejectDuplicates
	// OverwriteDuplicates replaces the earlier entry's value, keeping its
	// position.
	OverwriteDuplicates
)

func ParseDuplicatePolicy(v string) (DuplicatePolicy, error) {
	p, ok := map[string]DuplicatePolicy{
		"preserve":  PreserveDuplicates,
		"reject":    RejectDuplicates,
		"overwrite": OverwriteDuplicates,
	}[v]
	if ok {
		return p, nil
	}
	return 0, fmt.Errorf("unknown duplicate key policy %q", v)
}

func (p DuplicatePolicy) String() string {
	switch p {
	case PreserveDuplicates:
		return "preserve"
	case RejectDuplicates:
		return "reject"
	case OverwriteDuplicates:
		return "overwrite"
	default:
		return fmt.Sprintf("<policy %d>", int(p))
	}
}

// config is shared, read only, by an Encoder, every container below it and
// every nested Encoder created for them.
type config struct {
	visit    VisitFunc
	userInfo map[any]any
	dups     DuplicatePolicy
	path     Path
}

type Option func(*config)

// WithVisitor sets the traversal used by Encoder.EncodeValue and
// SingleValueContainer.Encode.
func WithVisitor(f VisitFunc) Option {
	return func(c *config) { c.visit = f }
}

// WithUserInfo makes val available to visitors through Encoder.UserInfo.
func WithUserInfo(key, val any) Option {
	return func(c *config) {
		if c.userInfo == nil {
			c.userInfo = map[any]any{}
		}
		c.userInfo[key] = val
	}
}

// WithUserInfoMap adds every entry of m, see WithUserInfo.
func WithUserInfoMap(m map[any]any) Option {
	return func(c *config) {
		if len(m) == 0 {
			return
		}
		if c.userInfo == nil {
			c.userInfo = map[any]any{}
		}
		maps.Copy(c.userInfo, m)
	}
}

func WithDuplicatePolicy(p DuplicatePolicy) Option {
	return func(c *config) { c.dups = p }
}

// WithPath sets the coding path of the root Encoder.
func WithPath(p Path) Option {
	return func(c *config) { c.path = p.Clone() }
}

func newConfig(opts ...Option) *config {
	cfg := &config{visit: defaultVisit}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.visit == nil {
		cfg.visit = defaultVisit
	}
	return cfg
}
