package container

import (
	"fmt"

	"github.com/signadot/jsonenc/debug"
	"github.com/signadot/jsonenc/ir"
)

// Container is implemented by the three container kinds.
type Container interface {
	// JSONValue reduces the container and everything below it to a value.
	// It does not modify the container and may be called repeatedly.
	JSONValue() *ir.Node
	CodingPath() Path
}

// Encodable is implemented by types which describe themselves to an
// Encoder: they request one container and write their contents into it.
type Encodable interface {
	EncodeJSON(e *Encoder) error
}

// Encoder is the per value entry point of encoding. It owns at most one
// container, created on request.
type Encoder struct {
	path      Path
	cfg       *config
	container Container
}

func NewEncoder(opts ...Option) *Encoder {
	cfg := newConfig(opts...)
	return &Encoder{path: cfg.path, cfg: cfg}
}

// Encode runs the configured visitor over v in a new Encoder and returns
// the resulting value.
func Encode(v any, opts ...Option) (*ir.Node, error) {
	e := NewEncoder(opts...)
	if err := e.EncodeValue(v); err != nil {
		return nil, err
	}
	return e.JSONValue(), nil
}

func (e *Encoder) CodingPath() Path { return e.path.Clone() }

// UserInfo returns the value registered under key with WithUserInfo.
func (e *Encoder) UserInfo(key any) any {
	return e.cfg.userInfo[key]
}

// EncodeValue drives the configured visitor over v with e as its target.
func (e *Encoder) EncodeValue(v any) error {
	return e.cfg.visit(v, e)
}

func (e *Encoder) checkCanCreate(kind string) error {
	if e.container == nil {
		return nil
	}
	if debug.Containers() {
		debug.Logf("container: %s requested at %s after %T\n", kind, e.path, e.container)
	}
	return newError(e.path, ErrContainerAlreadyCreated,
		"cannot create %s container, a %s container exists", kind, kindOf(e.container))
}

func (e *Encoder) KeyedContainer() (*KeyedContainer, error) {
	if err := e.checkCanCreate("keyed"); err != nil {
		return nil, err
	}
	c := newKeyed(e.path, e.cfg)
	e.container = c
	return c, nil
}

func (e *Encoder) UnkeyedContainer() (*UnkeyedContainer, error) {
	if err := e.checkCanCreate("unkeyed"); err != nil {
		return nil, err
	}
	c := newUnkeyed(e.path, e.cfg)
	e.container = c
	return c, nil
}

func (e *Encoder) SingleValueContainer() (*SingleValueContainer, error) {
	if err := e.checkCanCreate("single value"); err != nil {
		return nil, err
	}
	c := newSingle(e.path, e.cfg)
	e.container = c
	return c, nil
}

// Empty reports whether no container has been created on e.
func (e *Encoder) Empty() bool { return e.container == nil }

// JSONValue returns the reduced value of e's container, or null if no
// container was created.
func (e *Encoder) JSONValue() *ir.Node {
	if e.container == nil {
		return ir.Null()
	}
	return e.container.JSONValue()
}

func defaultVisit(v any, e *Encoder) error {
	switch x := v.(type) {
	case nil:
		s, err := e.SingleValueContainer()
		if err != nil {
			return err
		}
		return s.EncodeNil()
	case Encodable:
		return x.EncodeJSON(e)
	default:
		return newError(e.path, ErrNotEncodable, "%T", v)
	}
}

func kindOf(c Container) string {
	switch c.(type) {
	case *KeyedContainer:
		return "keyed"
	case *UnkeyedContainer:
		return "unkeyed"
	case *SingleValueContainer:
		return "single value"
	default:
		return fmt.Sprintf("%T", c)
	}
}
