package gomap

import (
	"cmp"
	"encoding"
	"reflect"
	"slices"
	"strconv"
	"time"

	"github.com/signadot/jsonenc/container"
	"github.com/signadot/jsonenc/debug"
)

var (
	encodableType     = reflect.TypeFor[container.Encodable]()
	textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()
	timeType          = reflect.TypeFor[time.Time]()
)

// slot is the place a value is written to: an Encoder, a key of a keyed
// container or the next element of an unkeyed one. Exactly one of its
// container methods is called per value.
type slot interface {
	single() (*container.SingleValueContainer, error)
	keyed() (*container.KeyedContainer, error)
	unkeyed() (*container.UnkeyedContainer, error)
	path() container.Path
}

type encoderSlot struct{ e *container.Encoder }

func (s encoderSlot) single() (*container.SingleValueContainer, error) {
	return s.e.SingleValueContainer()
}
func (s encoderSlot) keyed() (*container.KeyedContainer, error) { return s.e.KeyedContainer() }
func (s encoderSlot) unkeyed() (*container.UnkeyedContainer, error) {
	return s.e.UnkeyedContainer()
}
func (s encoderSlot) path() container.Path { return s.e.CodingPath() }

type fieldSlot struct {
	k   *container.KeyedContainer
	key string
}

func (s fieldSlot) single() (*container.SingleValueContainer, error) {
	return s.k.NestedSingleValue(s.key)
}
func (s fieldSlot) keyed() (*container.KeyedContainer, error) { return s.k.NestedKeyed(s.key) }
func (s fieldSlot) unkeyed() (*container.UnkeyedContainer, error) {
	return s.k.NestedUnkeyed(s.key)
}
func (s fieldSlot) path() container.Path {
	return s.k.CodingPath().Append(container.FieldKey(s.key))
}

type elemSlot struct{ u *container.UnkeyedContainer }

func (s elemSlot) single() (*container.SingleValueContainer, error) {
	return s.u.AppendSingleValue(), nil
}
func (s elemSlot) keyed() (*container.KeyedContainer, error)     { return s.u.AppendKeyed(), nil }
func (s elemSlot) unkeyed() (*container.UnkeyedContainer, error) { return s.u.AppendUnkeyed(), nil }
func (s elemSlot) path() container.Path {
	return s.u.CodingPath().Append(container.IndexKey(s.u.Count()))
}

// visitState lives for one call of the visitor.
type visitState struct {
	cfg     *mapConfig
	visited map[visitKey]bool
}

// visitKey identifies a pointer, slice or map being descended into. A
// struct and its first field share an address, as do a slice and a
// prefix of it, so the type and length are part of the key.
type visitKey struct {
	ptr uintptr
	typ reflect.Type
	n   int
}

func (st *visitState) enter(val reflect.Value, s slot) (func(), error) {
	k := visitKey{ptr: val.Pointer(), typ: val.Type()}
	if val.Kind() == reflect.Slice {
		k.n = val.Len()
	}
	if st.visited[k] {
		return nil, visitError(s.path(), ErrCircular, "through %s", val.Type())
	}
	st.visited[k] = true
	return func() { delete(st.visited, k) }, nil
}

func (c *mapConfig) visit(v any, e *container.Encoder) error {
	st := &visitState{cfg: c, visited: map[visitKey]bool{}}
	return st.value(reflect.ValueOf(v), encoderSlot{e})
}

func (st *visitState) value(val reflect.Value, s slot) error {
	if !val.IsValid() {
		return writeNil(s)
	}
	if debug.Visit() {
		debug.Logf("visit: %s at %s\n", val.Type(), s.path())
	}
	switch val.Kind() {
	case reflect.Pointer, reflect.Interface:
		if val.IsNil() {
			return writeNil(s)
		}
	}
	if done, err := st.capability(val, s); done {
		return err
	}

	switch val.Kind() {
	case reflect.Pointer:
		leave, err := st.enter(val, s)
		if err != nil {
			return err
		}
		defer leave()
		return st.value(val.Elem(), s)
	case reflect.Interface:
		return st.value(val.Elem(), s)
	case reflect.Bool:
		sv, err := s.single()
		if err != nil {
			return err
		}
		return sv.EncodeBool(val.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		sv, err := s.single()
		if err != nil {
			return err
		}
		return sv.EncodeInt(val.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		sv, err := s.single()
		if err != nil {
			return err
		}
		return sv.EncodeUint(val.Uint())
	case reflect.Float32:
		sv, err := s.single()
		if err != nil {
			return err
		}
		return sv.EncodeFloat32(float32(val.Float()))
	case reflect.Float64:
		sv, err := s.single()
		if err != nil {
			return err
		}
		return sv.EncodeFloat(val.Float())
	case reflect.String:
		sv, err := s.single()
		if err != nil {
			return err
		}
		return sv.EncodeString(val.String())
	case reflect.Slice:
		if val.IsNil() {
			return writeNil(s)
		}
		if val.Type().Elem().Kind() == reflect.Uint8 {
			sv, err := s.single()
			if err != nil {
				return err
			}
			return sv.EncodeData(val.Bytes())
		}
		leave, err := st.enter(val, s)
		if err != nil {
			return err
		}
		defer leave()
		return st.sequence(val, s)
	case reflect.Array:
		return st.sequence(val, s)
	case reflect.Map:
		if val.IsNil() {
			return writeNil(s)
		}
		leave, err := st.enter(val, s)
		if err != nil {
			return err
		}
		defer leave()
		return st.mapping(val, s)
	case reflect.Struct:
		return st.record(val, s)
	default:
		return visitError(s.path(), ErrUnsupportedType, "%s", val.Type())
	}
}

// capability handles values which decide their own representation.
func (st *visitState) capability(val reflect.Value, s slot) (bool, error) {
	t := val.Type()
	if !val.CanInterface() || t.Kind() == reflect.Pointer {
		// pointers are dereferenced first: their targets are addressable,
		// so pointer receivers are still found below.
		return false, nil
	}
	if t == timeType {
		sv, err := s.single()
		if err != nil {
			return true, err
		}
		return true, sv.EncodeDate(val.Interface().(time.Time))
	}
	if t.Implements(encodableType) {
		return true, encodeSelf(val.Interface().(container.Encodable), s)
	}
	if val.CanAddr() && reflect.PointerTo(t).Implements(encodableType) {
		return true, encodeSelf(val.Addr().Interface().(container.Encodable), s)
	}
	if t.Implements(textMarshalerType) {
		return true, encodeText(val.Interface().(encoding.TextMarshaler), s)
	}
	if val.CanAddr() && reflect.PointerTo(t).Implements(textMarshalerType) {
		return true, encodeText(val.Addr().Interface().(encoding.TextMarshaler), s)
	}
	return false, nil
}

func encodeSelf(x container.Encodable, s slot) error {
	if es, ok := s.(encoderSlot); ok {
		return x.EncodeJSON(es.e)
	}
	sv, err := s.single()
	if err != nil {
		return err
	}
	return sv.Encode(x)
}

func encodeText(x encoding.TextMarshaler, s slot) error {
	text, err := x.MarshalText()
	if err != nil {
		return visitError(s.path(), err, "MarshalText")
	}
	sv, err := s.single()
	if err != nil {
		return err
	}
	return sv.EncodeString(string(text))
}

func writeNil(s slot) error {
	sv, err := s.single()
	if err != nil {
		return err
	}
	return sv.EncodeNil()
}

func (st *visitState) sequence(val reflect.Value, s slot) error {
	u, err := s.unkeyed()
	if err != nil {
		return err
	}
	for i := range val.Len() {
		if err := st.value(val.Index(i), elemSlot{u}); err != nil {
			return err
		}
	}
	return nil
}

type mapEntry struct {
	key string
	val reflect.Value
}

func (st *visitState) mapping(val reflect.Value, s slot) error {
	entries := make([]mapEntry, 0, val.Len())
	iter := val.MapRange()
	for iter.Next() {
		key, err := mapKey(iter.Key())
		if err != nil {
			return visitError(s.path(), err, "map key of type %s", val.Type().Key())
		}
		entries = append(entries, mapEntry{key: key, val: iter.Value()})
	}
	slices.SortFunc(entries, func(a, b mapEntry) int { return cmp.Compare(a.key, b.key) })
	k, err := s.keyed()
	if err != nil {
		return err
	}
	for _, ent := range entries {
		if err := st.value(ent.val, fieldSlot{k: k, key: ent.key}); err != nil {
			return err
		}
	}
	return nil
}

func mapKey(k reflect.Value) (string, error) {
	if k.Kind() == reflect.String {
		return k.String(), nil
	}
	if k.Type().Implements(textMarshalerType) {
		if k.Kind() == reflect.Pointer && k.IsNil() {
			return "", nil
		}
		text, err := k.Interface().(encoding.TextMarshaler).MarshalText()
		return string(text), err
	}
	switch k.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(k.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(k.Uint(), 10), nil
	}
	return "", ErrUnsupportedType
}

func (st *visitState) record(val reflect.Value, s slot) error {
	k, err := s.keyed()
	if err != nil {
		return err
	}
	for _, f := range structFields(val.Type(), st.cfg.tag) {
		fv, err := val.FieldByIndexErr(f.index)
		if err != nil {
			// nil embedded pointer
			continue
		}
		if (f.omitEmpty || st.cfg.omitEmptyAll) && isEmptyValue(fv) {
			continue
		}
		if err := st.value(fv, fieldSlot{k: k, key: f.name}); err != nil {
			return err
		}
	}
	return nil
}
