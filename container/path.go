package container

import (
	"slices"
	"strconv"
	"strings"

	"github.com/signadot/jsonenc/token"
)

// Key locates a value inside its parent: a field of a keyed container or
// an index of an unkeyed one.
type Key struct {
	Field   string
	Index   int
	IsIndex bool
}

func FieldKey(name string) Key { return Key{Field: name} }
func IndexKey(i int) Key       { return Key{Index: i, IsIndex: true} }

// String returns the key's text: the field name, or the decimal index.
func (k Key) String() string {
	if k.IsIndex {
		return strconv.Itoa(k.Index)
	}
	return k.Field
}

// Path is the coding path of a container, from the root value down.
// It is used for diagnostics only.
type Path []Key

// Append returns a new path extending p with k. p is not modified and the
// result shares no storage with it.
func (p Path) Append(k Key) Path {
	res := make(Path, len(p), len(p)+1)
	copy(res, p)
	return append(res, k)
}

// Last returns the final key of p, or the zero Key for the root path.
func (p Path) Last() Key {
	if len(p) == 0 {
		return Key{}
	}
	return p[len(p)-1]
}

func (p Path) Clone() Path { return slices.Clone(p) }

// String renders p as a kinded path, "a.b[0]" style. Fields that are not
// plain identifiers are quoted. The root path renders as "$".
func (p Path) String() string {
	if len(p) == 0 {
		return "$"
	}
	var b strings.Builder
	for i, k := range p {
		if k.IsIndex {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(k.Index))
			b.WriteByte(']')
			continue
		}
		if i != 0 {
			b.WriteByte('.')
		}
		if token.NeedsQuote(k.Field) {
			b.WriteString(token.Quote(k.Field))
		} else {
			b.WriteString(k.Field)
		}
	}
	return b.String()
}
