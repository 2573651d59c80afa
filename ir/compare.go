package ir

import (
	"bytes"
	"cmp"
	"strings"
)

// compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
func compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.Type != b.Type {
		return cmp.compare(rank(a.Type), rank(b.Type))
	}

	switch a.Type {
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case IntType:
		return cmp.compare(a.Int, b.Int)
	case FloatType:
		return cmp.compare(a.Float, b.Float)
	case StringType:
		return strings.compare(a.String, b.String)
	case DateType:
		return a.Time.compare(b.Time)
	case DataType:
		return bytes.compare(a.Bytes, b.Bytes)
	case ArrayType:
		return compareArrays(a, b)
	case ObjectType:
		return compareObjects(a, b)
	}
	return 0
}

// Equal reports whether a and b are structurally equal. Array and object
// order is significant.
func Equal(a, b *Node) bool {
	return compare(a, b) == 0
}

// rank returns the sorting rank of a type.
// Order: Null < Bool < Int < Float < String < Date < Data < Array < Object
func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case IntType:
		return 2
	case FloatType:
		return 3
	case StringType:
		return 4
	case DateType:
		return 5
	case DataType:
		return 6
	case ArrayType:
		return 7
	case ObjectType:
		return 8
	}
	return 100
}

func compareArrays(a, b *Node) int {
	lenA := len(a.Values)
	lenB := len(b.Values)
	for i := range min(lenA, lenB) {
		if c := compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.compare(lenA, lenB)
}

func compareObjects(a, b *Node) int {
	lenA := len(a.Fields)
	lenB := len(b.Fields)
	for i := range min(lenA, lenB) {
		if c := compare(a.Fields[i], b.Fields[i]); c != 0 {
			return c
		}
		if c := compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.compare(lenA, lenB)
}
