package ir

import (
	"bytes"
	"slices"
	"time"
)

// Node is a JSON value. Which fields are meaningful depends on Type.
//
// For ObjectType, Fields[i] is the StringType key node of Values[i]. Keys
// keep insertion order and may repeat.
type Node struct {
	Type   Type
	Fields []*Node
	Values []*Node

	String string
	Bool   bool
	Int    int64
	Float  float64
	Time   time.Time
	Bytes  []byte
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.String = y.String
	dst.Bool = y.Bool
	dst.Int = y.Int
	dst.Float = y.Float
	dst.Time = y.Time
	if y.Bytes != nil {
		dst.Bytes = bytes.Clone(y.Bytes)
	}
	dst.Fields = nil
	dst.Values = nil
	if y.Fields != nil {
		dst.Fields = make([]*Node, len(y.Fields))
		for i, yf := range y.Fields {
			dst.Fields[i] = yf.Clone()
		}
	}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			dst.Values[i] = yv.Clone()
		}
	}
	return dst
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type: IntType,
		Int:  v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:  FloatType,
		Float: f,
	}
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromDate(t time.Time) *Node {
	return &Node{
		Type: DateType,
		Time: t,
	}
}

func FromData(d []byte) *Node {
	return &Node{
		Type:  DataType,
		Bytes: d,
	}
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type: ArrayType,
	}
	res.Values = make([]*Node, len(ySlice))
	copy(res.Values, ySlice)
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: ObjectType}
	res.Fields = make([]*Node, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		val := kv.Val
		if val == nil {
			val = Null()
		}
		res.Fields[i] = FromString(kv.Key)
		res.Values[i] = val
	}
	return res
}

// KeyVals returns the fields of an object node as key value pairs in
// insertion order. It returns nil for other node types.
func (y *Node) KeyVals() []KeyVal {
	if y.Type != ObjectType {
		return nil
	}
	res := make([]KeyVal, len(y.Fields))
	for i, f := range y.Fields {
		res[i] = KeyVal{Key: f.String, Val: y.Values[i]}
	}
	return res
}

// Get returns the value of the first field named field, or nil.
func Get(y *Node, field string) *Node {
	if y.Type != ObjectType {
		return nil
	}
	i := slices.IndexFunc(y.Fields, func(f *Node) bool { return f.String == field })
	if i < 0 {
		return nil
	}
	return y.Values[i]
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
