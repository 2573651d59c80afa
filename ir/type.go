package ir

import "fmt"

type Type int

const (
	NullType Type = iota
	BoolType
	IntType
	FloatType
	StringType
	DateType
	DataType
	ArrayType
	ObjectType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:   "Null",
		BoolType:   "Bool",
		IntType:    "Int",
		FloatType:  "Float",
		StringType: "String",
		DateType:   "Date",
		DataType:   "Data",
		ArrayType:  "Array",
		ObjectType: "Object",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Null":   NullType,
		"Bool":   BoolType,
		"Int":    IntType,
		"Float":  FloatType,
		"String": StringType,
		"Date":   DateType,
		"Data":   DataType,
		"Array":  ArrayType,
		"Object": ObjectType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

// IsNumber reports whether t is one of the two numeric variants.
func (t Type) IsNumber() bool { return t == IntType || t == FloatType }

// IsComposite reports whether t holds child nodes.
func (t Type) IsComposite() bool { return t == ArrayType || t == ObjectType }

func Types() []Type {
	return []Type{
		NullType,
		BoolType,
		IntType,
		FloatType,
		StringType,
		DateType,
		DataType,
		ArrayType,
		ObjectType,
	}
}
