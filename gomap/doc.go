// Package gomap drives the encoding container model over ordinary Go
// values by reflection.
//
// [Visit] is a [container.VisitFunc]. Install it with
// container.WithVisitor and any Go value can be written through a
// container's Encode method:
//
//	e := container.NewEncoder(container.WithVisitor(gomap.Visit))
//	err := e.EncodeValue(user)
//
// Values are mapped as follows:
//
//   - container.Encodable values encode themselves,
//   - time.Time is a date and []byte is data,
//   - encoding.TextMarshaler values are strings,
//   - booleans, integers, floats and strings are scalars,
//   - slices and arrays are unkeyed containers,
//   - maps are keyed containers with keys in sorted order,
//   - structs are keyed containers with one entry per exported field.
//
// Struct fields honour `json` tags: a name, "omitempty" and "-". Fields of
// embedded structs are promoted unless a shallower field has the same
// name.
//
// Nil pointers, maps, slices and interfaces encode as null. Reference
// cycles fail with [ErrCircular]; channels, functions and complex numbers
// fail with [ErrUnsupportedType].
package gomap
