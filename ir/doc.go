// Package ir provides the intermediate representation of JSON values.
//
// # Overview
//
// Encoding a Go value happens in two steps: containers accumulate what a
// value writes about itself and reduce to an ir.Node tree, then the encode
// package renders that tree as text. The tree is plain data. It is built
// once, bottom up, and is not modified afterwards.
//
// # Node Types
//
// The Type field indicates which fields of a Node hold its value:
//
//   - NullType: no value
//   - BoolType: Bool
//   - IntType: Int, every integer width is widened to int64
//   - FloatType: Float, every floating point width is widened to float64
//   - StringType: String
//   - DateType: Time, rendered according to the date strategy
//   - DataType: Bytes, rendered according to the data strategy
//   - ArrayType: Values, in order
//   - ObjectType: Fields (string key nodes) and Values, paired by index
//
// Objects keep their insertion order and may contain the same key more than
// once. Sorting keys is a rendering decision, so Equal treats
// field order as significant.
//
// # Construction
//
//	node := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "a", Val: ir.FromSlice([]*ir.Node{ir.FromString("1")})},
//	    {Key: "b", Val: ir.FromInt(4)},
//	})
//
// # Related Packages
//
//   - github.com/signadot/jsonenc/container - builds ir trees from values
//   - github.com/signadot/jsonenc/encode - renders ir trees as JSON text
package ir
