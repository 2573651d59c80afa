// Package container implements the encoding container model.
//
// An [Encoder] is created for each value being encoded. Whatever traverses
// the value (an [Encodable] implementation, or the visitor installed with
// [WithVisitor]) asks the Encoder for exactly one container:
//
//   - a [SingleValueContainer] for scalars, written exactly once,
//   - a [KeyedContainer] for records, holding ordered (key, child) pairs,
//   - an [UnkeyedContainer] for sequences, append only.
//
// Keyed and unkeyed containers hand out child containers which may be
// populated after they are returned. Once traversal finishes,
// [Encoder.JSONValue] reduces the tree to an [ir.Node].
//
// Misuse, such as asking an Encoder for a second container or writing a
// single value slot twice, is reported as an [*EncodingError] carrying the
// coding path of the offending container.
package container
