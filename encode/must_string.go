package encode

import (
	"github.com/signadot/jsonenc/ir"
)

// MustString renders node, panicking on error.
func MustString(node *ir.Node, opts ...EncodeOption) string {
	d, err := Bytes(node, opts...)
	if err != nil {
		panic(err)
	}
	return string(d)
}
