// Package format defines the output formatting flags of the encoder.
//
// # Usage
//
//	flags := format.PrettyPrinted | format.SortedKeys
//
//	// or from configuration text
//	flags, err := format.ParseFlags("pretty,sorted")
//
// # Related Packages
//
//   - github.com/signadot/jsonenc/encode - renders IR according to the flags
package format
