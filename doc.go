// Package jsonenc encodes Go values as JSON through an encoding container
// model.
//
// Encoding happens in two steps. First the value is described into
// containers (see package container): reflection handles ordinary Go
// values and types implementing container.Encodable describe themselves.
// The containers reduce to an intermediate tree (package ir) which is then
// rendered (package encode) under the configured strategies:
//
//	e := jsonenc.NewEncoder()
//	e.OutputFormatting = format.PrettyPrinted | format.SortedKeys
//	e.KeyEncodingStrategy = strategy.KeySnakeCase
//	e.DateEncodingStrategy = strategy.DateISO8601
//	out, err := e.Encode(v)
//
// # Related Packages
//
//   - github.com/signadot/jsonenc/container - the container model
//   - github.com/signadot/jsonenc/strategy - date, data and key strategies
//   - github.com/signadot/jsonenc/gomap - reflection visitor
//   - github.com/signadot/jsonenc/encode - text rendering
package jsonenc
