// Package encode renders an [ir.Node] tree as JSON text.
//
// Rendering is configured with [EncodeOption] values: formatting flags
// (pretty printing, sorted keys), the date, data and key strategies from
// package strategy, and optional colors for terminal output.
//
// Compact output has no whitespace at all. Pretty output puts every
// element of a non empty object or array on its own line, indented by four
// spaces per level, with ": " between keys and values. Neither form ends
// with a newline.
//
// Sorted keys are ordered after the key strategy has been applied, using a
// natural, case insensitive order in which runs of digits compare by value
// ("a2" before "a10").
//
// Rendering recurses once per nesting level of the input, so the input's
// depth is limited by the goroutine stack.
package encode
