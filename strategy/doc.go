// Package strategy holds the swappable policies which decide how dates,
// binary data and object keys are rendered.
//
// The zero value of each strategy is its default: [DateDeferred],
// [DataBase64] and [KeyAsIs]. Strategies are plain values and may be
// shared between concurrent encodes.
//
// Each strategy also parses from short configuration text, see
// [ParseDate], [ParseData] and [ParseKey].
package strategy
