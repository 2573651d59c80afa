// Package token holds the lexical rules shared by the encoder: quoting JSON
// strings and deciding when a field name must be quoted inside a coding path.
package token
