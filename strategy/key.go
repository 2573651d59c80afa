package strategy

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/signadot/jsonenc/container"
)

type KeyKind int

const (
	KeyKindAsIs KeyKind = iota
	KeyKindSnakeCase
	KeyKindCustom
)

func (k KeyKind) String() string {
	switch k {
	case KeyKindAsIs:
		return "asis"
	case KeyKindSnakeCase:
		return "snake"
	case KeyKindCustom:
		return "custom"
	default:
		return fmt.Sprintf("<key kind %d>", int(k))
	}
}

// KeyFunc returns the text to render for the last key of path. path runs
// from the root value down to and including the key.
type KeyFunc func(path container.Path) (string, error)

// Key decides how object keys render.
type Key struct {
	Kind KeyKind
	Func KeyFunc
}

var (
	KeyAsIs      = Key{}
	KeySnakeCase = Key{Kind: KeyKindSnakeCase}
)

func KeyCustom(f KeyFunc) Key {
	return Key{Kind: KeyKindCustom, Func: f}
}

// ParseKey parses "asis" or "snake".
func ParseKey(v string) (Key, error) {
	switch v {
	case "", "asis", "as-is":
		return KeyAsIs, nil
	case "snake", "snake_case":
		return KeySnakeCase, nil
	}
	return Key{}, fmt.Errorf("%w: key strategy %q", ErrUnsupportedStrategy, v)
}

func (k Key) String() string { return k.Kind.String() }

func (k Key) Check() error {
	switch k.Kind {
	case KeyKindAsIs, KeyKindSnakeCase:
		return nil
	case KeyKindCustom:
		if k.Func == nil {
			return fmt.Errorf("%w: custom key strategy without a function", ErrUnsupportedStrategy)
		}
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedStrategy, k.Kind)
	}
}

// Apply returns the rendered form of the last key of path.
func (k Key) Apply(path container.Path) (string, error) {
	if err := k.Check(); err != nil {
		return "", err
	}
	key := path.Last().String()
	switch k.Kind {
	case KeyKindSnakeCase:
		return SnakeCase(key), nil
	case KeyKindCustom:
		return k.Func(path)
	}
	return key, nil
}

// SnakeCase converts a camel case key to snake case.
//
// An uppercase letter after a non-uppercase one starts a new word. Within a
// run of uppercase letters, the last one starts a new word when a lowercase
// letter follows it, so "myURLProperty" becomes "my_url_property" and
// "HTTPServer" becomes "http_server". Words are joined with '_' and
// lowercased. Leading and trailing underscores are kept.
func SnakeCase(key string) string {
	body := strings.TrimLeft(key, "_")
	lead := key[:len(key)-len(body)]
	body = strings.TrimRight(body, "_")
	if body == "" {
		return key
	}
	trail := key[len(lead)+len(body):]

	rs := []rune(body)
	var b strings.Builder
	b.WriteString(lead)
	for i, r := range rs {
		if i > 0 && unicode.IsUpper(r) {
			prevUp := unicode.IsUpper(rs[i-1])
			nextLow := i+1 < len(rs) && unicode.IsLower(rs[i+1])
			if !prevUp || nextLow {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	b.WriteString(trail)
	return b.String()
}
