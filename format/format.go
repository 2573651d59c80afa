package format

import (
	"errors"
	"fmt"
	"strings"
)

// Flags is a combinable set of output formatting options.
type Flags uint

const (
	PrettyPrinted Flags = 1 << iota
	SortedKeys
)

var ErrBadFormat = errors.New("bad format")

var flagNames = []struct {
	flag  Flags
	names []string
}{
	{PrettyPrinted, []string{"pretty", "prettyPrinted", "p"}},
	{SortedKeys, []string{"sorted", "sortedKeys", "s"}},
}

// ParseFlags parses a comma separated list of flag names such as
// "pretty,sorted". The empty string is the empty set.
func ParseFlags(v string) (Flags, error) {
	var res Flags
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f, ok := lookup(part)
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrBadFormat, part)
		}
		res |= f
	}
	return res, nil
}

func lookup(name string) (Flags, bool) {
	for _, fn := range flagNames {
		for _, n := range fn.names {
			if strings.EqualFold(n, name) {
				return fn.flag, true
			}
		}
	}
	return 0, false
}

func (f Flags) Has(g Flags) bool { return f&g == g }

func (f Flags) IsPretty() bool { return f.Has(PrettyPrinted) }
func (f Flags) IsSorted() bool { return f.Has(SortedKeys) }

func (f Flags) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Flags) MarshalText() ([]byte, error) {
	var names []string
	rest := f
	for _, fn := range flagNames {
		if f.Has(fn.flag) {
			names = append(names, fn.names[0])
			rest &^= fn.flag
		}
	}
	if rest != 0 {
		return nil, fmt.Errorf("<err: %#x is not a format flag>", uint(rest))
	}
	return []byte(strings.Join(names, ",")), nil
}

func (f *Flags) UnmarshalText(d []byte) error {
	pf, err := ParseFlags(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}
