package format

import (
	"errors"
	"testing"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		in   string
		want Flags
	}{
		{"", 0},
		{"pretty", PrettyPrinted},
		{"sortedKeys", SortedKeys},
		{"pretty, sorted", PrettyPrinted | SortedKeys},
		{"S,P", PrettyPrinted | SortedKeys},
	}
	for _, tt := range tests {
		got, err := ParseFlags(tt.in)
		if err != nil {
			t.Fatalf("ParseFlags(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseFlags(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if _, err := ParseFlags("pretty,compact"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
}

func TestFlagsString(t *testing.T) {
	if got := (PrettyPrinted | SortedKeys).String(); got != "pretty,sorted" {
		t.Errorf("String() = %q", got)
	}
	if got := Flags(0).String(); got != "" {
		t.Errorf("String() of empty set = %q", got)
	}
	if _, err := Flags(8).MarshalText(); err == nil {
		t.Errorf("expected error for unknown flag bits")
	}
	f := PrettyPrinted
	if !f.IsPretty() || f.IsSorted() {
		t.Errorf("Has() mismatch for %v", f)
	}
}
