package gomap

import (
	"errors"
	"math"
	"net/netip"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/jsonenc/container"
	"github.com/signadot/jsonenc/ir"
)

func encode(t *testing.T, v any, opts ...MapOption) *ir.Node {
	t.Helper()
	node, err := container.Encode(v, container.WithVisitor(NewVisitor(opts...)))
	if err != nil {
		t.Fatal(err)
	}
	return node
}

func kvs(pairs ...any) *ir.Node {
	res := make([]ir.KeyVal, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		res = append(res, ir.KeyVal{Key: pairs[i].(string), Val: pairs[i+1].(*ir.Node)})
	}
	return ir.FromKeyVals(res)
}

type Base struct {
	ID   int
	Name string
}

type Shadow struct {
	Base
	ID string
}

type Item struct {
	Base
	Name    string         `json:"name"`
	Price   float64        `json:"price,omitempty"`
	Secret  string         `json:"-"`
	Dash    string         `json:"-,"`
	Tags    []string       `json:"tags"`
	Attrs   map[string]int `json:"attrs,omitempty"`
	When    time.Time      `json:"when"`
	Blob    []byte         `json:"blob"`
	Next    *Item          `json:"next,omitempty"`
	Any     any            `json:"any"`
	Addr    netip.Addr     `json:"addr"`
	private int
}

func TestVisitStruct(t *testing.T) {
	when := time.Date(2023, 5, 6, 7, 8, 9, 0, time.UTC)
	item := Item{
		Base:    Base{ID: 7, Name: "hidden"},
		Name:    "widget",
		Secret:  "s",
		Dash:    "d",
		Attrs:   map[string]int{"b": 2, "a": 1},
		When:    when,
		Blob:    []byte{1},
		Next:    &Item{Name: "child", Tags: []string{}},
		Any:     []any{1, "x", nil},
		Addr:    netip.MustParseAddr("10.0.0.1"),
		private: 3,
	}
	got := encode(t, item)
	child := kvs(
		"ID", ir.FromInt(0),
		"Name", ir.FromString(""),
		"name", ir.FromString("child"),
		"-", ir.FromString(""),
		"tags", ir.FromSlice(nil),
		"when", ir.FromDate(time.Time{}),
		"blob", ir.Null(),
		"any", ir.Null(),
		"addr", ir.FromString(""),
	)
	want := kvs(
		"ID", ir.FromInt(7),
		"Name", ir.FromString("hidden"),
		"name", ir.FromString("widget"),
		"-", ir.FromString("d"),
		"tags", ir.Null(),
		"attrs", kvs("a", ir.FromInt(1), "b", ir.FromInt(2)),
		"when", ir.FromDate(when),
		"blob", ir.FromData([]byte{1}),
		"next", child,
		"any", ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromString("x"), ir.Null()}),
		"addr", ir.FromString("10.0.0.1"),
	)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

type celsius float64

func (c celsius) EncodeJSON(e *container.Encoder) error {
	k, err := e.KeyedContainer()
	if err != nil {
		return err
	}
	if err := k.EncodeFloat("value", float64(c)); err != nil {
		return err
	}
	return k.EncodeString("unit", "C")
}

type counter struct{ n int }

func (c *counter) EncodeJSON(e *container.Encoder) error {
	s, err := e.SingleValueContainer()
	if err != nil {
		return err
	}
	return s.EncodeInt(int64(c.n))
}

func TestVisitEncodable(t *testing.T) {
	type reading struct {
		Temp  celsius
		Count counter
		Ptr   *counter
	}
	got := encode(t, &reading{Temp: 21.5, Count: counter{2}, Ptr: &counter{3}})
	want := kvs(
		"Temp", kvs("value", ir.FromFloat(21.5), "unit", ir.FromString("C")),
		"Count", ir.FromInt(2),
		"Ptr", ir.FromInt(3),
	)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(ir.FromInt(4), encode(t, &counter{4})); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestVisitScalars(t *testing.T) {
	tests := []struct {
		in   any
		want *ir.Node
	}{
		{nil, ir.Null()},
		{true, ir.FromBool(true)},
		{int8(-3), ir.FromInt(-3)},
		{uint16(9), ir.FromInt(9)},
		{float32(0.5), ir.FromFloat(0.5)},
		{"s", ir.FromString("s")},
		{(*int)(nil), ir.Null()},
		{[2]bool{true, false}, ir.FromSlice([]*ir.Node{ir.FromBool(true), ir.FromBool(false)})},
		{map[int]string{10: "x", 2: "y"}, kvs("10", ir.FromString("x"), "2", ir.FromString("y"))},
		{map[string]any(nil), ir.Null()},
	}
	for _, tc := range tests {
		if diff := cmp.Diff(tc.want, encode(t, tc.in)); diff != "" {
			t.Errorf("%#v (-want +got):\n%s", tc.in, diff)
		}
	}
}

func TestVisitErrors(t *testing.T) {
	type node struct {
		Next *node `json:"next"`
	}
	loop := &node{}
	loop.Next = loop
	_, err := container.Encode(loop, container.WithVisitor(Visit))
	if !errors.Is(err, ErrCircular) {
		t.Fatalf("got %v, want %v", err, ErrCircular)
	}
	var encErr *container.EncodingError
	if !errors.As(err, &encErr) || encErr.Path.String() != "next" {
		t.Errorf("got %v", err)
	}

	self := []any{nil}
	self[0] = self
	if _, err := container.Encode(self, container.WithVisitor(Visit)); !errors.Is(err, ErrCircular) {
		t.Errorf("got %v, want %v", err, ErrCircular)
	}

	_, err = container.Encode(map[string]any{"f": func() {}}, container.WithVisitor(Visit))
	if !errors.Is(err, ErrUnsupportedType) || !errors.As(err, &encErr) || encErr.Path.String() != "f" {
		t.Errorf("got %v, want %v at f", err, ErrUnsupportedType)
	}

	_, err = container.Encode([]uint64{math.MaxUint64}, container.WithVisitor(Visit))
	if !errors.Is(err, container.ErrInvalidValue) {
		t.Errorf("got %v, want %v", err, container.ErrInvalidValue)
	}

	_, err = container.Encode(map[[2]int]int{{1, 2}: 3}, container.WithVisitor(Visit))
	if !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("got %v, want %v", err, ErrUnsupportedType)
	}
}

func TestEmbeddedShadowing(t *testing.T) {
	got := encode(t, Shadow{Base: Base{ID: 1, Name: "n"}, ID: "outer"})
	want := kvs("Name", ir.FromString("n"), "ID", ir.FromString("outer"))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestSharedPointerIsNotCircular(t *testing.T) {
	shared := &Base{ID: 1}
	got := encode(t, []*Base{shared, shared})
	b := kvs("ID", ir.FromInt(1), "Name", ir.FromString(""))
	if diff := cmp.Diff(ir.FromSlice([]*ir.Node{b, b}), got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

type fieldRef struct {
	V int
	P *int
}

func TestInteriorPointerIsNotCircular(t *testing.T) {
	n := &fieldRef{V: 7}
	n.P = &n.V
	want := kvs("V", ir.FromInt(7), "P", ir.FromInt(7))
	if diff := cmp.Diff(want, encode(t, n)); diff != "" {
		t.Errorf("struct (-want +got):\n%s", diff)
	}

	elts := []fieldRef{{V: 3}}
	elts[0].P = &elts[0].V
	want = ir.FromSlice([]*ir.Node{kvs("V", ir.FromInt(3), "P", ir.FromInt(3))})
	if diff := cmp.Diff(want, encode(t, elts)); diff != "" {
		t.Errorf("slice (-want +got):\n%s", diff)
	}
}

func TestVisitOptions(t *testing.T) {
	type rec struct {
		A string `yaml:"alpha"`
		B int    `yaml:"beta"`
	}
	got := encode(t, rec{A: "x"}, TagName("yaml"), OmitEmpty(true))
	if diff := cmp.Diff(kvs("alpha", ir.FromString("x")), got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestParseTag(t *testing.T) {
	tests := []struct {
		in   string
		want fieldTag
	}{
		{"", fieldTag{}},
		{"-", fieldTag{skip: true}},
		{"-,", fieldTag{name: "-"}},
		{"name,omitempty", fieldTag{name: "name", omitEmpty: true}},
		{",string,omitempty", fieldTag{omitEmpty: true}},
	}
	for _, tc := range tests {
		if diff := cmp.Diff(tc.want, parseTag(tc.in), cmp.AllowUnexported(fieldTag{})); diff != "" {
			t.Errorf("%q (-want +got):\n%s", tc.in, diff)
		}
	}
}
