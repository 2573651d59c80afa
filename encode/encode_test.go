package encode

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/signadot/jsonenc/container"
	"github.com/signadot/jsonenc/format"
	"github.com/signadot/jsonenc/ir"
	"github.com/signadot/jsonenc/strategy"
)

func strs(vs ...string) *ir.Node {
	res := make([]*ir.Node, len(vs))
	for i, v := range vs {
		res[i] = ir.FromString(v)
	}
	return ir.FromSlice(res)
}

func ints(vs ...int64) *ir.Node {
	res := make([]*ir.Node, len(vs))
	for i, v := range vs {
		res[i] = ir.FromInt(v)
	}
	return ir.FromSlice(res)
}

func obj(kvs ...any) *ir.Node {
	res := make([]ir.KeyVal, 0, len(kvs)/2)
	for i := 0; i < len(kvs); i += 2 {
		res = append(res, ir.KeyVal{Key: kvs[i].(string), Val: kvs[i+1].(*ir.Node)})
	}
	return ir.FromKeyVals(res)
}

func scenarioAB() *ir.Node {
	return obj("a", strs("1", "2", "3"), "b", ints(4, 5, 6, 7, 8))
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		node *ir.Node
		opts []EncodeOption
		want string
	}{
		{
			name: "compact",
			node: scenarioAB(),
			want: `{"a":["1","2","3"],"b":[4,5,6,7,8]}`,
		},
		{
			name: "pretty",
			node: scenarioAB(),
			opts: []EncodeOption{EncodePretty(true)},
			want: `{
    "a": [
        "1",
        "2",
        "3"
    ],
    "b": [
        4,
        5,
        6,
        7,
        8
    ]
}`,
		},
		{
			name: "sorted",
			node: obj("z", ir.FromString("1"), "b", ir.FromString("2"), "r", ir.FromString("3"), "c", ir.FromString("4")),
			opts: []EncodeOption{EncodeSorted(true)},
			want: `{"b":"2","c":"4","r":"3","z":"1"}`,
		},
		{
			name: "empty composites",
			node: obj("e", obj(), "f", ints()),
			opts: []EncodeOption{EncodeFlags(format.PrettyPrinted)},
			want: "{\n    \"e\": {},\n    \"f\": []\n}",
		},
		{
			name: "empty root",
			node: obj(),
			opts: []EncodeOption{EncodePretty(true)},
			want: "{}",
		},
		{
			name: "indent",
			node: ints(1),
			opts: []EncodeOption{EncodePretty(true), EncodeIndent(2)},
			want: "[\n  1\n]",
		},
		{
			name: "scalars",
			node: ir.FromSlice([]*ir.Node{ir.Null(), ir.FromBool(true), ir.FromBool(false), ir.FromInt(-12)}),
			want: `[null,true,false,-12]`,
		},
		{
			name: "floats",
			node: ir.FromSlice([]*ir.Node{
				ir.FromFloat(1.5), ir.FromFloat(100), ir.FromFloat(0), ir.FromFloat(1e21),
				ir.FromFloat(1e-7), ir.FromFloat(0.1), ir.FromFloat(-2.25e-10),
			}),
			want: `[1.5,100,0,1e+21,1e-7,0.1,-2.25e-10]`,
		},
		{
			name: "escapes",
			node: ir.FromString("a\"b\\\n\t\x01é"),
			want: `"a\"b\\\n\t\u0001é"`,
		},
		{
			name: "duplicate keys",
			node: obj("k", ir.FromInt(1), "k", ir.FromInt(2)),
			want: `{"k":1,"k":2}`,
		},
		{
			name: "natural sort",
			node: obj("a10", ir.Null(), "a2", ir.Null(), "B", ir.Null(), "a1", ir.Null(), "a", ir.Null(), "A", ir.Null()),
			opts: []EncodeOption{EncodeSorted(true)},
			want: `{"A":null,"a":null,"a1":null,"a2":null,"a10":null,"B":null}`,
		},
		{
			name: "snake",
			node: obj("myURLProperty", ir.FromInt(1), "inner", obj("someKey", ir.FromInt(2))),
			opts: []EncodeOption{EncodeKeys(strategy.KeySnakeCase)},
			want: `{"my_url_property":1,"inner":{"some_key":2}}`,
		},
		{
			name: "snake then sort",
			node: obj("zKey", ir.FromInt(1), "aKey", ir.FromInt(2), "_b", ir.FromInt(3)),
			opts: []EncodeOption{EncodeKeys(strategy.KeySnakeCase), EncodeSorted(true)},
			want: `{"_b":3,"a_key":2,"z_key":1}`,
		},
		{
			name: "custom keys",
			node: obj("a", ir.FromSlice([]*ir.Node{obj("b", ir.Null())})),
			opts: []EncodeOption{EncodeKeys(strategy.KeyCustom(func(p container.Path) (string, error) {
				return p.String(), nil
			}))},
			want: `{"a":[{"a[0].b":null}]}`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Bytes(tc.node, tc.opts...)
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != tc.want {
				t.Errorf("got\n%s\nwant\n%s", got, tc.want)
			}
		})
	}
}

func TestEncodeDates(t *testing.T) {
	when := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	node := obj("t", ir.FromDate(when))
	tests := []struct {
		date strategy.Date
		want string
	}{
		{strategy.DateDeferred, `{"t":"2020-01-02T03:04:05Z"}`},
		{strategy.DateSecondsSinceEpoch, `{"t":1577934245}`},
		{strategy.DateMillisecondsSinceEpoch, `{"t":1577934245000}`},
		{strategy.DateISO8601, `{"t":"2020-01-02T03:04:05Z"}`},
		{strategy.DateFormatted("Jan 2 2006"), `{"t":"Jan 2 2020"}`},
		{
			strategy.DateCustom(func(t time.Time, e *container.Encoder) error {
				k, err := e.KeyedContainer()
				if err != nil {
					return err
				}
				if err := k.EncodeInt("year", int64(t.Year())); err != nil {
					return err
				}
				return k.EncodeDate("again", t)
			}),
			`{"t":{"year":2020,"again":"2020-01-02T03:04:05Z"}}`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.date.String(), func(t *testing.T) {
			got, err := Bytes(node, EncodeDates(tc.date))
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != tc.want {
				t.Errorf("got %s want %s", got, tc.want)
			}
		})
	}
}

func TestEncodeData(t *testing.T) {
	node := obj("d", ir.FromData([]byte(`{"x":1}`)))
	tests := []struct {
		data strategy.Data
		want string
	}{
		{strategy.DataBase64, `{"d":"eyJ4IjoxfQ=="}`},
		{strategy.DataRaw, `{"d":{"x":1}}`},
		{strategy.DataDeferred, `{"d":[123,34,120,34,58,49,125]}`},
		{
			strategy.DataCustom(func(b []byte, e *container.Encoder) error {
				s, err := e.SingleValueContainer()
				if err != nil {
					return err
				}
				return s.EncodeInt(int64(len(b)))
			}),
			`{"d":7}`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.data.String(), func(t *testing.T) {
			got, err := Bytes(node, EncodeData(tc.data))
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != tc.want {
				t.Errorf("got %s want %s", got, tc.want)
			}
		})
	}
}

func TestTextEncoding(t *testing.T) {
	node := ir.FromData([]byte{0xff, 0xfe})
	_, err := Bytes(node, EncodeData(strategy.DataRaw))
	if !errors.Is(err, ErrTextEncoding) {
		t.Fatalf("got %v, want %v", err, ErrTextEncoding)
	}
	buf := bytes.NewBufferString("keep")
	if err := Encode(node, buf, EncodeData(strategy.DataRaw)); err == nil {
		t.Fatal("expected error")
	}
	if buf.String() != "keep" {
		t.Errorf("output written on failure: %q", buf.String())
	}
	got, err := Bytes(node, EncodeData(strategy.DataRaw), EncodeBinarySafe(true))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte{0xff, 0xfe}) {
		t.Errorf("got %x", got)
	}
}

func TestEncodeErrors(t *testing.T) {
	node := obj("list", ir.FromSlice([]*ir.Node{ir.FromFloat(1), ir.FromFloat(math.NaN())}))
	_, err := Bytes(node)
	if !errors.Is(err, container.ErrInvalidValue) {
		t.Fatalf("got %v, want %v", err, container.ErrInvalidValue)
	}
	var encErr *container.EncodingError
	if !errors.As(err, &encErr) {
		t.Fatalf("got %T", err)
	}
	if got := encErr.Path.String(); got != "list[1]" {
		t.Errorf("path: got %q", got)
	}

	_, err = Bytes(ir.FromFloat(math.Inf(-1)))
	if !errors.Is(err, container.ErrInvalidValue) {
		t.Errorf("got %v, want %v", err, container.ErrInvalidValue)
	}

	_, err = Bytes(obj("k", ir.Null()), EncodeKeys(strategy.KeyCustom(nil)))
	if !errors.Is(err, strategy.ErrUnsupportedStrategy) {
		t.Errorf("got %v, want %v", err, strategy.ErrUnsupportedStrategy)
	}

	boom := errors.New("boom")
	_, err = Bytes(obj("k", ir.FromDate(time.Now())), EncodeDates(strategy.DateCustom(
		func(time.Time, *container.Encoder) error { return boom })))
	if !errors.Is(err, boom) || !errors.As(err, &encErr) || encErr.Path.String() != "k" {
		t.Errorf("got %v", err)
	}

	// strategies are only checked when used
	if _, err := Bytes(ints(1), EncodeDates(strategy.DateCustom(nil))); err != nil {
		t.Errorf("got %v", err)
	}
}

func TestColors(t *testing.T) {
	saved := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = saved }()

	node := obj("a", ir.FromString("100%"))
	got := MustString(node, EncodeColors(NewColors()))
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("no escapes in %q", got)
	}
	if !strings.Contains(got, `"100%"`) {
		t.Errorf("value mangled in %q", got)
	}
	plain := MustString(node, EncodeColors(NewColors()), EncodeColors(nil))
	if plain != `{"a":"100%"}` {
		t.Errorf("got %q", plain)
	}
}

func TestFlagsFromOpts(t *testing.T) {
	f := FlagsFromOpts(EncodeFlags(format.PrettyPrinted|format.SortedKeys), EncodePretty(false))
	if f != format.SortedKeys {
		t.Errorf("got %s", f)
	}
}

func TestMustStringPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustString(ir.FromFloat(math.NaN()))
}
