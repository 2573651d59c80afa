package encode

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/signadot/jsonenc/container"
	"github.com/signadot/jsonenc/debug"
	"github.com/signadot/jsonenc/format"
	"github.com/signadot/jsonenc/ir"
	"github.com/signadot/jsonenc/strategy"
	"github.com/signadot/jsonenc/token"

	"golang.org/x/text/cases"
)

const defaultIndent = 4

type EncState struct {
	depth, indent int

	flags      format.Flags
	dates      strategy.Date
	data       strategy.Data
	keys       strategy.Key
	binarySafe bool

	containerOpts []container.Option
	path          container.Path
	fold          *cases.Caser

	Color func(ir.Type, ColorAttr, string) string
}

func newEncState(opts ...EncodeOption) *EncState {
	es := &EncState{indent: defaultIndent}
	for _, opt := range opts {
		opt(es)
	}
	if es.indent < 0 {
		es.indent = 0
	}
	return es
}

// Encode renders node to w. Nothing is written to w if rendering fails.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	d, err := Bytes(node, opts...)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

// Bytes renders node and returns the result.
func Bytes(node *ir.Node, opts ...EncodeOption) ([]byte, error) {
	es := newEncState(opts...)
	if debug.Format() {
		debug.Logf("format: flags=%s dates=%s data=%s keys=%s\n", es.flags, es.dates, es.data, es.keys)
	}
	buf := bytes.NewBuffer(nil)
	if err := encode(node, buf, es); err != nil {
		return nil, err
	}
	d := buf.Bytes()
	if !es.binarySafe && !utf8.Valid(d) {
		return nil, ErrTextEncoding
	}
	return d, nil
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.ObjectType:
		return encodeObject(node, w, es)
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.StringType:
		return encodeString(node.String, w, es)
	case ir.IntType:
		return writeValue(w, es, ir.IntType, strconv.FormatInt(node.Int, 10))
	case ir.FloatType:
		if !finite(node.Float) {
			return es.errorf(container.ErrInvalidValue, "%v", node.Float)
		}
		return writeValue(w, es, ir.FloatType, string(appendFloat(nil, node.Float)))
	case ir.BoolType:
		return writeValue(w, es, ir.BoolType, strconv.FormatBool(node.Bool))
	case ir.NullType:
		return writeValue(w, es, ir.NullType, "null")
	case ir.DateType:
		return encodeDate(node, w, es)
	case ir.DataType:
		return encodeData(node, w, es)
	default:
		return es.errorf(ErrEncoding, "unknown node type %s", node.Type)
	}
}

func (es *EncState) errorf(err error, msg string, args ...any) error {
	return &container.EncodingError{
		Path:    es.path.Clone(),
		Message: fmt.Sprintf(msg, args...),
		Err:     err,
	}
}

func (es *EncState) wrap(err error) error {
	if _, ok := err.(*container.EncodingError); ok {
		return err
	}
	return &container.EncodingError{Path: es.path.Clone(), Err: err}
}

func encodeDate(node *ir.Node, w io.Writer, es *EncState) error {
	res, err := es.dates.Node(node.Time, es.containerOpts...)
	if err != nil {
		return es.wrap(err)
	}
	if res.Type == ir.StringType {
		return writeValue(w, es, ir.DateType, quote(res.String))
	}
	// dates produced by a custom function render in their default form
	sub := *es
	sub.dates = strategy.DateDeferred
	return encode(res, w, &sub)
}

func encodeData(node *ir.Node, w io.Writer, es *EncState) error {
	if es.data.IsRaw() {
		return writeRaw(w, es, node.Bytes)
	}
	res, err := es.data.Node(node.Bytes, es.containerOpts...)
	if err != nil {
		return es.wrap(err)
	}
	if res.Type == ir.StringType {
		return writeValue(w, es, ir.DataType, quote(res.String))
	}
	sub := *es
	sub.data = strategy.DataBase64
	return encode(res, w, &sub)
}

type objectField struct {
	key  sortKey
	path container.Path
	val  *ir.Node
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	fields := make([]objectField, len(node.Fields))
	sorted := es.flags.IsSorted()
	if sorted && es.fold == nil {
		fold := cases.Fold()
		es.fold = &fold
	}
	for i, yField := range node.Fields {
		path := es.path.Append(container.FieldKey(yField.String))
		key, err := es.keys.Apply(path)
		if err != nil {
			return wrapAt(path, err)
		}
		f := objectField{path: path, val: node.Values[i]}
		if sorted {
			f.key = newSortKey(*es.fold, key)
		} else {
			f.key.text = key
		}
		fields[i] = f
	}
	if sorted {
		slices.SortStableFunc(fields, func(a, b objectField) int {
			return compareKeys(a.key, b.key)
		})
	}
	if err := writeOpen(w, es, ir.ObjectType, "{", len(fields)); err != nil {
		return err
	}
	parent := es.path
	defer func() { es.path = parent }()
	for i := range fields {
		f := &fields[i]
		if err := writeElementPrefix(w, es, ir.ObjectType, i); err != nil {
			return err
		}
		if err := writeField(w, es, f.key.text); err != nil {
			return err
		}
		es.path = f.path
		if err := encode(f.val, w, es); err != nil {
			return err
		}
	}
	return writeClose(w, es, ir.ObjectType, "}", len(fields))
}

func wrapAt(path container.Path, err error) error {
	if _, ok := err.(*container.EncodingError); ok {
		return err
	}
	return &container.EncodingError{Path: path, Err: err}
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	n := len(node.Values)
	if err := writeOpen(w, es, ir.ArrayType, "[", n); err != nil {
		return err
	}
	parent := es.path
	defer func() { es.path = parent }()
	for i, yVal := range node.Values {
		if err := writeElementPrefix(w, es, ir.ArrayType, i); err != nil {
			return err
		}
		es.path = parent.Append(container.IndexKey(i))
		if err := encode(yVal, w, es); err != nil {
			return err
		}
	}
	return writeClose(w, es, ir.ArrayType, "]", n)
}

func encodeString(v string, w io.Writer, es *EncState) error {
	return writeValue(w, es, ir.StringType, quote(v))
}

func quote(v string) string {
	return token.Quote(v)
}

// Helper functions for writing

func writeOpen(w io.Writer, es *EncState, t ir.Type, open string, n int) error {
	if n == 0 {
		end := "}"
		if t == ir.ArrayType {
			end = "]"
		}
		return writeString(w, applyColor(es, t, SepColor, open+end))
	}
	es.depth++
	return writeString(w, applyColor(es, t, SepColor, open))
}

func writeClose(w io.Writer, es *EncState, t ir.Type, end string, n int) error {
	if n == 0 {
		return nil
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, applyColor(es, t, SepColor, end))
}

func writeElementPrefix(w io.Writer, es *EncState, t ir.Type, i int) error {
	if i > 0 {
		if err := writeString(w, applyColor(es, t, SepColor, ",")); err != nil {
			return err
		}
	}
	return writeNL(w, es)
}

func writeField(w io.Writer, es *EncState, key string) error {
	sep := ":"
	if es.flags.IsPretty() {
		sep = ": "
	}
	return writeString(w, applyColor(es, ir.ObjectType, FieldColor, quote(key))+
		applyColor(es, ir.ObjectType, SepColor, sep))
}

func writeNL(w io.Writer, es *EncState) error {
	if !es.flags.IsPretty() {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*es.depth))
}

func writeValue(w io.Writer, es *EncState, t ir.Type, v string) error {
	return writeString(w, applyColor(es, t, ValueColor, v))
}

func writeRaw(w io.Writer, es *EncState, d []byte) error {
	if es.Color != nil {
		return writeValue(w, es, ir.DataType, string(d))
	}
	_, err := w.Write(d)
	return err
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}
