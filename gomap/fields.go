package gomap

import (
	"reflect"
	"sync"
)

type structField struct {
	name      string
	index     []int
	omitEmpty bool
}

type fieldsKey struct {
	typ reflect.Type
	tag string
}

var fieldCache sync.Map // fieldsKey -> []structField

// structFields returns the encoded fields of t in declaration order, with
// the fields of embedded structs promoted in place.
func structFields(t reflect.Type, tag string) []structField {
	key := fieldsKey{typ: t, tag: tag}
	if fs, ok := fieldCache.Load(key); ok {
		return fs.([]structField)
	}
	fs := collectFields(t, tag, nil, map[reflect.Type]bool{})
	fs = dominantFields(fs)
	res, _ := fieldCache.LoadOrStore(key, fs)
	return res.([]structField)
}

func collectFields(t reflect.Type, tag string, index []int, seen map[reflect.Type]bool) []structField {
	if seen[t] {
		return nil
	}
	seen[t] = true
	defer delete(seen, t)

	var res []structField
	for i := range t.NumField() {
		f := t.Field(i)
		ft := parseTag(f.Tag.Get(tag))
		if ft.skip {
			continue
		}
		idx := make([]int, len(index)+1)
		copy(idx, index)
		idx[len(index)] = i

		if f.Anonymous && ft.name == "" {
			et := f.Type
			if et.Kind() == reflect.Pointer {
				et = et.Elem()
			}
			if et.Kind() == reflect.Struct {
				res = append(res, collectFields(et, tag, idx, seen)...)
				continue
			}
		}
		if !f.IsExported() {
			continue
		}
		name := ft.name
		if name == "" {
			name = f.Name
		}
		res = append(res, structField{name: name, index: idx, omitEmpty: ft.omitEmpty})
	}
	return res
}

// dominantFields drops fields hidden by a shallower field of the same
// name. Among fields at the same depth the first declared wins.
func dominantFields(fs []structField) []structField {
	best := map[string]int{}
	for i, f := range fs {
		j, ok := best[f.name]
		if !ok || len(f.index) < len(fs[j].index) {
			best[f.name] = i
		}
	}
	res := make([]structField, 0, len(best))
	for i, f := range fs {
		if best[f.name] == i {
			res = append(res, f)
		}
	}
	return res
}

func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Interface, reflect.Pointer:
		return v.IsZero()
	}
	return false
}
