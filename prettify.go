package pretty

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file in the repository root.
*/

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
)

// Prettifier is implemented by values which know how to describe their own
// layout. Prettify gives a Prettifier precedence over the built-in rules.
type Prettifier interface {
	Pretty() Doc
}

// Prettify maps an arbitrary Go value to a document. Basic types become
// literal text; slices and arrays become bracketed lists; maps become
// braced key/value lists with keys in sorted order; structs become
// name/field lists. Pointers are followed, nil pointers print as <nil>.
//
// The resulting document breaks at the list level: a value whose flattened
// form fits the page renders on one line, everything else gets one element
// per line, aligned under the opening delimiter.
func Prettify(v any) Doc {
	if v == nil {
		return Text("<nil>")
	}
	if p, ok := v.(Prettifier); ok {
		return p.Pretty()
	}
	switch x := v.(type) {
	case Doc:
		return x
	case bool:
		return Text(strconv.FormatBool(x))
	case string:
		return Text(strconv.Quote(x))
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return Text(fmt.Sprintf("%d", x))
	case float32:
		return Text(strconv.FormatFloat(float64(x), 'g', -1, 32))
	case float64:
		return Text(strconv.FormatFloat(x, 'g', -1, 64))
	case error:
		return Text(strconv.Quote(x.Error()))
	case fmt.Stringer:
		return Text(x.String())
	}
	return prettifyValue(reflect.ValueOf(v))
}

func prettifyValue(rv reflect.Value) Doc {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Text("<nil>")
		}
		return Prettify(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		elems := make([]Doc, rv.Len())
		for i := range elems {
			elems[i] = Prettify(rv.Index(i).Interface())
		}
		return List(elems...)
	case reflect.Map:
		keys := rv.MapKeys()
		type entry struct {
			key string
			doc Doc
		}
		entries := make([]entry, len(keys))
		for i, k := range keys {
			entries[i] = entry{
				key: fmt.Sprintf("%v", k.Interface()),
				doc: Prettify(rv.MapIndex(k).Interface()),
			}
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })
		docs := make([]Doc, len(entries))
		for i, e := range entries {
			docs[i] = Concat(Text(e.key), Concat(Text(": "), e.doc))
		}
		return EncloseSep(Char('{'), Char('}'), Comma(), docs...)
	case reflect.Struct:
		rt := rv.Type()
		var fields []Doc
		for i := 0; i < rt.NumField(); i++ {
			if !rt.Field(i).IsExported() {
				continue
			}
			fields = append(fields, Concat(
				Text(rt.Field(i).Name),
				Concat(Text(": "), Prettify(rv.Field(i).Interface())),
			))
		}
		return Concat(Text(rt.Name()), EncloseSep(Char('{'), Char('}'), Comma(), fields...))
	default:
		return Text(fmt.Sprintf("%v", rv.Interface()))
	}
}
