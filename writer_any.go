package jvalue

import (
	"sort"

	"github.com/goccy/go-json"
	"github.com/goccy/go-reflect"
	"github.com/oarkflow/expr"

	"github.com/oarkflow/jvalue/marshaler"
)

// WriteAny writes an arbitrary Go value. Scalars, slices, arrays, pointers
// and maps with string keys are walked directly so the writer's format
// applies to them; map keys are written in sorted order. Anything else,
// including every type that implements json.Marshaler, goes through the
// configured marshaler and is copied verbatim.
//
// A marshaler failure is kept as the writer's error.
func (w *Writer) WriteAny(v any) {
	switch x := v.(type) {
	case nil:
		w.WriteNull()
	case Value:
		w.writeNested(x)
	case bool:
		w.WriteBool(x)
	case string:
		w.WriteString(x)
	case int:
		w.WriteInt(x)
	case int64:
		w.WriteInt64(x)
	case float64:
		w.WriteFloat64(x)
	case json.Number:
		w.writeRaw(string(x))
	default:
		w.writeReflect(reflect.ValueOf(v))
	}
}

func (w *Writer) writeNested(v Value) {
	if err := v.Emit(w); err != nil {
		w.fail(err)
	}
}

func (w *Writer) writeRaw(s string) {
	w.prefix()
	w.putString(s)
	w.needComma = true
}

func (w *Writer) writeMarshaled(v any) {
	b, err := marshaler.Instance()(v)
	if err != nil {
		w.fail(err)
		return
	}
	w.prefix()
	w.put(b)
	w.needComma = true
}

func (w *Writer) writeReflect(rv reflect.Value) {
	if !rv.IsValid() {
		w.WriteNull()
		return
	}
	kind := rv.Kind()
	if kind == reflect.Ptr || kind == reflect.Interface {
		if rv.IsNil() {
			w.WriteNull()
			return
		}
	}
	if rv.CanInterface() {
		switch x := rv.Interface().(type) {
		case Value:
			w.writeNested(x)
			return
		case json.Marshaler:
			w.writeMarshaled(x)
			return
		}
	}

	switch kind {
	case reflect.Ptr, reflect.Interface:
		w.writeReflect(rv.Elem())
	case reflect.Bool:
		w.WriteBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		w.WriteInt64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		w.WriteUint64(rv.Uint())
	case reflect.Float32:
		w.WriteFloat32(float32(rv.Float()))
	case reflect.Float64:
		w.WriteFloat64(rv.Float())
	case reflect.String:
		w.WriteString(rv.String())
	case reflect.Slice, reflect.Array:
		if kind == reflect.Slice && rv.IsNil() {
			w.WriteNull()
			return
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 && rv.CanInterface() {
			// byte slices are base64 text
			w.writeMarshaled(rv.Interface())
			return
		}
		w.WriteStartArray()
		for i := 0; i < rv.Len(); i++ {
			w.writeReflect(rv.Index(i))
		}
		w.WriteEndArray()
	case reflect.Map:
		if rv.IsNil() {
			w.WriteNull()
			return
		}
		if rv.Type().Key().Kind() != reflect.String {
			w.writeMarshaled(rv.Interface())
			return
		}
		keys := rv.MapKeys()
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
		w.WriteStartObject()
		for _, k := range keys {
			w.WritePropertyName(k.String())
			w.writeReflect(rv.MapIndex(k))
		}
		w.WriteEndObject()
	default:
		if !rv.CanInterface() {
			w.WriteNull()
			return
		}
		w.writeMarshaled(rv.Interface())
	}
}

// WriteExpr evaluates an expression against env and writes the result.
//
//	w.WriteExpr("price * qty", map[string]any{"price": 2.5, "qty": 4})
func (w *Writer) WriteExpr(src string, env map[string]any) {
	if env == nil {
		env = map[string]any{}
	}
	out, err := expr.Eval(src, env)
	if err != nil {
		w.fail(err)
		return
	}
	w.WriteAny(out)
}
