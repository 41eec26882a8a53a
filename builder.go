package jvalue

import (
	"maps"
	"slices"
)

// ArrayBuilder appends elements to an array opened on a Writer. Nested
// containers are built inside callbacks and closed when the callback
// returns, so children always close before their parent. Using the parent
// inside a child's callback records ErrBuilderBusy on the writer. Close must
// be called exactly once; writing after that records ErrBuilderClosed.
//
//	b := jvalue.NewArrayBuilder()
//	b.Int(1).String("two").Object(func(o *jvalue.ObjectBuilder) {
//		o.Bool("ok", true)
//	})
//	v, err := b.Build() // [1,"two",{"ok":true}]
type ArrayBuilder struct {
	w      *Writer
	closed bool
	busy   bool
}

// BeginArray writes '[' and returns a builder for the elements.
func (w *Writer) BeginArray() *ArrayBuilder {
	w.WriteStartArray()
	return &ArrayBuilder{w: w}
}

// NewArrayBuilder starts an array on a fresh buffer; finish it with Build.
func NewArrayBuilder() *ArrayBuilder {
	return NewBufferWriter().BeginArray()
}

func (b *ArrayBuilder) Writer() *Writer {
	return b.w
}

func (b *ArrayBuilder) usable() bool {
	return usable(b.w, b.closed, b.busy)
}

func (b *ArrayBuilder) Null() *ArrayBuilder {
	if b.usable() {
		b.w.WriteNull()
	}
	return b
}

func (b *ArrayBuilder) Bool(v bool) *ArrayBuilder {
	if b.usable() {
		b.w.WriteBool(v)
	}
	return b
}

func (b *ArrayBuilder) Int(v int) *ArrayBuilder {
	if b.usable() {
		b.w.WriteInt(v)
	}
	return b
}

func (b *ArrayBuilder) Int64(v int64) *ArrayBuilder {
	if b.usable() {
		b.w.WriteInt64(v)
	}
	return b
}

func (b *ArrayBuilder) Uint64(v uint64) *ArrayBuilder {
	if b.usable() {
		b.w.WriteUint64(v)
	}
	return b
}

func (b *ArrayBuilder) Float64(v float64) *ArrayBuilder {
	if b.usable() {
		b.w.WriteFloat64(v)
	}
	return b
}

func (b *ArrayBuilder) String(v string) *ArrayBuilder {
	if b.usable() {
		b.w.WriteString(v)
	}
	return b
}

// Value appends v through the writer's format.
func (b *ArrayBuilder) Value(v Value) *ArrayBuilder {
	if b.usable() {
		b.w.writeNested(v)
	}
	return b
}

func (b *ArrayBuilder) Any(v any) *ArrayBuilder {
	if b.usable() {
		b.w.WriteAny(v)
	}
	return b
}

func (b *ArrayBuilder) Expr(src string, env map[string]any) *ArrayBuilder {
	if b.usable() {
		b.w.WriteExpr(src, env)
	}
	return b
}

// Array appends a nested array filled by fn.
func (b *ArrayBuilder) Array(fn func(*ArrayBuilder)) *ArrayBuilder {
	if b.usable() {
		buildArray(b.w, &b.busy, fn)
	}
	return b
}

// Object appends a nested object filled by fn.
func (b *ArrayBuilder) Object(fn func(*ObjectBuilder)) *ArrayBuilder {
	if b.usable() {
		buildObject(b.w, &b.busy, fn)
	}
	return b
}

// Close writes ']'. A second call returns ErrBuilderClosed, and a call from
// inside a child's callback returns ErrBuilderBusy.
func (b *ArrayBuilder) Close() error {
	if b.closed {
		return ErrBuilderClosed
	}
	if b.busy {
		b.w.fail(ErrBuilderBusy)
		return ErrBuilderBusy
	}
	b.closed = true
	b.w.WriteEndArray()
	return b.w.Err()
}

// Build closes the builder if needed and parses the written text.
func (b *ArrayBuilder) Build() (Value, error) {
	if !b.closed {
		if err := b.Close(); err != nil {
			return Null, err
		}
	}
	return b.w.BuildValue()
}

// AppendEach appends one element per item using fn.
func AppendEach[T any](b *ArrayBuilder, items []T, fn func(*ArrayBuilder, T)) *ArrayBuilder {
	for _, item := range items {
		fn(b, item)
	}
	return b
}

// ObjectBuilder adds members to an object opened on a Writer. It follows the
// same rules as ArrayBuilder.
type ObjectBuilder struct {
	w      *Writer
	closed bool
	busy   bool
}

// BeginObject writes '{' and returns a builder for the members.
func (w *Writer) BeginObject() *ObjectBuilder {
	w.WriteStartObject()
	return &ObjectBuilder{w: w}
}

// NewObjectBuilder starts an object on a fresh buffer; finish it with Build.
func NewObjectBuilder() *ObjectBuilder {
	return NewBufferWriter().BeginObject()
}

func (b *ObjectBuilder) Writer() *Writer {
	return b.w
}

func (b *ObjectBuilder) key(name string) bool {
	if !usable(b.w, b.closed, b.busy) {
		return false
	}
	b.w.WritePropertyName(name)
	return true
}

func (b *ObjectBuilder) Null(key string) *ObjectBuilder {
	if b.key(key) {
		b.w.WriteNull()
	}
	return b
}

func (b *ObjectBuilder) Bool(key string, v bool) *ObjectBuilder {
	if b.key(key) {
		b.w.WriteBool(v)
	}
	return b
}

func (b *ObjectBuilder) Int(key string, v int) *ObjectBuilder {
	if b.key(key) {
		b.w.WriteInt(v)
	}
	return b
}

func (b *ObjectBuilder) Int64(key string, v int64) *ObjectBuilder {
	if b.key(key) {
		b.w.WriteInt64(v)
	}
	return b
}

func (b *ObjectBuilder) Uint64(key string, v uint64) *ObjectBuilder {
	if b.key(key) {
		b.w.WriteUint64(v)
	}
	return b
}

func (b *ObjectBuilder) Float64(key string, v float64) *ObjectBuilder {
	if b.key(key) {
		b.w.WriteFloat64(v)
	}
	return b
}

func (b *ObjectBuilder) String(key, v string) *ObjectBuilder {
	if b.key(key) {
		b.w.WriteString(v)
	}
	return b
}

func (b *ObjectBuilder) Value(key string, v Value) *ObjectBuilder {
	if b.key(key) {
		b.w.writeNested(v)
	}
	return b
}

func (b *ObjectBuilder) Any(key string, v any) *ObjectBuilder {
	if b.key(key) {
		b.w.WriteAny(v)
	}
	return b
}

func (b *ObjectBuilder) Expr(key, src string, env map[string]any) *ObjectBuilder {
	if b.key(key) {
		b.w.WriteExpr(src, env)
	}
	return b
}

func (b *ObjectBuilder) Array(key string, fn func(*ArrayBuilder)) *ObjectBuilder {
	if b.key(key) {
		buildArray(b.w, &b.busy, fn)
	}
	return b
}

func (b *ObjectBuilder) Object(key string, fn func(*ObjectBuilder)) *ObjectBuilder {
	if b.key(key) {
		buildObject(b.w, &b.busy, fn)
	}
	return b
}

// Close writes '}'. It fails like ArrayBuilder.Close.
func (b *ObjectBuilder) Close() error {
	if b.closed {
		return ErrBuilderClosed
	}
	if b.busy {
		b.w.fail(ErrBuilderBusy)
		return ErrBuilderBusy
	}
	b.closed = true
	b.w.WriteEndObject()
	return b.w.Err()
}

func (b *ObjectBuilder) Build() (Value, error) {
	if !b.closed {
		if err := b.Close(); err != nil {
			return Null, err
		}
	}
	return b.w.BuildValue()
}

// PutEach adds one member per map entry using fn, in sorted key order.
func PutEach[V any](b *ObjectBuilder, m map[string]V, fn func(b *ObjectBuilder, key string, v V)) *ObjectBuilder {
	for _, k := range slices.Sorted(maps.Keys(m)) {
		fn(b, k, m[k])
	}
	return b
}

func usable(w *Writer, closed, busy bool) bool {
	switch {
	case closed:
		w.fail(ErrBuilderClosed)
	case busy:
		w.fail(ErrBuilderBusy)
	default:
		return true
	}
	return false
}

// buildArray runs fn on a child array while the parent is marked busy.
func buildArray(w *Writer, busy *bool, fn func(*ArrayBuilder)) {
	child := w.BeginArray()
	*busy = true
	if fn != nil {
		fn(child)
	}
	*busy = false
	if !child.closed {
		_ = child.Close()
	}
}

func buildObject(w *Writer, busy *bool, fn func(*ObjectBuilder)) {
	child := w.BeginObject()
	*busy = true
	if fn != nil {
		fn(child)
	}
	*busy = false
	if !child.closed {
		_ = child.Close()
	}
}
