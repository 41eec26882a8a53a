package jvalue

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/oarkflow/jvalue/scanner"
)

var (
	ErrBuilderClosed = errors.New("builder already closed")
	ErrBuilderBusy   = errors.New("builder used while a nested builder is open")
	ErrNotBuffered   = errors.New("writer output does not retain its text")
)

// Output is what a Writer emits into. *bytes.Buffer, *strings.Builder and
// *bufio.Writer all satisfy it.
type Output interface {
	io.Writer
	io.ByteWriter
	io.StringWriter
}

// Writer emits JSON tokens one at a time. It tracks only whether the next
// token needs a separator, so well-formedness is up to the caller: every
// start must be matched by an end and object members must be introduced with
// WritePropertyName.
//
// The first error returned by the output is kept and every later write is a
// no-op; check it with Err. A Writer is not safe for concurrent use.
type Writer struct {
	out       Output
	format    Format
	layout    layout
	depth     int
	needComma bool
	// a container was just opened and nothing has been written into it
	pending bool
	err     error
	scratch []byte
}

func NewWriter(out Output) *Writer {
	return &Writer{out: out}
}

// NewBufferWriter returns a Writer over a fresh buffer, ready for BuildValue.
func NewBufferWriter() *Writer {
	return NewWriter(new(bytes.Buffer))
}

func (w *Writer) SetFormat(f Format) {
	w.format = f
	w.layout = f.layout()
}

func (w *Writer) Format() Format {
	return w.format
}

// Err returns the first error met while writing.
func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) fail(err error) {
	if w.err == nil {
		w.err = err
	}
}

// BuildValue parses everything written so far. The output must be one that
// keeps its text, such as *bytes.Buffer or *strings.Builder.
func (w *Writer) BuildValue() (Value, error) {
	if w.err != nil {
		return Null, w.err
	}
	s, ok := w.out.(fmt.Stringer)
	if !ok {
		return Null, ErrNotBuffered
	}
	return Parse(s.String())
}

func (w *Writer) putByte(c byte) {
	if w.err == nil {
		w.fail(w.out.WriteByte(c))
	}
}

func (w *Writer) putString(s string) {
	if w.err == nil {
		_, err := w.out.WriteString(s)
		w.fail(err)
	}
}

func (w *Writer) put(b []byte) {
	if w.err == nil {
		_, err := w.out.Write(b)
		w.fail(err)
	}
}

func (w *Writer) newline() {
	if !w.layout.newlines {
		return
	}
	w.putByte('\n')
	if w.layout.indent != "" {
		for i := 0; i < w.depth; i++ {
			w.putString(w.layout.indent)
		}
	}
}

// prefix writes whatever has to come before the next token.
func (w *Writer) prefix() {
	switch {
	case w.needComma:
		w.putByte(',')
		w.newline()
		w.needComma = false
	case w.pending:
		w.newline()
	}
	w.pending = false
}

func (w *Writer) open(c byte) {
	w.prefix()
	w.putByte(c)
	w.depth++
	w.pending = true
}

func (w *Writer) close(c byte) {
	if w.depth > 0 {
		w.depth--
	}
	if w.pending {
		w.pending = false
	} else {
		w.newline()
	}
	w.putByte(c)
	w.needComma = true
}

func (w *Writer) WriteStartArray() {
	w.open('[')
}

func (w *Writer) WriteEndArray() {
	w.close(']')
}

func (w *Writer) WriteStartObject() {
	w.open('{')
}

func (w *Writer) WriteEndObject() {
	w.close('}')
}

// WritePropertyName writes an object key and its colon. The member value
// must follow.
func (w *Writer) WritePropertyName(name string) {
	w.prefix()
	w.scratch = appendQuoted(w.scratch[:0], name)
	w.put(w.scratch)
	w.putByte(':')
	if w.layout.colonSpace {
		w.putByte(' ')
	}
}

func (w *Writer) WriteNull() {
	w.prefix()
	w.putString(scanner.NullLiteral)
	w.needComma = true
}

func (w *Writer) WriteBool(b bool) {
	w.prefix()
	if b {
		w.putString(scanner.TrueLiteral)
	} else {
		w.putString(scanner.FalseLiteral)
	}
	w.needComma = true
}

func (w *Writer) WriteInt(i int) {
	w.WriteInt64(int64(i))
}

func (w *Writer) WriteInt64(i int64) {
	w.prefix()
	w.scratch = strconv.AppendInt(w.scratch[:0], i, 10)
	w.put(w.scratch)
	w.needComma = true
}

func (w *Writer) WriteUint64(u uint64) {
	w.prefix()
	w.scratch = strconv.AppendUint(w.scratch[:0], u, 10)
	w.put(w.scratch)
	w.needComma = true
}

// WriteFloat64 writes null for NaN and the infinities.
func (w *Writer) WriteFloat64(f float64) {
	w.writeFloat(f, 64)
}

func (w *Writer) WriteFloat32(f float32) {
	w.writeFloat(float64(f), 32)
}

func (w *Writer) writeFloat(f float64, bits int) {
	w.prefix()
	var ok bool
	w.scratch, ok = appendFloat(w.scratch[:0], f, bits)
	if ok {
		w.put(w.scratch)
	} else {
		w.putString(scanner.NullLiteral)
	}
	w.needComma = true
}

func (w *Writer) WriteString(s string) {
	w.prefix()
	w.scratch = appendQuoted(w.scratch[:0], s)
	w.put(w.scratch)
	w.needComma = true
}

// WriteValue copies v's text verbatim, ignoring the format.
func (w *Writer) WriteValue(v Value) {
	w.prefix()
	w.putString(v.Raw())
	w.needComma = true
}
