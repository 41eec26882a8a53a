package jvalue

import (
	"errors"
	"io"

	"github.com/goccy/go-json"
	"github.com/goccy/go-reflect"

	"github.com/oarkflow/jvalue/decoder"
	"github.com/oarkflow/jvalue/encoder"
	"github.com/oarkflow/jvalue/marshaler"
	"github.com/oarkflow/jvalue/scanner"
	"github.com/oarkflow/jvalue/unmarshaler"
)

var ErrNotPointer = errors.New("dst is not pointer type")

func Marshal(data any) ([]byte, error) {
	return marshaler.Instance()(data)
}

func Unmarshal(data []byte, dst any) error {
	if reflect.ValueOf(dst).Kind() != reflect.Ptr {
		return ErrNotPointer
	}
	return unmarshaler.Instance()(data, dst)
}

func SetMarshaler(m marshaler.Marshaler) {
	marshaler.SetMarshaler(m)
}

func SetUnmarshaler(m unmarshaler.Unmarshaler) {
	unmarshaler.SetUnmarshaler(m)
}

func SetDecoder(factory decoder.Factory) {
	decoder.SetDecoder(factory)
}

func SetEncoder(factory encoder.Factory) {
	encoder.SetEncoder(factory)
}

// Encode streams v to w with the configured encoder. A Value is written
// compactly.
func Encode(w io.Writer, v any) error {
	return encoder.NewEncoder(w).Encode(v)
}

// Stream reads consecutive JSON values, such as newline delimited records,
// with the configured decoder. Each value gets its own backing text.
type Stream struct {
	dec decoder.IDecoder
}

func NewStream(r io.Reader) *Stream {
	return &Stream{dec: decoder.NewDecoder(r)}
}

// Next returns the next value, or io.EOF once the input is exhausted.
func (s *Stream) Next() (Value, error) {
	var raw json.RawMessage
	if err := s.dec.Decode(&raw); err != nil {
		return Null, err
	}
	return Parse(string(raw))
}

// ParseReader reads the first JSON value from r.
func ParseReader(r io.Reader) (Value, error) {
	return NewStream(r).Next()
}

// Valid reports whether s holds exactly one well formed JSON value.
func Valid(s string) bool {
	if scanner.SkipWhitespace(s, 0, len(s)) == len(s) {
		return false
	}
	v, err := Parse(s)
	if err != nil {
		return false
	}
	return v.Validate() == nil
}
