package jvalue

import (
	"strings"

	"github.com/oarkflow/jvalue/unmarshaler"
)

// Emit writes v through w one token at a time, so w's format applies to the
// whole subtree. Scalars are copied as they appear in the source. It returns
// the first structural fault met inside v, or the writer's error.
func (v Value) Emit(w *Writer) error {
	switch v.Kind() {
	case KindNull:
		w.WriteNull()
	case KindBoolean:
		w.WriteBool(v.isTrue())
	case KindNumber, KindString:
		w.WriteValue(v)
	case KindArray:
		w.WriteStartArray()
		it := v.Elements()
		for it.Next() {
			if err := it.Value().Emit(w); err != nil {
				return err
			}
		}
		if err := it.Err(); err != nil {
			return err
		}
		w.WriteEndArray()
	case KindObject:
		w.WriteStartObject()
		it := v.Members()
		for it.Next() {
			w.WritePropertyName(it.cur.Name())
			if err := it.Value().Emit(w); err != nil {
				return err
			}
		}
		if err := it.Err(); err != nil {
			return err
		}
		w.WriteEndObject()
	}
	return w.Err()
}

// Serialize renders v in the given format.
func Serialize(v Value, f Format) (string, error) {
	var sb strings.Builder
	sb.Grow(v.n)
	if err := v.SerializeTo(&sb, f); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (v Value) SerializeTo(out Output, f Format) error {
	w := NewWriter(out)
	w.SetFormat(f)
	return v.Emit(w)
}

// MarshalJSON renders v compactly. A structural fault inside v is returned
// as the error.
func (v Value) MarshalJSON() ([]byte, error) {
	s, err := Serialize(v, Compact)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalJSON keeps a private copy of data as the backing text.
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Decode binds v to dst with the configured unmarshaler.
func (v Value) Decode(dst any) error {
	return unmarshaler.Instance()([]byte(v.Raw()), dst)
}
