package jvalue

import (
	"strings"
	"unicode/utf8"

	"github.com/oarkflow/jvalue/number"
	"github.com/oarkflow/jvalue/scanner"
)

// Member returns the value of the first member named key, or Null when v is
// not an object or has no such member. Keys compare after unescaping.
func (v Value) Member(key string) (Value, error) {
	if v.Kind() != KindObject {
		return Null, nil
	}
	it := v.Members()
	for it.Next() {
		if keyEquals(it.Key().interior(), key) {
			return it.Value(), nil
		}
	}
	return Null, it.Err()
}

// Get is Member without the error: a fault reads as a missing member.
func (v Value) Get(key string) Value {
	m, err := v.Member(key)
	if err != nil {
		return Null
	}
	return m
}

// Has reports whether v is an object with a member named key.
func (v Value) Has(key string) bool {
	if v.Kind() != KindObject {
		return false
	}
	it := v.Members()
	for it.Next() {
		if keyEquals(it.Key().interior(), key) {
			return true
		}
	}
	return false
}

func keyEquals(raw, key string) bool {
	if strings.IndexByte(raw, '\\') < 0 {
		return raw == key
	}
	i, j := 0, 0
	for i < len(raw) {
		if j >= len(key) {
			return false
		}
		var r rune
		r, i = decodeRune(raw, i)
		k, size := utf8.DecodeRuneInString(key[j:])
		if r != k {
			return false
		}
		j += size
	}
	return j == len(key)
}

// Count returns the number of elements of an array or members of an object
// without materializing them. Other kinds count as zero.
func (v Value) Count() (int, error) {
	if !v.Kind().IsContainer() {
		return 0, nil
	}
	text, end := v.text, v.end()-1
	commas, seen := 0, false
	for i := v.start + 1; i < end; i++ {
		switch text[i] {
		case ' ', '\t', '\r', '\n':
			continue
		case ',':
			commas++
		case '"':
			next, err := scanner.SkipString(text, i, end)
			if err != nil {
				return 0, err
			}
			i = next - 1
		case '[', '{':
			next, err := scanner.SkipBracket(text, i, end)
			if err != nil {
				return 0, err
			}
			i = next - 1
		case ']', '}':
			return 0, scanner.NewError(ErrExpectedComma, text, i, 1)
		}
		seen = true
	}
	if !seen {
		return 0, nil
	}
	return commas + 1, nil
}

// Size is Count without the error; a fault counts as zero.
func (v Value) Size() int {
	n, err := v.Count()
	if err != nil {
		return 0
	}
	return n
}

// Index returns the i-th element of an array. A negative i counts from the
// end, so -1 is the last element. Null is returned when v is not an array or
// i is out of range.
func (v Value) Index(i int) (Value, error) {
	if v.Kind() != KindArray {
		return Null, nil
	}
	if i < 0 {
		n, err := v.Count()
		if err != nil {
			return Null, err
		}
		i += n
		if i < 0 {
			return Null, nil
		}
	}
	it := v.Elements()
	for it.Next() {
		if i == 0 {
			return it.Value(), nil
		}
		i--
	}
	return Null, it.Err()
}

// At is Index without the error.
func (v Value) At(i int) Value {
	e, err := v.Index(i)
	if err != nil {
		return Null
	}
	return e
}

// Lookup follows path from v. Each segment selects an object member by name
// or, on an array, an element by decimal index (negative counts from the
// end). A missing step yields Null.
func (v Value) Lookup(path ...string) (Value, error) {
	cur := v
	for _, seg := range path {
		var err error
		switch cur.Kind() {
		case KindObject:
			cur, err = cur.Member(seg)
		case KindArray:
			i, ok := number.Int64(seg)
			if !ok {
				return Null, nil
			}
			cur, err = cur.Index(int(i))
		default:
			return Null, nil
		}
		if err != nil {
			return Null, err
		}
	}
	return cur, nil
}

// Validate walks the whole value and returns the first fault against the
// strict JSON grammar: structural faults, number tokens that only use the
// number alphabet without forming a number, and strings holding raw control
// characters or malformed escapes. Once it returns nil the lenient accessors and Equal, Compare and
// Hash cannot run into a fault on v.
func (v Value) Validate() error {
	switch v.Kind() {
	case KindArray:
		it := v.Elements()
		for it.Next() {
			if err := it.Value().Validate(); err != nil {
				return err
			}
		}
		return it.Err()
	case KindObject:
		it := v.Members()
		for it.Next() {
			if err := it.Key().Validate(); err != nil {
				return err
			}
			if err := it.Value().Validate(); err != nil {
				return err
			}
		}
		return it.Err()
	case KindString:
		end, err := scanner.SkipString(v.text, v.start, v.end())
		if err != nil {
			return err
		}
		// an escaped closing quote leaves the scan short of the span
		if end != v.end() {
			return scanner.NewError(ErrStringNotClosed, v.text, v.start, v.n)
		}
		return scanner.CheckString(v.text, v.start, end)
	case KindNumber:
		if !number.Valid(v.numberText()) {
			return scanner.NewError(ErrIllegalNumber, v.text, v.start, v.n)
		}
	}
	return nil
}

// Slice collects the elements of an array.
func (v Value) Slice() ([]Value, error) {
	if v.Kind() != KindArray {
		return nil, nil
	}
	n, err := v.Count()
	if err != nil {
		return nil, err
	}
	out := make([]Value, 0, n)
	it := v.Elements()
	for it.Next() {
		out = append(out, it.Value())
	}
	return out, it.Err()
}

// Map collects the members of an object by unescaped name. With duplicate
// keys the last one wins.
func (v Value) Map() (map[string]Value, error) {
	if v.Kind() != KindObject {
		return nil, nil
	}
	n, err := v.Count()
	if err != nil {
		return nil, err
	}
	out := make(map[string]Value, n)
	it := v.Members()
	for it.Next() {
		out[it.cur.Name()] = it.Value()
	}
	return out, it.Err()
}

// Keys returns the unescaped member names of an object in document order.
func (v Value) Keys() ([]string, error) {
	var keys []string
	it := v.Members()
	for it.Next() {
		keys = append(keys, it.cur.Name())
	}
	return keys, it.Err()
}
