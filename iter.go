package jvalue

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/oarkflow/jvalue/scanner"
)

// Member is one key/value pair of an object. Key keeps its quotes.
type Member struct {
	Key   Value
	Value Value
}

// Name returns the unescaped key.
func (m Member) Name() string {
	return m.Key.ToString("")
}

// span is the shared cursor of the container iterators: the interior of the
// container and the offset of the next element.
type span struct {
	text  string
	first int
	end   int
	next  int
	err   error
}

func newSpan(v Value) span {
	s := span{text: v.text, first: v.start + 1, end: v.end() - 1}
	s.next = scanner.SkipWhitespace(s.text, s.first, s.end)
	return s
}

func (s *span) fail(err error, offset int) bool {
	length := 1
	if offset >= s.end {
		length = 0
	}
	s.err = scanner.NewError(err, s.text, offset, length)
	s.next = s.end
	return false
}

// value reads the token at s.next and moves past it.
func (s *span) value() (Value, bool) {
	i := s.next
	j, err := scanner.SkipValue(s.text, i, s.end)
	if err != nil {
		s.err = err
		s.next = s.end
		return Value{}, false
	}
	if j == i {
		return Value{}, s.fail(scanner.ErrExpectedValue, i)
	}
	kind, err := scanner.Classify(s.text, i, j-i)
	if err != nil {
		s.err = err
		s.next = s.end
		return Value{}, false
	}
	s.next = j
	return Value{text: s.text, start: i, n: j - i, kind: kind}, true
}

// separator consumes the whitespace and the single comma that follow an
// element. A comma must be followed by another element.
func (s *span) separator() bool {
	i := scanner.SkipWhitespace(s.text, s.next, s.end)
	if i >= s.end {
		s.next = s.end
		return true
	}
	if s.text[i] != ',' {
		return s.fail(scanner.ErrExpectedComma, i)
	}
	i = scanner.SkipWhitespace(s.text, i+1, s.end)
	if i >= s.end {
		return s.fail(scanner.ErrExpectedValue, i)
	}
	s.next = i
	return true
}

// ArrayIter walks the elements of an array in document order.
//
//	it := v.Elements()
//	for it.Next() {
//		use(it.Value())
//	}
//	if err := it.Err(); err != nil {
//		...
//	}
type ArrayIter struct {
	origin Value
	span
	cur Value
}

// Elements returns an iterator over v's elements. It yields nothing when v is
// not an array.
func (v Value) Elements() ArrayIter {
	it := ArrayIter{origin: v}
	it.Reset()
	return it
}

func (it *ArrayIter) Reset() {
	it.cur = Value{}
	if it.origin.Kind() != KindArray {
		it.span = span{}
		return
	}
	it.span = newSpan(it.origin)
}

func (it *ArrayIter) Next() bool {
	if it.next >= it.end {
		return false
	}
	v, ok := it.value()
	if !ok || !it.separator() {
		it.cur = Value{}
		return false
	}
	it.cur = v
	return true
}

func (it *ArrayIter) Value() Value {
	return it.cur
}

// Err returns the structural fault that stopped the iteration, if any.
func (it *ArrayIter) Err() error {
	return it.err
}

// ObjectIter walks the members of an object in document order. Duplicate
// keys are all yielded.
type ObjectIter struct {
	origin Value
	span
	cur Member
}

// Members returns an iterator over v's members. It yields nothing when v is
// not an object.
func (v Value) Members() ObjectIter {
	it := ObjectIter{origin: v}
	it.Reset()
	return it
}

func (it *ObjectIter) Reset() {
	it.cur = Member{}
	if it.origin.Kind() != KindObject {
		it.span = span{}
		return
	}
	it.span = newSpan(it.origin)
}

func (it *ObjectIter) Next() bool {
	if it.next >= it.end {
		return false
	}
	it.cur = Member{}

	k := it.next
	if it.text[k] != '"' {
		return it.fail(scanner.ErrExpectedPropertyName, k)
	}
	kEnd, err := scanner.SkipString(it.text, k, it.end)
	if err != nil {
		it.err = err
		it.next = it.end
		return false
	}
	colon := scanner.SkipWhitespace(it.text, kEnd, it.end)
	if colon >= it.end || it.text[colon] != ':' {
		return it.fail(scanner.ErrExpectedColon, colon)
	}
	it.next = scanner.SkipWhitespace(it.text, colon+1, it.end)

	v, ok := it.value()
	if !ok || !it.separator() {
		return false
	}
	it.cur = Member{
		Key:   Value{text: it.text, start: k, n: kEnd - k, kind: KindString},
		Value: v,
	}
	return true
}

func (it *ObjectIter) Member() Member {
	return it.cur
}

func (it *ObjectIter) Key() Value {
	return it.cur.Key
}

func (it *ObjectIter) Value() Value {
	return it.cur.Value
}

func (it *ObjectIter) Err() error {
	return it.err
}

// CharIter decodes the runes of a string value one at a time. Escapes are
// resolved and a \u surrogate pair yields a single rune; a lone surrogate
// yields utf8.RuneError.
type CharIter struct {
	origin Value
	s      string
	pos    int
	cur    rune
}

// Chars returns an iterator over the decoded runes of v. It yields nothing
// when v is not a string.
func (v Value) Chars() CharIter {
	it := CharIter{origin: v}
	it.Reset()
	return it
}

func (it *CharIter) Reset() {
	it.pos, it.cur, it.s = 0, 0, ""
	if it.origin.Kind() == KindString {
		it.s = it.origin.interior()
	}
}

func (it *CharIter) Next() bool {
	if it.pos >= len(it.s) {
		return false
	}
	it.cur, it.pos = decodeRune(it.s, it.pos)
	return true
}

func (it *CharIter) Rune() rune {
	return it.cur
}

// decodeRune decodes the rune of the string interior s that starts at i and
// returns it with the offset of the next one.
func decodeRune(s string, i int) (rune, int) {
	c := s[i]
	if c != '\\' {
		if c < utf8.RuneSelf {
			return rune(c), i + 1
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		return r, i + size
	}
	if i+1 >= len(s) {
		return '\\', i + 1
	}
	switch e := s[i+1]; e {
	case 'n':
		return '\n', i + 2
	case 't':
		return '\t', i + 2
	case 'r':
		return '\r', i + 2
	case 'b':
		return '\b', i + 2
	case 'f':
		return '\f', i + 2
	case 'u':
		r, ok := hex4(s, i+2)
		if !ok {
			return utf8.RuneError, i + 2
		}
		i += 6
		if !utf16.IsSurrogate(r) {
			return r, i
		}
		if i+1 < len(s) && s[i] == '\\' && s[i+1] == 'u' {
			if r2, ok := hex4(s, i+2); ok {
				if pair := utf16.DecodeRune(r, r2); pair != utf8.RuneError {
					return pair, i + 6
				}
			}
		}
		return utf8.RuneError, i
	default:
		// \" \\ \/ and anything unknown stand for themselves
		return rune(e), i + 2
	}
}

func hex4(s string, i int) (rune, bool) {
	if i+4 > len(s) {
		return 0, false
	}
	var r rune
	for j := i; j < i+4; j++ {
		c := s[j]
		var d byte
		switch {
		case '0' <= c && c <= '9':
			d = c - '0'
		case 'a' <= c && c <= 'f':
			d = c - 'a' + 10
		case 'A' <= c && c <= 'F':
			d = c - 'A' + 10
		default:
			return 0, false
		}
		r = r<<4 | rune(d)
	}
	return r, true
}
