// Package scanner holds the stateless primitives that walk JSON text: every
// function takes absolute offsets into the text and returns the next
// boundary. None of them allocate except to report a fault.
package scanner

// SkipWhitespace returns the first offset in [from, end) that is not a space,
// tab, CR or LF, or end when there is none.
func SkipWhitespace(text string, from, end int) int {
	for ; from < end; from++ {
		switch text[from] {
		case ' ', '\t', '\r', '\n':
		default:
			return from
		}
	}
	return end
}

// BackwardSkipWhitespace walks from toward index 0 over tab, CR and LF and
// returns the index of the first other byte, or -1. A plain space stops the
// walk.
func BackwardSkipWhitespace(text string, from int) int {
	for ; from >= 0; from-- {
		switch text[from] {
		case '\t', '\r', '\n':
		default:
			return from
		}
	}
	return -1
}

// SkipString expects text[quote] to be '"' and returns the offset just past
// the closing quote. A backslash always consumes the byte after it.
func SkipString(text string, quote, end int) (int, error) {
	for i := quote + 1; i < end; i++ {
		switch text[i] {
		case '"':
			return i + 1, nil
		case '\\':
			i++
		}
	}
	return end, NewError(ErrStringNotClosed, text, quote, end-quote)
}

// CheckString expects text[quote:end] to be a whole string token and reports
// the first raw control character, unknown escape or short \u escape in it.
func CheckString(text string, quote, end int) error {
	last := end - 1
	for i := quote + 1; i < last; i++ {
		c := text[i]
		if c < 0x20 {
			return NewError(ErrControlCharacter, text, i, 1)
		}
		if c != '\\' {
			continue
		}
		if i+1 >= last {
			return NewError(ErrIllegalEscape, text, i, 1)
		}
		switch text[i+1] {
		case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
			i++
		case 'u':
			if i+6 > last || !isHex4(text[i+2:i+6]) {
				return NewError(ErrIllegalEscape, text, i, min(6, last-i))
			}
			i += 5
		default:
			return NewError(ErrIllegalEscape, text, i, 2)
		}
	}
	return nil
}

func isHex4(s string) bool {
	for i := 0; i < 4; i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}

// SkipBracket expects text[open] to be '[' or '{' and returns the offset just
// past the bracket that brings the depth back to zero. Strings are skipped
// whole so brackets inside them are never counted.
func SkipBracket(text string, open, end int) (int, error) {
	depth := 0
	for i := open; i < end; i++ {
		switch text[i] {
		case '[', '{':
			depth++
		case ']', '}':
			depth--
			if depth == 0 {
				return i + 1, nil
			}
		case '"':
			next, err := SkipString(text, i, end)
			if err != nil {
				return end, err
			}
			i = next - 1
		}
	}
	return end, NewError(notClosed(text[open]), text, open, end-open)
}

// SkipScalar returns the offset of the first delimiter at or after from.
func SkipScalar(text string, from, end int) int {
	for ; from < end; from++ {
		switch text[from] {
		case ' ', ',', ']', '}', '"', '\t', '\r', '\n', ':':
			return from
		}
	}
	return end
}

// SkipValue returns the offset just past the token starting at from.
func SkipValue(text string, from, end int) (int, error) {
	if from >= end {
		return end, nil
	}
	switch text[from] {
	case '"':
		return SkipString(text, from, end)
	case '[', '{':
		return SkipBracket(text, from, end)
	default:
		return SkipScalar(text, from, end), nil
	}
}
