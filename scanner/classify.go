package scanner

const (
	NullLiteral  = "null"
	TrueLiteral  = "true"
	FalseLiteral = "false"
)

// Classify determines the kind of the token text[start:start+length] and
// checks that it is closed or spelled correctly. Container contents are not
// inspected here; they are validated lazily while walking.
//
// Numbers are accepted when they start with '-' or a digit and only use the
// number alphabet (digits, sign, '.', 'e', 'E'). Whether the token is a
// well-formed number is left to the number parser.
func Classify(text string, start, length int) (Kind, error) {
	if len(text) == 0 {
		return Null, nil
	}
	if rest := len(text) - start; length > rest {
		length = rest
	}
	if length <= 0 {
		return Null, nil
	}
	last := start + length - 1

	switch text[start] {
	case '"':
		if length < 2 || text[last] != '"' {
			return Invalid, NewError(ErrStringNotClosed, text, start, length)
		}
		return String, nil
	case '[':
		if length < 2 || text[last] != ']' {
			return Invalid, NewError(ErrArrayNotClosed, text, start, length)
		}
		return Array, nil
	case '{':
		if length < 2 || text[last] != '}' {
			return Invalid, NewError(ErrObjectNotClosed, text, start, length)
		}
		return Object, nil
	case 't':
		if text[start:start+length] != TrueLiteral {
			return Invalid, NewError(ErrIllegalBoolean, text, start, length)
		}
		return Boolean, nil
	case 'f':
		if text[start:start+length] != FalseLiteral {
			return Invalid, NewError(ErrIllegalBoolean, text, start, length)
		}
		return Boolean, nil
	case 'n':
		if text[start:start+length] != NullLiteral {
			return Invalid, NewError(ErrIllegalNull, text, start, length)
		}
		return Null, nil
	}

	if c := text[start]; c != '-' && (c < '0' || c > '9') {
		return Invalid, NewError(ErrIllegalNumber, text, start, length)
	}
	for i := start; i <= last; i++ {
		switch c := text[i]; {
		case c >= '0' && c <= '9':
		case c == '-', c == '+', c == '.', c == 'e', c == 'E':
		default:
			return Invalid, NewError(ErrIllegalNumber, text, start, length)
		}
	}
	return Number, nil
}
