package scanner

import (
	"errors"
	"fmt"
)

// Structural faults. Every fault returned by this module wraps one of these
// in a *SyntaxError, so callers can test with errors.Is.
var (
	ErrStringNotClosed      = errors.New("string not closed")
	ErrArrayNotClosed       = errors.New("array not closed")
	ErrObjectNotClosed      = errors.New("object not closed")
	ErrIllegalBoolean       = errors.New("illegal boolean")
	ErrIllegalNull          = errors.New("illegal null")
	ErrIllegalNumber        = errors.New("illegal number")
	ErrExpectedPropertyName = errors.New("expected property name (quoted string)")
	ErrExpectedColon        = errors.New("expected ':' after property name")
	ErrExpectedComma        = errors.New("expected ',' or closing bracket")
	ErrExpectedValue        = errors.New("expected value")
	ErrIllegalEscape        = errors.New("illegal escape sequence")
	ErrControlCharacter     = errors.New("control character in string")
)

const maxSnippet = 64

// SyntaxError locates a structural fault inside the backing text.
type SyntaxError struct {
	Err    error
	Source string
	Offset int
	Length int
}

// NewError builds a fault for the window text[offset:offset+length].
func NewError(err error, source string, offset, length int) *SyntaxError {
	return &SyntaxError{Err: err, Source: source, Offset: offset, Length: length}
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at offset %d: %q", e.Err.Error(), e.Offset, e.Snippet())
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Snippet returns the offending window, clipped to the source bounds and to a
// printable length.
func (e *SyntaxError) Snippet() string {
	start, end := e.Offset, e.Offset+e.Length
	if start < 0 {
		start = 0
	}
	if end > len(e.Source) {
		end = len(e.Source)
	}
	if start >= end {
		return ""
	}
	if end-start > maxSnippet {
		return e.Source[start:start+maxSnippet] + "..."
	}
	return e.Source[start:end]
}

func notClosed(open byte) error {
	if open == '{' {
		return ErrObjectNotClosed
	}
	return ErrArrayNotClosed
}
