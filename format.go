package jvalue

import (
	"fmt"
	"strings"
)

// Format selects the whitespace a Writer puts around structural tokens.
type Format uint8

const (
	// Compact writes no whitespace at all.
	Compact Format = iota
	// CompactLines starts a new line after every opening bracket and
	// separator and before every closing bracket, without indentation.
	CompactLines
	// Pretty is CompactLines with two spaces of indentation per level and a
	// space after each colon.
	Pretty
)

var formatNames = [...]string{
	Compact:      "compact",
	CompactLines: "lines",
	Pretty:       "pretty",
}

func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

// FormatNames lists the names ParseFormat accepts.
func FormatNames() []string {
	return formatNames[:]
}

func ParseFormat(s string) (Format, error) {
	for i, name := range formatNames {
		if strings.EqualFold(s, name) {
			return Format(i), nil
		}
	}
	return Compact, fmt.Errorf("unknown format %q", s)
}

type layout struct {
	newlines   bool
	indent     string
	colonSpace bool
}

func (f Format) layout() layout {
	switch f {
	case CompactLines:
		return layout{newlines: true}
	case Pretty:
		return layout{newlines: true, indent: "  ", colonSpace: true}
	}
	return layout{}
}
