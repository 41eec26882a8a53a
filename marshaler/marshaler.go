// Package marshaler holds the process-wide function used to turn arbitrary Go
// values into JSON when the Writer cannot walk them itself. The function can
// be swapped while other goroutines are writing.
package marshaler

import (
	"github.com/goccy/go-json"
	"go.uber.org/atomic"
)

type Marshaler func(any) ([]byte, error)

// Default is the marshaler in effect until SetMarshaler is called.
var Default Marshaler = json.Marshal

var current atomic.Pointer[Marshaler]

// SetMarshaler replaces the marshaler. A nil m restores Default.
func SetMarshaler(m Marshaler) {
	if m == nil {
		current.Store(nil)
		return
	}
	current.Store(&m)
}

func Instance() Marshaler {
	if m := current.Load(); m != nil {
		return *m
	}
	return Default
}
