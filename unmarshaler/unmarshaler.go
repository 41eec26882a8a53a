// Package unmarshaler holds the process-wide function Value.Decode uses to
// bind JSON text to Go values. The function can be swapped while other
// goroutines are decoding.
package unmarshaler

import (
	"github.com/goccy/go-json"
	"go.uber.org/atomic"
)

type Unmarshaler func([]byte, any) error

// Default is the unmarshaler in effect until SetUnmarshaler is called.
var Default Unmarshaler = json.Unmarshal

var current atomic.Pointer[Unmarshaler]

// SetUnmarshaler replaces the unmarshaler. A nil u restores Default.
func SetUnmarshaler(u Unmarshaler) {
	if u == nil {
		current.Store(nil)
		return
	}
	current.Store(&u)
}

func Instance() Unmarshaler {
	if u := current.Load(); u != nil {
		return *u
	}
	return Default
}
