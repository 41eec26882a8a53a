// Package decoder holds the factory used to pull whole JSON values out of a
// stream before they are viewed lazily.
package decoder

import (
	"io"

	"github.com/goccy/go-json"
)

type IDecoder interface {
	Decode(any) error
}

type Factory func(io.Reader) IDecoder

var decoderFactory Factory

func init() {
	decoderFactory = defaultFactory
}

func defaultFactory(r io.Reader) IDecoder {
	return json.NewDecoder(r)
}

// SetDecoder replaces the decoder factory. A nil factory restores the
// default.
func SetDecoder(factory Factory) {
	if factory == nil {
		factory = defaultFactory
	}
	decoderFactory = factory
}

// NewDecoder creates a decoder reading from r using the current factory.
func NewDecoder(r io.Reader) IDecoder {
	return decoderFactory(r)
}

func Instance() Factory {
	return decoderFactory
}
