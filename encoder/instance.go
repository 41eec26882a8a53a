// Package encoder holds the factory used to stream JSON values to a writer,
// one value per call.
package encoder

import (
	"io"

	"github.com/goccy/go-json"
)

type IEncoder interface {
	Encode(any) error
}

type Factory func(io.Writer) IEncoder

var encoderFactory Factory

func init() {
	encoderFactory = defaultFactory
}

func defaultFactory(w io.Writer) IEncoder {
	return json.NewEncoder(w)
}

// SetEncoder replaces the encoder factory. A nil factory restores the
// default.
func SetEncoder(factory Factory) {
	if factory == nil {
		factory = defaultFactory
	}
	encoderFactory = factory
}

// NewEncoder creates an encoder writing to w using the current factory.
func NewEncoder(w io.Writer) IEncoder {
	return encoderFactory(w)
}

func Instance() Factory {
	return encoderFactory
}
