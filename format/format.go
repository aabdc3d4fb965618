// Package format encodes parsed key/value pairs for output.
package format

import (
	"encoding"
	"fmt"
	"io"

	"github.com/dhamidi/byteparse/grammar/kv"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(pairs []kv.Pair) error
}

// New returns the encoder registered under name ("text" or "json").
func New(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "text":
		return NewLineEncoder(w), nil
	case "json":
		return NewJSONEncoder(w), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", name)
	}
}
