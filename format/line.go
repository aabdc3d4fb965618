package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/byteparse/grammar/kv"
)

// LineEncoder writes one tab separated "line key value" row per pair.
type LineEncoder struct {
	w     io.Writer
	pairs []kv.Pair
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(pairs []kv.Pair) error {
	e.pairs = pairs
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	for _, p := range e.pairs {
		fmt.Fprintf(&sb, "%d\t%s\t%s\n", p.Line, p.Key, p.Value)
	}
	return []byte(sb.String()), nil
}
