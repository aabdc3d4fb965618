package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/byteparse/grammar/kv"
)

type JSONEncoder struct {
	w     io.Writer
	pairs []kv.Pair
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(pairs []kv.Pair) error {
	e.pairs = pairs
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	if _, err := e.w.Write(text); err != nil {
		return err
	}
	_, err = io.WriteString(e.w, "\n")
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	rows := make([]jsonPair, 0, len(e.pairs))
	for _, p := range e.pairs {
		rows = append(rows, jsonPair{Line: p.Line, Key: p.Key, Value: p.Value})
	}
	return json.MarshalIndent(rows, "", "  ")
}

type jsonPair struct {
	Line  int    `json:"line"`
	Key   string `json:"key"`
	Value string `json:"value"`
}
