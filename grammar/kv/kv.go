// Package kv parses line-oriented "key: value" text.
//
// Each line is split at its first separator. Text before it is the key and
// text after it, with surrounding blanks removed, is the value. A line
// without a separator is kept as a value with an empty key unless strict
// mode is enabled. Blank lines, and comment lines when a comment byte is
// configured, are skipped.
package kv

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dhamidi/byteparse/parse"
)

var (
	ErrMissingSeparator = errors.New("kv: missing separator")
	ErrEmptyKey         = errors.New("kv: empty key")
)

// Pair is one parsed line. Line is 1-based.
type Pair struct {
	Key   string
	Value string
	Line  int
}

// LineError reports a strict-mode failure on a specific line.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

type Option func(*Parser)

// WithSeparator sets the byte between key and value. The default is ':'.
func WithSeparator(b byte) Option {
	return func(p *Parser) {
		p.separator = b
	}
}

// WithComment makes lines whose first non-blank byte is b comments.
func WithComment(b byte) Option {
	return func(p *Parser) {
		p.comment = b
	}
}

// WithStrict rejects lines without a separator and lines with an empty key.
func WithStrict() Option {
	return func(p *Parser) {
		p.strict = true
	}
}

type Parser struct {
	separator byte
	comment   byte
	strict    bool
}

func New(opts ...Option) *Parser {
	p := &Parser{separator: ':'}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse is New(opts...).Parse(text).
func Parse(text string, opts ...Option) ([]Pair, error) {
	return New(opts...).Parse(text)
}

// Parse returns the pairs of text in order.
func (p *Parser) Parse(text string) ([]Pair, error) {
	sp, err := parse.NewStrParser(text)
	if err != nil {
		return nil, fmt.Errorf("kv: %w", err)
	}

	var pairs []Pair
	number := 0
	for seg := range sp.Split('\n').All() {
		number++
		pair, ok, err := p.ParseLine(seg, number)
		if err != nil {
			return pairs, err
		}
		if ok {
			pairs = append(pairs, pair)
		}
	}
	return pairs, nil
}

// ParseLine parses one line segment. It reports false for blank and
// comment lines. In strict mode a line without separator or with an empty
// key fails with a *LineError.
func (p *Parser) ParseLine(seg *parse.Segment, number int) (Pair, bool, error) {
	l := p.scanLine(seg)
	if l.skip {
		return Pair{}, false, nil
	}
	if p.strict {
		if !l.hasSeparator {
			return Pair{}, false, &LineError{Line: number, Err: ErrMissingSeparator}
		}
		if l.key == "" {
			return Pair{}, false, &LineError{Line: number, Err: ErrEmptyKey}
		}
	}
	return Pair{Key: l.key, Value: l.value, Line: number}, true, nil
}

// line is a scanned line with the buffer offsets of its parts.
type line struct {
	key          string
	keyStart     int
	value        string
	valueStart   int
	hasSeparator bool
	skip         bool
}

func isBlank(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r'
}

func (p *Parser) scanLine(seg *parse.Segment) line {
	var l line

	seg.ConsumeWhile(isBlank)
	if seg.Done() {
		l.skip = true
		return l
	}
	if p.comment != 0 {
		if b, _ := seg.Peek(); b == p.comment {
			l.skip = true
			return l
		}
	}

	key := seg.Record()
	key.ConsumeUntilByte(p.separator)
	keyText := strings.TrimRight(key.MustStr(), " \t\r")

	if _, ok := seg.Advance(); !ok {
		l.value = keyText
		l.valueStart = key.Start()
		l.keyStart = key.Start()
		return l
	}
	l.hasSeparator = true
	l.key = keyText
	l.keyStart = key.Start()

	seg.ConsumeWhile(isBlank)
	value := seg.Record()
	l.valueStart = value.Start()
	l.value = strings.TrimRight(value.MustConsumeToStr(), " \t\r")
	return l
}
