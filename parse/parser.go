package parse

import "unicode/utf8"

// Iterator is the capability set shared by BytesParser, StrParser, Segment
// and Recorder. Grammars written against it work on any of them.
type Iterator interface {
	Peek() (byte, bool)
	Advance() (byte, bool)
	NextIf(pred Predicate) (byte, bool)
	Offset() int
	Done() bool
	Checkpoint() Checkpoint
	Restore(cp Checkpoint)
	Record() *Recorder

	ConsumeWhile(pred Predicate) int
	ConsumeUntil(pred Predicate) int
	Consume() int
	While(pred Predicate) Run
	Split(b byte) *Splitter
	IgnoreByte(b byte)
}

var (
	_ Iterator = (*BytesParser)(nil)
	_ Iterator = (*StrParser)(nil)
	_ Iterator = (*Segment)(nil)
	_ Iterator = (*Recorder)(nil)
)

// BytesParser parses a byte slice one byte at a time.
type BytesParser struct {
	cursor
}

// NewBytesParser returns a parser over b. The slice is not copied.
func NewBytesParser(b []byte) *BytesParser {
	buf := &buffer{b: b}
	return &BytesParser{cursor: newCursor(buf, 0, len(b))}
}

// Bytes returns the whole underlying buffer.
func (p *BytesParser) Bytes() []byte {
	return p.buf.b
}

// StrParser parses UTF-8 text one scalar value at a time.
type StrParser struct {
	cursor
}

// NewStrParser returns a parser over s. It fails with an *EncodingError if
// s is not valid UTF-8; this is the only place a StrParser can encounter
// invalid text.
func NewStrParser(s string) (*StrParser, error) {
	if !utf8.ValidString(s) {
		return nil, &EncodingError{Offset: invalidOffset([]byte(s))}
	}
	buf := &buffer{s: s, text: true}
	return &StrParser{cursor: newCursor(buf, 0, len(s))}, nil
}

// MustStrParser is like NewStrParser but panics on invalid UTF-8.
func MustStrParser(s string) *StrParser {
	p, err := NewStrParser(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Text returns the whole underlying text.
func (p *StrParser) Text() string {
	return p.buf.s
}

// Segment is a parser bounded to one span of a split. It shares the
// buffer of the parser it was split from but has its own position.
type Segment struct {
	cursor
}

// Bounds returns the buffer offsets [start, end) covered by the segment.
func (s *Segment) Bounds() (start, end int) {
	return s.low, s.high
}
