package parse

import (
	"fmt"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Checkpoint is a saved cursor position. It is only meaningful for the
// parser it was taken from, or for recorders and segments sharing that
// parser's buffer and bounds.
type Checkpoint struct {
	offset int
}

// Offset returns the buffer offset the checkpoint refers to.
func (cp Checkpoint) Offset() int {
	return cp.offset
}

// cursor holds the position shared by a parser and its recorders.
// Invariant: low <= pos <= high <= buf.len().
type cursor struct {
	buf     *buffer
	pos     int
	low     int
	high    int
	ignored byteSet
}

// byteSet is a 256-bit set of byte values.
type byteSet [4]uint64

func (s *byteSet) add(b byte) {
	s[b>>6] |= 1 << (b & 63)
}

func (s *byteSet) has(b byte) bool {
	return s[b>>6]&(1<<(b&63)) != 0
}

func (s *byteSet) empty() bool {
	return *s == byteSet{}
}

func newCursor(buf *buffer, low, high int) cursor {
	return cursor{buf: buf, pos: low, low: low, high: high}
}

// IgnoreByte makes the cursor step over every unit whose leading byte is b,
// as if it were not there. Ignored units still count towards recorded
// spans. Recorders share the setting; segments split off later inherit
// it, but ignoring a byte on a segment does not affect its parent.
func (c *cursor) IgnoreByte(b byte) {
	c.ignored.add(b)
}

// ClearIgnored stops ignoring bytes.
func (c *cursor) ClearIgnored() {
	c.ignored = byteSet{}
}

// skip returns the first offset at or after pos that does not hold an
// ignored unit.
func (c *cursor) skip(pos int) int {
	if c.ignored.empty() {
		return pos
	}
	for pos < c.high && c.ignored.has(c.buf.at(pos)) {
		pos += c.buf.width(pos, c.high)
	}
	return pos
}

// Peek returns the next byte without moving. In text mode this is the
// leading byte of the next scalar value.
func (c *cursor) Peek() (byte, bool) {
	i := c.skip(c.pos)
	if i >= c.high {
		return 0, false
	}
	return c.buf.at(i), true
}

// Advance returns the next byte and moves past it. In text mode the whole
// scalar value is consumed and its leading byte is returned. At the end of
// the bounds it returns false and does not move.
func (c *cursor) Advance() (byte, bool) {
	i := c.skip(c.pos)
	if i >= c.high {
		return 0, false
	}
	b := c.buf.at(i)
	c.pos = i + c.buf.width(i, c.high)
	return b, true
}

// NextIf advances only if pred accepts the next byte.
func (c *cursor) NextIf(pred Predicate) (byte, bool) {
	b, ok := c.Peek()
	if !ok || !pred(b) {
		return 0, false
	}
	return c.Advance()
}

// AdvanceIf is NextIf for callers that need to tell "no match" (advanced is
// false, ok is true) from "end of input" (ok is false).
func (c *cursor) AdvanceIf(pred Predicate) (advanced, ok bool) {
	b, ok := c.Peek()
	if !ok {
		return false, false
	}
	if !pred(b) {
		return false, true
	}
	c.Advance()
	return true, true
}

// PeekAt returns the byte n units ahead without moving; PeekAt(1) is Peek.
func (c *cursor) PeekAt(n int) (byte, bool) {
	if n < 1 {
		panic(fmt.Sprintf("parse: PeekAt(%d): n must be at least 1", n))
	}
	pos := c.skip(c.pos)
	for i := 1; i < n; i++ {
		if pos >= c.high {
			return 0, false
		}
		pos = c.skip(pos + c.buf.width(pos, c.high))
	}
	if pos >= c.high {
		return 0, false
	}
	return c.buf.at(pos), true
}

// PeekLen returns the next n units as bytes without moving, or false if
// fewer than n remain. Ignored units between them are included.
func (c *cursor) PeekLen(n int) ([]byte, bool) {
	end := c.pos
	for i := 0; i < n; i++ {
		end = c.skip(end)
		if end >= c.high {
			return nil, false
		}
		end += c.buf.width(end, c.high)
	}
	return c.buf.bytes(c.pos, end), true
}

// PeekRune decodes the scalar value at the current position. It returns
// false at the end of the bounds or when the bytes there are not a valid
// encoding.
func (c *cursor) PeekRune() (rune, int, bool) {
	r, _, n, ok := c.peekRune()
	return r, n, ok
}

func (c *cursor) peekRune() (r rune, at, n int, ok bool) {
	at = c.skip(c.pos)
	if at >= c.high {
		return 0, at, 0, false
	}
	r, n = c.buf.decodeRune(at, c.high)
	if r == utf8.RuneError && n <= 1 {
		return r, at, 0, false
	}
	return r, at, n, true
}

// NextRune decodes and consumes one scalar value. Nothing is consumed when
// it returns false.
func (c *cursor) NextRune() (rune, bool) {
	r, at, n, ok := c.peekRune()
	if !ok {
		return r, false
	}
	c.pos = at + n
	return r, true
}

// NextGrapheme consumes one extended grapheme cluster and returns it.
func (c *cursor) NextGrapheme() (string, bool) {
	start := c.skip(c.pos)
	if start >= c.high {
		return "", false
	}
	var n int
	if c.buf.text {
		cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(c.buf.s[start:c.high], -1)
		n = len(cluster)
	} else {
		cluster, _, _, _ := uniseg.FirstGraphemeCluster(c.buf.b[start:c.high], -1)
		n = len(cluster)
	}
	if n == 0 {
		n = c.buf.width(start, c.high)
	}
	c.pos = start + n
	if c.buf.text {
		return c.buf.s[start:c.pos], true
	}
	return string(c.buf.b[start:c.pos]), true
}

// Offset returns the current position as an offset into the whole buffer.
func (c *cursor) Offset() int {
	return c.pos
}

// Remaining returns the number of bytes left before the end of the bounds.
func (c *cursor) Remaining() int {
	return c.high - c.pos
}

// Done reports whether nothing but ignored units is left in the bounds.
func (c *cursor) Done() bool {
	return c.skip(c.pos) >= c.high
}

// Checkpoint saves the current position for a later Restore.
func (c *cursor) Checkpoint() Checkpoint {
	return Checkpoint{offset: c.pos}
}

// Restore moves the cursor to cp. This is the only operation that moves
// backwards. It panics if cp lies outside the cursor's bounds or, in text
// mode, inside a multi-byte sequence.
func (c *cursor) Restore(cp Checkpoint) {
	off := cp.offset
	if off < c.low || off > c.high {
		panic(fmt.Sprintf("parse: checkpoint %d outside bounds [%d, %d]", off, c.low, c.high))
	}
	if c.buf.text && off < c.high && !utf8.RuneStart(c.buf.at(off)) {
		panic(fmt.Sprintf("parse: checkpoint %d is not on a scalar boundary", off))
	}
	c.pos = off
}

// Record starts a new recording at the current position. Recorders share
// this cursor: consuming through either moves both.
func (c *cursor) Record() *Recorder {
	return &Recorder{cursor: c, start: c.pos}
}

// Stop returns a segment over the input consumed so far that reports end
// of input from the current position. Checkpoints taken before the stop
// can be restored on it. The cursor itself is unaffected.
func (c *cursor) Stop() *Segment {
	frozen := *c
	frozen.high = frozen.pos
	return &Segment{cursor: frozen}
}
