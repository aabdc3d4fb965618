package parse

import "iter"

// Splitter hands out the segments of a cursor between delimiters. It is
// created by Split or SplitFn and is either scanning or exhausted.
//
// Every call to Next scans from the end of the previous delimiter, no
// matter how much of the previous segment the caller consumed. The cursor
// the splitter was created from is moved past each delimiter as segments
// are emitted, and to the end of its bounds once the splitter is
// exhausted.
type Splitter struct {
	c     *cursor
	delim Predicate
	next  int
	done  bool
}

// Split splits the remaining input on b.
func (c *cursor) Split(b byte) *Splitter {
	return c.SplitFn(Is(b))
}

// SplitFn splits the remaining input on every unit accepted by pred. In
// text mode a delimiter is a whole scalar value.
func (c *cursor) SplitFn(pred Predicate) *Splitter {
	return &Splitter{c: c, delim: pred, next: c.pos}
}

// Next returns the next segment. Input that ends with a delimiter yields a
// final empty segment, and empty input yields one empty segment.
func (s *Splitter) Next() (*Segment, bool) {
	if s.done {
		return nil, false
	}
	scan := newCursor(s.c.buf, s.next, s.c.high)
	scan.ignored = s.c.ignored
	scan.ConsumeUntil(s.delim)
	seg := &Segment{cursor: newCursor(s.c.buf, s.next, scan.pos)}
	seg.ignored = s.c.ignored
	if _, ok := scan.Advance(); !ok {
		scan.pos = s.c.high
		s.done = true
	}
	s.next = scan.pos
	s.c.pos = scan.pos
	return seg, true
}

// ForEach calls fn with every remaining segment in order.
func (s *Splitter) ForEach(fn func(*Segment)) {
	for {
		seg, ok := s.Next()
		if !ok {
			return
		}
		fn(seg)
	}
}

// All returns an iterator over the remaining segments.
func (s *Splitter) All() iter.Seq[*Segment] {
	return func(yield func(*Segment) bool) {
		for {
			seg, ok := s.Next()
			if !ok || !yield(seg) {
				return
			}
		}
	}
}

// MapAndCollect drains s, applying fn to each segment, and returns the
// results in split order.
func MapAndCollect[T any](s *Splitter, fn func(*Segment) T) []T {
	var out []T
	s.ForEach(func(seg *Segment) {
		out = append(out, fn(seg))
	})
	return out
}
