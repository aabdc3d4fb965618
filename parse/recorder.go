package parse

import "fmt"

// Recorder remembers where recording started on a shared cursor. The
// recorded span is [Start(), Offset()).
//
// Calling Record on a parser or segment always returns a new, independent
// Recorder. Calling Record on a Recorder rebases that recorder and discards
// its previous start; take a second Recorder from the parser when two
// windows must be kept at once.
type Recorder struct {
	*cursor
	start int
}

// Record moves the start of the recording to the current position.
func (r *Recorder) Record() *Recorder {
	r.start = r.pos
	return r
}

// Start returns the buffer offset where recording began.
func (r *Recorder) Start() int {
	return r.start
}

// Len returns the number of bytes recorded so far.
func (r *Recorder) Len() int {
	r.check()
	return r.pos - r.start
}

// Restore is Cursor.Restore, refusing checkpoints before the recording
// start.
func (r *Recorder) Restore(cp Checkpoint) {
	if cp.offset < r.start {
		panic(fmt.Sprintf("parse: checkpoint %d precedes recording start %d", cp.offset, r.start))
	}
	r.cursor.Restore(cp)
}

// Slice returns the recorded span. For a BytesParser it aliases the
// parser's buffer; for a StrParser the text is copied.
func (r *Recorder) Slice() []byte {
	r.check()
	return r.buf.bytes(r.start, r.pos)
}

// Str returns the recorded span as a string. For a StrParser the result is
// a substring of the original text and the error is always nil. For a
// BytesParser the span is validated and copied; invalid UTF-8 yields an
// *EncodingError.
func (r *Recorder) Str() (string, error) {
	r.check()
	return r.buf.str(r.start, r.pos)
}

// MustStr is like Str but panics with the *EncodingError.
func (r *Recorder) MustStr() string {
	s, err := r.Str()
	if err != nil {
		panic(err)
	}
	return s
}

// ConsumeToSlice consumes the rest of the bounds and returns the recording.
func (r *Recorder) ConsumeToSlice() []byte {
	r.Consume()
	return r.Slice()
}

// ConsumeToStr consumes the rest of the bounds and returns the recording.
func (r *Recorder) ConsumeToStr() (string, error) {
	r.Consume()
	return r.Str()
}

// MustConsumeToStr is like ConsumeToStr but panics with the *EncodingError.
func (r *Recorder) MustConsumeToStr() string {
	r.Consume()
	return r.MustStr()
}

// Stop returns a frozen copy of the recorder: the copy reports end of input
// from its current position but still returns the span recorded so far.
// The original recorder is unaffected.
func (r *Recorder) Stop() *Recorder {
	frozen := *r.cursor
	frozen.high = frozen.pos
	return &Recorder{cursor: &frozen, start: r.start}
}

func (r *Recorder) check() {
	if r.start > r.pos {
		panic(fmt.Sprintf("parse: cursor at %d moved before recording start %d", r.pos, r.start))
	}
}
