package parse

// ConsumeWhile advances while pred holds and returns the number of units
// consumed. It never fails.
func (c *cursor) ConsumeWhile(pred Predicate) int {
	n := 0
	for {
		if _, ok := c.NextIf(pred); !ok {
			return n
		}
		n++
	}
}

// ConsumeWhileByte consumes a run of b and returns its length.
func (c *cursor) ConsumeWhileByte(b byte) int {
	return c.ConsumeWhile(Is(b))
}

// ConsumeUntil advances up to, but not including, the first unit accepted
// by pred, or to the end of the bounds.
func (c *cursor) ConsumeUntil(pred Predicate) int {
	return c.ConsumeWhile(Not(pred))
}

// ConsumeUntilByte advances up to the next b and returns the number of
// units consumed.
func (c *cursor) ConsumeUntilByte(b byte) int {
	return c.ConsumeWhile(IsNot(b))
}

// Consume advances to the end of the bounds and returns the number of units
// consumed, not counting ignored ones.
func (c *cursor) Consume() int {
	n := 0
	for _, ok := c.Advance(); ok; _, ok = c.Advance() {
		n++
	}
	c.pos = c.high
	return n
}

// ConsumeLen advances exactly n units. When fewer remain, it consumes what
// is left and returns a *ShortfallError.
func (c *cursor) ConsumeLen(n int) error {
	for i := 0; i < n; i++ {
		if _, ok := c.Advance(); !ok {
			return &ShortfallError{Want: n, Got: i}
		}
	}
	return nil
}

// ConsumeAtLeast consumes n units and then the rest of the bounds. It
// returns the total consumed, or a *ShortfallError if fewer than n units
// were available.
func (c *cursor) ConsumeAtLeast(n int) (int, error) {
	for i := 0; i < n; i++ {
		if _, ok := c.Advance(); !ok {
			return i, &ShortfallError{Want: n, Got: i}
		}
	}
	return n + c.Consume(), nil
}

// CountByte consumes a run of b and returns its length.
func (c *cursor) CountByte(b byte) int {
	return c.ConsumeWhileByte(b)
}

// ExpectByte consumes b or fails with an *UnexpectedError.
func (c *cursor) ExpectByte(b byte) error {
	return c.ExpectByteFn(Is(b))
}

// ExpectByteFn consumes the next unit if pred accepts it. Otherwise nothing
// is consumed and an *UnexpectedError describes what was found.
func (c *cursor) ExpectByteFn(pred Predicate) error {
	b, ok := c.Peek()
	if !ok {
		return &UnexpectedError{Offset: c.high, AtEnd: true}
	}
	if !pred(b) {
		return &UnexpectedError{Offset: c.skip(c.pos), Byte: b}
	}
	c.Advance()
	return nil
}

// ExpectEnd succeeds if nothing is left in the bounds.
func (c *cursor) ExpectEnd() error {
	if b, ok := c.Peek(); ok {
		return &UnexpectedError{Offset: c.skip(c.pos), Byte: b}
	}
	return nil
}

// While returns a Run over pred. No input is consumed until one of the
// Run's methods is called.
func (c *cursor) While(pred Predicate) Run {
	return Run{c: c, pred: pred}
}

// Run pairs a cursor with a predicate so the same run can be committed
// with different length requirements:
//
//	digits := p.While(parse.IsDigit)
//	if _, err := digits.ConsumeAtLeast(1); err != nil {
//		return err
//	}
//
// Each call scans from the cursor's current position.
type Run struct {
	c    *cursor
	pred Predicate
}

// Consume consumes the run and returns its length.
func (r Run) Consume() int {
	return r.c.ConsumeWhile(r.pred)
}

// ConsumeAtLeast consumes the run and fails with a *ShortfallError if it
// was shorter than n. Consumed input is not given back on failure.
func (r Run) ConsumeAtLeast(n int) (int, error) {
	got := r.Consume()
	if got < n {
		return got, &ShortfallError{Want: n, Got: got}
	}
	return got, nil
}

// ConsumeLen consumes at most n units of the run and fails if the run ended
// earlier.
func (r Run) ConsumeLen(n int) error {
	for i := 0; i < n; i++ {
		if _, ok := r.c.NextIf(r.pred); !ok {
			return &ShortfallError{Want: n, Got: i}
		}
	}
	return nil
}
