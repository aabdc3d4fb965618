// Package number parses decimal numeric literals: an optional leading
// minus, at least one digit, and an optional fraction.
package number

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/dhamidi/byteparse/parse"
)

var (
	ErrSyntax   = errors.New("number: invalid syntax")
	ErrTrailing = errors.New("number: trailing input")
)

// Number is one of Uint, Integer or Float.
type Number interface {
	isNumber()
}

// Uint is a literal without sign or fraction.
type Uint uint64

// Integer is a negative literal without fraction.
type Integer int64

// Float is a literal with a fraction.
type Float float64

func (Uint) isNumber()    {}
func (Integer) isNumber() {}
func (Float) isNumber()   {}

// FromParser reads one number at the current position of it. On success
// the cursor is left just after the literal. On failure the input already
// consumed is not given back; callers that need to try something else
// should take a checkpoint first.
func FromParser(it parse.Iterator) (Number, error) {
	rec := it.Record()

	_, negative := rec.NextIf(parse.Is('-'))

	if _, err := rec.While(parse.IsDigit).ConsumeAtLeast(1); err != nil {
		return nil, fmt.Errorf("%w: expected digit at offset %d", ErrSyntax, rec.Offset())
	}

	if _, ok := rec.NextIf(parse.Is('.')); !ok {
		s, err := rec.Str()
		if err != nil {
			return nil, err
		}
		if negative {
			v, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("number: %w", err)
			}
			return Integer(v), nil
		}
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("number: %w", err)
		}
		return Uint(v), nil
	}

	rec.ConsumeWhile(parse.IsDigit)

	s, err := rec.Str()
	if err != nil {
		return nil, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("number: %w", err)
	}
	return Float(v), nil
}

// Parse parses s, which must contain exactly one number.
func Parse(s string) (Number, error) {
	p, err := parse.NewStrParser(s)
	if err != nil {
		return nil, fmt.Errorf("number: %w", err)
	}
	n, err := FromParser(p)
	if err != nil {
		return nil, err
	}
	if err := p.ExpectEnd(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTrailing, err)
	}
	return n, nil
}
