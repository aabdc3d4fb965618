package parse

import (
	"errors"
	"fmt"
)

var (
	// ErrShortfall reports that a run consumed fewer units than required.
	ErrShortfall = errors.New("parse: shortfall")

	// ErrInvalidUTF8 reports that text could not be decoded as UTF-8.
	ErrInvalidUTF8 = errors.New("parse: invalid utf-8")

	// ErrUnexpected reports that the next unit did not match an expectation.
	ErrUnexpected = errors.New("parse: unexpected input")
)

// ShortfallError is returned when a run stops before reaching its minimum
// length. The cursor is left where the run stopped.
type ShortfallError struct {
	Want int
	Got  int
}

func (e *ShortfallError) Error() string {
	return fmt.Sprintf("parse: wanted at least %d units, got %d", e.Want, e.Got)
}

func (e *ShortfallError) Is(target error) bool {
	return target == ErrShortfall
}

// EncodingError is returned when materialising a span that is not valid
// UTF-8, or when constructing a StrParser from invalid text. Offset is the
// buffer offset of the first invalid byte.
type EncodingError struct {
	Offset int
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("parse: invalid utf-8 at offset %d", e.Offset)
}

func (e *EncodingError) Is(target error) bool {
	return target == ErrInvalidUTF8
}

// UnexpectedError is returned by the Expect family.
type UnexpectedError struct {
	Offset int
	Byte   byte
	AtEnd  bool
}

func (e *UnexpectedError) Error() string {
	if e.AtEnd {
		return fmt.Sprintf("parse: unexpected end of input at offset %d", e.Offset)
	}
	return fmt.Sprintf("parse: unexpected byte %q at offset %d", e.Byte, e.Offset)
}

func (e *UnexpectedError) Is(target error) bool {
	return target == ErrUnexpected
}
