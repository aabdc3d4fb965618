package parse

import "unicode/utf8"

// buffer is the read-only data shared by a parser, its recorders and its
// segments. Exactly one of b and s is in use, selected by text.
type buffer struct {
	b    []byte
	s    string
	text bool
}

func (buf *buffer) len() int {
	if buf.text {
		return len(buf.s)
	}
	return len(buf.b)
}

func (buf *buffer) at(i int) byte {
	if buf.text {
		return buf.s[i]
	}
	return buf.b[i]
}

// width returns the size of the unit starting at i: one byte in bytes mode,
// one scalar value in text mode.
func (buf *buffer) width(i, end int) int {
	if !buf.text {
		return 1
	}
	if buf.s[i] < utf8.RuneSelf {
		return 1
	}
	_, n := utf8.DecodeRuneInString(buf.s[i:end])
	return n
}

func (buf *buffer) decodeRune(i, end int) (rune, int) {
	if buf.text {
		return utf8.DecodeRuneInString(buf.s[i:end])
	}
	return utf8.DecodeRune(buf.b[i:end])
}

// bytes returns [i, j). It aliases the buffer in bytes mode and copies in
// text mode.
func (buf *buffer) bytes(i, j int) []byte {
	if buf.text {
		return []byte(buf.s[i:j])
	}
	return buf.b[i:j:j]
}

// str returns [i, j) as a string. It aliases the buffer in text mode. In
// bytes mode the span is validated and copied.
func (buf *buffer) str(i, j int) (string, error) {
	if buf.text {
		return buf.s[i:j], nil
	}
	span := buf.b[i:j]
	if !utf8.Valid(span) {
		return "", &EncodingError{Offset: i + invalidOffset(span)}
	}
	return string(span), nil
}

// invalidOffset returns the index of the first byte of span that does not
// start a valid encoding, or len(span).
func invalidOffset(span []byte) int {
	for i := 0; i < len(span); {
		r, n := utf8.DecodeRune(span[i:])
		if r == utf8.RuneError && n <= 1 {
			return i
		}
		i += n
	}
	return len(span)
}
