package parse

// Predicate reports whether a byte belongs to the run being scanned. In
// text mode it is called with the leading byte of each scalar value, so
// ASCII predicates never match inside a multi-byte sequence.
type Predicate func(byte) bool

// Is matches exactly b.
func Is(b byte) Predicate {
	return func(c byte) bool { return c == b }
}

// IsNot matches every byte except b.
func IsNot(b byte) Predicate {
	return func(c byte) bool { return c != b }
}

// IsAnyOf matches any byte contained in set.
func IsAnyOf(set string) Predicate {
	var table [256]bool
	for i := 0; i < len(set); i++ {
		table[set[i]] = true
	}
	return func(c byte) bool { return table[c] }
}

// Not inverts pred.
func Not(pred Predicate) Predicate {
	return func(c byte) bool { return !pred(c) }
}

func IsDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func IsHexDigit(c byte) bool {
	return IsDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func IsLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func IsAlphaNumeric(c byte) bool {
	return IsLetter(c) || IsDigit(c)
}

// IsSpace matches ASCII whitespace: space, tab, newline, vertical tab, form
// feed and carriage return.
func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
