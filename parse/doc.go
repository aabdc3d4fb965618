// Package parse provides cursors for hand-written parsers over an in-memory
// buffer.
//
// A parser is a position over an immutable buffer. Recording remembers the
// offset where a token started so the consumed span can be returned as a
// view into the original buffer, without copying. Consumers such as
// ConsumeWhile and ConsumeUntil advance the position as long as a byte
// predicate holds, and Split hands out bounded segments that are parsed
// independently.
//
//	p := parse.MustStrParser("key: value\nother: more")
//	for line := range p.Split('\n').All() {
//		key := line.Record()
//		key.ConsumeUntilByte(':')
//		fmt.Println(key.MustStr())
//	}
//
// BytesParser works on raw bytes. StrParser works on UTF-8 text and moves
// one scalar value at a time, so every position it exposes sits on a
// scalar boundary.
//
// Parsing only moves forward. The one way back is Restore with a
// Checkpoint taken earlier; grammars that need to retry an alternative
// save a checkpoint first.
//
// The buffer must not be modified while a parser or any view returned from
// it is in use.
package parse
