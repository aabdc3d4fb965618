// Package ebnflex provides lexical scanning based on EBNF grammars.
package ebnflex

import (
	"fmt"
	"io"
	"os"
	"sort"
	"unicode"
	"unicode/utf8"

	"github.com/dhamidi/byteparse/parse"
	"golang.org/x/exp/ebnf"
)

// Position represents a location in source code.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

func (p Position) String() string {
	if p.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token represents a lexical token with its position.
type Token struct {
	Kind     string
	Literal  string
	Position Position
}

func (t Token) String() string {
	return fmt.Sprintf("%s %s %q", t.Position, t.Kind, t.Literal)
}

type memoKey struct {
	name   string
	offset int
}

type memoEntry struct {
	ok  bool
	end parse.Checkpoint
}

// Lexer tokenizes input based on an EBNF grammar. Productions whose name
// starts with an upper-case letter are tokens; the longest match wins and
// ties go to the name that sorts first.
type Lexer struct {
	grammar  ebnf.Grammar
	tokens   []string
	p        *parse.BytesParser
	filename string
	line     int
	column   int
	memo     map[memoKey]memoEntry
	visiting map[memoKey]bool
}

// NewLexer creates a lexer for the given grammar and input.
func NewLexer(grammar ebnf.Grammar, input []byte, filename string) *Lexer {
	var tokens []string
	for name, prod := range grammar {
		if prod.Expr == nil || !isTokenName(name) {
			continue
		}
		tokens = append(tokens, name)
	}
	sort.Strings(tokens)

	return &Lexer{
		grammar:  grammar,
		tokens:   tokens,
		p:        parse.NewBytesParser(input),
		filename: filename,
		line:     1,
		column:   1,
		memo:     make(map[memoKey]memoEntry),
		visiting: make(map[memoKey]bool),
	}
}

func isTokenName(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}

// LoadGrammar loads an EBNF grammar from a file.
func LoadGrammar(filename string) (ebnf.Grammar, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()

	grammar, err := ebnf.Parse(filename, f)
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}

	return grammar, nil
}

// Position returns the current position in the input.
func (l *Lexer) Position() Position {
	return Position{
		Filename: l.filename,
		Offset:   l.p.Offset(),
		Line:     l.line,
		Column:   l.column,
	}
}

// NextToken returns the next token from the input, or io.EOF once the input
// is exhausted. Input no token matches is returned as ERROR tokens, one
// UTF-8 scalar at a time, or one byte where the encoding is invalid.
func (l *Lexer) NextToken() (Token, error) {
	if l.p.Done() {
		return Token{Kind: "EOF", Position: l.Position()}, io.EOF
	}

	startPos := l.Position()
	start := l.p.Checkpoint()

	// memoized ends are only valid for one token start
	l.memo = make(map[memoKey]memoEntry)

	best := start
	bestKind := ""
	for _, name := range l.tokens {
		l.p.Restore(start)
		l.visiting = make(map[memoKey]bool)
		if l.match(l.grammar[name].Expr) && l.p.Offset() > best.Offset() {
			best = l.p.Checkpoint()
			bestKind = name
		}
	}

	l.p.Restore(start)
	rec := l.p.Record()
	kind := bestKind
	if kind == "" {
		kind = "ERROR"
		if _, ok := rec.NextRune(); !ok {
			rec.Advance()
		}
	} else {
		rec.Restore(best)
	}

	literal := rec.Slice()
	l.track(literal)
	return Token{
		Kind:     kind,
		Literal:  string(literal),
		Position: startPos,
	}, nil
}

func (l *Lexer) track(literal []byte) {
	for _, ch := range literal {
		if ch == '\n' {
			l.line++
			l.column = 1
		} else {
			l.column++
		}
	}
}

// match consumes expr at the cursor. On failure the cursor is left where it
// was.
func (l *Lexer) match(expr ebnf.Expression) bool {
	switch e := expr.(type) {
	case nil:
		return true

	case *ebnf.Token:
		return l.matchLiteral(e.String)

	case *ebnf.Range:
		return l.matchRange(e.Begin.String, e.End.String)

	case ebnf.Sequence:
		cp := l.p.Checkpoint()
		for _, item := range e {
			if !l.match(item) {
				l.p.Restore(cp)
				return false
			}
		}
		return true

	case ebnf.Alternative:
		start := l.p.Checkpoint()
		best := start
		found := false
		for _, alt := range e {
			l.p.Restore(start)
			if l.match(alt) && (!found || l.p.Offset() > best.Offset()) {
				best = l.p.Checkpoint()
				found = true
			}
		}
		l.p.Restore(best)
		return found

	case *ebnf.Repetition:
		for {
			before := l.p.Offset()
			if !l.match(e.Body) || l.p.Offset() == before {
				return true
			}
		}

	case *ebnf.Option:
		l.match(e.Body)
		return true

	case *ebnf.Group:
		return l.match(e.Body)

	case *ebnf.Name:
		return l.matchName(e.String)

	default:
		return false
	}
}

// matchName matches a named production with memoization and cycle detection.
func (l *Lexer) matchName(name string) bool {
	key := memoKey{name: name, offset: l.p.Offset()}

	if entry, ok := l.memo[key]; ok {
		if entry.ok {
			l.p.Restore(entry.end)
		}
		return entry.ok
	}

	// left recursion
	if l.visiting[key] {
		return false
	}

	prod, ok := l.grammar[name]
	if !ok || prod.Expr == nil {
		l.memo[key] = memoEntry{}
		return false
	}

	l.visiting[key] = true
	matched := l.match(prod.Expr)
	delete(l.visiting, key)

	l.memo[key] = memoEntry{ok: matched, end: l.p.Checkpoint()}
	return matched
}

func (l *Lexer) matchLiteral(literal string) bool {
	cp := l.p.Checkpoint()
	for i := 0; i < len(literal); i++ {
		if err := l.p.ExpectByte(literal[i]); err != nil {
			l.p.Restore(cp)
			return false
		}
	}
	return true
}

// matchRange matches one character between begin and end inclusive
// (e.g., "a" … "z").
func (l *Lexer) matchRange(begin, end string) bool {
	lo, n := utf8.DecodeRuneInString(begin)
	if n == 0 || n != len(begin) {
		return false
	}
	hi, n := utf8.DecodeRuneInString(end)
	if n == 0 || n != len(end) {
		return false
	}
	r, _, ok := l.p.PeekRune()
	if !ok || r < lo || r > hi {
		return false
	}
	l.p.NextRune()
	return true
}

// Tokenize reads all tokens from input.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err == io.EOF {
			tokens = append(tokens, tok)
			break
		}
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}
