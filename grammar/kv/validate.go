package kv

import (
	"errors"
	"fmt"

	"github.com/dhamidi/byteparse/parse"
)

type Severity int

const (
	SeverityError Severity = iota + 1
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Issue is a problem found by Validate. Start and End are byte offsets
// into the validated text; Line is 1-based.
type Issue struct {
	Line     int
	Start    int
	End      int
	Severity Severity
	Message  string
}

func (i Issue) String() string {
	return fmt.Sprintf("%d: %s: %s", i.Line, i.Severity, i.Message)
}

// Validate is New(opts...).Validate(text).
func Validate(text string, opts ...Option) []Issue {
	return New(opts...).Validate(text)
}

// Validate reports every problem in text instead of stopping at the first.
// Lines without a separator are errors in strict mode and warnings
// otherwise. Empty keys are errors and repeated keys are warnings.
func (p *Parser) Validate(text string) []Issue {
	sp, err := parse.NewStrParser(text)
	if err != nil {
		return []Issue{invalidTextIssue(text, err)}
	}

	var issues []Issue
	seen := make(map[string]int)
	number := 0
	for seg := range sp.Split('\n').All() {
		number++
		_, end := seg.Bounds()
		l := p.scanLine(seg)
		if l.skip {
			continue
		}

		if !l.hasSeparator {
			severity := SeverityWarning
			if p.strict {
				severity = SeverityError
			}
			issues = append(issues, Issue{
				Line:     number,
				Start:    l.valueStart,
				End:      l.valueStart + len(l.value),
				Severity: severity,
				Message:  fmt.Sprintf("missing %q separator", p.separator),
			})
			continue
		}

		if l.key == "" {
			issues = append(issues, Issue{
				Line:     number,
				Start:    l.keyStart,
				End:      end,
				Severity: SeverityError,
				Message:  "empty key",
			})
			continue
		}

		if first, ok := seen[l.key]; ok {
			issues = append(issues, Issue{
				Line:     number,
				Start:    l.keyStart,
				End:      l.keyStart + len(l.key),
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("duplicate key %q (first defined on line %d)", l.key, first),
			})
			continue
		}
		seen[l.key] = number
	}
	return issues
}

func invalidTextIssue(text string, err error) Issue {
	issue := Issue{Severity: SeverityError, Message: err.Error(), Line: 1}
	var encErr *parse.EncodingError
	if errors.As(err, &encErr) {
		issue.Start = encErr.Offset
		issue.End = encErr.Offset + 1
		p := parse.NewBytesParser([]byte(text[:encErr.Offset]))
		for p.ConsumeUntilByte('\n'); !p.Done(); p.ConsumeUntilByte('\n') {
			p.Advance()
			issue.Line++
		}
	}
	return issue
}
