package lsp

import (
	"unicode/utf16"

	"github.com/dhamidi/byteparse/grammar/kv"
	"github.com/dhamidi/byteparse/parse"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Diagnostics converts kv issues found in text to LSP diagnostics.
func Diagnostics(text string, issues []kv.Issue) []protocol.Diagnostic {
	diagnostics := make([]protocol.Diagnostic, 0, len(issues))
	source := lsName
	for _, issue := range issues {
		severity := protocol.DiagnosticSeverityWarning
		if issue.Severity == kv.SeverityError {
			severity = protocol.DiagnosticSeverityError
		}
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: positionAt(text, issue.Start),
				End:   positionAt(text, issue.End),
			},
			Severity: &severity,
			Source:   &source,
			Message:  issue.Message,
		})
	}
	return diagnostics
}

// positionAt maps a byte offset to a line and UTF-16 column. Bytes that are
// not valid UTF-8 count as one column each.
func positionAt(text string, offset int) protocol.Position {
	if offset > len(text) {
		offset = len(text)
	}
	p := parse.NewBytesParser([]byte(text[:offset]))

	var pos protocol.Position
	for !p.Done() {
		r, ok := p.NextRune()
		switch {
		case !ok:
			p.Advance()
			pos.Character++
		case r == '\n':
			pos.Line++
			pos.Character = 0
		default:
			pos.Character += protocol.UInteger(utf16.RuneLen(r))
		}
	}
	return pos
}
