package lsp

import (
	"fmt"
	"strings"
	"unicode/utf16"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"regextree/internal/batch"
	"regextree/internal/regex"
)

// Diagnose parses every non-blank line of text and returns one error
// diagnostic, spanning the whole line, per pattern that fails.
func Diagnose(text string) []protocol.Diagnostic {
	diags := []protocol.Diagnostic{}

	patterns, err := batch.ReadPatterns(strings.NewReader(text))
	if err != nil {
		log.Warningf("diagnose: %v", err)
	}
	lines := strings.Split(text, "\n")

	severity := protocol.DiagnosticSeverityError
	source := lsName
	for _, p := range patterns {
		if _, err := regex.Parse(p.Text); err != nil {
			diags = append(diags, protocol.Diagnostic{
				Range:    lineRange(p.Line-1, lines[p.Line-1]),
				Severity: &severity,
				Source:   &source,
				Message:  err.Error(),
			})
		}
	}
	return diags
}

// HoverText describes the pattern on the given 0-based line.
func HoverText(text string, line int) (string, bool) {
	lines := strings.Split(text, "\n")
	if line < 0 || line >= len(lines) {
		return "", false
	}
	pattern := strings.TrimSpace(lines[line])
	if pattern == "" {
		return "", false
	}

	res, err := regex.Parse(pattern)
	if err != nil {
		return "**error:** " + err.Error(), true
	}
	return fmt.Sprintf("```\ninfix:   %s\npostfix: %s\ntree:    %s\n```",
		res.Desugared, res.Postfix.Join(" "), res.Root), true
}

// Character offsets in LSP positions count UTF-16 code units.
func lineRange(line int, content string) protocol.Range {
	content = strings.TrimSuffix(content, "\r")
	width := len(utf16.Encode([]rune(content)))
	return protocol.Range{
		Start: protocol.Position{Line: protocol.UInteger(line), Character: 0},
		End:   protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(width)},
	}
}
