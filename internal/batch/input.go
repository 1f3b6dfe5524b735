package batch

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Pattern is one non-blank input line. Line is 1-based.
type Pattern struct {
	Line int
	Text string
}

// ReadPatterns reads one pattern per line, trimming surrounding whitespace
// and skipping blank lines.
func ReadPatterns(r io.Reader) ([]Pattern, error) {
	var patterns []Pattern
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		patterns = append(patterns, Pattern{Line: line, Text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read patterns: %w", err)
	}
	return patterns, nil
}
