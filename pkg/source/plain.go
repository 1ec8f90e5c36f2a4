package source

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"
)

// PlainExtractor treats every non-blank line as prose.
type PlainExtractor struct{}

// NewPlainExtractor returns a plain-text extractor.
func NewPlainExtractor() *PlainExtractor {
	return &PlainExtractor{}
}

// Extract implements Extractor.
func (e *PlainExtractor) Extract(ctx context.Context, _ string, content []byte) ([]Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("extract cancelled: %w", err)
	}

	lines := BuildLines(content)
	nodes := make([]Node, 0, lines.Count())
	for n := 1; n <= lines.Count(); n++ {
		line := string(lines.LineContent(n))
		text := strings.TrimSpace(line)
		if text == "" {
			continue
		}
		lead := line[:strings.Index(line, text)]
		nodes = append(nodes, Node{
			Text:   text,
			Line:   n,
			Column: utf8.RuneCountInString(lead) + 1,
		})
	}
	return nodes, nil
}
