package source

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// tabWidth is the reStructuredText tab stop.
const tabWidth = 8

//nolint:gochecknoglobals // Compiled once, read-only.
var (
	directivePattern     = regexp.MustCompile(`^\.\.\s+([A-Za-z0-9_.:+-]+?)::(?:\s+(.*))?$`)
	fieldPattern         = regexp.MustCompile(`^:[^:\s][^:]*:`)
	inlineLiteralPattern = regexp.MustCompile("``[^`]+``")
)

// proseDirectives have bodies made of ordinary paragraphs. The bodies of all
// other directives, comments and targets are skipped.
//
//nolint:gochecknoglobals // Read-only lookup table.
var proseDirectives = map[string]bool{
	"admonition":     true,
	"attention":      true,
	"caution":        true,
	"danger":         true,
	"deprecated":     true,
	"error":          true,
	"hint":           true,
	"important":      true,
	"note":           true,
	"rubric":         true,
	"seealso":        true,
	"sidebar":        true,
	"tip":            true,
	"topic":          true,
	"versionadded":   true,
	"versionchanged": true,
	"warning":        true,
}

// RestExtractor extracts prose from reStructuredText. It skips literal blocks
// introduced by "::", comments, non-prose directives such as code-block and
// todo, section adornments, directive options and inline literals.
type RestExtractor struct{}

// NewRestExtractor returns a reStructuredText extractor.
func NewRestExtractor() *RestExtractor {
	return &RestExtractor{}
}

// restState tracks the block the scanner is in. An indent of -1 means inactive.
type restState struct {
	// skipIndent: lines indented deeper than this belong to a skipped block.
	skipIndent int

	// literalIndent: set after a line ending in "::"; a following deeper
	// indented block is literal.
	literalIndent int

	// optionIndent: directive option lines deeper than this are skipped.
	optionIndent int
}

// Extract implements Extractor.
func (e *RestExtractor) Extract(ctx context.Context, path string, content []byte) ([]Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("extract cancelled: %w", err)
	}

	state := restState{skipIndent: -1, literalIndent: -1, optionIndent: -1}

	var nodes []Node
	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 4096), len(content)+1)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r")
		nodes = append(nodes, state.scan(line, lineNum)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", path, err)
	}

	return nodes, nil
}

func (s *restState) scan(line string, lineNum int) []Node {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil
	}
	indent := indentWidth(line)

	if s.skipIndent >= 0 {
		if indent > s.skipIndent {
			return nil
		}
		s.skipIndent = -1
	}

	if s.literalIndent >= 0 {
		base := s.literalIndent
		s.literalIndent = -1
		if indent > base {
			s.skipIndent = base
			return nil
		}
	}

	if s.optionIndent >= 0 {
		if indent > s.optionIndent && fieldPattern.MatchString(trimmed) {
			return nil
		}
		s.optionIndent = -1
	}

	if isAdornment(trimmed) {
		return nil
	}

	if trimmed == ".." || strings.HasPrefix(trimmed, ".. ") {
		return s.explicitMarkup(line, trimmed, indent, lineNum)
	}

	text := trimmed
	if strings.HasSuffix(text, "::") {
		s.literalIndent = indent
		switch {
		case text == "::":
			return nil
		case strings.HasSuffix(text, " ::"):
			text = strings.TrimSpace(strings.TrimSuffix(text, "::"))
		default:
			text = strings.TrimSuffix(text, ":")
		}
	}

	return splitInlineLiterals(line, strings.Index(line, trimmed), text, lineNum)
}

// explicitMarkup handles a line starting with "..".
func (s *restState) explicitMarkup(line, trimmed string, indent, lineNum int) []Node {
	match := directivePattern.FindStringSubmatch(trimmed)
	if match == nil || !proseDirectives[strings.ToLower(match[1])] {
		s.skipIndent = indent
		return nil
	}

	s.optionIndent = indent
	arg := strings.TrimSpace(match[2])
	if arg == "" {
		return nil
	}

	return splitInlineLiterals(line, strings.LastIndex(line, arg), arg, lineNum)
}

// splitInlineLiterals emits text (found at byte offset start of line) as
// nodes, leaving out inline literal spans.
func splitInlineLiterals(line string, start int, text string, lineNum int) []Node {
	var nodes []Node
	emit := func(from, to int) {
		segment := text[from:to]
		trimmedLeft := strings.TrimLeft(segment, " \t")
		segment = strings.TrimRight(trimmedLeft, " \t")
		if segment == "" {
			return
		}
		offset := start + from + (to - from - len(trimmedLeft))
		nodes = append(nodes, Node{
			Text:   segment,
			Line:   lineNum,
			Column: utf8.RuneCountInString(line[:offset]) + 1,
		})
	}

	pos := 0
	for _, loc := range inlineLiteralPattern.FindAllStringIndex(text, -1) {
		emit(pos, loc[0])
		pos = loc[1]
	}
	emit(pos, len(text))

	return nodes
}

// indentWidth measures leading whitespace with tabs expanded.
func indentWidth(line string) int {
	width := 0
	for _, r := range line {
		switch r {
		case ' ':
			width++
		case '\t':
			width += tabWidth - width%tabWidth
		default:
			return width
		}
	}
	return width
}

// isAdornment reports whether s is a section title under/overline or a
// transition: a repeated punctuation character.
func isAdornment(s string) bool {
	if len(s) < 2 {
		return false
	}
	c := s[0]
	if !strings.ContainsRune("=-~^\"'`#*+_<>", rune(c)) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] != c {
			return false
		}
	}
	return true
}
