package source

import (
	"sort"
	"unicode/utf8"
)

// LineInfo holds the byte range of a single line.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index where the line terminator begins.
	// For a last line without terminator it equals EndOffset.
	NewlineStart int

	// EndOffset is the byte index just after the terminator (or end of content).
	EndOffset int
}

// Lines indexes content by line for offset to line/column conversion.
type Lines struct {
	content []byte
	lines   []LineInfo
}

// BuildLines indexes content. Both LF and CRLF terminators are handled.
func BuildLines(content []byte) *Lines {
	idx := &Lines{content: content}
	if len(content) == 0 {
		return idx
	}

	lineStart := 0
	for i, c := range content {
		if c != '\n' {
			continue
		}
		newlineStart := i
		if i > 0 && content[i-1] == '\r' {
			newlineStart = i - 1
		}
		idx.lines = append(idx.lines, LineInfo{
			StartOffset:  lineStart,
			NewlineStart: newlineStart,
			EndOffset:    i + 1,
		})
		lineStart = i + 1
	}

	if lineStart < len(content) {
		idx.lines = append(idx.lines, LineInfo{
			StartOffset:  lineStart,
			NewlineStart: len(content),
			EndOffset:    len(content),
		})
	}

	return idx
}

// Count returns the number of lines.
func (l *Lines) Count() int {
	return len(l.lines)
}

// LineAt converts a byte offset to a 1-based line and 1-based rune column.
// It returns (0, 0) if the offset is out of range.
func (l *Lines) LineAt(offset int) (int, int) {
	if offset < 0 || offset > len(l.content) || len(l.lines) == 0 {
		return 0, 0
	}

	lineIdx := sort.Search(len(l.lines), func(i int) bool {
		return l.lines[i].EndOffset > offset
	})
	if lineIdx >= len(l.lines) {
		lineIdx = len(l.lines) - 1
	}

	info := l.lines[lineIdx]
	if offset < info.StartOffset {
		return 0, 0
	}

	return lineIdx + 1, utf8.RuneCount(l.content[info.StartOffset:offset]) + 1
}

// LineContent returns a 1-based line without its terminator, or nil if out of range.
func (l *Lines) LineContent(line int) []byte {
	if line < 1 || line > len(l.lines) {
		return nil
	}
	info := l.lines[line-1]
	return l.content[info.StartOffset:info.NewlineStart]
}
