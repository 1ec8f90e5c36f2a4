package pretty_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/termlint/internal/ui/pretty"
	"github.com/yaklabco/termlint/pkg/config"
	"github.com/yaklabco/termlint/pkg/validator"
)

func sampleFinding() validator.Finding {
	return validator.Finding{
		Location: validator.Location{File: "docs/guide.md", Line: 3, Column: 4},
		Check:    validator.NGWords,
		Message:  "ユーザー",
		Match:    "ユーザ",
		Pattern:  "ユーザ(?:[^ー]|$)",
	}
}

func TestFormatFinding_Basic(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatFinding(sampleFinding(), config.SeverityWarning, false, "")

	assert.Contains(t, result, "docs/guide.md:3:4")
	assert.Contains(t, result, "warning")
	assert.Contains(t, result, "ユーザー")
	assert.Contains(t, result, "(ユーザ(?:[^ー]|$))")
	assert.Contains(t, result, "[ng_words]")
	assert.Equal(t, 1, strings.Count(result, "\n"))
}

func TestFormatFinding_WithContext(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatFinding(sampleFinding(), config.SeverityError, true, "本文 ユーザ を参照\n")

	lines := strings.Split(strings.TrimRight(result, "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "error")
	assert.Contains(t, lines[1], "本文 ユーザ を参照")
	assert.Contains(t, lines[2], "^")
}

func TestFormatFinding_UnknownLine(t *testing.T) {
	styles := pretty.NewStyles(false)
	f := sampleFinding()
	f.Location = validator.Location{File: "notes.txt"}

	result := styles.FormatFinding(f, config.SeverityInfo, true, "")

	assert.Contains(t, result, "notes.txt")
	assert.NotContains(t, result, "notes.txt:")
}

func TestFormatSeverity_AllLevels(t *testing.T) {
	styles := pretty.NewStyles(false)

	tests := []struct {
		severity config.Severity
		expected string
	}{
		{config.SeverityError, "error"},
		{config.SeverityWarning, "warning"},
		{config.SeverityInfo, "info"},
		{config.Severity("custom"), "custom"},
	}

	for _, tt := range tests {
		t.Run(string(tt.severity), func(t *testing.T) {
			assert.Equal(t, tt.expected, styles.FormatSeverity(tt.severity))
		})
	}
}

func TestFormatSourceContext(t *testing.T) {
	styles := pretty.NewStyles(false)

	tests := []struct {
		name   string
		line   string
		column int
		match  string
		marker string
	}{
		{
			name:   "ascii",
			line:   "hello world",
			column: 7,
			match:  "world",
			marker: "        " + "      " + "^~~~~",
		},
		{
			name:   "wide prefix is measured in cells",
			line:   "本文(テスト)",
			column: 3,
			match:  "(テスト)",
			marker: "        " + "    " + "^~~~~~~",
		},
		{
			name:   "single cell match",
			line:   "abc?",
			column: 4,
			match:  "?",
			marker: "        " + "   " + "^",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := styles.FormatSourceContext(tt.line, tt.column, tt.match)
			lines := strings.Split(strings.TrimRight(result, "\n"), "\n")
			assert.Len(t, lines, 2)
			assert.Equal(t, "        "+tt.line, lines[0])
			assert.Equal(t, tt.marker, lines[1])
		})
	}
}

func TestFormatSourceContext_NoMarker(t *testing.T) {
	styles := pretty.NewStyles(false)

	assert.Equal(t, "        abc\n", styles.FormatSourceContext("abc", 0, "a"))
	assert.Equal(t, "        abc\n", styles.FormatSourceContext("abc", 10, "a"))
}

func TestFormatFileHeader(t *testing.T) {
	styles := pretty.NewStyles(false)

	assert.Equal(t, "a.md", styles.FormatFileHeader("a.md", 0))
	assert.Equal(t, "a.md (1 finding)", styles.FormatFileHeader("a.md", 1))
	assert.Equal(t, "a.md (3 findings)", styles.FormatFileHeader("a.md", 3))
}
