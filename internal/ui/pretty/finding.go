package pretty

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/yaklabco/termlint/pkg/config"
	"github.com/yaklabco/termlint/pkg/validator"
)

// contextIndent aligns source context under the finding line.
const contextIndent = "        "

// FormatFinding formats a single finding for terminal output.
func (s *Styles) FormatFinding(f validator.Finding, sev config.Severity, showContext bool, sourceLine string) string {
	var builder strings.Builder

	// Location: path:line:col
	location := s.FilePath.Render(f.Location.File) + s.Location.Render(formatLineCol(f.Location))

	builder.WriteString(fmt.Sprintf("  %s  %s  %s %s  %s\n",
		location,
		s.FormatSeverity(sev),
		s.Message.Render(f.Message),
		s.Match.Render("("+f.Display()+")"),
		s.Check.Render("["+f.Check.String()+"]"),
	))

	if showContext && sourceLine != "" {
		builder.WriteString(s.FormatSourceContext(sourceLine, f.Location.Column, f.Match))
	}

	return builder.String()
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev config.Severity) string {
	switch sev {
	case config.SeverityError:
		return s.Error.Render("error")
	case config.SeverityWarning:
		return s.Warning.Render("warning")
	case config.SeverityInfo:
		return s.Info.Render("info")
	default:
		return string(sev)
	}
}

// FormatSourceContext formats the source line and underlines the match.
// Column counts runes; the marker is positioned by display width so that it
// lines up beneath full-width text.
func (s *Styles) FormatSourceContext(line string, column int, match string) string {
	var builder strings.Builder

	line = strings.TrimRight(line, "\r\n")
	builder.WriteString(contextIndent + s.SourceLine.Render(line) + "\n")

	if column <= 0 {
		return builder.String()
	}

	runes := []rune(line)
	if column-1 > len(runes) {
		return builder.String()
	}

	padding := runewidth.StringWidth(string(runes[:column-1]))
	marker := "^"
	if w := runewidth.StringWidth(match); w > 1 {
		marker += strings.Repeat("~", w-1)
	}
	builder.WriteString(contextIndent + strings.Repeat(" ", padding) + s.Caret.Render(marker) + "\n")

	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, findingCount int) string {
	header := s.FilePath.Render(path)
	switch {
	case findingCount == 1:
		header += s.Dim.Render(" (1 finding)")
	case findingCount > 1:
		header += s.Dim.Render(fmt.Sprintf(" (%d findings)", findingCount))
	}
	return header
}

func formatLineCol(loc validator.Location) string {
	switch {
	case loc.Line <= 0:
		return ""
	case loc.Column <= 0:
		return fmt.Sprintf(":%d", loc.Line)
	default:
		return fmt.Sprintf(":%d:%d", loc.Line, loc.Column)
	}
}
