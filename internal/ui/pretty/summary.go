package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/termlint/pkg/config"
	"github.com/yaklabco/termlint/pkg/runner"
	"github.com/yaklabco/termlint/pkg/validator"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "5 findings (5 warnings) in 2 files".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.FindingsTotal == 0 {
		msg := s.Success.Render("No findings") +
			s.Dim.Render(fmt.Sprintf(" (%d %s checked)", stats.FilesProcessed, plural(stats.FilesProcessed, wordFile, wordFiles)))
		if stats.FilesErrored > 0 {
			msg += ", " + s.Failure.Render(fmt.Sprintf("%d %s failed", stats.FilesErrored, plural(stats.FilesErrored, wordFile, wordFiles)))
		}
		return msg + "\n"
	}

	var severityParts []string
	if n := stats.FindingsBySeverity[string(config.SeverityError)]; n > 0 {
		severityParts = append(severityParts, s.Error.Render(fmt.Sprintf("%d %s", n, plural(n, "error", "errors"))))
	}
	if n := stats.FindingsBySeverity[string(config.SeverityWarning)]; n > 0 {
		severityParts = append(severityParts, s.Warning.Render(fmt.Sprintf("%d %s", n, plural(n, "warning", "warnings"))))
	}
	if n := stats.FindingsBySeverity[string(config.SeverityInfo)]; n > 0 {
		severityParts = append(severityParts, s.Info.Render(fmt.Sprintf("%d info", n)))
	}

	main := fmt.Sprintf("%d %s", stats.FindingsTotal, plural(stats.FindingsTotal, "finding", "findings"))
	if len(severityParts) > 0 {
		main += " (" + strings.Join(severityParts, ", ") + ")"
	}

	parts := []string{
		main + fmt.Sprintf(" in %d %s", stats.FilesWithFindings, plural(stats.FilesWithFindings, wordFile, wordFiles)),
	}
	if stats.FilesErrored > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d %s failed", stats.FilesErrored, plural(stats.FilesErrored, wordFile, wordFiles))))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files checked:       " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesProcessed)) + "\n")
	if stats.FilesWithFindings > 0 {
		builder.WriteString("  Files with findings: " +
			s.Failure.Render(strconv.Itoa(stats.FilesWithFindings)) + "\n")
	}
	if stats.FilesErrored > 0 {
		builder.WriteString("  Files failed:        " +
			s.Failure.Render(strconv.Itoa(stats.FilesErrored)) + "\n")
	}
	builder.WriteString("  Text nodes:          " +
		s.SummaryValue.Render(strconv.Itoa(stats.NodesChecked)) + "\n")

	builder.WriteString("\n")
	builder.WriteString("  Total findings:      " +
		s.SummaryValue.Render(strconv.Itoa(stats.FindingsTotal)) + "\n")

	// Per check, in report order.
	for _, c := range validator.Checks() {
		n := stats.FindingsByCheck[c.String()]
		if n == 0 {
			continue
		}
		builder.WriteString(fmt.Sprintf("    %-24s %s\n", c.String()+":", s.SummaryValue.Render(strconv.Itoa(n))))
	}

	builder.WriteString("\n")

	switch {
	case stats.FindingsBySeverity[string(config.SeverityError)] > 0:
		builder.WriteString(s.Failure.Render("Validation failed with errors"))
	case stats.FindingsTotal > 0:
		builder.WriteString(s.Warning.Render("Validation completed with findings"))
	case stats.FilesErrored > 0:
		builder.WriteString(s.Failure.Render("Validation completed with file errors"))
	default:
		builder.WriteString(s.Success.Render("Validation passed"))
	}
	builder.WriteString("\n")

	return builder.String()
}
