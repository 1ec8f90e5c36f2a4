package pretty_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/termlint/internal/ui/pretty"
	"github.com/yaklabco/termlint/pkg/runner"
)

func TestFormatSummary_Basic(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed:     10,
		FilesWithFindings:  3,
		NodesChecked:       42,
		FindingsTotal:      7,
		FindingsByCheck:    map[string]int{"ng_words": 5, "parenthesis": 2},
		FindingsBySeverity: map[string]int{"warning": 7},
	}

	result := styles.FormatSummary(stats)

	assert.Contains(t, result, "Summary")
	assert.Contains(t, result, "Files checked:")
	assert.Contains(t, result, "Files with findings:")
	assert.Contains(t, result, "Text nodes:")
	assert.Contains(t, result, "42")
	assert.Contains(t, result, "Total findings:")
	assert.Contains(t, result, "ng_words:")
	assert.Contains(t, result, "parenthesis:")
	assert.NotContains(t, result, "half_width_katakana:")
	assert.Contains(t, result, "Validation completed with findings")

	// Checks are listed in report order.
	assert.Less(t, strings.Index(result, "parenthesis:"), strings.Index(result, "ng_words:"))
}

func TestFormatSummary_NoFindings(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed:     5,
		FindingsByCheck:    map[string]int{},
		FindingsBySeverity: map[string]int{},
	}

	result := styles.FormatSummary(stats)

	assert.Contains(t, result, "Validation passed")
	assert.NotContains(t, result, "Files with findings:")
}

func TestFormatSummary_WithErrors(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed:     2,
		FilesWithFindings:  1,
		FindingsTotal:      1,
		FindingsByCheck:    map[string]int{"ng_words": 1},
		FindingsBySeverity: map[string]int{"error": 1},
	}

	assert.Contains(t, styles.FormatSummary(stats), "Validation failed with errors")
}

func TestFormatSummary_FileErrors(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed: 1,
		FilesErrored:   1,
	}

	result := styles.FormatSummary(stats)

	assert.Contains(t, result, "Files failed:")
	assert.Contains(t, result, "Validation completed with file errors")
}

func TestFormatSummaryOneLine_NoFindings(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatSummaryOneLine(runner.Stats{FilesProcessed: 4})

	assert.Equal(t, "No findings (4 files checked)\n", result)
}

func TestFormatSummaryOneLine_SingleFile(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatSummaryOneLine(runner.Stats{FilesProcessed: 1})

	assert.Equal(t, "No findings (1 file checked)\n", result)
}

func TestFormatSummaryOneLine_WithFindings(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed:     3,
		FilesWithFindings:  2,
		FindingsTotal:      5,
		FindingsBySeverity: map[string]int{"warning": 5},
	}

	assert.Equal(t, "5 findings (5 warnings) in 2 files\n", styles.FormatSummaryOneLine(stats))
}

func TestFormatSummaryOneLine_SingleFinding(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed:     3,
		FilesWithFindings:  1,
		FindingsTotal:      1,
		FindingsBySeverity: map[string]int{"error": 1},
		FilesErrored:       1,
	}

	assert.Equal(t, "1 finding (1 error) in 1 file, 1 file failed\n", styles.FormatSummaryOneLine(stats))
}
