package runner

import (
	"github.com/yaklabco/termlint/pkg/config"
	"github.com/yaklabco/termlint/pkg/source"
	"github.com/yaklabco/termlint/pkg/validator"
)

// FileOutcome is the result of validating one file.
type FileOutcome struct {
	// Path is the absolute file path that was processed.
	Path string

	// DisplayPath is Path relative to the working directory when the file
	// lies beneath it. Findings carry this path.
	DisplayPath string

	// Kind is the detected document kind.
	Kind source.Kind

	// Nodes is the number of prose nodes validated.
	Nodes int

	// Findings are in node order, and within a node in check order.
	Findings []validator.Finding

	// Lines indexes the file content for source context in reports.
	Lines *source.Lines

	// Error is set if the file could not be read or parsed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully processed.
	FilesProcessed int

	// FilesErrored is the number of files that encountered errors.
	FilesErrored int

	// FilesWithFindings is the number of files with at least one finding.
	FilesWithFindings int

	// NodesChecked is the number of prose nodes validated.
	NodesChecked int

	// FindingsTotal is the total number of findings across all files.
	FindingsTotal int

	// FindingsByCheck maps check names to counts.
	FindingsByCheck map[string]int

	// FindingsBySeverity maps severity levels to counts.
	FindingsBySeverity map[string]int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file.
	// Files are ordered deterministically (by path).
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats

	// Severity is the severity of every finding in this run.
	Severity config.Severity
}

// HasFailures reports whether any findings with error severity occurred.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FindingsBySeverity[string(config.SeverityError)] > 0
}

// HasFindings reports whether any findings were produced.
func (r *Result) HasFindings() bool {
	if r == nil {
		return false
	}
	return r.Stats.FindingsTotal > 0
}

// HasErrors reports whether any file could not be processed.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// Findings returns all findings of the run in file order.
func (r *Result) Findings() []validator.Finding {
	if r == nil {
		return nil
	}
	all := make([]validator.Finding, 0, r.Stats.FindingsTotal)
	for _, f := range r.Files {
		all = append(all, f.Findings...)
	}
	return all
}

// newStats creates a new Stats with initialized maps.
func newStats() Stats {
	return Stats{
		FindingsByCheck:    make(map[string]int),
		FindingsBySeverity: make(map[string]int),
	}
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	r.Stats.FilesProcessed++
	r.Stats.NodesChecked += outcome.Nodes

	count := len(outcome.Findings)
	if count == 0 {
		return
	}

	r.Stats.FilesWithFindings++
	r.Stats.FindingsTotal += count
	r.Stats.FindingsBySeverity[string(r.Severity)] += count
	for _, f := range outcome.Findings {
		r.Stats.FindingsByCheck[f.Check.String()]++
	}
}
