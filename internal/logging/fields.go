// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"
	FieldConfig     = "config"

	// Configuration fields.
	FieldFlavor   = "flavor"
	FieldJobs     = "jobs"
	FieldLogLevel = "loglevel"
	FieldRuleFile = "rule_file"
	FieldRules    = "rules"
	FieldKind     = "kind"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesProcessed  = "files_processed"
	FieldFilesWithIssues = "files_with_findings"
	FieldFindingsTotal   = "findings_total"
	FieldNodes           = "nodes"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Check fields.
	FieldCheck    = "check"
	FieldSeverity = "severity"
)
