package rules

import "fmt"

// ConfigError reports a rule file that could not be opened or read.
type ConfigError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("rule file %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying I/O error.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ParseError reports a malformed line in a rule file.
type ParseError struct {
	// Path is the rule file (or "<bundled>").
	Path string

	// Line is the 1-based line number of the offending line.
	Line int

	// Text is the offending line with its line terminator removed.
	Text string

	// Err describes what is wrong with the line.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %v: %q", e.Path, e.Line, e.Err, e.Text)
}

// Unwrap returns the underlying cause, e.g. a *syntax.Error for bad patterns.
func (e *ParseError) Unwrap() error {
	return e.Err
}
