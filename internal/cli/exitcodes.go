package cli

import (
	"errors"
	"io/fs"

	"github.com/yaklabco/termlint/internal/configloader"
	"github.com/yaklabco/termlint/pkg/rules"
	"github.com/yaklabco/termlint/pkg/runner"
)

// Exit codes for termlint.
const (
	// ExitSuccess indicates successful execution with no failing findings.
	ExitSuccess = 0

	// ExitFindings indicates validation completed with failing findings.
	ExitFindings = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration or rule file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

var (
	// ErrLintIssuesFound is returned when findings fail the run.
	ErrLintIssuesFound = errors.New("findings reported")

	// ErrConfig marks errors raised while loading configuration.
	ErrConfig = errors.New("configuration error")

	// ErrUsage marks invalid flags, arguments or commands.
	ErrUsage = errors.New("invalid usage")

	// ErrFilesFailed is returned when one or more files could not be read or parsed.
	ErrFilesFailed = errors.New("some files could not be validated")
)

// ExitCodeFromResult determines the exit code based on result and strict mode.
// Findings fail the run when reported at error severity, or at any severity
// in strict mode.
func ExitCodeFromResult(result *runner.Result, strict bool) int {
	if result == nil {
		return ExitSuccess
	}

	if result.HasFailures() {
		return ExitFindings
	}

	if strict && result.HasFindings() {
		return ExitFindings
	}

	return ExitSuccess
}

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var (
		validationErr *configloader.ValidationError
		ruleConfigErr *rules.ConfigError
		ruleParseErr  *rules.ParseError
		pathErr       *fs.PathError
	)

	switch {
	case errors.Is(err, ErrUsage):
		return ExitInvalidUsage
	case errors.Is(err, ErrConfig),
		errors.As(err, &validationErr),
		errors.As(err, &ruleConfigErr),
		errors.As(err, &ruleParseErr):
		return ExitConfigError
	case errors.Is(err, ErrFilesFailed), errors.As(err, &pathErr):
		return ExitIOError
	case errors.Is(err, ErrLintIssuesFound):
		return ExitFindings
	default:
		return ExitInternalError
	}
}
