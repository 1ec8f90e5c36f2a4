package cli_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/termlint/internal/cli"
	"github.com/yaklabco/termlint/internal/configloader"
	"github.com/yaklabco/termlint/pkg/rules"
	"github.com/yaklabco/termlint/pkg/runner"
)

func TestExitCodeFromResult(t *testing.T) {
	t.Parallel()

	withFindings := func(severity string) *runner.Result {
		return &runner.Result{Stats: runner.Stats{
			FindingsTotal:      2,
			FindingsBySeverity: map[string]int{severity: 2},
		}}
	}

	tests := []struct {
		name   string
		result *runner.Result
		strict bool
		want   int
	}{
		{name: "nil result", result: nil, want: cli.ExitSuccess},
		{name: "no findings", result: &runner.Result{}, want: cli.ExitSuccess},
		{name: "no findings strict", result: &runner.Result{}, strict: true, want: cli.ExitSuccess},
		{name: "warnings", result: withFindings("warning"), want: cli.ExitSuccess},
		{name: "warnings strict", result: withFindings("warning"), strict: true, want: cli.ExitFindings},
		{name: "info strict", result: withFindings("info"), strict: true, want: cli.ExitFindings},
		{name: "errors", result: withFindings("error"), want: cli.ExitFindings},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, cli.ExitCodeFromResult(tt.result, tt.strict))
		})
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	pathErr := &fs.PathError{Op: "open", Path: "x.md", Err: fs.ErrNotExist}

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: cli.ExitSuccess},
		{name: "findings", err: cli.ErrLintIssuesFound, want: cli.ExitFindings},
		{name: "usage", err: fmt.Errorf("%w: unknown flag: --bogus", cli.ErrUsage), want: cli.ExitInvalidUsage},
		{name: "config sentinel", err: fmt.Errorf("%w: bad", cli.ErrConfig), want: cli.ExitConfigError},
		{name: "validation error", err: &configloader.ValidationError{Field: "loglevel"}, want: cli.ExitConfigError},
		{name: "rule file missing", err: fmt.Errorf("load rules: %w", &rules.ConfigError{Path: "ng.dic", Err: pathErr}), want: cli.ExitConfigError},
		{name: "rule parse error", err: &rules.ParseError{Path: "ng.dic", Line: 3, Err: rules.ErrEmptyMessage}, want: cli.ExitConfigError},
		{name: "path error", err: fmt.Errorf("stat: %w", pathErr), want: cli.ExitIOError},
		{name: "files failed", err: fmt.Errorf("%w: 1 of 2", cli.ErrFilesFailed), want: cli.ExitIOError},
		{name: "other", err: errors.New("boom"), want: cli.ExitInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, cli.ExitCode(tt.err))
		})
	}
}
