// Package main is the entry point for the termlint CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/termlint/internal/cli"
	"github.com/yaklabco/termlint/internal/logging"
)

// Set via ldflags at release time.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := cli.NewRootCommand(cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	})

	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, cli.ErrLintIssuesFound) {
		logging.Default().Error("command failed", logging.FieldError, err)
	}

	return cli.ExitCode(err)
}
