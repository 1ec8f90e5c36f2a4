package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/termlint/internal/logging"
	"github.com/yaklabco/termlint/pkg/config"
	"github.com/yaklabco/termlint/pkg/fsutil"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0644

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	full   bool
	format string
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new termlint configuration file",
		Long: `Create a new .termlint.yml configuration file in the current directory.
The file can be customized to turn checks on and off, select an NG-word
dictionary, and set the unit list used by the number/unit spacing check.

An existing file is only replaced with --force, or after confirmation when
running in a terminal. The replaced file is kept with a .bak suffix.

Examples:
  termlint init                      Create minimal .termlint.yml
  termlint init --full               Create full config with all checks documented
  termlint init --format json        Create .termlint.json instead
  termlint init --output custom.yml  Write to a custom file path`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return runInit(ctx, flags, cmd.InOrStdin())
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "Generate full template with all checks documented")
	cmd.Flags().StringVar(&flags.format, "format", "yaml", "Output format: yaml or json")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: .termlint.yml or .termlint.json)")

	return cmd
}

func runInit(ctx context.Context, flags *initFlags, in io.Reader) error {
	logger := logging.NewInteractive()

	if flags.format != "yaml" && flags.format != formatJSON {
		return fmt.Errorf("%w: invalid format %q: must be yaml or json", ErrUsage, flags.format)
	}

	outputPath := flags.output
	if outputPath == "" {
		if flags.format == formatJSON {
			outputPath = ".termlint.json"
		} else {
			outputPath = ".termlint.yml"
		}
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	exists := false
	if _, err := os.Stat(absPath); err == nil {
		exists = true
		switch {
		case flags.force:
			logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
		case isTerminal(in):
			ok, err := confirm(in, os.Stderr, fmt.Sprintf("%s already exists. Overwrite? [y/N] ", outputPath))
			if err != nil {
				return err
			}
			if !ok {
				logger.Info("left existing file unchanged", logging.FieldPath, outputPath)
				return nil
			}
		default:
			return fmt.Errorf("%w: file %q already exists; use --force to overwrite", ErrUsage, outputPath)
		}
	}

	content, err := config.GenerateTemplate(config.TemplateOptions{
		Full:   flags.full,
		Format: flags.format,
	})
	if err != nil {
		return fmt.Errorf("generate template: %w", err)
	}

	if exists {
		backupPath, err := fsutil.Backup(ctx, absPath)
		if err != nil {
			return fmt.Errorf("back up existing file: %w", err)
		}
		logger.Info("saved previous configuration", logging.FieldPath, backupPath)
	}

	if err := fsutil.WriteAtomic(ctx, absPath, content, configFilePermissions); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)

	if flags.full {
		logger.Info("full template documents every check")
	}

	logger.Info("run 'termlint rules' to see all checks and dictionary entries")

	return nil
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// confirm prints prompt to w and reads a yes/no answer from r. Anything but
// "y" or "yes" is a no.
func confirm(r io.Reader, w io.Writer, prompt string) (bool, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return false, fmt.Errorf("write prompt: %w", err)
	}

	answer, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && answer == "" {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, fmt.Errorf("read answer: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
