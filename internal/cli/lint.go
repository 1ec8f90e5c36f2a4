package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/termlint/internal/configloader"
	"github.com/yaklabco/termlint/internal/logging"
	"github.com/yaklabco/termlint/pkg/config"
	goldmarkparser "github.com/yaklabco/termlint/pkg/parser/goldmark"
	"github.com/yaklabco/termlint/pkg/reporter"
	"github.com/yaklabco/termlint/pkg/rules"
	"github.com/yaklabco/termlint/pkg/runner"
	"github.com/yaklabco/termlint/pkg/source"
	"github.com/yaklabco/termlint/pkg/validator"
)

type lintFlags struct {
	format     string
	flavor     string
	ruleFile   string
	logLevel   string
	jobs       int
	ignore     []string
	extensions []string
	units      []string
	enable     []string
	disable    []string
	strict     bool
	noContext  bool
	compact    bool
}

func newLintCommand() *cobra.Command {
	flags := &lintFlags{}

	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Check documentation files",
		Long:  lintLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, flags)
		},
	}

	addLintFlags(cmd, flags)

	return cmd
}

const lintLongDescription = `Check documentation files for disallowed and inconsistent terms.

By default, checks all .md, .markdown, .rst and .txt files in the current
directory and subdirectories. Specify paths to check specific files or
directories.

Each finding is printed as a warning line:

  <file>:<line>: term_validator: <message> (<pattern>)

Examples:
  termlint lint                          # Check current directory
  termlint lint docs/                    # Check docs directory
  termlint lint README.md                # Check a single file
  termlint lint --rule-file ng.dic       # Use a custom NG-word dictionary
  termlint lint --disable parenthesis    # Turn off a check
  termlint lint --format sarif           # Output SARIF for code scanning
  termlint lint --strict                 # Fail on any finding`

// cliConfig builds the CLI configuration layer from flags the user set.
func cliConfig(cmd *cobra.Command, flags *lintFlags) *config.Config {
	cfg := &config.Config{}
	changed := cmd.Flags().Changed

	if changed("format") {
		cfg.Format = config.OutputFormat(flags.format)
	}
	if changed("flavor") {
		cfg.Flavor = config.Flavor(flags.flavor)
	}
	if changed("rule-file") {
		cfg.NGWordRuleFile = flags.ruleFile
	}
	if changed("loglevel") {
		cfg.LogLevel = config.LogLevel(flags.logLevel)
	}
	if changed("jobs") {
		cfg.Jobs = flags.jobs
	}
	if changed("ignore") {
		cfg.Ignore = flags.ignore
	}
	if changed("extensions") {
		cfg.Extensions = flags.extensions
	}
	if changed("units") {
		cfg.Units = flags.units
		if cfg.Units == nil {
			cfg.Units = []string{}
		}
	}

	cfg.Strict = flags.strict
	cfg.NoContext = flags.noContext
	cfg.EnableChecks = flags.enable
	cfg.DisableChecks = flags.disable

	return cfg
}

func runLint(cmd *cobra.Command, args []string, flags *lintFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.FromContext(ctx)

	// Get the explicit config path from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliConfig(cmd, flags),
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}

	cfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	logger.Debug("configuration loaded",
		logging.FieldFlavor, cfg.Flavor,
		logging.FieldLogLevel, cfg.LogLevel,
		logging.FieldRuleFile, cfg.NGWordRuleFile,
		logging.FieldJobs, cfg.Jobs,
	)

	set, err := loadRules(cfg)
	if err != nil {
		return err
	}
	logger.Debug("rules loaded", logging.FieldRules, set.Len())

	checker := validator.New(cfg.ValidatorConfig(set))

	lintRunner := runner.New(checker, map[source.Kind]source.Extractor{
		source.Markdown:         goldmarkparser.New(string(cfg.Flavor)),
		source.ReStructuredText: source.NewRestExtractor(),
		source.PlainText:        source.NewPlainExtractor(),
	})

	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   cfg.Extensions,
		ExcludeGlobs: cfg.Ignore,
		Jobs:         cfg.Jobs,
		Severity:     cfg.LogLevel.Severity(),
	}

	logger.Debug("starting run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := lintRunner.Run(ctx, runOpts)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	logger.Debug("run complete",
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldNodes, result.Stats.NodesChecked,
		logging.FieldFindingsTotal, result.Stats.FindingsTotal,
	)

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	format, err := reporter.ParseFormat(string(cfg.Format))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}

	// Warning lines are diagnostics and go to stderr; structured formats go to stdout.
	writer := cmd.OutOrStdout()
	if format == reporter.FormatLog {
		writer = cmd.ErrOrStderr()
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      writer,
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      format,
		Color:       colorMode,
		LogLevel:    cfg.LogLevel,
		ShowContext: !cfg.NoContext,
		ShowSummary: true,
		GroupByFile: true,
		Compact:     flags.compact,
		ToolVersion: toolVersion(cmd),
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	if result.HasErrors() {
		return fmt.Errorf("%w: %d of %d", ErrFilesFailed, result.Stats.FilesErrored, result.Stats.FilesDiscovered)
	}

	if ExitCodeFromResult(result, cfg.Strict) != ExitSuccess {
		return ErrLintIssuesFound
	}

	return nil
}

// loadRules loads the NG-word dictionary when the ng_words check is on.
func loadRules(cfg *config.Config) (*rules.Set, error) {
	if !cfg.CheckEnabled(validator.NGWords) {
		return &rules.Set{Source: cfg.NGWordRuleFile}, nil
	}

	set, err := rules.Load(cfg.NGWordRuleFile)
	if err != nil {
		return nil, fmt.Errorf("load rules: %w", err)
	}
	return set, nil
}

// toolVersion returns the version recorded on the root command.
func toolVersion(cmd *cobra.Command) string {
	if v := cmd.Root().Version; v != "" {
		return v
	}
	return "dev"
}

func addLintFlags(cmd *cobra.Command, flags *lintFlags) {
	cmd.Flags().StringVar(&flags.format, "format", string(config.FormatLog),
		"output format: log, text, json, sarif, summary")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.extensions, "extensions", nil,
		"file extensions to collect from directories (default .md,.markdown,.rst,.txt)")
	cmd.Flags().StringVar(&flags.flavor, "flavor", string(config.FlavorCommonMark), "Markdown flavor: commonmark, gfm")
	cmd.Flags().StringVar(&flags.ruleFile, "rule-file", "", "NG-word dictionary (default: bundled dictionary)")
	cmd.Flags().StringVar(&flags.logLevel, "loglevel", string(config.LogLevelWarn),
		"level findings are reported at: info, warn, error")
	cmd.Flags().StringSliceVar(&flags.units, "units", nil,
		"unit tokens for the number/unit spacing check (empty = any letters)")
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil, "checks to enable")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "checks to disable")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "fail on findings of any severity")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in text output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact json and sarif output")
}
