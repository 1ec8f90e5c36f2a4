package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/termlint/internal/configloader"
	"github.com/yaklabco/termlint/internal/ui/pretty"
	"github.com/yaklabco/termlint/pkg/config"
	"github.com/yaklabco/termlint/pkg/rules"
	"github.com/yaklabco/termlint/pkg/validator"
)

type rulesFlags struct {
	format   string
	ruleFile string
}

const formatJSON = "json"

// checkInfo represents a built-in check in JSON output.
type checkInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Enabled     bool   `json:"enabled"`
}

// dictionaryEntry represents an NG-word rule in JSON output.
type dictionaryEntry struct {
	Line    int    `json:"line"`
	Pattern string `json:"pattern"`
	Message string `json:"message"`
}

// rulesOutput is the JSON document printed by "rules --format json".
type rulesOutput struct {
	Checks     []checkInfo       `json:"checks"`
	Dictionary string            `json:"dictionary"`
	Rules      []dictionaryEntry `json:"rules"`
}

func newRulesCommand() *cobra.Command {
	flags := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List built-in checks and dictionary rules",
		Long: `List the built-in checks with their enabled state, followed by every
entry of the NG-word dictionary in file order.

The dictionary is the one selected by configuration (ng_word_rule_file),
or the bundled dictionary when none is configured.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRules(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	cmd.Flags().StringVar(&flags.ruleFile, "rule-file", "", "NG-word dictionary to list (default: from configuration)")

	return cmd
}

func runRules(cmd *cobra.Command, flags *rulesFlags) error {
	if flags.format != "text" && flags.format != formatJSON {
		return fmt.Errorf("%w: invalid format %q: must be text or json", ErrUsage, flags.format)
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	cliCfg := &config.Config{}
	if cmd.Flags().Changed("rule-file") {
		cliCfg.NGWordRuleFile = flags.ruleFile
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	cfg := loadResult.Config

	set, err := rules.Load(cfg.NGWordRuleFile)
	if err != nil {
		return fmt.Errorf("load rules: %w", err)
	}

	output := buildRulesOutput(cfg, set)

	if flags.format == formatJSON {
		return writeRulesJSON(cmd.OutOrStdout(), output)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	return writeRulesText(cmd.OutOrStdout(), colorMode, output)
}

func buildRulesOutput(cfg *config.Config, set *rules.Set) rulesOutput {
	output := rulesOutput{
		Checks:     make([]checkInfo, 0, len(validator.Checks())),
		Dictionary: set.Source,
		Rules:      make([]dictionaryEntry, 0, set.Len()),
	}

	for _, c := range validator.Checks() {
		output.Checks = append(output.Checks, checkInfo{
			Name:        c.String(),
			Description: c.Description(),
			Enabled:     cfg.CheckEnabled(c),
		})
	}

	for _, r := range set.All() {
		output.Rules = append(output.Rules, dictionaryEntry{
			Line:    r.Line,
			Pattern: r.Source(),
			Message: r.Message,
		})
	}

	return output
}

// writeRulesJSON outputs checks and rules as a JSON document.
func writeRulesJSON(w io.Writer, output rulesOutput) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(output); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}

func writeRulesText(w io.Writer, colorMode string, output rulesOutput) error {
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, w))
	table := pretty.NewTableFormatter(styles, terminalWidth(w))

	checkRows := make([][]string, 0, len(output.Checks))
	for _, c := range output.Checks {
		state := "on"
		if !c.Enabled {
			state = "off"
		}
		checkRows = append(checkRows, []string{c.Name, state, c.Description})
	}

	ruleRows := make([][]string, 0, len(output.Rules))
	for _, r := range output.Rules {
		ruleRows = append(ruleRows, []string{strconv.Itoa(r.Line), r.Pattern, r.Message})
	}

	_, err := fmt.Fprintf(w, "%s\n%s\n%s\n%s",
		styles.SummaryTitle.Render("Checks"),
		table.FormatTable([]string{"CHECK", "STATE", "DESCRIPTION"}, checkRows),
		styles.SummaryTitle.Render(fmt.Sprintf("Dictionary: %s (%d rules)", output.Dictionary, len(output.Rules))),
		table.FormatTable([]string{"LINE", "PATTERN", "MESSAGE"}, ruleRows),
	)
	if err != nil {
		return fmt.Errorf("write rules: %w", err)
	}
	return nil
}

// terminalWidth returns the width of w when it is a terminal, or 0.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
