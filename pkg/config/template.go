package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yaklabco/termlint/pkg/validator"
)

// commentWrapWidth is the maximum width for wrapped comments in templates.
const commentWrapWidth = 70

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full documents every check and option.
	// If false, generates a minimal template.
	Full bool

	// Format is the output format: "yaml" or "json".
	Format string
}

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Format == "json" {
		return templateToJSON()
	}
	if opts.Full {
		return generateFullTemplate(), nil
	}
	return generateMinimalTemplate(), nil
}

// generateMinimalTemplate creates a minimal commented template.
func generateMinimalTemplate() []byte {
	var buf bytes.Buffer

	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString(`

# Rule dictionary: one "<regex><TAB><message>" per line.
# Leave empty to use the bundled dictionary.
# ng_word_rule_file: docs/ngwords.dic

# Level findings are logged at: info, warn, or error
loglevel: warn

# Built-in checks (all enabled by default)
# half_width_katakana: true
# parenthesis: true
# question_exclamation: true
# punctuation_mark: true
# space_in_number_of_unit: true
# ng_words: true

# File patterns to ignore (glob patterns)
# ignore:
#   - "_build/**"
#   - "vendor/**"
`)

	return buf.Bytes()
}

// generateFullTemplate creates a full template with all checks documented.
func generateFullTemplate() []byte {
	var buf bytes.Buffer

	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString(`
#
# This template includes every option with its default value.
# Uncomment and modify settings as needed.

# Rule dictionary: one "<regex><TAB><message>" per line.
# Relative paths are resolved against this file's directory.
# Leave empty to use the bundled dictionary.
ng_word_rule_file: ""

# Level findings are logged at: info, warn, or error.
# Findings are reported with the matching severity (info, warning, error);
# error severity fails the run.
loglevel: warn

# Markdown flavor: commonmark or gfm
flavor: commonmark

# File extensions collected when linting directories
extensions:
`)
	for _, ext := range DefaultExtensions() {
		fmt.Fprintf(&buf, "  - %s\n", ext)
	}

	buf.WriteString(`
# File patterns to ignore (glob patterns)
ignore:
  - "_build/**"
  - "vendor/**"
  - "node_modules/**"

# Unit tokens for space_in_number_of_unit.
# Omit to use the built-in list; use [] to treat any letter run as a unit.
# units:
`)
	for _, unit := range validator.DefaultUnits() {
		fmt.Fprintf(&buf, "#   - %s\n", unit)
	}

	buf.WriteString("\n# Built-in checks\n")
	for _, check := range validator.Checks() {
		fmt.Fprintf(&buf, "\n# %s\n", wrapComment(check.Description(), commentWrapWidth))
		fmt.Fprintf(&buf, "%s: true\n", check)
	}

	return buf.Bytes()
}

// wrapComment wraps a comment to fit within maxWidth characters.
func wrapComment(text string, maxWidth int) string {
	if len(text) <= maxWidth {
		return text
	}

	var lines []string
	words := strings.Fields(text)
	currentLine := ""

	for _, word := range words {
		switch {
		case currentLine == "":
			currentLine = word
		case len(currentLine)+1+len(word) <= maxWidth:
			currentLine += " " + word
		default:
			lines = append(lines, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return strings.Join(lines, "\n# ")
}

// templateToJSON renders the default configuration as JSON.
// YAML is a superset of JSON, so the result loads like any other config file.
func templateToJSON() ([]byte, error) {
	cfg := map[string]any{
		"ng_word_rule_file": "",
		"loglevel":          string(LogLevelWarn),
		"flavor":            string(FlavorCommonMark),
		"extensions":        DefaultExtensions(),
		"ignore":            []string{"_build/**", "vendor/**", "node_modules/**"},
	}
	for _, check := range validator.Checks() {
		cfg[check.String()] = true
	}

	jsonBytes, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal JSON: %w", err)
	}

	return append(jsonBytes, '\n'), nil
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# termlint configuration
# See: https://github.com/yaklabco/termlint`
}
