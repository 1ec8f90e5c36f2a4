// Package config defines core configuration types for termlint.
// These types are pure data structures; discovery and layering live in internal/configloader.
package config

import (
	"github.com/yaklabco/termlint/pkg/rules"
	"github.com/yaklabco/termlint/pkg/validator"
)

// Severity represents the severity level of a finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// LogLevel is the level at which findings are logged.
type LogLevel string

const (
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// IsValid returns true if the log level is one of info, warn or error.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogLevelInfo, LogLevelWarn, LogLevelError:
		return true
	default:
		return false
	}
}

// Severity maps the log level to the severity reported for findings.
// Unknown levels map to warning.
func (l LogLevel) Severity() Severity {
	switch l {
	case LogLevelInfo:
		return SeverityInfo
	case LogLevelError:
		return SeverityError
	default:
		return SeverityWarning
	}
}

// OutputFormat specifies the output format for findings.
type OutputFormat string

const (
	FormatLog     OutputFormat = "log"
	FormatText    OutputFormat = "text"
	FormatJSON    OutputFormat = "json"
	FormatSARIF   OutputFormat = "sarif"
	FormatSummary OutputFormat = "summary"
)

// Flavor specifies the Markdown flavor to use for parsing.
type Flavor string

const (
	FlavorCommonMark Flavor = "commonmark"
	FlavorGFM        Flavor = "gfm"
)

// DefaultExtensions are the file extensions linted when none are configured.
func DefaultExtensions() []string {
	return []string{".md", ".markdown", ".rst", ".txt"}
}

// Config is the root configuration structure for termlint.
type Config struct {
	// Per-check toggles. A nil toggle means enabled.
	HalfWidthKatakana   *bool `mapstructure:"half_width_katakana" yaml:"half_width_katakana,omitempty"`
	Parenthesis         *bool `mapstructure:"parenthesis" yaml:"parenthesis,omitempty"`
	QuestionExclamation *bool `mapstructure:"question_exclamation" yaml:"question_exclamation,omitempty"`
	PunctuationMark     *bool `mapstructure:"punctuation_mark" yaml:"punctuation_mark,omitempty"`
	SpaceInNumberOfUnit *bool `mapstructure:"space_in_number_of_unit" yaml:"space_in_number_of_unit,omitempty"`
	NGWords             *bool `mapstructure:"ng_words" yaml:"ng_words,omitempty"`

	// NGWordRuleFile is the rule dictionary path. Empty selects the bundled dictionary.
	NGWordRuleFile string `mapstructure:"ng_word_rule_file" yaml:"ng_word_rule_file,omitempty"`

	// LogLevel is the level findings are logged at ("info", "warn" or "error").
	LogLevel LogLevel `mapstructure:"loglevel" yaml:"loglevel,omitempty"`

	// Units lists the unit tokens for the number/unit spacing check.
	// Nil selects the default list; an empty list accepts any ASCII letter run.
	Units []string `mapstructure:"units" yaml:"units,omitempty"`

	// Flavor specifies the Markdown flavor ("commonmark" or "gfm").
	Flavor Flavor `mapstructure:"flavor" yaml:"flavor,omitempty"`

	// Extensions lists the file extensions collected when walking directories.
	Extensions []string `mapstructure:"extensions" yaml:"extensions,omitempty"`

	// Ignore contains glob patterns for files to ignore.
	Ignore []string `mapstructure:"ignore" yaml:"ignore,omitempty"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format.
	Format OutputFormat `mapstructure:"-" yaml:"-"`

	// Jobs specifies the number of parallel workers.
	Jobs int `mapstructure:"-" yaml:"-"`

	// Strict makes any finding fail the run.
	Strict bool `mapstructure:"-" yaml:"-"`

	// NoContext suppresses source lines in text output.
	NoContext bool `mapstructure:"-" yaml:"-"`

	// EnableChecks contains check names to explicitly enable.
	EnableChecks []string `mapstructure:"-" yaml:"-"`

	// DisableChecks contains check names to explicitly disable.
	DisableChecks []string `mapstructure:"-" yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		LogLevel:   LogLevelWarn,
		Flavor:     FlavorCommonMark,
		Extensions: DefaultExtensions(),
		Format:     FormatLog,
		Jobs:       0, // 0 means use NumCPU
	}
}

// toggle returns the field holding the toggle for a check.
func (c *Config) toggle(check validator.Check) **bool {
	switch check {
	case validator.HalfWidthKatakana:
		return &c.HalfWidthKatakana
	case validator.Parenthesis:
		return &c.Parenthesis
	case validator.QuestionExclamation:
		return &c.QuestionExclamation
	case validator.PunctuationMark:
		return &c.PunctuationMark
	case validator.SpaceInNumberOfUnit:
		return &c.SpaceInNumberOfUnit
	case validator.NGWords:
		return &c.NGWords
	default:
		return nil
	}
}

// CheckEnabled reports whether a check is on. Unset toggles are on.
func (c *Config) CheckEnabled(check validator.Check) bool {
	field := c.toggle(check)
	if field == nil {
		return false
	}
	return *field == nil || **field
}

// SetCheck sets the toggle for a check.
func (c *Config) SetCheck(check validator.Check, enabled bool) {
	if field := c.toggle(check); field != nil {
		*field = &enabled
	}
}

// ApplyCheckOverrides applies EnableChecks then DisableChecks. Names that do not
// name a check are returned.
func (c *Config) ApplyCheckOverrides() []string {
	var unknown []string
	apply := func(names []string, enabled bool) {
		for _, name := range names {
			check, ok := validator.ParseCheck(name)
			if !ok {
				unknown = append(unknown, name)
				continue
			}
			c.SetCheck(check, enabled)
		}
	}
	apply(c.EnableChecks, true)
	apply(c.DisableChecks, false)
	return unknown
}

// EffectiveUnits returns the unit list passed to the validator.
func (c *Config) EffectiveUnits() []string {
	if c.Units == nil {
		return validator.DefaultUnits()
	}
	return c.Units
}

// ValidatorConfig builds the validator configuration, attaching the loaded rule set.
func (c *Config) ValidatorConfig(set *rules.Set) validator.Config {
	cfg := validator.Config{
		Units: c.EffectiveUnits(),
		Rules: set,
	}
	for _, check := range validator.Checks() {
		cfg = cfg.SetEnabled(check, c.CheckEnabled(check))
	}
	return cfg
}
