package configloader

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/yaklabco/termlint/pkg/config"
	"github.com/yaklabco/termlint/pkg/validator"
)

// envVarPrefix is the prefix for all termlint environment variables.
const envVarPrefix = "TERMLINT_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeSlice
	envTypeCheck
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
	help  string
}

// envMappings maps environment variable names (without prefix) to config fields.
// Check toggles are added from the validator's check list.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = buildEnvMappings()

func buildEnvMappings() map[string]envMapping {
	mappings := map[string]envMapping{
		"NG_WORD_RULE_FILE": {field: "ng_word_rule_file", typ: envTypeString, help: "Rule dictionary path"},
		"LOGLEVEL":          {field: "loglevel", typ: envTypeString, help: "Finding log level: info, warn, or error"},
		"FLAVOR":            {field: "flavor", typ: envTypeString, help: "Markdown flavor: commonmark or gfm"},
		"FORMAT":            {field: "format", typ: envTypeString, help: "Output format: log, text, json, or sarif"},
		"JOBS":              {field: "jobs", typ: envTypeInt, help: "Number of parallel workers (0 = auto)"},
		"STRICT":            {field: "strict", typ: envTypeBool, help: "Fail on any finding: true or false"},
		"IGNORE":            {field: "ignore", typ: envTypeSlice, help: "Comma-separated list of ignore patterns"},
		"EXTENSIONS":        {field: "extensions", typ: envTypeSlice, help: "Comma-separated list of file extensions"},
		"UNITS":             {field: "units", typ: envTypeSlice, help: "Comma-separated list of unit tokens"},
	}
	for _, check := range validator.Checks() {
		mappings[strings.ToUpper(check.String())] = envMapping{
			field: check.String(),
			typ:   envTypeCheck,
			help:  "Enable " + check.String() + ": true or false",
		}
	}
	return mappings
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with TERMLINT_ (e.g., TERMLINT_LOGLEVEL).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return &ValidationError{
				Field:   envVar,
				Value:   value,
				Message: fmt.Sprintf("invalid boolean %q (expected true/false/1/0)", value),
			}
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return &ValidationError{Field: envVar, Value: value, Message: fmt.Sprintf("invalid integer %q", value)}
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeSlice:
		return setSliceField(cfg, mapping.field, parseSliceValue(value))
	case envTypeCheck:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return &ValidationError{
				Field:   envVar,
				Value:   value,
				Message: fmt.Sprintf("invalid boolean %q (expected true/false/1/0)", value),
			}
		}
		check, ok := validator.ParseCheck(mapping.field)
		if !ok {
			return fmt.Errorf("unknown check for %s", envVar)
		}
		cfg.SetCheck(check, b)
		return nil
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "ng_word_rule_file":
		cfg.NGWordRuleFile = value
	case "loglevel":
		cfg.LogLevel = config.LogLevel(value)
	case "flavor":
		cfg.Flavor = config.Flavor(value)
	case "format":
		cfg.Format = config.OutputFormat(value)
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setBoolField sets a boolean field on the config by field path.
func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "strict":
		cfg.Strict = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

// setIntField sets an integer field on the config by field path.
func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "jobs":
		cfg.Jobs = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// setSliceField sets a slice field on the config by field path.
func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "ignore":
		cfg.Ignore = value
	case "extensions":
		cfg.Extensions = value
	case "units":
		cfg.Units = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// EnvVar describes a supported environment variable.
type EnvVar struct {
	Name        string
	Description string
}

// ListEnvVars returns all supported environment variables sorted by name.
func ListEnvVars() []EnvVar {
	vars := make([]EnvVar, 0, len(envMappings))
	for suffix, mapping := range envMappings {
		vars = append(vars, EnvVar{Name: envVarPrefix + suffix, Description: mapping.help})
	}
	sort.Slice(vars, func(i, j int) bool {
		return vars[i].Name < vars[j].Name
	})
	return vars
}
