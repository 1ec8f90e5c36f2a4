package reporter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/yaklabco/termlint/pkg/config"
	"github.com/yaklabco/termlint/pkg/runner"
	"github.com/yaklabco/termlint/pkg/validator"
)

// SARIF version used by this reporter.
const sarifVersion = "2.1.0"

// SARIF schema URI.
const sarifSchemaURI = "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json"

const (
	sarifToolName = "termlint"
	sarifToolURI  = "https://github.com/yaklabco/termlint"
)

// SARIFOutput represents the root SARIF document.
type SARIFOutput struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []SARIFRun `json:"runs"`
}

// SARIFRun represents a single analysis run.
type SARIFRun struct {
	Tool        SARIFTool         `json:"tool"`
	Results     []SARIFResult     `json:"results"`
	Invocations []SARIFInvocation `json:"invocations,omitempty"`
}

// SARIFTool describes the analysis tool.
type SARIFTool struct {
	Driver SARIFDriver `json:"driver"`
}

// SARIFDriver contains tool metadata and rules.
type SARIFDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version"`
	InformationURI string      `json:"informationUri"`
	Rules          []SARIFRule `json:"rules"`
}

// SARIFRule describes one check.
type SARIFRule struct {
	ID               string               `json:"id"`
	Name             string               `json:"name,omitempty"`
	ShortDescription SARIFMultiformatText `json:"shortDescription"`
	DefaultConfig    *SARIFRuleConfig     `json:"defaultConfiguration,omitempty"`
}

// SARIFMultiformatText contains text in multiple formats.
type SARIFMultiformatText struct {
	Text string `json:"text"`
}

// SARIFRuleConfig contains rule configuration.
type SARIFRuleConfig struct {
	Level string `json:"level"`
}

// SARIFResult represents a single finding.
type SARIFResult struct {
	RuleID     string          `json:"ruleId"`
	RuleIndex  int             `json:"ruleIndex"`
	Level      string          `json:"level"`
	Message    SARIFMessage    `json:"message"`
	Locations  []SARIFLocation `json:"locations"`
	Properties map[string]any  `json:"properties,omitempty"`
}

// SARIFMessage contains the result message.
type SARIFMessage struct {
	Text string `json:"text"`
}

// SARIFLocation describes a code location.
type SARIFLocation struct {
	PhysicalLocation SARIFPhysicalLocation `json:"physicalLocation"`
}

// SARIFPhysicalLocation contains file path and region.
type SARIFPhysicalLocation struct {
	ArtifactLocation SARIFArtifactLocation `json:"artifactLocation"`
	Region           *SARIFRegion          `json:"region,omitempty"`
}

// SARIFArtifactLocation contains the file URI.
type SARIFArtifactLocation struct {
	URI string `json:"uri"`
}

// SARIFRegion describes the affected text region.
type SARIFRegion struct {
	StartLine   int `json:"startLine"`
	StartColumn int `json:"startColumn,omitempty"`
}

// SARIFInvocation reports files that could not be processed.
type SARIFInvocation struct {
	ExecutionSuccessful        bool                `json:"executionSuccessful"`
	ToolExecutionNotifications []SARIFNotification `json:"toolExecutionNotifications,omitempty"`
}

// SARIFNotification is a tool execution notification.
type SARIFNotification struct {
	Level     string          `json:"level"`
	Message   SARIFMessage    `json:"message"`
	Locations []SARIFLocation `json:"locations,omitempty"`
}

// SARIFReporter formats results as SARIF.
type SARIFReporter struct {
	opts Options
	out  io.Writer
}

// NewSARIFReporter creates a new SARIF reporter.
func NewSARIFReporter(opts Options) *SARIFReporter {
	return &SARIFReporter{
		opts: opts,
		out:  opts.Writer,
	}
}

// Report implements Reporter.
func (r *SARIFReporter) Report(_ context.Context, result *runner.Result) (int, error) {
	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.out)
	encoder.SetEscapeHTML(false)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode SARIF: %w", err)
	}

	return len(output.Runs[0].Results), nil
}

func (r *SARIFReporter) buildOutput(result *runner.Result) *SARIFOutput {
	severity := config.SeverityWarning
	if result != nil && result.Severity != "" {
		severity = result.Severity
	}
	level := severityToSARIFLevel(severity)

	version := r.opts.ToolVersion
	if version == "" {
		version = "dev"
	}

	checks := validator.Checks()
	rules := make([]SARIFRule, 0, len(checks))
	for _, c := range checks {
		rules = append(rules, SARIFRule{
			ID:               c.String(),
			Name:             c.String(),
			ShortDescription: SARIFMultiformatText{Text: c.Description()},
			DefaultConfig:    &SARIFRuleConfig{Level: level},
		})
	}

	run := SARIFRun{
		Tool: SARIFTool{
			Driver: SARIFDriver{
				Name:           sarifToolName,
				Version:        version,
				InformationURI: sarifToolURI,
				Rules:          rules,
			},
		},
		Results: make([]SARIFResult, 0),
	}

	if result != nil {
		var notifications []SARIFNotification
		for _, file := range result.Files {
			if file.Error != nil {
				notifications = append(notifications, SARIFNotification{
					Level:   "error",
					Message: SARIFMessage{Text: file.Error.Error()},
					Locations: []SARIFLocation{{
						PhysicalLocation: SARIFPhysicalLocation{
							ArtifactLocation: SARIFArtifactLocation{URI: displayPath(file)},
						},
					}},
				})
				continue
			}

			for _, f := range file.Findings {
				run.Results = append(run.Results, newSARIFResult(f, level))
			}
		}

		if len(notifications) > 0 {
			run.Invocations = []SARIFInvocation{{
				ExecutionSuccessful:        true,
				ToolExecutionNotifications: notifications,
			}}
		}
	}

	return &SARIFOutput{
		Schema:  sarifSchemaURI,
		Version: sarifVersion,
		Runs:    []SARIFRun{run},
	}
}

func newSARIFResult(f validator.Finding, level string) SARIFResult {
	res := SARIFResult{
		RuleID:    f.Check.String(),
		RuleIndex: int(f.Check),
		Level:     level,
		Message:   SARIFMessage{Text: f.Message + " (" + f.Display() + ")"},
		Locations: []SARIFLocation{{
			PhysicalLocation: SARIFPhysicalLocation{
				ArtifactLocation: SARIFArtifactLocation{URI: f.Location.File},
			},
		}},
		Properties: map[string]any{"match": f.Match},
	}

	if f.Pattern != "" {
		res.Properties["pattern"] = f.Pattern
	}

	if f.Location.Line > 0 {
		res.Locations[0].PhysicalLocation.Region = &SARIFRegion{
			StartLine:   f.Location.Line,
			StartColumn: f.Location.Column,
		}
	}

	return res
}

// severityToSARIFLevel converts a finding severity to a SARIF level.
func severityToSARIFLevel(severity config.Severity) string {
	switch severity {
	case config.SeverityError:
		return "error"
	case config.SeverityWarning:
		return "warning"
	case config.SeverityInfo:
		return "note"
	default:
		return "warning"
	}
}
