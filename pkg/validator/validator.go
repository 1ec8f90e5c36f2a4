// Package validator runs the built-in term checks and the NG-word dictionary
// against a piece of prose and returns the findings in a fixed order.
package validator

import (
	"fmt"
	"unicode/utf8"
)

// hit is a match of a single check inside the validated text.
type hit struct {
	start, end int // byte offsets into the text

	// arg is substituted into the check's message template.
	arg string

	// message replaces the template when set.
	message string

	// pattern is reported as the matched-pattern display when set.
	pattern string
}

// checkDef pairs a check with its matcher and message template.
type checkDef struct {
	check    Check
	template string
	find     func(v *Validator, text string) []hit
}

// checkTable is iterated in order for every validated text.
//
//nolint:gochecknoglobals // Read-only dispatch table.
var checkTable = [...]checkDef{
	{HalfWidthKatakana, "half-width katakana found, use %q", findHalfWidthKatakana},
	{Parenthesis, "half-width parentheses enclose full-width text, use %q", findParenthesis},
	{QuestionExclamation, "half-width mark after full-width text, use %q", findQuestionExclamation},
	{PunctuationMark, "ASCII punctuation mark in full-width text, use %q", findPunctuationMark},
	{SpaceInNumberOfUnit, "number and unit need a space, use %q", findNumberOfUnit},
	{NGWords, "%s", findNGWords},
}

// Validator applies a fixed configuration to any number of texts.
// It is immutable after New and safe for concurrent use.
type Validator struct {
	cfg   Config
	units map[string]struct{}
}

// New prepares a Validator for cfg.
func New(cfg Config) *Validator {
	v := &Validator{cfg: cfg}
	if len(cfg.Units) > 0 {
		v.units = make(map[string]struct{}, len(cfg.Units))
		for _, u := range cfg.Units {
			v.units[u] = struct{}{}
		}
	}
	return v
}

// Config returns the configuration the validator was built with.
func (v *Validator) Config() Config {
	return v.cfg
}

// Validate runs every enabled check over text. Findings are ordered by check,
// then by position (or by rule order for the NG-word dictionary).
func (v *Validator) Validate(text string, loc Location) []Finding {
	if text == "" {
		return nil
	}

	var findings []Finding
	for _, def := range checkTable {
		if !v.cfg.Enabled(def.check) {
			continue
		}
		for _, h := range def.find(v, text) {
			findings = append(findings, def.finding(text, loc, h))
		}
	}
	return findings
}

// Validate is a convenience for New(cfg).Validate(text, loc).
func Validate(text string, loc Location, cfg Config) []Finding {
	return New(cfg).Validate(text, loc)
}

func (d checkDef) finding(text string, loc Location, h hit) Finding {
	msg := h.message
	if msg == "" {
		msg = fmt.Sprintf(d.template, h.arg)
	}

	if loc.Column > 0 {
		loc.Column += utf8.RuneCountInString(text[:h.start])
	}

	return Finding{
		Location: loc,
		Check:    d.check,
		Message:  msg,
		Match:    text[h.start:h.end],
		Pattern:  h.pattern,
	}
}
