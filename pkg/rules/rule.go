// Package rules loads the NG-word dictionary: an ordered list of regular
// expressions paired with the message reported when they match.
package rules

import "regexp"

// Rule is a compiled pattern and the message shown when it matches.
type Rule struct {
	// Pattern is the compiled regular expression.
	Pattern *regexp.Regexp

	// Message is the human-readable correction, e.g. "ユーザー".
	Message string

	// Line is the 1-based line of the rule file this rule was read from.
	Line int
}

// Source returns the pattern as it was written in the rule file.
func (r Rule) Source() string {
	if r.Pattern == nil {
		return ""
	}
	return r.Pattern.String()
}

// Set is an ordered rule dictionary. Order follows the rule file and
// determines report order when several rules match the same text.
type Set struct {
	// Source names where the rules came from (a path, or "<bundled>").
	Source string

	// Rules holds the rules in file order.
	Rules []Rule
}

// Len returns the number of rules, treating a nil Set as empty.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Rules)
}

// All returns the rules in file order.
func (s *Set) All() []Rule {
	if s == nil {
		return nil
	}
	return s.Rules
}
