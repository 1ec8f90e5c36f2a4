package validator

import (
	"fmt"
	"strconv"
)

// Tag prefixes every warning line.
const Tag = "term_validator"

// Location identifies where a piece of text came from.
type Location struct {
	// File is the document path.
	File string

	// Line is the 1-based line number, or 0 if unknown.
	Line int

	// Column is the 1-based rune column, or 0 if unknown.
	Column int
}

// String renders the location as "file:line". An unknown line renders empty.
func (l Location) String() string {
	line := ""
	if l.Line > 0 {
		line = strconv.Itoa(l.Line)
	}
	return l.File + ":" + line
}

// Finding is one reported match of a check against a piece of text.
type Finding struct {
	Location Location

	// Check is the check that produced the finding.
	Check Check

	// Message is the human-readable description or correction.
	Message string

	// Match is the matched text.
	Match string

	// Pattern is the dictionary pattern for NG-word findings; empty otherwise.
	Pattern string
}

// Display returns the matched-pattern description shown after the message.
func (f Finding) Display() string {
	if f.Pattern != "" {
		return f.Pattern
	}
	return f.Match
}

// String renders the warning line
// "<file>:<line>: term_validator: <message> (<matched-pattern-display>)".
func (f Finding) String() string {
	return fmt.Sprintf("%s: %s: %s (%s)", f.Location, Tag, f.Message, f.Display())
}
