package validator

import "github.com/yaklabco/termlint/pkg/rules"

// Config selects which checks run. It is passed by value and never mutated.
type Config struct {
	HalfWidthKatakana   bool
	Parenthesis         bool
	QuestionExclamation bool
	PunctuationMark     bool
	SpaceInNumberOfUnit bool
	NGWords             bool

	// Units lists the unit tokens recognized by the number/unit spacing
	// check. When empty, any run of ASCII letters counts as a unit.
	Units []string

	// Rules is the NG-word dictionary. Nil disables the dictionary check.
	Rules *rules.Set
}

// DefaultConfig enables every check with the default unit list and no rules.
func DefaultConfig() Config {
	return Config{
		HalfWidthKatakana:   true,
		Parenthesis:         true,
		QuestionExclamation: true,
		PunctuationMark:     true,
		SpaceInNumberOfUnit: true,
		NGWords:             true,
		Units:               DefaultUnits(),
	}
}

// Enabled reports whether the given check is switched on.
func (c Config) Enabled(check Check) bool {
	switch check {
	case HalfWidthKatakana:
		return c.HalfWidthKatakana
	case Parenthesis:
		return c.Parenthesis
	case QuestionExclamation:
		return c.QuestionExclamation
	case PunctuationMark:
		return c.PunctuationMark
	case SpaceInNumberOfUnit:
		return c.SpaceInNumberOfUnit
	case NGWords:
		return c.NGWords
	default:
		return false
	}
}

// SetEnabled returns a copy of c with the given check switched on or off.
func (c Config) SetEnabled(check Check, on bool) Config {
	switch check {
	case HalfWidthKatakana:
		c.HalfWidthKatakana = on
	case Parenthesis:
		c.Parenthesis = on
	case QuestionExclamation:
		c.QuestionExclamation = on
	case PunctuationMark:
		c.PunctuationMark = on
	case SpaceInNumberOfUnit:
		c.SpaceInNumberOfUnit = on
	case NGWords:
		c.NGWords = on
	}
	return c
}

// DefaultUnits returns the unit tokens recognized when none are configured.
func DefaultUnits() []string {
	return []string{
		"bps", "kbps", "Kbps", "Mbps", "Gbps", "Tbps",
		"B", "KB", "kB", "MB", "GB", "TB", "PB", "KiB", "MiB", "GiB", "TiB",
		"Hz", "kHz", "MHz", "GHz",
		"ns", "us", "ms", "sec", "min",
		"px", "pt", "em", "rem", "dpi",
		"mm", "cm", "km", "mg", "kg",
		"V", "W", "kW", "mA", "mAh",
		"fps", "rpm",
	}
}
