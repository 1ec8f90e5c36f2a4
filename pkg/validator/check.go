package validator

// Check identifies one of the built-in validations. The numeric order is the
// order in which checks run and in which their findings are reported.
type Check int

const (
	HalfWidthKatakana Check = iota
	Parenthesis
	QuestionExclamation
	PunctuationMark
	SpaceInNumberOfUnit
	NGWords
)

//nolint:gochecknoglobals // Read-only lookup table.
var checkNames = [...]string{
	HalfWidthKatakana:   "half_width_katakana",
	Parenthesis:         "parenthesis",
	QuestionExclamation: "question_exclamation",
	PunctuationMark:     "punctuation_mark",
	SpaceInNumberOfUnit: "space_in_number_of_unit",
	NGWords:             "ng_words",
}

//nolint:gochecknoglobals // Read-only lookup table.
var checkDescriptions = [...]string{
	HalfWidthKatakana:   "Warns when text contains half-width katakana.",
	Parenthesis:         "Warns when half-width parentheses enclose full-width text.",
	QuestionExclamation: "Warns on half-width \"?\" or \"!\" following Japanese text.",
	PunctuationMark:     "Warns on ASCII \",\" or \".\" ending a clause in full-width text.",
	SpaceInNumberOfUnit: "Warns when a number and its unit are not separated by a space, e.g. \"12Mbps\".",
	NGWords:             "Warns when text matches an entry of the NG-word dictionary.",
}

// Checks returns every check in report order.
func Checks() []Check {
	return []Check{
		HalfWidthKatakana,
		Parenthesis,
		QuestionExclamation,
		PunctuationMark,
		SpaceInNumberOfUnit,
		NGWords,
	}
}

// String returns the configuration name of the check.
func (c Check) String() string {
	if c < 0 || int(c) >= len(checkNames) {
		return "unknown"
	}
	return checkNames[c]
}

// Description returns a one-line description of the check.
func (c Check) Description() string {
	if c < 0 || int(c) >= len(checkDescriptions) {
		return ""
	}
	return checkDescriptions[c]
}

// ParseCheck resolves a check from its configuration name.
func ParseCheck(name string) (Check, bool) {
	for _, c := range Checks() {
		if c.String() == name {
			return c, true
		}
	}
	return 0, false
}
