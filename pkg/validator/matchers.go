package validator

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Halfwidth katakana and halfwidth CJK punctuation (U+FF61..U+FF9F).
const (
	halfKanaFirst = '\uFF61'
	halfKanaLast  = '\uFF9F'
)

//nolint:gochecknoglobals // Compiled once, read-only.
var (
	parenPattern    = regexp.MustCompile(`\(([^)]*)\)`)
	questionPattern = regexp.MustCompile(`[\p{Hiragana}\p{Katakana}\p{Han}ー]([!?]+)`)
	periodPattern   = regexp.MustCompile(`[^\d,.](\.)(?:[ \n]|$)`)
	commaPattern    = regexp.MustCompile(`[^,.](,)(?:[ \n]|$)`)
	numberPattern   = regexp.MustCompile(`(\d+)([A-Za-z]+)`)

	// narrow measures display width with East Asian ambiguous characters
	// counted as narrow, independent of the process locale.
	narrow = func() *runewidth.Condition {
		cond := runewidth.NewCondition()
		cond.EastAsianWidth = false
		return cond
	}()
)

// containsWide reports whether s has any double-width character.
func containsWide(s string) bool {
	for _, r := range s {
		if narrow.RuneWidth(r) == 2 {
			return true
		}
	}
	return false
}

func isHalfWidthKatakana(r rune) bool {
	return r >= halfKanaFirst && r <= halfKanaLast
}

func findHalfWidthKatakana(_ *Validator, text string) []hit {
	var hits []hit
	start := -1
	for i, r := range text {
		switch {
		case isHalfWidthKatakana(r) && start < 0:
			start = i
		case !isHalfWidthKatakana(r) && start >= 0:
			hits = append(hits, kanaHit(text, start, i))
			start = -1
		}
	}
	if start >= 0 {
		hits = append(hits, kanaHit(text, start, len(text)))
	}
	return hits
}

func kanaHit(text string, start, end int) hit {
	return hit{start: start, end: end, arg: norm.NFKC.String(text[start:end])}
}

func findParenthesis(_ *Validator, text string) []hit {
	var hits []hit
	for _, m := range parenPattern.FindAllStringSubmatchIndex(text, -1) {
		inner := text[m[2]:m[3]]
		if containsWide(inner) {
			hits = append(hits, hit{start: m[0], end: m[1], arg: "（" + inner + "）"})
		}
	}
	return hits
}

func findQuestionExclamation(_ *Validator, text string) []hit {
	if !containsWide(text) {
		return nil
	}
	var hits []hit
	for _, m := range questionPattern.FindAllStringSubmatchIndex(text, -1) {
		mark := text[m[2]:m[3]]
		hits = append(hits, hit{start: m[2], end: m[3], arg: width.Widen.String(mark)})
	}
	return hits
}

func findPunctuationMark(_ *Validator, text string) []hit {
	if !containsWide(text) {
		return nil
	}
	var hits []hit
	for _, m := range periodPattern.FindAllStringSubmatchIndex(text, -1) {
		hits = append(hits, hit{start: m[2], end: m[3], arg: "。"})
	}
	for _, m := range commaPattern.FindAllStringSubmatchIndex(text, -1) {
		hits = append(hits, hit{start: m[2], end: m[3], arg: "、"})
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].start < hits[j].start })
	return hits
}

func findNumberOfUnit(v *Validator, text string) []hit {
	var hits []hit
	for _, m := range numberPattern.FindAllStringSubmatchIndex(text, -1) {
		if m[0] > 0 {
			prev, _ := utf8.DecodeLastRuneInString(text[:m[0]])
			if isNumberPrefix(prev) {
				continue
			}
		}
		if m[1] < len(text) {
			next, _ := utf8.DecodeRuneInString(text[m[1]:])
			if next >= '0' && next <= '9' {
				continue
			}
		}

		unit := text[m[4]:m[5]]
		if v.units != nil {
			if _, ok := v.units[unit]; !ok {
				continue
			}
		} else if strings.EqualFold(unit, "html") {
			// Status pages such as 404html are names, not quantities.
			continue
		}

		hits = append(hits, hit{start: m[0], end: m[1], arg: text[m[2]:m[3]] + " " + unit})
	}
	return hits
}

// isNumberPrefix reports whether r glued before a number makes it part of an
// identifier, version, expression or percentage rather than a quantity.
func isNumberPrefix(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	default:
		return strings.ContainsRune("_.%=()+-", r)
	}
}

func findNGWords(v *Validator, text string) []hit {
	var hits []hit
	for _, rule := range v.cfg.Rules.All() {
		loc := rule.Pattern.FindStringIndex(text)
		if loc == nil {
			continue
		}
		hits = append(hits, hit{
			start:   loc[0],
			end:     loc[1],
			message: rule.Message,
			pattern: rule.Source(),
		})
	}
	return hits
}
