package rules

import (
	"bufio"
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// BundledSource is the Source of the dictionary shipped with termlint.
const BundledSource = "<bundled>"

// commentMarker starts a comment line in a rule file.
const commentMarker = "#"

// maxLineSize bounds a single rule line (1 MiB).
const maxLineSize = 1024 * 1024

//go:embed default.dic
var bundled []byte

// Parse errors.
var (
	ErrMissingTab     = errors.New("expected <pattern><TAB><message>")
	ErrEmptyPattern   = errors.New("empty pattern")
	ErrEmptyMessage   = errors.New("empty message")
	ErrInvalidPattern = errors.New("invalid pattern")
)

// Load reads the rule file at path. An empty path loads the bundled dictionary.
// A missing or unreadable file yields a *ConfigError and a malformed line a
// *ParseError.
func Load(path string) (*Set, error) {
	if path == "" {
		return Default()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	defer f.Close()

	set, err := Parse(f, path)
	if err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			return nil, err
		}
		return nil, &ConfigError{Path: path, Err: err}
	}

	return set, nil
}

// Default returns the bundled dictionary.
func Default() (*Set, error) {
	return Parse(bytes.NewReader(bundled), BundledSource)
}

// Parse reads rules from r. Each rule line is <pattern><TAB><message>; both
// halves are trimmed. Blank lines and lines starting with '#' are skipped.
// Duplicate patterns are kept.
func Parse(r io.Reader, source string) (*Set, error) {
	set := &Set{Source: source}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r")
		if lineNum == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}

		rule, ok, err := parseLine(line)
		if err != nil {
			return nil, &ParseError{Path: source, Line: lineNum, Text: line, Err: err}
		}
		if !ok {
			continue
		}

		rule.Line = lineNum
		set.Rules = append(set.Rules, rule)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", source, err)
	}

	return set, nil
}

// parseLine parses one line. ok is false for blank and comment lines.
func parseLine(line string) (Rule, bool, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, commentMarker) {
		return Rule{}, false, nil
	}

	pattern, message, found := strings.Cut(line, "\t")
	if !found {
		return Rule{}, false, ErrMissingTab
	}

	pattern = strings.TrimSpace(pattern)
	message = strings.TrimSpace(message)

	if pattern == "" {
		return Rule{}, false, ErrEmptyPattern
	}
	if message == "" {
		return Rule{}, false, ErrEmptyMessage
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return Rule{}, false, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}

	return Rule{Pattern: re, Message: message}, true, nil
}
