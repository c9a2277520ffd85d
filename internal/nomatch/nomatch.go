// Package nomatch reads suppression comments in word lists.
//
// A suppression is a ';' comment starting with "nomatch", optionally
// followed by a colon and a comma-separated list of rule names. Without a
// list it applies to every rule.
//
//	; nomatch:final-vowel     before the first word: the whole file
//	cup ; nomatch:cu-coda     after a word: that line only
//	; nomatch                 on its own line: the next word
package nomatch

import (
	"fmt"
	"strings"
)

const nomatchPrefix = "nomatch"

// Manager holds the suppressions of one word list.
type Manager struct {
	scopes []scope
}

// scope represents a range of lines where a suppression applies.
type scope struct {
	rules map[string]struct{}
	start int
	end   int
}

// ParseComments finds the suppressions in the contents of a word list.
// Lines are numbered from 1. Malformed suppressions are skipped.
func ParseComments(contents string) *Manager {
	lines := strings.Split(contents, "\n")
	firstWord := len(lines) + 1
	for i, line := range lines {
		if word, _ := splitComment(line); strings.TrimSpace(word) != "" {
			firstWord = i + 1
			break
		}
	}

	var m Manager
	for i, line := range lines {
		word, comment := splitComment(line)
		rules, err := parseDirective(comment)
		if err != nil {
			continue
		}
		lineNo := i + 1

		s := scope{rules: rules, start: lineNo, end: lineNo}
		switch {
		case lineNo < firstWord:
			s.start, s.end = 1, len(lines)
		case strings.TrimSpace(word) == "":
			// a standalone directive covers the next word line
			s.end = nextWordLine(lines, i+1)
		}
		m.scopes = append(m.scopes, s)
	}
	return &m
}

// splitComment cuts line at the first ';' outside a quoted phoneme.
func splitComment(line string) (word, comment string) {
	quoted, escaped := false, false
	for i, r := range line {
		switch {
		case escaped:
			escaped = false
		case quoted && r == '\\':
			escaped = true
		case r == '\'':
			quoted = !quoted
		case r == ';' && !quoted:
			return line[:i], line[i+1:]
		}
	}
	return line, ""
}

func parseDirective(comment string) (map[string]struct{}, error) {
	text := strings.TrimSpace(comment)
	if !strings.HasPrefix(text, nomatchPrefix) {
		return nil, fmt.Errorf("not a nomatch comment")
	}

	rest := text[len(nomatchPrefix):]
	if rest == "" {
		return map[string]struct{}{}, nil
	}
	if rest[0] != ':' {
		return nil, fmt.Errorf("invalid nomatch comment format")
	}
	rest = strings.TrimSpace(rest[1:])
	if rest == "" {
		return nil, fmt.Errorf("invalid nomatch comment: no rules specified after colon")
	}
	return parseRuleNames(rest), nil
}

// parseRuleNames parses the rule list of a directive.
func parseRuleNames(text string) map[string]struct{} {
	rules := make(map[string]struct{})
	for _, rule := range strings.Split(text, ",") {
		rule = strings.TrimSpace(rule)
		if rule != "" {
			rules[rule] = struct{}{}
		}
	}
	return rules
}

func nextWordLine(lines []string, from int) int {
	for i := from; i < len(lines); i++ {
		if word, _ := splitComment(lines[i]); strings.TrimSpace(word) != "" {
			return i + 1
		}
	}
	return from
}

// IsSuppressed reports whether rule is suppressed on line.
func (m *Manager) IsSuppressed(line int, rule string) bool {
	if m == nil {
		return false
	}
	for _, s := range m.scopes {
		if line < s.start || line > s.end {
			continue
		}
		// no rule list means every rule
		if len(s.rules) == 0 {
			return true
		}
		if _, ok := s.rules[rule]; ok {
			return true
		}
	}
	return false
}

// Len returns the number of suppressions found.
func (m *Manager) Len() int {
	if m == nil {
		return 0
	}
	return len(m.scopes)
}
