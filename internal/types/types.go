package types

import (
	"fmt"
	"strings"

	"github.com/gnoswap-labs/phonomatch/internal/pattern"
	"github.com/gnoswap-labs/phonomatch/internal/symbol"
)

// Severity tells how a rule's hits are reported.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
	SeverityOff
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	case SeverityOff:
		return "off"
	default:
		return "unknown"
	}
}

func (s *Severity) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "error":
		*s = SeverityError
	case "warning":
		*s = SeverityWarning
	case "info":
		*s = SeverityInfo
	case "off":
		*s = SeverityOff
	default:
		return fmt.Errorf("unknown severity %q", text)
	}
	return nil
}

func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// RuleConfig is a named pattern as written in the configuration file.
type RuleConfig struct {
	Name     string      `yaml:"name"`
	Severity Severity    `yaml:"severity,omitempty"`
	Pattern  PatternSpec `yaml:"pattern"`
}

// PatternSpec is the data form of a pattern. Exactly one field is set;
// And and Or take two or more children and group to the left.
type PatternSpec struct {
	Terms []string      `yaml:"terms,omitempty"`
	Class string        `yaml:"class,omitempty"`
	And   []PatternSpec `yaml:"and,omitempty"`
	Or    []PatternSpec `yaml:"or,omitempty"`
}

// Result is one rule applied to one word.
type Result struct {
	Rule     string        `json:"rule"`
	Severity Severity      `json:"severity"`
	Filename string        `json:"filename,omitempty"`
	Line     int           `json:"line,omitempty"`
	Word     symbol.Word   `json:"-"`
	Text     string        `json:"word"`
	Match    pattern.Match `json:"match"`
}
