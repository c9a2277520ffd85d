// Package diag collects errors and warnings found while reading DSL sources.
//
// Nothing in the symbol model or the matcher reports diagnostics: a failed
// lookup or an unmatched pattern is a plain value. The layers that read
// sources turn those values into entries here.
package diag

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var (
	errorStyle   = color.New(color.FgHiRed, color.Bold)
	warningStyle = color.New(color.FgHiYellow, color.Bold)
	successStyle = color.New(color.FgHiGreen, color.Bold)
)

// ErrCompilation is wrapped by Diagnostic.Err.
var ErrCompilation = errors.New("compilation failed")

const ruleWidth = 80

// Error is one diagnostic entry.
type Error struct {
	Kind    Kind
	Warning bool
}

// Error returns the entry without colors.
func (e Error) Error() string {
	if e.Warning {
		return "warning: " + e.Kind.String()
	}
	return "error: " + e.Kind.String()
}

func (e Error) String() string {
	if e.Warning {
		return warningStyle.Sprint("Warning") + ": " + e.Kind.String()
	}
	return errorStyle.Sprint("Error") + ": " + e.Kind.String()
}

// Diagnostic accumulates entries. It is not safe for concurrent use.
type Diagnostic struct {
	errors []Error
}

func New() *Diagnostic {
	return &Diagnostic{}
}

func (d *Diagnostic) Raise(kind Kind) {
	d.errors = append(d.errors, Error{Kind: kind})
}

func (d *Diagnostic) Warn(kind Kind) {
	d.errors = append(d.errors, Error{Kind: kind, Warning: true})
}

// Errors returns every entry, warnings included, in report order.
func (d *Diagnostic) Errors() []Error {
	return append([]Error(nil), d.errors...)
}

func (d *Diagnostic) Len() int { return len(d.errors) }

// ErrorCount counts entries that are not warnings.
func (d *Diagnostic) ErrorCount() int {
	n := 0
	for _, e := range d.errors {
		if !e.Warning {
			n++
		}
	}
	return n
}

func (d *Diagnostic) HasErrors() bool { return d.ErrorCount() > 0 }

// Err returns nil unless at least one non-warning entry was raised.
func (d *Diagnostic) Err() error {
	count := d.ErrorCount()
	if count == 0 {
		return nil
	}
	var first Error
	for _, e := range d.errors {
		if !e.Warning {
			first = e
			break
		}
	}
	if count == 1 {
		return fmt.Errorf("%w: %s", ErrCompilation, first.Kind)
	}
	return fmt.Errorf("%w: %s (and %d more)", ErrCompilation, first.Kind, count-1)
}

func (d *Diagnostic) String() string {
	var builder strings.Builder
	for _, e := range d.errors {
		fmt.Fprintf(&builder, "\n%s\n\n%s\n", e.String(), strings.Repeat("=", ruleWidth))
	}

	count := d.ErrorCount()
	switch count {
	case 0:
		builder.WriteString("\n" + successStyle.Sprint("Successful compilation!"))
	case 1:
		builder.WriteString("\n" + errorStyle.Sprint("Found 1 error! Compilation failed!"))
	default:
		builder.WriteString("\n" + errorStyle.Sprintf("Found %d errors! Compilation failed!", count))
	}
	return builder.String()
}
