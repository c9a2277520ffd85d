package internal

import (
	"errors"
	"fmt"

	"github.com/gnoswap-labs/phonomatch/internal/inventory"
	"github.com/gnoswap-labs/phonomatch/internal/pattern"
	"github.com/gnoswap-labs/phonomatch/internal/symbol"
	tt "github.com/gnoswap-labs/phonomatch/internal/types"
)

var (
	ErrInvalidPattern = errors.New("invalid pattern")
	ErrUnknownName    = errors.New("unknown name")
)

// CompilePattern turns a pattern written as data into a pattern tree over
// the inventory's canonical symbols.
func CompilePattern(inv *inventory.Inventory, spec tt.PatternSpec) (pattern.Pattern, error) {
	set := 0
	if spec.Terms != nil {
		set++
	}
	if spec.Class != "" {
		set++
	}
	if spec.And != nil {
		set++
	}
	if spec.Or != nil {
		set++
	}
	if set != 1 {
		return nil, fmt.Errorf("%w: exactly one of terms, class, and, or must be set, found %d", ErrInvalidPattern, set)
	}

	switch {
	case spec.Terms != nil:
		seq := make([]symbol.Terminal, 0, len(spec.Terms))
		for _, name := range spec.Terms {
			t, ok := inv.Terminal(name)
			if !ok {
				return nil, fmt.Errorf("%w: phoneme %q", ErrUnknownName, name)
			}
			seq = append(seq, t)
		}
		return pattern.TermsOf(seq...), nil

	case spec.Class != "":
		class, ok := inv.Class(spec.Class)
		if !ok {
			return nil, fmt.Errorf(`%w: class \%s`, ErrUnknownName, spec.Class)
		}
		return pattern.ClassOf(class), nil

	case spec.And != nil:
		children, err := compileChildren(inv, "and", spec.And)
		if err != nil {
			return nil, err
		}
		return pattern.Seq(children...), nil

	default:
		children, err := compileChildren(inv, "or", spec.Or)
		if err != nil {
			return nil, err
		}
		return pattern.Alt(children...), nil
	}
}

func compileChildren(inv *inventory.Inventory, op string, specs []tt.PatternSpec) ([]pattern.Pattern, error) {
	if len(specs) < 2 {
		return nil, fmt.Errorf("%w: %s needs at least two patterns, found %d", ErrInvalidPattern, op, len(specs))
	}
	children := make([]pattern.Pattern, 0, len(specs))
	for i, spec := range specs {
		child, err := CompilePattern(inv, spec)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", op, i, err)
		}
		children = append(children, child)
	}
	return children, nil
}
