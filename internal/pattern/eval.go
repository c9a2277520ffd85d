package pattern

import "github.com/gnoswap-labs/phonomatch/internal/symbol"

// MatchTerms evaluates p against input starting at position 0.
func MatchTerms(p Pattern, input []symbol.Terminal) Match {
	return MatchAt(p, input, 0)
}

// MatchAt evaluates p against input at offset. Offsets outside the input
// never match.
func MatchAt(p Pattern, input []symbol.Terminal, offset int) Match {
	if offset < 0 || offset > len(input) {
		return NoMatch()
	}

	switch p := p.(type) {
	case Terms:
		return matchTermsPat(p.Seq, input, offset)

	case Class:
		return matchClassPat(p.NonTerminal, input, offset)

	case And:
		return matchAndPat(p.Left, p.Right, input, offset)

	case Or:
		return matchOrPat(p.Left, p.Right, input, offset)

	default:
		return NoMatch()
	}
}

func matchTermsPat(seq, input []symbol.Terminal, offset int) Match {
	rest := input[offset:]
	if len(rest) < len(seq) {
		return NoMatch()
	}
	for i, t := range seq {
		if rest[i] != t {
			return NoMatch()
		}
	}
	return single(offset, len(seq))
}

// matchClassPat only matches when the terminal at offset is the last one of
// the whole input.
func matchClassPat(class symbol.NonTerminal, input []symbol.Terminal, offset int) Match {
	if len(input) != offset+1 || !class.Contains(input[offset]) {
		return NoMatch()
	}
	return single(offset, 1)
}

func matchAndPat(left, right Pattern, input []symbol.Terminal, offset int) Match {
	lmatch := MatchAt(left, input, offset)
	lmatch.Append(func(l Match) Match {
		return MatchAt(right, input, l.GeneralEnd())
	})
	return lmatch
}

func matchOrPat(left, right Pattern, input []symbol.Terminal, offset int) Match {
	if lmatch := MatchAt(left, input, offset); lmatch.Matched() {
		return lmatch
	}
	return MatchAt(right, input, offset)
}
