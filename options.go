package calculator

import (
	"strconv"
	"unicode"
)

// Option is an option for evaluation.
type Option interface {
	evalOption(evalctx) evalctx
}

type eofopt struct {
	ws string
}

// evalctx holds general data for one evaluation.
type evalctx struct {
	// wseof is a string containing the whitespace characters that trigger an
	// EOF token from the lexer.
	wseof string
}

// StopOn tells the evaluator to treat a list of characters as ending the
// expression. Each rune must be a whitespace codepoint. Whitespace does not
// end an expression where an operand is expected, i.e. at the beginning of an
// expression or following an operator.
//
// StopOn overrides the effect of any previous StopOn in the options. With no
// arguments, StopOn produces the default termination behavior, which is to
// evaluate to EOF.
func StopOn(chars ...rune) Option {
	v := make([]rune, 0, len(chars))
	have := func(r rune) bool {
		for _, c := range v {
			if r == c {
				return true
			}
		}
		return false
	}
	for _, r := range chars {
		if !unicode.IsSpace(r) {
			panic("calculator: cannot stop on " + strconv.QuoteRune(r))
		}
		if have(r) {
			continue
		}
		v = append(v, r)
	}
	return &eofopt{ws: string(v)}
}

func (o *eofopt) evalOption(p evalctx) evalctx {
	p.wseof = o.ws
	return p
}
