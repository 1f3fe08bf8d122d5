package calculator

import (
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Precedence returns the binding strength of a binary operator. Higher binds
// tighter. Runes which are not in Operators have precedence 0.
func Precedence(op rune) int {
	switch op {
	case '+', '-':
		return 1
	case '*', '/':
		return 2
	case '^':
		return 3
	default:
		return 0
	}
}

// Apply computes a op b. Division by zero gives zero, and so does any op that
// is not in Operators.
func Apply(a, b float64, op rune) float64 {
	switch op {
	case '+':
		return a + b
	case '-':
		return a - b
	case '*':
		return a * b
	case '/':
		if b == 0 {
			return 0
		}
		return a / b
	case '^':
		return math.Pow(a, b)
	default:
		return 0
	}
}

// machine holds the two stacks for a single evaluation.
type machine struct {
	values []float64
	ops    []lexToken
}

func (m *machine) push(x float64) {
	m.values = append(m.values, x)
}

// pop removes the top value from the stack and returns it. ok is false if the
// stack is empty.
func (m *machine) pop() (x float64, ok bool) {
	if len(m.values) == 0 {
		return 0, false
	}
	x = m.values[len(m.values)-1]
	m.values = m.values[:len(m.values)-1]
	return x, true
}

// top returns the operator on top of the operator stack. Panics if there is
// none.
func (m *machine) top() lexToken {
	return m.ops[len(m.ops)-1]
}

// reduce pops the top operator and its two operands and pushes the result.
func (m *machine) reduce() error {
	tok := m.top()
	m.ops = m.ops[:len(m.ops)-1]
	b, ok := m.pop()
	if !ok {
		return &MalformedExpressionError{Col: tok.pos, Operator: tok.text}
	}
	a, ok := m.pop()
	if !ok {
		return &MalformedExpressionError{Col: tok.pos, Operator: tok.text}
	}
	op, _ := utf8.DecodeRuneInString(tok.text)
	m.push(Apply(a, b, op))
	return nil
}

// operator pushes an operator after reducing every pending operator which
// binds at least as tightly.
func (m *machine) operator(tok lexToken) error {
	op, _ := utf8.DecodeRuneInString(tok.text)
	p := Precedence(op)
	for len(m.ops) > 0 {
		t, _ := utf8.DecodeRuneInString(m.top().text)
		if Precedence(t) < p {
			break
		}
		if err := m.reduce(); err != nil {
			return err
		}
	}
	m.ops = append(m.ops, tok)
	return nil
}

// num parses a literal the lexer has accepted.
func num(s string) float64 {
	x, err := strconv.ParseFloat(s, 64)
	switch {
	case err == nil: // do nothing
	case errors.Is(err, strconv.ErrRange):
		// x is already ±Inf or ±0 as appropriate.
	default:
		panic("calculator: invalid number: " + s + " (" + err.Error() + ")")
	}
	return x
}

// Eval evaluates an expression read from src. Every operator is applied left
// to right according to its precedence, without regard to associativity, so
// 2^3^2 is 64. If the expression is missing an operand or has two operands
// with no operator between them, the error is a *MalformedExpressionError.
// An invalid literal gives a *LexError. Both unwrap to ErrMalformed.
//
// When the expression is invalid, the rest of it is consumed, up to EOF or
// the first rune given to StopOn, so that src is positioned at the start of
// the next expression.
func Eval(src io.RuneScanner, opts ...Option) (float64, error) {
	var p evalctx
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		p = opt.evalOption(p)
	}
	scan := lex(src)
	r, err := p.eval(scan)
	if err != nil {
		var ie InputError
		if errors.As(err, &ie) {
			scan.drain(p.wseof)
		}
		return 0, err
	}
	return r, nil
}

func (p *evalctx) eval(scan *lexer) (float64, error) {
	var m machine
	// Stop runes only end the expression after an operand.
	wseof := ""
	for {
		tok, err := scan.next(wseof)
		if err != nil {
			return 0, err
		}
		switch tok.kind {
		case tokenNum:
			m.push(num(tok.text))
			wseof = p.wseof
		case tokenOp:
			if err := m.operator(tok); err != nil {
				return 0, err
			}
			wseof = ""
		case tokenEOF:
			for len(m.ops) > 0 {
				if err := m.reduce(); err != nil {
					return 0, err
				}
			}
			if len(m.values) != 1 {
				return 0, &MalformedExpressionError{Col: tok.pos, Values: len(m.values)}
			}
			return m.values[0], nil
		default:
			panic("calculator: unknown token: " + tok.String())
		}
	}
}

// Evaluate is a shortcut to evaluate a string expression.
func Evaluate(expression string) (float64, error) {
	return Eval(strings.NewReader(expression))
}
