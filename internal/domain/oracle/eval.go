// Package oracle evaluates the restricted arithmetic expressions used to
// compute expected outputs. The accepted grammar is fixed and small:
//
//	expr   := term (('+' | '-') term)*
//	term   := factor (('*' | '/') factor)*
//	factor := NUMBER | IDENT | '-' factor | '(' expr ')'
//
// Anything outside it is rejected.
package oracle

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"
)

// ErrDivisionByZero is returned when an expression divides by zero for the
// bindings at hand.
var ErrDivisionByZero = errors.New("division by zero")

// Evaluate computes the value of expr with identifiers bound by env.
func Evaluate(expr string, env map[string]float64) (float64, error) {
	toks, err := lex(expr)
	if err != nil {
		return 0, err
	}
	p := &parser{toks: toks, env: env}
	v, err := p.expr()
	if err != nil {
		return 0, err
	}
	if p.peek().kind != tokEOF {
		return 0, fmt.Errorf("unexpected %q", p.peek().text)
	}
	return v, nil
}

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	text string
	num  float64
}

func lex(src string) ([]token, error) {
	var toks []token
	rs := []rune(src)
	i := 0
	for i < len(rs) {
		r := rs[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case r == '+':
			toks = append(toks, token{kind: tokPlus, text: "+"})
			i++
		case r == '-':
			toks = append(toks, token{kind: tokMinus, text: "-"})
			i++
		case r == '*':
			toks = append(toks, token{kind: tokStar, text: "*"})
			i++
		case r == '/':
			toks = append(toks, token{kind: tokSlash, text: "/"})
			i++
		case r == '(':
			toks = append(toks, token{kind: tokLParen, text: "("})
			i++
		case r == ')':
			toks = append(toks, token{kind: tokRParen, text: ")"})
			i++
		case unicode.IsDigit(r) || r == '.':
			start := i
			for i < len(rs) && (unicode.IsDigit(rs[i]) || rs[i] == '.') {
				i++
			}
			text := string(rs[start:i])
			n, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, fmt.Errorf("malformed number %q", text)
			}
			toks = append(toks, token{kind: tokNumber, text: text, num: n})
		case unicode.IsLetter(r) || r == '_':
			start := i
			for i < len(rs) && (unicode.IsLetter(rs[i]) || unicode.IsDigit(rs[i]) || rs[i] == '_') {
				i++
			}
			toks = append(toks, token{kind: tokIdent, text: string(rs[start:i])})
		default:
			return nil, fmt.Errorf("disallowed token %q", string(r))
		}
	}
	return append(toks, token{kind: tokEOF}), nil
}

type parser struct {
	toks []token
	pos  int
	env  map[string]float64
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) expr() (float64, error) {
	v, err := p.term()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek().kind {
		case tokPlus:
			p.next()
			r, err := p.term()
			if err != nil {
				return 0, err
			}
			v += r
		case tokMinus:
			p.next()
			r, err := p.term()
			if err != nil {
				return 0, err
			}
			v -= r
		default:
			return v, nil
		}
	}
}

func (p *parser) term() (float64, error) {
	v, err := p.factor()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek().kind {
		case tokStar:
			p.next()
			r, err := p.factor()
			if err != nil {
				return 0, err
			}
			v *= r
		case tokSlash:
			p.next()
			r, err := p.factor()
			if err != nil {
				return 0, err
			}
			if r == 0 {
				return 0, ErrDivisionByZero
			}
			v /= r
		default:
			return v, nil
		}
	}
}

func (p *parser) factor() (float64, error) {
	switch t := p.next(); t.kind {
	case tokNumber:
		return t.num, nil
	case tokIdent:
		v, ok := p.env[t.text]
		if !ok {
			return 0, fmt.Errorf("unknown name %q", t.text)
		}
		return v, nil
	case tokMinus:
		v, err := p.factor()
		if err != nil {
			return 0, err
		}
		return -v, nil
	case tokLParen:
		v, err := p.expr()
		if err != nil {
			return 0, err
		}
		if p.next().kind != tokRParen {
			return 0, errors.New("missing closing parenthesis")
		}
		return v, nil
	case tokEOF:
		return 0, errors.New("unexpected end of expression")
	default:
		return 0, fmt.Errorf("unexpected %q", t.text)
	}
}
