package render

import (
	"fmt"
	"strconv"
	"strings"
)

// EvalCondition evaluates a clause guard expression against the context.
// The grammar is intentionally tiny: identifiers (one dotted level), number,
// string and boolean literals, comparisons, equality, && || ! and
// parentheses. The evaluator can only read the supplied context; it has no
// access to ambient state and cannot call anything. Any lexing, parsing or
// evaluation problem conservatively excludes the clause: the result is false.
func EvalCondition(expr string, ctx Context) bool {
	toks, err := lexCondition(expr)
	if err != nil {
		return false
	}
	p := &condParser{toks: toks, ctx: ctx}
	v, err := p.parseOr()
	if err != nil || p.pos != len(p.toks) {
		return false
	}
	return Truthy(v)
}

type condTokenKind int

const (
	tokIdent condTokenKind = iota
	tokNumber
	tokString
	tokBool
	tokOp // == != < <= > >= && || !
	tokLParen
	tokRParen
)

type condToken struct {
	kind condTokenKind
	text string
}

func lexCondition(expr string) ([]condToken, error) {
	var toks []condToken
	i := 0
	for i < len(expr) {
		c := expr[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '(':
			toks = append(toks, condToken{tokLParen, "("})
			i++
		case c == ')':
			toks = append(toks, condToken{tokRParen, ")"})
			i++
		case c == '&' || c == '|':
			if i+1 >= len(expr) || expr[i+1] != c {
				return nil, fmt.Errorf("bad operator at %d", i)
			}
			toks = append(toks, condToken{tokOp, expr[i : i+2]})
			i += 2
		case c == '=':
			if i+1 >= len(expr) || expr[i+1] != '=' {
				return nil, fmt.Errorf("bad operator at %d", i)
			}
			toks = append(toks, condToken{tokOp, "=="})
			i += 2
		case c == '!':
			if i+1 < len(expr) && expr[i+1] == '=' {
				toks = append(toks, condToken{tokOp, "!="})
				i += 2
			} else {
				toks = append(toks, condToken{tokOp, "!"})
				i++
			}
		case c == '<' || c == '>':
			if i+1 < len(expr) && expr[i+1] == '=' {
				toks = append(toks, condToken{tokOp, expr[i : i+2]})
				i += 2
			} else {
				toks = append(toks, condToken{tokOp, string(c)})
				i++
			}
		case c == '\'' || c == '"':
			end := strings.IndexByte(expr[i+1:], c)
			if end < 0 {
				return nil, fmt.Errorf("unterminated string at %d", i)
			}
			toks = append(toks, condToken{tokString, expr[i+1 : i+1+end]})
			i += end + 2
		case c >= '0' && c <= '9':
			j := i
			for j < len(expr) && (expr[j] >= '0' && expr[j] <= '9' || expr[j] == '.') {
				j++
			}
			toks = append(toks, condToken{tokNumber, expr[i:j]})
			i = j
		case isIdentByte(c):
			j := i
			dots := 0
			for j < len(expr) && (isIdentByte(expr[j]) || expr[j] >= '0' && expr[j] <= '9' || expr[j] == '.') {
				if expr[j] == '.' {
					dots++
				}
				j++
			}
			if dots > 1 {
				return nil, fmt.Errorf("too many dots in identifier at %d", i)
			}
			word := expr[i:j]
			if word == "true" || word == "false" {
				toks = append(toks, condToken{tokBool, word})
			} else {
				toks = append(toks, condToken{tokIdent, word})
			}
			i = j
		default:
			return nil, fmt.Errorf("unexpected character %q at %d", c, i)
		}
	}
	return toks, nil
}

func isIdentByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

type condParser struct {
	toks []condToken
	pos  int
	ctx  Context
}

func (p *condParser) peek() (condToken, bool) {
	if p.pos >= len(p.toks) {
		return condToken{}, false
	}
	return p.toks[p.pos], true
}

func (p *condParser) parseOr() (any, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for {
		t, ok := p.peek()
		if !ok || t.kind != tokOp || t.text != "||" {
			return left, nil
		}
		p.pos++
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = Truthy(left) || Truthy(right)
	}
}

func (p *condParser) parseAnd() (any, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for {
		t, ok := p.peek()
		if !ok || t.kind != tokOp || t.text != "&&" {
			return left, nil
		}
		p.pos++
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = Truthy(left) && Truthy(right)
	}
}

func (p *condParser) parseNot() (any, error) {
	if t, ok := p.peek(); ok && t.kind == tokOp && t.text == "!" {
		p.pos++
		v, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return !Truthy(v), nil
	}
	return p.parseComparison()
}

func (p *condParser) parseComparison() (any, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	t, ok := p.peek()
	if !ok || t.kind != tokOp {
		return left, nil
	}
	switch t.text {
	case "==", "!=", "<", "<=", ">", ">=":
	default:
		return left, nil
	}
	p.pos++
	right, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	return compare(t.text, left, right)
}

func (p *condParser) parsePrimary() (any, error) {
	t, ok := p.peek()
	if !ok {
		return nil, fmt.Errorf("unexpected end of expression")
	}
	p.pos++
	switch t.kind {
	case tokNumber:
		n, err := strconv.ParseFloat(t.text, 64)
		if err != nil {
			return nil, err
		}
		return n, nil
	case tokString:
		return t.text, nil
	case tokBool:
		return t.text == "true", nil
	case tokIdent:
		v, ok := Lookup(p.ctx, t.text)
		if !ok {
			return nil, fmt.Errorf("unknown identifier %q", t.text)
		}
		return v, nil
	case tokLParen:
		v, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		nt, ok := p.peek()
		if !ok || nt.kind != tokRParen {
			return nil, fmt.Errorf("missing closing parenthesis")
		}
		p.pos++
		return v, nil
	default:
		return nil, fmt.Errorf("unexpected token %q", t.text)
	}
}

func compare(op string, left, right any) (any, error) {
	ln, lok := asNumber(left)
	rn, rok := asNumber(right)
	if lok && rok {
		switch op {
		case "==":
			return ln == rn, nil
		case "!=":
			return ln != rn, nil
		case "<":
			return ln < rn, nil
		case "<=":
			return ln <= rn, nil
		case ">":
			return ln > rn, nil
		case ">=":
			return ln >= rn, nil
		}
	}
	switch op {
	case "==":
		return Stringify(left) == Stringify(right), nil
	case "!=":
		return Stringify(left) != Stringify(right), nil
	}
	return nil, fmt.Errorf("ordering comparison needs numeric operands")
}

func asNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case bool:
		if t {
			return 1, true
		}
		return 0, true
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
