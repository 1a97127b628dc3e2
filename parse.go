package scicalc

import (
	"strconv"
	"strings"
)

// expression := term (('+' | '-') term)*
// term       := factor (('*' | '/') factor)*
// factor     := ('+' | '-') factor | power
// power      := atom ('^' factor)?
// atom       := number | '(' expression ')'

// Expr is a parsed arithmetic expression. It contains only numbers, the
// operators + - * / ^, and parentheses; function calls must be rewritten to
// literals before parsing.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// Parse parses an arithmetic expression with the default nesting limit.
func Parse(src string) (*Expr, error) {
	return parse(src, DefaultMaxDepth)
}

func parse(src string, max int) (*Expr, error) {
	p := parser{scan: lex(strings.NewReader(src)), max: max}
	n, err := p.expression()
	if err != nil {
		return nil, err
	}
	tok, err := p.scan.next()
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case tokenEOF:
		return &Expr{n: n}, nil
	case tokenClose:
		return nil, &BracketError{Col: tok.pos, Open: false}
	case tokenIdent:
		return nil, &NameError{Name: tok.text, Col: tok.pos}
	default:
		return nil, &UnexpectedError{Col: tok.pos, Text: tok.text}
	}
}

// parser is a single-use recursive-descent parser.
type parser struct {
	scan *lexer
	// depth is the current factor recursion depth, bounded by max.
	depth int
	max   int
}

func (p *parser) expression() (*node, error) {
	n, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.scan.next()
		if err != nil {
			return nil, err
		}
		if tok.kind != tokenOp || (tok.text != "+" && tok.text != "-") {
			p.scan.push(tok)
			return n, nil
		}
		rhs, err := p.term()
		if err != nil {
			return nil, err
		}
		k := nodeAdd
		if tok.text == "-" {
			k = nodeSub
		}
		n = &node{kind: k, left: n, right: rhs}
	}
}

func (p *parser) term() (*node, error) {
	n, err := p.factor()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.scan.next()
		if err != nil {
			return nil, err
		}
		if tok.kind != tokenOp || (tok.text != "*" && tok.text != "/") {
			p.scan.push(tok)
			return n, nil
		}
		rhs, err := p.factor()
		if err != nil {
			return nil, err
		}
		k := nodeMul
		if tok.text == "/" {
			k = nodeDiv
		}
		n = &node{kind: k, left: n, right: rhs}
	}
}

func (p *parser) factor() (*node, error) {
	tok, err := p.scan.next()
	if err != nil {
		return nil, err
	}
	if p.depth >= p.max {
		return nil, &DepthError{Max: p.max, Col: tok.pos}
	}
	p.depth++
	defer func() { p.depth-- }()
	if tok.kind == tokenOp && (tok.text == "+" || tok.text == "-") {
		rhs, err := p.factor()
		if err != nil {
			return nil, err
		}
		if tok.text == "-" {
			return &node{kind: nodeNeg, left: rhs}, nil
		}
		return &node{kind: nodeNop, left: rhs}, nil
	}
	p.scan.push(tok)
	return p.power()
}

func (p *parser) power() (*node, error) {
	n, err := p.atom()
	if err != nil {
		return nil, err
	}
	tok, err := p.scan.next()
	if err != nil {
		return nil, err
	}
	if tok.kind != tokenOp || tok.text != "^" {
		p.scan.push(tok)
		return n, nil
	}
	// Right-associative: the exponent is a whole factor, so 2^3^2 is
	// 2^(3^2) and 2^-1 is 2^(-1).
	rhs, err := p.factor()
	if err != nil {
		return nil, err
	}
	return &node{kind: nodePow, left: n, right: rhs}, nil
}

func (p *parser) atom() (*node, error) {
	tok, err := p.scan.next()
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case tokenNum:
		x, err := strconv.ParseFloat(tok.text, 64)
		if err != nil {
			// Only overflow can get here; the lexer checks the syntax.
			return nil, &NumberError{Text: tok.text, Col: tok.pos}
		}
		return &node{kind: nodeNum, name: tok.text, x: x}, nil
	case tokenOpen:
		n, err := p.expression()
		if err != nil {
			return nil, err
		}
		end, err := p.scan.next()
		if err != nil {
			return nil, err
		}
		switch end.kind {
		case tokenClose:
			return n, nil
		case tokenEOF:
			return nil, &BracketError{Col: tok.pos, Open: true}
		case tokenIdent:
			return nil, &NameError{Name: end.text, Col: end.pos}
		default:
			return nil, &UnexpectedError{Col: end.pos, Text: end.text}
		}
	case tokenIdent:
		return nil, &NameError{Name: tok.text, Col: tok.pos}
	case tokenEOF:
		return nil, &EmptyExpressionError{Col: tok.pos}
	case tokenClose, tokenOp:
		return nil, &EmptyExpressionError{Col: tok.pos, End: tok.text}
	default:
		panic("scicalc: unknown token: " + tok.String())
	}
}

// Eval computes the value of the expression. Division by zero follows
// floating-point semantics and yields an infinity or NaN.
func (e *Expr) Eval() float64 {
	return e.n.eval()
}

// String creates a string representation of the parsed expression, with
// alternating round and square brackets grouping each term.
func (e *Expr) String() string {
	return e.n.String()
}
