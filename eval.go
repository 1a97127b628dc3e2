package scicalc

import (
	"math"
	"strings"

	"fortio.org/log"
)

// DefaultMaxDepth is the nesting limit used when a context sets none. It
// bounds both nested function calls and parenthesized or signed terms.
const DefaultMaxDepth = 100

// Context holds the settings for evaluating expressions. A Context is never
// modified after it is created, so it is safe to use concurrently.
type Context struct {
	prec  uint
	depth int
	match [kindCount]Match
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type (
	precopt  uint
	depthopt int
	matchopt struct {
		kind Kind
		m    Match
	}
)

func (precopt) ctxOption()  {}
func (depthopt) ctxOption() {}
func (matchopt) ctxOption() {}

// Prec sets the precision in bits of the functions computed in extended
// precision, namely exp, ln, and log. Results are always rounded to float64.
// Zero selects the default of 64.
func Prec(prec uint) ContextOption {
	return precopt(prec)
}

// MaxDepth sets the nesting limit. Values below 1 select DefaultMaxDepth.
func MaxDepth(n int) ContextOption {
	return depthopt(n)
}

// Matching selects how call sites of functions of the given kind find their
// closing parenthesis.
func Matching(kind Kind, m Match) ContextOption {
	return matchopt{kind, m}
}

// NewContext creates a new evaluation context. If no precision is given, the
// default is 64. Every kind of function uses MatchNested unless an option
// says otherwise.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{prec: 64, depth: DefaultMaxDepth}
	return ctx.Clone(opts...)
}

// Clone creates a copy of a context and applies options to it.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := *ctx
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case precopt:
			n.prec = uint(opt)
			if n.prec == 0 {
				n.prec = 64
			}
		case depthopt:
			n.depth = int(opt)
			if n.depth < 1 {
				n.depth = DefaultMaxDepth
			}
		case matchopt:
			if opt.kind < 0 || opt.kind >= kindCount {
				panic("scicalc: invalid function kind " + opt.kind.String())
			}
			n.match[opt.kind] = opt.m
		default:
			panic("scicalc: unknown option type")
		}
	}
	log.Debugf("scicalc: context prec=%d depth=%d match=%v", n.prec, n.depth, n.match)
	return &n
}

// Prec returns the precision used for extended-precision functions.
func (ctx *Context) Prec() uint {
	return ctx.prec
}

// MaxDepth returns the nesting limit.
func (ctx *Context) MaxDepth() int {
	return ctx.depth
}

// Matching returns the closing-parenthesis policy for a kind of function.
func (ctx *Context) Matching(kind Kind) Match {
	return ctx.match[kind]
}

// Eval evaluates an expression as typed by a user. Each occurrence of the
// placeholder Ans is replaced with ans first; it is an error for ans to be an
// infinity or NaN if the placeholder appears. Then percentages are
// normalized, function calls are rewritten into literals, and the remaining
// arithmetic is parsed and evaluated.
func (ctx *Context) Eval(src string, ans float64) (Result, error) {
	if strings.Contains(src, AnsPlaceholder) {
		if !finite(ans) {
			return Result{}, &DomainError{X: ans, Func: AnsPlaceholder}
		}
		src = strings.ReplaceAll(src, AnsPlaceholder, literal(ans))
	}
	return ctx.eval(src, 0)
}

// Rewrite normalizes percentages and rewrites every function call in src to a
// literal, returning the text that would be parsed by Eval.
func (ctx *Context) Rewrite(src string) (string, error) {
	s, _, err := ctx.rewrite(NormalizePercent(src), 0)
	return s, err
}

// eval runs the whole pipeline on src at a given nesting depth.
func (ctx *Context) eval(src string, depth int) (Result, error) {
	if depth > ctx.depth {
		return Result{}, &DepthError{Max: ctx.depth}
	}
	s, isBool, err := ctx.rewrite(NormalizePercent(src), depth)
	if err != nil {
		return Result{}, err
	}
	e, err := parse(s, ctx.depth)
	if err != nil {
		return Result{}, err
	}
	return Result{X: e.Eval(), Bool: isBool}, nil
}

// AnsPlaceholder is the text replaced by the last answer in Context.Eval.
const AnsPlaceholder = "Ans"

// EvalString is a shortcut to evaluate an expression with a new context and
// a last answer of zero.
func EvalString(src string, opts ...ContextOption) (Result, error) {
	return NewContext(opts...).Eval(src, 0)
}

// eval computes the node's value.
func (n *node) eval() float64 {
	switch n.kind {
	case nodeNum:
		return n.x
	case nodeNeg:
		return -n.left.eval()
	case nodeNop:
		return n.left.eval()
	case nodeAdd:
		return n.left.eval() + n.right.eval()
	case nodeSub:
		return n.left.eval() - n.right.eval()
	case nodeMul:
		return n.left.eval() * n.right.eval()
	case nodeDiv:
		return n.left.eval() / n.right.eval()
	case nodePow:
		return math.Pow(n.left.eval(), n.right.eval())
	default:
		panic("scicalc: invalid AST node " + n.kind.String())
	}
}
