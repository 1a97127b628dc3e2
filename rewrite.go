package scicalc

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"fortio.org/log"
)

// Match selects how the rewriter finds the parenthesis that closes a call.
type Match int8

const (
	// MatchNested counts parentheses from the call's open parenthesis and
	// takes the one that brings the depth back to zero, so arguments may
	// contain parenthesized terms and further calls.
	MatchNested Match = iota
	// MatchFirstClose takes the first close parenthesis after the call's open
	// parenthesis regardless of nesting. Calls like sin(cos(0)) or
	// avg(1,(2+3)) cut their arguments short and fail.
	MatchFirstClose
)

var matchNames = [...]string{"nested", "first-close"}

func (m Match) String() string {
	if m < 0 || int(m) >= len(matchNames) {
		return "Match(" + strconv.Itoa(int(m)) + ")"
	}
	return matchNames[m]
}

// ParseMatch converts the name of a matching policy, as returned by
// Match.String, to a Match.
func ParseMatch(name string) (Match, bool) {
	for i, v := range matchNames {
		if v == name {
			return Match(i), true
		}
	}
	return 0, false
}

// closing returns the byte index of the parenthesis closing the one at open in
// s, or -1 if there is none.
func (m Match) closing(s string, open int) int {
	switch m {
	case MatchNested:
		depth := 0
		for i := open; i < len(s); i++ {
			switch s[i] {
			case '(':
				depth++
			case ')':
				depth--
				if depth == 0 {
					return i
				}
			}
		}
		return -1
	case MatchFirstClose:
		k := strings.IndexByte(s[open+1:], ')')
		if k < 0 {
			return -1
		}
		return open + 1 + k
	default:
		panic("scicalc: invalid match policy " + m.String())
	}
}

// splitArgs splits a call's argument text on commas that are not inside
// parentheses.
func splitArgs(s string) []string {
	var args []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				args = append(args, s[start:i])
				start = i + 1
			}
		}
	}
	return append(args, s[start:])
}

// zeroSnap is the magnitude below which unary results become exactly zero,
// absorbing the noise of e.g. sin(180).
const zeroSnap = 1e-10

// plainNumber matches the literal arguments accepted by boolean functions,
// including the parenthesized negatives written by literal. The number is in
// the first group, or the second when parenthesized.
var plainNumber = regexp.MustCompile(`^(?:([+-]?(?:\d+(?:\.\d*)?|\.\d+))|\(\s*([+-]?(?:\d+(?:\.\d*)?|\.\d+))\s*\))$`)

// plainArg returns the number text of a boolean function's argument, or false
// if it is not a plain numeric literal.
func plainArg(text string) (string, bool) {
	m := plainNumber.FindStringSubmatch(text)
	switch {
	case m == nil:
		return "", false
	case m[1] != "":
		return m[1], true
	default:
		return m[2], true
	}
}

// rewrite replaces every function call in s with its value. The boolean result
// reports whether the whole of s was a single boolean call.
func (ctx *Context) rewrite(s string, depth int) (string, bool, error) {
	var (
		whole      bool
		unresolved *UnclosedCallError
	)
	for i := range catalogue {
		f := &catalogue[i]
		call := f.Name + "("
		for {
			start := strings.Index(s, call)
			if start < 0 {
				break
			}
			open := start + len(f.Name)
			end := ctx.match[f.Kind].closing(s, open)
			if end < 0 {
				// Leave the call for the error after the remaining names
				// are rewritten.
				if unresolved == nil {
					unresolved = &UnclosedCallError{Func: f.Name, Col: utf8.RuneCountInString(s[:start]) + 1}
				}
				break
			}
			inner := s[open+1 : end]
			lit, isBool, err := ctx.apply(f, inner, depth)
			if err != nil {
				return "", false, err
			}
			log.LogVf("scicalc: depth %d: %s(%s) = %s", depth, f.Name, inner, lit)
			if isBool && spans(s, start, end) {
				whole = true
			}
			s = s[:start] + lit + s[end+1:]
		}
	}
	if unresolved != nil {
		return "", false, unresolved
	}
	return s, whole, nil
}

// spans reports whether the call at s[start:end+1] is all of s apart from
// enclosing parentheses and whitespace.
func spans(s string, start, end int) bool {
	before := strings.TrimFunc(s[:start], func(r rune) bool { return r == '(' || unicode.IsSpace(r) })
	after := strings.TrimFunc(s[end+1:], func(r rune) bool { return r == ')' || unicode.IsSpace(r) })
	return before == "" && after == ""
}

// apply evaluates one call of f with the argument text inner and returns the
// literal that replaces it.
func (ctx *Context) apply(f *Func, inner string, depth int) (string, bool, error) {
	switch f.Kind {
	case InverseTrig:
		r, err := ctx.eval(strings.TrimSpace(inner), depth+1)
		if err != nil {
			return "", false, &ArgumentError{Func: f.Name, Text: inner, Err: err}
		}
		y, err := f.unary(ctx, r.X)
		if err != nil {
			return "", false, err
		}
		if !finite(y) {
			return "", false, &DomainError{X: r.X, Arg: 1, Func: f.Name}
		}
		return literal(y), false, nil

	case Unary:
		r, err := ctx.eval(strings.TrimSpace(inner), depth+1)
		if err != nil {
			return "", false, &FuncError{Func: f.Name, Err: err}
		}
		y, err := f.unary(ctx, r.X)
		if err != nil {
			return "", false, &FuncError{Func: f.Name, Err: err}
		}
		if !finite(y) {
			return "", false, &FuncError{Func: f.Name, Err: &DomainError{X: r.X, Arg: 1, Func: f.Name}}
		}
		if math.Abs(y) < zeroSnap {
			y = 0
		}
		return literal(y), false, nil

	case Multi:
		args := splitArgs(inner)
		if !f.CanCall(len(args)) {
			return "", false, &FuncError{Func: f.Name, Err: &CallError{Func: f.Name, Len: len(args)}}
		}
		xs := make([]float64, len(args))
		for i, a := range args {
			r, err := ctx.eval(strings.TrimSpace(a), depth+1)
			if err != nil {
				return "", false, &FuncError{Func: f.Name, Err: err}
			}
			xs[i] = r.X
		}
		y, err := f.multi(xs)
		if err != nil {
			return "", false, &FuncError{Func: f.Name, Err: err}
		}
		if !finite(y) {
			return "", false, &FuncError{Func: f.Name, Err: &DomainError{X: y, Func: f.Name}}
		}
		return literal(y), false, nil

	case Predicate:
		text := strings.TrimSpace(inner)
		num, ok := plainArg(text)
		if !ok {
			return "", false, &FuncError{Func: f.Name, Err: &ArgumentError{Func: f.Name, Text: text}}
		}
		x, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return "", false, &FuncError{Func: f.Name, Err: &ArgumentError{Func: f.Name, Text: text, Err: err}}
		}
		ok, err = f.pred(x)
		if err != nil {
			return "", false, &FuncError{Func: f.Name, Err: err}
		}
		if ok {
			return "1", true, nil
		}
		return "0", true, nil

	default:
		panic("scicalc: invalid function kind " + f.Kind.String())
	}
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// literal formats x as text the parser reads back exactly. Negative values
// are parenthesized so that an operator before them, like ^, applies to the
// whole value.
func literal(x float64) string {
	if x == 0 {
		return "0"
	}
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if x < 0 {
		return "(" + s + ")"
	}
	return s
}
