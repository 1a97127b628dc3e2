package scicalc

import (
	"math"
	"math/big"
	"math/bits"
	"strconv"

	"github.com/zephyrtronium/bigfloat"
)

// Kind is the flavor of a function, which decides how its call sites are
// rewritten.
type Kind int8

const (
	// Unary functions take one sub-expression. Results smaller in magnitude
	// than 1e-10 become exactly zero. Failures match ErrFunc.
	Unary Kind = iota
	// InverseTrig functions take one sub-expression and give degrees. A
	// failure to evaluate the argument is an ArgumentError and does not
	// match ErrFunc.
	InverseTrig
	// Multi functions take a comma-separated list of sub-expressions.
	// Failures match ErrFunc.
	Multi
	// Predicate functions take one plain numeric literal and give 1 or 0.
	// Failures match ErrFunc.
	Predicate

	kindCount
)

var kindNames = [kindCount]string{"unary", "inverse", "multi", "boolean"}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// ParseKind converts the name of a kind of function, as returned by
// Kind.String, to a Kind.
func ParseKind(name string) (Kind, bool) {
	for i, v := range kindNames {
		if v == name {
			return Kind(i), true
		}
	}
	return 0, false
}

// Func is a function in the catalogue.
type Func struct {
	// Name is the name used at call sites, e.g. "sin" in sin(30).
	Name string
	// Kind is the flavor of the function.
	Kind Kind

	// minArgs and maxArgs bound the argument count; maxArgs < 0 is unbounded.
	minArgs, maxArgs int

	// Exactly one of these is set, according to Kind.
	unary func(ctx *Context, x float64) (float64, error)
	multi func(xs []float64) (float64, error)
	pred  func(x float64) (bool, error)
}

// CanCall returns whether the function can be called with n arguments.
func (f *Func) CanCall(n int) bool {
	return n >= f.minArgs && (f.maxArgs < 0 || n <= f.maxArgs)
}

// catalogue is every function, in the order the rewriter processes them. The
// inverse trig functions come first so that e.g. sin( never matches inside
// asin(.
var catalogue = []Func{
	inverse("asin", func(x float64) (float64, error) {
		if x < -1 || x > 1 {
			return 0, &DomainError{X: x, Arg: 1, Func: "asin"}
		}
		return degrees(math.Asin(x)), nil
	}),
	inverse("acos", func(x float64) (float64, error) {
		if x < -1 || x > 1 {
			return 0, &DomainError{X: x, Arg: 1, Func: "acos"}
		}
		return degrees(math.Acos(x)), nil
	}),
	inverse("atan", func(x float64) (float64, error) {
		return degrees(math.Atan(x)), nil
	}),

	monadic("sin", func(x float64) float64 { return math.Sin(radians(x)) }),
	monadic("cos", func(x float64) float64 { return math.Cos(radians(x)) }),
	monadic("tan", func(x float64) float64 { return math.Tan(radians(x)) }),
	monadic("sqrt", math.Sqrt),
	precise("log", log10),
	precise("ln", bigfloat.Log),
	precise("exp", bigfloat.Exp),
	monadic("cbrt", math.Cbrt),
	monadic("square", func(x float64) float64 { return x * x }),
	monadic("cube", func(x float64) float64 { return x * x * x }),
	monadic("round", Round),
	monadic("ceil", math.Ceil),
	monadic("floor", math.Floor),

	variadic("avg", 1, -1, func(xs []float64) (float64, error) {
		var s float64
		for _, x := range xs {
			s += x
		}
		return s / float64(len(xs)), nil
	}),
	variadic("min", 1, -1, func(xs []float64) (float64, error) {
		r := xs[0]
		for _, x := range xs[1:] {
			if x < r {
				r = x
			}
		}
		return r, nil
	}),
	variadic("max", 1, -1, func(xs []float64) (float64, error) {
		r := xs[0]
		for _, x := range xs[1:] {
			if x > r {
				r = x
			}
		}
		return r, nil
	}),
	variadic("GCD", 2, 2, func(xs []float64) (float64, error) {
		a, b, err := intpair("GCD", xs)
		if err != nil {
			return 0, err
		}
		r, err := GCD(a, b)
		return float64(r), err
	}),
	variadic("LCM", 2, 2, func(xs []float64) (float64, error) {
		a, b, err := intpair("LCM", xs)
		if err != nil {
			return 0, err
		}
		r, err := LCM(a, b)
		return float64(r), err
	}),

	predicate("palindrome", func(x float64) (bool, error) {
		n, err := truncate("palindrome", 1, x)
		if err != nil {
			return false, err
		}
		return IsPalindrome(n)
	}),
	predicate("armstrong", func(x float64) (bool, error) {
		n, err := truncate("armstrong", 1, x)
		if err != nil {
			return false, err
		}
		return IsArmstrong(n), nil
	}),
	predicate("prime", func(x float64) (bool, error) {
		n, err := truncate("prime", 1, x)
		if err != nil {
			return false, err
		}
		return IsPrime(n), nil
	}),
}

// Funcs returns the function catalogue in the order in which the rewriter
// processes names.
func Funcs() []Func {
	return append([]Func(nil), catalogue...)
}

func monadic(name string, f func(float64) float64) Func {
	return Func{
		Name:    name,
		Kind:    Unary,
		minArgs: 1,
		maxArgs: 1,
		unary: func(_ *Context, x float64) (float64, error) {
			return f(x), nil
		},
	}
}

func inverse(name string, f func(float64) (float64, error)) Func {
	return Func{
		Name:    name,
		Kind:    InverseTrig,
		minArgs: 1,
		maxArgs: 1,
		unary: func(_ *Context, x float64) (float64, error) {
			return f(x)
		},
	}
}

// precise wraps a function computed in extended precision. f must set out to
// its result to the precision of out; its return value is ignored. Arguments
// outside the domain of ln are rejected before f is called, as are arguments
// for which exp would overflow float64.
func precise(name string, f func(out, in *big.Float) *big.Float) Func {
	return Func{
		Name:    name,
		Kind:    Unary,
		minArgs: 1,
		maxArgs: 1,
		unary: func(ctx *Context, x float64) (float64, error) {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return 0, &DomainError{X: x, Arg: 1, Func: name}
			}
			if name == "exp" {
				switch {
				case x > maxExpArg:
					return 0, &DomainError{X: x, Arg: 1, Func: name}
				case x < minExpArg:
					return 0, nil
				}
			} else if x <= 0 {
				return 0, &DomainError{X: x, Arg: 1, Func: name}
			}
			in := new(big.Float).SetPrec(ctx.prec).SetFloat64(x)
			out := new(big.Float).SetPrec(ctx.prec)
			f(out, in)
			r, _ := out.Float64()
			return r, nil
		},
	}
}

// Bounds outside which exp overflows to +Inf or underflows to 0 in float64.
const (
	maxExpArg = 709.782712893384
	minExpArg = -745.1332191019412
)

func log10(out, in *big.Float) *big.Float {
	bigfloat.Log(out, in)
	in.SetFloat64(10).SetPrec(out.Prec())
	bigfloat.Log(in, in)
	return out.Quo(out, in)
}

func variadic(name string, lo, hi int, f func([]float64) (float64, error)) Func {
	return Func{
		Name:    name,
		Kind:    Multi,
		minArgs: lo,
		maxArgs: hi,
		multi:   f,
	}
}

func predicate(name string, f func(float64) (bool, error)) Func {
	return Func{
		Name:    name,
		Kind:    Predicate,
		minArgs: 1,
		maxArgs: 1,
		pred:    f,
	}
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Round rounds half up, toward positive infinity: Round(2.5) is 3 and
// Round(-2.5) is -2.
func Round(x float64) float64 {
	return math.Floor(x + 0.5)
}

// truncate converts x to an integer by discarding its fraction. x must be
// finite and fit in an int64.
func truncate(name string, arg int, x float64) (int64, error) {
	t := math.Trunc(x)
	if math.IsNaN(t) || math.Abs(t) >= 1<<63 {
		return 0, &DomainError{X: x, Arg: arg, Func: name}
	}
	return int64(t), nil
}

func intpair(name string, xs []float64) (int64, int64, error) {
	a, err := truncate(name, 1, xs[0])
	if err != nil {
		return 0, 0, err
	}
	b, err := truncate(name, 2, xs[1])
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func abs64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

// GCD returns the non-negative greatest common divisor of a and b using the
// Euclidean algorithm. It is an error for both to be zero.
func GCD(a, b int64) (int64, error) {
	if a == 0 && b == 0 {
		return 0, &DegenerateError{Func: "GCD"}
	}
	return gcd(a, b), nil
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return abs64(a)
}

// LCM returns the non-negative least common multiple |a*b|/GCD(a, b). It is
// an error for both a and b to be zero or for the result to overflow.
func LCM(a, b int64) (int64, error) {
	if a == 0 && b == 0 {
		return 0, &DegenerateError{Func: "LCM"}
	}
	if a == 0 || b == 0 {
		return 0, nil
	}
	g := gcd(a, b)
	hi, lo := bits.Mul64(uint64(abs64(a/g)), uint64(abs64(b)))
	if hi != 0 || lo > math.MaxInt64 {
		return 0, &DomainError{X: float64(a), Func: "LCM"}
	}
	return int64(lo), nil
}

// trialLimit is the largest n that IsPrime checks by trial division. Larger
// numbers use a test that is exact for 64-bit inputs.
const trialLimit = 1 << 40

// IsPrime reports whether n is prime. Numbers below 2 are not prime.
func IsPrime(n int64) bool {
	switch {
	case n < 2:
		return false
	case n < 4:
		return true
	case n%2 == 0 || n%3 == 0:
		return false
	case n > trialLimit:
		// ProbablyPrime(0) is Baillie-PSW, which has no 64-bit counterexamples.
		return big.NewInt(n).ProbablyPrime(0)
	}
	for i := int64(5); i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

// IsArmstrong reports whether n equals the sum of its decimal digits each
// raised to the number of digits. Negative numbers are never Armstrong
// numbers.
func IsArmstrong(n int64) bool {
	if n < 0 {
		return false
	}
	k := len(strconv.FormatInt(n, 10))
	var sum uint64
	for t := n; t != 0; t /= 10 {
		d := uint64(t % 10)
		p := uint64(1)
		for i := 0; i < k; i++ {
			p *= d
		}
		sum += p
		if sum > uint64(n) {
			return false
		}
	}
	return sum == uint64(n)
}

// IsPalindrome reports whether the decimal digits of n read the same
// backward. n must have at least three digits; a negative n has a sign that
// breaks the symmetry and is never a palindrome.
func IsPalindrome(n int64) (bool, error) {
	s := strconv.FormatInt(n, 10)
	digits := s
	if n < 0 {
		digits = s[1:]
	}
	if len(digits) < 3 {
		return false, &DigitsError{X: n, Min: 3, Func: "palindrome"}
	}
	if n < 0 {
		return false, nil
	}
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		if s[i] != s[j] {
			return false, nil
		}
	}
	return true, nil
}
