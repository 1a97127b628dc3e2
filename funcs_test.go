package scicalc_test

import (
	"errors"
	"math"
	"testing"

	"github.com/zephyrtronium/scicalc"
)

func TestFuncsOrder(t *testing.T) {
	want := []string{
		"asin", "acos", "atan",
		"sin", "cos", "tan", "sqrt", "log", "ln", "exp", "cbrt", "square", "cube", "round", "ceil", "floor",
		"avg", "min", "max", "GCD", "LCM",
		"palindrome", "armstrong", "prime",
	}
	fns := scicalc.Funcs()
	if len(fns) != len(want) {
		t.Fatalf("want %d functions, got %d", len(want), len(fns))
	}
	for i, f := range fns {
		if f.Name != want[i] {
			t.Errorf("function %d: want %s, got %s", i, want[i], f.Name)
		}
	}
	// Modifying the returned slice must not affect evaluation.
	fns[0].Name = "sqrt"
	if r, err := scicalc.EvalString("asin(0)"); err != nil || r.X != 0 {
		t.Errorf("asin(0) after modifying Funcs gave %v, %v", r, err)
	}
}

func TestFuncsCanCall(t *testing.T) {
	cases := []struct {
		name string
		n    []int
		not  []int
	}{
		{"sqrt", []int{1}, []int{0, 2}},
		{"asin", []int{1}, []int{0, 2}},
		{"avg", []int{1, 2, 10}, []int{0}},
		{"max", []int{1, 3}, []int{0}},
		{"GCD", []int{2}, []int{0, 1, 3}},
		{"prime", []int{1}, []int{0, 2}},
	}
	fns := make(map[string]scicalc.Func)
	for _, f := range scicalc.Funcs() {
		fns[f.Name] = f
	}
	for _, c := range cases {
		f, ok := fns[c.name]
		if !ok {
			t.Errorf("no function %s", c.name)
			continue
		}
		for _, n := range c.n {
			if !f.CanCall(n) {
				t.Errorf("%s cannot be called with %d args", c.name, n)
			}
		}
		for _, n := range c.not {
			if f.CanCall(n) {
				t.Errorf("%s can be called with %d args", c.name, n)
			}
		}
	}
}

func TestKindNames(t *testing.T) {
	for _, k := range []scicalc.Kind{scicalc.Unary, scicalc.InverseTrig, scicalc.Multi, scicalc.Predicate} {
		n, ok := scicalc.ParseKind(k.String())
		if !ok || n != k {
			t.Errorf("%v does not round-trip: got %v, %t", k, n, ok)
		}
	}
	if _, ok := scicalc.ParseKind("ternary"); ok {
		t.Errorf("unknown kind parsed")
	}
}

func TestRound(t *testing.T) {
	cases := []struct {
		x, r float64
	}{
		{0, 0},
		{0.4, 0},
		{0.5, 1},
		{2.5, 3},
		{-0.5, 0},
		{-2.5, -2},
		{-2.6, -3},
		{1e300, 1e300},
	}
	for _, c := range cases {
		if got := scicalc.Round(c.x); got != c.r {
			t.Errorf("Round(%g): want %g, got %g", c.x, c.r, got)
		}
	}
}

func TestGCD(t *testing.T) {
	cases := []struct {
		a, b, gcd, lcm int64
	}{
		{12, 18, 6, 36},
		{18, 12, 6, 36},
		{-12, 18, 6, 36},
		{12, -18, 6, 36},
		{-4, -6, 2, 12},
		{0, 5, 5, 0},
		{5, 0, 5, 0},
		{7, 13, 1, 91},
		{1, 1, 1, 1},
		{1 << 40, 1 << 20, 1 << 20, 1 << 40},
	}
	for _, c := range cases {
		g, err := scicalc.GCD(c.a, c.b)
		if err != nil {
			t.Errorf("GCD(%d, %d): %v", c.a, c.b, err)
		} else if g != c.gcd {
			t.Errorf("GCD(%d, %d): want %d, got %d", c.a, c.b, c.gcd, g)
		}
		l, err := scicalc.LCM(c.a, c.b)
		if err != nil {
			t.Errorf("LCM(%d, %d): %v", c.a, c.b, err)
		} else if l != c.lcm {
			t.Errorf("LCM(%d, %d): want %d, got %d", c.a, c.b, c.lcm, l)
		}
	}
	if _, err := scicalc.GCD(0, 0); !errors.Is(err, scicalc.ErrDegenerate) {
		t.Errorf("GCD(0, 0) gave wrong error %v", err)
	}
	if _, err := scicalc.LCM(0, 0); !errors.Is(err, scicalc.ErrDegenerate) {
		t.Errorf("LCM(0, 0) gave wrong error %v", err)
	}
	if _, err := scicalc.LCM(math.MaxInt64, math.MaxInt64-1); !errors.Is(err, scicalc.ErrArgument) {
		t.Errorf("overflowing LCM gave wrong error %v", err)
	}
}

func TestIsPrime(t *testing.T) {
	primes := []int64{2, 3, 5, 7, 11, 13, 97, 7919, 1000003, 2147483647, 2305843009213693951, 9223372036854775783}
	composites := []int64{-7, -1, 0, 1, 4, 9, 25, 91, 561, 7917, 1000001, 2147483649, 4611686014132420609, 9223372036854775807}
	for _, n := range primes {
		if !scicalc.IsPrime(n) {
			t.Errorf("%d is prime", n)
		}
	}
	for _, n := range composites {
		if scicalc.IsPrime(n) {
			t.Errorf("%d is not prime", n)
		}
	}
}

func TestIsArmstrong(t *testing.T) {
	yes := []int64{0, 1, 5, 9, 153, 370, 371, 407, 1634, 8208, 9474, 54748}
	no := []int64{-153, 10, 100, 154, 1000, 9475}
	for _, n := range yes {
		if !scicalc.IsArmstrong(n) {
			t.Errorf("%d is an Armstrong number", n)
		}
	}
	for _, n := range no {
		if scicalc.IsArmstrong(n) {
			t.Errorf("%d is not an Armstrong number", n)
		}
	}
}

func TestIsPalindrome(t *testing.T) {
	cases := []struct {
		n    int64
		want bool
		err  bool
	}{
		{121, true, false},
		{12321, true, false},
		{1221, true, false},
		{123, false, false},
		{100, false, false},
		{-121, false, false},
		{12, false, true},
		{7, false, true},
		{0, false, true},
		{-12, false, true},
	}
	for _, c := range cases {
		got, err := scicalc.IsPalindrome(c.n)
		if c.err {
			var de *scicalc.DigitsError
			if !errors.As(err, &de) {
				t.Errorf("IsPalindrome(%d): want DigitsError, got %v", c.n, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("IsPalindrome(%d): %v", c.n, err)
			continue
		}
		if got != c.want {
			t.Errorf("IsPalindrome(%d): want %t, got %t", c.n, c.want, got)
		}
	}
}
