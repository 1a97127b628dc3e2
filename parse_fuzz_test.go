//go:build go1.18
// +build go1.18

package scicalc_test

import (
	"errors"
	"testing"

	"github.com/zephyrtronium/scicalc"
)

func FuzzParse(f *testing.F) {
	f.Add("1")
	f.Add("-2^-2^2")
	f.Add("(1+2")
	f.Add("1..2")
	f.Fuzz(func(t *testing.T, s string) {
		e, err := scicalc.Parse(s)
		if err != nil {
			return
		}
		// The bracketed form of a tree is itself a valid expression once the
		// square brackets are made round.
		b := []byte(e.String())
		for i, c := range b {
			switch c {
			case '[':
				b[i] = '('
			case ']':
				b[i] = ')'
			}
		}
		// Bracketing adds nesting, so a deep tree may be too deep to reparse.
		if _, err := scicalc.Parse(string(b)); err != nil && !errors.Is(err, scicalc.ErrNesting) {
			t.Errorf("%q parsed as %v, which does not parse: %v", s, e, err)
		}
	})
}
