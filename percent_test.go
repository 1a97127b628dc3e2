package scicalc_test

import (
	"testing"

	"github.com/zephyrtronium/scicalc"
)

func TestNormalizePercent(t *testing.T) {
	cases := []struct {
		src, want string
	}{
		{"", ""},
		{"50", "50"},
		{"50%", "(50/100)"},
		{"12.5%", "(12.5/100)"},
		{"200*15%", "200*(15/100)"},
		{"1%+2%", "(1/100)+(2/100)"},
		{"sqrt(16)+50%", "sqrt(16)+(50/100)"},
		{"%", "%"},
		{"(5)%", "(5)%"},
		{"5%%", "(5/100)%"},
		{".5%", ".(5/100)"},
	}
	for _, c := range cases {
		got := scicalc.NormalizePercent(c.src)
		if got != c.want {
			t.Errorf("NormalizePercent(%q): want %q, got %q", c.src, c.want, got)
		}
		if again := scicalc.NormalizePercent(got); again != got {
			t.Errorf("NormalizePercent is not idempotent on %q: %q then %q", c.src, got, again)
		}
	}
}
