package scicalc

import "regexp"

var percentRE = regexp.MustCompile(`(\d+(?:\.\d+)?)%`)

// NormalizePercent rewrites each number immediately followed by a percent
// sign, like 50%, into a division by 100, like (50/100). It makes a single
// pass, so applying it to its own output changes nothing.
func NormalizePercent(s string) string {
	return percentRE.ReplaceAllString(s, "(${1}/100)")
}
