//go:build go1.18
// +build go1.18

package supercalc_test

import (
	"testing"

	"github.com/zephyrtronium/supercalc"
)

func FuzzParse(f *testing.F) {
	f.Add("x")
	f.Add("1×2")
	f.Add("-2^2")
	f.Add("f(x, <1, 2>)[0]")
	f.Add("1 + |x| x")
	f.Add("2.5e-7x")
	f.Fuzz(func(t *testing.T, s string) {
		v, err := supercalc.Parse(s)
		if err != nil || v == nil {
			return
		}
		r := v.String()
		w, err := supercalc.Parse(r)
		if err != nil {
			t.Fatalf("%q rendered as %q, which fails to parse: %v", s, r, err)
		}
		if w.String() != r {
			t.Errorf("%q rendered as %q, then as %q", s, r, w.String())
		}
	})
}
