package supercalc

import (
	"math"
	"testing"
)

func TestNewFrac(t *testing.T) {
	cases := []struct {
		n, d int64
		want string
		kind Kind
	}{
		{6, 4, "3/2", KindFrac},
		{-6, 4, "-3/2", KindFrac},
		{6, -4, "-3/2", KindFrac},
		{-6, -4, "3/2", KindFrac},
		{4, 2, "2", KindInt},
		{-4, 2, "-2", KindInt},
		{0, 5, "0", KindInt},
		{0, -5, "0", KindInt},
		{1, 3, "1/3", KindFrac},
	}
	for _, c := range cases {
		v := NewFrac(c.n, c.d)
		if v.Kind() != c.kind || v.String() != c.want {
			t.Errorf("NewFrac(%d, %d): want %v %s, got %v %s", c.n, c.d, c.kind, c.want, v.Kind(), v)
		}
	}
	if v := NewFrac(3, 0); v.Kind() != KindError || v.err.Kind != ErrMath {
		t.Errorf("NewFrac(3, 0) gave %v", v)
	}
}

// checkReduced checks the representation invariants of a rational result.
func checkReduced(t *testing.T, what string, v *Value) {
	t.Helper()
	if v.Kind() != KindFrac {
		return
	}
	f := v.Frac()
	if f.Den() <= 1 {
		t.Errorf("%s gave denominator %d", what, f.Den())
	}
	if g := gcd(f.Num(), f.Den()); g != 1 {
		t.Errorf("%s gave %d/%d with common factor %d", what, f.Num(), f.Den(), g)
	}
}

func TestRatOpReduced(t *testing.T) {
	ops := []Op{OpAdd, OpSub, OpMul, OpDiv, OpMod}
	for an := int64(-6); an <= 6; an++ {
		for ad := int64(1); ad <= 6; ad++ {
			for bn := int64(-6); bn <= 6; bn++ {
				for bd := int64(1); bd <= 6; bd++ {
					for _, op := range ops {
						r := ratOp(op, an, ad, bn, bd)
						if r.Kind() == KindError {
							if bn != 0 || op != OpDiv && op != OpMod {
								t.Errorf("%d/%d %v %d/%d: %v", an, ad, op, bn, bd, r.Err())
							}
							continue
						}
						checkReduced(t, "ratOp", r)
						x, _ := r.Float64()
						if want := ratFloat(op, an, ad, bn, bd); math.Abs(x-want) > 1e-9 {
							t.Errorf("%d/%d %v %d/%d: want %g, got %v", an, ad, op, bn, bd, want, r)
						}
					}
				}
			}
		}
	}
}

func ratFloat(op Op, an, ad, bn, bd int64) float64 {
	a := float64(an) / float64(ad)
	b := float64(bn) / float64(bd)
	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		return a / b
	case OpMod:
		// Quotients of small rationals are far from integers unless exact.
		return a - b*math.Floor(a/b+1e-9)
	}
	panic("bad op")
}

func TestRatPow(t *testing.T) {
	cases := []struct {
		name           string
		an, ad, bn, bd int64
		want           string
		kind           Kind
	}{
		{"cube-root", 8, 27, 1, 3, "2/3", KindFrac},
		{"sqrt", 4, 1, 1, 2, "2", KindInt},
		{"sqrt-inexact", 2, 1, 1, 2, "1.4142135623731", KindReal},
		{"two-thirds", 8, 1, 2, 3, "4", KindInt},
		{"neg-root", 1, 4, -1, 2, "2", KindInt},
		{"neg-int", 2, 3, -2, 1, "9/4", KindFrac},
		{"zero-int", 5, 7, 0, 1, "1", KindInt},
		{"zero-base", 0, 1, 1, 2, "0", KindInt},
		{"big-square", 4611686014132420609, 1, 1, 2, "2147483647", KindInt},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := ratOp(OpPow, c.an, c.ad, c.bn, c.bd)
			if r.Kind() != c.kind {
				t.Fatalf("wrong kind: want %v, got %v %v", c.kind, r.Kind(), r)
			}
			if r.Kind() == KindReal {
				if math.Abs(r.Real()-math.Sqrt2) > 1e-12 {
					t.Errorf("wrong result: want %s, got %v", c.want, r)
				}
				return
			}
			if s := r.String(); s != c.want {
				t.Errorf("wrong result: want %s, got %s", c.want, s)
			}
		})
	}
}

func TestRatPowErrors(t *testing.T) {
	cases := []struct {
		name           string
		an, ad, bn, bd int64
		msg            string
	}{
		{"neg-base", -8, 1, 1, 3, "Negative base to a fractional power has a complex result."},
		{"neg-frac-base", -1, 4, 1, 2, "Negative base to a fractional power has a complex result."},
		{"zero-neg-int", 0, 1, -1, 1, "Division by zero."},
		{"zero-neg-frac", 0, 1, -1, 2, "Division by zero."},
	}
	for _, c := range cases {
		r := ratOp(OpPow, c.an, c.ad, c.bn, c.bd)
		if r.Kind() != KindError {
			t.Errorf("%s: no error, got %v", c.name, r)
			continue
		}
		if r.err.Kind != ErrMath || r.err.Msg != c.msg {
			t.Errorf("%s: wrong error %v", c.name, r.err)
		}
	}
}

func TestIroot(t *testing.T) {
	cases := []struct {
		n, q int64
		r    int64
		ok   bool
	}{
		{0, 2, 0, true},
		{1, 5, 1, true},
		{7, 1, 7, true},
		{64, 3, 4, true},
		{64, 6, 2, true},
		{65, 3, 0, false},
		{12, 2, 0, false},
		{1 << 62, 2, 1 << 31, true},
		{4611686014132420609, 2, 2147483647, true},
		{4611686014132420610, 2, 0, false},
	}
	for _, c := range cases {
		r, ok := iroot(c.n, c.q)
		if ok != c.ok || ok && r != c.r {
			t.Errorf("iroot(%d, %d): want %d %t, got %d %t", c.n, c.q, c.r, c.ok, r, ok)
		}
	}
}

func TestFloorMod(t *testing.T) {
	cases := []struct{ a, b, r int64 }{
		{7, 3, 1},
		{-7, 3, 2},
		{7, -3, -2},
		{-7, -3, -1},
		{6, 3, 0},
		{-6, 3, 0},
	}
	for _, c := range cases {
		if r := floorMod(c.a, c.b); r != c.r {
			t.Errorf("floorMod(%d, %d): want %d, got %d", c.a, c.b, c.r, r)
		}
	}
}

func TestFractionMethods(t *testing.T) {
	half := NewFrac(1, 2).Frac()
	cases := []struct {
		name string
		r    *Value
		want string
	}{
		{"add-int", half.Add(NewInt(1)), "3/2"},
		{"add-frac", half.Add(NewFrac(1, 2)), "1"},
		{"sub", half.Sub(NewFrac(1, 3)), "1/6"},
		{"mul", half.Mul(NewInt(4)), "2"},
		{"div", half.Div(NewFrac(3, 4)), "2/3"},
		{"mod", NewFrac(7, 2).Frac().Mod(NewInt(2)), "3/2"},
		{"mod-neg", NewFrac(-7, 2).Frac().Mod(NewInt(2)), "1/2"},
		{"mod-frac", half.Mod(NewFrac(1, 3)), "1/6"},
		{"pow", half.Pow(NewInt(3)), "1/8"},
		{"add-real", half.Add(NewReal(0.25)), "0.75"},
	}
	for _, c := range cases {
		if s := c.r.String(); s != c.want {
			t.Errorf("%s: want %s, got %s", c.name, c.want, s)
		}
		checkReduced(t, c.name, c.r)
	}
	if r := half.Div(NewInt(0)); r.Kind() != KindError {
		t.Errorf("division by zero gave %v", r)
	}
	if r := half.Mod(NewInt(0)); r.Kind() != KindError || r.err.Msg != "Modulus by zero." {
		t.Errorf("modulus by zero gave %v", r)
	}

	cmps := []struct {
		v    *Value
		want int
	}{
		{NewInt(0), 1},
		{NewInt(1), -1},
		{NewFrac(2, 4), 0},
		{NewFrac(2, 3), -1},
		{NewReal(0.5), 0},
		{NewReal(0.25), 1},
	}
	for _, c := range cmps {
		if got := half.Cmp(c.v); got != c.want {
			t.Errorf("1/2 cmp %v: want %d, got %d", c.v, c.want, got)
		}
	}
}
