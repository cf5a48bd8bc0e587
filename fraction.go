package supercalc

import (
	"math"
)

// Fraction is an exact rational number. The denominator of a Fraction held in
// a Value is always greater than 1 and coprime with the numerator; rationals
// that reduce to integers are represented as integers instead.
type Fraction struct {
	n, d int64
}

// Num returns the numerator of f. Its sign is the sign of f.
func (f Fraction) Num() int64 {
	return f.n
}

// Den returns the denominator of f, which is always positive.
func (f Fraction) Den() int64 {
	return f.d
}

// Float64 returns the nearest float64 to f.
func (f Fraction) Float64() float64 {
	return float64(f.n) / float64(f.d)
}

// NewFrac creates the value n/d in lowest terms. The result is an integer if d
// divides n, or a Math error if d is 0. 64-bit overflow wraps.
func NewFrac(n, d int64) *Value {
	if d == 0 {
		return zeroDiv()
	}
	if d < 0 {
		n, d = -n, -d
	}
	g := gcd(n, d)
	n /= g
	d /= g
	if d == 1 {
		return NewInt(n)
	}
	return &Value{kind: KindFrac, frac: Fraction{n, d}}
}

// Add returns f+v. v must be numeric.
func (f Fraction) Add(v *Value) *Value {
	return f.arith(OpAdd, v)
}

// Sub returns f-v. v must be numeric.
func (f Fraction) Sub(v *Value) *Value {
	return f.arith(OpSub, v)
}

// Mul returns f*v. v must be numeric.
func (f Fraction) Mul(v *Value) *Value {
	return f.arith(OpMul, v)
}

// Div returns f/v. v must be numeric.
func (f Fraction) Div(v *Value) *Value {
	return f.arith(OpDiv, v)
}

// Mod returns f mod v, which has the sign of v. v must be numeric.
func (f Fraction) Mod(v *Value) *Value {
	return f.arith(OpMod, v)
}

// Pow returns f^v. v must be numeric. Fractional exponents give exact results
// when the numerator and denominator of f both have exact roots.
func (f Fraction) Pow(v *Value) *Value {
	return f.arith(OpPow, v)
}

// Cmp compares f to v, returning -1, 0, or +1. v must be numeric.
func (f Fraction) Cmp(v *Value) int {
	switch v.kind {
	case KindInt:
		return cmp64(f.n, v.ival*f.d)
	case KindFrac:
		return cmp64(f.n*v.frac.d, v.frac.n*f.d)
	case KindReal:
		x := f.Float64()
		switch {
		case x < v.rval:
			return -1
		case x > v.rval:
			return 1
		}
		return 0
	}
	panic("supercalc: Fraction.Cmp with " + v.kind.String())
}

func (f Fraction) arith(op Op, v *Value) *Value {
	switch v.kind {
	case KindInt:
		return ratOp(op, f.n, f.d, v.ival, 1)
	case KindFrac:
		return ratOp(op, f.n, f.d, v.frac.n, v.frac.d)
	case KindReal:
		return realOp(op, f.Float64(), v.rval, defaultPrec)
	}
	return Errorf(ErrInternal, "Non-numeric operand %s to fraction %s.", v.kind, op)
}

// ratOp applies op to the rationals an/ad and bn/bd. Denominators must be
// positive.
func ratOp(op Op, an, ad, bn, bd int64) *Value {
	switch op {
	case OpAdd:
		return NewFrac(an*bd+bn*ad, ad*bd)
	case OpSub:
		return NewFrac(an*bd-bn*ad, ad*bd)
	case OpMul:
		return NewFrac(an*bn, ad*bd)
	case OpDiv:
		if bn == 0 {
			return zeroDiv()
		}
		return NewFrac(an*bd, ad*bn)
	case OpMod:
		if bn == 0 {
			return zeroMod()
		}
		return NewFrac(floorMod(an*bd, bn*ad), ad*bd)
	case OpPow:
		if bd == 1 {
			return ratPowInt(an, ad, bn)
		}
		return ratPowFrac(an, ad, bn, bd)
	}
	panic("supercalc: bad rational operator " + op.String())
}

// ratPowInt computes (n/d)^k exactly.
func ratPowInt(n, d, k int64) *Value {
	if k >= 0 {
		return NewFrac(ipow(n, k), ipow(d, k))
	}
	if n == 0 {
		return zeroDiv()
	}
	return NewFrac(ipow(d, -k), ipow(n, -k))
}

// ratPowFrac computes (n/d)^(p/q) for q > 1, exactly if possible.
func ratPowFrac(n, d, p, q int64) *Value {
	switch {
	case n < 0:
		return complexResult()
	case n == 0:
		if p < 0 {
			return zeroDiv()
		}
		return NewInt(0)
	}
	rn, ok := iroot(n, q)
	if ok {
		var rd int64
		if rd, ok = iroot(d, q); ok {
			return ratPowInt(rn, rd, p)
		}
	}
	return NewReal(math.Pow(float64(n)/float64(d), float64(p)/float64(q)))
}

// trialLimit bounds trial division in iroot.
const trialLimit = 1 << 16

// iroot finds the exact qth root of n >= 0 by factoring n. The second result
// is false if the root is not an integer.
func iroot(n, q int64) (int64, bool) {
	if n < 2 || q == 1 {
		return n, true
	}
	r := int64(1)
	for p := int64(2); p < trialLimit && p*p <= n; p++ {
		k := int64(0)
		for n%p == 0 {
			n /= p
			k++
		}
		if k%q != 0 {
			return 0, false
		}
		r *= ipow(p, k/q)
	}
	if n == 1 {
		return r, true
	}
	// n is either prime or has only factors beyond trialLimit. Check the
	// nearest integers to the floating-point root.
	s := int64(math.Round(math.Pow(float64(n), 1/float64(q))))
	for c := s - 1; c <= s+1; c++ {
		if c > 1 && powIs(c, q, n) {
			return r * c, true
		}
	}
	return 0, false
}

// powIs reports whether c^q == n without overflowing. c must be at least 2.
func powIs(c, q, n int64) bool {
	acc := int64(1)
	for i := int64(0); i < q; i++ {
		if acc > n/c {
			return false
		}
		acc *= c
	}
	return acc == n
}

// ipow computes b^e for e >= 0 by squaring. Overflow wraps.
func ipow(b, e int64) int64 {
	r := int64(1)
	for e > 0 {
		if e&1 != 0 {
			r *= b
		}
		b *= b
		e >>= 1
	}
	return r
}

func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// floorMod is a mod b with the sign of b.
func floorMod(a, b int64) int64 {
	r := a % b
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return r
}

func cmp64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
