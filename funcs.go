package supercalc

import (
	"errors"
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// BuiltinFunc evaluates a call to a builtin. args are the call's unevaluated
// arguments; the function decides whether and how to evaluate each one.
// internal is true for calls the parser synthesized, like v[i]. The result may
// be an unevaluated expression, which the evaluator simplifies, or an error
// value.
type BuiltinFunc func(ctx *Context, args []*Value, internal bool) *Value

// Builtin is a function or constant provided by the host program. Builtins
// cannot be rebound or deleted once registered in a Context.
type Builtin struct {
	Name string
	Fn   BuiltinFunc
	// IsFunction distinguishes builtins called with arguments from constants.
	// A constant is computed whenever it is used as a number; calling it with
	// one argument multiplies.
	IsFunction bool
}

// Arity checks that a builtin was called with n arguments. The result is nil
// if so, otherwise an error value.
func Arity(name string, args []*Value, n int) *Value {
	if len(args) != n {
		return Errorf(ErrType, "Builtin '%s' expects %d argument%s, not %d.", name, n, plural(n), len(args))
	}
	return nil
}

// CoerceArgs checks arity and coerces each argument in ctx. If any fails, the
// second result is the error value.
func CoerceArgs(ctx *Context, name string, args []*Value, n int) ([]*Value, *Value) {
	if err := Arity(name, args, n); err != nil {
		return nil, err
	}
	vs := make([]*Value, n)
	for i, a := range args {
		r := ctx.Coerce(a)
		if r.kind == KindError {
			return nil, r
		}
		vs[i] = r
	}
	return vs, nil
}

// RealArgs is like CoerceArgs, but it also converts each argument to float64.
func RealArgs(ctx *Context, name string, args []*Value, n int) ([]float64, *Value) {
	vs, err := CoerceArgs(ctx, name, args, n)
	if err != nil {
		return nil, err
	}
	xs := make([]float64, n)
	for i, v := range vs {
		x, ok := v.Float64()
		if !ok {
			return nil, Errorf(ErrType, "One or more arguments to builtin '%s' couldn't be converted to numbers.", name)
		}
		xs[i] = x
	}
	return xs, nil
}

// Monadic wraps a function of one big.Float into a builtin. f must set out to
// its result, to the precision of out; its return value is ignored. If f is
// called on an argument outside its domain, it should panic with an error of
// type big.ErrNaN, or that unwraps to it.
func Monadic(name string, f func(out, in *big.Float) *big.Float) *Builtin {
	return &Builtin{Name: name, IsFunction: true, Fn: func(ctx *Context, args []*Value, internal bool) (r *Value) {
		xs, errv := RealArgs(ctx, name, args, 1)
		if errv != nil {
			return errv
		}
		if !finite(xs[0]) {
			return domainError(name, xs[0])
		}
		defer func() {
			p := recover()
			if p == nil {
				return
			}
			err := p.(error) // panic if not error
			if errors.As(err, &big.ErrNaN{}) {
				r = domainError(name, xs[0])
				return
			}
			panic(err)
		}()
		in := new(big.Float).SetPrec(ctx.Prec()).SetFloat64(xs[0])
		out := new(big.Float).SetPrec(ctx.Prec())
		f(out, in)
		x, _ := out.Float64()
		return NewReal(x)
	}}
}

func domainError(name string, x float64) *Value {
	return Errorf(ErrMath, "%s is outside the domain of %s.", FormatReal(x), name)
}

// Niladic wraps a function of zero variables, generally a function which
// computes a constant, into a constant builtin. f must set out to its result;
// its return value is always ignored.
func Niladic(name string, f func(out *big.Float) *big.Float) *Builtin {
	return &Builtin{Name: name, Fn: func(ctx *Context, args []*Value, internal bool) *Value {
		out := new(big.Float).SetPrec(ctx.Prec())
		f(out)
		x, _ := out.Float64()
		return NewReal(x)
	}}
}

// Real1 wraps a float64 function of one variable into a builtin.
func Real1(name string, f func(float64) float64) *Builtin {
	return &Builtin{Name: name, IsFunction: true, Fn: func(ctx *Context, args []*Value, internal bool) *Value {
		xs, err := RealArgs(ctx, name, args, 1)
		if err != nil {
			return err
		}
		return NewReal(f(xs[0]))
	}}
}

// Real2 wraps a float64 function of two variables into a builtin.
func Real2(name string, f func(x, y float64) float64) *Builtin {
	return &Builtin{Name: name, IsFunction: true, Fn: func(ctx *Context, args []*Value, internal bool) *Value {
		xs, err := RealArgs(ctx, name, args, 2)
		if err != nil {
			return err
		}
		return NewReal(f(xs[0], xs[1]))
	}}
}

// positive restricts f to positive arguments.
func positive(f func(out, in *big.Float) *big.Float) func(out, in *big.Float) *big.Float {
	return func(out, in *big.Float) *big.Float {
		if in.Sign() <= 0 {
			panic(big.ErrNaN{})
		}
		return f(out, in)
	}
}

func recip(f func(float64) float64) func(float64) float64 {
	return func(x float64) float64 { return 1 / f(x) }
}

func ofRecip(f func(float64) float64) func(float64) float64 {
	return func(x float64) float64 { return f(1 / x) }
}

var defaultBuiltins = []*Builtin{
	// constants
	Niladic("pi", bigfloat.Pi),
	Niladic("e", func(out *big.Float) *big.Float {
		var one big.Float
		one.SetFloat64(1)
		return bigfloat.Exp(out, &one)
	}),
	Niladic("phi", func(out *big.Float) *big.Float {
		out.SetInt64(5)
		out.Sqrt(out)
		out.Add(out, big.NewFloat(1))
		return out.Quo(out, big.NewFloat(2))
	}),

	{Name: "sqrt", IsFunction: true, Fn: builtinSqrt},
	{Name: "abs", IsFunction: true, Fn: builtinAbs},
	Monadic("exp", bigfloat.Exp),
	Monadic("ln", positive(bigfloat.Log)),
	Monadic("log", positive(func(out, in *big.Float) *big.Float {
		bigfloat.Log(out, in)
		in.SetFloat64(10).SetPrec(out.Prec())
		bigfloat.Log(in, in)
		return out.Quo(out, in)
	})),

	// trig
	Real1("sin", math.Sin),
	Real1("cos", math.Cos),
	Real1("tan", math.Tan),
	Real1("sec", recip(math.Cos)),
	Real1("csc", recip(math.Sin)),
	Real1("cot", recip(math.Tan)),
	Real1("asin", math.Asin),
	Real1("acos", math.Acos),
	Real1("atan", math.Atan),
	Real1("asec", ofRecip(math.Acos)),
	Real1("acsc", ofRecip(math.Asin)),
	Real1("acot", ofRecip(math.Atan)),
	Real2("atan2", math.Atan2),

	// hyperbolic
	Real1("sinh", math.Sinh),
	Real1("cosh", math.Cosh),
	Real1("tanh", math.Tanh),
	Real1("sech", recip(math.Cosh)),
	Real1("csch", recip(math.Sinh)),
	Real1("coth", recip(math.Tanh)),
	Real1("asinh", math.Asinh),
	Real1("acosh", math.Acosh),
	Real1("atanh", math.Atanh),
	Real1("asech", ofRecip(math.Acosh)),
	Real1("acsch", ofRecip(math.Asinh)),
	Real1("acoth", ofRecip(math.Atanh)),

	// vectors
	{Name: "dot", IsFunction: true, Fn: builtinDot},
	{Name: "cross", IsFunction: true, Fn: builtinCross},
	{Name: "map", IsFunction: true, Fn: builtinMap},
	{Name: "elem", IsFunction: true, Fn: builtinElem},
	{Name: "mag", IsFunction: true, Fn: builtinMag},
	{Name: "norm", IsFunction: true, Fn: builtinNorm},
}

// builtinSqrt computes x^(1/2), so that perfect squares stay exact.
func builtinSqrt(ctx *Context, args []*Value, internal bool) *Value {
	if err := Arity("sqrt", args, 1); err != nil {
		return err
	}
	return NewBinary(OpPow, args[0].Copy(), NewFrac(1, 2))
}

func builtinAbs(ctx *Context, args []*Value, internal bool) *Value {
	vs, err := CoerceArgs(ctx, "abs", args, 1)
	if err != nil {
		return err
	}
	switch x := vs[0]; x.kind {
	case KindInt:
		if x.ival < 0 {
			return NewInt(-x.ival)
		}
		return x
	case KindReal:
		return NewReal(math.Abs(x.rval))
	case KindFrac:
		if x.frac.n < 0 {
			x.frac.n = -x.frac.n
		}
		return x
	}
	return Errorf(ErrType, "One or more arguments to builtin 'abs' couldn't be converted to numbers.")
}
