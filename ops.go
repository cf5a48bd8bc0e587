package supercalc

import (
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// arith applies a binary operator to evaluated operands.
func (ctx *Context) arith(op Op, a, b *Value) *Value {
	if a.kind == KindVector || b.kind == KindVector {
		return ctx.vectorArith(op, a, b)
	}
	if !a.IsNumber() {
		return badOperand("left", op, a)
	}
	if !b.IsNumber() {
		return badOperand("right", op, b)
	}
	switch {
	case a.kind == KindReal || b.kind == KindReal:
		x, _ := a.Float64()
		y, _ := b.Float64()
		return realOp(op, x, y, ctx.prec)
	case a.kind == KindFrac:
		return a.frac.arith(op, b)
	case b.kind == KindFrac:
		return ratOp(op, a.ival, 1, b.frac.n, b.frac.d)
	}
	return intOp(op, a.ival, b.ival)
}

func badOperand(side string, op Op, v *Value) *Value {
	return Errorf(ErrType, "Bad %s operand type for %s: %s.", side, op, v.kind)
}

func intOp(op Op, a, b int64) *Value {
	switch op {
	case OpAdd:
		return NewInt(a + b)
	case OpSub:
		return NewInt(a - b)
	case OpMul:
		return NewInt(a * b)
	case OpDiv:
		if b == 0 {
			return zeroDiv()
		}
		if a%b == 0 {
			return NewInt(a / b)
		}
		return NewFrac(a, b)
	case OpMod:
		if b == 0 {
			return zeroMod()
		}
		return NewInt(floorMod(a, b))
	case OpPow:
		return ratPowInt(a, 1, b)
	}
	panic("supercalc: bad integer operator " + op.String())
}

func realOp(op Op, x, y float64, prec uint) *Value {
	switch op {
	case OpAdd:
		return NewReal(x + y)
	case OpSub:
		return NewReal(x - y)
	case OpMul:
		return NewReal(x * y)
	case OpDiv:
		if y == 0 {
			return zeroDiv()
		}
		return NewReal(x / y)
	case OpMod:
		if y == 0 {
			return zeroMod()
		}
		r := math.Mod(x, y)
		if r != 0 && (r < 0) != (y < 0) {
			r += y
		}
		return NewReal(r)
	case OpPow:
		return realPow(x, y, prec)
	}
	panic("supercalc: bad real operator " + op.String())
}

// realPow computes x^y, using bigfloat at the given precision for
// non-integer powers of positive finite bases.
func realPow(x, y float64, prec uint) *Value {
	integral := y == math.Trunc(y)
	switch {
	case x == 0 && y < 0:
		return zeroDiv()
	case x < 0 && !integral && !math.IsInf(y, 0):
		return complexResult()
	case x <= 0, integral, !finite(x), !finite(y):
		return NewReal(math.Pow(x, y))
	}
	var bx, by big.Float
	bx.SetPrec(prec).SetFloat64(x)
	by.SetPrec(prec).SetFloat64(y)
	r, _ := bigfloat.Pow(new(big.Float).SetPrec(prec), &bx, &by).Float64()
	return NewReal(r)
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// vectorArith applies a binary operator component-wise. A scalar operand is
// broadcast across the other's elements.
func (ctx *Context) vectorArith(op Op, a, b *Value) *Value {
	if op == OpMod {
		return Errorf(ErrType, "Modulus is not supported for vectors.")
	}
	var elems []*Value
	switch {
	case a.kind == KindVector && b.kind == KindVector:
		if len(a.list) != len(b.list) {
			return Errorf(ErrMath, "Cannot %s vectors of different sizes.", opVerb(op))
		}
		elems = make([]*Value, len(a.list))
		for i := range a.list {
			elems[i] = ctx.arith(op, a.list[i], b.list[i])
		}
	case a.kind == KindVector:
		elems = make([]*Value, len(a.list))
		for i, x := range a.list {
			elems[i] = ctx.arith(op, x, b)
		}
	default:
		elems = make([]*Value, len(b.list))
		for i, x := range b.list {
			elems[i] = ctx.arith(op, a, x)
		}
	}
	for _, x := range elems {
		if x.kind == KindError {
			return x
		}
	}
	return NewVector(elems...)
}

func opVerb(op Op) string {
	switch op {
	case OpAdd:
		return "add"
	case OpSub:
		return "subtract"
	case OpMul:
		return "multiply"
	case OpDiv:
		return "divide"
	case OpMod:
		return "modulo"
	case OpPow:
		return "exponentiate"
	}
	return op.String()
}

// maxFact is the largest factorial operand. 21! overflows int64.
const maxFact = 20

// unary applies a unary operator to an evaluated operand.
func (ctx *Context) unary(op Op, a *Value) *Value {
	if op != OpFact {
		panic("supercalc: bad unary operator " + op.String())
	}
	if a.kind != KindInt {
		return Errorf(ErrType, "Factorial operand must be an integer.")
	}
	switch {
	case a.ival > maxFact:
		return Errorf(ErrMath, "Factorial operand too large (%d > %d).", a.ival, maxFact)
	case a.ival < 0:
		return Errorf(ErrMath, "Factorial operand must not be negative.")
	}
	r := int64(1)
	for i := int64(2); i <= a.ival; i++ {
		r *= i
	}
	return NewInt(r)
}
