package supercalc

import (
	"strconv"
	"strings"
)

// String renders v as text that parses back to an equal value.
func (v *Value) String() string {
	var b strings.Builder
	v.fmt(&b, false)
	return b.String()
}

// Pretty renders v using Unicode glyphs for operators and well-known names.
// The parser accepts the result.
func (v *Value) Pretty() string {
	var b strings.Builder
	v.fmt(&b, true)
	return b.String()
}

// FormatReal formats a real to 15 significant digits.
func FormatReal(x float64) string {
	return strconv.FormatFloat(x, 'g', 15, 64)
}

func (v *Value) fmt(b *strings.Builder, alt bool) {
	if v == nil {
		b.WriteString("<nil>")
		return
	}
	switch v.kind {
	case KindInt:
		b.WriteString(strconv.FormatInt(v.ival, 10))
	case KindReal:
		b.WriteString(FormatReal(v.rval))
	case KindFrac:
		b.WriteString(strconv.FormatInt(v.frac.n, 10))
		if alt {
			b.WriteString("÷")
		} else {
			b.WriteByte('/')
		}
		b.WriteString(strconv.FormatInt(v.frac.d, 10))
	case KindBinary:
		if v.isNeg() {
			b.WriteByte('-')
			v.right.fmtOperand(b, v.op, true, alt)
			return
		}
		v.left.fmtOperand(b, v.op, false, alt)
		b.WriteByte(' ')
		b.WriteString(opText(v.op, alt))
		b.WriteByte(' ')
		v.right.fmtOperand(b, v.op, true, alt)
	case KindUnary:
		v.left.fmtOperand(b, v.op, false, alt)
		b.WriteString(opText(v.op, alt))
	case KindCall:
		if v.internal && v.left.kind == KindVar && v.left.name == "elem" && len(v.list) == 2 {
			v.list[0].fmtOperand(b, OpFact, false, alt)
			b.WriteByte('[')
			v.list[1].fmt(b, alt)
			b.WriteByte(']')
			return
		}
		switch v.left.kind {
		case KindVar, KindBuiltin, KindCall:
			v.left.fmt(b, alt)
		default:
			b.WriteByte('(')
			v.left.fmt(b, alt)
			b.WriteByte(')')
		}
		b.WriteByte('(')
		fmtList(b, v.list, alt)
		b.WriteByte(')')
	case KindVar:
		writeName(b, v.name, alt)
	case KindVector:
		b.WriteByte('<')
		fmtList(b, v.list, alt)
		b.WriteByte('>')
	case KindFunc:
		b.WriteByte('|')
		b.WriteString(strings.Join(v.fn.Params, ", "))
		b.WriteString("| ")
		v.fn.Body.fmt(b, alt)
	case KindBuiltin:
		writeName(b, v.blt.Name, alt)
	case KindPlaceholder:
		b.WriteByte('@')
		if v.slot != 0 {
			b.WriteRune(v.slot)
		}
		b.WriteString(strconv.FormatInt(v.ival, 10))
	case KindError:
		b.WriteString(v.err.Error())
	case KindEnd:
		// nothing
	default:
		panic("supercalc: invalid value kind " + v.kind.String() + " after writing " + b.String())
	}
}

// fmtOperand writes v as an operand of op, adding brackets if the parser would
// otherwise group it differently.
func (v *Value) fmtOperand(b *strings.Builder, op Op, right, alt bool) {
	if v.needsBrackets(op, right) {
		b.WriteByte('(')
		v.fmt(b, alt)
		b.WriteByte(')')
		return
	}
	v.fmt(b, alt)
}

func (v *Value) needsBrackets(op Op, right bool) bool {
	p := precOf(op)
	switch v.kind {
	case KindBinary:
		q := precOf(v.op)
		if q.prec != p.prec {
			return q.prec < p.prec
		}
		// Same precedence: brackets on the side that associativity doesn't
		// group by itself.
		return right != p.right
	case KindFunc:
		// Closure bodies extend as far as possible.
		return true
	case KindFrac:
		return p.prec > precOf(OpAdd).prec
	case KindInt, KindReal:
		// -2^2 is -(2^2).
		x, _ := v.Float64()
		return x < 0 && !right && p.prec >= precOf(OpPow).prec
	}
	return false
}

// isNeg returns whether v is the product the parser creates for a leading
// minus sign.
func (v *Value) isNeg() bool {
	return v.op == OpMul && v.left != nil && v.left.kind == KindInt && v.left.ival == -1
}

func fmtList(b *strings.Builder, list []*Value, alt bool) {
	for i, x := range list {
		if i > 0 {
			b.WriteString(", ")
		}
		x.fmt(b, alt)
	}
}

func writeName(b *strings.Builder, name string, alt bool) {
	if alt {
		if g, ok := glyphOf[name]; ok {
			b.WriteString(g)
			return
		}
	}
	b.WriteString(name)
}

func opText(op Op, alt bool) string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		if alt {
			return "×"
		}
		return "*"
	case OpDiv:
		if alt {
			return "÷"
		}
		return "/"
	case OpMod:
		return "%"
	case OpPow:
		return "^"
	case OpFact:
		return "!"
	}
	panic("supercalc: invalid operator " + op.String())
}
