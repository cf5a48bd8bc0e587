package supercalc

func vectorArgs(ctx *Context, name string, args []*Value, n int) ([]*Value, *Value) {
	vs, err := CoerceArgs(ctx, name, args, n)
	if err != nil {
		return nil, err
	}
	for _, v := range vs {
		if v.kind != KindVector {
			return nil, Errorf(ErrType, "Builtin '%s' expects vector arguments, not %s.", name, v.kind)
		}
	}
	return vs, nil
}

// dot computes the dot product of two evaluated vectors.
func (ctx *Context) dot(a, b *Value) *Value {
	if len(a.list) != len(b.list) {
		return Errorf(ErrMath, "Cannot multiply vectors of different sizes.")
	}
	sum := NewInt(0)
	for i := range a.list {
		p := ctx.arith(OpMul, a.list[i], b.list[i])
		if p.kind == KindError {
			return p
		}
		sum = ctx.arith(OpAdd, sum, p)
		if sum.kind == KindError {
			return sum
		}
	}
	return sum
}

func builtinDot(ctx *Context, args []*Value, internal bool) *Value {
	vs, err := vectorArgs(ctx, "dot", args, 2)
	if err != nil {
		return err
	}
	return ctx.dot(vs[0], vs[1])
}

func builtinCross(ctx *Context, args []*Value, internal bool) *Value {
	vs, err := vectorArgs(ctx, "cross", args, 2)
	if err != nil {
		return err
	}
	a, b := vs[0].list, vs[1].list
	if len(a) != 3 || len(b) != 3 {
		return Errorf(ErrMath, "Vectors must each have a size of 3 for cross product.")
	}
	// a×b = <a1 b2 - a2 b1, a2 b0 - a0 b2, a0 b1 - a1 b0>
	term := func(i, j int) *Value {
		return NewBinary(OpSub,
			NewBinary(OpMul, a[i].Copy(), b[j].Copy()),
			NewBinary(OpMul, a[j].Copy(), b[i].Copy()),
		)
	}
	return NewVector(term(1, 2), term(2, 0), term(0, 1))
}

// builtinMap creates a vector of calls to a function on each element of a
// vector. The calls are evaluated when the result is simplified.
func builtinMap(ctx *Context, args []*Value, internal bool) *Value {
	if err := Arity("map", args, 2); err != nil {
		return err
	}
	f := ctx.eval(args[0])
	switch f.kind {
	case KindError:
		return f
	case KindVar, KindFunc, KindBuiltin:
		// callable
	default:
		return Errorf(ErrType, "Builtin 'map' expects a function, not %s.", f.kind)
	}
	v := ctx.Coerce(args[1])
	switch v.kind {
	case KindError:
		return v
	case KindVector:
		// ok
	default:
		return Errorf(ErrType, "Builtin 'map' expects a vector, not %s.", v.kind)
	}
	calls := make([]*Value, len(v.list))
	for i, x := range v.list {
		calls[i] = NewCall(f.Copy(), x)
	}
	return NewVector(calls...)
}

// builtinElem gets an element of a vector by zero-based index. Subscripts
// like v[i] are calls to it.
func builtinElem(ctx *Context, args []*Value, internal bool) *Value {
	vs, err := CoerceArgs(ctx, "elem", args, 2)
	if err != nil {
		return err
	}
	v, i := vs[0], vs[1]
	if v.kind != KindVector {
		return Errorf(ErrType, "Only vectors are subscriptable.")
	}
	if i.kind != KindInt {
		return Errorf(ErrType, "Vector index must be an integer.")
	}
	if i.ival < 0 || i.ival >= int64(len(v.list)) {
		return Errorf(ErrMath, "Vector index %d out of range for size %d.", i.ival, len(v.list))
	}
	return v.list[i.ival]
}

// mag computes the magnitude of an evaluated vector.
func (ctx *Context) mag(v *Value) *Value {
	d := ctx.dot(v, v)
	if d.kind == KindError {
		return d
	}
	return ctx.eval(NewBinary(OpPow, d, NewFrac(1, 2)))
}

func builtinMag(ctx *Context, args []*Value, internal bool) *Value {
	vs, err := vectorArgs(ctx, "mag", args, 1)
	if err != nil {
		return err
	}
	return ctx.mag(vs[0])
}

func builtinNorm(ctx *Context, args []*Value, internal bool) *Value {
	vs, err := vectorArgs(ctx, "norm", args, 1)
	if err != nil {
		return err
	}
	m := ctx.mag(vs[0])
	if m.kind == KindError {
		return m
	}
	return ctx.arith(OpDiv, vs[0], m)
}
