package supercalc

// Eval evaluates v in ctx. If evaluation fails, the result has kind
// KindError; v.Err returns the error. Variables bound to functions and
// builtins evaluate to references to them rather than being called.
func (ctx *Context) Eval(v *Value) *Value {
	return ctx.eval(v)
}

// Coerce evaluates v in ctx and resolves the result further until it is a
// concrete value: references to functions resolve to the functions themselves,
// and builtin constants like pi are computed.
func (ctx *Context) Coerce(v *Value) *Value {
	r := ctx.eval(v)
	for {
		switch {
		case r.kind == KindVar:
			b := ctx.Get(r.name)
			if b == nil {
				return varNotFound(r.name)
			}
			switch b.Kind {
			case VarBuiltin:
				if b.Val.blt.IsFunction {
					return NewBuiltinRef(b.Val.blt)
				}
				r = ctx.invoke(b.Val.blt, nil, false)
			case VarFunc:
				return b.Val.Copy()
			default:
				r = ctx.eval(b.Val)
			}
		case r.kind == KindBuiltin && !r.blt.IsFunction:
			r = ctx.invoke(r.blt, nil, false)
		default:
			return r
		}
	}
}

func (ctx *Context) eval(v *Value) *Value {
	if v == nil {
		return Errorf(ErrInternal, "Evaluated a missing value.")
	}
	switch v.kind {
	case KindInt, KindReal, KindFrac, KindError, KindFunc, KindBuiltin:
		return v.Copy()
	case KindBinary:
		a := ctx.Coerce(v.left)
		if a.kind == KindError {
			return a
		}
		b := ctx.Coerce(v.right)
		if b.kind == KindError {
			return b
		}
		return ctx.arith(v.op, a, b)
	case KindUnary:
		a := ctx.Coerce(v.left)
		if a.kind == KindError {
			return a
		}
		return ctx.unary(v.op, a)
	case KindCall:
		callee := v.left
		if callee.kind != KindVar {
			callee = ctx.eval(callee)
			if callee.kind == KindError {
				return callee
			}
		}
		return ctx.apply(callee, v.list, v.internal)
	case KindVar:
		return ctx.evalVar(v.name)
	case KindVector:
		elems := make([]*Value, len(v.list))
		for i, x := range v.list {
			r := ctx.Coerce(x)
			if r.kind == KindError {
				return r
			}
			elems[i] = r
		}
		return NewVector(elems...)
	case KindPlaceholder:
		return Errorf(ErrInternal, "Unfilled placeholder %s.", v)
	case KindEnd:
		return Errorf(ErrSyntax, "Premature end of input.")
	}
	return Errorf(ErrFatal, "Invalid value kind %s.", v.kind)
}

func (ctx *Context) evalVar(name string) *Value {
	b := ctx.Get(name)
	if b == nil {
		return varNotFound(name)
	}
	switch b.Kind {
	case VarFunc, VarBuiltin:
		return NewVar(name)
	case VarError:
		return b.Val.Copy()
	}
	return ctx.eval(b.Val)
}

// apply calls an evaluated callee with unevaluated arguments.
func (ctx *Context) apply(callee *Value, args []*Value, internal bool) *Value {
	switch callee.kind {
	case KindVar:
		var b *Variable
		if internal {
			// Synthesized calls always mean the builtin, even if a local
			// shadows its name.
			b = find(ctx.globals, callee.name)
		} else {
			b = ctx.Get(callee.name)
		}
		if b == nil {
			return varNotFound(callee.name)
		}
		switch b.Kind {
		case VarFunc:
			return ctx.callFunc(b.Val.fn, args)
		case VarBuiltin:
			return ctx.callBuiltin(b.Val.blt, args, internal)
		case VarError:
			return b.Val.Copy()
		}
		if len(args) != 1 {
			return Errorf(ErrType, "Variable '%s' is not a function.", callee.name)
		}
		x := ctx.Coerce(b.Val)
		if x.kind == KindError {
			return x
		}
		return ctx.multiply(x, args[0])
	case KindFunc:
		return ctx.callFunc(callee.fn, args)
	case KindBuiltin:
		return ctx.callBuiltin(callee.blt, args, internal)
	}
	if len(args) == 1 && (callee.IsNumber() || callee.kind == KindVector) {
		// (2)(3) is 2*3.
		return ctx.multiply(callee, args[0])
	}
	return Errorf(ErrType, "'%s' is not callable.", callee)
}

// multiply multiplies an evaluated value by an unevaluated argument.
func (ctx *Context) multiply(x, arg *Value) *Value {
	y := ctx.Coerce(arg)
	if y.kind == KindError {
		return y
	}
	return ctx.arith(OpMul, x, y)
}

// callFunc calls a user-defined function. Arguments are evaluated in the
// caller's scope. An argument that evaluates to a reference to a function or
// builtin binds a copy of what it references in the caller's scope.
func (ctx *Context) callFunc(fn *Function, args []*Value) *Value {
	if len(args) != len(fn.Params) {
		return Errorf(ErrType, "Function expects %d argument%s, not %d.", len(fn.Params), plural(len(fn.Params)), len(args))
	}
	vals := make([]*Value, len(args))
	for i, a := range args {
		r := ctx.eval(a)
		if r.kind == KindError {
			return r
		}
		vals[i] = r
	}
	if err := ctx.pushFrame(); err != nil {
		return err
	}
	defer ctx.popFrame()
	for i, name := range fn.Params {
		r := vals[i]
		if r.kind == KindVar {
			b := ctx.GetAbove(r.name)
			if b == nil {
				return varNotFound(r.name)
			}
			ctx.addLocal(&Variable{Name: name, Kind: b.Kind, Val: b.Val.Copy()})
			continue
		}
		ctx.addLocal(NewVariable(name, r))
	}
	r := ctx.eval(fn.Body)
	if r.kind == KindVar {
		// The reference may name a local, which is about to go away.
		b := ctx.Get(r.name)
		if b == nil {
			return varNotFound(r.name)
		}
		return b.Val.Copy()
	}
	return r
}

// callBuiltin calls a builtin with unevaluated arguments. Calling a constant
// with one argument multiplies: pi(2) is pi*2.
func (ctx *Context) callBuiltin(b *Builtin, args []*Value, internal bool) *Value {
	if !b.IsFunction {
		switch len(args) {
		case 0:
		case 1:
			x := ctx.invoke(b, nil, internal)
			if x.kind == KindError {
				return x
			}
			return ctx.multiply(x, args[0])
		default:
			return Errorf(ErrType, "Builtin '%s' is not a function.", b.Name)
		}
	}
	return ctx.invoke(b, args, internal)
}

// invoke runs a builtin's callback and simplifies its result.
func (ctx *Context) invoke(b *Builtin, args []*Value, internal bool) *Value {
	r := b.Fn(ctx, args, internal)
	if r == nil {
		return Errorf(ErrInternal, "Builtin '%s' returned no value.", b.Name)
	}
	r = ctx.eval(r)
	if r.kind == KindReal && !finite(r.rval) {
		return Errorf(ErrMath, "Builtin function '%s' returned an invalid value.", b.Name)
	}
	return r
}

// EvalString is a shortcut to parse an expression and evaluate it in a new
// context.
func EvalString(src string, opts ...ContextOption) (*Value, error) {
	v, err := Parse(src)
	if err != nil {
		return nil, err
	}
	r := NewContext(opts...).Coerce(v)
	if err := r.Err(); err != nil {
		return nil, err
	}
	return r, nil
}
