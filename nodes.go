package supercalc

// Value is a node in the abstract syntax tree of an expression, and also the
// result of evaluating one. Each Value exclusively owns its children.
type Value struct {
	kind Kind

	ival int64
	rval float64
	frac Fraction

	// op is the operator of a binary or unary expression.
	op Op
	// name is the name of a variable reference.
	name string

	// left is the left operand of a binary expression, the operand of a
	// unary expression, or the callee of a call.
	left *Value
	// right is the right operand of a binary expression.
	right *Value
	// list is the arguments of a call or the elements of a vector.
	list []*Value

	fn  *Function
	blt *Builtin
	err *Error

	// slot is the kind of a placeholder. Its index is ival.
	slot rune
	// internal marks calls that the parser synthesized, like subscripts.
	internal bool
}

// Kind is the kind of a Value.
type Kind int8

const (
	KindNone Kind = iota

	KindInt         // ival
	KindReal        // rval
	KindFrac        // frac, always reduced
	KindBinary      // op applied to left and right
	KindUnary       // op applied to left
	KindCall        // left is the callee, list is the args
	KindVar         // reference to the variable name
	KindVector      // list is the elements
	KindFunc        // fn
	KindBuiltin     // blt
	KindPlaceholder // slot, ival
	KindError       // err
	KindEnd         // end of input
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=Kind -trimprefix=Kind
//go:generate go run golang.org/x/tools/cmd/stringer -type=Op -trimprefix=Op
//go:generate go mod tidy

// Op is an operator.
type Op int8

const (
	OpNone Op = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
	OpPow
	OpFact
)

// Function is a user-defined function. Parameter names need not be unique;
// later parameters shadow earlier ones.
type Function struct {
	Params []string
	Body   *Value
}

// NewInt creates an integer value.
func NewInt(x int64) *Value {
	return &Value{kind: KindInt, ival: x}
}

// NewReal creates a real value.
func NewReal(x float64) *Value {
	return &Value{kind: KindReal, rval: x}
}

// NewBinary creates a binary expression.
func NewBinary(op Op, left, right *Value) *Value {
	return &Value{kind: KindBinary, op: op, left: left, right: right}
}

// NewUnary creates a unary expression. The only unary operator is OpFact.
func NewUnary(op Op, x *Value) *Value {
	return &Value{kind: KindUnary, op: op, left: x}
}

// NewCall creates a call expression.
func NewCall(callee *Value, args ...*Value) *Value {
	return &Value{kind: KindCall, left: callee, list: args}
}

// NewVar creates a variable reference.
func NewVar(name string) *Value {
	return &Value{kind: KindVar, name: name}
}

// NewVector creates a vector from its elements.
func NewVector(elems ...*Value) *Value {
	return &Value{kind: KindVector, list: elems}
}

// NewFunc creates a function literal.
func NewFunc(params []string, body *Value) *Value {
	return &Value{kind: KindFunc, fn: &Function{Params: params, Body: body}}
}

// NewBuiltinRef creates a reference to a builtin.
func NewBuiltinRef(b *Builtin) *Value {
	return &Value{kind: KindBuiltin, blt: b}
}

// NewPlaceholder creates a placeholder for slot kind k with index i.
func NewPlaceholder(k rune, i int) *Value {
	return &Value{kind: KindPlaceholder, slot: k, ival: int64(i)}
}

// internalCall creates a call to a named builtin that the parser synthesized.
func internalCall(name string, args ...*Value) *Value {
	return &Value{kind: KindCall, left: NewVar(name), list: args, internal: true}
}

// Kind returns the kind of v.
func (v *Value) Kind() Kind {
	return v.kind
}

// Int returns the value of an integer.
func (v *Value) Int() int64 {
	return v.ival
}

// Real returns the value of a real.
func (v *Value) Real() float64 {
	return v.rval
}

// Frac returns the value of a fraction.
func (v *Value) Frac() Fraction {
	return v.frac
}

// Op returns the operator of a binary or unary expression.
func (v *Value) Op() Op {
	return v.op
}

// Left returns the left operand of a binary expression, the operand of a
// unary expression, or the callee of a call.
func (v *Value) Left() *Value {
	return v.left
}

// Right returns the right operand of a binary expression.
func (v *Value) Right() *Value {
	return v.right
}

// Args returns the arguments of a call. The slice must not be modified.
func (v *Value) Args() []*Value {
	return v.list
}

// Elems returns the elements of a vector. The slice must not be modified.
func (v *Value) Elems() []*Value {
	return v.list
}

// Name returns the name of a variable reference.
func (v *Value) Name() string {
	return v.name
}

// Func returns the function of a function literal.
func (v *Value) Func() *Function {
	return v.fn
}

// Builtin returns the builtin of a builtin reference.
func (v *Value) Builtin() *Builtin {
	return v.blt
}

// Slot returns the slot kind and index of a placeholder.
func (v *Value) Slot() (rune, int) {
	return v.slot, int(v.ival)
}

// Err returns the error of an error value. For any other kind, the result is
// nil.
func (v *Value) Err() error {
	if v == nil || v.kind != KindError {
		return nil
	}
	return v.err
}

// IsNumber returns whether v is an integer, fraction, or real.
func (v *Value) IsNumber() bool {
	switch v.kind {
	case KindInt, KindReal, KindFrac:
		return true
	}
	return false
}

// Float64 returns the value of a number as a float64. The second result is
// false if v is not a number.
func (v *Value) Float64() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.ival), true
	case KindReal:
		return v.rval, true
	case KindFrac:
		return v.frac.Float64(), true
	}
	return 0, false
}

// Copy returns a deep copy of v. Builtins are shared.
func (v *Value) Copy() *Value {
	if v == nil {
		return nil
	}
	r := *v
	r.left = v.left.Copy()
	r.right = v.right.Copy()
	if v.list != nil {
		r.list = make([]*Value, len(v.list))
		for i, x := range v.list {
			r.list[i] = x.Copy()
		}
	}
	if v.fn != nil {
		r.fn = &Function{
			Params: append([]string(nil), v.fn.Params...),
			Body:   v.fn.Body.Copy(),
		}
	}
	if v.err != nil {
		e := *v.err
		r.err = &e
	}
	return &r
}

// Vars returns the sorted names of variables referenced in v.
func (v *Value) Vars() []string {
	seen := make(map[string]bool)
	v.vars(seen)
	names := make([]string, 0, len(seen))
	for k := range seen {
		names = append(names, k)
	}
	sortstrs(names)
	return names
}

func (v *Value) vars(seen map[string]bool) {
	if v == nil {
		return
	}
	if v.kind == KindVar {
		seen[v.name] = true
		return
	}
	if v.kind == KindCall && v.internal {
		// The callee of a synthesized call is a builtin, not something the
		// user wrote.
		for _, x := range v.list {
			x.vars(seen)
		}
		return
	}
	v.left.vars(seen)
	v.right.vars(seen)
	for _, x := range v.list {
		x.vars(seen)
	}
	if v.fn != nil {
		v.fn.Body.vars(seen)
	}
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}
