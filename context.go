package supercalc

// Context is an environment for evaluating expressions: a global table, which
// always holds the special variable ans, and a stack of call frames. It is not
// safe to use a Context concurrently.
type Context struct {
	// globals is a list whose head is always ans.
	globals *Variable
	// frames holds the local tables of active calls, innermost last.
	frames   []*Variable
	prec     uint
	maxDepth int
}

// VarKind is the kind of a variable binding.
type VarKind int8

const (
	VarValue VarKind = iota
	VarFunc
	VarBuiltin
	VarError
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=VarKind -trimprefix=Var
//go:generate go mod tidy

// Variable is a binding of a name in a Context.
type Variable struct {
	Name string
	Kind VarKind
	// Val is the bound value. It is a KindFunc value for VarFunc, a
	// KindBuiltin value for VarBuiltin, and a KindError value for VarError.
	Val *Value

	next *Variable
}

// NewVariable binds name to v, choosing the kind of binding from the kind of
// v. v is not copied.
func NewVariable(name string, v *Value) *Variable {
	k := VarValue
	switch v.kind {
	case KindFunc:
		k = VarFunc
	case KindBuiltin:
		k = VarBuiltin
	case KindError:
		k = VarError
	}
	return &Variable{Name: name, Kind: k, Val: v}
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type (
	varopt struct {
		name string
		val  *Value
	}
	varsopt     map[string]*Value
	precopt     uint
	depthopt    int
	builtinsopt []*Builtin
	nodefopt    struct{}
)

func (varopt) ctxOption()      {}
func (varsopt) ctxOption()     {}
func (precopt) ctxOption()     {}
func (depthopt) ctxOption()    {}
func (builtinsopt) ctxOption() {}
func (nodefopt) ctxOption()    {}

// SetVar sets the value of a global variable in the context.
func SetVar(name string, val *Value) ContextOption {
	return varopt{name, val}
}

// SetVars sets the values of any number of global variables in the context.
func SetVars(vars map[string]*Value) ContextOption {
	return varsopt(vars)
}

// Prec sets the precision in bits of transcendental builtins.
func Prec(prec uint) ContextOption {
	return precopt(prec)
}

// MaxDepth sets the maximum depth of nested function calls.
func MaxDepth(n int) ContextOption {
	return depthopt(n)
}

// Builtins registers builtins in the context in addition to the defaults.
func Builtins(bs ...*Builtin) ContextOption {
	return builtinsopt(bs)
}

// NoDefaults creates a context without the default builtins. It only has an
// effect on NewContext.
func NoDefaults() ContextOption {
	return nodefopt{}
}

// NewContext creates a new evaluation context with the default builtins. If
// no precision is given, the default is 64.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{
		globals:  &Variable{Name: "ans", Kind: VarValue, Val: NewInt(0)},
		prec:     defaultPrec,
		maxDepth: 1024,
	}
	defaults := true
	for _, opt := range opts {
		if _, ok := opt.(nodefopt); ok {
			defaults = false
		}
	}
	if defaults {
		for _, b := range defaultBuiltins {
			if err := ctx.Register(b); err != nil {
				panic("supercalc: registering default builtin: " + err.Error())
			}
		}
	}
	return ctx.Clone(opts...)
}

const defaultPrec = 64

// Clone creates a copy of a context and applies options to it. Panics if ctx
// is in the middle of a function call.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	if len(ctx.frames) != 0 {
		panic("supercalc: Clone during call")
	}
	n := Context{prec: ctx.prec, maxDepth: ctx.maxDepth}
	l := &n.globals
	for v := ctx.globals; v != nil; v = v.next {
		c := *v
		if c.Kind != VarBuiltin {
			c.Val = v.Val.Copy()
		}
		*l = &c
		l = &c.next
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		var err error
		switch opt := opt.(type) {
		case varopt:
			err = n.SetGlobal(opt.name, opt.val)
		case varsopt:
			for k, v := range opt {
				if err = n.SetGlobal(k, v); err != nil {
					break
				}
			}
		case precopt:
			n.prec = uint(opt)
		case depthopt:
			n.maxDepth = int(opt)
		case builtinsopt:
			for _, b := range opt {
				if err = n.Register(b); err != nil {
					break
				}
			}
		case nodefopt:
			// Handled by NewContext.
		default:
			panic("supercalc: unknown option type")
		}
		if err != nil {
			panic("supercalc: applying context option: " + err.Error())
		}
	}
	return &n
}

// Prec returns the precision in bits of transcendental builtins.
func (ctx *Context) Prec() uint {
	return ctx.prec
}

// Get looks up a variable in the innermost call frame, then in the globals.
// The result is nil if there is no such variable. It must not be modified.
func (ctx *Context) Get(name string) *Variable {
	if len(ctx.frames) > 0 {
		if v := find(ctx.frames[len(ctx.frames)-1], name); v != nil {
			return v
		}
	}
	return find(ctx.globals, name)
}

// GetAbove is like Get, but it skips the innermost call frame. It resolves
// arguments of a call from the caller's scope after the callee's frame is
// pushed.
func (ctx *Context) GetAbove(name string) *Variable {
	if len(ctx.frames) > 1 {
		if v := find(ctx.frames[len(ctx.frames)-2], name); v != nil {
			return v
		}
	}
	return find(ctx.globals, name)
}

func find(l *Variable, name string) *Variable {
	for ; l != nil; l = l.next {
		if l.Name == name {
			return l
		}
	}
	return nil
}

// Lookup returns a copy of the value bound to a global name, or nil if there
// is none.
func (ctx *Context) Lookup(name string) *Value {
	v := find(ctx.globals, name)
	if v == nil {
		return nil
	}
	return v.Val.Copy()
}

// SetGlobal binds a global name to a copy of v, replacing any existing
// binding. Builtins cannot be rebound, and ans cannot hold a function.
func (ctx *Context) SetGlobal(name string, v *Value) error {
	if err := ctx.setGlobal(name, v); err != nil {
		return err
	}
	return nil
}

func (ctx *Context) setGlobal(name string, v *Value) *Error {
	old := find(ctx.globals, name)
	if old != nil && old.Kind == VarBuiltin {
		return newError(ErrType, "Unable to modify builtin variable '%s'.", name)
	}
	nv := NewVariable(name, v.Copy())
	if name == "ans" && nv.Kind != VarValue {
		return newError(ErrName, "Cannot redefine special variable 'ans' as a function.")
	}
	if old != nil {
		old.Kind, old.Val = nv.Kind, nv.Val
		return nil
	}
	ctx.AddGlobal(nv)
	return nil
}

// AddGlobal adds a global variable without checking for an existing binding.
// The new variable shadows any other of the same name.
func (ctx *Context) AddGlobal(v *Variable) {
	// ans stays first.
	v.next = ctx.globals.next
	ctx.globals.next = v
}

// addLocal adds a variable to the innermost call frame.
func (ctx *Context) addLocal(v *Variable) {
	k := len(ctx.frames) - 1
	if k < 0 {
		panic("supercalc: addLocal with no frame")
	}
	v.next = ctx.frames[k]
	ctx.frames[k] = v
}

// Register adds a builtin to the globals.
func (ctx *Context) Register(b *Builtin) error {
	if b.Name == "ans" {
		return newError(ErrName, "Cannot redefine special variable 'ans' as a function.")
	}
	if old := find(ctx.globals, b.Name); old != nil {
		return newError(ErrType, "Unable to modify builtin variable '%s'.", b.Name)
	}
	ctx.AddGlobal(&Variable{Name: b.Name, Kind: VarBuiltin, Val: NewBuiltinRef(b)})
	return nil
}

// Delete removes the first binding of name, looking in the innermost call
// frame and then the globals. ans and builtins cannot be deleted.
func (ctx *Context) Delete(name string) error {
	if name == "ans" {
		return newError(ErrName, "Cannot delete special variable 'ans'.")
	}
	if k := len(ctx.frames) - 1; k >= 0 {
		if remove(&ctx.frames[k], name) {
			return nil
		}
	}
	if v := find(ctx.globals, name); v != nil && v.Kind == VarBuiltin {
		return newError(ErrType, "Cannot delete builtin variable '%s'.", name)
	}
	if remove(&ctx.globals.next, name) {
		return nil
	}
	return varNotFound(name).err
}

// remove unlinks the first variable named name from a list.
func remove(l **Variable, name string) bool {
	for ; *l != nil; l = &(*l).next {
		if (*l).Name == name {
			*l = (*l).next
			return true
		}
	}
	return false
}

// Clear removes all global variables except ans and builtins.
func (ctx *Context) Clear() {
	l := &ctx.globals.next
	for *l != nil {
		if (*l).Kind == VarBuiltin {
			l = &(*l).next
			continue
		}
		*l = (*l).next
	}
}

// pushFrame starts a call frame. The result is an error value if the maximum
// depth is exceeded, otherwise nil.
func (ctx *Context) pushFrame() *Value {
	if len(ctx.frames) >= ctx.maxDepth {
		return Errorf(ErrRuntime, "Maximum call depth (%d) exceeded.", ctx.maxDepth)
	}
	ctx.frames = append(ctx.frames, nil)
	return nil
}

// popFrame discards the innermost call frame.
func (ctx *Context) popFrame() {
	k := len(ctx.frames) - 1
	ctx.frames[k] = nil
	ctx.frames = ctx.frames[:k]
}
