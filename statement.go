package supercalc

import (
	"strings"
)

// Statement is a parsed line of input: an expression, an assignment, a
// function definition, or a command to delete variables.
type Statement struct {
	kind stmtKind
	// name is the assigned, defined, or deleted variable.
	name   string
	params []string
	// val is the expression to evaluate. For in-place operators like +=, it
	// is the full binary expression.
	val *Value
}

type stmtKind int8

const (
	stmtExpr   stmtKind = iota // val
	stmtAssign                 // name = val
	stmtDefine                 // name(params) = val
	stmtDelete                 // ~name
	stmtClear                  // ~~~
)

// ParseStatement parses a line of input. Recognized forms are:
//
//	expr
//	name = expr
//	name op= expr, for op one of + - * / % ^ × ÷
//	name(params) = expr
//	~name, which deletes a variable
//	~~~, which deletes all variables except ans and builtins
//
// If src is blank, the error has kind ErrIgnore.
func ParseStatement(src string, opts ...ParseOption) (*Statement, error) {
	l := lex(src)
	l.trimSpaces()
	if l.pos == len(src) {
		return nil, &Error{Kind: ErrIgnore, Msg: "Blank statement."}
	}
	if l.accept('~') {
		return parseDelete(l)
	}
	eq := strings.IndexByte(src, '=')
	if c := strings.IndexByte(src, '#'); c >= 0 && c < eq {
		eq = -1
	}
	if eq < 0 {
		v, err := Parse(src, opts...)
		if err != nil {
			return nil, err
		}
		return &Statement{kind: stmtExpr, val: v}, nil
	}

	s, op, err := parseLHS(lex(src[:eq]))
	if err != nil {
		return nil, err
	}
	p := newParser(src, opts)
	p.pos = eq + 1
	v, err := p.parseExpr(0, 0)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, p.earlyEnd()
	}
	if op != OpNone {
		v = NewBinary(op, NewVar(s.name), v)
	}
	s.val = v
	return s, nil
}

func parseDelete(l *lexer) (*Statement, error) {
	s := Statement{kind: stmtDelete}
	if strings.HasPrefix(l.src[l.pos:], "~~") {
		l.pos += 2
		s.kind = stmtClear
	} else {
		l.trimSpaces()
		name, ok := l.nextToken()
		if !ok {
			return nil, l.badChar()
		}
		s.name = name
	}
	l.trimSpaces()
	if l.pos < len(l.src) {
		return nil, l.badChar()
	}
	return &s, nil
}

// parseLHS parses the part of an assignment before the =. The second result
// is the operator of an in-place assignment, or OpNone.
func parseLHS(l *lexer) (*Statement, Op, error) {
	l.trimSpaces()
	name, ok := l.nextToken()
	if !ok {
		if l.pos == len(l.src) {
			return nil, OpNone, &Error{Kind: ErrSyntax, Msg: "No variable to assign to.", Col: l.col()}
		}
		return nil, OpNone, l.badChar()
	}
	s := Statement{kind: stmtAssign, name: name}
	l.trimSpaces()
	op := OpNone
	switch l.peek() {
	case eof:
		return &s, OpNone, nil
	case '(':
		l.advance()
		s.kind = stmtDefine
		s.params = []string{}
		l.trimSpaces()
		if !l.accept(')') {
			for {
				l.trimSpaces()
				p, ok := l.nextToken()
				if !ok {
					return nil, OpNone, l.badChar()
				}
				s.params = append(s.params, p)
				l.trimSpaces()
				if l.accept(')') {
					break
				}
				if !l.accept(',') {
					return nil, OpNone, l.badChar()
				}
			}
		}
	case '+':
		op = OpAdd
	case '-':
		op = OpSub
	case '*', '×':
		op = OpMul
	case '/', '÷':
		op = OpDiv
	case '%':
		op = OpMod
	case '^':
		op = OpPow
	default:
		return nil, OpNone, l.badChar()
	}
	if op != OpNone {
		l.advance()
	}
	l.trimSpaces()
	if l.pos < len(l.src) {
		return nil, OpNone, l.badChar()
	}
	return &s, op, nil
}

// Name returns the variable that the statement assigns, defines, or deletes.
func (s *Statement) Name() string {
	return s.name
}

// Expr returns the expression the statement evaluates, or nil for deletions.
func (s *Statement) Expr() *Value {
	return s.val
}

func (s *Statement) String() string {
	switch s.kind {
	case stmtAssign:
		return s.name + " = " + s.val.String()
	case stmtDefine:
		return s.name + "(" + strings.Join(s.params, ", ") + ") = " + s.val.String()
	case stmtDelete:
		return "~" + s.name
	case stmtClear:
		return "~~~"
	}
	return s.val.String()
}

// Exec executes a statement. Expressions and assignments of numbers and
// vectors also set ans. Assignments and expressions yielding functions
// return the function; deletions return nil.
func (ctx *Context) Exec(s *Statement) (*Value, error) {
	switch s.kind {
	case stmtDelete:
		return nil, ctx.Delete(s.name)
	case stmtClear:
		ctx.Clear()
		return nil, nil
	case stmtDefine:
		f := NewFunc(s.params, s.val.Copy())
		if err := ctx.setGlobal(s.name, f); err != nil {
			return nil, err
		}
		return f, nil
	}
	r := ctx.Coerce(s.val)
	if err := r.Err(); err != nil {
		return nil, err
	}
	switch r.kind {
	case KindFunc:
		if s.kind == stmtAssign {
			if err := ctx.setGlobal(s.name, r); err != nil {
				return nil, err
			}
		}
		return r, nil
	case KindBuiltin:
		if s.kind == stmtAssign {
			return nil, newError(ErrType, "Cannot assign a variable to a builtin.")
		}
		return r, nil
	}
	if s.kind == stmtAssign {
		if err := ctx.setGlobal(s.name, r); err != nil {
			return nil, err
		}
	}
	if err := ctx.setGlobal("ans", r); err != nil {
		return nil, err
	}
	return r, nil
}

// Run parses and executes a line of input. Blank lines and deletions give a
// nil result with no error.
func (ctx *Context) Run(src string, opts ...ParseOption) (*Value, error) {
	s, err := ParseStatement(src, opts...)
	if err != nil {
		if e, ok := err.(*Error); ok && e.Kind == ErrIgnore {
			return nil, nil
		}
		return nil, err
	}
	return ctx.Exec(s)
}
