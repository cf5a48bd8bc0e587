package supercalc

// Expr = ['-'] Term { Op ['-'] Term }
// Op = '+' | '-' | '*' | '×' | '/' | '÷' | '%' | '^' | implicit '*' before ident, '(' or '<'
// Term = Primary { Postfix } { '!' }
// Primary = num | '(' Expr ')' | '<' Expr ',' Expr { ',' Expr } '>' | Closure | special | ident
// Closure = '|' [ ident { ',' ident } ] '|' Expr
// Postfix = '(' [ Expr { ',' Expr } ] ')' | '[' Expr ']'

// Parse parses an expression. The given options are applied in order. If src
// contains no expression, the error has kind ErrIgnore.
func Parse(src string, opts ...ParseOption) (*Value, error) {
	p := newParser(src, opts)
	v, err := p.parseExpr(0, 0)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, &Error{Kind: ErrIgnore, Msg: "No expression."}
	}
	return v, nil
}

type parser struct {
	*lexer
	special map[rune]SpecialFunc
}

func newParser(src string, opts []ParseOption) *parser {
	var pc parsectx
	for _, opt := range opts {
		pc = opt.parseOption(pc)
	}
	l := lex(src)
	l.more = pc.more
	return &parser{lexer: l, special: pc.special}
}

// parseExpr parses an expression up to sep, end, or the end of input, without
// consuming the terminator. sep and end may be 0 to mean none. If the
// expression is empty, the result is nil with no error; callers must create an
// error where that is illegal.
//
// Binary expressions are built by walking the right spine of the tree: a new
// operator descends past every spine node that binds more loosely than it and
// then takes the subtree at that point as its left operand, or becomes the
// right operand of the last spine node if it binds more tightly than all of
// them.
func (p *parser) parseExpr(sep, end rune) (*Value, error) {
	var root *Value
	// spine holds the binary nodes on the right edge of the tree. Only the
	// last one lacks its right operand.
	var spine []*Value
	attach := func(v *Value) {
		if root == nil {
			root = v
			return
		}
		spine[len(spine)-1].right = v
	}
	for {
		if !p.fill() {
			if p.depth > 0 || root != nil {
				return nil, p.earlyEnd()
			}
			return nil, nil
		}
		if p.sign() {
			// -x is (-1)*x.
			n := NewBinary(OpMul, NewInt(-1), nil)
			attach(n)
			spine = append(spine, n)
			continue
		}
		v, err := p.primary(sep, end)
		if err != nil {
			return nil, err
		}
		if v == nil {
			if root != nil {
				return nil, p.badChar()
			}
			return nil, nil
		}
		op, ok, err := p.binop(sep, end)
		if err != nil {
			return nil, err
		}
		if !ok {
			if root == nil {
				return v, nil
			}
			attach(v)
			return root, nil
		}
		if root == nil {
			root = NewBinary(op, v, nil)
			spine = append(spine, root)
			continue
		}
		q := precOf(op)
		i := 0
		for i < len(spine)-1 && precOf(spine[i].op).cmp(q) < 0 {
			i++
		}
		cur := spine[i]
		if precOf(cur.op).cmp(q) >= 0 {
			spine[len(spine)-1].right = v
			n := NewBinary(op, cur, nil)
			if i == 0 {
				root = n
			} else {
				spine[i-1].right = n
			}
			spine = append(spine[:i], n)
		} else {
			n := NewBinary(op, v, nil)
			cur.right = n
			spine = append(spine, n)
		}
	}
}

// binop scans a binary operator. The second result is false at the end of the
// expression. Implicit multiplication consumes nothing.
func (p *parser) binop(sep, end rune) (Op, bool, error) {
	if !p.fill() {
		if p.depth > 0 {
			return OpNone, false, p.earlyEnd()
		}
		return OpNone, false, nil
	}
	r := p.peek()
	if r == sep && sep != 0 || r == end && end != 0 {
		return OpNone, false, nil
	}
	var op Op
	switch r {
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
	case '(', '<':
		return OpMul, true, nil
	default:
		if p.identStart() {
			return OpMul, true, nil
		}
		return OpNone, false, p.badChar()
	}
	p.advance()
	return op, true, nil
}

// primary parses a value with its postfixes and factorials. The result is nil
// with no error at sep or end.
func (p *parser) primary(sep, end rune) (*Value, error) {
	r := p.peek()
	if r == sep && sep != 0 || r == end && end != 0 {
		return nil, nil
	}
	var v *Value
	var err error
	switch {
	case '0' <= r && r <= '9', r == '.':
		v, err = p.scanNum()
	case r == '(':
		v, err = p.group()
	case r == '<':
		v, err = p.vector()
	case r == '|':
		// The body of a closure extends to the end of the expression, so
		// nothing can follow it.
		return p.closure(sep, end)
	case p.special[r] != nil:
		v, err = p.callSpecial(r)
	default:
		name, ok := p.nextToken()
		if !ok {
			return nil, p.badChar()
		}
		v = NewVar(name)
	}
	if err != nil {
		return nil, err
	}
	if v.kind != KindInt && v.kind != KindReal {
		if v, err = p.postfix(v); err != nil {
			return nil, err
		}
	}
	for {
		p.trimSpaces()
		if !p.accept('!') {
			return v, nil
		}
		v = NewUnary(OpFact, v)
	}
}

// group parses a parenthesized expression.
func (p *parser) group() (*Value, error) {
	p.advance()
	p.depth++
	v, err := p.parseExpr(0, ')')
	if err != nil {
		return nil, err
	}
	if v == nil || !p.accept(')') {
		return nil, p.badChar()
	}
	p.depth--
	return v, nil
}

// vector parses a vector literal.
func (p *parser) vector() (*Value, error) {
	col := p.col()
	p.advance()
	p.depth++
	elems, err := p.list('>')
	if err != nil {
		return nil, err
	}
	p.depth--
	if len(elems) < 2 {
		return nil, &Error{Kind: ErrSyntax, Msg: "Vector must have at least 2 components.", Col: col}
	}
	return NewVector(elems...), nil
}

// list parses a comma-separated list of expressions through end, after the
// opening bracket has been consumed.
func (p *parser) list(end rune) ([]*Value, error) {
	var vs []*Value
	for {
		v, err := p.parseExpr(',', end)
		if err != nil {
			return nil, err
		}
		r := p.peek()
		if v == nil {
			// f() is allowed, but f(a,) isn't.
			if r == end && len(vs) == 0 {
				p.advance()
				return nil, nil
			}
			return nil, p.badChar()
		}
		vs = append(vs, v)
		p.advance()
		if r == end {
			return vs, nil
		}
	}
}

// closure parses a function literal.
func (p *parser) closure(sep, end rune) (*Value, error) {
	p.advance()
	p.depth++
	var params []string
	if !p.fill() {
		return nil, p.earlyEnd()
	}
	if !p.accept('|') {
		for {
			name, ok := p.nextToken()
			if !ok {
				return nil, p.badChar()
			}
			params = append(params, name)
			if !p.fill() {
				return nil, p.earlyEnd()
			}
			if p.accept('|') {
				break
			}
			if !p.accept(',') || !p.fill() {
				return nil, p.badChar()
			}
		}
	}
	p.depth--
	body, err := p.parseExpr(sep, end)
	if err != nil {
		return nil, err
	}
	if body == nil {
		return nil, p.badChar()
	}
	return NewFunc(params, body), nil
}

// postfix applies calls and subscripts to v.
func (p *parser) postfix(v *Value) (*Value, error) {
	for {
		p.trimSpaces()
		switch p.peek() {
		case '(':
			p.advance()
			p.depth++
			args, err := p.list(')')
			if err != nil {
				return nil, err
			}
			p.depth--
			v = NewCall(v, args...)
		case '[':
			p.advance()
			p.depth++
			i, err := p.parseExpr(0, ']')
			if err != nil {
				return nil, err
			}
			if i == nil || !p.accept(']') {
				return nil, p.badChar()
			}
			p.depth--
			v = internalCall("elem", v, i)
		default:
			return v, nil
		}
	}
}

// callSpecial parses caller-defined syntax.
func (p *parser) callSpecial(r rune) (*Value, error) {
	col := p.col()
	p.advance()
	v, n, err := p.special[r](p.src[p.pos:])
	if err != nil {
		if e, ok := err.(*Error); ok && e.Col == 0 {
			e.Col = col
		}
		return nil, err
	}
	if v == nil {
		return nil, &Error{Kind: ErrSyntax, Msg: "Special syntax " + string(r) + " produced no value.", Col: col}
	}
	p.pos += n
	return v, nil
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
}

// cmp compares binding strengths. The result is negative if a node for p
// must be an ancestor of a following node for q.
func (p operator) cmp(q operator) int {
	switch {
	case p.prec < q.prec:
		return -1
	case p.prec > q.prec:
		return 1
	case p.right:
		return -1
	}
	return 0
}

// precOf gets the precedence of an operator.
func precOf(op Op) operator {
	switch op {
	case OpAdd, OpSub:
		return operator{1, false}
	case OpMul, OpDiv, OpMod:
		return operator{5, false}
	case OpPow:
		return operator{15, true}
	case OpFact:
		return operator{20, false}
	}
	return operator{}
}
