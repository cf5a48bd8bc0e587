package supercalc

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// eof is the rune the lexer reports at the end of its input.
const eof = -1

// glyphs maps the pretty glyphs that the renderer produces back to the
// identifiers they stand for.
var glyphs = [...]struct{ glyph, name string }{
	{"π", "pi"},
	{"φ", "phi"},
	{"√", "sqrt"},
}

var glyphOf = func() map[string]string {
	m := make(map[string]string, len(glyphs))
	for _, g := range glyphs {
		m[g.name] = g.glyph
	}
	return m
}()

// lexer is a cursor into the input text. The parser drives it directly; there
// is no separate token stream.
type lexer struct {
	src string
	pos int
	// depth is the number of brackets open at the cursor. Running out of
	// input while it is positive asks more for a continuation line.
	depth int
	more  func() (string, bool)
}

func lex(src string) *lexer {
	return &lexer{src: src}
}

// peek returns the rune at the cursor, or eof.
func (l *lexer) peek() rune {
	if l.pos >= len(l.src) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(l.src[l.pos:])
	return r
}

// advance moves past the rune at the cursor.
func (l *lexer) advance() {
	_, sz := utf8.DecodeRuneInString(l.src[l.pos:])
	l.pos += sz
}

// accept advances if the rune at the cursor is r.
func (l *lexer) accept(r rune) bool {
	if l.peek() != r {
		return false
	}
	l.advance()
	return true
}

// col returns the 1-based rune column of the cursor.
func (l *lexer) col() int {
	return utf8.RuneCountInString(l.src[:l.pos]) + 1
}

// trimSpaces advances past whitespace and comments. A comment runs from # to
// the end of the line.
func (l *lexer) trimSpaces() {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c == '#':
			k := strings.IndexByte(l.src[l.pos:], '\n')
			if k < 0 {
				l.pos = len(l.src)
				return
			}
			l.pos += k + 1
		case c < utf8.RuneSelf:
			if !unicode.IsSpace(rune(c)) {
				return
			}
			l.pos++
		default:
			r, sz := utf8.DecodeRuneInString(l.src[l.pos:])
			if !unicode.IsSpace(r) {
				return
			}
			l.pos += sz
		}
	}
}

// fill trims spaces and, if the input ends inside brackets, appends
// continuation lines until there is something to scan. The result is false if
// the input is exhausted.
func (l *lexer) fill() bool {
	for {
		l.trimSpaces()
		if l.pos < len(l.src) {
			return true
		}
		if l.depth == 0 || l.more == nil {
			return false
		}
		line, ok := l.more()
		if !ok {
			return false
		}
		l.src += "\n" + line
	}
}

// identStart returns whether an identifier begins at the cursor.
func (l *lexer) identStart() bool {
	r := l.peek()
	if r == '_' || 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' {
		return true
	}
	for _, g := range glyphs {
		if strings.HasPrefix(l.src[l.pos:], g.glyph) {
			return true
		}
	}
	return false
}

// nextToken scans an identifier. A pretty glyph scans as the identifier it
// renders. The second result is false if there is no identifier at the
// cursor.
func (l *lexer) nextToken() (string, bool) {
	rest := l.src[l.pos:]
	for _, g := range glyphs {
		if strings.HasPrefix(rest, g.glyph) {
			l.pos += len(g.glyph)
			return g.name, true
		}
	}
	n := 0
	for n < len(rest) {
		c := rest[n]
		if c == '_' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || n > 0 && isDigit(c) {
			n++
			continue
		}
		break
	}
	if n == 0 {
		return "", false
	}
	l.pos += n
	return rest[:n], true
}

// sign consumes a leading minus and reports whether the next value is
// negated.
func (l *lexer) sign() bool {
	return l.accept('-')
}

// scanNum scans a numeric literal. Integer and floating-point scans race; the
// longer one wins, and the integer wins ties. A scan that overflows loses.
func (l *lexer) scanNum() (*Value, error) {
	s := l.src[l.pos:]
	ni := 0
	for ni < len(s) && isDigit(s[ni]) {
		ni++
	}
	nf, digits := ni, ni
	if nf < len(s) && s[nf] == '.' {
		nf++
		for nf < len(s) && isDigit(s[nf]) {
			nf++
			digits++
		}
	}
	if digits == 0 {
		nf = 0
	} else if nf < len(s) && (s[nf] == 'e' || s[nf] == 'E') {
		k := nf + 1
		if k < len(s) && (s[k] == '+' || s[k] == '-') {
			k++
		}
		e := k
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > e {
			nf = k
		}
	}

	var iv, fv *Value
	if ni > 0 {
		if x, err := strconv.ParseInt(s[:ni], 10, 64); err == nil {
			iv = NewInt(x)
		}
	}
	if nf > 0 {
		if x, err := strconv.ParseFloat(s[:nf], 64); err == nil {
			fv = NewReal(x)
		}
	}
	switch {
	case fv != nil && (iv == nil || nf > ni):
		l.pos += nf
		return fv, nil
	case iv != nil:
		l.pos += ni
		return iv, nil
	}
	return nil, l.badChar()
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// badChar creates a syntax error for the character at the cursor.
func (l *lexer) badChar() error {
	r := l.peek()
	if r == eof {
		return l.earlyEnd()
	}
	return &Error{Kind: ErrSyntax, Msg: "Unexpected character: '" + string(r) + "'.", Col: l.col()}
}

// earlyEnd creates a syntax error for running out of input.
func (l *lexer) earlyEnd() error {
	return &Error{Kind: ErrSyntax, Msg: "Premature end of input.", Col: l.col()}
}
