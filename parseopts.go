package supercalc

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

// SpecialFunc parses caller-defined syntax. src is the input following the
// trigger rune. It returns the parsed value and the number of bytes of src it
// consumed.
type SpecialFunc func(src string) (v *Value, n int, err error)

type (
	moreopt    func() (string, bool)
	specialopt struct {
		r  rune
		fn SpecialFunc
	}
)

// parsectx holds general data for parsing.
type parsectx struct {
	// more provides continuation lines.
	more func() (string, bool)
	// special maps trigger runes to caller-defined syntax.
	special map[rune]SpecialFunc
}

// Continue sets a function providing continuation lines for input that ends
// inside brackets. The function returns false when no more input is
// available, in which case parsing fails with a premature end of input.
func Continue(more func() (string, bool)) ParseOption {
	return moreopt(more)
}

func (o moreopt) parseOption(p parsectx) parsectx {
	p.more = o
	return p
}

// Special registers caller-defined syntax triggered by r where a value is
// expected. r cannot be a character that already begins a value, an
// operator, or whitespace.
func Special(r rune, fn SpecialFunc) ParseOption {
	if unicode.IsSpace(r) || unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune("-.(<|)>,[]+*/%^!#_=~×÷", r) {
		panic("supercalc: cannot use " + strconv.QuoteRune(r) + " for special syntax")
	}
	return &specialopt{r, fn}
}

func (o *specialopt) parseOption(p parsectx) parsectx {
	m := make(map[rune]SpecialFunc, len(p.special)+1)
	for k, v := range p.special {
		m[k] = v
	}
	m[o.r] = o.fn
	p.special = m
	return p
}

// Placeholders enables parsing @N and @kN as placeholders with index N and
// slot kind k. Placeholders mark where a caller will splice values into a
// parsed expression; evaluating one that remains is an error.
func Placeholders() ParseOption {
	return Special('@', parsePlaceholder)
}

func parsePlaceholder(src string) (*Value, int, error) {
	var k rune
	n := 0
	if len(src) > 0 && ('a' <= src[0] && src[0] <= 'z' || 'A' <= src[0] && src[0] <= 'Z') {
		k = rune(src[0])
		n++
	}
	m := n
	for m < len(src) && isDigit(src[m]) {
		m++
	}
	if m == n {
		return nil, 0, &Error{Kind: ErrSyntax, Msg: "Placeholder needs an index."}
	}
	i, err := strconv.Atoi(src[n:m])
	if err != nil {
		return nil, 0, &Error{Kind: ErrSyntax, Msg: "Placeholder index out of range."}
	}
	return NewPlaceholder(k, i), m, nil
}
