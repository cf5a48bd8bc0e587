package supercalc_test

import (
	"errors"
	"testing"

	"github.com/zephyrtronium/supercalc"
)

// session runs lines in order and checks each result. An empty want means the
// line produces no result; a want starting with "!" is an expected error
// message.
type session []struct {
	src  string
	want string
}

func (s session) run(t *testing.T, ctx *supercalc.Context) {
	t.Helper()
	for _, l := range s {
		v, err := ctx.Run(l.src)
		if err != nil {
			var e *supercalc.Error
			if !errors.As(err, &e) {
				t.Fatalf("%q gave wrong error type %T", l.src, err)
			}
			if "!"+e.Msg != l.want {
				t.Errorf("%q failed: want %q, got %v", l.src, l.want, err)
			}
			continue
		}
		got := ""
		if v != nil {
			got = v.String()
		}
		if got != l.want {
			t.Errorf("%q gave wrong result: want %q, got %q", l.src, l.want, got)
		}
	}
}

func TestStatements(t *testing.T) {
	cases := []struct {
		name  string
		lines session
	}{
		{"scoping", session{
			{"x = 7", "7"},
			{"f(x) = 4x", "|x| 4 * x"},
			{"f(6)", "24"},
			{"x", "7"},
		}},
		{"ans", session{
			{"8", "8"},
			{"other(x) = x + ans", "|x| x + ans"},
			{"other(4)", "12"},
			{"other(4)", "16"},
			{"ans", "16"},
		}},
		{"in-place", session{
			{"y = 10", "10"},
			{"y += 5", "15"},
			{"y -= 3", "12"},
			{"y *= 2", "24"},
			{"y /= 5", "24/5"},
			{"y ^= 2", "576/25"},
			{"y %= 1", "1/25"},
			{"y ×= 25", "1"},
			{"y ÷= 4", "1/4"},
			{"y", "1/4"},
			{"z += 1", "!No variable named 'z' found."},
		}},
		{"assign-sets-ans", session{
			{"a = 2 + 3", "5"},
			{"ans", "5"},
			{"b = ans a", "25"},
		}},
		{"functions-keep-ans", session{
			{"5", "5"},
			{"g = |x| x + 1", "|x| x + 1"},
			{"g(2)", "3"},
			{"h(x, y) = x y", "|x, y| x * y"},
			{"g", "|x| x + 1"},
			{"ans", "3"},
		}},
		{"function-redefine", session{
			{"f(x) = x", "|x| x"},
			{"f(x) = 2x", "|x| 2 * x"},
			{"f(3)", "6"},
			{"f = 3", "3"},
			{"f(2)", "6"},
			{"f(1, 2)", "!Variable 'f' is not a function."},
		}},
		{"higher-order", session{
			{"twice(f, x) = f(f(x))", "|f, x| f(f(x))"},
			{"inc(x) = x + 1", "|x| x + 1"},
			{"twice(inc, 5)", "7"},
			{"twice(|y| 3y, 2)", "18"},
			{"twice(sqrt, 16)", "2"},
			{"apply(g, v) = map(g, v)", "|g, v| map(g, v)"},
			{"apply(inc, <1, 2>)", "<2, 3>"},
		}},
		{"arguments-in-caller-scope", session{
			{"n = 10", "10"},
			{"k(n, m) = n + m", "|n, m| n + m"},
			{"k(1, n)", "11"},
			{"j(n) = k(n, n)", "|n| k(n, n)"},
			{"j(3)", "6"},
		}},
		{"builtins", session{
			{"sqrt", "sqrt"},
			{"s = sqrt", "!Cannot assign a variable to a builtin."},
			{"pi = 3", "!Unable to modify builtin variable 'pi'."},
			{"sqrt(x) = x", "!Unable to modify builtin variable 'sqrt'."},
		}},
		{"ans-reserved", session{
			{"ans = 3", "3"},
			{"ans", "3"},
			{"ans = |x| x", "!Cannot redefine special variable 'ans' as a function."},
			{"ans(x) = x", "!Cannot redefine special variable 'ans' as a function."},
			{"~ans", "!Cannot delete special variable 'ans'."},
			{"ans", "3"},
		}},
		{"delete", session{
			{"a = 1", "1"},
			{"~a", ""},
			{"a", "!No variable named 'a' found."},
			{"~a", "!No variable named 'a' found."},
			{"~pi", "!Cannot delete builtin variable 'pi'."},
			{"f(x) = x", "|x| x"},
			{" ~ f ", ""},
			{"f(1)", "!No variable named 'f' found."},
		}},
		{"clear", session{
			{"a = 1", "1"},
			{"b(x) = x", "|x| x"},
			{"~~~", ""},
			{"a", "!No variable named 'a' found."},
			{"b(1)", "!No variable named 'b' found."},
			{"ans", "1"},
			{"2pi / pi", "2"},
		}},
		{"blank", session{
			{"", ""},
			{"   ", ""},
			{"# just a comment", ""},
			{"x = 1 # x=2", "1"},
			{"1 + 2 # a=b", "3"},
		}},
		{"multiply-variable", session{
			{"x = 3", "3"},
			{"x(2)", "6"},
			{"2x", "6"},
			{"x(1, 2)", "!Variable 'x' is not a function."},
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			c.lines.run(t, supercalc.NewContext())
		})
	}
}

func TestCallDepth(t *testing.T) {
	ctx := supercalc.NewContext(supercalc.MaxDepth(16))
	session{
		{"loop(x) = loop(x)", "|x| loop(x)"},
		{"loop(1)", "!Maximum call depth (16) exceeded."},
		{"(|f| f(f))(|f| f(f))", "!Maximum call depth (16) exceeded."},
		{"1 + 1", "2"},
	}.run(t, ctx)
	// All frames must be gone.
	ctx.Clone()
	var e *supercalc.Error
	_, err := ctx.Run("loop(2)")
	if !errors.As(err, &e) || e.Kind != supercalc.ErrRuntime {
		t.Errorf("wrong error kind %v", err)
	}
}

func TestParseStatement(t *testing.T) {
	cases := []struct {
		src  string
		want string
		name string
	}{
		{"1 + 2", "1 + 2", ""},
		{"a = 1 + 2", "a = 1 + 2", "a"},
		{"a += 2", "a = a + 2", "a"},
		{"a ^= 1/2", "a = a ^ (1 / 2)", "a"},
		{"f(x, y) = x y", "f(x, y) = x * y", "f"},
		{"f() = 1", "f() = 1", "f"},
		{"f ( x ) = x", "f(x) = x", "f"},
		{"~a", "~a", "a"},
		{"~~~", "~~~", ""},
		{"π = 3", "pi = 3", "pi"},
	}
	for _, c := range cases {
		s, err := supercalc.ParseStatement(c.src)
		if err != nil {
			t.Errorf("%q failed to parse: %v", c.src, err)
			continue
		}
		if got := s.String(); got != c.want {
			t.Errorf("%q parsed wrong: want %q, got %q", c.src, c.want, got)
		}
		if s.Name() != c.name {
			t.Errorf("%q assigns %q, want %q", c.src, s.Name(), c.name)
		}
	}
}

func TestParseStatementErrors(t *testing.T) {
	cases := []struct {
		src  string
		kind supercalc.ErrorKind
		msg  string
		col  int
	}{
		{"", supercalc.ErrIgnore, "Blank statement.", 0},
		{"= 5", supercalc.ErrSyntax, "No variable to assign to.", 1},
		{"2 = 3", supercalc.ErrSyntax, "Unexpected character: '2'.", 1},
		{"f(1) = 2", supercalc.ErrSyntax, "Unexpected character: '1'.", 3},
		{"f(x,) = 2", supercalc.ErrSyntax, "Unexpected character: ')'.", 5},
		{"a b = 3", supercalc.ErrSyntax, "Unexpected character: 'b'.", 3},
		{"a =", supercalc.ErrSyntax, "Premature end of input.", 4},
		{"a += ", supercalc.ErrSyntax, "Premature end of input.", 6},
		{"a == 1", supercalc.ErrSyntax, "Unexpected character: '='.", 4},
		{"~", supercalc.ErrSyntax, "Premature end of input.", 2},
		{"~1", supercalc.ErrSyntax, "Unexpected character: '1'.", 2},
		{"~a b", supercalc.ErrSyntax, "Unexpected character: 'b'.", 4},
		{"~~~~", supercalc.ErrSyntax, "Unexpected character: '~'.", 4},
	}
	for _, c := range cases {
		_, err := supercalc.ParseStatement(c.src)
		var e *supercalc.Error
		if !errors.As(err, &e) {
			t.Errorf("%q gave wrong error %#v", c.src, err)
			continue
		}
		if e.Kind != c.kind || e.Msg != c.msg || e.Col != c.col {
			t.Errorf("%q gave wrong error: want %v %q at %d, got %v %q at %d", c.src, c.kind, c.msg, c.col, e.Kind, e.Msg, e.Col)
		}
	}
}

func TestRunContinue(t *testing.T) {
	lines := []string{"2,", "3>"}
	more := func() (string, bool) {
		if len(lines) == 0 {
			return "", false
		}
		s := lines[0]
		lines = lines[1:]
		return s, true
	}
	ctx := supercalc.NewContext()
	v, err := ctx.Run("v = <1,", supercalc.Continue(more))
	if err != nil {
		t.Fatal(err)
	}
	if v.String() != "<1, 2, 3>" {
		t.Errorf("wrong result %v", v)
	}
	if v := ctx.Lookup("v"); v == nil || v.String() != "<1, 2, 3>" {
		t.Errorf("v is %v", v)
	}
}
