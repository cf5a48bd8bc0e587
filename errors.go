package supercalc

import (
	"fmt"
	"strconv"
)

// ErrorKind classifies an Error.
type ErrorKind int8

const (
	// ErrIgnore means there is nothing to report, e.g. for a blank line. It
	// never reaches users.
	ErrIgnore ErrorKind = iota
	// ErrMath is an arithmetic error, like division by zero or a complex
	// result.
	ErrMath
	// ErrSyntax is a malformed input error.
	ErrSyntax
	// ErrFatal is an unrecoverable error. It is the only kind after which
	// a read loop should stop.
	ErrFatal
	// ErrName is an unknown name or an illegal use of a reserved one.
	ErrName
	// ErrType is a wrong arity or a wrong kind of operand.
	ErrType
	// ErrRuntime is a resource limit, like the maximum call depth.
	ErrRuntime
	// ErrInternal indicates misuse of the package by internal callers.
	ErrInternal
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=ErrorKind -trimprefix=Err
//go:generate go mod tidy

// Error is an error from parsing or evaluation. Evaluation carries errors as
// values of KindError; Err and the package-level entry points unwrap them.
// Error implements InputError.
type Error struct {
	// Kind is the class of error.
	Kind ErrorKind
	// Msg is the human-readable message.
	Msg string
	// Col is the position in runes of the character that caused a syntax
	// error, or 0 if the error did not come from input text.
	Col int
}

func (err *Error) Error() string {
	s := err.Kind.String() + " Error: " + err.Msg
	if err.Col > 0 {
		s = errpos(err.Col, s)
	}
	return s
}

func (err *Error) Pos() int {
	return err.Col
}

// Recoverable returns whether a read loop can continue after err.
func (err *Error) Recoverable() bool {
	return err.Kind != ErrFatal
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input text implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the character that caused the error.
	Pos() int
}

var _ InputError = (*Error)(nil)

func newError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Errorf creates an error value of the given kind. It is meant for builtins.
func Errorf(kind ErrorKind, format string, args ...interface{}) *Value {
	return &Value{kind: KindError, err: newError(kind, format, args...)}
}

// Common errors.

func zeroDiv() *Value {
	return Errorf(ErrMath, "Division by zero.")
}

func zeroMod() *Value {
	return Errorf(ErrMath, "Modulus by zero.")
}

func complexResult() *Value {
	return Errorf(ErrMath, "Negative base to a fractional power has a complex result.")
}

func varNotFound(name string) *Value {
	return Errorf(ErrName, "No variable named '%s' found.", name)
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
