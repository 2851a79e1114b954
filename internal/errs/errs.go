// Package errs implements the interpreter's structured error state: a
// closed set of error kinds, the fields each kind carries, and the
// human-readable report format the driver prints on failure.
//
// Errors are ordinary Go errors returned up the call stack; every
// producer in the interpreter returns one on failure instead of a
// bare string, so callers can branch on Kind and render a consistent
// report.
package errs

import (
	"fmt"
	"strings"

	"github.com/conneroisu/lith/internal/value"
)

// Kind is one of the eight error kinds the interpreter can raise.
type Kind byte

const (
	KindEOF Kind = iota
	KindSyntax
	KindNoMem
	KindUnbound
	KindRedefine
	KindArity
	KindType
	KindCustom
)

var kindNames = map[Kind]string{
	KindEOF:      "EOF",
	KindSyntax:   "syntax",
	KindNoMem:    "out-of-memory",
	KindUnbound:  "unbound symbol",
	KindRedefine: "redefine",
	KindArity:    "wrong-arity",
	KindType:     "type",
	KindCustom:   "custom",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Nargs carries the expected/got argument counts for a KindArity error.
type Nargs struct {
	Expected int
	Got      int
	Exact    bool // false means Expected is a lower bound (variadic)
}

// TypeMismatch carries the expected/got kinds and 1-based argument index
// for a KindType error.
type TypeMismatch struct {
	Expected value.Kind
	Got      value.Kind
	Narg     int
}

// Err is the structured error every producer in the interpreter returns
// on failure. It implements the standard error interface via Error, and
// Report renders the full `lith: FILE: KIND: MESSAGE [in 'NAME']` form.
type Err struct {
	Kind    Kind
	Message string
	Callee  string      // optional: the name of the function/form involved
	Nargs   Nargs        // set when Kind == KindArity
	Type    TypeMismatch // set when Kind == KindType
	Expr    value.Value  // optional: the offending expression, if known
	// Success marks a KindEOF error as "clean end of input", i.e. not
	// actually an error to the user.
	Success bool
}

func (e *Err) Error() string {
	if e.Message != "" {
		return e.Message
	}

	return e.Kind.String()
}

// New builds a plain error of the given kind with a message.
func New(kind Kind, msg string) *Err {
	return &Err{Kind: kind, Message: msg}
}

// EOF builds the "clean end of input" sentinel: a KindEOF error with
// Success set, which the driver treats as normal termination rather
// than a reported failure.
func EOF() *Err {
	return &Err{Kind: KindEOF, Success: true, Message: "end of input"}
}

// Unbound builds the error raised when a symbol has no binding in any
// enclosing frame.
func Unbound(name string) *Err {
	return &Err{Kind: KindUnbound, Message: fmt.Sprintf("unbound symbol: %s", name), Callee: name}
}

// Redefine builds the error raised by a first-define violation.
func Redefine(name string) *Err {
	return &Err{Kind: KindRedefine, Message: fmt.Sprintf("redefinition of %s in the same frame", name), Callee: name}
}

// Arity builds the error raised when a call supplies the wrong number
// of arguments.
func Arity(callee string, expected, got int, exact bool) *Err {
	rel := "exactly"
	if !exact {
		rel = "at least"
	}

	return &Err{
		Kind:    KindArity,
		Message: fmt.Sprintf("%s expects %s %d argument(s), got %d", callee, rel, expected, got),
		Callee:  callee,
		Nargs:   Nargs{Expected: expected, Got: got, Exact: exact},
	}
}

// Type builds the error raised when an argument has the wrong kind.
func Type(callee string, narg int, expected, got value.Kind) *Err {
	return &Err{
		Kind: KindType,
		Message: fmt.Sprintf("%s: argument %d: expected %s, got %s",
			callee, narg, expected, got),
		Callee: callee,
		Type:   TypeMismatch{Expected: expected, Got: got, Narg: narg},
	}
}

// Custom builds the error raised by the (error "msg") builtin.
func Custom(msg string) *Err {
	return &Err{Kind: KindCustom, Message: msg}
}

// Syntax builds a reader syntax error.
func Syntax(msg string) *Err {
	return &Err{Kind: KindSyntax, Message: msg}
}

// NoMem builds the error raised when the evaluator's recursion-depth
// guard trips, reusing the out-of-memory kind for the "ran out of room
// to keep going" condition.
func NoMem(msg string) *Err {
	return &Err{Kind: KindNoMem, Message: msg}
}

// WithExpr attaches the offending expression to an error and returns it,
// for use at the call site that has the expression in scope.
func (e *Err) WithExpr(expr value.Value) *Err {
	e.Expr = expr

	return e
}

// IsCleanEOF reports whether err is the "clean end of input at top
// level" sentinel the driver should treat as success.
func IsCleanEOF(err error) bool {
	e, ok := err.(*Err)

	return ok && e.Kind == KindEOF && e.Success
}

// Report renders the user-visible form:
//
//	lith: FILE: KIND: MESSAGE [in 'NAME']
//	  EXPR
func Report(filename string, err error) string {
	e, ok := err.(*Err)
	if !ok {
		return fmt.Sprintf("lith: %s: %s", filename, err.Error())
	}

	var b strings.Builder
	fmt.Fprintf(&b, "lith: %s: %s: %s", filename, e.Kind, e.Message)
	if e.Callee != "" {
		fmt.Fprintf(&b, " [in '%s']", e.Callee)
	}
	if e.Expr != nil {
		fmt.Fprintf(&b, "\n\t%s", e.Expr.String())
	}

	return b.String()
}
