package eval

import (
	"os"
	"path/filepath"

	"github.com/conneroisu/lith/internal/errs"
	"github.com/conneroisu/lith/internal/value"
	"github.com/conneroisu/lith/pkg/reader"
)

// maxEvalDepth bounds tree-walking recursion through Eval/Apply so that a
// runaway or self-recursive lith program fails with a reported error
// instead of overflowing the Go stack.
const maxEvalDepth = 4096

// Evaluator is the interpreter's mutable state: the symbol table, the
// global environment, and the base directory loads are resolved against.
// It implements value.State so built-ins can call back into evaluation.
type Evaluator struct {
	symbols *value.SymbolTable
	global  *value.Environment
	baseDir string
	depth   int
}

// New creates an Evaluator with a fresh global environment populated with
// the standard built-in library.
func New(baseDir string) *Evaluator {
	e := &Evaluator{
		symbols: value.NewSymbolTable(),
		global:  value.NewEnvironment(nil),
		baseDir: baseDir,
	}
	e.registerBuiltins()

	return e
}

// Symbols returns the interpreter's symbol table.
func (e *Evaluator) Symbols() *value.SymbolTable { return e.symbols }

// Global returns the interpreter's global environment.
func (e *Evaluator) Global() *value.Environment { return e.global }

// NewTypeError builds a type-mismatch error for a built-in's argN (1-based).
func (e *Evaluator) NewTypeError(callee string, argN int, expected value.Kind, got value.Value) error {
	return errs.Type(callee, argN, expected, got.Kind())
}

// NewCustomError builds the error raised by the (error "...") builtin.
func (e *Evaluator) NewCustomError(msg string) error {
	return errs.Custom(msg)
}

// LoadFile reads filename and evaluates its forms, in order, in env.
func (e *Evaluator) LoadFile(env *value.Environment, filename string) error {
	path := filename
	if !filepath.IsAbs(path) {
		path = filepath.Join(e.baseDir, path)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		return errs.Custom("could not open the file to be read")
	}

	r := reader.New(string(contents), e.symbols)
	for {
		expr, err := r.ReadExpr()
		if err != nil {
			if errs.IsCleanEOF(err) {
				return nil
			}

			return err
		}
		if _, err := e.Eval(env, expr); err != nil {
			return err
		}
	}
}

// Eval evaluates expr in env, dispatching special forms, self-evaluating
// atoms, symbol lookups, and applications.
func (e *Evaluator) Eval(env *value.Environment, expr value.Value) (value.Value, error) {
	e.depth++
	defer func() { e.depth-- }()
	if e.depth > maxEvalDepth {
		return nil, errs.NoMem("maximum evaluation depth exceeded")
	}

	switch v := expr.(type) {
	case *value.Symbol:
		val, ok := env.Get(v)
		if !ok {
			return nil, errs.Unbound(v.Name)
		}

		return val, nil
	case *value.Pair:
		if !value.IsProperList(v) {
			return nil, errs.Syntax("atom or proper list expected as expression")
		}

		return e.evalForm(env, v)
	default:
		return expr, nil
	}
}

// evalForm dispatches a non-empty proper list: either a special form
// named by a leading symbol, or a procedure/macro application.
func (e *Evaluator) evalForm(env *value.Environment, form *value.Pair) (value.Value, error) {
	head := form.Car
	rest := form.Cdr

	if sym, ok := head.(*value.Symbol); ok {
		if fn, isSpecial := specialForms[sym.Name]; isSpecial {
			return fn(e, env, rest)
		}
	}

	fn, err := e.Eval(env, head)
	if err != nil {
		return nil, err
	}

	if closure, ok := fn.(*value.Closure); ok && closure.IsMacro {
		rawArgs := value.ListToSlice(rest)
		expansion, err := e.Apply(fn, rawArgs)
		if err != nil {
			return nil, err
		}

		return e.Eval(env, expansion)
	}

	args, err := e.evalArgs(env, rest)
	if err != nil {
		return nil, err
	}

	return e.Apply(fn, args)
}

// evalArgs evaluates a proper list of argument expressions, left to
// right, into a Go slice.
func (e *Evaluator) evalArgs(env *value.Environment, list value.Value) ([]value.Value, error) {
	var args []value.Value
	for {
		switch t := list.(type) {
		case value.Nil:
			return args, nil
		case *value.Pair:
			v, err := e.Eval(env, t.Car)
			if err != nil {
				return nil, err
			}
			args = append(args, v)
			list = t.Cdr
		default:
			return nil, errs.Syntax("atom or proper list expected as expression")
		}
	}
}
