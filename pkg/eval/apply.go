package eval

import (
	"github.com/conneroisu/lith/internal/errs"
	"github.com/conneroisu/lith/internal/value"
)

// Apply invokes fn, a builtin, closure, or macro, with already-evaluated
// (or, for a macro, raw) arguments.
func (e *Evaluator) Apply(fn value.Value, args []value.Value) (value.Value, error) {
	switch f := fn.(type) {
	case *value.Builtin:
		return f.Fn(e, args)
	case *value.Closure:
		return e.applyClosure(f, args)
	default:
		return nil, errs.New(errs.KindType, "can not call non-callable")
	}
}

func (e *Evaluator) applyClosure(fn *value.Closure, args []value.Value) (value.Value, error) {
	spec, ok := value.SpecForParams(fn.Params)
	if !ok {
		return nil, errs.Syntax("malformed closure parameter list")
	}

	name := "{lambda}"
	if fn.Name != nil {
		name = fn.Name.Name
	}
	if err := checkArity(name, spec, len(args)); err != nil {
		return nil, err
	}

	env := value.NewEnvironment(fn.Parent)
	for i, param := range spec.Fixed {
		env.Define(param, args[i])
	}
	if spec.Variadic != nil {
		env.Define(spec.Variadic, value.SliceToList(args[len(spec.Fixed):]))
	}

	var result value.Value = value.NilValue
	for _, form := range fn.Body {
		v, err := e.Eval(env, form)
		if err != nil {
			return nil, err
		}
		result = v
	}

	return result, nil
}

func checkArity(name string, spec value.ParamSpec, got int) error {
	want := len(spec.Fixed)
	if spec.Variadic != nil {
		if got < want {
			return errs.Arity(name, want, got, false)
		}

		return nil
	}
	if got != want {
		return errs.Arity(name, want, got, true)
	}

	return nil
}
