package eval

import (
	"github.com/conneroisu/lith/internal/errs"
	"github.com/conneroisu/lith/internal/value"
)

type specialFormFunc func(e *Evaluator, env *value.Environment, rest value.Value) (value.Value, error)

// specialForms are the symbols the evaluator recognizes in head position
// before falling back to ordinary application. It is filled in by init
// because the handlers call back into Eval, which reads this table.
var specialForms map[string]specialFormFunc

func init() {
	specialForms = map[string]specialFormFunc{
		"quote":        evalQuote,
		"eval!":        evalEvalBang,
		"if":           evalIf,
		"define":       evalDefine,
		"set!":         evalSetBang,
		"define-macro": evalDefineMacro,
		"lambda":       evalLambda,
	}
}

func expectNargs(callee string, rest value.Value, expected int, exact bool) error {
	got := value.ListLength(rest)
	if exact && got != expected {
		return errs.Arity(callee, expected, got, true)
	}
	if !exact && got < expected {
		return errs.Arity(callee, expected, got, false)
	}

	return nil
}

func nth(list value.Value, n int) value.Value {
	for ; n > 0; n-- {
		list = list.(*value.Pair).Cdr
	}

	return list.(*value.Pair).Car
}

// evalQuote returns its single argument unevaluated.
func evalQuote(_ *Evaluator, _ *value.Environment, rest value.Value) (value.Value, error) {
	if err := expectNargs("quote", rest, 1, true); err != nil {
		return nil, err
	}

	return rest.(*value.Pair).Car, nil
}

// evalEvalBang evaluates its argument, then evaluates the result again,
// implementing the two-stage eval! form.
func evalEvalBang(e *Evaluator, env *value.Environment, rest value.Value) (value.Value, error) {
	if err := expectNargs("eval!", rest, 1, true); err != nil {
		return nil, err
	}
	v, err := e.Eval(env, rest.(*value.Pair).Car)
	if err != nil {
		return nil, err
	}

	return e.Eval(env, v)
}

// evalIf evaluates the condition and then exactly one of the two
// branches: every value is truthy except #f and nil.
func evalIf(e *Evaluator, env *value.Environment, rest value.Value) (value.Value, error) {
	if err := expectNargs("if", rest, 3, true); err != nil {
		return nil, err
	}
	cond, err := e.Eval(env, nth(rest, 0))
	if err != nil {
		return nil, err
	}
	if value.Truthy(cond) {
		return e.Eval(env, nth(rest, 1))
	}

	return e.Eval(env, nth(rest, 2))
}

// evalDefine binds a name in env, either to the evaluated value of an
// expression or, via function-definition sugar, to a closure:
//
//	(define name expr)
//	(define (name . params) body...)
func evalDefine(e *Evaluator, env *value.Environment, rest value.Value) (value.Value, error) {
	if err := expectNargs("define", rest, 2, false); err != nil {
		return nil, err
	}
	target := nth(rest, 0)
	body := rest.(*value.Pair).Cdr

	switch t := target.(type) {
	case *value.Symbol:
		if err := expectNargs("define", rest, 2, true); err != nil {
			return nil, err
		}
		val, err := e.Eval(env, nth(rest, 1))
		if err != nil {
			return nil, err
		}
		if closure, ok := val.(*value.Closure); ok {
			renamed := *closure
			renamed.Name = t
			val = &renamed
		}
		if !env.Define(t, val) {
			return nil, errs.Redefine(t.Name)
		}

		return value.NilValue, nil
	case *value.Pair:
		name, ok := t.Car.(*value.Symbol)
		if !ok {
			return nil, errs.Type("define", 1, value.KindSymbol, t.Car.Kind())
		}
		closure := value.NewClosure(env, name, t.Cdr, value.ListToSlice(body), false)
		if !env.Define(name, closure) {
			return nil, errs.Redefine(name.Name)
		}

		return value.NilValue, nil
	default:
		return nil, errs.New(errs.KindType, "define: first argument must be a symbol or pair")
	}
}

// evalSetBang rebinds an existing variable in the nearest enclosing
// frame that defines it.
func evalSetBang(e *Evaluator, env *value.Environment, rest value.Value) (value.Value, error) {
	if err := expectNargs("set!", rest, 2, true); err != nil {
		return nil, err
	}
	sym, ok := nth(rest, 0).(*value.Symbol)
	if !ok {
		return nil, errs.Type("set!", 1, value.KindSymbol, nth(rest, 0).Kind())
	}
	val, err := e.Eval(env, nth(rest, 1))
	if err != nil {
		return nil, err
	}
	if closure, ok := val.(*value.Closure); ok {
		renamed := *closure
		renamed.Name = sym
		val = &renamed
	}
	if !env.Set(sym, val) {
		return nil, errs.Unbound(sym.Name)
	}

	return value.NilValue, nil
}

// evalDefineMacro binds name to a macro closure: at application the
// applier passes it unevaluated argument forms, and the evaluator
// evaluates whatever it returns a second time.
func evalDefineMacro(_ *Evaluator, env *value.Environment, rest value.Value) (value.Value, error) {
	if err := expectNargs("define-macro", rest, 2, false); err != nil {
		return nil, err
	}
	sig, ok := nth(rest, 0).(*value.Pair)
	if !ok {
		return nil, errs.Type("define-macro", 1, value.KindPair, nth(rest, 0).Kind())
	}
	name, ok := sig.Car.(*value.Symbol)
	if !ok {
		return nil, errs.Type("define-macro", 1, value.KindSymbol, sig.Car.Kind())
	}
	body := rest.(*value.Pair).Cdr
	closure := value.NewClosure(env, name, sig.Cdr, value.ListToSlice(body), true)
	if !env.Define(name, closure) {
		return nil, errs.Redefine(name.Name)
	}

	return value.NilValue, nil
}

// evalLambda builds an anonymous closure, validating that the parameter
// list is all symbols (proper or with a variadic tail symbol) and the
// body is a proper list.
func evalLambda(_ *Evaluator, env *value.Environment, rest value.Value) (value.Value, error) {
	if err := expectNargs("{lambda}", rest, 2, false); err != nil {
		return nil, err
	}
	params := nth(rest, 0)
	body := rest.(*value.Pair).Cdr
	if !value.IsProperList(body) {
		return nil, errs.Syntax("body of lambda expression must be proper list")
	}
	if _, ok := value.SpecForParams(params); !ok {
		return nil, errs.Syntax("arguments in lambda expression must be symbols")
	}

	return value.NewClosure(env, nil, params, value.ListToSlice(body), false), nil
}
