package eval

import (
	"fmt"
	"strings"

	"github.com/conneroisu/lith/internal/errs"
	"github.com/conneroisu/lith/internal/value"
)

func errBuiltinArity(callee string, expected, got int) error {
	return errs.Arity(callee, expected, got, true)
}

func errBuiltinType(msg string) error {
	return errs.New(errs.KindType, msg)
}

// registerBuiltins populates the global environment with the standard
// library.
func (e *Evaluator) registerBuiltins() {
	table := []struct {
		name string
		fn   value.BuiltinFunc
	}{
		{"car", builtinCar},
		{"cdr", builtinCdr},
		{"cons", builtinCons},
		{"typeof", builtinTypeof},
		{"print", builtinPrint},
		{":+", builtinAdd},
		{":-", builtinSubtract},
		{":*", builtinMultiply},
		{":/", builtinDivide},
		{":%", builtinModulus},
		{":<", builtinLessThan},
		{":==", builtinNumEqual},
		{":>", builtinGreaterThan},
		{"eq?", builtinEq},
		{"nil?", builtinNilP},
		{"apply", builtinApply},
		{"error", builtinError},
		{"load", builtinLoad},
		{"not", builtinNot},
		{"list", builtinList},
		{"begin", builtinBegin},
		{"string-length", builtinStringLength},
		{"string-append", builtinStringAppend},
	}

	for _, entry := range table {
		e.global.Define(e.symbols.Intern(entry.name), value.NewBuiltin(entry.name, entry.fn))
	}
}

// builtinCar implements (car '(a . b)) -> a.
func builtinCar(st value.State, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, errBuiltinArity("car", 1, len(args))
	}
	pair, ok := args[0].(*value.Pair)
	if !ok {
		return nil, st.NewTypeError("car", 1, value.KindPair, args[0])
	}

	return pair.Car, nil
}

// builtinCdr implements (cdr '(a . b)) -> b.
func builtinCdr(st value.State, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, errBuiltinArity("cdr", 1, len(args))
	}
	pair, ok := args[0].(*value.Pair)
	if !ok {
		return nil, st.NewTypeError("cdr", 1, value.KindPair, args[0])
	}

	return pair.Cdr, nil
}

// builtinCons implements (cons a b) -> (a . b).
func builtinCons(_ value.State, args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, errBuiltinArity("cons", 2, len(args))
	}

	return value.NewPair(args[0], args[1]), nil
}

func printOne(v value.Value) {
	if s, ok := v.(value.String); ok {
		fmt.Print(s.Raw())
	} else {
		fmt.Print(v.String())
	}
}

// builtinPrint implements (print ...) -> (), printing its arguments
// separated by a space and terminated with a newline.
func builtinPrint(_ value.State, args []value.Value) (value.Value, error) {
	if len(args) < 1 {
		return nil, errBuiltinArity("print", 1, len(args))
	}
	printOne(args[0])
	for _, v := range args[1:] {
		fmt.Print(" ")
		printOne(v)
	}
	fmt.Println()

	return value.NilValue, nil
}

// builtinEq implements (eq? a b) -> bool, using value equality for the
// atomic kinds and identity for everything else.
func builtinEq(_ value.State, args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, errBuiltinArity("eq?", 2, len(args))
	}
	a, b := args[0], args[1]
	if a.Kind() != b.Kind() {
		return value.FalseValue, nil
	}
	switch av := a.(type) {
	case value.Nil:
		return value.TrueValue, nil
	case value.Int:
		return value.BoolValue(av == b.(value.Int)), nil
	case value.Float:
		return value.BoolValue(av == b.(value.Float)), nil
	case value.String:
		return value.BoolValue(av == b.(value.String)), nil
	default:
		return value.BoolValue(a == b), nil
	}
}

// builtinTypeof implements (typeof a) -> sym.
func builtinTypeof(st value.State, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, errBuiltinArity("typeof", 1, len(args))
	}

	return st.Symbols().Intern(args[0].Kind().String()), nil
}

// builtinNilP implements (nil? a) -> bool.
func builtinNilP(_ value.State, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, errBuiltinArity("nil?", 1, len(args))
	}

	return value.BoolValue(value.IsNil(args[0])), nil
}

// builtinApply implements (apply f (i...)) -> a, unpacking the second
// argument's list elements into a direct call.
func builtinApply(st value.State, args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, errBuiltinArity("apply", 2, len(args))
	}

	return st.Apply(args[0], value.ListToSlice(args[1]))
}

// builtinError implements (error str) -> _|_, raising a custom error.
func builtinError(st value.State, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, errBuiltinArity("error", 1, len(args))
	}
	s, ok := args[0].(value.String)
	if !ok {
		return nil, st.NewTypeError("error", 1, value.KindString, args[0])
	}

	return nil, st.NewCustomError(s.Raw())
}

// builtinLoad implements (load str) -> (), running a file's forms
// against the global environment.
func builtinLoad(st value.State, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, errBuiltinArity("load", 1, len(args))
	}
	s, ok := args[0].(value.String)
	if !ok {
		return nil, st.NewTypeError("load", 1, value.KindString, args[0])
	}
	if err := st.LoadFile(st.Global(), s.Raw()); err != nil {
		return nil, err
	}

	return value.NilValue, nil
}

// builtinNot implements (not x) -> bool, the negation of truthiness.
func builtinNot(_ value.State, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, errBuiltinArity("not", 1, len(args))
	}

	return value.BoolValue(!value.Truthy(args[0])), nil
}

// builtinList implements (list a b ...) -> proper list of its already
// evaluated arguments.
func builtinList(_ value.State, args []value.Value) (value.Value, error) {
	return value.SliceToList(args), nil
}

// builtinBegin implements (begin a b ...) -> the last argument;
// sequencing already happened during left-to-right argument evaluation.
func builtinBegin(_ value.State, args []value.Value) (value.Value, error) {
	if len(args) == 0 {
		return value.NilValue, nil
	}

	return args[len(args)-1], nil
}

// builtinStringLength implements (string-length s) -> integer.
func builtinStringLength(st value.State, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, errBuiltinArity("string-length", 1, len(args))
	}
	s, ok := args[0].(value.String)
	if !ok {
		return nil, st.NewTypeError("string-length", 1, value.KindString, args[0])
	}

	return value.Int(len(s)), nil
}

// builtinStringAppend implements (string-append a b ...) -> string,
// concatenating its (string) arguments.
func builtinStringAppend(st value.State, args []value.Value) (value.Value, error) {
	var b strings.Builder
	for i, v := range args {
		s, ok := v.(value.String)
		if !ok {
			return nil, st.NewTypeError("string-append", i+1, value.KindString, v)
		}
		b.WriteString(s.Raw())
	}

	return value.String(b.String()), nil
}
