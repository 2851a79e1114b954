package eval

import "github.com/conneroisu/lith/internal/value"

func isNumeric(v value.Value) bool {
	switch v.(type) {
	case value.Int, value.Float:
		return true
	default:
		return false
	}
}

func asFloat(v value.Value) float64 {
	switch t := v.(type) {
	case value.Int:
		return float64(t)
	case value.Float:
		return float64(t)
	default:
		return 0
	}
}

// numericOperands validates and unpacks the two arguments common to the
// arithmetic and comparison builtins.
func numericOperands(callee string, args []value.Value) (a1, a2 value.Value, err error) {
	if len(args) != 2 {
		return nil, nil, errBuiltinArity(callee, 2, len(args))
	}
	a1, a2 = args[0], args[1]
	if !isNumeric(a1) || !isNumeric(a2) {
		return nil, nil, errBuiltinType("expected numeric types (integers or numbers) as argument")
	}

	return a1, a2, nil
}

func builtinAdd(_ value.State, args []value.Value) (value.Value, error) {
	a1, a2, err := numericOperands(":+", args)
	if err != nil {
		return nil, err
	}
	if i1, ok := a1.(value.Int); ok {
		if i2, ok := a2.(value.Int); ok {
			return i1 + i2, nil
		}
	}

	return value.Float(asFloat(a1) + asFloat(a2)), nil
}

func builtinSubtract(_ value.State, args []value.Value) (value.Value, error) {
	a1, a2, err := numericOperands(":-", args)
	if err != nil {
		return nil, err
	}
	if i1, ok := a1.(value.Int); ok {
		if i2, ok := a2.(value.Int); ok {
			return i1 - i2, nil
		}
	}

	return value.Float(asFloat(a1) - asFloat(a2)), nil
}

func builtinMultiply(_ value.State, args []value.Value) (value.Value, error) {
	a1, a2, err := numericOperands(":*", args)
	if err != nil {
		return nil, err
	}
	if i1, ok := a1.(value.Int); ok {
		if i2, ok := a2.(value.Int); ok {
			return i1 * i2, nil
		}
	}

	return value.Float(asFloat(a1) * asFloat(a2)), nil
}

func builtinDivide(_ value.State, args []value.Value) (value.Value, error) {
	a1, a2, err := numericOperands(":/", args)
	if err != nil {
		return nil, err
	}
	if i2, ok := a2.(value.Int); ok && i2 == 0 {
		return nil, errBuiltinType("cannot divide by zero!!")
	}
	if i1, ok := a1.(value.Int); ok {
		if i2, ok := a2.(value.Int); ok {
			return i1 / i2, nil
		}
	}

	return value.Float(asFloat(a1) / asFloat(a2)), nil
}

func builtinModulus(_ value.State, args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, errBuiltinArity(":%", 2, len(args))
	}
	a1, ok1 := args[0].(value.Int)
	a2, ok2 := args[1].(value.Int)
	if !ok1 || !ok2 {
		return nil, errBuiltinType("can calculate modulus with integral arguments only")
	}
	if a2 == 0 {
		return nil, errBuiltinType("cannot mod by zero!!")
	}

	return a1 % a2, nil
}

func builtinLessThan(_ value.State, args []value.Value) (value.Value, error) {
	a1, a2, err := numericOperands(":<", args)
	if err != nil {
		return nil, err
	}
	if i1, ok := a1.(value.Int); ok {
		if i2, ok := a2.(value.Int); ok {
			return value.BoolValue(i1 < i2), nil
		}
	}

	return value.BoolValue(asFloat(a1) < asFloat(a2)), nil
}

func builtinNumEqual(_ value.State, args []value.Value) (value.Value, error) {
	a1, a2, err := numericOperands(":==", args)
	if err != nil {
		return nil, err
	}
	if i1, ok := a1.(value.Int); ok {
		if i2, ok := a2.(value.Int); ok {
			return value.BoolValue(i1 == i2), nil
		}
	}

	return value.BoolValue(asFloat(a1) == asFloat(a2)), nil
}

func builtinGreaterThan(_ value.State, args []value.Value) (value.Value, error) {
	a1, a2, err := numericOperands(":>", args)
	if err != nil {
		return nil, err
	}
	if i1, ok := a1.(value.Int); ok {
		if i2, ok := a2.(value.Int); ok {
			return value.BoolValue(i1 > i2), nil
		}
	}

	return value.BoolValue(asFloat(a1) > asFloat(a2)), nil
}
