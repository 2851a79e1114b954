// Package value provides the runtime value system for the lith interpreter.
//
// This package defines every value the reader can produce and the evaluator
// can return. Values are a tagged sum, not a class hierarchy: each concrete
// type implements Value, and callers type-switch on Kind() or on the
// concrete Go type when they need to pattern-match a variant.
//
// Value Types:
//
// Atoms:
//   - Nil: the empty-list/unit value (singleton)
//   - Bool: the two boolean singletons
//   - Int: a signed 64-bit integer
//   - Float: an IEEE-754 double
//   - String: a byte buffer with explicit length (embedded NULs allowed)
//   - Symbol: an interned identifier; identity, not content, is compared
//
// Structural:
//   - Pair: the sole structural constructor; proper lists chain to Nil,
//     improper lists terminate in any other atom
//
// Callable:
//   - Builtin: a native function of signature (State, []Value) (Value, error)
//   - Closure: a user-defined function (or, tagged IsMacro, a macro)
//
// Environment is the lexical scope chain: a binding map plus a parent
// pointer, walked by Get and mutated in-place by Define/Set.
//
// There is no manual ownership or deep-copy discipline here: values are
// ordinary garbage-collected Go values, so binding one into an
// environment or returning it from Eval shares it rather than copying it.
// The one copy is made by define and set!, which bind a renamed shallow
// copy of a closure so the original keeps its own name.
package value
