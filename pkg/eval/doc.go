// Package eval implements the tree-walking evaluator for lith: the
// special-form dispatcher, the applier for builtins/closures/macros,
// and the standard built-in library. The
// Evaluator type implements value.State so that built-ins can recurse
// back into evaluation without this package and the value package
// importing each other.
package eval
