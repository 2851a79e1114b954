// Package repl implements the driver loop shared by lith's three run
// modes: loading a file, evaluating a string of expressions (the -e
// flag), and the interactive prompt. All three read forms one at a time
// and feed them to the same evaluator; they differ only in whether a
// form's input is echoed and whether its result is printed.
package repl
