package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/conneroisu/lith/internal/errs"
	"github.com/conneroisu/lith/internal/value"
	"github.com/conneroisu/lith/pkg/eval"
	"github.com/conneroisu/lith/pkg/reader"
)

// Driver runs lith source through a shared Evaluator, in any of the
// three modes main.go exposes: a loaded file, a string of expressions,
// or an interactive prompt.
type Driver struct {
	Eval *eval.Evaluator
	Out  io.Writer
	Err  io.Writer
}

// New creates a Driver over ev, writing results to out and error
// reports to errOut.
func New(ev *eval.Evaluator, out, errOut io.Writer) *Driver {
	return &Driver{Eval: ev, Out: out, Err: errOut}
}

// RunFile loads and evaluates path's forms in env, discarding every
// result silently; only a failure is reported.
func (d *Driver) RunFile(env *value.Environment, path string) error {
	if err := d.Eval.LoadFile(env, path); err != nil {
		fmt.Fprintln(d.Err, errs.Report(path, err))

		return err
	}

	return nil
}

// RunString evaluates every top-level form in src against env, in
// order. When echo is true, each form is printed as ">> EXPR" before
// it runs; every result is printed as "-> RESULT". Evaluation stops
// at the first error, which is reported to Err and returned.
func (d *Driver) RunString(env *value.Environment, src, label string, echo bool) error {
	r := reader.New(src, d.Eval.Symbols())
	for {
		expr, err := r.ReadExpr()
		if err != nil {
			if errs.IsCleanEOF(err) {
				return nil
			}
			fmt.Fprintln(d.Err, errs.Report(label, err))

			return err
		}

		if echo {
			fmt.Fprintf(d.Out, ">> %s\n", expr.String())
		}

		result, err := d.Eval.Eval(env, expr)
		if err != nil {
			if e, ok := err.(*errs.Err); ok {
				err = e.WithExpr(expr)
			}
			fmt.Fprintln(d.Err, errs.Report(label, err))

			return err
		}

		fmt.Fprintf(d.Out, "-> %s\n", result.String())
	}
}

// RunREPL runs the interactive prompt loop: prompt, read a line, skip
// blanks, evaluate against env, report errors without stopping, and
// print "Bye!" on end of input. It returns the process exit code.
func (d *Driver) RunREPL(in io.Reader, env *value.Environment) int {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(d.Out, "lith> ")
		if !scanner.Scan() {
			fmt.Fprintln(d.Out, "Bye!")

			return 0
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		// Errors are already reported by RunString; the prompt loop
		// simply continues rather than exiting.
		_ = d.RunString(env, line, "<stdin>", false)
	}
}
