// Package main implements the lith command-line interface.
//
// lith is a small Lisp-like expression-language interpreter. The binary
// supports four modes of operation, dispatched from a single flag set:
//
//   - No arguments: print help and exit 2.
//   - -e/--evaluate EXPR: evaluate expression strings in order.
//   - -i/--interactive: start the REPL.
//   - FILE [ARGS...]: load the startup prelude, then run FILE with
//     ARGS bound to the symbol `arguments`.
//
// Examples:
//
//	lith -e '(:+ 1 2)'
//	lith -i
//	lith script.lith arg1 arg2
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/conneroisu/lith/internal/value"
	"github.com/conneroisu/lith/pkg/eval"
	"github.com/conneroisu/lith/pkg/repl"
)

const versionNumber = "0.1.0"

func main() {
	os.Exit(run())
}

// run builds and executes the root command, returning the process
// exit code.
func run() int {
	var (
		interactive bool
		evaluate    []string
		exitCode    int
	)

	cmd := &cobra.Command{
		Use:           "lith [OPTIONS] [FILE] [ARGS...]",
		Short:         "a small lisp-like language interpreter",
		Version:       versionNumber,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, args []string) error {
			if len(args) == 0 && !interactive && len(evaluate) == 0 {
				fmt.Fprintln(c.OutOrStdout(), c.UsageString())
				exitCode = 2

				return nil
			}
			exitCode = dispatch(c, args, interactive, evaluate)

			return nil
		},
	}
	cmd.SetVersionTemplate("lith version {{.Version}}: a small lisp-like language interpreter\n")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "run the interactive REPL")
	cmd.Flags().StringArrayVarP(&evaluate, "evaluate", "e", nil, "evaluate EXPR, may be repeated")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "lith: %v\n", err)

		return 1
	}

	return exitCode
}

// dispatch runs the prelude and then whichever of -e, FILE, or -i the
// caller asked for, in that order.
func dispatch(c *cobra.Command, args []string, interactive bool, evaluate []string) int {
	ev := eval.New(".")
	drv := repl.New(ev, c.OutOrStdout(), c.ErrOrStderr())

	// A load failure here is fatal: the prelude runs in the global
	// environment, and nothing afterward runs if it fails.
	if err := drv.RunFile(ev.Global(), "lib.lith"); err != nil {
		return 16
	}

	exitCode := 0

	if len(evaluate) > 0 {
		env := value.NewEnvironment(ev.Global())
		for _, expr := range evaluate {
			if err := drv.RunString(env, expr, "<evaluate>", true); err != nil {
				return 32
			}
		}
	}

	if len(args) > 0 {
		// args[0] is FILE; anything after it is ARGS, bound to
		// `arguments` in FILE's own environment. pflag already strips
		// a literal "--" separator out of args for us.
		filename := args[0]
		fileArgs := args[1:]

		env := value.NewEnvironment(ev.Global())
		argValues := make([]value.Value, len(fileArgs))
		for i, a := range fileArgs {
			argValues[i] = value.String(a)
		}
		env.Define(ev.Symbols().Intern("arguments"), value.SliceToList(argValues))

		if err := drv.RunFile(env, filename); err != nil {
			exitCode = 64
		}
	}

	if interactive {
		env := value.NewEnvironment(ev.Global())
		if code := drv.RunREPL(c.InOrStdin(), env); code != 0 {
			exitCode = code
		}
	}

	return exitCode
}
