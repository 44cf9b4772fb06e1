package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/picotcl/picotcl"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newShellCmd() *cobra.Command {
	var evalScript string
	cmd := &cobra.Command{
		Use:   "shell [file]",
		Short: "Start an interactive shell, or run a script file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := picotcl.New()
			registerPuts(in, cmd.OutOrStdout())
			if evalScript != "" {
				return runAndPrint(in, evalScript, cmd.OutOrStdout())
			}
			if len(args) == 1 {
				data, err := os.ReadFile(args[0])
				if err != nil {
					return err
				}
				return runAndPrint(in, string(data), cmd.OutOrStdout())
			}
			return runREPL(in, os.Stdin, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&evalScript, "eval", "e", "", "evaluate a script fragment and exit")
	return cmd
}

// registerPuts installs "puts" as a host command writing to out. It is
// glue, not a core command: spec.md's built-in set has no I/O.
func registerPuts(in *picotcl.Interp, out io.Writer) {
	in.Register("puts", func(args ...string) {
		fmt.Fprintln(out, strings.Join(args, " "))
	})
}

func runAndPrint(in *picotcl.Interp, script string, out io.Writer) error {
	result, err := in.Eval(script)
	if err != nil {
		return err
	}
	if !result.IsNil() {
		fmt.Fprintln(out, result.String())
	}
	return nil
}

// runREPL reads lines from in, accumulating them until IsComplete reports a
// syntactically whole script, then evaluates and prints the result. It
// shows a continuation prompt while a multi-line brace or quote is open,
// the same shape as an interactive TCL shell.
func runREPL(interp *picotcl.Interp, stdin io.Reader, out io.Writer) error {
	isTTY := false
	if f, ok := stdin.(*os.File); ok {
		isTTY = term.IsTerminal(int(f.Fd()))
	}

	reader := bufio.NewReader(stdin)
	var pending strings.Builder

	for {
		if isTTY {
			if pending.Len() == 0 {
				fmt.Fprint(out, "% ")
			} else {
				fmt.Fprint(out, "> ")
			}
		}
		line, err := reader.ReadString('\n')
		if line != "" {
			pending.WriteString(line)
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		if !interp.IsComplete(pending.String()) {
			continue
		}

		script := pending.String()
		pending.Reset()
		if strings.TrimSpace(script) == "" {
			continue
		}
		result, evalErr := interp.Eval(script)
		if evalErr != nil {
			fmt.Fprintln(out, evalErr)
			continue
		}
		if !result.IsNil() {
			fmt.Fprintln(out, result.String())
		}
	}
}
