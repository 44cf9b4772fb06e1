package main

import (
	"os"

	"github.com/picotcl/picotcl/tcltest"
	"github.com/spf13/cobra"
)

func newTestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test <file-or-dir>...",
		Short: "Run golden XML test suites against the interpreter",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			exitCode := tcltest.Run(tcltest.Config{
				TestPaths: args,
				Output:    cmd.OutOrStdout(),
				ErrOutput: cmd.ErrOrStderr(),
			})
			os.Exit(exitCode)
		},
	}
	return cmd
}
