// Command picotcl is a shell and test runner for the picotcl interpreter.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "picotcl",
		Short: "An embeddable command-language interpreter",
	}
	root.AddCommand(newShellCmd())
	root.AddCommand(newTestCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
