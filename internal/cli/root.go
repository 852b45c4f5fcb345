// Package cli provides the command-line interface for fileutil.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/fileutil/internal/cli/commands"
)

// Execute runs the root command with the process arguments and returns the exit code.
func Execute() int {
	return Run(os.Args[1:], os.Stdout, os.Stderr)
}

// Run executes the command line args against the given output streams and
// returns the exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	rootCmd := NewRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		return commands.ExitOK
	}

	var exitErr *commands.ExitError
	if errors.As(err, &exitErr) {
		switch exitErr.Code {
		case commands.ExitSourceOpen, commands.ExitDestCreate:
			_, _ = fmt.Fprintln(stderr, exitErr.Message)
		default:
			_, _ = fmt.Fprintln(stderr, exitErr.Error())
		}
		return exitErr.Code
	}

	// Flag parsing and argument count errors (SilenceErrors prevents Cobra from printing)
	_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
	return commands.ExitRuntimeError
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := commands.NewExtractCommand()
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
