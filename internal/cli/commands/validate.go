package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/fileutil/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a fileutil configuration file without reading any source.

Checks:
  - YAML syntax
  - Output format and log level values
  - File mode is an owner-writable octal permission
  - Default source file existence (warning only)`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return exitError(ExitRuntimeError, "validation failed", err)
	}

	fmt.Fprintf(out, "\nConfiguration valid!\n")
	fmt.Fprintf(out, "  Default source: %s\n", cfg.DefaultSource)
	fmt.Fprintf(out, "  Output:         %s\n", cfg.Output)
	fmt.Fprintf(out, "  Log level:      %s\n", cfg.LogLevel)
	fmt.Fprintf(out, "  File mode:      %#o\n", cfg.Perm())

	if _, err := os.Stat(cfg.DefaultSource); err != nil {
		fmt.Fprintf(out, "\nWarning: default source %s is not readable: %v\n", cfg.DefaultSource, err)
	}

	return nil
}
