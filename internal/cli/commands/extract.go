package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ccollicutt/fileutil/pkg/config"
	"github.com/ccollicutt/fileutil/pkg/extract"
	"github.com/ccollicutt/fileutil/pkg/output"
)

// ExtractOptions holds command-line options for extracting lines.
type ExtractOptions struct {
	Lines      int
	Last       bool
	DestDir    string
	ConfigFile string
	Output     string
	Verbose    bool
}

// NewExtractCommand creates the command that prints or copies a run of lines.
func NewExtractCommand() *cobra.Command {
	opts := &ExtractOptions{}

	cmd := &cobra.Command{
		Use:   "fileutil [source-file]",
		Short: "Print or copy the first or last lines of a file",
		Long: `Select a contiguous run of lines from a file and write it to standard
output or to a new file in a destination directory.

Without flags the first 10 lines are printed. The source defaults to
sample.txt in the working directory.

Examples:
  fileutil                     First 10 lines of sample.txt
  fileutil notes.txt -n 2      First 2 lines of notes.txt
  fileutil notes.txt -n 1 -L   Last line of notes.txt
  fileutil notes.txt -d out/   Copy the first 10 lines to out/notes.txt

Exit codes:
  0 - Success
  1 - Source file could not be opened
  2 - Destination file could not be created
  3 - Invalid arguments or other runtime error`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, args, opts)
		},
	}

	bindExtractFlags(cmd.Flags(), opts)

	return cmd
}

func bindExtractFlags(fs *pflag.FlagSet, opts *ExtractOptions) {
	fs.IntVarP(&opts.Lines, "lines", "n", extract.DefaultCount, "Number of lines to select")
	fs.BoolVarP(&opts.Last, "last", "L", false, "Select the last lines instead of the first")
	fs.StringVarP(&opts.DestDir, "dest", "d", "", "Copy into a new file in this directory instead of printing")
	fs.StringVar(&opts.ConfigFile, "config", "", "Path to a YAML config file")
	fs.StringVarP(&opts.Output, "output", "o", "", "Confirmation format when copying (text|json)")
	fs.BoolVarP(&opts.Verbose, "verbose", "v", false, "Log each step to stderr")
}

// resolveMode maps the parsed flags onto a selection mode. The same count
// is used for head and tail; -L only changes where the run starts.
func resolveMode(fs *pflag.FlagSet, opts *ExtractOptions) extract.Mode {
	explicit := fs.Changed("lines")
	switch {
	case opts.Last && explicit:
		return extract.LastN(opts.Lines)
	case opts.Last:
		return extract.LastN(extract.DefaultCount)
	case explicit:
		return extract.FirstN(opts.Lines)
	default:
		return extract.Default()
	}
}

func runExtract(cmd *cobra.Command, args []string, opts *ExtractOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(ctx, opts.ConfigFile)
	if err != nil {
		return exitError(ExitRuntimeError, "error: loading config", err)
	}

	level := cfg.LogLevel
	if opts.Verbose {
		level = "debug"
	}
	logger := newLogger(cmd.ErrOrStderr(), level)

	format := string(cfg.Output)
	if cmd.Flags().Changed("output") {
		format = opts.Output
	}
	formatter, err := output.New(format, output.FormatOptions{Verbose: opts.Verbose})
	if err != nil {
		return exitError(ExitRuntimeError, "error: invalid output format", err)
	}

	source := cfg.DefaultSource
	if len(args) == 1 {
		source = args[0]
	}
	mode := resolveMode(cmd.Flags(), opts)

	src, err := os.Open(source) // #nosec G304 -- user-provided source path is expected
	if err != nil {
		logger.Debug("open source failed", "path", source, "error", err)
		return exitError(ExitSourceOpen, MsgSourceOpen, err)
	}
	defer src.Close()

	e := extract.NewExtractor(src)
	rng, err := e.Prepare(mode)
	if err != nil {
		logger.Debug("prepare failed", "path", source, "mode", mode.String(), "error", err)
		return prepareError(err)
	}
	logger.Debug("prepared source",
		"path", source,
		"lines", e.Lengths().Count(),
		"bytes", e.Lengths().Total(),
		"mode", mode.String(),
		"range", rng.String())

	var (
		dst      io.Writer = cmd.OutOrStdout()
		created  *os.File
		destPath string
	)
	if cmd.Flags().Changed("dest") {
		destPath = extract.DestinationPath(opts.DestDir, source)
		created, err = extract.CreateDestination(opts.DestDir, source, cfg.Perm())
		if err != nil {
			logger.Debug("create destination failed", "path", destPath, "error", err)
			return exitError(ExitDestCreate, MsgDestCreate, err)
		}
		dst = created
	}

	written, err := streamAndRelease(e, dst, created, logger)
	if err != nil {
		return exitError(ExitRuntimeError, "error: copying lines", err)
	}
	if err := e.Finish(); err != nil {
		return exitError(ExitRuntimeError, "error: copying lines", err)
	}
	logger.Debug("streamed lines", "range", rng.String(), "bytes", written)

	if created == nil {
		return nil
	}

	report := output.NewReport(source, destPath, mode, rng, written)
	if err := formatter.Format(ctx, report, cmd.OutOrStdout()); err != nil {
		return exitError(ExitRuntimeError, "error: writing confirmation", err)
	}
	return nil
}

// streamAndRelease streams the prepared range and closes the created
// destination, if any, before the caller releases the source.
func streamAndRelease(e *extract.Extractor, dst io.Writer, created *os.File, logger *slog.Logger) (int64, error) {
	written, err := e.Stream(dst)
	if created == nil {
		return written, err
	}

	closeErr := created.Close()
	if err != nil {
		// The partially written destination is left in place.
		logger.Warn("copy failed, destination left partially written",
			"path", created.Name(),
			"bytes", written,
			"error", err)
		return written, err
	}
	if closeErr != nil {
		return written, fmt.Errorf("closing destination: %w", closeErr)
	}
	return written, nil
}

func prepareError(err error) error {
	if errors.Is(err, extract.ErrInvalidArgument) {
		return exitError(ExitRuntimeError, "error: invalid line count", err)
	}
	return exitError(ExitRuntimeError, "error: reading source", err)
}
