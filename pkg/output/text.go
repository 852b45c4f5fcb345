package output

import (
	"context"
	"fmt"
	"io"
)

// TextFormatter prints the fixed confirmation line.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if _, err := fmt.Fprintln(w, CopySuccessful); err != nil {
		return err
	}
	if !f.opts.Verbose {
		return nil
	}

	if report.Lines == 0 {
		_, err := fmt.Fprintf(w, "  %s -> %s: no lines (%s)\n", report.Source, report.Destination, report.Mode)
		return err
	}
	_, err := fmt.Fprintf(w, "  %s -> %s: lines %d-%d, %d bytes (%s)\n",
		report.Source,
		report.Destination,
		report.StartLine,
		report.EndLine,
		report.Bytes,
		report.Mode)
	return err
}
