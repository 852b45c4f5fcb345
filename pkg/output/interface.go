package output

import (
	"context"
	"io"
)

// Formatter renders copy confirmations in a specific format.
type Formatter interface {
	// Format renders the report to the given writer.
	Format(ctx context.Context, report *Report, w io.Writer) error

	// Name returns the format name (text, json).
	Name() string
}

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	// Verbose adds the copied range and byte count to text output.
	Verbose bool
}
