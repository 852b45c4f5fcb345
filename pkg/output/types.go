// Package output renders the confirmation printed after lines are copied to a new file.
package output

import (
	"fmt"

	"github.com/ccollicutt/fileutil/pkg/extract"
)

// CopySuccessful is the confirmation printed once a destination file is written.
const CopySuccessful = "copy successful"

// Report describes a completed copy into a destination file.
type Report struct {
	Status      string `json:"status"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Mode        string `json:"mode"`
	// StartLine and EndLine are 1-based and inclusive; both are 0 for an empty copy.
	StartLine int   `json:"start_line"`
	EndLine   int   `json:"end_line"`
	Lines     int   `json:"lines"`
	Bytes     int64 `json:"bytes"`
}

// NewReport creates a Report for a copy of rng from source to destination.
func NewReport(source, destination string, mode extract.Mode, rng extract.LineRange, written int64) *Report {
	report := &Report{
		Status:      CopySuccessful,
		Source:      source,
		Destination: destination,
		Mode:        mode.String(),
		Lines:       rng.Len(),
		Bytes:       written,
	}
	if !rng.IsEmpty() {
		report.StartLine = rng.Start + 1
		report.EndLine = rng.End
	}
	return report
}

// New returns the formatter for the named format.
func New(name string, opts FormatOptions) (Formatter, error) {
	switch name {
	case "text":
		return NewTextFormatter(opts), nil
	case "json":
		return NewJSONFormatter(opts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use text or json)", name)
	}
}
