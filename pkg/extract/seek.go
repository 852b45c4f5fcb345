package extract

import (
	"fmt"
	"io"
)

// Skip advances s past the first count lines with a single relative seek.
// Line content is never read. The cursor is left unmoved when count is out of range.
func Skip(s io.Seeker, lengths LineLengths, count int) error {
	if count < 0 || count > lengths.Count() {
		return fmt.Errorf("skip %d of %d lines: %w", count, lengths.Count(), ErrInvalidArgument)
	}

	offset := lengths.Sum(0, count)
	if offset == 0 {
		return nil
	}
	if _, err := s.Seek(offset, io.SeekCurrent); err != nil {
		return ioErr("seek", err)
	}
	return nil
}

// Rewind moves s back to the start of the stream.
func Rewind(s io.Seeker) error {
	if _, err := s.Seek(0, io.SeekStart); err != nil {
		return ioErr("seek", err)
	}
	return nil
}
