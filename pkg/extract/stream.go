package extract

import (
	"errors"
	"fmt"
	"io"
)

// Copy streams the bytes of lines r.Start..r.End from src to dst, one line at a
// time. src must already be positioned at the start of line r.Start.
//
// Each line is written in full before the next is read. On failure dst holds
// an unspecified prefix of the range; nothing is rolled back.
func Copy(src io.Reader, dst io.Writer, lengths LineLengths, r LineRange) (int64, error) {
	if r.Start < 0 || r.Start > r.End || r.End > lengths.Count() {
		return 0, fmt.Errorf("range %s of %d lines: %w", r, lengths.Count(), ErrInvalidArgument)
	}

	buf := make([]byte, lengths.Max(r.Start, r.End))
	var written int64

	for i := r.Start; i < r.End; i++ {
		line := buf[:lengths[i]]

		if _, err := io.ReadFull(src, line); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				err = io.ErrUnexpectedEOF
			}
			return written, ioErr("read", fmt.Errorf("line %d: %w", i+1, err))
		}

		n, err := writeFull(dst, line)
		written += n
		if err != nil {
			return written, ioErr("write", fmt.Errorf("line %d: %w", i+1, err))
		}
	}

	return written, nil
}

// writeFull keeps writing p until it is flushed or the writer stops making progress.
func writeFull(w io.Writer, p []byte) (int64, error) {
	var total int64
	for len(p) > 0 {
		n, err := w.Write(p)
		total += int64(n)
		p = p[n:]

		switch {
		case err == nil && n == 0:
			return total, io.ErrShortWrite
		case err == nil:
		case errors.Is(err, io.ErrShortWrite) && n > 0:
			// Partial progress; continue with the remainder.
		default:
			return total, err
		}
	}
	return total, nil
}
