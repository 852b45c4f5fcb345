package extract

import (
	"bufio"
	"errors"
	"io"
)

const indexBufferSize = 64 * 1024

// Index reads r to end-of-stream once and returns the length of every line.
// A trailing run of bytes without a terminator counts as a final line.
// On read failure no lengths are returned.
func Index(r io.Reader) (LineLengths, error) {
	br := bufio.NewReaderSize(r, indexBufferSize)
	lengths := LineLengths{}
	var current int64

	for {
		chunk, err := br.ReadSlice(Terminator)
		current += int64(len(chunk))
		if len(chunk) > 0 && chunk[len(chunk)-1] == Terminator {
			lengths = append(lengths, current)
			current = 0
		}

		switch {
		case err == nil:
		case errors.Is(err, bufio.ErrBufferFull):
			// Line longer than the buffer; keep accumulating.
		case errors.Is(err, io.EOF):
			if current > 0 {
				lengths = append(lengths, current)
			}
			return lengths, nil
		default:
			return nil, ioErr("read", err)
		}
	}
}
