package extract

import "fmt"

// Select maps a line count and mode onto the half-open range of lines to emit.
// Counts larger than the file are clamped to the file.
func Select(lineCount int, mode Mode) (LineRange, error) {
	if lineCount < 0 {
		return LineRange{}, fmt.Errorf("line count %d: %w", lineCount, ErrInvalidArgument)
	}
	if mode.Count < 0 {
		return LineRange{}, fmt.Errorf("count %d must not be negative: %w", mode.Count, ErrInvalidArgument)
	}

	switch mode.Kind {
	case KindDefault:
		return LineRange{Start: 0, End: min(DefaultCount, lineCount)}, nil
	case KindFirst:
		return LineRange{Start: 0, End: min(mode.Count, lineCount)}, nil
	case KindLast:
		k := min(mode.Count, lineCount)
		return LineRange{Start: lineCount - k, End: lineCount}, nil
	default:
		return LineRange{}, fmt.Errorf("unknown selection kind %d: %w", mode.Kind, ErrInvalidArgument)
	}
}
