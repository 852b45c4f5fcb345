// Package extract selects runs of lines from a seekable file and streams them
// byte-for-byte to a sink, without holding the file content in memory.
package extract

import "fmt"

// Terminator is the byte that ends a line.
const Terminator = '\n'

// DefaultCount is the number of lines selected when no count is given.
const DefaultCount = 10

// LineLengths holds the byte length of every line of a file in file order.
// Each entry includes the line's terminator when present.
type LineLengths []int64

// Count returns the number of lines.
func (l LineLengths) Count() int {
	return len(l)
}

// Total returns the summed length of all lines.
func (l LineLengths) Total() int64 {
	return l.Sum(0, len(l))
}

// Sum returns the number of bytes covered by lines [start, end).
// Out-of-range bounds are clamped.
func (l LineLengths) Sum(start, end int) int64 {
	start, end = l.clamp(start, end)
	var n int64
	for _, length := range l[start:end] {
		n += length
	}
	return n
}

// Max returns the longest line length within [start, end).
func (l LineLengths) Max(start, end int) int64 {
	start, end = l.clamp(start, end)
	var m int64
	for _, length := range l[start:end] {
		if length > m {
			m = length
		}
	}
	return m
}

func (l LineLengths) clamp(start, end int) (int, int) {
	if start < 0 {
		start = 0
	}
	if end > len(l) {
		end = len(l)
	}
	if start > end {
		start = end
	}
	return start, end
}

// LineRange is a half-open range of line indices [Start, End).
type LineRange struct {
	Start int
	End   int
}

// Len returns the number of lines in the range.
func (r LineRange) Len() int {
	return r.End - r.Start
}

// IsEmpty reports whether the range selects no lines.
func (r LineRange) IsEmpty() bool {
	return r.Len() <= 0
}

func (r LineRange) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}

// Kind identifies how a Mode maps a count onto a file.
type Kind int

const (
	// KindDefault selects the first DefaultCount lines.
	KindDefault Kind = iota
	// KindFirst selects the first Count lines.
	KindFirst
	// KindLast selects the last Count lines.
	KindLast
)

func (k Kind) String() string {
	switch k {
	case KindFirst:
		return "first"
	case KindLast:
		return "last"
	default:
		return "default"
	}
}

// Mode describes a line selection request.
type Mode struct {
	Kind  Kind
	Count int
}

// Default returns the mode used when neither a count nor tail mode is requested.
func Default() Mode {
	return Mode{Kind: KindDefault, Count: DefaultCount}
}

// FirstN selects the first n lines.
func FirstN(n int) Mode {
	return Mode{Kind: KindFirst, Count: n}
}

// LastN selects the last n lines.
func LastN(n int) Mode {
	return Mode{Kind: KindLast, Count: n}
}

func (m Mode) String() string {
	if m.Kind == KindDefault {
		return m.Kind.String()
	}
	return fmt.Sprintf("%s %d", m.Kind, m.Count)
}
