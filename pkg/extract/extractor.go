package extract

import (
	"fmt"
	"io"
)

// State is the position of an Extractor in its single pass over a source.
type State int

const (
	StateIdle State = iota
	StateIndexed
	StateRangeSelected
	StateSeeked
	StateStreamed
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateIndexed:
		return "indexed"
	case StateRangeSelected:
		return "range-selected"
	case StateSeeked:
		return "seeked"
	case StateStreamed:
		return "streamed"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Extractor runs the index, select, seek and stream steps over one source in order.
// It is not safe for concurrent use.
type Extractor struct {
	src     io.ReadSeeker
	state   State
	lengths LineLengths
	rng     LineRange
	err     error
}

// NewExtractor creates an Extractor for src, which must be positioned at offset 0.
func NewExtractor(src io.ReadSeeker) *Extractor {
	return &Extractor{src: src}
}

// State returns the current state.
func (e *Extractor) State() State {
	return e.state
}

// Err returns the error that moved the Extractor to StateFailed, if any.
func (e *Extractor) Err() error {
	return e.err
}

// Lengths returns the line index built by Prepare.
func (e *Extractor) Lengths() LineLengths {
	return e.lengths
}

// Range returns the range chosen by Prepare.
func (e *Extractor) Range() LineRange {
	return e.rng
}

// Prepare indexes the source, selects the range for mode and positions the
// source at the first selected line.
func (e *Extractor) Prepare(mode Mode) (LineRange, error) {
	if e.state != StateIdle {
		return LineRange{}, e.outOfOrder("prepare")
	}

	lengths, err := Index(e.src)
	if err != nil {
		return LineRange{}, e.fail(fmt.Errorf("indexing source: %w", err))
	}
	e.lengths = lengths
	e.state = StateIndexed

	rng, err := Select(lengths.Count(), mode)
	if err != nil {
		return LineRange{}, e.fail(fmt.Errorf("selecting lines: %w", err))
	}
	e.rng = rng
	e.state = StateRangeSelected

	if err := Rewind(e.src); err != nil {
		return LineRange{}, e.fail(fmt.Errorf("rewinding source: %w", err))
	}
	if err := Skip(e.src, lengths, rng.Start); err != nil {
		return LineRange{}, e.fail(fmt.Errorf("skipping %d lines: %w", rng.Start, err))
	}
	e.state = StateSeeked

	return rng, nil
}

// Stream copies the prepared range to dst and returns the number of bytes written.
func (e *Extractor) Stream(dst io.Writer) (int64, error) {
	if e.state != StateSeeked {
		return 0, e.outOfOrder("stream")
	}

	n, err := Copy(e.src, dst, e.lengths, e.rng)
	if err != nil {
		return n, e.fail(fmt.Errorf("streaming lines %s: %w", e.rng, err))
	}
	e.state = StateStreamed

	return n, nil
}

// Finish marks a streamed extraction as complete. The caller invokes it once
// the destination has been released.
func (e *Extractor) Finish() error {
	if e.state != StateStreamed {
		return e.outOfOrder("finish")
	}
	e.state = StateDone
	return nil
}

func (e *Extractor) fail(err error) error {
	e.state = StateFailed
	e.err = err
	return err
}

func (e *Extractor) outOfOrder(op string) error {
	return fmt.Errorf("%s in state %s: %w", op, e.state, ErrInvalidState)
}
