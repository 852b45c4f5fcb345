package extract

import "errors"

var (
	// ErrInvalidArgument is returned for negative counts and out-of-range line indices.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidState is returned when an Extractor operation is called out of order.
	ErrInvalidState = errors.New("invalid extractor state")
)

// IOError records a failed read, write, or seek at the OS boundary.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func ioErr(op string, err error) error {
	return &IOError{Op: op, Err: err}
}
