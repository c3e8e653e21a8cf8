package universe

import (
	"github.com/ezrec/turing/translate"
)

var f = translate.From

// ErrTick indicates the step and head position of a failed tick.
type ErrTick struct {
	Tick int
	Head int
	Err  error
}

func (err *ErrTick) Error() string {
	return f("tick %d head %d: %v", err.Tick, err.Head, err.Err)
}

func (err *ErrTick) Unwrap() error {
	return err.Err
}
