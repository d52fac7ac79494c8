package duet

import (
	"github.com/ezrec/tandem/translate"
)

var f = translate.From

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Machine int
	LineNo  int
	Err     error
}

func (err *ErrRuntime) Error() string {
	return f("machine %d line %d %v", err.Machine, err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
