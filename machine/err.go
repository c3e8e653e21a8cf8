package machine

import (
	"errors"

	"github.com/ezrec/turing/translate"
)

var f = translate.From

var (
	// Transition errors
	ErrTransitionUndefined = errors.New(f("transition undefined"))
	ErrTransitionDuplicate = errors.New(f("transition duplicated"))
)

// ErrUndefined reports that no rule matches the current state and the
// scanned symbol.
type ErrUndefined Input

func (err ErrUndefined) Error() string {
	return f("%v, %v -> ?", err.State, err.Symbol)
}

func (err ErrUndefined) Is(target error) bool {
	return target == ErrTransitionUndefined
}

// ErrDuplicate reports a rule whose input was already declared.
type ErrDuplicate struct {
	Index    int  // Declaration index of the later rule.
	Previous Rule // Earlier rule with the same input.
	Rule     Rule // Later rule, which wins on Build.
}

func (err *ErrDuplicate) Error() string {
	return f("rule %d (%v) duplicates (%v)", err.Index, err.Rule, err.Previous)
}

func (err *ErrDuplicate) Unwrap() error {
	return ErrTransitionDuplicate
}
