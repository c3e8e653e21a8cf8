package program

import (
	"errors"

	"github.com/ezrec/turing/translate"
)

var f = translate.From

var (
	// Definition errors
	ErrFormat        = errors.New(f("unknown definition format"))
	ErrStateMissing  = errors.New(f("state missing"))
	ErrInitialState  = errors.New(f("initial state missing"))
	ErrMachineRedef  = errors.New(f("machine() called more than once"))
	ErrRulesMissing  = errors.New(f("no rules"))
	ErrRuleArgs      = errors.New(f("rule needs state, read, write, move, next"))
	ErrStarlarkValue = errors.New(f("unexpected starlark value"))
)

// ErrSymbol is a symbol glyph that could not be parsed.
type ErrSymbol string

func (err ErrSymbol) Error() string {
	return f("'%v' is not a symbol", string(err))
}

// ErrWrite is a write glyph that could not be parsed.
type ErrWrite string

func (err ErrWrite) Error() string {
	return f("'%v' is not a write", string(err))
}

// ErrMove is a move glyph that could not be parsed.
type ErrMove string

func (err ErrMove) Error() string {
	return f("'%v' is not a move", string(err))
}

// ErrSyntax indicates the location of a definition error.
type ErrSyntax struct {
	Source string // File or source name.
	Line   int    // Line number, or 0 if unknown.
	Err    error
}

func (err *ErrSyntax) Error() string {
	if err.Line == 0 {
		return f("%v: %v", err.Source, err.Err)
	}
	return f("%v:%d: %v", err.Source, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}
