// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package tape provides the unbounded two-sided tape of a Turing machine.
//
// The tape is stored as two growable halves. Position p > 0 lives in the
// positive half at index p-1; position p <= 0 lives in the negative half at
// index -p, so the negative half is kept in reverse order. Any position not
// materialized in either half reads as blank.
package tape

import (
	"iter"
	"slices"
	"strings"

	"github.com/ezrec/turing/internal"
	"github.com/ezrec/turing/machine"
)

type Symbol = machine.Symbol

// Tape is an unbounded sequence of symbols indexed by a signed position.
type Tape struct {
	positive []Symbol // Positions 1, 2, 3, ...
	negative []Symbol // Positions 0, -1, -2, ...
}

// NewTape creates a tape holding symbols from position 1 onwards.
func NewTape(symbols ...Symbol) (tape *Tape) {
	tape = &Tape{
		positive: slices.Clone(symbols),
	}

	return
}

// half returns the half holding pos, and the index within it.
func (tape *Tape) half(pos int) (half *[]Symbol, index int) {
	if pos > 0 {
		return &tape.positive, pos - 1
	}
	return &tape.negative, -pos
}

// Read returns the symbol at pos, or blank if it was never written.
func (tape *Tape) Read(pos int) (symbol Symbol) {
	half, index := tape.half(pos)
	if index < len(*half) {
		symbol = (*half)[index]
	}

	return
}

// Write applies a write effect at pos.
//
// WRITE_PRINT stores the symbol, padding the half with blanks as needed.
// WRITE_ERASE deletes the cell if it is materialized, shifting the cells
// further from the origin one place toward it. WRITE_NONE does nothing.
func (tape *Tape) Write(write machine.Write, pos int) {
	half, index := tape.half(pos)

	switch write.Op {
	case machine.WRITE_PRINT:
		for index >= len(*half) {
			*half = append(*half, machine.Blank())
		}
		(*half)[index] = write.Symbol
	case machine.WRITE_ERASE:
		if index < len(*half) {
			*half = slices.Delete(*half, index, index+1)
		}
	}
}

// Bounds returns the materialized span [lo, hi] of the tape. An empty tape
// reports ok == false. When only the positive half holds cells, position 0
// is included as a leading blank.
func (tape *Tape) Bounds() (lo, hi int, ok bool) {
	if len(tape.positive) == 0 && len(tape.negative) == 0 {
		return
	}

	if len(tape.negative) > 0 {
		lo = 1 - len(tape.negative)
	}
	hi = len(tape.positive)
	ok = true

	return
}

// Cells iterates over (position, symbol) for positions in [from, to).
// Positions outside the materialized halves yield blank. The tape is not
// modified.
func (tape *Tape) Cells(from, to int) iter.Seq2[int, Symbol] {
	return internal.IterSeq2Range(from, to, tape.Read)
}

// Symbols returns the symbols for positions in [from, to).
func (tape *Tape) Symbols(from, to int) (symbols []Symbol) {
	for _, symbol := range tape.Cells(from, to) {
		symbols = append(symbols, symbol)
	}

	return
}

// All iterates over the materialized cells, left to right.
func (tape *Tape) All() iter.Seq2[int, Symbol] {
	lo, hi, ok := tape.Bounds()
	if !ok {
		return internal.IterSeq2Concat[int, Symbol]()
	}

	// The negative half, then the positive half.
	return internal.IterSeq2Concat(
		tape.Cells(lo, 1),
		tape.Cells(1, hi+1),
	)
}

// AllSymbols returns the materialized cells, left to right.
func (tape *Tape) AllSymbols() (symbols []Symbol) {
	for _, symbol := range tape.All() {
		symbols = append(symbols, symbol)
	}

	return
}

// Trimmed returns AllSymbols with leading and trailing blanks removed.
func (tape *Tape) Trimmed() (symbols []Symbol) {
	symbols = tape.AllSymbols()

	from := slices.IndexFunc(symbols, func(s Symbol) bool { return !s.IsBlank() })
	if from < 0 {
		return nil
	}

	to := len(symbols)
	for symbols[to-1].IsBlank() {
		to--
	}

	return symbols[from:to]
}

// Equal reports whether two tapes hold the same symbols once leading and
// trailing blanks are trimmed, regardless of absolute position.
func (tape *Tape) Equal(other *Tape) bool {
	return slices.Equal(tape.Trimmed(), other.Trimmed())
}

// Clone returns an independent copy of the tape.
func (tape *Tape) Clone() *Tape {
	return &Tape{
		positive: slices.Clone(tape.positive),
		negative: slices.Clone(tape.negative),
	}
}

// String renders the materialized cells left to right.
func (tape *Tape) String() string {
	return Join(tape.AllSymbols())
}

// Join concatenates the glyphs of symbols.
func Join(symbols []Symbol) string {
	var sb strings.Builder
	for _, symbol := range symbols {
		sb.WriteString(symbol.String())
	}
	return sb.String()
}
