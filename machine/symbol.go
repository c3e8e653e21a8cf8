// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"strconv"
)

const (
	BLANK_GLYPH = "_" // Rendering of the blank symbol.
	HALT_GLYPH  = "!" // Rendering of the halt state.
)

// Symbol is the content of a tape cell. The zero Symbol is the blank.
type Symbol struct {
	id  uint
	set bool
}

// Blank returns the blank symbol.
func Blank() Symbol {
	return Symbol{}
}

// MakeSymbol returns the symbol with the given identifier.
func MakeSymbol(id uint) Symbol {
	return Symbol{id: id, set: true}
}

// IsBlank returns true for the blank symbol.
func (s Symbol) IsBlank() bool {
	return !s.set
}

// Id returns the identifier of a non-blank symbol.
func (s Symbol) Id() (id uint, ok bool) {
	return s.id, s.set
}

// String renders the symbol as its identifier, or BLANK_GLYPH.
func (s Symbol) String() string {
	if !s.set {
		return BLANK_GLYPH
	}
	return strconv.FormatUint(uint64(s.id), 10)
}

// State is a control state of the machine. The zero State is the halt state.
type State struct {
	id  uint
	set bool
}

// Halt returns the halt state.
func Halt() State {
	return State{}
}

// MakeState returns the regular state with the given identifier.
func MakeState(id uint) State {
	return State{id: id, set: true}
}

// IsHalt returns true for the halt state.
func (s State) IsHalt() bool {
	return !s.set
}

// Id returns the identifier of a regular state.
func (s State) Id() (id uint, ok bool) {
	return s.id, s.set
}

// String renders the state as its identifier, or HALT_GLYPH.
func (s State) String() string {
	if !s.set {
		return HALT_GLYPH
	}
	return strconv.FormatUint(uint64(s.id), 10)
}
