// Package cpu contains the 6502 register file and its power-on state.
package cpu

import (
	"fmt"
	"strings"

	"github.com/retroenv/nestle/internal/arch/m6502"
)

// InitialStackPointer is the stack pointer value after power-on.
const InitialStackPointer = 0xFD

// Status is the processor status flag set.
type Status uint8

// Status flags.
const (
	Carry Status = 1 << iota
	Zero
	InterruptDisabled
	Decimal
	Break
	Overflow
	Negative
)

var statusFlags = []struct {
	flag Status
	name byte
}{
	{Negative, 'N'},
	{Overflow, 'V'},
	{Break, 'B'},
	{Decimal, 'D'},
	{InterruptDisabled, 'I'},
	{Zero, 'Z'},
	{Carry, 'C'},
}

// Has returns whether all given flags are set.
func (s Status) Has(flags Status) bool {
	return s&flags == flags
}

// Set sets the given flags.
func (s *Status) Set(flags Status) {
	*s |= flags
}

// Clear clears the given flags.
func (s *Status) Clear(flags Status) {
	*s &^= flags
}

// SetTo sets or clears the given flags.
func (s *Status) SetTo(flags Status, value bool) {
	if value {
		s.Set(flags)
	} else {
		s.Clear(flags)
	}
}

// String returns the flags in NVBDIZC order, cleared flags are shown as '-'.
func (s Status) String() string {
	var sb strings.Builder
	for _, f := range statusFlags {
		if s.Has(f.flag) {
			sb.WriteByte(f.name)
		} else {
			sb.WriteByte('-')
		}
	}
	return sb.String()
}

// Registers is the 6502 register file.
type Registers struct {
	PC     uint16 // program counter
	SP     uint8  // stack pointer
	A      uint8  // accumulator
	X      uint8  // index register X
	Y      uint8  // index register Y
	Status Status
}

// NewRegisters returns the power-on register state with the program counter
// set to the reset vector.
func NewRegisters(resetVector uint16) Registers {
	return Registers{
		PC: resetVector,
		SP: InitialStackPointer,
	}
}

func (r Registers) String() string {
	return fmt.Sprintf("PC=$%04x SP=$%02x A=$%02x X=$%02x Y=$%02x P=%s", r.PC, r.SP, r.A, r.X, r.Y, r.Status)
}

// WordReader reads little endian words from an address space.
type WordReader interface {
	ReadU16(address uint16) uint16
}

// PowerOn returns the power-on register state for the given memory, reading
// the program counter from the reset vector.
func PowerOn(mem WordReader) Registers {
	return NewRegisters(mem.ReadU16(m6502.ResetVector))
}
