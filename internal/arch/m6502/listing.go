package m6502

import (
	"fmt"
	"iter"
)

// Line is a decoded instruction together with the address it is located at.
type Line struct {
	Address     uint16
	Instruction Instruction
}

func (l Line) String() string {
	return fmt.Sprintf("$%04x %s", l.Address, l.Instruction)
}

// Listing assigns addresses to a sequence of instructions, starting at origin
// and advancing by the size of every instruction. Addresses wrap at 16 bit.
func Listing(instructions iter.Seq[Instruction], origin uint16) iter.Seq[Line] {
	return func(yield func(Line) bool) {
		address := origin
		for ins := range instructions {
			if !yield(Line{Address: address, Instruction: ins}) {
				return
			}
			address += uint16(ins.Size())
		}
	}
}
