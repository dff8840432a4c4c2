package m6502

import m6502 "github.com/retroenv/retrogolib/arch/cpu/cpu6502"

// MaxOpcodeSize is the size in bytes of the longest encoded instruction.
const MaxOpcodeSize = 3

// Interrupt vector locations at the top of the address space.
var (
	NMIVector   = uint16(m6502.NMIAddress)
	ResetVector = uint16(m6502.ResetAddress)
	IRQVector   = uint16(m6502.IrqAddress)

	// VectorsStart is the first address of the interrupt vector table, code
	// running into it is treated as data.
	VectorsStart = uint16(m6502.InterruptVectorStartAddress)
)
