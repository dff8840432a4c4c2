// Package m6502 provides the 6502 opcode table, an instruction decoder for
// raw byte streams and the canonical disassembly text format.
package m6502

import m6502 "github.com/retroenv/retrogolib/arch/cpu/cpu6502"

// UnofficialName returns the name of the undocumented instruction that the
// opcode byte triggers on real hardware. Undocumented opcodes are not part of
// the decode table, this is only used to describe why a decode stopped.
// Every named byte outside the decode table counts as undocumented, as the
// reference table does not flag all of them, for example KIL.
func UnofficialName(b byte) (string, bool) {
	if _, legal := Lookup(b); legal {
		return "", false
	}
	op := m6502.Opcodes[b]
	if op.Instruction == nil || op.Instruction.Name == "" {
		return "", false
	}
	return op.Instruction.Name, true
}
