package m6502

import "fmt"

// Instruction is a single decoded 6502 instruction.
type Instruction struct {
	Opcode     byte
	Mnemonic   Mnemonic
	Addressing AddressMode
}

// Size returns the encoded size of the instruction in bytes.
func (i Instruction) Size() int {
	return i.Addressing.Size()
}

// Bytes returns the encoded form of the instruction: the opcode byte
// followed by the little endian operand.
func (i Instruction) Bytes() []byte {
	b := make([]byte, 1, MaxOpcodeSize)
	b[0] = i.Opcode

	switch i.Size() {
	case 2:
		b = append(b, uint8(i.Addressing.Value))
	case 3:
		b = append(b, uint8(i.Addressing.Value), uint8(i.Addressing.Value>>8))
	}
	return b
}

// String returns the canonical disassembly text of the instruction.
func (i Instruction) String() string {
	return i.Mnemonic.String() + formatOperand(i.Addressing)
}

func formatOperand(a AddressMode) string {
	switch a.Mode {
	case ImplicitAddressing, AccumulatorAddressing:
		return ""
	case ImmediateAddressing:
		return fmt.Sprintf(" #$%02x", a.Byte())
	case ZeroPageAddressing:
		return fmt.Sprintf(" $%02x", a.Byte())
	case ZeroPageXAddressing, IndirectXAddressing:
		return fmt.Sprintf(" $%02x, X", a.Byte())
	case ZeroPageYAddressing, IndirectYAddressing:
		return fmt.Sprintf(" $%02x, Y", a.Byte())
	case AbsoluteAddressing, IndirectAddressing:
		return fmt.Sprintf(" $%04x", a.Word())
	case AbsoluteXAddressing:
		return fmt.Sprintf(" $%04x, X", a.Word())
	case AbsoluteYAddressing:
		return fmt.Sprintf(" $%04x, Y", a.Word())
	case RelativeAddressing:
		offset := int(a.Offset())
		if offset < 0 {
			return fmt.Sprintf(" -$%02x", -offset)
		}
		return fmt.Sprintf(" $%02x", offset)
	default:
		return ""
	}
}
