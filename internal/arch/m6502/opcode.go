package m6502

import "fmt"

// Mnemonic identifies one of the 56 legal 6502 instructions.
type Mnemonic uint8

// Legal 6502 instruction mnemonics. The zero value is not a valid mnemonic.
const (
	Adc Mnemonic = iota + 1
	And
	Asl
	Bcc
	Bcs
	Beq
	Bit
	Bmi
	Bne
	Bpl
	Brk
	Bvc
	Bvs
	Clc
	Cld
	Cli
	Clv
	Cmp
	Cpx
	Cpy
	Dec
	Dex
	Dey
	Eor
	Inc
	Inx
	Iny
	Jmp
	Jsr
	Lda
	Ldx
	Ldy
	Lsr
	Nop
	Ora
	Pha
	Php
	Pla
	Plp
	Rol
	Ror
	Rti
	Rts
	Sbc
	Sec
	Sed
	Sei
	Sta
	Stx
	Sty
	Tax
	Tay
	Tsx
	Txa
	Txs
	Tya
)

var mnemonicNames = [...]string{
	Adc: "ADC", And: "AND", Asl: "ASL", Bcc: "BCC", Bcs: "BCS", Beq: "BEQ", Bit: "BIT",
	Bmi: "BMI", Bne: "BNE", Bpl: "BPL", Brk: "BRK", Bvc: "BVC", Bvs: "BVS", Clc: "CLC",
	Cld: "CLD", Cli: "CLI", Clv: "CLV", Cmp: "CMP", Cpx: "CPX", Cpy: "CPY", Dec: "DEC",
	Dex: "DEX", Dey: "DEY", Eor: "EOR", Inc: "INC", Inx: "INX", Iny: "INY", Jmp: "JMP",
	Jsr: "JSR", Lda: "LDA", Ldx: "LDX", Ldy: "LDY", Lsr: "LSR", Nop: "NOP", Ora: "ORA",
	Pha: "PHA", Php: "PHP", Pla: "PLA", Plp: "PLP", Rol: "ROL", Ror: "ROR", Rti: "RTI",
	Rts: "RTS", Sbc: "SBC", Sec: "SEC", Sed: "SED", Sei: "SEI", Sta: "STA", Stx: "STX",
	Sty: "STY", Tax: "TAX", Tay: "TAY", Tsx: "TSX", Txa: "TXA", Txs: "TXS", Tya: "TYA",
}

// MnemonicCount is the number of legal 6502 mnemonics.
const MnemonicCount = len(mnemonicNames) - 1

func (m Mnemonic) String() string {
	if m == 0 || int(m) >= len(mnemonicNames) {
		return fmt.Sprintf("Mnemonic(%d)", uint8(m))
	}
	return mnemonicNames[m]
}

// Opcode is the decode rule of a single opcode byte.
type Opcode struct {
	Mnemonic Mnemonic
	Mode     Mode
}

type opcodeDefinition struct {
	code     byte
	mnemonic Mnemonic
	mode     Mode
}

// definitions lists every legal opcode. All bytes missing here are illegal
// opcodes and end a decode.
var definitions = []opcodeDefinition{
	{0x69, Adc, ImmediateAddressing},
	{0x65, Adc, ZeroPageAddressing},
	{0x75, Adc, ZeroPageXAddressing},
	{0x6D, Adc, AbsoluteAddressing},
	{0x7D, Adc, AbsoluteXAddressing},
	{0x79, Adc, AbsoluteYAddressing},
	{0x61, Adc, IndirectXAddressing},
	{0x71, Adc, IndirectYAddressing},

	{0x29, And, ImmediateAddressing},
	{0x25, And, ZeroPageAddressing},
	{0x35, And, ZeroPageXAddressing},
	{0x2D, And, AbsoluteAddressing},
	{0x3D, And, AbsoluteXAddressing},
	{0x39, And, AbsoluteYAddressing},
	{0x21, And, IndirectXAddressing},
	{0x31, And, IndirectYAddressing},

	{0x0A, Asl, AccumulatorAddressing},
	{0x06, Asl, ZeroPageAddressing},
	{0x16, Asl, ZeroPageXAddressing},
	{0x0E, Asl, AbsoluteAddressing},
	{0x1E, Asl, AbsoluteXAddressing},

	{0x90, Bcc, RelativeAddressing},
	{0xB0, Bcs, RelativeAddressing},
	{0xF0, Beq, RelativeAddressing},

	{0x24, Bit, ZeroPageAddressing},
	{0x2C, Bit, AbsoluteAddressing},

	{0x30, Bmi, RelativeAddressing},
	{0xD0, Bne, RelativeAddressing},
	{0x10, Bpl, RelativeAddressing},
	{0x00, Brk, ImplicitAddressing},
	{0x50, Bvc, RelativeAddressing},
	{0x70, Bvs, RelativeAddressing},

	{0x18, Clc, ImplicitAddressing},
	{0xD8, Cld, ImplicitAddressing},
	{0x58, Cli, ImplicitAddressing},
	{0xB8, Clv, ImplicitAddressing},

	{0xC9, Cmp, ImmediateAddressing},
	{0xC5, Cmp, ZeroPageAddressing},
	{0xD5, Cmp, ZeroPageXAddressing},
	{0xCD, Cmp, AbsoluteAddressing},
	{0xDD, Cmp, AbsoluteXAddressing},
	{0xD9, Cmp, AbsoluteYAddressing},
	{0xC1, Cmp, IndirectXAddressing},
	{0xD1, Cmp, IndirectYAddressing},

	{0xE0, Cpx, ImmediateAddressing},
	{0xE4, Cpx, ZeroPageAddressing},
	{0xEC, Cpx, AbsoluteAddressing},

	{0xC0, Cpy, ImmediateAddressing},
	{0xC4, Cpy, ZeroPageAddressing},
	{0xCC, Cpy, AbsoluteAddressing},

	{0xC6, Dec, ZeroPageAddressing},
	{0xD6, Dec, ZeroPageXAddressing},
	{0xCE, Dec, AbsoluteAddressing},
	{0xDE, Dec, AbsoluteXAddressing},

	{0xCA, Dex, ImplicitAddressing},
	{0x88, Dey, ImplicitAddressing},

	{0x49, Eor, ImmediateAddressing},
	{0x45, Eor, ZeroPageAddressing},
	{0x55, Eor, ZeroPageXAddressing},
	{0x4D, Eor, AbsoluteAddressing},
	{0x5D, Eor, AbsoluteXAddressing},
	{0x59, Eor, AbsoluteYAddressing},
	{0x41, Eor, IndirectXAddressing},
	{0x51, Eor, IndirectYAddressing},

	{0xE6, Inc, ZeroPageAddressing},
	{0xF6, Inc, ZeroPageXAddressing},
	{0xEE, Inc, AbsoluteAddressing},
	{0xFE, Inc, AbsoluteXAddressing},

	{0xE8, Inx, ImplicitAddressing},
	{0xC8, Iny, ImplicitAddressing},

	{0x4C, Jmp, AbsoluteAddressing},
	{0x6C, Jmp, IndirectAddressing},
	{0x20, Jsr, AbsoluteAddressing},

	{0xA9, Lda, ImmediateAddressing},
	{0xA5, Lda, ZeroPageAddressing},
	{0xB5, Lda, ZeroPageXAddressing},
	{0xAD, Lda, AbsoluteAddressing},
	{0xBD, Lda, AbsoluteXAddressing},
	{0xB9, Lda, AbsoluteYAddressing},
	{0xA1, Lda, IndirectXAddressing},
	{0xB1, Lda, IndirectYAddressing},

	{0xA2, Ldx, ImmediateAddressing},
	{0xA6, Ldx, ZeroPageAddressing},
	{0xB6, Ldx, ZeroPageYAddressing},
	{0xAE, Ldx, AbsoluteAddressing},
	{0xBE, Ldx, AbsoluteYAddressing},

	{0xA0, Ldy, ImmediateAddressing},
	{0xA4, Ldy, ZeroPageAddressing},
	{0xB4, Ldy, ZeroPageXAddressing},
	{0xAC, Ldy, AbsoluteAddressing},
	{0xBC, Ldy, AbsoluteXAddressing},

	{0x4A, Lsr, AccumulatorAddressing},
	{0x46, Lsr, ZeroPageAddressing},
	{0x56, Lsr, ZeroPageXAddressing},
	{0x4E, Lsr, AbsoluteAddressing},
	{0x5E, Lsr, AbsoluteXAddressing},

	{0xEA, Nop, ImplicitAddressing},

	{0x09, Ora, ImmediateAddressing},
	{0x05, Ora, ZeroPageAddressing},
	{0x15, Ora, ZeroPageXAddressing},
	{0x0D, Ora, AbsoluteAddressing},
	{0x1D, Ora, AbsoluteXAddressing},
	{0x19, Ora, AbsoluteYAddressing},
	{0x01, Ora, IndirectXAddressing},
	{0x11, Ora, IndirectYAddressing},

	{0x48, Pha, ImplicitAddressing},
	{0x08, Php, ImplicitAddressing},
	{0x68, Pla, ImplicitAddressing},
	{0x28, Plp, ImplicitAddressing},

	{0x2A, Rol, AccumulatorAddressing},
	{0x26, Rol, ZeroPageAddressing},
	{0x36, Rol, ZeroPageXAddressing},
	{0x2E, Rol, AbsoluteAddressing},
	{0x3E, Rol, AbsoluteXAddressing},

	{0x6A, Ror, AccumulatorAddressing},
	{0x66, Ror, ZeroPageAddressing},
	{0x76, Ror, ZeroPageXAddressing},
	{0x6E, Ror, AbsoluteAddressing},
	{0x7E, Ror, AbsoluteXAddressing},

	{0x40, Rti, ImplicitAddressing},
	{0x60, Rts, ImplicitAddressing},

	{0xE9, Sbc, ImmediateAddressing},
	{0xE5, Sbc, ZeroPageAddressing},
	{0xF5, Sbc, ZeroPageXAddressing},
	{0xED, Sbc, AbsoluteAddressing},
	{0xFD, Sbc, AbsoluteXAddressing},
	{0xF9, Sbc, AbsoluteYAddressing},
	{0xE1, Sbc, IndirectXAddressing},
	{0xF1, Sbc, IndirectYAddressing},

	{0x38, Sec, ImplicitAddressing},
	{0xF8, Sed, ImplicitAddressing},
	{0x78, Sei, ImplicitAddressing},

	{0x85, Sta, ZeroPageAddressing},
	{0x95, Sta, ZeroPageXAddressing},
	{0x8D, Sta, AbsoluteAddressing},
	{0x9D, Sta, AbsoluteXAddressing},
	{0x99, Sta, AbsoluteYAddressing},
	{0x81, Sta, IndirectXAddressing},
	{0x91, Sta, IndirectYAddressing},

	{0x86, Stx, ZeroPageAddressing},
	{0x96, Stx, ZeroPageYAddressing},
	{0x8E, Stx, AbsoluteAddressing},

	{0x84, Sty, ZeroPageAddressing},
	{0x94, Sty, ZeroPageXAddressing},
	{0x8C, Sty, AbsoluteAddressing},

	{0xAA, Tax, ImplicitAddressing},
	{0xA8, Tay, ImplicitAddressing},
	{0xBA, Tsx, ImplicitAddressing},
	{0x8A, Txa, ImplicitAddressing},
	{0x9A, Txs, ImplicitAddressing},
	{0x98, Tya, ImplicitAddressing},
}

type opcodeTable struct {
	opcodes [256]Opcode
	legal   [256]bool
}

var opcodes = buildOpcodeTable(definitions)

func buildOpcodeTable(defs []opcodeDefinition) *opcodeTable {
	table := &opcodeTable{}
	for _, def := range defs {
		if table.legal[def.code] {
			panic(fmt.Sprintf("opcode $%02x defined twice", def.code))
		}
		table.opcodes[def.code] = Opcode{Mnemonic: def.mnemonic, Mode: def.mode}
		table.legal[def.code] = true
	}
	return table
}

// Lookup returns the decode rule for the opcode byte and whether the byte
// is a legal opcode.
func Lookup(b byte) (Opcode, bool) {
	return opcodes.opcodes[b], opcodes.legal[b]
}

// LegalOpcodeCount returns the number of legal opcode bytes.
func LegalOpcodeCount() int {
	return len(definitions)
}
