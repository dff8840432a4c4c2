package m6502

// Mode is the operand encoding scheme of an instruction.
type Mode uint8

// Addressing modes of the 6502.
const (
	ImplicitAddressing Mode = iota
	AccumulatorAddressing
	ImmediateAddressing
	ZeroPageAddressing
	ZeroPageXAddressing
	ZeroPageYAddressing
	RelativeAddressing
	AbsoluteAddressing
	AbsoluteXAddressing
	AbsoluteYAddressing
	IndirectAddressing
	IndirectXAddressing
	IndirectYAddressing
)

var modeNames = [...]string{
	ImplicitAddressing:    "implicit",
	AccumulatorAddressing: "accumulator",
	ImmediateAddressing:   "immediate",
	ZeroPageAddressing:    "zeropage",
	ZeroPageXAddressing:   "zeropage,x",
	ZeroPageYAddressing:   "zeropage,y",
	RelativeAddressing:    "relative",
	AbsoluteAddressing:    "absolute",
	AbsoluteXAddressing:   "absolute,x",
	AbsoluteYAddressing:   "absolute,y",
	IndirectAddressing:    "indirect",
	IndirectXAddressing:   "(indirect,x)",
	IndirectYAddressing:   "(indirect),y",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "unknown"
}

// Size returns the encoded size in bytes of an instruction using this mode,
// including the opcode byte.
func (m Mode) Size() int {
	switch m {
	case ImplicitAddressing, AccumulatorAddressing:
		return 1
	case ImmediateAddressing, ZeroPageAddressing, ZeroPageXAddressing, ZeroPageYAddressing,
		RelativeAddressing, IndirectXAddressing, IndirectYAddressing:
		return 2
	case AbsoluteAddressing, AbsoluteXAddressing, AbsoluteYAddressing, IndirectAddressing:
		return 3
	default:
		return 1
	}
}

// AddressMode is an addressing mode together with its decoded operand.
// 8 bit operands are stored zero extended, relative branch offsets keep
// their raw two's complement byte.
type AddressMode struct {
	Mode  Mode
	Value uint16
}

// Size returns the encoded size of the instruction in bytes. It only depends
// on the mode, never on the operand value.
func (a AddressMode) Size() int {
	return a.Mode.Size()
}

// Byte returns the operand as 8 bit value.
func (a AddressMode) Byte() uint8 {
	return uint8(a.Value)
}

// Word returns the operand as 16 bit value.
func (a AddressMode) Word() uint16 {
	return a.Value
}

// Offset returns the operand as signed branch offset.
func (a AddressMode) Offset() int8 {
	return int8(uint8(a.Value))
}

// Implicit returns an implicit addressing mode without operand.
func Implicit() AddressMode { return AddressMode{Mode: ImplicitAddressing} }

// Accumulator returns an accumulator addressing mode without operand.
func Accumulator() AddressMode { return AddressMode{Mode: AccumulatorAddressing} }

// Immediate returns an immediate addressing mode with the given value.
func Immediate(value uint8) AddressMode {
	return AddressMode{Mode: ImmediateAddressing, Value: uint16(value)}
}

// ZeroPage returns a zero page addressing mode.
func ZeroPage(address uint8) AddressMode {
	return AddressMode{Mode: ZeroPageAddressing, Value: uint16(address)}
}

// ZeroPageX returns a zero page addressing mode indexed by X.
func ZeroPageX(address uint8) AddressMode {
	return AddressMode{Mode: ZeroPageXAddressing, Value: uint16(address)}
}

// ZeroPageY returns a zero page addressing mode indexed by Y.
func ZeroPageY(address uint8) AddressMode {
	return AddressMode{Mode: ZeroPageYAddressing, Value: uint16(address)}
}

// Relative returns a relative addressing mode with a signed branch offset.
func Relative(offset int8) AddressMode {
	return AddressMode{Mode: RelativeAddressing, Value: uint16(uint8(offset))}
}

// Absolute returns an absolute addressing mode.
func Absolute(address uint16) AddressMode {
	return AddressMode{Mode: AbsoluteAddressing, Value: address}
}

// AbsoluteX returns an absolute addressing mode indexed by X.
func AbsoluteX(address uint16) AddressMode {
	return AddressMode{Mode: AbsoluteXAddressing, Value: address}
}

// AbsoluteY returns an absolute addressing mode indexed by Y.
func AbsoluteY(address uint16) AddressMode {
	return AddressMode{Mode: AbsoluteYAddressing, Value: address}
}

// Indirect returns an indirect addressing mode.
func Indirect(address uint16) AddressMode {
	return AddressMode{Mode: IndirectAddressing, Value: address}
}

// IndirectX returns an indexed indirect addressing mode.
func IndirectX(address uint8) AddressMode {
	return AddressMode{Mode: IndirectXAddressing, Value: uint16(address)}
}

// IndirectY returns an indirect indexed addressing mode.
func IndirectY(address uint8) AddressMode {
	return AddressMode{Mode: IndirectYAddressing, Value: uint16(address)}
}
