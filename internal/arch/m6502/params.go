package m6502

// paramReaderFunc builds the addressing mode value from the operand bytes
// that follow the opcode byte. The slice length always equals the operand
// size of the mode.
type paramReaderFunc func(operand []byte) AddressMode

var paramReader = map[Mode]paramReaderFunc{
	ImplicitAddressing:    func([]byte) AddressMode { return Implicit() },
	AccumulatorAddressing: func([]byte) AddressMode { return Accumulator() },
	ImmediateAddressing:   func(b []byte) AddressMode { return Immediate(b[0]) },
	ZeroPageAddressing:    func(b []byte) AddressMode { return ZeroPage(b[0]) },
	ZeroPageXAddressing:   func(b []byte) AddressMode { return ZeroPageX(b[0]) },
	ZeroPageYAddressing:   func(b []byte) AddressMode { return ZeroPageY(b[0]) },
	RelativeAddressing:    func(b []byte) AddressMode { return Relative(int8(b[0])) },
	AbsoluteAddressing:    func(b []byte) AddressMode { return Absolute(paramReadWord(b)) },
	AbsoluteXAddressing:   func(b []byte) AddressMode { return AbsoluteX(paramReadWord(b)) },
	AbsoluteYAddressing:   func(b []byte) AddressMode { return AbsoluteY(paramReadWord(b)) },
	IndirectAddressing:    func(b []byte) AddressMode { return Indirect(paramReadWord(b)) },
	IndirectXAddressing:   func(b []byte) AddressMode { return IndirectX(b[0]) },
	IndirectYAddressing:   func(b []byte) AddressMode { return IndirectY(b[0]) },
}

func paramReadWord(b []byte) uint16 {
	return uint16(b[1])<<8 | uint16(b[0])
}

// readOpParam decodes the operand bytes for the given addressing mode.
func readOpParam(mode Mode, operand []byte) AddressMode {
	fun, ok := paramReader[mode]
	if !ok {
		return AddressMode{Mode: mode}
	}
	return fun(operand)
}
