package m6502

import (
	"strings"
	"testing"

	rgm6502 "github.com/retroenv/retrogolib/arch/cpu/cpu6502"
	"github.com/retroenv/retrogolib/assert"
)

func TestOpcodeTableCoverage(t *testing.T) {
	mnemonics := map[Mnemonic]struct{}{}
	legal := 0

	for i := range 256 {
		b := byte(i)
		opcode, ok := Lookup(b)

		// pad with operand bytes so that only the table decides the outcome
		_, err := NewDecoder([]byte{b, 0, 0}).Decode()
		assert.Equal(t, ok, err == nil, "opcode $%02x", b)
		if !ok {
			continue
		}

		legal++
		mnemonics[opcode.Mnemonic] = struct{}{}
		assert.True(t, opcode.Mnemonic >= Adc && opcode.Mnemonic <= Tya)
	}

	assert.Equal(t, 151, legal)
	assert.Equal(t, LegalOpcodeCount(), legal)
	assert.Equal(t, 56, len(mnemonics))
	assert.Equal(t, 56, MnemonicCount)
}

// officialMnemonic returns whether the name is one of the documented 6502
// mnemonics. The reference table does not flag every undocumented opcode as
// unofficial, KIL at $02 is a plain entry.
func officialMnemonic(name string) bool {
	for m := Adc; m <= Tya; m++ {
		if strings.EqualFold(m.String(), name) {
			return true
		}
	}
	return false
}

func TestOpcodeTableMatchesReference(t *testing.T) {
	for i := range 256 {
		b := byte(i)
		opcode, ok := Lookup(b)
		reference := rgm6502.Opcodes[b].Instruction
		official := reference != nil && !reference.Unofficial && officialMnemonic(reference.Name)

		assert.Equal(t, official, ok, "opcode $%02x", b)
		if ok {
			assert.Equal(t, strings.ToLower(opcode.Mnemonic.String()), strings.ToLower(reference.Name))
		}
	}
}

func TestBuildOpcodeTableRejectsDuplicates(t *testing.T) {
	defer func() {
		assert.NotNil(t, recover())
	}()
	buildOpcodeTable([]opcodeDefinition{
		{0xEA, Nop, ImplicitAddressing},
		{0xEA, Brk, ImplicitAddressing},
	})
}

func TestMnemonicString(t *testing.T) {
	assert.Equal(t, "ADC", Adc.String())
	assert.Equal(t, "TYA", Tya.String())
	assert.Equal(t, "Mnemonic(0)", Mnemonic(0).String())
}

func TestModeSize(t *testing.T) {
	tests := []struct {
		mode Mode
		size int
	}{
		{ImplicitAddressing, 1},
		{AccumulatorAddressing, 1},
		{ImmediateAddressing, 2},
		{ZeroPageAddressing, 2},
		{ZeroPageXAddressing, 2},
		{ZeroPageYAddressing, 2},
		{RelativeAddressing, 2},
		{IndirectXAddressing, 2},
		{IndirectYAddressing, 2},
		{AbsoluteAddressing, 3},
		{AbsoluteXAddressing, 3},
		{AbsoluteYAddressing, 3},
		{IndirectAddressing, 3},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			assert.Equal(t, tt.size, tt.mode.Size())
			// the operand value never influences the size
			assert.Equal(t, tt.size, AddressMode{Mode: tt.mode, Value: 0xFFFF}.Size())
		})
	}
}

func TestUnofficialName(t *testing.T) {
	_, ok := UnofficialName(0xA9) // LDA immediate is official
	assert.False(t, ok)

	name, ok := UnofficialName(0x02)
	assert.True(t, ok, "KIL is not in the decode table")
	assert.True(t, strings.EqualFold("kil", name), "name %s", name)
	assert.False(t, officialMnemonic(name))

	for i := range 256 {
		b := byte(i)
		if _, legal := Lookup(b); legal {
			continue
		}
		name, ok := UnofficialName(b)
		if ok {
			assert.NotEmpty(t, name)
		}
	}
}
