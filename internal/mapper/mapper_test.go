package mapper

import (
	"errors"
	"testing"

	"github.com/retroenv/nestle/internal/ines"
	"github.com/retroenv/nestle/internal/memory"
	"github.com/retroenv/retrogolib/assert"
)

func patternPRG(size int) []byte {
	prg := make([]byte, size)
	for i := range prg {
		prg[i] = byte(i*7 + i>>8)
	}
	return prg
}

func TestNROMSingleBank(t *testing.T) {
	img := &ines.Image{PRG: patternPRG(16384)}

	mem, err := NROM{}.MapImage(img)
	assert.NoError(t, err)

	for address := 0x8000; address <= 0xBFFF; address++ {
		a := uint16(address)
		assert.Equal(t, img.PRG[address-0x8000], mem.ReadU8(a))
		assert.Equal(t, mem.ReadU8(a), mem.ReadU8(a+0x4000))
	}

	segments := mem.Segments()
	assert.Len(t, segments, 2)
	assert.Equal(t, memory.MirrorSegment, segments[0].Kind)
	assert.Equal(t, memory.NewRange(0xC000, 0xFFFF), segments[0].Dest)
	assert.Equal(t, memory.ReadonlySegment, segments[1].Kind)
}

func TestNROMDoubleBank(t *testing.T) {
	img := &ines.Image{PRG: patternPRG(32768)}

	mem, err := NROM{}.MapImage(img)
	assert.NoError(t, err)

	differ := false
	for address := 0x8000; address <= 0xFFFF; address++ {
		assert.Equal(t, img.PRG[address-0x8000], mem.ReadU8(uint16(address)))
		if address <= 0xBFFF && mem.ReadU8(uint16(address)) != mem.ReadU8(uint16(address+0x4000)) {
			differ = true
		}
	}
	assert.True(t, differ, "halves of a 32KB program are independent")

	segments := mem.Segments()
	assert.Len(t, segments, 1)
	assert.Equal(t, memory.ReadonlySegment, segments[0].Kind)
}

func TestNROMProgramWindowIsReadonly(t *testing.T) {
	for _, size := range []int{16384, 32768} {
		mem, err := NROM{}.MapImage(&ines.Image{PRG: patternPRG(size)})
		assert.NoError(t, err)

		for _, address := range []uint16{0x8000, 0x9234, 0xBFFF, 0xC000, 0xFFFC, 0xFFFF} {
			before := mem.ReadU8(address)
			err := mem.WriteU8(address, before+1)
			var violation *memory.ReadOnlyViolation
			assert.True(t, errors.As(err, &violation), "address $%04x", address)
			assert.Equal(t, before, mem.ReadU8(address))
		}

		// RAM below the program window stays writable
		assert.NoError(t, mem.WriteU8(0x0200, 0x42))
		assert.NoError(t, mem.WriteU16(0x7FFE, 0x1234))
	}
}

func TestNROMUnsupportedSize(t *testing.T) {
	for _, size := range []int{0, 16383, 16385, 0xBFFF - 0x8000, 24576, 32769, 65536} {
		_, err := NROM{}.MapImage(&ines.Image{PRG: make([]byte, size)})
		assert.True(t, errors.Is(err, ErrUnsupportedProgramSize), "size %d", size)

		var mapperErr *Error
		assert.True(t, errors.As(err, &mapperErr))
		assert.Equal(t, "NROM", mapperErr.Mapper)
	}
}

func TestForImage(t *testing.T) {
	m, err := ForImage(&ines.Image{})
	assert.NoError(t, err)
	assert.Equal(t, "NROM", m.Name())

	_, err = ForImage(&ines.Image{Header: ines.Header{MapperFlags: 0x10}})
	assert.True(t, errors.Is(err, ErrUnsupportedMapper))
	assert.ErrorContains(t, err, "#1")

	_, err = ForImage(&ines.Image{Header: ines.Header{MapperFlags: 0x50}})
	assert.ErrorContains(t, err, "#5")
}

func TestForImageWithTrainer(t *testing.T) {
	img := &ines.Image{
		Header:  ines.Header{PRGBanks: 1, MapperFlags: 0b0010_0000},
		Trainer: make([]byte, ines.TrainerSize),
		PRG:     make([]byte, ines.PRGBankSize),
	}
	assert.True(t, img.Header.HasTrainer())

	m, err := ForImage(img)
	assert.NoError(t, err)
	assert.Equal(t, "NROM", m.Name())

	_, err = m.MapImage(img)
	assert.NoError(t, err)
}
