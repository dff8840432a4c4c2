package mapper

import (
	"fmt"

	"github.com/retroenv/nestle/internal/ines"
	"github.com/retroenv/nestle/internal/memory"
	"github.com/retroenv/retrogolib/arch/system/nes"
)

const nromNumber = 0

// bankSize is the size of one PRG bank window, 0x8000-0xBFFF.
const bankSize = 0xBFFF - 0x8000 + 1

// ProgramWindow is the cartridge address range the PRG is mapped into.
var ProgramWindow = memory.NewRange(uint16(nes.CodeBaseAddress), 0xFFFF)

var (
	lowerBank = memory.NewRange(uint16(nes.CodeBaseAddress), 0xBFFF)
	upperBank = memory.NewRange(0xC000, 0xFFFF)
)

// NROM is the fixed mapping without bank switching. A single 16KB bank is
// mirrored into both halves of the program window, two banks fill it.
type NROM struct{}

// Name returns the name of the policy.
func (NROM) Name() string {
	return "NROM"
}

// MapImage builds the memory layout for the PRG of the image. The complete
// program window is read-only.
func (n NROM) MapImage(img *ines.Image) (*memory.Memory, error) {
	b := memory.NewBuilder()

	switch len(img.PRG) {
	case bankSize:
		if err := b.AddData(lowerBank, img.PRG); err != nil {
			return nil, fmt.Errorf("adding program bank: %w", err)
		}
		if err := b.AddMirror(lowerBank, upperBank); err != nil {
			return nil, fmt.Errorf("adding program bank mirror: %w", err)
		}

	case 2 * bankSize:
		if err := b.AddData(ProgramWindow, img.PRG); err != nil {
			return nil, fmt.Errorf("adding program banks: %w", err)
		}

	default:
		return nil, &Error{
			Mapper: n.Name(),
			Err:    fmt.Errorf("%w: %d bytes", ErrUnsupportedProgramSize, len(img.PRG)),
		}
	}

	b.AddReadonly(ProgramWindow)

	mem, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("building memory: %w", err)
	}
	return mem, nil
}
