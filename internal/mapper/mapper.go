// Package mapper turns cartridge images into the initial memory layout of
// the machine.
package mapper

import (
	"errors"
	"fmt"

	"github.com/retroenv/nestle/internal/ines"
	"github.com/retroenv/nestle/internal/memory"
)

var (
	// ErrUnsupportedProgramSize is returned for a PRG size that matches no cartridge layout.
	ErrUnsupportedProgramSize = errors.New("unsupported program size")
	// ErrUnsupportedMapper is returned for an iNES mapper number without a mapping policy.
	ErrUnsupportedMapper = errors.New("unsupported mapper")
)

// Error is returned when an image can not be mapped.
type Error struct {
	Mapper string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("mapper %s: %s", e.Mapper, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Mapper is a cartridge mapping policy.
type Mapper interface {
	// Name returns the name of the mapping policy.
	Name() string
	// MapImage builds the initial memory layout for the image.
	MapImage(img *ines.Image) (*memory.Memory, error)
}

// ForImage returns the mapping policy for the mapper number of the image.
func ForImage(img *ines.Image) (Mapper, error) {
	number := img.Header.MapperNumber()
	switch number {
	case nromNumber:
		return NROM{}, nil
	default:
		return nil, &Error{
			Mapper: fmt.Sprintf("#%d", number),
			Err:    ErrUnsupportedMapper,
		}
	}
}
