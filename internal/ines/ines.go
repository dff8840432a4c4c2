// Package ines parses iNES v1 cartridge images.
package ines

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Sizes of the iNES sections.
const (
	HeaderSize  = 16
	TrainerSize = 512
	PRGBankSize = 16384
	CHRBankSize = 8192
)

// Flag bits of the mapper flags byte.
const (
	flagVerticalMirroring = 0b0000_0001
	flagBattery           = 0b0000_0010
	flagTrainer           = 0b0010_0000
)

// Magic is the signature every iNES image starts with.
var Magic = [4]byte{'N', 'E', 'S', 0x1A}

var (
	// ErrBadMagic is returned when the image does not start with Magic.
	ErrBadMagic = errors.New("invalid iNES signature")
	// ErrTruncated is returned when a section is shorter than the header announces.
	ErrTruncated = errors.New("truncated section")
)

// FormatError is returned for images that do not follow the iNES format.
type FormatError struct {
	Section string
	Err     error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("iNES %s: %s", e.Section, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Mirroring is the nametable arrangement wired on the cartridge.
type Mirroring uint8

// Nametable mirroring types.
const (
	HorizontalMirroring Mirroring = iota
	VerticalMirroring
)

func (m Mirroring) String() string {
	if m == VerticalMirroring {
		return "vertical"
	}
	return "horizontal"
}

// Header is the 16 byte iNES header without its signature.
type Header struct {
	PRGBanks    uint8
	CHRBanks    uint8
	MapperFlags uint8
	Reserved    [9]byte
}

// HasTrainer returns whether a 512 byte trainer follows the header.
func (h Header) HasTrainer() bool {
	return h.MapperFlags&flagTrainer != 0
}

// HasBattery returns whether the cartridge has battery backed RAM.
func (h Header) HasBattery() bool {
	return h.MapperFlags&flagBattery != 0
}

// Mirroring returns the nametable mirroring of the cartridge.
func (h Header) Mirroring() Mirroring {
	if h.MapperFlags&flagVerticalMirroring != 0 {
		return VerticalMirroring
	}
	return HorizontalMirroring
}

// MapperNumber returns the iNES mapper number, combined from the high
// nibbles of the mapper flags and the first reserved byte. The trainer flag
// shares the mapper nibble and is not part of the number.
func (h Header) MapperNumber() uint8 {
	return (h.MapperFlags&^flagTrainer)>>4 | h.Reserved[0]&0xF0
}

// Image is a parsed iNES image. Trainer and CHR are nil if absent.
type Image struct {
	Header  Header
	Trainer []byte
	PRG     []byte
	CHR     []byte
}

// Parse reads an iNES image from the reader.
func Parse(r io.Reader) (*Image, error) {
	var raw [HeaderSize]byte
	if _, err := io.ReadFull(r, raw[:]); err != nil {
		return nil, &FormatError{Section: "header", Err: fmt.Errorf("%w: %w", ErrTruncated, err)}
	}
	if !bytes.Equal(raw[:len(Magic)], Magic[:]) {
		return nil, &FormatError{Section: "header", Err: fmt.Errorf("%w: % x", ErrBadMagic, raw[:len(Magic)])}
	}

	img := &Image{
		Header: Header{
			PRGBanks:    raw[4],
			CHRBanks:    raw[5],
			MapperFlags: raw[6],
		},
	}
	copy(img.Header.Reserved[:], raw[7:])

	var err error
	if img.Header.HasTrainer() {
		if img.Trainer, err = readSection(r, "trainer", TrainerSize); err != nil {
			return nil, err
		}
	}
	if img.PRG, err = readSection(r, "PRG", int(img.Header.PRGBanks)*PRGBankSize); err != nil {
		return nil, err
	}
	if img.Header.CHRBanks != 0 {
		if img.CHR, err = readSection(r, "CHR", int(img.Header.CHRBanks)*CHRBankSize); err != nil {
			return nil, err
		}
	}
	return img, nil
}

// ParseBytes parses an iNES image from a buffer.
func ParseBytes(data []byte) (*Image, error) {
	return Parse(bytes.NewReader(data))
}

func readSection(r io.Reader, section string, size int) ([]byte, error) {
	buf := make([]byte, size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, &FormatError{Section: section, Err: fmt.Errorf("%w: %w", ErrTruncated, err)}
	}
	return buf, nil
}

// Bytes encodes the image in iNES format.
func (img *Image) Bytes() []byte {
	buf := make([]byte, 0, HeaderSize+len(img.Trainer)+len(img.PRG)+len(img.CHR))
	buf = append(buf, Magic[:]...)
	buf = append(buf, img.Header.PRGBanks, img.Header.CHRBanks, img.Header.MapperFlags)
	buf = append(buf, img.Header.Reserved[:]...)
	buf = append(buf, img.Trainer...)
	buf = append(buf, img.PRG...)
	buf = append(buf, img.CHR...)
	return buf
}
