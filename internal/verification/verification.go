// Package verification verifies that the decoded output recreates the input.
package verification

import (
	"fmt"
	"iter"

	"github.com/retroenv/nestle/internal/arch/m6502"
	"github.com/retroenv/nestle/internal/ines"
	"github.com/retroenv/retrogolib/log"
)

const maxLoggedMismatches = 10

// Encode returns the concatenated encoding of all instructions.
func Encode(instructions iter.Seq[m6502.Instruction]) []byte {
	var buf []byte
	for ins := range instructions {
		buf = append(buf, ins.Bytes()...)
	}
	return buf
}

// VerifyInstructions re-encodes the instructions and compares the result to
// the decoded prefix of the source.
func VerifyInstructions(logger *log.Logger, source []byte, instructions iter.Seq[m6502.Instruction]) error {
	encoded := Encode(instructions)
	if len(encoded) > len(source) {
		return fmt.Errorf("encoded %d bytes exceed source size %d", len(encoded), len(source))
	}

	if err := checkBufferEqual(logger, source[:len(encoded)], encoded); err != nil {
		return fmt.Errorf("instruction mismatch: %w", err)
	}
	return nil
}

// VerifyImage encodes the image in iNES format, parses it again and compares
// all sections and header fields.
func VerifyImage(logger *log.Logger, img *ines.Image) error {
	parsed, err := ines.ParseBytes(img.Bytes())
	if err != nil {
		return fmt.Errorf("parsing encoded image: %w", err)
	}

	if err := checkBufferEqual(logger, img.PRG, parsed.PRG); err != nil {
		return fmt.Errorf("segment PRG mismatch: %w", err)
	}
	if err := checkBufferEqual(logger, img.CHR, parsed.CHR); err != nil {
		return fmt.Errorf("segment CHR mismatch: %w", err)
	}
	if err := checkBufferEqual(logger, img.Trainer, parsed.Trainer); err != nil {
		return fmt.Errorf("trainer mismatch: %w", err)
	}
	if img.Header.MapperNumber() != parsed.Header.MapperNumber() {
		return fmt.Errorf("mapper mismatch, expected %d but got %d",
			img.Header.MapperNumber(), parsed.Header.MapperNumber())
	}
	if img.Header.Mirroring() != parsed.Header.Mirroring() {
		return fmt.Errorf("mirror mismatch, expected %s but got %s",
			img.Header.Mirroring(), parsed.Header.Mirroring())
	}
	if img.Header.HasBattery() != parsed.Header.HasBattery() {
		return fmt.Errorf("battery mismatch, expected %t but got %t",
			img.Header.HasBattery(), parsed.Header.HasBattery())
	}
	return nil
}

func checkBufferEqual(logger *log.Logger, input, output []byte) error {
	if len(input) != len(output) {
		return fmt.Errorf("mismatched lengths, %d != %d", len(input), len(output))
	}

	var diffs uint64
	for i := range input {
		if input[i] == output[i] {
			continue
		}

		diffs++
		if diffs <= maxLoggedMismatches {
			logger.Error("Offset mismatch",
				log.Hex("offset", i),
				log.Hex("expected", input[i]),
				log.Hex("got", output[i]))
		}
	}
	if diffs == 0 {
		return nil
	}
	return fmt.Errorf("%d offset mismatches", diffs)
}
