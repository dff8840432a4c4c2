// Package writer implements the listing and hex dump output.
package writer

import (
	"fmt"
	"hash/crc32"
	"io"
	"iter"
	"strings"

	"github.com/retroenv/nestle/internal/arch/m6502"
)

const (
	dataBytesPerLine = 16
	hexColumnWidth   = 24
)

// Writer writes disassembly listings and hex dumps.
type Writer struct {
	options Options
	writer  io.Writer
}

// Options of the writer.
type Options struct {
	Addresses bool // prefix every instruction with its address
	HexBytes  bool // append the encoded bytes of every instruction as comment
}

// Header describes the input of a listing for the comment header.
type Header struct {
	File   string
	Mapper string
	Origin uint16
	PRG    []byte
	CHR    []byte
}

// New creates a new writer.
func New(writer io.Writer, options Options) *Writer {
	return &Writer{
		options: options,
		writer:  writer,
	}
}

// WriteCommentHeader writes the CRC32 checksums and the origin address as comments.
func (w Writer) WriteCommentHeader(header Header) error {
	if header.File != "" {
		if _, err := fmt.Fprintf(w.writer, "; File: %s\n", header.File); err != nil {
			return fmt.Errorf("writing file name: %w", err)
		}
	}
	if header.Mapper != "" {
		if _, err := fmt.Fprintf(w.writer, "; Mapper: %s\n", header.Mapper); err != nil {
			return fmt.Errorf("writing mapper: %w", err)
		}
	}
	if _, err := fmt.Fprintf(w.writer, "; PRG CRC32 checksum: %08x\n", crc32.ChecksumIEEE(header.PRG)); err != nil {
		return fmt.Errorf("writing prg checksum: %w", err)
	}
	if len(header.CHR) > 0 {
		if _, err := fmt.Fprintf(w.writer, "; CHR CRC32 checksum: %08x\n", crc32.ChecksumIEEE(header.CHR)); err != nil {
			return fmt.Errorf("writing chr checksum: %w", err)
		}
	}
	if _, err := fmt.Fprintf(w.writer, "; Origin: $%04x\n\n", header.Origin); err != nil {
		return fmt.Errorf("writing origin: %w", err)
	}
	return nil
}

// WriteListing writes one line per instruction and returns the number of
// written instructions.
func (w Writer) WriteListing(lines iter.Seq[m6502.Line]) (int, error) {
	count := 0
	for line := range lines {
		if err := w.writeCodeLine(line); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func (w Writer) writeCodeLine(line m6502.Line) error {
	var text string
	if w.options.Addresses {
		text = line.String()
	} else {
		text = line.Instruction.String()
	}

	if w.options.HexBytes {
		text = fmt.Sprintf("%-*s ; %s", hexColumnWidth, text, hexBytes(line.Instruction.Bytes()))
	}

	if _, err := fmt.Fprintln(w.writer, text); err != nil {
		return fmt.Errorf("writing code line: %w", err)
	}
	return nil
}

// WriteHexDump writes the data as hex dump with dataBytesPerLine bytes per
// line, each line prefixed by its address.
func (w Writer) WriteHexDump(base uint16, data []byte) error {
	remaining := len(data)
	for i := 0; remaining > 0; {
		toWrite := min(remaining, dataBytesPerLine)

		line := fmt.Sprintf("%04X: %s", base+uint16(i), hexBytes(data[i:i+toWrite]))
		if _, err := fmt.Fprintln(w.writer, line); err != nil {
			return fmt.Errorf("writing data line: %w", err)
		}

		i += toWrite
		remaining -= toWrite
	}
	return nil
}

func hexBytes(data []byte) string {
	buf := &strings.Builder{}
	for i, b := range data {
		if i > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(buf, "%02x", b)
	}
	return buf.String()
}
