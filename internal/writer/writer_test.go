package writer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/retroenv/nestle/internal/arch/m6502"
	"github.com/retroenv/retrogolib/assert"
)

var testCode = []byte{0xa9, 0x00, 0x8d, 0x00, 0x02, 0x60}

func TestWriteListing(t *testing.T) {
	tests := []struct {
		name     string
		options  Options
		expected string
	}{
		{
			name:     "addresses",
			options:  Options{Addresses: true},
			expected: "$8000 LDA #$00\n$8002 STA $0200\n$8005 RTS\n",
		},
		{
			name:     "plain",
			options:  Options{},
			expected: "LDA #$00\nSTA $0200\nRTS\n",
		},
		{
			name:    "hex bytes",
			options: Options{Addresses: true, HexBytes: true},
			expected: "$8000 LDA #$00           ; a9 00\n" +
				"$8002 STA $0200          ; 8d 00 02\n" +
				"$8005 RTS                ; 60\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := New(&buf, tt.options)

			count, err := w.WriteListing(m6502.Listing(m6502.DecodeAll(testCode), 0x8000))
			assert.NoError(t, err)
			assert.Equal(t, 3, count)
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestWriteHexDump(t *testing.T) {
	data := make([]byte, 20)
	for i := range data {
		data[i] = byte(i)
	}

	var buf bytes.Buffer
	assert.NoError(t, New(&buf, Options{}).WriteHexDump(0x8000, data))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, "8000: 00 01 02 03 04 05 06 07 08 09 0a 0b 0c 0d 0e 0f", lines[0])
	assert.Equal(t, "8010: 10 11 12 13", lines[1])
}

func TestWriteCommentHeader(t *testing.T) {
	var buf bytes.Buffer
	header := Header{
		File:   "test.nes",
		Mapper: "NROM",
		Origin: 0x8000,
		PRG:    testCode,
	}
	assert.NoError(t, New(&buf, Options{}).WriteCommentHeader(header))

	output := buf.String()
	assert.Contains(t, output, "; File: test.nes\n")
	assert.Contains(t, output, "; Mapper: NROM\n")
	assert.Contains(t, output, "; PRG CRC32 checksum: ")
	assert.Contains(t, output, "; Origin: $8000\n")
	assert.False(t, strings.Contains(output, "CHR"))
}
