package memory

import (
	"bytes"
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func buildMemory(t *testing.T, configure func(b *Builder)) *Memory {
	t.Helper()
	b := NewBuilder()
	configure(b)
	mem, err := b.Build()
	assert.NoError(t, err)
	return mem
}

func TestMirror(t *testing.T) {
	mem := buildMemory(t, func(b *Builder) {
		assert.NoError(t, b.AddMirror(NewRange(0x0000, 0x7FFF), NewRange(0x8000, 0xFFFF)))
	})

	assert.NoError(t, mem.WriteU8(0x3FFF, 47))
	assert.Equal(t, uint8(47), mem.ReadU8(0x3FFF))
	assert.Equal(t, mem.ReadU8(0x3FFF), mem.ReadU8(0xBFFF))

	assert.NoError(t, mem.WriteU8(0x8FFF, 74))
	assert.Equal(t, uint8(74), mem.ReadU8(0x0FFF))

	assert.NoError(t, mem.WriteU8(0x0000, 42))
	assert.Equal(t, mem.ReadU8(0x0000), mem.ReadU8(0x8000))

	assert.NoError(t, mem.WriteU8(0x7FFF, 24))
	assert.Equal(t, mem.ReadU8(0x7FFF), mem.ReadU8(0xFFFF))

	assert.NoError(t, mem.WriteU16(0x7FFE, 0xABCD))
	assert.Equal(t, uint16(0xABCD), mem.ReadU16(0x7FFE))
	assert.Equal(t, mem.ReadU16(0x7FFE), mem.ReadU16(0xFFFE))
}

func TestMirrorWordAcrossHalves(t *testing.T) {
	mem := buildMemory(t, func(b *Builder) {
		assert.NoError(t, b.AddMirror(NewRange(0x0000, 0x7FFF), NewRange(0x8000, 0xFFFF)))
	})

	// low byte lands at the end of the source, high byte at the start of the destination
	assert.NoError(t, mem.WriteU16(0x7FFF, 0x1234))
	assert.Equal(t, uint8(0x34), mem.ReadU8(0x7FFF))
	assert.Equal(t, uint8(0x34), mem.ReadU8(0xFFFF))
	assert.Equal(t, uint8(0x12), mem.ReadU8(0x8000))
	assert.Equal(t, uint8(0x12), mem.ReadU8(0x0000))
}

func TestMirrorShorterDestination(t *testing.T) {
	mem := buildMemory(t, func(b *Builder) {
		assert.NoError(t, b.AddMirror(NewRange(0x0000, 0x00FF), NewRange(0x1000, 0x100F)))
	})

	assert.NoError(t, mem.WriteU8(0x0005, 1))
	assert.Equal(t, uint8(1), mem.ReadU8(0x1005))

	// outside of the destination length nothing is mirrored
	assert.NoError(t, mem.WriteU8(0x0020, 2))
	assert.Equal(t, uint8(0), mem.ReadU8(0x1020))
}

func TestReadonly(t *testing.T) {
	mem := buildMemory(t, func(b *Builder) {
		b.AddReadonly(NewRange(0x0000, 0x7FFF))
	})

	err := mem.WriteU8(0x0000, 42)
	var violation *ReadOnlyViolation
	assert.True(t, errors.As(err, &violation))
	assert.Equal(t, uint16(0x0000), violation.Address)
	assert.Equal(t, uint8(0), mem.ReadU8(0x0000))

	assert.NoError(t, mem.WriteU8(0x8000, 42))
	assert.Equal(t, uint8(42), mem.ReadU8(0x8000))

	assert.Error(t, mem.WriteU8(0x7FFF, 42))
	assert.Error(t, mem.WriteU16(0x1234, 0xFFFF))
}

func TestReadonlyWordIsNotPartiallyWritten(t *testing.T) {
	mem := buildMemory(t, func(b *Builder) {
		b.AddReadonly(NewRange(0x8000, 0xFFFF))
	})

	// the high byte would land in the read-only range
	err := mem.WriteU16(0x7FFF, 0xBEEF)
	var violation *ReadOnlyViolation
	assert.True(t, errors.As(err, &violation))
	assert.Equal(t, uint16(0x8000), violation.Address)
	assert.Equal(t, uint8(0), mem.ReadU8(0x7FFF))
	assert.Equal(t, uint8(0), mem.ReadU8(0x8000))
}

func TestBuilderData(t *testing.T) {
	mem := buildMemory(t, func(b *Builder) {
		assert.NoError(t, b.AddData(NewRange(0x0000, 0x0001), []byte{0xAD, 0xDE}))
	})

	assert.Equal(t, uint16(0xDEAD), mem.ReadU16(0x0000))
}

func TestBuilderDataLastWriteWins(t *testing.T) {
	mem := buildMemory(t, func(b *Builder) {
		assert.NoError(t, b.AddData(NewRange(0x0000, 0x0003), []byte{1, 2, 3, 4}))
		assert.NoError(t, b.AddData(NewRange(0x0002, 0x0003), []byte{9, 9}))
	})

	assert.True(t, bytes.Equal([]byte{1, 2, 9, 9}, mem.ReadRange(NewRange(0x0000, 0x0003))))
}

func TestBuilderDataIsCopied(t *testing.T) {
	data := []byte{1, 2}
	b := NewBuilder()
	assert.NoError(t, b.AddData(NewRange(0x0010, 0x0011), data))
	data[0] = 0xFF

	mem, err := b.Build()
	assert.NoError(t, err)
	assert.Equal(t, uint8(1), mem.ReadU8(0x0010))
}

func TestBuilderErrors(t *testing.T) {
	tests := []struct {
		name     string
		add      func(b *Builder) error
		expected error
	}{
		{
			name:     "data too short",
			add:      func(b *Builder) error { return b.AddData(NewRange(0x0000, 0x0002), []byte{1, 2}) },
			expected: ErrDataLength,
		},
		{
			name:     "data too long",
			add:      func(b *Builder) error { return b.AddData(NewRange(0x0000, 0x0000), []byte{1, 2}) },
			expected: ErrDataLength,
		},
		{
			name:     "data range reversed",
			add:      func(b *Builder) error { return b.AddData(NewRange(0x0010, 0x0000), nil) },
			expected: ErrRangeBounds,
		},
		{
			name:     "mirror overlap at start",
			add:      func(b *Builder) error { return b.AddMirror(NewRange(0x0000, 0x0FFF), NewRange(0x0800, 0x17FF)) },
			expected: ErrMirrorOverlap,
		},
		{
			name:     "mirror destination encloses source",
			add:      func(b *Builder) error { return b.AddMirror(NewRange(0x0100, 0x01FF), NewRange(0x0000, 0x0FFF)) },
			expected: ErrMirrorOverlap,
		},
		{
			name:     "mirror identical ranges",
			add:      func(b *Builder) error { return b.AddMirror(NewRange(0x0000, 0x00FF), NewRange(0x0000, 0x00FF)) },
			expected: ErrMirrorOverlap,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.add(NewBuilder())
			var configErr *ConfigError
			assert.True(t, errors.As(err, &configErr))
			assert.True(t, errors.Is(err, tt.expected))
		})
	}
}

func TestBuilderIsConsumed(t *testing.T) {
	b := NewBuilder()
	_, err := b.Build()
	assert.NoError(t, err)

	_, err = b.Build()
	assert.True(t, errors.Is(err, ErrBuilderConsumed))
	assert.True(t, errors.Is(b.AddData(NewRange(0, 0), []byte{0}), ErrBuilderConsumed))
	assert.True(t, errors.Is(b.AddMirror(NewRange(0, 0), NewRange(1, 1)), ErrBuilderConsumed))
}

func TestSegmentsSorted(t *testing.T) {
	mem := buildMemory(t, func(b *Builder) {
		b.AddReadonly(NewRange(0x8000, 0xFFFF))
		assert.NoError(t, b.AddMirror(NewRange(0x0000, 0x07FF), NewRange(0x0800, 0x0FFF)))
		b.AddReadonly(NewRange(0x0000, 0x00FF))
	})

	segments := mem.Segments()
	assert.Len(t, segments, 3)
	assert.Equal(t, NewRange(0x0000, 0x00FF), segments[0].Range)
	assert.Equal(t, ReadonlySegment, segments[0].Kind)
	assert.Equal(t, NewRange(0x0000, 0x07FF), segments[1].Range)
	assert.Equal(t, MirrorSegment, segments[1].Kind)
	assert.Equal(t, NewRange(0x8000, 0xFFFF), segments[2].Range)
}

func TestIndependentInstances(t *testing.T) {
	first := buildMemory(t, func(b *Builder) {})
	second := buildMemory(t, func(b *Builder) {
		b.AddReadonly(NewRange(0x0000, 0xFFFF))
	})

	assert.NoError(t, first.WriteU8(0x0200, 1))
	assert.Error(t, second.WriteU8(0x0200, 1))
	assert.Equal(t, uint8(0), second.ReadU8(0x0200))
}

func TestReadU16Wraps(t *testing.T) {
	mem := buildMemory(t, func(b *Builder) {
		assert.NoError(t, b.AddData(NewRange(0xFFFF, 0xFFFF), []byte{0x34}))
		assert.NoError(t, b.AddData(NewRange(0x0000, 0x0000), []byte{0x12}))
	})
	assert.Equal(t, uint16(0x1234), mem.ReadU16(0xFFFF))
}

func TestRange(t *testing.T) {
	r := NewRange(0x8000, 0xBFFF)
	assert.Equal(t, 0x4000, r.Len())
	assert.True(t, r.Contains(0x8000))
	assert.True(t, r.Contains(0xBFFF))
	assert.False(t, r.Contains(0xC000))
	assert.Equal(t, AddressSpaceSize, NewRange(0x0000, 0xFFFF).Len())
	assert.False(t, r.Overlaps(NewRange(0xC000, 0xFFFF)))
	assert.True(t, r.Overlaps(NewRange(0xBFFF, 0xFFFF)))
	assert.Equal(t, "$8000-$bfff", r.String())
}

func TestBuildInitializesMirrorDestination(t *testing.T) {
	mem := buildMemory(t, func(b *Builder) {
		assert.NoError(t, b.AddData(NewRange(0x8000, 0x8001), []byte{0xEA, 0x60}))
		assert.NoError(t, b.AddMirror(NewRange(0x8000, 0xBFFF), NewRange(0xC000, 0xFFFF)))
	})

	assert.Equal(t, uint8(0xEA), mem.ReadU8(0xC000))
	assert.Equal(t, uint8(0x60), mem.ReadU8(0xC001))
}

func TestReadRange(t *testing.T) {
	b := NewBuilder()
	assert.NoError(t, b.AddData(NewRange(0x1000, 0x1003), []byte{1, 2, 3, 4}))
	mem, err := b.Build()
	assert.NoError(t, err)

	data := mem.ReadRange(NewRange(0x1001, 0x1002))
	assert.True(t, bytes.Equal([]byte{2, 3}, data))

	// the returned slice is a copy
	data[0] = 0xFF
	assert.Equal(t, uint8(2), mem.ReadU8(0x1001))

	assert.True(t, mem.ReadRange(NewRange(0x1002, 0x1001)) == nil)
	assert.Len(t, mem.ReadRange(NewRange(0x0000, 0xFFFF)), AddressSpaceSize)
}
