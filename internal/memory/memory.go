// Package memory implements the segmented 64KB address space with data,
// mirror and read-only segments.
package memory

import "slices"

// Memory is a 64KB address space. All writes go through WriteU8 and WriteU16
// which enforce read-only segments and keep mirror segments in sync.
// Memory is not safe for concurrent use.
type Memory struct {
	data     [AddressSpaceSize]byte
	segments []Segment
}

// ReadU8 returns the byte at the address.
func (m *Memory) ReadU8(address uint16) uint8 {
	return m.data[address]
}

// ReadU16 returns the little endian word at the address. The high byte is
// read from the next address, wrapping at the end of the address space.
func (m *Memory) ReadU16(address uint16) uint16 {
	low := m.data[address]
	high := m.data[address+1]
	return uint16(high)<<8 | uint16(low)
}

// ReadRange returns a copy of the bytes in the range.
func (m *Memory) ReadRange(rng Range) []byte {
	if !rng.Valid() {
		return nil
	}
	return slices.Clone(m.data[rng.Start : int(rng.End)+1])
}

// WriteU8 writes a byte to the address.
func (m *Memory) WriteU8(address uint16, value uint8) error {
	if err := m.checkWritable(address); err != nil {
		return err
	}

	m.data[address] = value
	m.sync(address)
	return nil
}

// WriteU16 writes a little endian word to the address. Either both bytes are
// written or none.
func (m *Memory) WriteU16(address uint16, value uint16) error {
	high := address + 1
	if err := m.checkWritable(address); err != nil {
		return err
	}
	if err := m.checkWritable(high); err != nil {
		return err
	}

	m.data[address] = uint8(value)
	m.data[high] = uint8(value >> 8)
	m.sync(address)
	m.sync(high)
	return nil
}

// Segments returns the runtime segments sorted by start and end address.
func (m *Memory) Segments() []Segment {
	return slices.Clone(m.segments)
}

func (m *Memory) checkWritable(address uint16) error {
	for _, seg := range m.segments {
		if seg.Kind == ReadonlySegment && seg.Range.Contains(address) {
			return &ReadOnlyViolation{Address: address}
		}
	}
	return nil
}

// sync copies the byte at a written address to the other half of every
// mirror that contains it.
func (m *Memory) sync(address uint16) {
	for _, seg := range m.segments {
		if seg.Kind != MirrorSegment {
			continue
		}

		switch {
		case seg.Range.Contains(address):
			m.syncByte(address, seg.Range, seg.Dest)
		case seg.Dest.Contains(address):
			m.syncByte(address, seg.Dest, seg.Range)
		}
	}
}

// mirror copies the complete source range to the destination range.
func (m *Memory) mirror(from, to Range) {
	n := min(from.Len(), to.Len())
	copy(m.data[to.Start:int(to.Start)+n], m.data[from.Start:int(from.Start)+n])
}

func (m *Memory) syncByte(address uint16, from, to Range) {
	offset := int(address - from.Start)
	if offset >= to.Len() {
		return
	}
	m.data[int(to.Start)+offset] = m.data[address]
}
