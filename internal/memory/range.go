package memory

import "fmt"

// AddressSpaceSize is the size of the 6502 address space in bytes.
const AddressSpaceSize = 0x10000

// Range is an inclusive address range.
type Range struct {
	Start uint16
	End   uint16
}

// NewRange returns the inclusive range from start to end.
func NewRange(start, end uint16) Range {
	return Range{Start: start, End: end}
}

// Len returns the number of addresses in the range.
func (r Range) Len() int {
	if r.End < r.Start {
		return 0
	}
	return int(r.End) - int(r.Start) + 1
}

// Valid returns whether the range contains at least one address.
func (r Range) Valid() bool {
	return r.Start <= r.End
}

// Contains returns whether the address is inside the range.
func (r Range) Contains(address uint16) bool {
	return address >= r.Start && address <= r.End
}

// Overlaps returns whether both ranges share at least one address.
func (r Range) Overlaps(other Range) bool {
	if !r.Valid() || !other.Valid() {
		return false
	}
	return r.Start <= other.End && other.Start <= r.End
}

func (r Range) String() string {
	return fmt.Sprintf("$%04x-$%04x", r.Start, r.End)
}
