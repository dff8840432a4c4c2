package memory

import "fmt"

// SegmentKind is the runtime policy of a segment.
type SegmentKind uint8

// Segment kinds that are kept after the memory is built. Data segments are
// only used during construction.
const (
	MirrorSegment SegmentKind = iota + 1
	ReadonlySegment
)

func (k SegmentKind) String() string {
	switch k {
	case MirrorSegment:
		return "mirror"
	case ReadonlySegment:
		return "readonly"
	default:
		return "unknown"
	}
}

// Segment is a runtime policy region of the address space. For mirrors,
// Range is the source and Dest the mirrored range.
type Segment struct {
	Kind  SegmentKind
	Range Range
	Dest  Range
}

func (s Segment) String() string {
	if s.Kind == MirrorSegment {
		return fmt.Sprintf("%s %s <-> %s", s.Kind, s.Range, s.Dest)
	}
	return fmt.Sprintf("%s %s", s.Kind, s.Range)
}

// compare orders segments by start and end address.
func (s Segment) compare(other Segment) int {
	switch {
	case s.Range.Start != other.Range.Start:
		return int(s.Range.Start) - int(other.Range.Start)
	default:
		return int(s.Range.End) - int(other.Range.End)
	}
}

type dataSegment struct {
	rng  Range
	data []byte
}
