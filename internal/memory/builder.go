package memory

import (
	"fmt"
	"slices"
)

// Builder collects the segments of a memory layout. A builder can only be
// built once, afterwards AddData, AddMirror and Build return
// ErrBuilderConsumed and AddReadonly has no effect.
type Builder struct {
	data     []dataSegment
	segments []Segment
	built    bool
}

// NewBuilder returns an empty memory layout builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddData places a copy of data at the given range. The length of data has to
// equal the length of the range. Overlapping data segments are written in the
// order they were added.
func (b *Builder) AddData(rng Range, data []byte) error {
	if b.built {
		return &ConfigError{Op: "add data", Err: ErrBuilderConsumed}
	}
	if !rng.Valid() {
		return &ConfigError{Op: "add data", Err: fmt.Errorf("%w: %s", ErrRangeBounds, rng)}
	}
	if len(data) != rng.Len() {
		return &ConfigError{
			Op:  "add data",
			Err: fmt.Errorf("%w: %d bytes for range %s of %d bytes", ErrDataLength, len(data), rng, rng.Len()),
		}
	}

	b.data = append(b.data, dataSegment{
		rng:  rng,
		data: slices.Clone(data),
	})
	return nil
}

// AddMirror keeps the src and dest ranges in sync on every write, in both
// directions. The ranges must not overlap.
func (b *Builder) AddMirror(src, dest Range) error {
	if b.built {
		return &ConfigError{Op: "add mirror", Err: ErrBuilderConsumed}
	}
	if !src.Valid() || !dest.Valid() {
		return &ConfigError{Op: "add mirror", Err: fmt.Errorf("%w: %s, %s", ErrRangeBounds, src, dest)}
	}
	if src.Overlaps(dest) {
		return &ConfigError{Op: "add mirror", Err: fmt.Errorf("%w: %s, %s", ErrMirrorOverlap, src, dest)}
	}

	b.segments = append(b.segments, Segment{
		Kind:  MirrorSegment,
		Range: src,
		Dest:  dest,
	})
	return nil
}

// AddReadonly rejects all runtime writes to the range.
func (b *Builder) AddReadonly(rng Range) {
	if b.built {
		return
	}
	b.segments = append(b.segments, Segment{
		Kind:  ReadonlySegment,
		Range: rng,
	})
}

// Build copies all data segments into the address space, initializes the
// destination of every mirror from its source and returns the memory.
// The builder is consumed by this call.
func (b *Builder) Build() (*Memory, error) {
	if b.built {
		return nil, &ConfigError{Op: "build", Err: ErrBuilderConsumed}
	}
	b.built = true

	mem := &Memory{
		segments: b.segments,
	}
	for _, seg := range b.data {
		copy(mem.data[seg.rng.Start:int(seg.rng.End)+1], seg.data)
	}

	for _, seg := range mem.segments {
		if seg.Kind == MirrorSegment {
			mem.mirror(seg.Range, seg.Dest)
		}
	}

	slices.SortStableFunc(mem.segments, Segment.compare)

	b.data = nil
	b.segments = nil
	return mem, nil
}
