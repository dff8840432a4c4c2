package memory

import (
	"errors"
	"fmt"
)

var (
	// ErrMirrorOverlap is returned when the source and destination of a mirror overlap.
	ErrMirrorOverlap = errors.New("mirror ranges overlap")
	// ErrDataLength is returned when a data buffer does not match the length of its range.
	ErrDataLength = errors.New("data length does not match range length")
	// ErrRangeBounds is returned for a range whose start is behind its end.
	ErrRangeBounds = errors.New("range start is behind range end")
	// ErrBuilderConsumed is returned when a builder is used after Build.
	ErrBuilderConsumed = errors.New("builder already built")
)

// ConfigError is returned by the Builder for an inconsistent memory layout.
type ConfigError struct {
	Op  string // builder operation that failed
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("memory config %s: %s", e.Op, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ReadOnlyViolation is returned by a write to a read-only address.
type ReadOnlyViolation struct {
	Address uint16
}

func (e *ReadOnlyViolation) Error() string {
	return fmt.Sprintf("write to read-only address $%04x", e.Address)
}
