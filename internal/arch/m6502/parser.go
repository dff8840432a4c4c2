package m6502

import (
	"errors"
	"fmt"
	"iter"
)

// ErrDecodeExhausted signals that decoding ends at the current position.
// It is a normal terminator of a decode and not a failure.
var ErrDecodeExhausted = errors.New("decode exhausted")

// StopReason describes why a decode ended.
type StopReason uint8

// Reasons for a decode to end.
const (
	EndOfData StopReason = iota
	UnmappedOpcode
	TruncatedOperand
)

func (r StopReason) String() string {
	switch r {
	case EndOfData:
		return "end of data"
	case UnmappedOpcode:
		return "unmapped opcode"
	case TruncatedOperand:
		return "truncated operand"
	default:
		return "unknown"
	}
}

// StopError is returned by the decoder at the position where decoding ends.
type StopError struct {
	Offset int        // offset in the buffer of the byte that was not consumed
	Opcode byte       // byte at Offset, zero for EndOfData
	Reason StopReason // why the decode ended
}

func (e *StopError) Error() string {
	if e.Reason == EndOfData {
		return fmt.Sprintf("%s at offset %d: %s", ErrDecodeExhausted, e.Offset, e.Reason)
	}
	return fmt.Sprintf("%s at offset %d: %s $%02x", ErrDecodeExhausted, e.Offset, e.Reason, e.Opcode)
}

// Is reports every StopError as ErrDecodeExhausted.
func (e *StopError) Is(target error) bool {
	return target == ErrDecodeExhausted
}

// Decoder decodes instructions from a byte buffer. It keeps a cursor that only
// moves forward, a consumed sequence can not be restarted. Create a new
// Decoder to decode the same buffer again.
type Decoder struct {
	data   []byte
	offset int
	err    error
}

// NewDecoder returns a decoder positioned at the start of data.
func NewDecoder(data []byte) *Decoder {
	return &Decoder{
		data: data,
	}
}

// Offset returns the position of the next unconsumed byte.
func (d *Decoder) Offset() int {
	return d.offset
}

// Err returns the reason the last sequence returned by All ended, or nil if
// it has not ended yet.
func (d *Decoder) Err() error {
	return d.err
}

// Decode decodes the instruction at the cursor. If the byte at the cursor is
// not a legal opcode or not enough bytes remain for its operand, a *StopError
// matching ErrDecodeExhausted is returned and the cursor does not move.
func (d *Decoder) Decode() (Instruction, error) {
	if d.offset >= len(d.data) {
		return Instruction{}, &StopError{Offset: d.offset, Reason: EndOfData}
	}

	b := d.data[d.offset]
	opcode, ok := Lookup(b)
	if !ok {
		return Instruction{}, &StopError{Offset: d.offset, Opcode: b, Reason: UnmappedOpcode}
	}

	size := opcode.Mode.Size()
	if d.offset+size > len(d.data) {
		return Instruction{}, &StopError{Offset: d.offset, Opcode: b, Reason: TruncatedOperand}
	}

	operand := d.data[d.offset+1 : d.offset+size]
	d.offset += size

	return Instruction{
		Opcode:     b,
		Mnemonic:   opcode.Mnemonic,
		Addressing: readOpParam(opcode.Mode, operand),
	}, nil
}

// All returns a lazy sequence that decodes instructions until decoding is
// exhausted. The reason for the end is available from Err afterwards.
func (d *Decoder) All() iter.Seq[Instruction] {
	return func(yield func(Instruction) bool) {
		for {
			ins, err := d.Decode()
			if err != nil {
				d.err = err
				return
			}
			if !yield(ins) {
				return
			}
		}
	}
}

// DecodeAll returns a lazy sequence of all instructions decodable from the
// start of data.
func DecodeAll(data []byte) iter.Seq[Instruction] {
	return NewDecoder(data).All()
}
