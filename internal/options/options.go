// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Input  string `flag:"i" usage:"input ROM file"`
	Output string `flag:"o" usage:"output .lst file (default: stdout)"`
	Batch  string `flag:"batch" usage:"batch process files matching pattern (e.g. *.nes)"`
}

// Flags contains behavior options.
type Flags struct {
	Binary       bool   `flag:"binary" usage:"treat input as raw binary without header"`
	Origin       string `flag:"origin" usage:"address of the first byte of raw input" default:"0"`
	Map          bool   `flag:"map" usage:"map the cartridge and disassemble from the reset vector"`
	Dump         bool   `flag:"dump" usage:"hex dump the mapped program window instead of a listing"`
	AssembleTest bool   `flag:"verify" usage:"verify output by re-encoding and comparing to input"`
	Debug        bool   `flag:"debug" usage:"enable debug logging"`
	Quiet        bool   `flag:"q" usage:"quiet mode"`
}

// OutputFlags contains output formatting options.
type OutputFlags struct {
	NoAddresses bool `flag:"noaddresses" usage:"omit the address column"`
	HexBytes    bool `flag:"hexbytes" usage:"append the instruction bytes as comment"`
}

// Program options of the disassembler.
type Program struct {
	Parameters
	Flags
	OutputFlags
}

// Disassembler defines options to control the disassembler.
type Disassembler struct {
	Origin uint16 // address of the first decoded byte when not mapping

	Binary    bool // input has no iNES header
	Map       bool // map the image through its mapper and start at the reset vector
	Dump      bool // write a hex dump of the program window
	Verify    bool // re-encode the decoded instructions and compare them to the input
	Addresses bool
	HexBytes  bool
}

// NewDisassembler returns a new options instance with default options.
func NewDisassembler() Disassembler {
	return Disassembler{
		Addresses: true,
	}
}
