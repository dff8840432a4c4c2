// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/retroenv/nestle/internal/options"
)

var (
	errMapBinary  = errors.New("-map can not be used with -binary input, raw data has no mapper")
	errDumpBinary = errors.New("-dump requires iNES input and can not be used with -binary")
)

// ParseFlags parses command line flags and returns program and disassembler options
func ParseFlags() (options.Program, options.Disassembler, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Batch == "" && opts.Input == "") {
		return opts, options.Disassembler{}, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, options.Disassembler{}, err
	}

	if opts.Batch == "" && len(args) > 0 {
		opts.Input = args[0]
	}

	disasmOptions, err := createDisasmOptions(opts)
	if err != nil {
		return opts, options.Disassembler{}, err
	}

	if err := validateOptionCombinations(opts, disasmOptions); err != nil {
		return opts, options.Disassembler{}, &UsageError{flags: flags, msg: err.Error()}
	}

	return opts, disasmOptions, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the error message if set, followed by all flag defaults.
func (e *UsageError) ShowUsage() {
	if e.msg != "" {
		fmt.Printf("%s\n\n", e.msg)
	}
	fmt.Printf("usage: nestle [options] <file to disassemble>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after file to disassemble, please pass the file to disassemble as last argument", arg),
			}
		}
	}
	return nil
}

// parseOrigin parses an address in decimal, $hex or 0x hex notation.
func parseOrigin(s string) (uint16, error) {
	s = strings.TrimSpace(s)
	if rest, ok := strings.CutPrefix(s, "$"); ok {
		s = "0x" + rest
	}
	value, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid origin address '%s': %w", s, err)
	}
	return uint16(value), nil
}

// createDisasmOptions creates disassembler options based on program options
func createDisasmOptions(opts options.Program) (options.Disassembler, error) {
	disasmOptions := options.NewDisassembler()

	if opts.Origin != "" {
		origin, err := parseOrigin(opts.Origin)
		if err != nil {
			return options.Disassembler{}, err
		}
		disasmOptions.Origin = origin
	}

	disasmOptions.Binary = opts.Binary
	disasmOptions.Map = opts.Map || opts.Dump
	disasmOptions.Dump = opts.Dump
	disasmOptions.Verify = opts.AssembleTest
	disasmOptions.Addresses = !opts.NoAddresses
	disasmOptions.HexBytes = opts.HexBytes
	return disasmOptions, nil
}

// validateOptionCombinations returns an error for options that exclude each other.
func validateOptionCombinations(opts options.Program, disasmOpts options.Disassembler) error {
	if !opts.Binary {
		return nil
	}
	if opts.Dump || disasmOpts.Dump {
		return errDumpBinary
	}
	if opts.Map || disasmOpts.Map {
		return errMapBinary
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input ROM file")
	flags.StringVar(&opts.Output, "o", "", "name of the output .lst file, printed on console if no name given")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of given path and file mask and automatically .lst file naming, for example *.nes")
	flags.StringVar(&opts.Origin, "origin", "0", "address of the first byte when not mapping the cartridge, for example $8000")
	flags.BoolVar(&opts.Binary, "binary", false, "read input file as raw binary file without any header")
	flags.BoolVar(&opts.Map, "map", false, "map the cartridge through its mapper and disassemble from the reset vector")
	flags.BoolVar(&opts.Dump, "dump", false, "output a hex dump of the mapped program window instead of a listing")
	flags.BoolVar(&opts.AssembleTest, "verify", false, "verify the decoded instructions by re-encoding them and comparing to the input")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.BoolVar(&opts.NoAddresses, "noaddresses", false, "do not output the address of every instruction")
	flags.BoolVar(&opts.HexBytes, "hexbytes", false, "output the instruction bytes as hex values in comments")
}
