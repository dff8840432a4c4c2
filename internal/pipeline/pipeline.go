// Package pipeline orchestrates the disassembly workflow stages.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/retroenv/nestle/internal/arch/m6502"
	"github.com/retroenv/nestle/internal/cpu"
	"github.com/retroenv/nestle/internal/detector"
	"github.com/retroenv/nestle/internal/ines"
	"github.com/retroenv/nestle/internal/loader"
	"github.com/retroenv/nestle/internal/mapper"
	"github.com/retroenv/nestle/internal/memory"
	"github.com/retroenv/nestle/internal/options"
	"github.com/retroenv/nestle/internal/verification"
	"github.com/retroenv/nestle/internal/writer"
	"github.com/retroenv/retrogolib/log"
)

var errResetOutsideProgram = errors.New("reset vector points outside of the program window")

// Result describes a finished disassembly run.
type Result struct {
	Mapper       string // name of the mapping policy, empty when not mapping
	Origin       uint16 // address of the first decoded byte
	Instructions int    // number of written instructions
	Stop         error  // reason the decode ended, a *m6502.StopError
}

// Pipeline orchestrates the complete disassembly workflow.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
}

// New creates a new disassembly pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
	}
}

// Execute runs the complete disassembly pipeline.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, disasmOpts options.Disassembler, out io.Writer) (*Result, error) {
	format := p.detector.Detect(opts)

	img, err := p.loader.Load(opts, format)
	if err != nil {
		return nil, fmt.Errorf("loading image: %w", err)
	}

	return p.ExecuteWithImage(ctx, img, format, opts, disasmOpts, out)
}

// ExecuteWithImage runs the disassembly pipeline with a pre-loaded image.
// This is useful for testing and programmatic usage where the image is already in memory.
func (p *Pipeline) ExecuteWithImage(ctx context.Context, img *ines.Image, format detector.Format,
	opts options.Program, disasmOpts options.Disassembler, out io.Writer) (*Result, error) {

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("disassembling: %w", err)
	}

	p.printInfo(opts, img, format)

	result := &Result{
		Origin: disasmOpts.Origin,
	}
	code := img.PRG

	if disasmOpts.Map {
		if format == detector.Binary {
			return nil, errors.New("raw binary input can not be mapped")
		}

		m, mem, err := p.mapImage(img)
		if err != nil {
			return nil, err
		}
		result.Mapper = m.Name()

		w := writer.New(out, writer.Options{})
		if disasmOpts.Dump {
			if err := w.WriteHexDump(mapper.ProgramWindow.Start, mem.ReadRange(mapper.ProgramWindow)); err != nil {
				return nil, fmt.Errorf("writing hex dump: %w", err)
			}
			return result, nil
		}

		regs := cpu.PowerOn(mem)
		p.logger.Debug("Power on", log.Stringer("registers", regs))

		if !mapper.ProgramWindow.Contains(regs.PC) || regs.PC >= m6502.VectorsStart {
			return nil, fmt.Errorf("%w: $%04x", errResetOutsideProgram, regs.PC)
		}
		result.Origin = regs.PC
		code = mem.ReadRange(memory.NewRange(regs.PC, m6502.VectorsStart-1))
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("disassembling: %w", err)
	}

	if err := p.writeListing(img, opts, disasmOpts, result, code, out); err != nil {
		return nil, err
	}

	if disasmOpts.Verify {
		if err := p.verify(img, format, code); err != nil {
			return nil, fmt.Errorf("verification failed: %w", err)
		}
		p.logger.Info("Verification successful")
	}

	return result, nil
}

// mapImage maps the image through the mapping policy of its mapper number.
func (p *Pipeline) mapImage(img *ines.Image) (mapper.Mapper, *memory.Memory, error) {
	m, err := mapper.ForImage(img)
	if err != nil {
		return nil, nil, fmt.Errorf("selecting mapper: %w", err)
	}

	mem, err := m.MapImage(img)
	if err != nil {
		return nil, nil, fmt.Errorf("mapping image: %w", err)
	}

	for _, seg := range mem.Segments() {
		p.logger.Debug("Memory segment", log.Stringer("segment", seg))
	}
	return m, mem, nil
}

func (p *Pipeline) writeListing(img *ines.Image, opts options.Program, disasmOpts options.Disassembler,
	result *Result, code []byte, out io.Writer) error {

	w := writer.New(out, writer.Options{
		Addresses: disasmOpts.Addresses,
		HexBytes:  disasmOpts.HexBytes,
	})

	header := writer.Header{
		File:   opts.Input,
		Mapper: result.Mapper,
		Origin: result.Origin,
		PRG:    img.PRG,
		CHR:    img.CHR,
	}
	if err := w.WriteCommentHeader(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	dec := m6502.NewDecoder(code)
	count, err := w.WriteListing(m6502.Listing(dec.All(), result.Origin))
	result.Instructions = count
	if err != nil {
		return fmt.Errorf("writing listing: %w", err)
	}

	result.Stop = dec.Err()
	p.logStop(result)
	return nil
}

// logStop logs why decoding ended, naming unofficial opcodes.
func (p *Pipeline) logStop(result *Result) {
	var stop *m6502.StopError
	if !errors.As(result.Stop, &stop) {
		return
	}

	address := result.Origin + uint16(stop.Offset)
	if stop.Reason == m6502.EndOfData {
		p.logger.Debug("Decoding stopped",
			log.Stringer("reason", stop.Reason),
			log.Hex("address", address),
			log.Int("instructions", result.Instructions))
		return
	}

	name, unofficial := m6502.UnofficialName(stop.Opcode)
	if stop.Reason == m6502.UnmappedOpcode && unofficial {
		p.logger.Debug("Decoding stopped at unofficial opcode",
			log.String("name", name),
			log.Hex("opcode", stop.Opcode),
			log.Hex("address", address),
			log.Int("instructions", result.Instructions))
		return
	}

	p.logger.Debug("Decoding stopped",
		log.Stringer("reason", stop.Reason),
		log.Hex("opcode", stop.Opcode),
		log.Hex("address", address),
		log.Int("instructions", result.Instructions))
}

func (p *Pipeline) verify(img *ines.Image, format detector.Format, code []byte) error {
	if err := verification.VerifyInstructions(p.logger, code, m6502.DecodeAll(code)); err != nil {
		return err
	}
	if format == detector.INES {
		if err := verification.VerifyImage(p.logger, img); err != nil {
			return err
		}
	}
	return nil
}

// printInfo prints information about the image being processed.
func (p *Pipeline) printInfo(opts options.Program, img *ines.Image, format detector.Format) {
	if opts.Quiet {
		return
	}

	switch format {
	case detector.INES:
		p.logger.Info("Processing NES ROM",
			log.String("file", opts.Input),
			log.Uint8("mapper", img.Header.MapperNumber()),
			log.Int("prg", len(img.PRG)),
			log.Int("chr", len(img.CHR)),
		)
		if img.Header.HasTrainer() {
			p.logger.Warn("Image contains a trainer, it is not mapped")
		}

	case detector.Binary:
		p.logger.Info("Processing binary file",
			log.String("file", opts.Input),
			log.Int("size", len(img.PRG)),
		)
	}
}
