// Package detector handles input format detection.
package detector

import (
	"path/filepath"
	"strings"

	"github.com/retroenv/nestle/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// Format of an input file.
type Format uint8

// Supported input formats.
const (
	INES   Format = iota // iNES image with 16 byte header
	Binary               // raw program data without header
)

func (f Format) String() string {
	switch f {
	case INES:
		return "ines"
	case Binary:
		return "binary"
	default:
		return "unknown"
	}
}

// Detector handles input format detection from file extensions and options.
type Detector struct {
	logger *log.Logger
}

// New creates a new format detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the input format from options or the file extension.
// The binary flag overrides the detection.
func (d *Detector) Detect(opts options.Program) Format {
	if opts.Binary {
		return Binary
	}

	format := d.detectFromFile(opts.Input)
	d.logger.Debug("Auto-detected input format",
		log.Stringer("format", format),
		log.String("file", opts.Input))
	return format
}

// detectFromFile determines the format based on file extension.
func (d *Detector) detectFromFile(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".bin", ".prg":
		return Binary
	default:
		// .nes files and unknown extensions are treated as iNES images
		return INES
	}
}
