// Package loader handles image file loading operations.
package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/retroenv/nestle/internal/detector"
	"github.com/retroenv/nestle/internal/ines"
	"github.com/retroenv/nestle/internal/options"
)

// Loader handles loading image files from disk.
type Loader struct{}

// New creates a new image loader.
func New() *Loader {
	return &Loader{}
}

// Load loads and parses an input file in the given format.
// Raw binary files are returned as image with an empty header and the whole
// file content as program data.
func (l *Loader) Load(opts options.Program, format detector.Format) (*ines.Image, error) {
	file, err := os.Open(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", opts.Input, err)
	}
	defer func() { _ = file.Close() }()

	img, err := l.load(file, format)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", opts.Input, err)
	}
	return img, nil
}

// LoadFromBytes parses image data from a buffer.
func (l *Loader) LoadFromBytes(data []byte, format detector.Format) (*ines.Image, error) {
	if format == detector.Binary {
		return binaryImage(data), nil
	}
	img, err := ines.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("parsing image: %w", err)
	}
	return img, nil
}

func (l *Loader) load(r io.Reader, format detector.Format) (*ines.Image, error) {
	if format != detector.Binary {
		img, err := ines.Parse(r)
		if err != nil {
			return nil, fmt.Errorf("parsing image: %w", err)
		}
		return img, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading binary: %w", err)
	}
	return binaryImage(data), nil
}

func binaryImage(data []byte) *ines.Image {
	return &ines.Image{
		PRG: data,
	}
}
