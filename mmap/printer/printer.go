// Package printer renders memory maps as bordered tables or JSON.
package printer

import (
	"io"

	"github.com/joshuapare/mmapgen/pkg/types"
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs a human-readable table.
	FormatText Format = "text"

	// FormatJSON outputs the partitions and info as a JSON document.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// Notes prints the heading above the table and the unit size and
	// remainder legend below it (text format only).
	// Default: true
	Notes bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format: FormatText,
		Notes:  true,
	}
}

// Printer writes memory maps in a human or machine readable form.
type Printer struct {
	opts   Options
	writer io.Writer
}

// New creates a new Printer writing to w.
//
// Example:
//
//	p := printer.New(os.Stdout, printer.DefaultOptions())
//	p.Print(m.Partitions(), m.GenerateInfo())
func New(w io.Writer, opts Options) *Printer {
	return &Printer{
		writer: w,
		opts:   opts,
	}
}

// Print writes parts using the layout that matches info.Unit: the NAND
// layout for blocks, the SD layout otherwise.
func (p *Printer) Print(parts []types.Partition, info types.Info) error {
	if info.Unit == types.UnitBlock {
		return p.PrintNAND(parts, info)
	}
	return p.PrintSD(parts, info)
}

// PrintSD writes an SD card memory map.
func (p *Printer) PrintSD(parts []types.Partition, info types.Info) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printJSON(deviceSD, parts, info)
	case FormatText:
		return p.printSDText(parts)
	default:
		return p.printSDText(parts)
	}
}

// PrintNAND writes a NAND memory map. info.UnitSize is the block size.
func (p *Printer) PrintNAND(parts []types.Partition, info types.Info) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printJSON(deviceNAND, parts, info)
	case FormatText:
		return p.printNANDText(parts, info.UnitSize)
	default:
		return p.printNANDText(parts, info.UnitSize)
	}
}
