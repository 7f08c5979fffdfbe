// Package nand computes raw NAND memory maps. Units are erase blocks.
//
// Every board runs the same placement skeleton:
//
//	ipl -> bootloader -> bootloader_env -> dtb -> kernel -> fs
//
// Steps a board profile or the configuration does not ask for are skipped.
// The board supplies image paths, partition names and the fixed environment
// location through board.Profile.
package nand

import (
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/joshuapare/mmapgen/internal/geometry"
	"github.com/joshuapare/mmapgen/mmap/board"
	"github.com/joshuapare/mmapgen/mmap/printer"
	"github.com/joshuapare/mmapgen/pkg/bspconfig"
	"github.com/joshuapare/mmapgen/pkg/types"
)

// Grow margins added to the image sizes.
const (
	// KernelExtraBlocks is added to the kernel image size.
	KernelExtraBlocks = 3
	// FSExtraBlocks is added to the filesystem image size. With 128 KiB
	// blocks every 8 extra blocks add 1 MiB.
	FSExtraBlocks = 32
)

// Options configures a Map.
type Options struct {
	// BlockSize overrides the profile's erase block size (bytes). 0 keeps it.
	BlockSize uint64

	// PageSize overrides the profile's page size (bytes). 0 keeps it.
	PageSize uint64

	// Logger receives warnings and progress messages.
	// Default: discards everything.
	Logger *slog.Logger
}

// DefaultOptions returns Options that keep the profile geometry.
func DefaultOptions() Options {
	return Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// Map is the NAND memory map of one board. It implements types.MemoryMap.
type Map struct {
	cfg       bspconfig.Source
	profile   board.Profile
	devdir    string
	blockSize uint64
	pageSize  uint64
	log       *slog.Logger

	parts     []types.Partition
	generated bool
}

var _ types.MemoryMap = (*Map)(nil)

// New returns an empty map. Image paths in profile are resolved against devdir.
func New(cfg bspconfig.Source, profile board.Profile, devdir string, opts Options) *Map {
	log := opts.Logger
	if log == nil {
		log = DefaultOptions().Logger
	}
	m := &Map{
		cfg:       cfg,
		profile:   profile,
		devdir:    devdir,
		blockSize: firstNonZero(opts.BlockSize, profile.BlockSize, geometry.NANDBlockSize),
		pageSize:  firstNonZero(opts.PageSize, profile.PageSize, geometry.NANDPageSize),
	}
	m.log = log.With("map", "nand", "board", profile.Board.String())
	return m
}

func firstNonZero(vals ...uint64) uint64 {
	for _, v := range vals {
		if v != 0 {
			return v
		}
	}
	return 0
}

// BlockSize returns the erase block size in bytes.
func (m *Map) BlockSize() uint64 { return m.blockSize }

// PageSize returns the page size in bytes.
func (m *Map) PageSize() uint64 { return m.pageSize }

// GenerateMmap runs the placement steps. Every image a step needs is checked
// before anything is placed.
func (m *Map) GenerateMmap() error {
	if m.generated {
		return types.ErrAlreadyGenerated
	}

	pl := m.planner()
	if err := pl.checkImages(); err != nil {
		return err
	}
	parts, err := pl.run()
	if err != nil {
		return err
	}
	if err := types.CheckLayout(parts); err != nil {
		return err
	}
	for _, p := range parts {
		m.log.Debug("placed partition", "name", p.Name, "start_blk", p.Start, "size_blks", p.Size.String())
	}
	m.parts = parts
	m.generated = true
	return nil
}

// GenerateInfo returns the flash geometry and the mtdparts descriptor.
func (m *Map) GenerateInfo() types.Info {
	return types.Info{
		Unit:     types.UnitBlock,
		UnitSize: m.blockSize,
		PageSize: m.pageSize,
		Mtdparts: m.mtdparts(),
	}
}

// Partitions returns a copy of the partitions in physical order.
func (m *Map) Partitions() []types.Partition {
	return slices.Clone(m.parts)
}

// Draw writes the table with its heading and notes to w.
func (m *Map) Draw(w io.Writer) error {
	return printer.New(w, printer.DefaultOptions()).PrintNAND(m.parts, m.GenerateInfo())
}

// DrawString returns just the table.
func (m *Map) DrawString() string {
	var sb strings.Builder
	opts := printer.DefaultOptions()
	opts.Notes = false
	_ = printer.New(&sb, opts).PrintNAND(m.parts, m.GenerateInfo())
	return strings.TrimSuffix(sb.String(), "\n")
}

// Read is not offered for NAND maps; the installer only consumes them.
func (m *Map) Read(string) error {
	return types.ErrReadUnsupported
}
