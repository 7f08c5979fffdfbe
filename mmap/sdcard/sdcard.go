// Package sdcard computes SD card memory maps. Units are cylinders of
// 255 heads * 63 sectors * 512 bytes.
//
// Three variants share one placement vocabulary:
//
//	Plain              boot partition, optional rootfs next to it
//	FilesystemOnly     a single rootfs taking the whole card
//	ExternalInstaller  a single bootable partition for an installer script
package sdcard

import (
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/joshuapare/mmapgen/internal/geometry"
	"github.com/joshuapare/mmapgen/mmap/printer"
	"github.com/joshuapare/mmapgen/pkg/bspconfig"
	"github.com/joshuapare/mmapgen/pkg/types"
)

// Variant selects which SD card layout is generated.
type Variant int

const (
	Plain Variant = iota
	FilesystemOnly
	ExternalInstaller
)

func (v Variant) String() string {
	switch v {
	case Plain:
		return "plain"
	case FilesystemOnly:
		return "filesystem-only"
	case ExternalInstaller:
		return "external-installer"
	default:
		return "unknown"
	}
}

// Options configures a Map.
type Options struct {
	// Logger receives warnings about missing recommended options and
	// progress messages. Default: discards everything.
	Logger *slog.Logger
}

// DefaultOptions returns Options with a discarding logger.
func DefaultOptions() Options {
	return Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// Map is the SD card memory map. It implements types.MemoryMap.
type Map struct {
	cfg       bspconfig.Source
	variant   Variant
	log       *slog.Logger
	parts     []types.Partition
	generated bool
}

var _ types.MemoryMap = (*Map)(nil)

// New returns an empty map reading its options from cfg.
func New(cfg bspconfig.Source, variant Variant, opts Options) *Map {
	log := opts.Logger
	if log == nil {
		log = DefaultOptions().Logger
	}
	return &Map{
		cfg:     cfg,
		variant: variant,
		log:     log.With("map", "sd", "variant", variant.String()),
	}
}

// Variant returns the layout variant of the map.
func (m *Map) Variant() Variant { return m.variant }

// GenerateMmap places the partitions of the map's variant.
func (m *Map) GenerateMmap() error {
	if m.generated {
		return types.ErrAlreadyGenerated
	}

	var parts []types.Partition
	switch m.variant {
	case FilesystemOnly:
		parts = append(parts, placeFilesystemOnly(m.cfg))
	case ExternalInstaller:
		parts = append(parts, placeInstallerBoot(m.cfg))
	default:
		boot, err := placeBoot(m.cfg)
		if err != nil {
			return err
		}
		parts = append(parts, boot)
		if bspconfig.Enabled(m.cfg, bspconfig.OptFSTargetSD) {
			if boot.Size.IsFull() {
				m.log.Warn("boot partition takes the whole card, no room for rootfs",
					"option", bspconfig.OptUbootPartitionSize)
			} else {
				rootfs, err := placeRootfs(m.cfg, boot)
				if err != nil {
					return err
				}
				parts = append(parts, rootfs)
			}
		}
	}

	if err := types.CheckLayout(parts); err != nil {
		return err
	}
	for _, p := range parts {
		m.log.Debug("placed partition", "name", p.Name, "start", p.Start, "size", p.Size.String())
	}
	m.parts = parts
	m.generated = true
	return nil
}

// GenerateInfo returns the cylinder geometry. SD maps have no mtdparts.
func (m *Map) GenerateInfo() types.Info {
	return types.Info{Unit: types.UnitCylinder, UnitSize: geometry.CylinderSize}
}

// Partitions returns a copy of the partitions in physical order.
func (m *Map) Partitions() []types.Partition {
	return slices.Clone(m.parts)
}

// Draw writes the table with its heading and notes to w.
func (m *Map) Draw(w io.Writer) error {
	return printer.New(w, printer.DefaultOptions()).PrintSD(m.parts, m.GenerateInfo())
}

// DrawString returns just the table.
func (m *Map) DrawString() string {
	var sb strings.Builder
	opts := printer.DefaultOptions()
	opts.Notes = false
	_ = printer.New(&sb, opts).PrintSD(m.parts, m.GenerateInfo())
	return strings.TrimSuffix(sb.String(), "\n")
}
