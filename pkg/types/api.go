package types

import "io"

// MemoryMap computes, renders and persists the partition layout of one
// installation target.
//
// Callers drive it through a fixed lifecycle:
//
//	if err := m.ValidateConfig(); err != nil { ... }
//	if err := m.GenerateMmap(); err != nil { ... }
//	info := m.GenerateInfo()
//	m.Draw(os.Stdout)
//	if err := m.Save(path); err != nil { ... }
//
// A map is populated once. Calling GenerateMmap again returns
// ErrAlreadyGenerated instead of appending a second copy of the layout.
type MemoryMap interface {
	// ValidateConfig checks that every mandatory option is present and that
	// numeric options parse. Missing recommended options are only logged.
	ValidateConfig() error

	// GenerateMmap builds the partition sequence.
	GenerateMmap() error

	// GenerateInfo derives the summary data persisted alongside the partitions.
	GenerateInfo() Info

	// Partitions returns a copy of the partition sequence in physical order.
	Partitions() []Partition

	// Draw writes a human readable table of the partitions to w.
	Draw(w io.Writer) error

	// DrawString returns the partition table without headings or notes.
	DrawString() string

	// Save writes the partitions to path.
	Save(path string) error

	// Read replaces the partitions with the ones stored at path.
	Read(path string) error
}

// Device units reported in Info.Unit.
const (
	UnitCylinder = "cylinder"
	UnitBlock    = "block"
)

// Info is the derived summary of a generated memory map.
type Info struct {
	Unit     string `json:"unit"`                // UnitCylinder or UnitBlock
	UnitSize uint64 `json:"unit_size"`           // bytes per unit
	PageSize uint64 `json:"page_size,omitempty"` // NAND page size in bytes
	Mtdparts string `json:"mtdparts,omitempty"`  // kernel command line layout descriptor
}
