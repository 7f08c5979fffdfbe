package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FullSentinel is the textual form of a size that takes the rest of the device.
const FullSentinel = "-"

// Size is a partition size in device units (cylinders or NAND blocks), or the
// "rest of device" remainder. The zero value is a concrete size of 0 units.
type Size struct {
	n    uint64
	full bool
}

// Full is the size that consumes all remaining device capacity.
var Full = Size{full: true}

// Units returns a concrete size of n device units.
func Units(n uint64) Size { return Size{n: n} }

// IsFull reports whether s is the remainder sentinel.
func (s Size) IsFull() bool { return s.full }

// Units returns the concrete unit count. It is 0 for Full.
func (s Size) Units() uint64 {
	if s.full {
		return 0
	}
	return s.n
}

// String returns "-" for Full and the decimal unit count otherwise.
func (s Size) String() string {
	if s.full {
		return FullSentinel
	}
	return strconv.FormatUint(s.n, 10)
}

// ParseSize parses the textual form produced by String.
func ParseSize(text string) (Size, error) {
	text = strings.TrimSpace(text)
	if text == FullSentinel {
		return Full, nil
	}
	n, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return Size{}, fmt.Errorf("invalid size %q", text)
	}
	return Units(n), nil
}

// MarshalJSON encodes Full as "-" and concrete sizes as numbers.
func (s Size) MarshalJSON() ([]byte, error) {
	if s.full {
		return json.Marshal(FullSentinel)
	}
	return json.Marshal(s.n)
}

// UnmarshalJSON accepts the forms written by MarshalJSON.
func (s *Size) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		parsed, err := ParseSize(text)
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	}
	var n uint64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid size %s", data)
	}
	*s = Units(n)
	return nil
}

// PartitionType is the partition table entry type, stored as its sfdisk id.
type PartitionType string

const (
	TypeUnknown     PartitionType = ""
	TypeFAT32LBA    PartitionType = "c"
	TypeLinuxNative PartitionType = "83"
)

// Name returns the human readable name of the partition type.
func (t PartitionType) Name() string {
	switch t {
	case TypeFAT32LBA:
		return "W95 FAT32 (LBA)"
	case TypeLinuxNative:
		return "Linux"
	case TypeUnknown:
		return "Unknown"
	default:
		return "Type 0x" + string(t)
	}
}

// Filesystem names the filesystem a partition should carry.
type Filesystem string

const (
	FilesystemUnknown       Filesystem = ""
	FilesystemVFAT          Filesystem = "vfat"
	FilesystemExt3          Filesystem = "ext3"
	FilesystemExt4          Filesystem = "ext4"
	FilesystemExt4NoJournal Filesystem = "ext4_writeback"
	FilesystemUBIFS         Filesystem = "ubifs"
	FilesystemJFFS2         Filesystem = "jffs2"
	FilesystemCramFS        Filesystem = "cramfs"
	FilesystemRomFS         Filesystem = "romfs"
	FilesystemNFS           Filesystem = "nfs"
	FilesystemSD            Filesystem = "sd"
	FilesystemInitrd        Filesystem = "initrd"
)

// IsExt reports whether f is one of the ext family filesystems.
func (f Filesystem) IsExt() bool {
	return f == FilesystemExt3 || f == FilesystemExt4 || f == FilesystemExt4NoJournal
}

// Component is a logical payload a partition hosts.
type Component string

const (
	ComponentBootloader Component = "bootloader"
	ComponentKernel     Component = "kernel"
	ComponentRootfs     Component = "rootfs"
)

// JoinComponents renders components as a comma separated list.
func JoinComponents(cs []Component) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = string(c)
	}
	return strings.Join(parts, ",")
}

// SplitComponents parses a comma separated component list. Blank items are dropped.
func SplitComponents(text string) []Component {
	var out []Component
	for _, item := range strings.Split(text, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		out = append(out, Component(item))
	}
	return out
}

// Role is the logical role of a partition. It names the persisted section.
type Role string

const (
	RoleBoot          Role = "boot"
	RoleRootfs        Role = "rootfs"
	RoleIPL           Role = "ipl"
	RoleBootloader    Role = "bootloader"
	RoleBootloaderEnv Role = "bootloader_env"
	RoleDTB           Role = "dtb"
	RoleKernel        Role = "kernel"
	RoleFS            Role = "fs"
)

// Partition describes one region of a target device. Start and Size are in
// device units: cylinders for SD cards, erase blocks for NAND.
type Partition struct {
	Name       string        `json:"name"`
	Role       Role          `json:"role"`
	Start      uint64        `json:"start"`
	Size       Size          `json:"size"`
	Bootable   bool          `json:"bootable,omitempty"`
	Type       PartitionType `json:"type,omitempty"`
	Filesystem Filesystem    `json:"filesystem,omitempty"`
	Components []Component   `json:"components,omitempty"`
	Image      string        `json:"image,omitempty"`
}

// End returns the first unit after the partition. ok is false for Full sizes.
func (p Partition) End() (end uint64, ok bool) {
	if p.Size.IsFull() {
		return 0, false
	}
	return p.Start + p.Size.Units(), true
}
