package printer

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/mmapgen/internal/geometry"
	"github.com/joshuapare/mmapgen/pkg/types"
)

func sdParts() []types.Partition {
	return []types.Partition{
		{
			Name: "rootfs", Role: types.RoleRootfs, Start: 10, Size: types.Full,
			Type: types.TypeLinuxNative, Filesystem: types.FilesystemExt4,
		},
		{
			Name: "boot", Role: types.RoleBoot, Start: 1, Size: types.Units(9), Bootable: true,
			Type: types.TypeFAT32LBA, Filesystem: types.FilesystemVFAT,
		},
	}
}

func nandParts() []types.Partition {
	return []types.Partition{
		{Name: "uboot-min", Role: types.RoleIPL, Start: 0, Size: types.Units(3)},
		{Name: "uboot", Role: types.RoleBootloader, Start: 3, Size: types.Units(2)},
		{Name: "uboot_env", Role: types.RoleBootloaderEnv, Start: 19, Size: types.Units(0)},
		{Name: "rootfs", Role: types.RoleFS, Start: 40, Size: types.Units(40), Filesystem: types.FilesystemUBIFS},
	}
}

func TestSDTable(t *testing.T) {
	out := SDTable(sdParts())

	for _, h := range sdHeaders {
		require.Contains(t, out, h)
	}
	require.Contains(t, out, "W95 FAT32 (LBA)")
	require.Contains(t, out, "Linux")
	require.Contains(t, out, "0x007D8200") // 1 cylinder
	require.Contains(t, out, "74027520")   // 9 cylinders in bytes
	require.Contains(t, out, "*")

	require.Less(t, strings.Index(out, "boot"), strings.Index(out, "rootfs"), "rows are sorted by start")
}

func TestNANDTable(t *testing.T) {
	out := NANDTable(nandParts(), geometry.NANDBlockSize)

	for _, h := range nandHeaders {
		require.Contains(t, out, h)
	}
	require.Contains(t, out, "0x00060000") // offset of block 3
	require.Contains(t, out, "0x00500000") // 40 blocks
	require.Contains(t, out, "5.00")
	require.Contains(t, out, "0.25")
	require.Contains(t, out, "79") // last block of rootfs
	require.Contains(t, out, "ubifs")

	lines := strings.Split(out, "\n")
	var envLine string
	for _, l := range lines {
		if strings.Contains(l, "uboot_env") {
			envLine = l
		}
	}
	require.NotEmpty(t, envLine)
	require.Contains(t, envLine, "-", "empty partitions have no last block")
}

func TestPrinter_SDText(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, DefaultOptions())
	require.NoError(t, p.Print(sdParts(), types.Info{Unit: types.UnitCylinder, UnitSize: geometry.CylinderSize}))

	out := buf.String()
	require.Contains(t, out, "SD card memory map")
	require.Contains(t, out, "Cylinder size: 8225280 (bytes)")
	require.Contains(t, out, "Size '-' represents")
}

func TestPrinter_NoNotes(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Notes = false
	p := New(&buf, opts)
	require.NoError(t, p.PrintNAND(nandParts(), types.Info{Unit: types.UnitBlock, UnitSize: geometry.NANDBlockSize}))

	out := buf.String()
	require.NotContains(t, out, "NAND memory map")
	require.NotContains(t, out, "block size")
	require.Equal(t, NANDTable(nandParts(), geometry.NANDBlockSize)+"\n", out)
}

func TestPrinter_NANDText(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, DefaultOptions())
	require.NoError(t, p.Print(nandParts(), types.Info{Unit: types.UnitBlock, UnitSize: geometry.NANDBlockSize}))

	out := buf.String()
	require.Contains(t, out, "NAND memory map")
	require.Contains(t, out, "NAND block size: 131072 (bytes)")
}

func TestPrinter_JSON(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Format = FormatJSON
	p := New(&buf, opts)

	info := types.Info{Unit: types.UnitCylinder, UnitSize: geometry.CylinderSize}
	require.NoError(t, p.PrintSD(sdParts(), info))

	var doc struct {
		Device     string            `json:"device"`
		Info       types.Info        `json:"info"`
		Partitions []types.Partition `json:"partitions"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Equal(t, "sd", doc.Device)
	require.Equal(t, info, doc.Info)
	require.Len(t, doc.Partitions, 2)
	require.Equal(t, "boot", doc.Partitions[0].Name)
	require.True(t, doc.Partitions[1].Size.IsFull())
}

func TestPrinter_JSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, Options{Format: FormatJSON})
	require.NoError(t, p.PrintNAND(nil, types.Info{Unit: types.UnitBlock}))
	require.Contains(t, buf.String(), `"partitions": []`)
	require.Contains(t, buf.String(), `"device": "nand"`)
}
