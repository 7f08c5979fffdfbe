package bspconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/mmapgen/pkg/types"
)

const sampleConfig = `#
# Automatically generated file; DO NOT EDIT.
#
CONFIG_INSTALLER_MODE_SD_CARD=y
CONFIG_INSTALLER_UBOOT_PARTITION_SIZE="64"
CONFIG_INSTALLER_MTD_DEVICE_NAME=" davinci_nand.0 "
# CONFIG_FS_TARGET_NFSROOT is not set
CONFIG_BSP_ARCH_INSTALLER_UBOOT_FLASH_BLK_START=0x20
CONFIG_INSTALLER_SD_ROOTFS_SIZE="-"
`

func TestParse(t *testing.T) {
	cfg, err := Parse(strings.NewReader(sampleConfig))
	require.NoError(t, err)

	require.True(t, cfg.Has(OptModeSDCard))
	require.False(t, cfg.Has(OptFSTargetNFSRoot), "commented options are absent")
	require.Equal(t, 5, cfg.Len())

	v, ok := cfg.Get(OptUbootPartitionSize)
	require.True(t, ok)
	require.Equal(t, "64", v)

	clean, ok := cfg.Clean(OptMTDDeviceName)
	require.True(t, ok)
	require.Equal(t, "davinci_nand.0", clean)

	_, ok = cfg.Clean(OptFSTargetNFSRoot)
	require.False(t, ok)

	require.True(t, Enabled(cfg, OptModeSDCard))
	require.False(t, Enabled(cfg, OptFSTargetNFSRoot))
}

func TestParse_ByteOrderMark(t *testing.T) {
	cfg, err := Parse(strings.NewReader("\xef\xbb\xbfCONFIG_FS_TARGET_SD=y\n"))
	require.NoError(t, err)
	require.True(t, Enabled(cfg, OptFSTargetSD))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bspconfig")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, path, cfg.Path())
	require.Contains(t, cfg.String(), path)

	_, err = Load(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	require.True(t, types.IsKind(err, types.ErrKindIO))
}

func TestFromMap_Copies(t *testing.T) {
	src := map[string]string{"CONFIG_B": "1", "CONFIG_A": "2"}
	cfg := FromMap(src)
	src["CONFIG_C"] = "3"

	require.False(t, cfg.Has("CONFIG_C"))
	require.Equal(t, []string{"CONFIG_A", "CONFIG_B"}, cfg.Options())
}

func TestInt(t *testing.T) {
	cfg := FromMap(map[string]string{
		"CONFIG_GOOD":  `"12"`,
		"CONFIG_BAD":   "twelve",
		"CONFIG_NEG":   "-3",
		"CONFIG_EMPTY": "",
	})

	n, ok, err := Int(cfg, "CONFIG_GOOD")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, uint64(12), n)

	_, ok, err = Int(cfg, "CONFIG_MISSING")
	require.NoError(t, err)
	require.False(t, ok)

	for _, opt := range []string{"CONFIG_BAD", "CONFIG_NEG", "CONFIG_EMPTY"} {
		_, ok, err = Int(cfg, opt)
		require.True(t, ok)
		require.Error(t, err)
		require.True(t, types.IsKind(err, types.ErrKindConfig))
		require.Equal(t, opt, types.OptionOf(err))
		require.Contains(t, err.Error(), opt+" must be an integer")
	}
}

func TestHex(t *testing.T) {
	cfg := FromMap(map[string]string{
		"CONFIG_PREFIXED": "0x20",
		"CONFIG_BARE":     "1f",
		"CONFIG_BAD":      "0xzz",
	})

	n, ok, err := Hex(cfg, "CONFIG_PREFIXED")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, uint64(0x20), n)

	n, _, err = Hex(cfg, "CONFIG_BARE")
	require.NoError(t, err)
	require.Equal(t, uint64(0x1f), n)

	_, _, err = Hex(cfg, "CONFIG_BAD")
	require.Error(t, err)
	require.Equal(t, "CONFIG_BAD", types.OptionOf(err))
}

func TestMegabytes(t *testing.T) {
	cfg := FromMap(map[string]string{
		"CONFIG_FULL": `"-"`,
		"CONFIG_SIZE": "64",
		"CONFIG_BAD":  "64M",
	})

	size, ok, err := Megabytes(cfg, "CONFIG_FULL")
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, size.IsFull())

	size, _, err = Megabytes(cfg, "CONFIG_SIZE")
	require.NoError(t, err)
	require.Equal(t, types.Units(64), size)

	_, _, err = Megabytes(cfg, "CONFIG_BAD")
	require.Error(t, err)

	_, ok, err = Megabytes(cfg, "CONFIG_MISSING")
	require.NoError(t, err)
	require.False(t, ok)
}
