package sdcard

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/mmapgen/pkg/bspconfig"
	"github.com/joshuapare/mmapgen/pkg/types"
)

// newTestMap returns a map over values and the buffer its warnings go to.
func newTestMap(t *testing.T, variant Variant, values map[string]string) (*Map, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	opts := Options{Logger: slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))}
	return New(bspconfig.FromMap(values), variant, opts), &logs
}

func TestGenerate_BootAndRootfs(t *testing.T) {
	m, logs := newTestMap(t, Plain, map[string]string{
		bspconfig.OptModeSDCard:         "y",
		bspconfig.OptBootloaderOutOfFS:  "y",
		bspconfig.OptUbootPartitionSize: "64",
		bspconfig.OptFSTargetSD:         "y",
		bspconfig.OptSDRootfsSize:       "-",
	})
	require.NoError(t, m.ValidateConfig())
	require.Contains(t, logs.String(), "no rootfs ext type selected")
	require.NoError(t, m.GenerateMmap())

	parts := m.Partitions()
	require.Len(t, parts, 2)

	boot := parts[0]
	require.Equal(t, "boot", boot.Name)
	require.Equal(t, uint64(1), boot.Start)
	require.Equal(t, types.Units(9), boot.Size)
	require.True(t, boot.Bootable)
	require.Equal(t, types.TypeFAT32LBA, boot.Type)
	require.Equal(t, types.FilesystemVFAT, boot.Filesystem)
	require.Equal(t, []types.Component{types.ComponentBootloader, types.ComponentKernel}, boot.Components)

	rootfs := parts[1]
	require.Equal(t, "rootfs", rootfs.Name)
	require.Equal(t, uint64(10), rootfs.Start)
	require.True(t, rootfs.Size.IsFull())
	require.False(t, rootfs.Bootable)
	require.Equal(t, types.TypeLinuxNative, rootfs.Type)
	require.Equal(t, types.FilesystemExt4, rootfs.Filesystem)
	require.Equal(t, []types.Component{types.ComponentRootfs}, rootfs.Components)

	info := m.GenerateInfo()
	require.Equal(t, types.UnitCylinder, info.Unit)
	require.Equal(t, uint64(8225280), info.UnitSize)
	require.Empty(t, info.Mtdparts)
}

func TestGenerate_BootOnly(t *testing.T) {
	m, _ := newTestMap(t, Plain, map[string]string{
		bspconfig.OptUbootPartitionSize: "128",
	})
	require.NoError(t, m.ValidateConfig())
	require.NoError(t, m.GenerateMmap())

	parts := m.Partitions()
	require.Len(t, parts, 1)
	require.Equal(t, uint64(0), parts[0].Start)
	require.Equal(t, types.Units(17), parts[0].Size)
}

func TestGenerate_FullBootSkipsRootfs(t *testing.T) {
	m, logs := newTestMap(t, Plain, map[string]string{
		bspconfig.OptUbootPartitionSize: "-",
		bspconfig.OptFSTargetSD:         "y",
		bspconfig.OptSDRootfsSize:       "256",
		bspconfig.OptSDRootfsExt3:       "y",
	})
	require.NoError(t, m.ValidateConfig())
	require.NoError(t, m.GenerateMmap())

	parts := m.Partitions()
	require.Len(t, parts, 1)
	require.True(t, parts[0].Size.IsFull())
	require.Contains(t, logs.String(), "no room for rootfs")
}

func TestGenerate_RootfsFilesystemChoice(t *testing.T) {
	tests := []struct {
		option string
		want   types.Filesystem
	}{
		{bspconfig.OptSDRootfsExt3, types.FilesystemExt3},
		{bspconfig.OptSDRootfsExt4, types.FilesystemExt4},
		{bspconfig.OptSDRootfsExt4NoJournal, types.FilesystemExt4NoJournal},
	}
	for _, tt := range tests {
		t.Run(string(tt.want), func(t *testing.T) {
			m, logs := newTestMap(t, Plain, map[string]string{
				bspconfig.OptUbootPartitionSize: "64",
				bspconfig.OptFSTargetSD:         "y",
				bspconfig.OptSDRootfsSize:       "512",
				tt.option:                       "y",
			})
			require.NoError(t, m.ValidateConfig())
			require.NotContains(t, logs.String(), "no rootfs ext type")
			require.NoError(t, m.GenerateMmap())

			parts := m.Partitions()
			require.Len(t, parts, 2)
			require.Equal(t, tt.want, parts[1].Filesystem)
			require.Equal(t, uint64(9), parts[1].Start)
			require.Equal(t, types.Units(66), parts[1].Size)
		})
	}
}

func TestGenerate_Twice(t *testing.T) {
	m, _ := newTestMap(t, ExternalInstaller, map[string]string{
		bspconfig.OptModeSDCardInstaller: "y",
	})
	require.NoError(t, m.GenerateMmap())
	err := m.GenerateMmap()
	require.ErrorIs(t, err, types.ErrAlreadyGenerated)
	require.Len(t, m.Partitions(), 1)
}

func TestValidateConfig_Plain(t *testing.T) {
	tests := []struct {
		name       string
		values     map[string]string
		wantOption string
		wantMsg    string
	}{
		{
			name:       "missing boot size",
			values:     map[string]string{bspconfig.OptModeSDCard: "y"},
			wantOption: bspconfig.OptUbootPartitionSize,
			wantMsg:    "missing " + bspconfig.OptUbootPartitionSize,
		},
		{
			name:       "boot size not an integer",
			values:     map[string]string{bspconfig.OptUbootPartitionSize: "abc"},
			wantOption: bspconfig.OptUbootPartitionSize,
			wantMsg:    bspconfig.OptUbootPartitionSize + " must be an integer (abc)",
		},
		{
			name: "rootfs size missing",
			values: map[string]string{
				bspconfig.OptUbootPartitionSize: "64",
				bspconfig.OptFSTargetSD:         "y",
			},
			wantOption: bspconfig.OptSDRootfsSize,
			wantMsg:    "missing " + bspconfig.OptSDRootfsSize,
		},
		{
			name: "rootfs size not an integer",
			values: map[string]string{
				bspconfig.OptUbootPartitionSize: "64",
				bspconfig.OptFSTargetSD:         "y",
				bspconfig.OptSDRootfsSize:       "1G",
			},
			wantOption: bspconfig.OptSDRootfsSize,
			wantMsg:    bspconfig.OptSDRootfsSize + " must be an integer (1G)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestMap(t, Plain, tt.values)
			err := m.ValidateConfig()
			require.Error(t, err)
			require.True(t, types.IsKind(err, types.ErrKindConfig))
			require.Equal(t, tt.wantOption, types.OptionOf(err))
			require.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestValidateConfig_WarnsWithoutSDMode(t *testing.T) {
	m, logs := newTestMap(t, Plain, map[string]string{bspconfig.OptUbootPartitionSize: "64"})
	require.NoError(t, m.ValidateConfig())
	require.Contains(t, logs.String(), "level=WARN")
	require.Contains(t, logs.String(), bspconfig.OptModeSDCard)
}

func TestFilesystemOnly(t *testing.T) {
	m, _ := newTestMap(t, FilesystemOnly, map[string]string{})
	err := m.ValidateConfig()
	require.True(t, types.IsKind(err, types.ErrKindConfig))
	require.Equal(t, bspconfig.OptFSTargetSD, types.OptionOf(err))

	m, logs := newTestMap(t, FilesystemOnly, map[string]string{bspconfig.OptFSTargetSD: "y"})
	require.NoError(t, m.ValidateConfig())
	require.Contains(t, logs.String(), "assuming Linux native ext4")
	require.NoError(t, m.GenerateMmap())

	parts := m.Partitions()
	require.Len(t, parts, 1)
	require.Equal(t, types.Partition{
		Name:       "rootfs",
		Role:       types.RoleRootfs,
		Start:      1,
		Size:       types.Full,
		Type:       types.TypeLinuxNative,
		Filesystem: types.FilesystemExt4,
		Components: []types.Component{types.ComponentRootfs},
	}, parts[0])
}

func TestExternalInstaller(t *testing.T) {
	m, _ := newTestMap(t, ExternalInstaller, map[string]string{})
	err := m.ValidateConfig()
	require.True(t, types.IsKind(err, types.ErrKindConfig))
	require.Equal(t, bspconfig.OptModeSDCardInstaller, types.OptionOf(err))

	m, _ = newTestMap(t, ExternalInstaller, map[string]string{
		bspconfig.OptModeSDCardInstaller: "y",
		bspconfig.OptBootloaderOutOfFS:   "y",
	})
	require.NoError(t, m.ValidateConfig())
	require.NoError(t, m.GenerateMmap())

	parts := m.Partitions()
	require.Len(t, parts, 1)
	require.Equal(t, uint64(1), parts[0].Start)
	require.True(t, parts[0].Size.IsFull())
	require.True(t, parts[0].Bootable)
	require.Equal(t, types.TypeFAT32LBA, parts[0].Type)
	require.Equal(t, []types.Component{types.ComponentBootloader}, parts[0].Components)
}

func TestPartitions_ReturnsCopy(t *testing.T) {
	m, _ := newTestMap(t, ExternalInstaller, map[string]string{bspconfig.OptModeSDCardInstaller: "y"})
	require.NoError(t, m.GenerateMmap())
	parts := m.Partitions()
	parts[0].Name = "changed"
	require.Equal(t, "boot", m.Partitions()[0].Name)
}

func TestSaveRead_RoundTrip(t *testing.T) {
	m, _ := newTestMap(t, Plain, map[string]string{
		bspconfig.OptUbootPartitionSize:    "64",
		bspconfig.OptFSTargetSD:            "y",
		bspconfig.OptSDRootfsSize:          "-",
		bspconfig.OptSDRootfsExt4NoJournal: "y",
	})
	require.NoError(t, m.GenerateMmap())

	path := filepath.Join(t.TempDir(), "sd-mmap.config")
	require.NoError(t, m.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "[boot]\nname = boot\nstart = 0\nsize = 9\nbootable = true\ntype = c\nfilesystem = vfat\ncomponents = bootloader,kernel\n")
	require.Contains(t, string(data), "[rootfs]\n")
	require.Contains(t, string(data), "size = -\n")

	back, _ := newTestMap(t, Plain, nil)
	require.NoError(t, back.Read(path))
	require.Equal(t, m.Partitions(), back.Partitions())

	require.ErrorIs(t, back.GenerateMmap(), types.ErrAlreadyGenerated)
}

func TestSave_BeforeGenerate(t *testing.T) {
	m, _ := newTestMap(t, Plain, nil)
	err := m.Save(filepath.Join(t.TempDir(), "sd-mmap.config"))
	require.ErrorIs(t, err, types.ErrNotGenerated)
}

func TestSave_UnwritableDir(t *testing.T) {
	m, _ := newTestMap(t, ExternalInstaller, map[string]string{bspconfig.OptModeSDCardInstaller: "y"})
	require.NoError(t, m.GenerateMmap())
	err := m.Save(filepath.Join(t.TempDir(), "missing", "sd-mmap.config"))
	require.True(t, types.IsKind(err, types.ErrKindIO))
}

func TestRead(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantKind types.ErrKind
		wantErr  bool
		want     []types.Partition
	}{
		{
			name:    "missing optional keys",
			content: "[boot]\nstart = 1\nsize = 9\n\n[rootfs]\nname = rootfs\nstart = 10\nsize = -\n",
			want: []types.Partition{
				{Role: types.RoleBoot, Start: 1, Size: types.Units(9)},
				{Name: "rootfs", Role: types.RoleRootfs, Start: 10, Size: types.Full},
			},
		},
		{
			name:    "configparser booleans",
			content: "[rootfs]\nname=rootfs\nstart: 1\nsize=-\nbootable = yes\nType = 83\n",
			want: []types.Partition{
				{Name: "rootfs", Role: types.RoleRootfs, Start: 1, Size: types.Full, Bootable: true, Type: types.TypeLinuxNative},
			},
		},
		{name: "bad start", content: "[boot]\nstart = one\n", wantErr: true, wantKind: types.ErrKindFormat},
		{name: "bad size", content: "[boot]\nsize = lots\n", wantErr: true, wantKind: types.ErrKindFormat},
		{name: "bad bootable", content: "[boot]\nbootable = maybe\n", wantErr: true, wantKind: types.ErrKindFormat},
		{name: "no sections", content: "[info]\nx = 1\n", wantErr: true, wantKind: types.ErrKindFormat},
		{name: "malformed", content: "size = 1\n", wantErr: true, wantKind: types.ErrKindFormat},
		{
			name:     "overlapping",
			content:  "[boot]\nstart = 0\nsize = -\n\n[rootfs]\nstart = 5\nsize = 1\n",
			wantErr:  true,
			wantKind: types.ErrKindFormat,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "sd-mmap.config")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			m, _ := newTestMap(t, Plain, nil)
			err := m.Read(path)
			if tt.wantErr {
				require.Error(t, err)
				require.True(t, types.IsKind(err, tt.wantKind), "got %v", err)
				require.Empty(t, m.Partitions())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, m.Partitions())
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	m, _ := newTestMap(t, Plain, nil)
	err := m.Read(filepath.Join(t.TempDir(), "nope.config"))
	require.True(t, types.IsKind(err, types.ErrKindIO))
}

func TestDraw(t *testing.T) {
	m, _ := newTestMap(t, Plain, map[string]string{
		bspconfig.OptUbootPartitionSize: "64",
		bspconfig.OptFSTargetSD:         "y",
		bspconfig.OptSDRootfsSize:       "-",
	})
	require.NoError(t, m.GenerateMmap())

	var buf bytes.Buffer
	require.NoError(t, m.Draw(&buf))
	require.Contains(t, buf.String(), "SD card memory map")
	require.Contains(t, buf.String(), "Cylinder size: 8225280")

	table := m.DrawString()
	require.Contains(t, table, "Start (cyl)")
	require.Contains(t, table, "rootfs")
	require.NotContains(t, table, "SD card memory map")
	require.Contains(t, buf.String(), table)
}
