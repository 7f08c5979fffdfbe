package sdcard

import (
	"github.com/joshuapare/mmapgen/internal/geometry"
	"github.com/joshuapare/mmapgen/pkg/bspconfig"
	"github.com/joshuapare/mmapgen/pkg/types"
)

// bootStart leaves cylinder 0 to the MBR when the bootloader lives outside
// the boot filesystem.
func bootStart(cfg bspconfig.Source) uint64 {
	if cfg.Has(bspconfig.OptBootloaderOutOfFS) {
		return 1
	}
	return 0
}

// cylinders reads a MiB option and converts it to cylinders, rounding up.
func cylinders(cfg bspconfig.Source, option string) (types.Size, error) {
	mb, ok, err := bspconfig.Megabytes(cfg, option)
	if err != nil {
		return types.Size{}, err
	}
	if !ok {
		return types.Size{}, missing(option)
	}
	if mb.IsFull() {
		return types.Full, nil
	}
	return types.Units(geometry.MBToCylinders(mb.Units())), nil
}

// rootfsFilesystem returns the selected ext filesystem. chosen is false when
// no type option is present and ext4 was assumed.
func rootfsFilesystem(cfg bspconfig.Source) (fs types.Filesystem, chosen bool) {
	switch {
	case cfg.Has(bspconfig.OptSDRootfsExt3):
		return types.FilesystemExt3, true
	case cfg.Has(bspconfig.OptSDRootfsExt4):
		return types.FilesystemExt4, true
	case cfg.Has(bspconfig.OptSDRootfsExt4NoJournal):
		return types.FilesystemExt4NoJournal, true
	}
	return types.FilesystemExt4, false
}

func placeBoot(cfg bspconfig.Source) (types.Partition, error) {
	size, err := cylinders(cfg, bspconfig.OptUbootPartitionSize)
	if err != nil {
		return types.Partition{}, err
	}
	return types.Partition{
		Name:       string(types.RoleBoot),
		Role:       types.RoleBoot,
		Start:      bootStart(cfg),
		Size:       size,
		Bootable:   true,
		Type:       types.TypeFAT32LBA,
		Filesystem: types.FilesystemVFAT,
		Components: []types.Component{types.ComponentBootloader, types.ComponentKernel},
	}, nil
}

// placeRootfs puts the rootfs right after boot, which must have a concrete size.
func placeRootfs(cfg bspconfig.Source, boot types.Partition) (types.Partition, error) {
	end, ok := boot.End()
	if !ok {
		return types.Partition{}, types.Errorf(types.ErrKindConstraint,
			"boot partition takes the whole card, no room for rootfs")
	}
	size, err := cylinders(cfg, bspconfig.OptSDRootfsSize)
	if err != nil {
		return types.Partition{}, err
	}
	fs, _ := rootfsFilesystem(cfg)
	return types.Partition{
		Name:       string(types.RoleRootfs),
		Role:       types.RoleRootfs,
		Start:      end,
		Size:       size,
		Type:       types.TypeLinuxNative,
		Filesystem: fs,
		Components: []types.Component{types.ComponentRootfs},
	}, nil
}

func placeFilesystemOnly(cfg bspconfig.Source) types.Partition {
	fs, _ := rootfsFilesystem(cfg)
	return types.Partition{
		Name:       string(types.RoleRootfs),
		Role:       types.RoleRootfs,
		Start:      1,
		Size:       types.Full,
		Type:       types.TypeLinuxNative,
		Filesystem: fs,
		Components: []types.Component{types.ComponentRootfs},
	}
}

func placeInstallerBoot(cfg bspconfig.Source) types.Partition {
	return types.Partition{
		Name:       string(types.RoleBoot),
		Role:       types.RoleBoot,
		Start:      bootStart(cfg),
		Size:       types.Full,
		Bootable:   true,
		Type:       types.TypeFAT32LBA,
		Filesystem: types.FilesystemVFAT,
		Components: []types.Component{types.ComponentBootloader},
	}
}
