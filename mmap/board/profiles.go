package board

import (
	"github.com/joshuapare/mmapgen/internal/geometry"
	"github.com/joshuapare/mmapgen/pkg/types"
)

var davinciNames = map[types.Role]string{
	types.RoleIPL:        "uboot-min",
	types.RoleBootloader: "uboot",
	types.RoleKernel:     "kernel",
	types.RoleFS:         "rootfs",
}

var profiles = map[Board]Profile{
	DM36x: {
		Board:     DM36x,
		BlockSize: geometry.NANDBlockSize,
		PageSize:  geometry.NANDPageSize,
		Images: map[types.Role]string{
			types.RoleIPL:        "images/ubl_nand.nandbin",
			types.RoleBootloader: "images/bootloader.nandbin",
			types.RoleKernel:     "images/kernel.uImage",
			types.RoleFS:         "images/fsimage.uImage",
		},
		Names: map[types.Role]string{
			types.RoleIPL:        "ubl",
			types.RoleBootloader: "uboot",
			types.RoleKernel:     "kernel",
			types.RoleFS:         "rootfs",
		},
	},
	DM816x: {
		Board:     DM816x,
		BlockSize: geometry.NANDBlockSize,
		PageSize:  geometry.NANDPageSize,
		Images: map[types.Role]string{
			types.RoleIPL:        "images/u-boot.min.nand",
			types.RoleBootloader: "images/bootloader",
			types.RoleKernel:     "images/kernel.uImage",
			types.RoleFS:         "images/fsimage.uImage",
		},
		Names: davinciNames,
	},
	DM814x: {
		Board:     DM814x,
		BlockSize: geometry.NANDBlockSize,
		PageSize:  geometry.NANDPageSize,
		Images: map[types.Role]string{
			types.RoleIPL:        "images/u-boot.min.nand",
			types.RoleBootloader: "images/bootloader.nandbin",
			types.RoleKernel:     "images/kernel.uImage",
			types.RoleFS:         "images/fsimage.uImage",
		},
		Names: davinciNames,
	},
	IMX6: {
		Board:     IMX6,
		BlockSize: geometry.NANDBlockSize,
		PageSize:  geometry.NANDPageSize,
		Images: map[types.Role]string{
			types.RoleIPL:        "images/SPL",
			types.RoleBootloader: "images/u-boot.img",
			types.RoleKernel:     "images/kernel.uImage",
			types.RoleFS:         "images/fsimage.uImage",
		},
		Names: map[types.Role]string{
			types.RoleIPL:        "spl",
			types.RoleBootloader: "uboot",
			types.RoleKernel:     "kernel",
			types.RoleFS:         "rootfs",
		},
	},
	AM5728: {
		Board:     AM5728,
		BlockSize: geometry.NANDBlockSize,
		PageSize:  geometry.NANDPageSize,
		Images: map[types.Role]string{
			types.RoleIPL:        "images/u-boot.bin",
			types.RoleBootloader: "images/bootloader",
			types.RoleDTB:        "images/am57xx-evm.dtb",
			types.RoleKernel:     "images/kernel.uImage",
			types.RoleFS:         "images/fsimage.uImage",
		},
		Names: map[types.Role]string{
			types.RoleIPL:           "uboot-min",
			types.RoleBootloader:    "uboot",
			types.RoleDTB:           "dtb",
			types.RoleBootloaderEnv: "uboot_env",
			types.RoleKernel:        "kernel",
			types.RoleFS:            "rootfs",
		},
		EnvStart: 19,
		EnvSize:  1,
	},
}
