// Package bspconfig reads a board support package configuration file, the
// flat option list produced by the SDK's kconfig step:
//
//	CONFIG_INSTALLER_MODE_SD_CARD=y
//	CONFIG_INSTALLER_UBOOT_PARTITION_SIZE="64"
//	# CONFIG_FS_TARGET_NFSROOT is not set
//
// An option is present when it has an assignment line; commented-out options
// are absent. The memory map generators only ever read a Source, so tests and
// other tools can supply options from a map with FromMap.
package bspconfig
