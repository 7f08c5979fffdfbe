package bspconfig

// Installation modes.
const (
	OptModeSDCard          = "CONFIG_INSTALLER_MODE_SD_CARD"
	OptModeSDCardInstaller = "CONFIG_INSTALLER_MODE_SD_CARD_INSTALLER"
	OptModeAttachedBoard   = "CONFIG_INSTALLER_MODE_ATTACHED_BOARD"
)

// SD card layout.
const (
	OptUbootPartitionSize    = "CONFIG_INSTALLER_UBOOT_PARTITION_SIZE"
	OptBootloaderOutOfFS     = "CONFIG_BSP_ARCH_SD_CARD_INSTALLER_BOOTLOADER_OUT_OF_FS"
	OptSDRootfsSize          = "CONFIG_INSTALLER_SD_ROOTFS_SIZE"
	OptSDRootfsExt3          = "CONFIG_INSTALLER_SD_ROOTFS_TYPE_EXT3"
	OptSDRootfsExt4          = "CONFIG_INSTALLER_SD_ROOTFS_TYPE_EXT4"
	OptSDRootfsExt4NoJournal = "CONFIG_INSTALLER_SD_ROOTFS_TYPE_EXT4_NO_JOURNAL"
)

// Filesystem targets.
const (
	OptFSTargetNFSRoot = "CONFIG_FS_TARGET_NFSROOT"
	OptFSTargetSD      = "CONFIG_FS_TARGET_SD"
	OptFSTargetInitrd  = "CONFIG_FS_TARGET_INITRD"
	OptFSTargetJFFS2   = "CONFIG_FS_TARGET_JFFS2FS"
	OptFSTargetUBIFS   = "CONFIG_FS_TARGET_UBIFS"
	OptFSTargetCramFS  = "CONFIG_FS_TARGET_CRAMFS"
	OptFSTargetRomFS   = "CONFIG_FS_TARGET_ROMFS"
)

// NAND layout.
const (
	OptIPLFlashBlkStart    = "CONFIG_BSP_ARCH_INSTALLER_IPL_FLASH_BLK_START"
	OptUbootFlashBlkStart  = "CONFIG_BSP_ARCH_INSTALLER_UBOOT_FLASH_BLK_START"
	OptIPLCopies           = "CONFIG_ARCH_IPL_COPIES"
	OptUbootSizeInBlks     = "CONFIG_INSTALLER_UBOOT_SIZE_IN_BLKS"
	OptKernelSizeInBlks    = "CONFIG_INSTALLER_KERNEL_SIZE_IN_BLKS"
	OptFSSizeInBlks        = "CONFIG_INSTALLER_FS_SIZE_IN_BLKS"
	OptUbootFwPrintenv     = "CONFIG_UBOOT_FW_PRINTENV"
	OptMTDUbootIntegration = "CONFIG_INSTALLER_MTD_UBOOT_INTEGRATION"
	OptMTDDeviceName       = "CONFIG_INSTALLER_MTD_DEVICE_NAME"
)
