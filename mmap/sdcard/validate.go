package sdcard

import (
	"github.com/joshuapare/mmapgen/pkg/bspconfig"
	"github.com/joshuapare/mmapgen/pkg/types"
)

// ValidateConfig checks the options the variant needs. Missing recommended
// options are logged as warnings.
func (m *Map) ValidateConfig() error {
	switch m.variant {
	case FilesystemOnly:
		if !m.cfg.Has(bspconfig.OptFSTargetSD) {
			return missing(bspconfig.OptFSTargetSD)
		}
		m.warnNoExtType()
	case ExternalInstaller:
		if !m.cfg.Has(bspconfig.OptModeSDCardInstaller) {
			return types.OptionErrorf(types.ErrKindConfig, bspconfig.OptModeSDCardInstaller,
				"asked for the SD card installer memory map, but %s is not set",
				bspconfig.OptModeSDCardInstaller)
		}
	default:
		if !m.cfg.Has(bspconfig.OptModeSDCard) {
			m.log.Warn("asked for the SD card memory map, but the SD card mode is not set",
				"option", bspconfig.OptModeSDCard)
		}
		if !m.cfg.Has(bspconfig.OptUbootPartitionSize) {
			return missing(bspconfig.OptUbootPartitionSize)
		}
		if _, _, err := bspconfig.Megabytes(m.cfg, bspconfig.OptUbootPartitionSize); err != nil {
			return err
		}
		if m.cfg.Has(bspconfig.OptFSTargetSD) {
			if !m.cfg.Has(bspconfig.OptSDRootfsSize) {
				return missing(bspconfig.OptSDRootfsSize)
			}
			if _, _, err := bspconfig.Megabytes(m.cfg, bspconfig.OptSDRootfsSize); err != nil {
				return err
			}
			m.warnNoExtType()
		}
	}
	return nil
}

func (m *Map) warnNoExtType() {
	if _, chosen := rootfsFilesystem(m.cfg); !chosen {
		m.log.Warn("no rootfs ext type selected, assuming Linux native ext4",
			"option", "CONFIG_INSTALLER_SD_ROOTFS_TYPE_EXT*")
	}
}

func missing(option string) error {
	return types.OptionErrorf(types.ErrKindConfig, option, "missing %s", option)
}
