package nand

import (
	"github.com/joshuapare/mmapgen/pkg/bspconfig"
	"github.com/joshuapare/mmapgen/pkg/types"
)

// ValidateConfig checks the installation mode and parses every numeric option
// that is present. Missing size budgets are only warned about.
func (m *Map) ValidateConfig() error {
	if !m.cfg.Has(bspconfig.OptModeAttachedBoard) && !m.cfg.Has(bspconfig.OptModeSDCardInstaller) {
		return types.OptionErrorf(types.ErrKindConfig, bspconfig.OptModeAttachedBoard,
			"asked for the NAND memory map, but neither %s or %s are set",
			bspconfig.OptModeAttachedBoard, bspconfig.OptModeSDCardInstaller)
	}

	for _, opt := range []string{bspconfig.OptIPLFlashBlkStart, bspconfig.OptUbootFlashBlkStart} {
		if _, _, err := bspconfig.Hex(m.cfg, opt); err != nil {
			return err
		}
	}
	for _, opt := range []string{
		bspconfig.OptUbootSizeInBlks,
		bspconfig.OptKernelSizeInBlks,
		bspconfig.OptFSSizeInBlks,
		bspconfig.OptIPLCopies,
	} {
		if _, _, err := bspconfig.Int(m.cfg, opt); err != nil {
			return err
		}
	}

	if !m.cfg.Has(bspconfig.OptUbootSizeInBlks) {
		m.log.Warn("missing option", "option", bspconfig.OptUbootSizeInBlks)
	}
	if !m.cfg.Has(bspconfig.OptKernelSizeInBlks) {
		m.log.Warn("missing option", "option", bspconfig.OptKernelSizeInBlks)
	}
	if !m.cfg.Has(bspconfig.OptFSTargetNFSRoot) && !m.cfg.Has(bspconfig.OptFSSizeInBlks) {
		m.log.Warn("missing option", "option", bspconfig.OptFSSizeInBlks)
	}
	if m.cfg.Has(bspconfig.OptMTDUbootIntegration) && !m.cfg.Has(bspconfig.OptMTDDeviceName) {
		m.log.Warn("missing option", "option", bspconfig.OptMTDDeviceName)
	}
	return nil
}
