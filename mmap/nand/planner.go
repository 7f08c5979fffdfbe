package nand

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joshuapare/mmapgen/internal/geometry"
	"github.com/joshuapare/mmapgen/mmap/board"
	"github.com/joshuapare/mmapgen/pkg/bspconfig"
	"github.com/joshuapare/mmapgen/pkg/types"
)

// planner holds the inputs shared by the placement steps. Each step reads
// only the planner and the partitions placed before it.
type planner struct {
	cfg       bspconfig.Source
	profile   board.Profile
	devdir    string
	blockSize uint64
	ipl       string
	log       *slog.Logger
}

// step places one partition. ok is false when the step does not apply.
type step func(pl *planner, placed []types.Partition) (p types.Partition, ok bool, err error)

var steps = []step{
	(*planner).placeIPL,
	(*planner).placeBootloader,
	(*planner).placeEnv,
	(*planner).placeDTB,
	(*planner).placeKernel,
	(*planner).placeFS,
}

func (m *Map) planner() *planner {
	return &planner{
		cfg:       m.cfg,
		profile:   m.profile,
		devdir:    m.devdir,
		blockSize: m.blockSize,
		ipl:       iplImage(m.cfg, m.profile, m.log),
		log:       m.log,
	}
}

func (pl *planner) run() ([]types.Partition, error) {
	var placed []types.Partition
	for _, s := range steps {
		p, ok, err := s(pl, placed)
		if err != nil {
			return nil, err
		}
		if ok {
			placed = append(placed, p)
		}
	}
	return placed, nil
}

// checkImages fails with an input error naming the first missing image.
func (pl *planner) checkImages() error {
	if pl.ipl == "" {
		return types.Errorf(types.ErrKindInput, "board %s has no %s image", pl.profile.Board, types.RoleIPL)
	}
	rels := []string{pl.ipl}
	required := []types.Role{types.RoleBootloader, types.RoleKernel}
	if !skipsFS(fsName(pl.cfg)) {
		required = append(required, types.RoleFS)
	}
	for _, role := range required {
		img, ok := pl.profile.Image(role)
		if !ok {
			return types.Errorf(types.ErrKindInput, "board %s has no %s image", pl.profile.Board, role)
		}
		rels = append(rels, img)
	}
	if img, ok := pl.profile.Image(types.RoleDTB); ok {
		rels = append(rels, img)
	}
	for _, rel := range rels {
		if _, err := pl.stat(rel); err != nil {
			return err
		}
	}
	return nil
}

func (pl *planner) stat(rel string) (os.FileInfo, error) {
	path := filepath.Join(pl.devdir, rel)
	info, err := os.Stat(path)
	if err != nil {
		return nil, types.Wrap(types.ErrKindInput, err, "image not found: %s", path)
	}
	if info.IsDir() {
		return nil, types.Errorf(types.ErrKindInput, "image is a directory: %s", path)
	}
	return info, nil
}

// imageBlocks returns the absolute image path for rel and its size in blocks.
func (pl *planner) imageBlocks(rel string) (string, uint64, error) {
	info, err := pl.stat(rel)
	if err != nil {
		return "", 0, err
	}
	return filepath.Join(pl.devdir, rel), geometry.BytesToBlocks(uint64(info.Size()), pl.blockSize), nil
}

// iplImage picks the multi-copy IPL image when copies are requested and the
// board has one.
func iplImage(cfg bspconfig.Source, profile board.Profile, log *slog.Logger) string {
	img, _ := profile.Image(types.RoleIPL)
	if !cfg.Has(bspconfig.OptIPLCopies) {
		return img
	}
	if profile.MultiIPLImage == "" {
		log.Warn("board has no multi-copy IPL image, using the single copy image",
			"option", bspconfig.OptIPLCopies, "image", img)
		return img
	}
	return profile.MultiIPLImage
}

func (pl *planner) partition(role types.Role, start, blocks uint64, image string) types.Partition {
	return types.Partition{
		Name:  pl.profile.Name(role),
		Role:  role,
		Start: start,
		Size:  types.Units(blocks),
		Image: image,
	}
}

func (pl *planner) placeIPL(_ []types.Partition) (types.Partition, bool, error) {
	start, _, err := bspconfig.Hex(pl.cfg, bspconfig.OptIPLFlashBlkStart)
	if err != nil {
		return types.Partition{}, false, err
	}
	img, blocks, err := pl.imageBlocks(pl.ipl)
	if err != nil {
		return types.Partition{}, false, err
	}
	return pl.partition(types.RoleIPL, start, blocks, img), true, nil
}

func (pl *planner) placeBootloader(placed []types.Partition) (types.Partition, bool, error) {
	start, configured, err := bspconfig.Hex(pl.cfg, bspconfig.OptUbootFlashBlkStart)
	if err != nil {
		return types.Partition{}, false, err
	}
	iplEnd, _ := roleEnd(placed, types.RoleIPL)
	if start < iplEnd {
		if configured {
			return types.Partition{}, false, types.OptionErrorf(types.ErrKindConstraint, bspconfig.OptUbootFlashBlkStart,
				"IPL ends at block %#x, can't start the bootloader partition at block %#x, please check %s",
				iplEnd, start, bspconfig.OptUbootFlashBlkStart)
		}
		start = iplEnd
	}

	rel, _ := pl.profile.Image(types.RoleBootloader)
	img, blocks, err := pl.imageBlocks(rel)
	if err != nil {
		return types.Partition{}, false, err
	}

	budget, ok, err := bspconfig.Int(pl.cfg, bspconfig.OptUbootSizeInBlks)
	if err != nil {
		return types.Partition{}, false, err
	}
	if ok && start+blocks > budget {
		return types.Partition{}, false, types.OptionErrorf(types.ErrKindConstraint, bspconfig.OptUbootSizeInBlks,
			"the allowed space for %s and %s (%s = %d) is smaller than the required one (%d NAND blocks), please reconfigure your SDK",
			pl.profile.Name(types.RoleIPL), pl.profile.Name(types.RoleBootloader),
			bspconfig.OptUbootSizeInBlks, budget, start+blocks)
	}
	return pl.partition(types.RoleBootloader, start, blocks, img), true, nil
}

func (pl *planner) placeEnv(placed []types.Partition) (types.Partition, bool, error) {
	if !pl.cfg.Has(bspconfig.OptUbootFwPrintenv) {
		return types.Partition{}, false, nil
	}
	if !pl.profile.HasEnv() {
		pl.log.Warn("board reserves no bootloader environment partition, skipping it",
			"option", bspconfig.OptUbootFwPrintenv)
		return types.Partition{}, false, nil
	}
	if end := lastEnd(placed); pl.profile.EnvStart < end {
		return types.Partition{}, false, types.OptionErrorf(types.ErrKindConstraint, bspconfig.OptUbootFwPrintenv,
			"bootloader environment is fixed at block %d, but the previous partitions end at block %d",
			pl.profile.EnvStart, end)
	}
	return pl.partition(types.RoleBootloaderEnv, pl.profile.EnvStart, pl.profile.EnvSize, ""), true, nil
}

// afterBootloader is the start of the dtb and the kernel: the bootloader
// budget when configured, the bootloader end otherwise, never inside a
// partition that is already placed.
func (pl *planner) afterBootloader(role types.Role, placed []types.Partition) (uint64, error) {
	start, ok, err := bspconfig.Int(pl.cfg, bspconfig.OptUbootSizeInBlks)
	if err != nil {
		return 0, err
	}
	if !ok {
		start, _ = roleEnd(placed, types.RoleBootloader)
	}
	if end := lastEnd(placed); start < end {
		pl.log.Debug("start moved past the previous partition", "role", string(role), "from", start, "to", end)
		start = end
	}
	return start, nil
}

func (pl *planner) placeDTB(placed []types.Partition) (types.Partition, bool, error) {
	rel, ok := pl.profile.Image(types.RoleDTB)
	if !ok {
		return types.Partition{}, false, nil
	}
	start, err := pl.afterBootloader(types.RoleDTB, placed)
	if err != nil {
		return types.Partition{}, false, err
	}
	img, blocks, err := pl.imageBlocks(rel)
	if err != nil {
		return types.Partition{}, false, err
	}
	return pl.partition(types.RoleDTB, start, blocks, img), true, nil
}

func (pl *planner) placeKernel(placed []types.Partition) (types.Partition, bool, error) {
	start, err := pl.afterBootloader(types.RoleKernel, placed)
	if err != nil {
		return types.Partition{}, false, err
	}
	rel, _ := pl.profile.Image(types.RoleKernel)
	img, blocks, err := pl.imageBlocks(rel)
	if err != nil {
		return types.Partition{}, false, err
	}
	blocks, err = atLeast(pl.cfg, bspconfig.OptKernelSizeInBlks, blocks+KernelExtraBlocks)
	if err != nil {
		return types.Partition{}, false, err
	}
	return pl.partition(types.RoleKernel, start, blocks, img), true, nil
}

func (pl *planner) placeFS(placed []types.Partition) (types.Partition, bool, error) {
	fs := fsName(pl.cfg)
	if skipsFS(fs) {
		return types.Partition{}, false, nil
	}
	start, _ := roleEnd(placed, types.RoleKernel)
	rel, _ := pl.profile.Image(types.RoleFS)
	img, blocks, err := pl.imageBlocks(rel)
	if err != nil {
		return types.Partition{}, false, err
	}
	blocks, err = atLeast(pl.cfg, bspconfig.OptFSSizeInBlks, blocks+FSExtraBlocks)
	if err != nil {
		return types.Partition{}, false, err
	}
	p := pl.partition(types.RoleFS, start, blocks, img)
	p.Filesystem = fs
	return p, true, nil
}

// atLeast returns the configured minimum when it is larger than blocks.
func atLeast(cfg bspconfig.Source, option string, blocks uint64) (uint64, error) {
	floor, ok, err := bspconfig.Int(cfg, option)
	if err != nil {
		return 0, err
	}
	if ok && floor > blocks {
		return floor, nil
	}
	return blocks, nil
}

// fsTargets is the precedence order of the filesystem target options.
var fsTargets = []struct {
	option string
	fs     types.Filesystem
}{
	{bspconfig.OptFSTargetNFSRoot, types.FilesystemNFS},
	{bspconfig.OptFSTargetSD, types.FilesystemSD},
	{bspconfig.OptFSTargetInitrd, types.FilesystemInitrd},
	{bspconfig.OptFSTargetJFFS2, types.FilesystemJFFS2},
	{bspconfig.OptFSTargetUBIFS, types.FilesystemUBIFS},
	{bspconfig.OptFSTargetCramFS, types.FilesystemCramFS},
	{bspconfig.OptFSTargetRomFS, types.FilesystemRomFS},
}

// fsName returns the first filesystem target set to "y".
func fsName(cfg bspconfig.Source) types.Filesystem {
	for _, t := range fsTargets {
		if bspconfig.Enabled(cfg, t.option) {
			return t.fs
		}
	}
	return types.FilesystemUnknown
}

// skipsFS reports whether the root filesystem lives outside the NAND.
func skipsFS(fs types.Filesystem) bool {
	return fs == types.FilesystemNFS || fs == types.FilesystemSD
}

func roleEnd(placed []types.Partition, role types.Role) (uint64, bool) {
	for _, p := range placed {
		if p.Role == role {
			return p.End()
		}
	}
	return 0, false
}

func lastEnd(placed []types.Partition) uint64 {
	var end uint64
	for _, p := range placed {
		if e, ok := p.End(); ok && e > end {
			end = e
		}
	}
	return end
}
