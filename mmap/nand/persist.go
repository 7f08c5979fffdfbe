package nand

import (
	"strconv"

	"github.com/joshuapare/mmapgen/internal/mmfile"
	"github.com/joshuapare/mmapgen/internal/mmtext"
	"github.com/joshuapare/mmapgen/pkg/types"
)

// Persisted section and keys. Partitions are stored under their role.
const (
	sectionInfo = "info"

	keyBlockSize = "nand_blk_size"
	keyPageSize  = "nand_page_size"
	keyMtdparts  = "mtdparts"

	keyName     = "name"
	keyStartBlk = "start_blk"
	keySizeBlks = "size_blks"
	keyFS       = "fs"
	keyImage    = "image"
)

// Save writes the info section and one section per partition to path.
func (m *Map) Save(path string) error {
	if len(m.parts) == 0 {
		return types.ErrNotGenerated
	}
	info := m.GenerateInfo()

	doc := &mmtext.Document{}
	s, _ := doc.AddSection(sectionInfo)
	s.Set(keyBlockSize, strconv.FormatUint(info.UnitSize, 10))
	s.Set(keyPageSize, strconv.FormatUint(info.PageSize, 10))
	if info.Mtdparts != "" {
		s.Set(keyMtdparts, info.Mtdparts)
	}

	for _, p := range m.parts {
		s, err := doc.AddSection(string(p.Role))
		if err != nil {
			return types.Wrap(types.ErrKindState, err, "partition %q", p.Name)
		}
		s.Set(keyName, p.Name)
		s.Set(keyStartBlk, strconv.FormatUint(p.Start, 10))
		s.Set(keySizeBlks, p.Size.String())
		s.Set(keyFS, string(p.Filesystem))
		s.Set(keyImage, p.Image)
	}

	if err := mmfile.WriteFile(path, doc.Bytes(), 0o644); err != nil {
		return types.Wrap(types.ErrKindIO, err, "save NAND memory map")
	}
	m.log.Info("generated NAND memory map", "path", path)
	return nil
}
