package sdcard

import (
	"os"
	"strconv"

	"github.com/joshuapare/mmapgen/internal/mmfile"
	"github.com/joshuapare/mmapgen/internal/mmtext"
	"github.com/joshuapare/mmapgen/pkg/types"
)

// Persisted keys, one section per partition role.
const (
	keyName       = "name"
	keyStart      = "start"
	keySize       = "size"
	keyBootable   = "bootable"
	keyType       = "type"
	keyFilesystem = "filesystem"
	keyComponents = "components"
)

// sections lists the roles an SD map persists, in file order.
var sections = []types.Role{types.RoleBoot, types.RoleRootfs}

// Save writes the partitions to path atomically.
func (m *Map) Save(path string) error {
	if len(m.parts) == 0 {
		return types.ErrNotGenerated
	}
	doc := &mmtext.Document{}
	for _, p := range m.parts {
		s, err := doc.AddSection(string(p.Role))
		if err != nil {
			return types.Wrap(types.ErrKindState, err, "partition %q", p.Name)
		}
		s.Set(keyName, p.Name)
		s.Set(keyStart, strconv.FormatUint(p.Start, 10))
		s.Set(keySize, p.Size.String())
		s.Set(keyBootable, strconv.FormatBool(p.Bootable))
		s.Set(keyType, string(p.Type))
		s.Set(keyFilesystem, string(p.Filesystem))
		s.Set(keyComponents, types.JoinComponents(p.Components))
	}
	if err := mmfile.WriteFile(path, doc.Bytes(), 0o644); err != nil {
		return types.Wrap(types.ErrKindIO, err, "save SD card memory map")
	}
	m.log.Info("generated SD card memory map", "path", path)
	return nil
}

// Read replaces the partitions with the ones stored at path. Missing keys
// take their zero value.
func (m *Map) Read(path string) error {
	m.parts = nil
	m.generated = false

	f, err := os.Open(path)
	if err != nil {
		return types.Wrap(types.ErrKindIO, err, "read SD card memory map")
	}
	defer f.Close()

	doc, err := mmtext.Parse(f)
	if err != nil {
		return types.Wrap(types.ErrKindFormat, err, "parse %s", path)
	}

	var parts []types.Partition
	for _, role := range sections {
		s, ok := doc.Section(string(role))
		if !ok {
			continue
		}
		p, err := decodePartition(role, s)
		if err != nil {
			return types.Wrap(types.ErrKindFormat, err, "%s: section [%s]", path, role)
		}
		parts = append(parts, p)
	}
	if len(parts) == 0 {
		return types.Errorf(types.ErrKindFormat, "%s: no boot or rootfs section", path)
	}
	if err := types.CheckLayout(parts); err != nil {
		return types.Wrap(types.ErrKindFormat, err, "%s", path)
	}

	m.parts = parts
	m.generated = true
	m.log.Debug("read SD card memory map", "path", path, "partitions", len(parts))
	return nil
}

func decodePartition(role types.Role, s *mmtext.Section) (types.Partition, error) {
	p := types.Partition{Role: role}
	p.Name, _ = s.Get(keyName)

	if v, ok := s.Get(keyStart); ok && v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return p, types.Errorf(types.ErrKindFormat, "invalid start %q", v)
		}
		p.Start = n
	}
	if v, ok := s.Get(keySize); ok && v != "" {
		size, err := types.ParseSize(v)
		if err != nil {
			return p, err
		}
		p.Size = size
	}
	if v, ok := s.Get(keyBootable); ok && v != "" {
		b, err := mmtext.ParseBool(v)
		if err != nil {
			return p, err
		}
		p.Bootable = b
	}
	if v, ok := s.Get(keyType); ok {
		p.Type = types.PartitionType(v)
	}
	if v, ok := s.Get(keyFilesystem); ok {
		p.Filesystem = types.Filesystem(v)
	}
	if v, ok := s.Get(keyComponents); ok {
		p.Components = types.SplitComponents(v)
	}
	return p, nil
}
