// Package board holds the per-board NAND profiles: flash geometry, the image
// each partition role is built from, the partition names and the fixed
// bootloader environment location.
//
// Every board is a complete Profile value. Placement logic lives in the nand
// package and is shared by all boards; a profile only supplies data.
package board

import (
	"errors"
	"fmt"
	"maps"
	"strings"

	"github.com/joshuapare/mmapgen/pkg/types"
)

// ErrUnknownBoard is returned by Parse for names outside All.
var ErrUnknownBoard = errors.New("board: unknown board")

// Board identifies a supported target board.
type Board int

const (
	DM36x Board = iota
	DM816x
	DM814x
	IMX6
	AM5728
)

var boardNames = [...]string{
	DM36x:  "dm36x",
	DM816x: "dm816x",
	DM814x: "dm814x",
	IMX6:   "imx6",
	AM5728: "am5728",
}

// All returns every supported board in a stable order.
func All() []Board {
	return []Board{DM36x, DM816x, DM814x, IMX6, AM5728}
}

// String returns the command line name of the board.
func (b Board) String() string {
	if int(b) >= 0 && int(b) < len(boardNames) {
		return boardNames[b]
	}
	return fmt.Sprintf("board(%d)", int(b))
}

// Parse returns the board with the given name. Matching ignores case.
func Parse(name string) (Board, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, b := range All() {
		if b.String() == name {
			return b, nil
		}
	}
	return 0, fmt.Errorf("%w %q (supported: %s)", ErrUnknownBoard, name, strings.Join(Names(), ", "))
}

// Names returns the names of All.
func Names() []string {
	out := make([]string, 0, len(boardNames))
	for _, b := range All() {
		out = append(out, b.String())
	}
	return out
}

// Profile is the immutable data a NAND memory map needs for one board.
// Image paths are relative to the development directory.
type Profile struct {
	Board     Board
	BlockSize uint64
	PageSize  uint64

	// Images maps a role to its image. A role missing from the map has no
	// image; the dtb step only runs when the profile has a dtb image.
	Images map[types.Role]string

	// MultiIPLImage is the IPL image used when several IPL copies are
	// requested. Empty when the board has no such image.
	MultiIPLImage string

	Names map[types.Role]string

	// EnvStart and EnvSize locate the bootloader environment, in blocks.
	// EnvSize 0 means the board has no environment partition.
	EnvStart uint64
	EnvSize  uint64
}

// Image returns the image for role.
func (p Profile) Image(role types.Role) (string, bool) {
	img, ok := p.Images[role]
	return img, ok && img != ""
}

// Name returns the partition name for role, or the role itself when the
// profile does not rename it.
func (p Profile) Name(role types.Role) string {
	if n, ok := p.Names[role]; ok && n != "" {
		return n
	}
	return string(role)
}

// HasEnv reports whether the board reserves a bootloader environment partition.
func (p Profile) HasEnv() bool { return p.EnvSize > 0 }

// Profile returns a copy of the board's profile; callers may modify it.
func (b Board) Profile() (Profile, error) {
	p, ok := profiles[b]
	if !ok {
		return Profile{}, fmt.Errorf("%w %s", ErrUnknownBoard, b)
	}
	p.Images = maps.Clone(p.Images)
	p.Names = maps.Clone(p.Names)
	return p, nil
}
