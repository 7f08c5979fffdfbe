// Package mmap selects and drives the memory map for an installation mode.
//
// Typical use:
//
//	devdir, _ := mmap.ResolveDevDir("")
//	cfg, _ := mmap.LoadConfig(devdir)
//	m, _ := mmap.New(mmap.ModeNAND, cfg, mmap.Options{DevDir: devdir, Board: board.DM814x})
//	_, err := mmap.Run(ctx, m, mmap.RunOptions{Output: mmap.OutputPath(devdir, mmap.ModeNAND)})
package mmap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joshuapare/mmapgen/mmap/board"
	"github.com/joshuapare/mmapgen/mmap/nand"
	"github.com/joshuapare/mmapgen/mmap/sdcard"
	"github.com/joshuapare/mmapgen/pkg/bspconfig"
	"github.com/joshuapare/mmapgen/pkg/types"
)

// Mode is an installation mode.
type Mode string

const (
	ModeSD       Mode = "sd"
	ModeSDFS     Mode = "sd-fs"
	ModeSDScript Mode = "sd-script"
	ModeNAND     Mode = "nand"
)

// Modes returns every installation mode in command line order.
func Modes() []Mode {
	return []Mode{ModeSD, ModeSDFS, ModeSDScript, ModeNAND}
}

// ParseMode returns the mode with the given name.
func ParseMode(name string) (Mode, error) {
	for _, m := range Modes() {
		if string(m) == name {
			return m, nil
		}
	}
	names := make([]string, 0, len(Modes()))
	for _, m := range Modes() {
		names = append(names, string(m))
	}
	return "", fmt.Errorf("%w %q (supported: %s)", ErrUnknownMode, name, strings.Join(names, ", "))
}

// IsSD reports whether the mode produces an SD card map.
func (m Mode) IsSD() bool {
	return m == ModeSD || m == ModeSDFS || m == ModeSDScript
}

// Options configures New.
type Options struct {
	// DevDir is the development directory NAND image paths are resolved against.
	DevDir string

	// Board selects the NAND profile. Ignored by SD modes.
	Board board.Board

	// NANDBlockSize and NANDPageSize override the board geometry (bytes).
	// 0 keeps the board value.
	NANDBlockSize uint64
	NANDPageSize  uint64

	// Logger is handed to the memory map. Default: discards everything.
	Logger *slog.Logger
}

// New returns the empty memory map for mode, reading options from cfg.
func New(mode Mode, cfg bspconfig.Source, opts Options) (types.MemoryMap, error) {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	switch mode {
	case ModeSD:
		return sdcard.New(cfg, sdcard.Plain, sdcard.Options{Logger: log}), nil
	case ModeSDFS:
		return sdcard.New(cfg, sdcard.FilesystemOnly, sdcard.Options{Logger: log}), nil
	case ModeSDScript:
		return sdcard.New(cfg, sdcard.ExternalInstaller, sdcard.Options{Logger: log}), nil
	case ModeNAND:
		profile, err := opts.Board.Profile()
		if err != nil {
			return nil, err
		}
		return nand.New(cfg, profile, opts.DevDir, nand.Options{
			BlockSize: opts.NANDBlockSize,
			PageSize:  opts.NANDPageSize,
			Logger:    log,
		}), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownMode, mode)
	}
}

// ResolveDevDir returns dir, or $DEVDIR when dir is empty, without a
// trailing separator.
func ResolveDevDir(dir string) (string, error) {
	if dir == "" {
		dir = os.Getenv("DEVDIR")
	}
	if dir == "" {
		return "", ErrNoDevDir
	}
	if trimmed := strings.TrimRight(dir, "/"); trimmed != "" {
		dir = trimmed
	}
	return dir, nil
}

// BSPConfigPath returns the location of the bspconfig inside devdir.
func BSPConfigPath(devdir string) string {
	return filepath.Join(devdir, "bsp", "mach", "bspconfig")
}

// OutputPath returns where the map for mode is saved inside devdir.
func OutputPath(devdir string, mode Mode) string {
	return filepath.Join(devdir, "images", string(mode)+"-mmap.config")
}

// LoadConfig reads the bspconfig of devdir.
func LoadConfig(devdir string) (*bspconfig.Config, error) {
	return bspconfig.Load(BSPConfigPath(devdir))
}
