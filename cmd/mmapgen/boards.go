package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/mmapgen/mmap/board"
	"github.com/joshuapare/mmapgen/pkg/types"
)

func init() {
	rootCmd.AddCommand(newBoardsCmd())
}

func newBoardsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "boards",
		Short: "List the boards supported by NAND memory maps",
		Long: `The boards command lists every supported board with its default NAND
geometry and the images its partitions are built from.

Example:
  mmapgen boards
  mmapgen boards --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBoards()
		},
	}
	return cmd
}

type boardImage struct {
	Partition string `json:"partition"`
	Image     string `json:"image"`
}

type boardInfo struct {
	Name      string       `json:"name"`
	BlockSize uint64       `json:"block_size"`
	PageSize  uint64       `json:"page_size"`
	Images    []boardImage `json:"images"`
	EnvStart  uint64       `json:"env_start_blk,omitempty"`
	EnvSize   uint64       `json:"env_size_blks,omitempty"`
}

var boardRoles = []types.Role{
	types.RoleIPL,
	types.RoleBootloader,
	types.RoleDTB,
	types.RoleKernel,
	types.RoleFS,
}

func runBoards() error {
	var boards []boardInfo
	for _, b := range board.All() {
		p, err := b.Profile()
		if err != nil {
			return err
		}
		bi := boardInfo{
			Name:      b.String(),
			BlockSize: p.BlockSize,
			PageSize:  p.PageSize,
			EnvStart:  p.EnvStart,
			EnvSize:   p.EnvSize,
		}
		for _, role := range boardRoles {
			if img, ok := p.Image(role); ok {
				bi.Images = append(bi.Images, boardImage{Partition: p.Name(role), Image: img})
			}
		}
		boards = append(boards, bi)
	}

	if jsonOut {
		return printJSON(map[string]any{
			"boards": boards,
			"count":  len(boards),
		})
	}

	for i, bi := range boards {
		if i > 0 {
			printInfo("\n")
		}
		printInfo("%s\n", bi.Name)
		printInfo("  Block size: %d bytes\n", bi.BlockSize)
		printInfo("  Page size:  %d bytes\n", bi.PageSize)
		if bi.EnvSize > 0 {
			printInfo("  Bootloader env: block %d (%d blocks)\n", bi.EnvStart, bi.EnvSize)
		}
		for _, img := range bi.Images {
			printInfo("  %-11s %s\n", fmt.Sprintf("%s:", img.Partition), img.Image)
		}
	}
	return nil
}
