package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/mmapgen/mmap"
	"github.com/joshuapare/mmapgen/mmap/board"
	"github.com/joshuapare/mmapgen/mmap/printer"
)

var (
	generateMode      string
	generateBoard     string
	generateDevDir    string
	generateOutput    string
	generateBlockSize uint64
	generatePageSize  uint64
	generateDraw      bool
)

func init() {
	cmd := newGenerateCmd()
	cmd.Flags().StringVarP(&generateMode, "mode", "m", "", "Installation mode (sd, sd-fs, sd-script, nand)")
	cmd.Flags().StringVar(&generateBoard, "board", "", "Target board for NAND maps (see 'mmapgen boards')")
	cmd.Flags().StringVar(&generateDevDir, "devdir", "", "Development directory (default: $DEVDIR)")
	cmd.Flags().
		StringVarP(&generateOutput, "output", "o", "", "Output file (default: <devdir>/images/<mode>-mmap.config)")
	cmd.Flags().Uint64Var(&generateBlockSize, "nand-block-size", 0, "NAND erase block size in bytes (0 = board default)")
	cmd.Flags().Uint64Var(&generatePageSize, "nand-page-size", 0, "NAND page size in bytes (0 = board default)")
	cmd.Flags().BoolVar(&generateDraw, "draw", false, "Print the memory map table")
	_ = cmd.MarkFlagRequired("mode")
	rootCmd.AddCommand(cmd)
}

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Compute and save the memory map for an installation mode",
		Long: `The generate command validates the bspconfig, computes the partition
layout for the selected installation mode and saves it for the installer.

Example:
  mmapgen generate --mode sd --draw
  mmapgen generate --mode sd-script --devdir /opt/sdk
  mmapgen generate --mode nand --board dm814x --nand-block-size 131072
  mmapgen generate --mode nand --board am5728 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context())
		},
	}
	return cmd
}

func runGenerate(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := generate(ctx); err != nil {
		return fmt.Errorf("memory map generation aborted: %w", err)
	}
	return nil
}

func generate(ctx context.Context) error {
	mode, err := mmap.ParseMode(generateMode)
	if err != nil {
		return err
	}

	opts := mmap.Options{
		NANDBlockSize: generateBlockSize,
		NANDPageSize:  generatePageSize,
		Logger:        newLogger(os.Stderr),
	}
	if mode == mmap.ModeNAND {
		if generateBoard == "" {
			return errors.New("--board is required for nand mode")
		}
		opts.Board, err = board.Parse(generateBoard)
		if err != nil {
			return err
		}
	}

	devdir, err := mmap.ResolveDevDir(generateDevDir)
	if err != nil {
		return err
	}
	opts.DevDir = devdir

	printVerbose("Reading bspconfig: %s\n", mmap.BSPConfigPath(devdir))
	cfg, err := mmap.LoadConfig(devdir)
	if err != nil {
		return err
	}

	m, err := mmap.New(mode, cfg, opts)
	if err != nil {
		return err
	}

	out := generateOutput
	if out == "" {
		out = mmap.OutputPath(devdir, mode)
	}
	var draw io.Writer
	if generateDraw && !jsonOut && !quiet {
		draw = os.Stdout
	}

	info, err := mmap.Run(ctx, m, mmap.RunOptions{Output: out, Draw: draw})
	if err != nil {
		return err
	}

	if jsonOut {
		p := printer.New(os.Stdout, printer.Options{Format: printer.FormatJSON})
		return p.Print(m.Partitions(), info)
	}

	printInfo("Memory map saved to %s\n", out)
	if info.Mtdparts != "" {
		printVerbose("mtdparts: %s\n", info.Mtdparts)
	}
	return nil
}
