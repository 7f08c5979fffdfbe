package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/mmapgen/mmap"
	"github.com/joshuapare/mmapgen/mmap/printer"
	"github.com/joshuapare/mmapgen/pkg/bspconfig"
)

var (
	showMode   string
	showDevDir string
)

func init() {
	cmd := newShowCmd()
	cmd.Flags().StringVarP(&showMode, "mode", "m", "", "Installation mode of the saved map (sd, sd-fs, sd-script)")
	cmd.Flags().StringVar(&showDevDir, "devdir", "", "Development directory (default: $DEVDIR)")
	_ = cmd.MarkFlagRequired("mode")
	rootCmd.AddCommand(cmd)
}

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [file]",
		Short: "Print a saved SD card memory map",
		Long: `The show command reads a memory map written by 'mmapgen generate' and
prints it. Without a file argument the default output path of the mode is
used. NAND maps cannot be read back.

Example:
  mmapgen show --mode sd
  mmapgen show --mode sd-fs images/sd-fs-mmap.config
  mmapgen show --mode sd --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(args)
		},
	}
	return cmd
}

func runShow(args []string) error {
	mode, err := mmap.ParseMode(showMode)
	if err != nil {
		return err
	}
	if !mode.IsSD() {
		return fmt.Errorf("show: %s maps cannot be read back", mode)
	}

	var path string
	if len(args) > 0 {
		path = args[0]
	} else {
		devdir, err := mmap.ResolveDevDir(showDevDir)
		if err != nil {
			return err
		}
		path = mmap.OutputPath(devdir, mode)
	}

	m, err := mmap.New(mode, bspconfig.FromMap(nil), mmap.Options{Logger: newLogger(os.Stderr)})
	if err != nil {
		return err
	}

	printVerbose("Reading memory map: %s\n", path)
	if err := m.Read(path); err != nil {
		return fmt.Errorf("failed to read memory map: %w", err)
	}

	opts := printer.DefaultOptions()
	if jsonOut {
		opts.Format = printer.FormatJSON
	}
	return printer.New(os.Stdout, opts).Print(m.Partitions(), m.GenerateInfo())
}
