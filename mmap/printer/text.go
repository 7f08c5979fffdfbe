package printer

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/joshuapare/mmapgen/internal/geometry"
	"github.com/joshuapare/mmapgen/pkg/types"
)

var (
	sdHeaders = []string{
		"Name", "Start (cyl)", "Size* (cyl)", "Start (b)", "Size (b)",
		"Size (mb)", "Bootable", "Type", "Filesystem",
	}
	nandHeaders = []string{
		"Name", "Start blk", "Last blk", "Size* (blk)", "Offset", "Size (b)",
		"Size (mb)", "Filesystem",
	}

	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
)

// hexFormat renders byte offsets the way flash tools print them.
const hexFormat = "0x%08X"

// SDTable renders parts as an SD card table sorted by start cylinder.
func SDTable(parts []types.Partition) string {
	rows := make([][]string, 0, len(parts))
	for _, part := range byStart(parts) {
		startB := fmt.Sprintf(hexFormat, part.Start*geometry.CylinderSize)
		sizeB, sizeMB := types.FullSentinel, types.FullSentinel
		if !part.Size.IsFull() {
			b := part.Size.Units() * geometry.CylinderSize
			sizeB = strconv.FormatUint(b, 10)
			sizeMB = strconv.FormatUint(b>>20, 10)
		}
		bootable := ""
		if part.Bootable {
			bootable = "*"
		}
		rows = append(rows, []string{
			part.Name,
			strconv.FormatUint(part.Start, 10),
			part.Size.String(),
			startB,
			sizeB,
			sizeMB,
			bootable,
			part.Type.Name(),
			string(part.Filesystem),
		})
	}
	return render(sdHeaders, rows, map[int]bool{1: true, 2: true, 4: true, 5: true})
}

// NANDTable renders parts as a NAND table sorted by start block.
func NANDTable(parts []types.Partition, blockSize uint64) string {
	rows := make([][]string, 0, len(parts))
	for _, part := range byStart(parts) {
		size := part.Size.Units()
		last := types.FullSentinel
		if size > 0 {
			last = strconv.FormatUint(part.Start+size-1, 10)
		}
		sizeB := size * blockSize
		rows = append(rows, []string{
			part.Name,
			strconv.FormatUint(part.Start, 10),
			last,
			part.Size.String(),
			fmt.Sprintf(hexFormat, part.Start*blockSize),
			fmt.Sprintf(hexFormat, sizeB),
			fmt.Sprintf("%.2f", float64(sizeB)/float64(geometry.MiB)),
			string(part.Filesystem),
		})
	}
	return render(nandHeaders, rows, map[int]bool{1: true, 2: true, 3: true, 6: true})
}

func render(headers []string, rows [][]string, numeric map[int]bool) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case numeric[col]:
				return numberStyle
			default:
				return cellStyle
			}
		}).
		Headers(headers...).
		Rows(rows...)
	return t.String()
}

func byStart(parts []types.Partition) []types.Partition {
	sorted := slices.Clone(parts)
	slices.SortStableFunc(sorted, func(a, b types.Partition) int {
		switch {
		case a.Start < b.Start:
			return -1
		case a.Start > b.Start:
			return 1
		}
		return 0
	})
	return sorted
}

func (p *Printer) printSDText(parts []types.Partition) error {
	var sb strings.Builder
	if p.opts.Notes {
		sb.WriteString("\n  SD card memory map\n")
	}
	sb.WriteString(SDTable(parts))
	sb.WriteString("\n")
	if p.opts.Notes {
		fmt.Fprintf(&sb, "  * Cylinder size: %d (bytes)\n", geometry.CylinderSize)
		sb.WriteString("  ** Size '-' represents all the available space in the given storage device\n\n")
	}
	_, err := fmt.Fprint(p.writer, sb.String())
	return err
}

func (p *Printer) printNANDText(parts []types.Partition, blockSize uint64) error {
	var sb strings.Builder
	if p.opts.Notes {
		sb.WriteString("\n  NAND memory map\n")
	}
	sb.WriteString(NANDTable(parts, blockSize))
	sb.WriteString("\n")
	if p.opts.Notes {
		fmt.Fprintf(&sb, "  * NAND block size: %d (bytes)\n\n", blockSize)
	}
	_, err := fmt.Fprint(p.writer, sb.String())
	return err
}
