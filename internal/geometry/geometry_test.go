package geometry

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCeilDiv(t *testing.T) {
	tests := []struct {
		n, unit, want uint64
	}{
		{0, 4096, 0},
		{1, 4096, 1},
		{4095, 4096, 1},
		{4096, 4096, 1},
		{4097, 4096, 2},
		{8192, 4096, 2},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%d", tt.n, tt.unit), func(t *testing.T) {
			require.Equal(t, tt.want, CeilDiv(tt.n, tt.unit))
		})
	}
}

func TestBytesToBlocks(t *testing.T) {
	require.Equal(t, uint64(3), BytesToBlocks(300000, NANDBlockSize))
	require.Equal(t, uint64(1), BytesToBlocks(1, 4096))
	require.Equal(t, uint64(2), BytesToBlocks(2*NANDBlockSize, NANDBlockSize))
}

func TestMBToCylinders(t *testing.T) {
	// 64 MiB = 67108864 bytes; 67108864 / 8225280 = 8.16 -> 9
	require.Equal(t, uint64(9), MBToCylinders(64))
	require.Equal(t, uint64(0), MBToCylinders(0))
	require.Equal(t, uint64(1), MBToCylinders(1))
	require.Equal(t, uint64(8225280), CylinderSize)
}

func TestBlocksToKiB(t *testing.T) {
	require.Equal(t, uint64(384), BlocksToKiB(3, NANDBlockSize))
	require.Equal(t, uint64(0), BlocksToKiB(0, NANDBlockSize))
}
