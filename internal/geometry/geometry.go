// Package geometry holds the device geometry constants and the unit
// conversions used to place partitions. Every conversion from bytes to a
// device unit rounds up: a partition is never smaller than its payload.
package geometry

const (
	// KiB is one kibibyte.
	KiB uint64 = 1 << 10
	// MiB is one mebibyte; SD partition sizes are configured in these.
	MiB uint64 = 1 << 20

	// NANDBlockSize is the default NAND erase block size (bytes).
	NANDBlockSize uint64 = 131072
	// NANDPageSize is the default NAND page size (bytes).
	NANDPageSize uint64 = 2048

	// CylinderSize is the SD card cylinder size (bytes): 255 heads, 63
	// sectors per track, 512-byte sectors.
	CylinderSize uint64 = 255 * 63 * 512
)

// CeilDiv returns the number of unit-sized pieces needed to hold n.
// unit must be non-zero.
//
// Example:
//
//	CeilDiv(1, 4096)    = 1
//	CeilDiv(4096, 4096) = 1
//	CeilDiv(4097, 4096) = 2
func CeilDiv(n, unit uint64) uint64 {
	q := n / unit
	if n%unit != 0 {
		q++
	}
	return q
}

// BytesToBlocks returns the number of NAND blocks of blockSize bytes needed
// to hold size bytes.
//
// Example:
//
//	BytesToBlocks(300000, 131072) = 3
func BytesToBlocks(size, blockSize uint64) uint64 {
	return CeilDiv(size, blockSize)
}

// MBToCylinders returns the number of cylinders needed to hold mb mebibytes.
//
// Example:
//
//	MBToCylinders(64) = 9
func MBToCylinders(mb uint64) uint64 {
	return CeilDiv(mb*MiB, CylinderSize)
}

// BlocksToKiB returns the size of n blocks of blockSize bytes in KiB.
func BlocksToKiB(n, blockSize uint64) uint64 {
	return n * blockSize / KiB
}
