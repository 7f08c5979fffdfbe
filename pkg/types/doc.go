// Package types defines the value types shared by every memory map
// implementation: partitions and their sizes, filesystem and partition type
// enumerations, the MemoryMap lifecycle interface, and typed errors.
//
// Sizes are an explicit two-variant value. A partition either occupies a
// concrete number of device units or the remainder of the device (Full); the
// remainder is only legal on the last partition of a map, which CheckLayout
// enforces.
//
// Errors carry a stable ErrKind so callers can tell configuration problems,
// missing inputs, violated placement constraints and I/O failures apart:
//
//	if types.IsKind(err, types.ErrKindConstraint) {
//		fmt.Println("offending option:", types.OptionOf(err))
//	}
//
// This package has no dependencies beyond the standard library.
package types
