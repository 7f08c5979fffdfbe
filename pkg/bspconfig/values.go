package bspconfig

import (
	"strconv"
	"strings"

	"github.com/joshuapare/mmapgen/pkg/types"
)

// Yes is the value of an enabled boolean option.
const Yes = "y"

// Enabled reports whether option is set to "y".
func Enabled(src Source, option string) bool {
	v, ok := src.Clean(option)
	return ok && v == Yes
}

// Int returns a decimal option value. ok is false when the option is absent.
// A present value that is not a non-negative integer is a configuration error.
func Int(src Source, option string) (n uint64, ok bool, err error) {
	v, ok := src.Clean(option)
	if !ok {
		return 0, false, nil
	}
	n, perr := strconv.ParseUint(v, 10, 64)
	if perr != nil {
		return 0, true, notInteger(option, v)
	}
	return n, true, nil
}

// Hex returns a hexadecimal option value; the 0x prefix is optional.
func Hex(src Source, option string) (n uint64, ok bool, err error) {
	v, ok := src.Clean(option)
	if !ok {
		return 0, false, nil
	}
	digits := strings.TrimPrefix(strings.TrimPrefix(v, "0x"), "0X")
	n, perr := strconv.ParseUint(digits, 16, 64)
	if perr != nil {
		return 0, true, types.OptionErrorf(types.ErrKindConfig, option,
			"%s must be a hexadecimal integer (%s)", option, v)
	}
	return n, true, nil
}

// Megabytes returns an option holding a size in MiB, or "-" for the rest of
// the device. The concrete variant counts MiB, not device units.
func Megabytes(src Source, option string) (size types.Size, ok bool, err error) {
	v, ok := src.Clean(option)
	if !ok {
		return types.Size{}, false, nil
	}
	if v == types.FullSentinel {
		return types.Full, true, nil
	}
	n, perr := strconv.ParseUint(v, 10, 64)
	if perr != nil {
		return types.Size{}, true, notInteger(option, v)
	}
	return types.Units(n), true, nil
}

func notInteger(option, value string) error {
	return types.OptionErrorf(types.ErrKindConfig, option, "%s must be an integer (%s)", option, value)
}
