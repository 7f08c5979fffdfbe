package mmtext

import "errors"

var (
	// ErrMalformedSection indicates a section header without a closing bracket or name.
	ErrMalformedSection = errors.New("mmtext: malformed section header")
	// ErrEntryOutsideSection indicates a key/value line before the first section.
	ErrEntryOutsideSection = errors.New("mmtext: entry outside of a section")
	// ErrMalformedEntry indicates a line that is neither a header nor key/value.
	ErrMalformedEntry = errors.New("mmtext: malformed entry")
	// ErrDuplicateSection indicates a section name used twice.
	ErrDuplicateSection = errors.New("mmtext: duplicate section")
	// ErrDuplicateKey indicates a key used twice within one section.
	ErrDuplicateKey = errors.New("mmtext: duplicate key")
	// ErrInvalidBool indicates a value ParseBool does not recognise.
	ErrInvalidBool = errors.New("mmtext: not a boolean")
)
