package filter

import (
	"errors"
	"fmt"
)

// Error classes. Every error returned by this module matches exactly one of
// these with errors.Is.
var (
	ErrConfiguration = errors.New("abloom: invalid configuration")
	ErrType          = errors.New("abloom: unsupported value type")
	ErrEncoding      = errors.New("abloom: value cannot be encoded")
	ErrFormat        = errors.New("abloom: malformed filter data")
	ErrResource      = errors.New("abloom: cannot allocate block storage")
)

var (
	ErrZeroCapacity    = fmt.Errorf("%w: capacity must be greater than 0", ErrConfiguration)
	ErrFPRateRange     = fmt.Errorf("%w: false positive rate must be between 0.0 and 1.0", ErrConfiguration)
	ErrMismatch        = fmt.Errorf("%w: filters must have the same capacity, fp_rate, and serializable", ErrConfiguration)
	ErrNotSerializable = fmt.Errorf("%w: serialization requires a serializable filter", ErrConfiguration)

	ErrInvalidUTF8 = fmt.Errorf("%w: text is not valid UTF-8", ErrEncoding)

	ErrTooShort           = fmt.Errorf("%w: too short for header", ErrFormat)
	ErrBadMagic           = fmt.Errorf("%w: wrong magic bytes", ErrFormat)
	ErrUnsupportedVersion = fmt.Errorf("%w: unsupported version", ErrFormat)
	ErrLengthMismatch     = fmt.Errorf("%w: length does not match block count", ErrFormat)
	ErrBadCapacity        = fmt.Errorf("%w: capacity is 0", ErrFormat)
	ErrBadFPRate          = fmt.Errorf("%w: fp_rate out of range", ErrFormat)
	ErrBadBlockCount      = fmt.Errorf("%w: block count is 0", ErrFormat)
)
