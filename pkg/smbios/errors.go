package smbios

import (
	"errors"
	"fmt"
)

var (
	ErrTruncatedStructure = errors.New("smbios: truncated structure")
	ErrMalformedHeader    = errors.New("smbios: malformed structure header")
	ErrMalformedEnvelope  = errors.New("smbios: malformed envelope")
	ErrInvalidEntryPoint  = errors.New("smbios: invalid entry point")
)

// DecodeError ties a walker failure to the byte offset of the structure
// that could not be decoded.
type DecodeError struct {
	Op     string
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("smbios %s at offset 0x%X: %v", e.Op, e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is matches another *DecodeError with the same Op and Offset. An empty Op
// or a negative Offset in the target matches anything.
func (e *DecodeError) Is(target error) bool {
	t, ok := target.(*DecodeError)
	if !ok {
		return false
	}
	return (t.Op == "" || e.Op == t.Op) && (t.Offset < 0 || e.Offset == t.Offset)
}
