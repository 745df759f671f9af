package smbios

import (
	"encoding/binary"
	"fmt"
)

// Header is the fixed four byte prefix of every SMBIOS structure.
type Header struct {
	Type   uint8
	Length uint8
	Handle uint16
}

const headerLength = 4

// ParseHeader decodes the structure header at the start of b.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < headerLength {
		return Header{}, fmt.Errorf("%w: %d bytes left for header", ErrTruncatedStructure, len(b))
	}

	h := Header{
		Type:   b[0],
		Length: b[1],
		Handle: binary.LittleEndian.Uint16(b[2:4]),
	}
	if h.Length < headerLength {
		return h, fmt.Errorf("%w: length %d", ErrMalformedHeader, h.Length)
	}

	return h, nil
}

func (h Header) String() string {
	return fmt.Sprintf("Handle 0x%04X, DMI type %d, %d bytes", h.Handle, h.Type, h.Length)
}
