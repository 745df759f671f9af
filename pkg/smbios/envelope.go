package smbios

import (
	"encoding/binary"
	"fmt"
)

const envelopeHeaderLength = 8

// Envelope is the RawSMBIOSData header Windows prepends to the structure
// table returned by GetSystemFirmwareTable('RSMB').
type Envelope struct {
	Used20CallingMethod uint8
	MajorVersion        uint8
	MinorVersion        uint8
	DMIRevision         uint8
	Length              uint32
	// Table is a view of the structure table that follows the header.
	Table []byte
}

// ParseEnvelope validates and splits an enveloped buffer. The declared
// length must match the number of bytes after the header exactly.
func ParseEnvelope(raw []byte) (*Envelope, error) {
	if len(raw) <= envelopeHeaderLength {
		return nil, fmt.Errorf("%w: %d bytes", ErrMalformedEnvelope, len(raw))
	}

	length := binary.LittleEndian.Uint32(raw[4:8])
	if uint64(length) != uint64(len(raw)-envelopeHeaderLength) {
		return nil, fmt.Errorf("%w: declared length %d, have %d", ErrMalformedEnvelope,
			length, len(raw)-envelopeHeaderLength)
	}

	return &Envelope{
		Used20CallingMethod: raw[0],
		MajorVersion:        raw[1],
		MinorVersion:        raw[2],
		DMIRevision:         raw[3],
		Length:              length,
		Table:               raw[envelopeHeaderLength:],
	}, nil
}

// IsValidEnvelope reports whether ParseEnvelope would accept raw.
func IsValidEnvelope(raw []byte) bool {
	return len(raw) > envelopeHeaderLength &&
		uint64(binary.LittleEndian.Uint32(raw[4:8])) == uint64(len(raw)-envelopeHeaderLength)
}

func (e *Envelope) Version() Version {
	return Version{Major: e.MajorVersion, Minor: e.MinorVersion, Revision: e.DMIRevision}
}

// DecodeEnvelope parses the envelope and decodes its table using the
// version it carries.
func DecodeEnvelope(raw []byte) (*Envelope, *Collection, error) {
	env, err := ParseEnvelope(raw)
	if err != nil {
		return nil, nil, err
	}
	v := env.Version()
	c, err := Decode(env.Table, &v)
	return env, c, err
}

// NewEnvelope wraps table in a RawSMBIOSData header for version v.
func NewEnvelope(v Version, table []byte) *Envelope {
	return &Envelope{
		MajorVersion: v.Major,
		MinorVersion: v.Minor,
		DMIRevision:  v.Revision,
		Length:       uint32(len(table)),
		Table:        table,
	}
}

// Bytes encodes the header followed by the table.
func (e *Envelope) Bytes() []byte {
	b := make([]byte, envelopeHeaderLength, envelopeHeaderLength+len(e.Table))
	b[0], b[1], b[2], b[3] = e.Used20CallingMethod, e.MajorVersion, e.MinorVersion, e.DMIRevision
	binary.LittleEndian.PutUint32(b[4:8], uint32(len(e.Table)))
	return append(b, e.Table...)
}
