package smbios

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// SMBIOS 2.1 firmware often declares a 32-bit entry point length of 0x1E;
// dmidecode tolerates up to 0x20.
const (
	anchor32         = "_SM_"
	anchor64         = "_SM3_"
	anchorDMI        = "_DMI_"
	entry32Size      = 0x1F
	entry32MinLength = 0x1E
	entry32MaxLength = 0x20
	entry64Size      = 0x18
	anchorLength     = 5
)

// EntryPoint locates the structure table and carries the SMBIOS version.
type EntryPoint interface {
	// Table returns the physical address and the length (or, for 64-bit
	// entry points, the maximum length) of the structure table.
	Table() (int, int)
	Version() Version
}

// ParseEntryPoint decodes a 32-bit (_SM_) or 64-bit (_SM3_) entry point
// and verifies its checksums.
func ParseEntryPoint(b []byte) (EntryPoint, error) {
	switch {
	case bytes.HasPrefix(b, []byte(anchor64)):
		if len(b) < entry64Size {
			return nil, fmt.Errorf("%w: %d bytes for %s", ErrInvalidEntryPoint, len(b), anchor64)
		}
		ep := &EntryPoint64{}
		if err := ep.UnmarshalBinary(b[:entry64Size]); err != nil {
			return nil, err
		}
		return ep, nil
	case bytes.HasPrefix(b, []byte(anchor32)):
		if len(b) < entry32MinLength {
			return nil, fmt.Errorf("%w: %d bytes for %s", ErrInvalidEntryPoint, len(b), anchor32)
		}
		ep := &EntryPoint32{}
		if err := ep.UnmarshalBinary(b[:min(len(b), entry32MaxLength)]); err != nil {
			return nil, err
		}
		return ep, nil
	default:
		n := min(len(b), anchorLength)
		return nil, fmt.Errorf("%w: anchor %q", ErrInvalidEntryPoint, b[:n])
	}
}

// checksum returns the byte that makes data sum to zero when stored at
// skipIndex.
func checksum(data []byte, skipIndex int) uint8 {
	var sum uint8
	for i, b := range data {
		if i == skipIndex {
			continue
		}
		sum += b
	}
	return -sum
}

type EntryPoint32 struct {
	AnchorString             [4]uint8
	Checksum                 uint8
	Length                   uint8
	MajorVersion             uint8
	MinorVersion             uint8
	MaximumStructureSize     uint16
	Revision                 uint8
	FormattedArea            [5]uint8
	IntermediateAnchorString [5]uint8
	IntermediateChecksum     uint8
	TableLength              uint16
	TableAddress             uint32
	NumberOfStructures       uint16
	BCDRevision              uint8
}

func (e *EntryPoint32) Table() (int, int) {
	return int(e.TableAddress), int(e.TableLength)
}

func (e *EntryPoint32) Version() Version {
	return Version{Major: e.MajorVersion, Minor: e.MinorVersion}
}

// UnmarshalBinary accepts declared lengths 0x1E through 0x20. The
// checksum covers the declared length; a missing last byte reads as zero.
func (e *EntryPoint32) UnmarshalBinary(data []byte) error {
	if len(data) < entry32MinLength {
		return fmt.Errorf("%w: %d bytes", ErrInvalidEntryPoint, len(data))
	}
	length := int(data[0x05])
	if length < entry32MinLength || length > entry32MaxLength {
		return fmt.Errorf("%w: length %d", ErrInvalidEntryPoint, length)
	}
	if len(data) < length {
		return fmt.Errorf("%w: length %d, have %d bytes", ErrInvalidEntryPoint, length, len(data))
	}

	buf := make([]byte, entry32Size)
	copy(buf, data[:length])
	if err := binary.Read(bytes.NewReader(buf), binary.LittleEndian, e); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEntryPoint, err)
	}

	if e.Checksum != checksum(data[:length], 4) {
		return fmt.Errorf("%w: checksum 0x%02X", ErrInvalidEntryPoint, e.Checksum)
	}

	if !bytes.Equal(e.IntermediateAnchorString[:], []byte(anchorDMI)) {
		return fmt.Errorf("%w: intermediate anchor %q", ErrInvalidEntryPoint, e.IntermediateAnchorString[:])
	}

	if e.IntermediateChecksum != checksum(buf[0x10:], 5) {
		return fmt.Errorf("%w: intermediate checksum 0x%02X", ErrInvalidEntryPoint, e.IntermediateChecksum)
	}

	return nil
}

type EntryPoint64 struct {
	AnchorString          [5]uint8
	Checksum              uint8
	Length                uint8
	MajorVersion          uint8
	MinorVersion          uint8
	DocumentationRevision uint8
	Revision              uint8
	Reserved              uint8
	MaximumStructureSize  uint32
	TableAddress          uint64
}

func (e *EntryPoint64) Table() (int, int) {
	return int(e.TableAddress), int(e.MaximumStructureSize)
}

func (e *EntryPoint64) Version() Version {
	return Version{Major: e.MajorVersion, Minor: e.MinorVersion, Revision: e.DocumentationRevision}
}

func (e *EntryPoint64) UnmarshalBinary(data []byte) error {
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, e); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEntryPoint, err)
	}

	if e.Length != entry64Size {
		return fmt.Errorf("%w: length %d", ErrInvalidEntryPoint, e.Length)
	}

	if e.Checksum != checksum(data, 5) {
		return fmt.Errorf("%w: checksum 0x%02X", ErrInvalidEntryPoint, e.Checksum)
	}

	return nil
}
