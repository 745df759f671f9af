// Package smbiostest assembles raw SMBIOS tables for tests.
package smbiostest

import (
	"encoding/binary"
)

// Structure describes one raw structure. Length is derived from the
// formatted area unless set explicitly.
type Structure struct {
	Type      uint8
	Handle    uint16
	Formatted []byte
	Strings   []string
	// Length overrides the declared length when non-zero.
	Length uint8
}

// Bytes encodes the header, formatted area and string table.
func (s Structure) Bytes() []byte {
	length := s.Length
	if length == 0 {
		length = uint8(4 + len(s.Formatted))
	}

	b := []byte{s.Type, length, 0, 0}
	binary.LittleEndian.PutUint16(b[2:], s.Handle)
	b = append(b, s.Formatted...)

	if len(s.Strings) == 0 {
		return append(b, 0, 0)
	}
	for _, str := range s.Strings {
		b = append(b, str...)
		b = append(b, 0)
	}
	return append(b, 0)
}

func EndOfTable(handle uint16) Structure {
	return Structure{Type: 127, Handle: handle}
}

// Table concatenates the encoded structures.
func Table(structures ...Structure) []byte {
	var b []byte
	for _, s := range structures {
		b = append(b, s.Bytes()...)
	}
	return b
}

// Envelope prefixes table with a Windows RawSMBIOSData header.
func Envelope(major, minor, revision uint8, table []byte) []byte {
	b := make([]byte, 8, 8+len(table))
	b[1], b[2], b[3] = major, minor, revision
	binary.LittleEndian.PutUint32(b[4:], uint32(len(table)))
	return append(b, table...)
}

// Area is a formatted area addressed with structure-relative offsets, the
// way DSP0134 documents them (the header occupies offsets 0-3).
type Area []byte

// NewArea returns a zeroed formatted area for a structure whose declared
// length is length.
func NewArea(length int) Area {
	return make(Area, length-4)
}

func (a Area) Byte(offset int, v uint8) Area {
	a[offset-4] = v
	return a
}

func (a Area) Word(offset int, v uint16) Area {
	binary.LittleEndian.PutUint16(a[offset-4:], v)
	return a
}

func (a Area) Dword(offset int, v uint32) Area {
	binary.LittleEndian.PutUint32(a[offset-4:], v)
	return a
}

func (a Area) Qword(offset int, v uint64) Area {
	binary.LittleEndian.PutUint64(a[offset-4:], v)
	return a
}

func (a Area) Put(offset int, v []byte) Area {
	copy(a[offset-4:], v)
	return a
}
