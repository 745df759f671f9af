package smbios_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenithax-cc/dmidecode/pkg/smbios"
)

// fixChecksum stores at idx the byte that makes b sum to zero.
func fixChecksum(b []byte, idx int) {
	b[idx] = 0
	var sum uint8
	for _, c := range b {
		sum += c
	}
	b[idx] = -sum
}

func entryPoint32() []byte {
	b := make([]byte, 0x1F)
	copy(b, "_SM_")
	b[0x05] = 0x1F
	b[0x06], b[0x07] = 2, 8
	binary.LittleEndian.PutUint16(b[0x08:], 0x120)
	copy(b[0x10:], "_DMI_")
	binary.LittleEndian.PutUint16(b[0x16:], 0x0A4C)
	binary.LittleEndian.PutUint32(b[0x18:], 0x000EB000)
	binary.LittleEndian.PutUint16(b[0x1C:], 74)
	b[0x1E] = 0x28
	fixChecksum(b[0x10:], 5)
	fixChecksum(b, 4)
	return b
}

func entryPoint64() []byte {
	b := make([]byte, 0x18)
	copy(b, "_SM3_")
	b[0x06] = 0x18
	b[0x07], b[0x08], b[0x09] = 3, 6, 0
	b[0x0A] = 1
	binary.LittleEndian.PutUint32(b[0x0C:], 0x2C87)
	binary.LittleEndian.PutUint64(b[0x10:], 0x6F0FA000)
	fixChecksum(b, 5)
	return b
}

func TestParseEntryPoint32(t *testing.T) {
	ep, err := smbios.ParseEntryPoint(entryPoint32())
	require.NoError(t, err)
	require.IsType(t, &smbios.EntryPoint32{}, ep)

	addr, size := ep.Table()
	assert.Equal(t, 0x000EB000, addr)
	assert.Equal(t, 0x0A4C, size)
	assert.Equal(t, smbios.Version{Major: 2, Minor: 8}, ep.Version())
	assert.Equal(t, uint16(74), ep.(*smbios.EntryPoint32).NumberOfStructures)
}

func TestParseEntryPoint64(t *testing.T) {
	ep, err := smbios.ParseEntryPoint(entryPoint64())
	require.NoError(t, err)
	require.IsType(t, &smbios.EntryPoint64{}, ep)

	addr, size := ep.Table()
	assert.Equal(t, 0x6F0FA000, addr)
	assert.Equal(t, 0x2C87, size)
	assert.Equal(t, smbios.Version{Major: 3, Minor: 6}, ep.Version())
}

func TestParseEntryPointInvalid(t *testing.T) {
	badChecksum := entryPoint64()
	badChecksum[0x05]++

	badIntermediate := entryPoint32()
	badIntermediate[0x15]++
	fixChecksum(badIntermediate, 4)

	badAnchor := entryPoint32()
	copy(badAnchor[0x10:], "_XYZ_")
	fixChecksum(badAnchor[0x10:], 5)
	fixChecksum(badAnchor, 4)

	tooLong32 := append(entryPoint32(), 0, 0)
	tooLong32[0x05] = 0x21
	fixChecksum(tooLong32[:0x21], 4)

	badLength := entryPoint64()
	badLength[0x06] = 0x20
	fixChecksum(badLength, 5)

	tests := map[string][]byte{
		"unknown anchor":        []byte("_XX_"),
		"empty":                 nil,
		"short 64-bit":          []byte("_SM3_\x00\x18"),
		"short 32-bit":          entryPoint32()[:0x1E],
		"checksum":              badChecksum,
		"intermediate checksum": badIntermediate,
		"intermediate anchor":   badAnchor,
		"length":                badLength,
		"32-bit length":         tooLong32,
	}

	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			ep, err := smbios.ParseEntryPoint(raw)
			assert.ErrorIs(t, err, smbios.ErrInvalidEntryPoint)
			assert.Nil(t, ep)
		})
	}
}

func TestParseEntryPoint32Lengths(t *testing.T) {
	// SMBIOS 2.1 tables that declare 0x1E and omit the BCD revision byte.
	short := entryPoint32()[:0x1E]
	short[0x05] = 0x1E
	fixChecksum(short[0x10:], 5)
	fixChecksum(short, 4)

	long := append(entryPoint32(), 0x00)
	long[0x05] = 0x20
	fixChecksum(long, 4)

	for name, raw := range map[string][]byte{"0x1E": short, "0x20": long} {
		t.Run(name, func(t *testing.T) {
			ep, err := smbios.ParseEntryPoint(raw)
			require.NoError(t, err)
			assert.Equal(t, smbios.Version{Major: 2, Minor: 8}, ep.Version())

			addr, size := ep.Table()
			assert.Equal(t, 0x000EB000, addr)
			assert.Equal(t, 0x0A4C, size)
		})
	}
}
