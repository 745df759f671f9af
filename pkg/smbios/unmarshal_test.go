package smbios_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenithax-cc/dmidecode/pkg/smbios"
	"github.com/zenithax-cc/dmidecode/pkg/smbios/smbiostest"
)

type releaseInfo struct {
	Major uint8
	Minor uint8
}

type biosRecord struct {
	Vendor    string
	Version   string
	Segment   uint16
	Date      string
	ROMSize   uint8
	Chars     uint64
	Ext1      uint8 `smbios:"skip=0"`
	Ext2      uint8
	Release   releaseInfo
	EC        releaseInfo
	ExtROM    uint16      `smbios:"default=16"`
	Ignored   string      `smbios:"-"`
	unexposed int
}

func TestUnmarshal(t *testing.T) {
	area := smbiostest.NewArea(0x16).
		Byte(0x04, 1).
		Byte(0x05, 2).
		Word(0x06, 0xE800).
		Byte(0x08, 3).
		Byte(0x09, 0x3F).
		Qword(0x0A, 0x0B).
		Byte(0x12, 0x03).
		Byte(0x13, 0x0D).
		Byte(0x14, 5).
		Byte(0x15, 23)

	s := decodeOne(t, smbiostest.Structure{
		Type:      0,
		Formatted: area,
		Strings:   []string{"Dell Inc.", "2.19.0", "04/11/2023"},
	}, nil)

	rec := biosRecord{Ignored: "keep"}
	require.NoError(t, smbios.Unmarshal(s, &rec))

	assert.Equal(t, biosRecord{
		Vendor:  "Dell Inc.",
		Version: "2.19.0",
		Segment: 0xE800,
		Date:    "04/11/2023",
		ROMSize: 0x3F,
		Chars:   0x0B,
		Ext1:    0x03,
		Ext2:    0x0D,
		Release: releaseInfo{Major: 5, Minor: 23},
		EC:      releaseInfo{},
		ExtROM:  16,
		Ignored: "keep",
	}, rec)
}

func TestUnmarshalSkip(t *testing.T) {
	var rec struct {
		Count uint8 `smbios:"skip=2"`
		Last  uint8
	}
	s := decodeOne(t, smbiostest.Structure{Type: 200, Formatted: []byte{1, 2, 3, 4}}, nil)
	require.NoError(t, smbios.Unmarshal(s, &rec))
	assert.Equal(t, uint8(3), rec.Count)
	assert.Equal(t, uint8(4), rec.Last)
}

func TestUnmarshalErrors(t *testing.T) {
	s := decodeOne(t, smbiostest.Structure{Type: 200, Formatted: []byte{1}}, nil)

	var notPointer struct{}
	assert.ErrorIs(t, smbios.Unmarshal(s, notPointer), smbios.ErrUnsupportedField)

	var n int
	assert.ErrorIs(t, smbios.Unmarshal(s, &n), smbios.ErrUnsupportedField)

	var bad struct {
		F float32
	}
	assert.ErrorIs(t, smbios.Unmarshal(s, &bad), smbios.ErrUnsupportedField)

	var badTag struct {
		F uint8 `smbios:"skip=x"`
	}
	assert.Error(t, smbios.Unmarshal(s, &badTag))
}
