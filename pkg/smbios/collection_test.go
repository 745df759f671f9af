package smbios_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenithax-cc/dmidecode/pkg/smbios"
	"github.com/zenithax-cc/dmidecode/pkg/smbios/smbiostest"
)

func handlesOf(ss []smbios.Structure) []smbios.Handle {
	out := make([]smbios.Handle, 0, len(ss))
	for _, s := range ss {
		out = append(out, s.Handle())
	}
	return out
}

func TestCollectionIndices(t *testing.T) {
	buf := smbiostest.Table(
		smbiostest.Structure{Type: 17, Handle: 0x20, Formatted: smbiostest.NewArea(0x15)},
		smbiostest.Structure{Type: 4, Handle: 0x10, Formatted: smbiostest.NewArea(0x1A)},
		smbiostest.Structure{Type: 17, Handle: 0x21, Formatted: smbiostest.NewArea(0x15)},
		smbiostest.Structure{Type: 200, Handle: 0x20, Formatted: []byte{1}},
		smbiostest.EndOfTable(0xFEFF),
	)

	c, err := smbios.Decode(buf, nil)
	require.NoError(t, err)
	require.Equal(t, 5, c.Len())

	s, ok := c.ByHandle(0x20)
	require.True(t, ok)
	assert.Equal(t, smbios.TypeMemoryDevice, s.Type(), "first structure with a duplicated handle wins")

	_, ok = c.ByHandle(0x99)
	assert.False(t, ok)

	if diff := cmp.Diff([]smbios.Handle{0x20, 0x21}, handlesOf(c.ByType(smbios.TypeMemoryDevice))); diff != "" {
		t.Errorf("ByType mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, c.ByType(smbios.TypeBIOS))
	assert.Len(t, c.ByType(smbios.Type(200)), 1)

	var order []smbios.Handle
	for i, s := range c.All() {
		assert.Equal(t, len(order), i)
		order = append(order, s.Handle())
	}
	assert.Equal(t, []smbios.Handle{0x20, 0x10, 0x21, 0x20, 0xFEFF}, order)
	assert.Equal(t, order, handlesOf(c.Structures()))

	mems := smbios.Find[*smbios.MemoryDevice](c)
	assert.Len(t, mems, 2)

	cpu, ok := smbios.First[*smbios.ProcessorInformation](c)
	require.True(t, ok)
	assert.Equal(t, smbios.Handle(0x10), cpu.Handle())

	_, ok = smbios.First[*smbios.BIOSInformation](c)
	assert.False(t, ok)
}

func TestDecodeKeepsPartialCollection(t *testing.T) {
	buf := smbiostest.Table(
		smbiostest.Structure{Type: 0, Handle: 0, Formatted: smbiostest.NewArea(0x12)},
		smbiostest.Structure{Type: 1, Handle: 1, Formatted: smbiostest.NewArea(0x08)},
	)
	buf = append(buf, 0x02, 0x40, 0x02, 0x00)

	c, err := smbios.Decode(buf, nil)
	require.Error(t, err)
	require.NotNil(t, c)
	assert.ErrorIs(t, err, smbios.ErrTruncatedStructure)
	assert.Equal(t, 2, c.Len())

	_, ok := c.ByHandle(1)
	assert.True(t, ok)
}

func TestDecodeVersionIsCopied(t *testing.T) {
	v := smbios.Version{Major: 3, Minor: 2}
	c, err := smbios.Decode(smbiostest.Table(smbiostest.EndOfTable(0)), &v)
	require.NoError(t, err)

	v.Minor = 9
	got, ok := c.Version()
	require.True(t, ok)
	assert.Equal(t, smbios.Version{Major: 3, Minor: 2}, got)

	s, _ := c.ByHandle(0)
	sv, ok := s.Version()
	require.True(t, ok)
	assert.Equal(t, got, sv)
}

func TestDecodeWithoutVersion(t *testing.T) {
	c, err := smbios.Decode(smbiostest.Table(smbiostest.EndOfTable(0)), nil)
	require.NoError(t, err)
	_, ok := c.Version()
	assert.False(t, ok)
}
