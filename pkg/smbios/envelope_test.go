package smbios_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenithax-cc/dmidecode/pkg/smbios"
	"github.com/zenithax-cc/dmidecode/pkg/smbios/smbiostest"
)

func TestParseEnvelope(t *testing.T) {
	raw := []byte{0x00, 0x03, 0x03, 0x00, 0x01, 0x00, 0x00, 0x00, 0xAB}

	require.True(t, smbios.IsValidEnvelope(raw))
	env, err := smbios.ParseEnvelope(raw)
	require.NoError(t, err)
	assert.Equal(t, smbios.Version{Major: 3, Minor: 3, Revision: 0}, env.Version())
	assert.Equal(t, []byte{0xAB}, env.Table)
	assert.Equal(t, uint32(1), env.Length)
	assert.Same(t, &raw[8], &env.Table[0])
}

func TestParseEnvelopeInvalid(t *testing.T) {
	tests := map[string][]byte{
		"too short":         {0x00, 0x03, 0x03},
		"header only":       {0x00, 0x03, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00},
		"length mismatch":   {0x00, 0x03, 0x03, 0x00, 0xFF, 0x00, 0x00, 0x00, 0xAB},
		"length too small":  {0x00, 0x03, 0x03, 0x00, 0x01, 0x00, 0x00, 0x00, 0xAB, 0xCD},
		"high length bytes": {0x00, 0x03, 0x03, 0x00, 0x01, 0x00, 0x00, 0x01, 0xAB},
	}

	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			assert.False(t, smbios.IsValidEnvelope(raw))
			_, err := smbios.ParseEnvelope(raw)
			assert.ErrorIs(t, err, smbios.ErrMalformedEnvelope)
		})
	}
}

func TestDecodeEnvelope(t *testing.T) {
	table := smbiostest.Table(
		smbiostest.Structure{Type: 1, Handle: 1, Formatted: smbiostest.NewArea(0x1B), Strings: []string{"Acme"}},
		smbiostest.EndOfTable(2),
	)
	raw := smbiostest.Envelope(3, 8, 0, table)

	env, c, err := smbios.DecodeEnvelope(raw)
	require.NoError(t, err)
	assert.Equal(t, smbios.Version{Major: 3, Minor: 8}, env.Version())
	assert.Equal(t, 2, c.Len())

	v, ok := c.Version()
	require.True(t, ok)
	assert.Equal(t, env.Version(), v)

	_, _, err = smbios.DecodeEnvelope(table)
	assert.ErrorIs(t, err, smbios.ErrMalformedEnvelope)
}

func TestEnvelopeBytes(t *testing.T) {
	table := smbiostest.Table(smbiostest.EndOfTable(1))

	raw := smbios.NewEnvelope(smbios.Version{Major: 3, Minor: 4, Revision: 1}, table).Bytes()
	assert.Equal(t, smbiostest.Envelope(3, 4, 1, table), raw)

	env, err := smbios.ParseEnvelope(raw)
	require.NoError(t, err)
	assert.Equal(t, table, env.Table)
}

func TestDecodeEnvelopeTruncatedTable(t *testing.T) {
	table := smbiostest.Table(
		smbiostest.Structure{Type: 1, Handle: 1, Formatted: smbiostest.NewArea(0x1B), Strings: []string{"Acme"}},
	)
	// The second structure claims more formatted bytes than remain.
	table = append(table, 0x02, 0x0F, 0x02, 0x00, 0x01)
	raw := smbiostest.Envelope(3, 2, 0, table)
	require.True(t, smbios.IsValidEnvelope(raw))

	env, c, err := smbios.DecodeEnvelope(raw)
	require.Error(t, err)
	assert.NotErrorIs(t, err, smbios.ErrMalformedEnvelope)
	assert.ErrorIs(t, err, smbios.ErrTruncatedStructure)

	var de *smbios.DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "formatted area", de.Op)

	require.NotNil(t, env)
	assert.Equal(t, smbios.Version{Major: 3, Minor: 2}, env.Version())
	require.NotNil(t, c)
	assert.Equal(t, 1, c.Len(), "structures before the damage are kept")
}
