package smbios_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenithax-cc/dmidecode/pkg/smbios"
	"github.com/zenithax-cc/dmidecode/pkg/smbios/smbiostest"
)

func sampleTable() []byte {
	return smbiostest.Table(
		smbiostest.Structure{Type: 0, Handle: 0x0000, Formatted: smbiostest.NewArea(0x18).Byte(0x04, 1), Strings: []string{"Acme"}},
		smbiostest.Structure{Type: 1, Handle: 0x0001, Formatted: smbiostest.NewArea(0x08)},
		smbiostest.Structure{Type: 200, Handle: 0x0002, Formatted: []byte{1, 2, 3}, Strings: []string{"oem", "data"}},
		smbiostest.EndOfTable(0x0003),
	)
}

func TestWalkEndOfTableOnly(t *testing.T) {
	buf := []byte{0x7F, 0x04, 0x00, 0x00, 0x00, 0x00}

	spans, err := smbios.Walk(buf)
	require.NoError(t, err)
	require.Len(t, spans, 1)
	assert.Equal(t, smbios.Header{Type: 127, Length: 4, Handle: 0}, spans[0].Header)
	assert.Equal(t, 6, spans[0].Size)
	assert.Equal(t, 0, spans[0].Strings().Len())
}

func TestWalkByteAccounting(t *testing.T) {
	buf := sampleTable()

	spans, err := smbios.Walk(buf)
	require.NoError(t, err)
	require.Len(t, spans, 4)

	next := 0
	for _, s := range spans {
		assert.Equal(t, next, s.Offset, "spans must be contiguous")
		assert.Equal(t, int(s.Header.Length), len(s.Data()))
		next += s.Size
	}
	assert.Equal(t, len(buf), next)
}

func TestWalkStopsAfterEndOfTable(t *testing.T) {
	buf := append(sampleTable(), 0xDE, 0xAD, 0xBE)

	spans, err := smbios.Walk(buf)
	require.NoError(t, err)
	require.Len(t, spans, 4)
	assert.Equal(t, uint8(127), spans[3].Header.Type)
}

func TestWalkWithoutEndOfTable(t *testing.T) {
	buf := smbiostest.Table(
		smbiostest.Structure{Type: 1, Handle: 1, Formatted: smbiostest.NewArea(0x08)},
		smbiostest.Structure{Type: 2, Handle: 2, Formatted: smbiostest.NewArea(0x08)},
	)

	spans, err := smbios.Walk(buf)
	require.NoError(t, err)
	assert.Len(t, spans, 2)
}

func TestWalkErrors(t *testing.T) {
	good := smbiostest.Structure{Type: 1, Handle: 1, Formatted: smbiostest.NewArea(0x08)}.Bytes()

	tests := []struct {
		name   string
		tail   []byte
		op     string
		target error
	}{
		{
			name:   "truncated header",
			tail:   []byte{0x02, 0x08},
			op:     "header",
			target: smbios.ErrTruncatedStructure,
		},
		{
			name:   "length below header size",
			tail:   []byte{0x02, 0x03, 0x00, 0x00, 0x00, 0x00},
			op:     "header",
			target: smbios.ErrMalformedHeader,
		},
		{
			name:   "formatted area past end",
			tail:   []byte{0x02, 0x20, 0x05, 0x00, 0x01, 0x02},
			op:     "formatted area",
			target: smbios.ErrTruncatedStructure,
		},
		{
			name:   "missing string terminator",
			tail:   []byte{0x02, 0x05, 0x05, 0x00, 0x01, 'a', 'b', 0x00},
			op:     "string table",
			target: smbios.ErrTruncatedStructure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := append(append([]byte{}, good...), tt.tail...)

			spans, err := smbios.Walk(buf)
			require.Error(t, err)
			assert.Len(t, spans, 1, "spans before the failure are kept")
			assert.ErrorIs(t, err, tt.target)

			var de *smbios.DecodeError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, len(good), de.Offset)
			assert.Equal(t, tt.op, de.Op)
			assert.ErrorIs(t, err, &smbios.DecodeError{Op: tt.op, Offset: -1})
		})
	}
}

func TestWalkerRestartsAndStopsEarly(t *testing.T) {
	w := smbios.NewWalker(sampleTable())

	var first, second []uint16
	for s, err := range w.Spans() {
		require.NoError(t, err)
		first = append(first, s.Header.Handle)
	}
	for s, err := range w.Spans() {
		require.NoError(t, err)
		second = append(second, s.Header.Handle)
		if len(second) == 2 {
			break
		}
	}

	assert.Equal(t, []uint16{0, 1, 2, 3}, first)
	assert.Equal(t, []uint16{0, 1}, second)
}

func TestWalkEmptyBuffer(t *testing.T) {
	spans, err := smbios.Walk(nil)
	require.NoError(t, err)
	assert.Empty(t, spans)
}

func TestParseHeader(t *testing.T) {
	h, err := smbios.ParseHeader([]byte{0x11, 0x28, 0x34, 0x12})
	require.NoError(t, err)
	assert.Equal(t, smbios.Header{Type: 17, Length: 0x28, Handle: 0x1234}, h)
	assert.Equal(t, "Handle 0x1234, DMI type 17, 40 bytes", h.String())

	_, err = smbios.ParseHeader([]byte{0x11})
	assert.ErrorIs(t, err, smbios.ErrTruncatedStructure)
}

func TestSpansErrorCarriesEmptySpan(t *testing.T) {
	buf := append(smbiostest.Structure{Type: 1, Handle: 1, Formatted: smbiostest.NewArea(0x08)}.Bytes(), 0x02, 0x08)

	var failed bool
	for span, err := range smbios.NewWalker(buf).Spans() {
		if err == nil {
			continue
		}
		failed = true
		assert.ErrorIs(t, err, smbios.ErrTruncatedStructure)
		assert.Nil(t, span.Formatted())
		assert.Empty(t, span.Data())
		assert.Zero(t, span.Strings().Len())
	}
	assert.True(t, failed)
}
