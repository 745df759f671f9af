package source

import (
	"context"
	"runtime"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenithax-cc/dmidecode/pkg/smbios"
	"github.com/zenithax-cc/dmidecode/pkg/smbios/smbiostest"
)

func sampleTable() []byte {
	return smbiostest.Table(
		smbiostest.Structure{Type: 0, Handle: 0, Formatted: smbiostest.NewArea(0x18), Strings: []string{"Vendor"}},
		smbiostest.Structure{Type: 1, Handle: 1, Formatted: smbiostest.NewArea(0x1B), Strings: []string{"Acme"}},
		smbiostest.EndOfTable(2),
	)
}

func TestValidateTableParams(t *testing.T) {
	tests := []struct {
		name string
		addr int
		len  int
		want error
	}{
		{name: "valid", addr: 0xEB000, len: 0x1000},
		{name: "negative address", addr: -1, len: 1, want: ErrInvalidTableAddr},
		{name: "zero length", addr: 0xEB000, len: 0, want: ErrInvalidTableLen},
		{name: "too long", addr: 0xEB000, len: maxTableSize + 1, want: ErrInvalidTableLen},
		{name: "overflow", addr: 0xFFFFFF00, len: 0x1000, want: ErrAddressOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTableParams(tt.addr, tt.len)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestErrorIs(t *testing.T) {
	err := &Error{Op: "open", Path: "/dev/mem", Err: afero.ErrFileNotFound}

	assert.ErrorIs(t, err, &Error{Op: "open"})
	assert.ErrorIs(t, err, &Error{Path: "/dev/mem"})
	assert.NotErrorIs(t, err, &Error{Op: "read"})
	assert.ErrorIs(t, err, afero.ErrFileNotFound)
	assert.Equal(t, "source open /dev/mem: file does not exist", err.Error())
}

func TestRawDecode(t *testing.T) {
	raw := &Raw{Data: sampleTable(), Version: &smbios.Version{Major: 2, Minor: 8}}
	c, err := raw.Decode()
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())
	v, ok := c.Version()
	require.True(t, ok)
	assert.Equal(t, smbios.Version{Major: 2, Minor: 8}, v)

	raw = &Raw{Data: smbiostest.Envelope(3, 4, 0, sampleTable()), Envelope: true}
	c, err = raw.Decode()
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())
	v, _ = c.Version()
	assert.Equal(t, smbios.Version{Major: 3, Minor: 4}, v)

	raw = &Raw{Data: sampleTable(), Envelope: true}
	_, err = raw.Decode()
	assert.ErrorIs(t, err, smbios.ErrMalformedEnvelope)
}

func TestNew(t *testing.T) {
	fs := afero.NewMemMapFs()

	s, err := New(KindFile, Options{Fs: fs, Path: "dump.bin"})
	require.NoError(t, err)
	assert.Equal(t, "file:dump.bin", s.Name())

	_, err = New(KindFile, Options{Fs: fs})
	assert.Error(t, err)

	_, err = New("bogus", Options{Fs: fs})
	assert.ErrorIs(t, err, ErrUnknownKind)

	for kind, name := range map[Kind]string{KindSysfs: "sysfs", KindDevMem: "devmem", KindFirmware: "firmware"} {
		s, err := New(kind, Options{Fs: fs})
		require.NoError(t, err)
		assert.Equal(t, name, s.Name())
	}
}

func TestDetect(t *testing.T) {
	if runtime.GOOS == "windows" {
		assert.IsType(t, Firmware{}, Detect(afero.NewMemMapFs()))
		return
	}

	fs := afero.NewMemMapFs()
	assert.IsType(t, &DevMem{}, Detect(fs))

	require.NoError(t, afero.WriteFile(fs, "/sys/firmware/dmi/tables/smbios_entry_point", []byte("_SM3_"), 0o444))
	assert.IsType(t, &Sysfs{}, Detect(fs))
}

func TestFirmwareUnsupported(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("firmware tables are available on windows")
	}
	_, err := Firmware{}.Read(context.Background())
	assert.ErrorIs(t, err, ErrUnsupported)
}
