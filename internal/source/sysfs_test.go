package source

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenithax-cc/dmidecode/pkg/smbios"
)

func TestSysfsRead(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/sys/firmware/dmi/tables/DMI", sampleTable())
	writeFile(t, fs, "/sys/firmware/dmi/tables/smbios_entry_point", entryPoint64(3, 6, 0x6F0FA000, 0x2000))

	s := &Sysfs{Fs: fs}
	raw, err := s.Read(context.Background())
	require.NoError(t, err)
	assert.False(t, raw.Envelope)
	assert.Equal(t, &smbios.Version{Major: 3, Minor: 6}, raw.Version)
	assert.Equal(t, sampleTable(), raw.Data)
}

func TestSysfsReadWithoutEntryPoint(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/tables/DMI", sampleTable())

	raw, err := (&Sysfs{Fs: fs, Root: "/tables"}).Read(context.Background())
	require.NoError(t, err)
	assert.Nil(t, raw.Version)

	writeFile(t, fs, "/tables/smbios_entry_point", []byte("_SM3_garbage"))
	raw, err = (&Sysfs{Fs: fs, Root: "/tables"}).Read(context.Background())
	require.NoError(t, err)
	assert.Nil(t, raw.Version)
}

func TestSysfsMissingTable(t *testing.T) {
	_, err := (&Sysfs{Fs: afero.NewMemMapFs()}).Read(context.Background())
	assert.ErrorIs(t, err, &Error{Op: "open", Path: "/sys/firmware/dmi/tables/DMI"})
}
