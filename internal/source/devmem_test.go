package source

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenithax-cc/dmidecode/pkg/smbios"
)

// memoryImage returns a 1 MiB image with the table at tableAddr and an
// entry point at epAddr.
func memoryImage(ep []byte, epAddr, tableAddr int, table []byte) []byte {
	mem := make([]byte, endAddr)
	copy(mem[epAddr:], ep)
	copy(mem[tableAddr:], table)
	return mem
}

func TestDevMemRead(t *testing.T) {
	table := sampleTable()
	fs := afero.NewMemMapFs()

	// A corrupt anchor comes first and must be skipped.
	mem := memoryImage(entryPoint64(3, 3, 0x000E0000, uint32(len(table))), 0x000F0100, 0x000E0000, table)
	copy(mem[0x000F0000:], "_SM3_ not an entry point")
	writeFile(t, fs, "/mem", mem)

	raw, err := (&DevMem{Fs: fs, Path: "/mem"}).Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, table, raw.Data)
	assert.Equal(t, &smbios.Version{Major: 3, Minor: 3}, raw.Version)
}

func TestDevMemMaximumSizeIsAnUpperBound(t *testing.T) {
	table := sampleTable()
	fs := afero.NewMemMapFs()

	tableAddr := endAddr - len(table)
	mem := memoryImage(entryPoint64(3, 0, uint64(tableAddr), 0x4000), 0x000F0000, tableAddr, table)
	writeFile(t, fs, "/mem", mem)

	raw, err := (&DevMem{Fs: fs, Path: "/mem"}).Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, table, raw.Data)
}

func TestDevMemErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/empty", make([]byte, endAddr))

	_, err := (&DevMem{Fs: fs, Path: "/empty"}).Read(context.Background())
	assert.ErrorIs(t, err, ErrEntryPointNotFound)

	_, err = (&DevMem{Fs: fs}).Read(context.Background())
	assert.ErrorIs(t, err, &Error{Op: "open", Path: "/dev/mem"})

	writeFile(t, fs, "/short", make([]byte, 0x1000))
	_, err = (&DevMem{Fs: fs, Path: "/short"}).Read(context.Background())
	assert.ErrorIs(t, err, &Error{Op: "read"})

	writeFile(t, fs, "/bad", memoryImage(entryPoint64(3, 0, 0x000E0000, 0), 0x000F0000, 0, nil))
	_, err = (&DevMem{Fs: fs, Path: "/bad"}).Read(context.Background())
	assert.ErrorIs(t, err, ErrInvalidTableLen)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = (&DevMem{Fs: fs, Path: "/empty"}).Read(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
