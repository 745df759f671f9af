package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenithax-cc/dmidecode/internal/config"
	"github.com/zenithax-cc/dmidecode/internal/output"
	"github.com/zenithax-cc/dmidecode/internal/source"
	"github.com/zenithax-cc/dmidecode/pkg/smbios"
	"github.com/zenithax-cc/dmidecode/pkg/smbios/smbiostest"
)

func sampleTable() []byte {
	system := smbiostest.NewArea(0x1B).Byte(0x04, 1).Byte(0x05, 2).Byte(0x07, 3)
	board := smbiostest.NewArea(0x0F).Byte(0x04, 1).Byte(0x05, 2).Byte(0x0D, 0x0A)
	return smbiostest.Table(
		smbiostest.Structure{Type: 1, Handle: 1, Formatted: system, Strings: []string{"Acme", "Widget", "SN123"}},
		smbiostest.Structure{Type: 2, Handle: 2, Formatted: board, Strings: []string{"Acme", "Board"}},
		smbiostest.EndOfTable(3),
	)
}

func testFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/dumps/a.bin", sampleTable(), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/dumps/b.bin",
		smbiostest.Envelope(3, 4, 0, sampleTable()), 0o644))
	return fs
}

func run(t *testing.T, fs afero.Fs, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(fs)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append(args, "--no-color", "--log-level", "error"))
	err := cmd.Execute()
	return out.String(), err
}

func TestList(t *testing.T) {
	out, err := run(t, testFs(t), "list", "-f", "/dumps/a.bin", "--smbios-version", "3.3")
	require.NoError(t, err)

	assert.Contains(t, out, "0x0001")
	assert.Contains(t, out, "System Information")
	assert.Contains(t, out, "Base Board Information")
	assert.Contains(t, out, "End Of Table")
}

func TestShowFilters(t *testing.T) {
	fs := testFs(t)

	out, err := run(t, fs, "show", "-f", "/dumps/a.bin", "-t", "system", "-o", "json")
	require.NoError(t, err)
	var records []output.Record
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "System Information", records[0].Name)

	out, err = run(t, fs, "show", "-f", "/dumps/a.bin", "-H", "0x0002")
	require.NoError(t, err)
	assert.Contains(t, out, "Handle 0x0002, DMI type 2, 15 bytes\nBase Board Information\n")
	assert.Contains(t, out, "\tManufacturer: Acme\n")
	assert.NotContains(t, out, "System Information")

	out, err = run(t, fs, "show", "-f", "/dumps/a.bin", "-t", "1", "-H", "2")
	require.NoError(t, err)
	assert.Empty(t, strings.TrimSpace(out))

	_, err = run(t, fs, "show", "-f", "/dumps/a.bin", "-t", "nonsense")
	assert.ErrorIs(t, err, errUnknownType)
}

func TestString(t *testing.T) {
	fs := testFs(t)

	out, err := run(t, fs, "string", "system-serial-number", "-f", "/dumps/b.bin")
	require.NoError(t, err)
	assert.Equal(t, "SN123\n", out)

	out, err = run(t, fs, "string", "baseboard-product-name", "-f", "/dumps/a.bin", "-o", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `["Board"]`, out)

	_, err = run(t, fs, "string", "cpu-speed", "-f", "/dumps/a.bin")
	assert.ErrorIs(t, err, errUnknownKeyword)
}

func TestMultipleFiles(t *testing.T) {
	out, err := run(t, testFs(t), "string", "system-manufacturer",
		"-f", "/dumps/a.bin,/dumps/b.bin", "-o", "json", "-j", "2")
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"source": "file:/dumps/a.bin", "data": ["Acme"]},
		{"source": "file:/dumps/b.bin", "data": ["Acme"]}
	]`, out)

	out, err = run(t, testFs(t), "string", "system-manufacturer", "-f", "/dumps/a.bin,/dumps/b.bin")
	require.NoError(t, err)
	assert.Equal(t, "# file:/dumps/a.bin\n\nAcme\n# file:/dumps/b.bin\n\nAcme\n", out)

	_, err = run(t, testFs(t), "list", "-f", "/dumps/a.bin,/dumps/missing.bin")
	assert.Error(t, err)
}

func TestInventory(t *testing.T) {
	out, err := run(t, testFs(t), "inventory", "-f", "/dumps/b.bin", "-o", "json")
	require.NoError(t, err, "missing sections are not fatal")

	var inv struct {
		System struct {
			Manufacturer string `json:"manufacturer"`
			SerialNumber string `json:"serial_number"`
		} `json:"system"`
		BaseBoard struct {
			ProductName string `json:"product_name"`
		} `json:"base_board"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &inv))
	assert.Equal(t, "Acme", inv.System.Manufacturer)
	assert.Equal(t, "SN123", inv.System.SerialNumber)
	assert.Equal(t, "Board", inv.BaseBoard.ProductName)
}

func TestDump(t *testing.T) {
	fs := testFs(t)

	_, err := run(t, fs, "dump", "-f", "/dumps/a.bin", "--smbios-version", "3.3", "--out", "/out/wrapped.bin", "--wrap")
	require.NoError(t, err)
	data, err := afero.ReadFile(fs, "/out/wrapped.bin")
	require.NoError(t, err)
	env, err := smbios.ParseEnvelope(data)
	require.NoError(t, err)
	assert.Equal(t, smbios.Version{Major: 3, Minor: 3}, env.Version())
	assert.Equal(t, sampleTable(), env.Table)

	_, err = run(t, fs, "dump", "-f", "/dumps/b.bin", "--out", "/out/bare.bin")
	require.NoError(t, err)
	data, err = afero.ReadFile(fs, "/out/bare.bin")
	require.NoError(t, err)
	assert.Equal(t, sampleTable(), data)

	_, err = run(t, fs, "dump", "-f", "/dumps/a.bin,/dumps/b.bin", "--out", "/out/x.bin")
	assert.ErrorIs(t, err, errSingleTable)

	_, err = run(t, fs, "dump", "-f", "/dumps/a.bin")
	assert.Error(t, err, "--out is required")
}

func TestConfigFile(t *testing.T) {
	fs := testFs(t)
	require.NoError(t, afero.WriteFile(fs, "/etc/dmidecode.yaml", []byte(`
format: json
files:
  - /dumps/b.bin
`), 0o644))

	out, err := run(t, fs, "string", "system-product-name", "-c", "/etc/dmidecode.yaml")
	require.NoError(t, err)
	assert.JSONEq(t, `["Widget"]`, out)

	out, err = run(t, fs, "string", "system-product-name", "-c", "/etc/dmidecode.yaml", "-o", "text")
	require.NoError(t, err)
	assert.Equal(t, "Widget\n", out, "flags override the file")

	_, err = run(t, fs, "list", "-c", "/etc/dmidecode.yaml", "-o", "xml")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestParseTypes(t *testing.T) {
	types, err := parseTypes([]string{"bios", "4", "0x11", "BIOS"})
	require.NoError(t, err)
	assert.Equal(t, []smbios.Type{smbios.TypeBIOS, smbios.TypeProcessor, smbios.TypeBIOSLanguage, smbios.TypeMemoryDevice}, types)

	_, err = parseTypes([]string{"256"})
	assert.ErrorIs(t, err, errUnknownType)

	h, err := parseHandle("0x1F")
	require.NoError(t, err)
	assert.Equal(t, smbios.Handle(0x1F), h)

	_, err = parseHandle("65536")
	assert.ErrorIs(t, err, errBadHandle)
}

func TestEnvelope(t *testing.T) {
	fs := testFs(t)

	out, err := run(t, fs, "envelope", "/dumps/b.bin", "-o", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `[{
		"path": "/dumps/b.bin",
		"used_20_calling_method": false,
		"version": "3.4.0",
		"table_length": 79,
		"structures": 3
	}]`, out)

	out, err = run(t, fs, "envelope", "/dumps/b.bin")
	require.NoError(t, err)
	assert.Contains(t, out, "SMBIOS Version")
	assert.Contains(t, out, "3.4.0")

	_, err = run(t, fs, "envelope", "/dumps/a.bin")
	assert.ErrorIs(t, err, smbios.ErrMalformedEnvelope)
}

func TestEnvelopeFileHandling(t *testing.T) {
	fs := testFs(t)
	require.NoError(t, afero.WriteFile(fs, "/dumps/huge.bin", make([]byte, 2<<20), 0o644))

	_, err := run(t, fs, "envelope", "/dumps/huge.bin")
	assert.ErrorIs(t, err, source.ErrTableTooLarge)

	out, err := run(t, fs, "envelope", "-f", "/dumps/b.bin", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"path": "/dumps/b.bin"`)

	_, err = run(t, fs, "envelope")
	assert.ErrorIs(t, err, errNoEnvelopeFile)
}

func TestPositionalFiles(t *testing.T) {
	fs := testFs(t)

	out, err := run(t, fs, "string", "system-product-name", "/dumps/a.bin", "/dumps/b.bin", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "file:/dumps/a.bin")
	assert.Contains(t, out, "file:/dumps/b.bin")

	out, err = run(t, fs, "list", "/dumps/b.bin", "-o", "json")
	require.NoError(t, err)
	var summary []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	require.Len(t, summary, 3)
	assert.Equal(t, "0x0002", summary[1]["handle"])
}
