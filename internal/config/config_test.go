package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenithax-cc/dmidecode/internal/output"
	"github.com/zenithax-cc/dmidecode/internal/source"
	"github.com/zenithax-cc/dmidecode/pkg/smbios"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(afero.NewMemMapFs(), "")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/etc/dmidecode.yaml", []byte(`
source: file
envelope: "no"
format: json
version: "3.4"
files:
  - /var/dumps/a.bin
  - /var/dumps/b.bin
`), 0o644))

	cfg, err := Load(fs, "/etc/dmidecode.yaml")
	require.NoError(t, err)

	assert.Equal(t, source.KindFile, cfg.Source)
	assert.Equal(t, source.EnvelopeNo, cfg.Envelope)
	assert.Equal(t, output.FormatJSON, cfg.Format)
	assert.Equal(t, "info", cfg.LogLevel, "unset keys keep defaults")
	assert.Equal(t, 4, cfg.Workers)
	assert.Len(t, cfg.Files, 2)

	v, err := cfg.SmbiosVersion()
	require.NoError(t, err)
	assert.Equal(t, &smbios.Version{Major: 3, Minor: 4}, v)
}

func TestLoadErrors(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := Load(fs, "/missing.yaml")
	assert.Error(t, err)

	require.NoError(t, afero.WriteFile(fs, "/broken.yaml", []byte("source: ["), 0o644))
	_, err = Load(fs, "/broken.yaml")
	assert.Error(t, err)

	require.NoError(t, afero.WriteFile(fs, "/invalid.yaml", []byte("format: xml\nworkers: 0\n"), 0o644))
	_, err = Load(fs, "/invalid.yaml")
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorContains(t, err, `format "xml"`)
	assert.ErrorContains(t, err, "workers")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{name: "defaults", mutate: func(*Config) {}, ok: true},
		{name: "unknown source", mutate: func(c *Config) { c.Source = "bios" }},
		{name: "unknown envelope", mutate: func(c *Config) { c.Envelope = "maybe" }},
		{name: "file without files", mutate: func(c *Config) { c.Source = source.KindFile }},
		{name: "bad version", mutate: func(c *Config) { c.Version = "three" }},
		{name: "version", mutate: func(c *Config) { c.Version = "2.7.1" }, ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestReadSkipsValidation(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/partial.yaml", []byte("source: file\n"), 0o644))

	cfg, err := Read(fs, "/partial.yaml")
	require.NoError(t, err)
	assert.Equal(t, source.KindFile, cfg.Source)

	_, err = Load(fs, "/partial.yaml")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
