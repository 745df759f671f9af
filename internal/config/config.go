// Package config loads dmidecode settings from an optional YAML file.
// Command line flags override whatever the file sets.
package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/zenithax-cc/dmidecode/internal/output"
	"github.com/zenithax-cc/dmidecode/internal/source"
	"github.com/zenithax-cc/dmidecode/pkg/smbios"
)

var ErrInvalidConfig = errors.New("config: invalid")

type Config struct {
	Source   source.Kind         `yaml:"source"`
	Envelope source.EnvelopeMode `yaml:"envelope"`
	Format   output.Format       `yaml:"format"`
	LogLevel string              `yaml:"log_level"`
	// Workers bounds concurrent decoding of dump files.
	Workers int `yaml:"workers"`
	// Version is used for bare dumps that carry none, e.g. "3.4".
	Version string   `yaml:"version"`
	Files   []string `yaml:"files"`
	NoColor bool     `yaml:"no_color"`
}

func Default() *Config {
	return &Config{
		Source:   source.KindAuto,
		Envelope: source.EnvelopeAuto,
		Format:   output.FormatText,
		LogLevel: "info",
		Workers:  4,
	}
}

// Load reads path on fs over the defaults and validates the result. An
// empty path returns the defaults.
func Load(fs afero.Fs, path string) (*Config, error) {
	cfg, err := Read(fs, path)
	if err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// Read is Load without validation, for callers that merge flags first.
func Read(fs afero.Fs, path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// SmbiosVersion parses Version. It returns nil when unset.
func (c *Config) SmbiosVersion() (*smbios.Version, error) {
	if c.Version == "" {
		return nil, nil
	}
	v, err := smbios.ParseVersion(c.Version)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return &v, nil
}

func (c *Config) Validate() error {
	var errs []error

	if !slices.Contains(source.Kinds, c.Source) {
		errs = append(errs, fmt.Errorf("%w: source %q", ErrInvalidConfig, c.Source))
	}
	if !slices.Contains(source.EnvelopeModes, c.Envelope) {
		errs = append(errs, fmt.Errorf("%w: envelope %q", ErrInvalidConfig, c.Envelope))
	}
	if !slices.Contains(output.Formats, c.Format) {
		errs = append(errs, fmt.Errorf("%w: format %q", ErrInvalidConfig, c.Format))
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidConfig, c.Workers))
	}
	if c.Source == source.KindFile && len(c.Files) == 0 {
		errs = append(errs, fmt.Errorf("%w: source file needs at least one file", ErrInvalidConfig))
	}
	if _, err := c.SmbiosVersion(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
