package source

import (
	"context"
	"path"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"github.com/zenithax-cc/dmidecode/pkg/smbios"
)

const (
	sysfsTables     = "/sys/firmware/dmi/tables"
	sysfsDMI        = "DMI"
	sysfsEntryPoint = "smbios_entry_point"
)

// Sysfs reads the tables the Linux kernel exports under
// /sys/firmware/dmi/tables.
type Sysfs struct {
	Fs afero.Fs
	// Root overrides the tables directory.
	Root string
}

func (s *Sysfs) Name() string {
	return "sysfs"
}

func (s *Sysfs) root() string {
	if s.Root != "" {
		return s.Root
	}
	return sysfsTables
}

func (s *Sysfs) entryPointPath() string {
	return path.Join(s.root(), sysfsEntryPoint)
}

// Read returns the DMI table. The entry point only contributes the
// version; when it is missing or corrupt the table is still returned.
func (s *Sysfs) Read(ctx context.Context) (*Raw, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := readLimited(s.Fs, path.Join(s.root(), sysfsDMI), maxTableSize)
	if err != nil {
		return nil, err
	}
	raw := &Raw{Data: data}

	ep, err := s.readEntryPoint()
	if err != nil {
		log.Warn().Err(err).Msg("decoding without SMBIOS version")
		return raw, nil
	}

	v := ep.Version()
	raw.Version = &v
	return raw, nil
}

func (s *Sysfs) readEntryPoint() (smbios.EntryPoint, error) {
	p := s.entryPointPath()
	data, err := readLimited(s.Fs, p, 0x20)
	if err != nil {
		return nil, err
	}

	ep, err := smbios.ParseEntryPoint(data)
	if err != nil {
		return nil, &Error{Op: "parse", Path: p, Err: err}
	}
	return ep, nil
}
