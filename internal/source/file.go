package source

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"github.com/zenithax-cc/dmidecode/pkg/smbios"
)

// EnvelopeMode says whether a dump carries the Windows RawSMBIOSData
// header.
type EnvelopeMode string

const (
	EnvelopeAuto EnvelopeMode = "auto"
	EnvelopeYes  EnvelopeMode = "yes"
	EnvelopeNo   EnvelopeMode = "no"
)

var EnvelopeModes = []EnvelopeMode{EnvelopeAuto, EnvelopeYes, EnvelopeNo}

// File reads a table dump. Three layouts are understood: a bare structure
// table, an enveloped table as returned by Windows, and a dmidecode
// --dump-bin image (entry point followed by the table). In auto mode the
// layout is detected from the content.
type File struct {
	Fs       afero.Fs
	Path     string
	Envelope EnvelopeMode
	// Version is used for bare tables, which carry none.
	Version *smbios.Version
}

func (f *File) Name() string {
	return "file:" + f.Path
}

func (f *File) Read(ctx context.Context) (*Raw, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := readLimited(f.Fs, f.Path, maxTableSize+8)
	if err != nil {
		return nil, err
	}

	switch f.Envelope {
	case EnvelopeYes:
		env, err := smbios.ParseEnvelope(data)
		if err != nil {
			return nil, &Error{Op: "parse", Path: f.Path, Err: err}
		}
		v := env.Version()
		return &Raw{Data: data, Version: &v, Envelope: true}, nil
	case EnvelopeNo:
		return &Raw{Data: data, Version: f.Version}, nil
	case EnvelopeAuto, "":
	default:
		return nil, fmt.Errorf("source: unknown envelope mode %q", f.Envelope)
	}

	if smbios.IsValidEnvelope(data) {
		env, _ := smbios.ParseEnvelope(data)
		v := env.Version()
		log.Debug().Str("path", f.Path).Stringer("version", v).Msg("detected RawSMBIOSData envelope")
		return &Raw{Data: data, Version: &v, Envelope: true}, nil
	}

	if raw, ok := dumpImage(data); ok {
		log.Debug().Str("path", f.Path).Msg("detected entry point dump image")
		return raw, nil
	}

	return &Raw{Data: data, Version: f.Version}, nil
}

// dumpImage splits a dmidecode --dump-bin image. The entry point in such a
// file has its table address rewritten to the file offset of the table.
func dumpImage(data []byte) (*Raw, bool) {
	ep, err := smbios.ParseEntryPoint(data)
	if err != nil {
		return nil, false
	}

	addr, length := ep.Table()
	if addr <= 0 || addr >= len(data) || length <= 0 {
		return nil, false
	}
	end := min(addr+length, len(data))

	v := ep.Version()
	return &Raw{Data: data[addr:end], Version: &v}, true
}
