// Package source acquires raw SMBIOS structure tables from the running
// platform or from dump files.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"github.com/zenithax-cc/dmidecode/pkg/smbios"
)

const (
	maxTableSize    = 1 << 20
	maxAddressValue = 0xFFFFFFFF
)

var (
	ErrEntryPointNotFound = errors.New("source: entry point not found")
	ErrInvalidTableAddr   = errors.New("source: invalid table address")
	ErrInvalidTableLen    = errors.New("source: invalid table length")
	ErrAddressOverflow    = errors.New("source: address overflow")
	ErrTableTooLarge      = errors.New("source: table too large")
	ErrUnsupported        = errors.New("source: not supported on this platform")
	ErrUnknownKind        = errors.New("source: unknown kind")
)

// Error records the operation and path that failed.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("source %s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("source %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return (t.Op == "" || e.Op == t.Op) && (t.Path == "" || e.Path == t.Path)
}

// Raw is an undecoded structure table. When Envelope is set, Data starts
// with the 8-byte RawSMBIOSData header.
type Raw struct {
	Data     []byte
	Version  *smbios.Version
	Envelope bool
}

// Decode decodes the table, taking the version from the envelope when
// there is one.
func (r *Raw) Decode() (*smbios.Collection, error) {
	if !r.Envelope {
		return smbios.Decode(r.Data, r.Version)
	}

	env, err := smbios.ParseEnvelope(r.Data)
	if err != nil {
		return nil, err
	}
	v := env.Version()
	return smbios.Decode(env.Table, &v)
}

type Source interface {
	Name() string
	Read(ctx context.Context) (*Raw, error)
}

type Kind string

const (
	KindAuto     Kind = "auto"
	KindSysfs    Kind = "sysfs"
	KindDevMem   Kind = "devmem"
	KindFirmware Kind = "firmware"
	KindFile     Kind = "file"
)

var Kinds = []Kind{KindAuto, KindSysfs, KindDevMem, KindFirmware, KindFile}

// Options configures New. Path is only used by file sources.
type Options struct {
	Fs       afero.Fs
	Path     string
	Envelope EnvelopeMode
	Version  *smbios.Version
}

// New returns the source for kind.
func New(kind Kind, opts Options) (Source, error) {
	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	switch kind {
	case KindAuto, "":
		return Detect(fs), nil
	case KindSysfs:
		return &Sysfs{Fs: fs}, nil
	case KindDevMem:
		return &DevMem{Fs: fs}, nil
	case KindFirmware:
		return Firmware{}, nil
	case KindFile:
		if opts.Path == "" {
			return nil, &Error{Op: "open", Err: errors.New("no dump file given")}
		}
		return &File{Fs: fs, Path: opts.Path, Envelope: opts.Envelope, Version: opts.Version}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

// Detect picks the best live source: the firmware table API on Windows,
// sysfs when the kernel exports the tables, /dev/mem otherwise.
func Detect(fs afero.Fs) Source {
	if runtime.GOOS == "windows" {
		log.Debug().Msg("using firmware table provider")
		return Firmware{}
	}

	s := &Sysfs{Fs: fs}
	if ok, _ := afero.Exists(fs, s.entryPointPath()); ok {
		log.Debug().Str("path", s.root()).Msg("using sysfs")
		return s
	}

	log.Debug().Str("path", devMem).Msg("sysfs not available, falling back to memory scan")
	return &DevMem{Fs: fs}
}

// readLimited reads at most limit bytes from path and fails when the file
// is larger.
func readLimited(fs afero.Fs, path string, limit int64) ([]byte, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, &Error{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return nil, &Error{Op: "read", Path: path, Err: err}
	}
	if int64(len(data)) > limit {
		return nil, &Error{Op: "read", Path: path, Err: fmt.Errorf("%w: more than %d bytes", ErrTableTooLarge, limit)}
	}
	return data, nil
}

func validateTableParams(tableAddr, tableLen int) error {
	if tableAddr < 0 || tableAddr > maxAddressValue {
		return fmt.Errorf("%w: 0x%X", ErrInvalidTableAddr, tableAddr)
	}

	if tableLen <= 0 || tableLen > maxTableSize {
		return fmt.Errorf("%w: %d (max: %d)", ErrInvalidTableLen, tableLen, maxTableSize)
	}

	endAddress := int64(tableAddr) + int64(tableLen)
	if endAddress > maxAddressValue {
		return fmt.Errorf("%w: end address 0x%X exceeds limit", ErrAddressOverflow, endAddress)
	}

	return nil
}
