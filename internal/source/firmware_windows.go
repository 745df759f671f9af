//go:build windows

package source

import (
	"context"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/zenithax-cc/dmidecode/pkg/smbios"
)

// 'RSMB' packed into a uint32.
const providerRSMB uint32 = 0x52534D42

var (
	kernel32                   = windows.NewLazySystemDLL("kernel32.dll")
	procGetSystemFirmwareTable = kernel32.NewProc("GetSystemFirmwareTable")
)

func (Firmware) Read(ctx context.Context) (*Raw, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := procGetSystemFirmwareTable.Find(); err != nil {
		return nil, &Error{Op: "load", Path: "GetSystemFirmwareTable", Err: err}
	}

	// The first call reports the size. Call always returns a non-nil
	// error, so r1 decides.
	size, _, err := procGetSystemFirmwareTable.Call(uintptr(providerRSMB), 0, 0, 0)
	if size == 0 {
		return nil, &Error{Op: "size", Path: "RSMB", Err: err}
	}
	if size > maxTableSize+8 {
		return nil, &Error{Op: "size", Path: "RSMB", Err: fmt.Errorf("%w: %d bytes", ErrTableTooLarge, size)}
	}

	buf := make([]byte, size)
	written, _, err := procGetSystemFirmwareTable.Call(
		uintptr(providerRSMB),
		0,
		uintptr(unsafe.Pointer(&buf[0])),
		size,
	)
	if written == 0 {
		return nil, &Error{Op: "read", Path: "RSMB", Err: err}
	}
	if written > size {
		return nil, &Error{Op: "read", Path: "RSMB", Err: fmt.Errorf("buffer too small: have %d, need %d", size, written)}
	}
	buf = buf[:written]

	env, err := smbios.ParseEnvelope(buf)
	if err != nil {
		return nil, &Error{Op: "parse", Path: "RSMB", Err: err}
	}
	v := env.Version()
	return &Raw{Data: buf, Version: &v, Envelope: true}, nil
}
