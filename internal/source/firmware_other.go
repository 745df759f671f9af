//go:build !windows

package source

import "context"

func (Firmware) Read(context.Context) (*Raw, error) {
	return nil, &Error{Op: "read", Path: "RSMB", Err: ErrUnsupported}
}
