package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"github.com/zenithax-cc/dmidecode/pkg/smbios"
)

const (
	devMem = "/dev/mem"

	startAddr = 0x000F0000
	endAddr   = 0x00100000

	paragraphSize    = 1 << 4
	searchRegionSize = endAddr - startAddr
)

var anchors = [][]byte{[]byte("_SM3_"), []byte("_SM_")}

// DevMem scans the legacy BIOS area of physical memory for an entry point
// and reads the table it points to. It needs root on Linux.
type DevMem struct {
	Fs afero.Fs
	// Path overrides /dev/mem.
	Path string
}

func (d *DevMem) Name() string {
	return "devmem"
}

func (d *DevMem) path() string {
	if d.Path != "" {
		return d.Path
	}
	return devMem
}

func (d *DevMem) Read(ctx context.Context) (*Raw, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p := d.path()
	f, err := d.Fs.Open(p)
	if err != nil {
		return nil, &Error{Op: "open", Path: p, Err: err}
	}
	defer f.Close()

	ep, err := d.searchEntryPoint(ctx, f)
	if err != nil {
		return nil, err
	}

	tableAddr, tableLen := ep.Table()
	if err := validateTableParams(tableAddr, tableLen); err != nil {
		return nil, &Error{Op: "read", Path: p, Err: err}
	}

	data := make([]byte, tableLen)
	n, err := f.ReadAt(data, int64(tableAddr))
	if err != nil {
		// 64-bit entry points only give a maximum size.
		_, maxSize := ep.(*smbios.EntryPoint64)
		if !maxSize || !errors.Is(err, io.EOF) || n == 0 {
			return nil, &Error{Op: "read", Path: p, Err: err}
		}
	}

	v := ep.Version()
	log.Debug().Str("path", p).Int("address", tableAddr).Int("length", n).Stringer("version", v).
		Msg("read structure table")
	return &Raw{Data: data[:n], Version: &v}, nil
}

// searchEntryPoint walks the search region on 16-byte boundaries. Anchors
// whose checksum does not verify are skipped.
func (d *DevMem) searchEntryPoint(ctx context.Context, r io.ReaderAt) (smbios.EntryPoint, error) {
	data := make([]byte, searchRegionSize)
	if _, err := r.ReadAt(data, startAddr); err != nil {
		return nil, &Error{Op: "read", Path: d.path(), Err: err}
	}

	for offset := 0; offset+paragraphSize <= len(data); offset += paragraphSize {
		if offset&0xFFF == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		chunk := data[offset:]
		if !bytes.HasPrefix(chunk, anchors[0]) && !bytes.HasPrefix(chunk, anchors[1]) {
			continue
		}

		ep, err := smbios.ParseEntryPoint(chunk)
		if err != nil {
			log.Debug().Err(err).Int("address", startAddr+offset).Msg("skipping anchor")
			continue
		}
		return ep, nil
	}

	return nil, fmt.Errorf("%w: scanned 0x%X - 0x%X", ErrEntryPointNotFound, startAddr, endAddr)
}
