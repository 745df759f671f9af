package smbios

import (
	"encoding/binary"
	"fmt"
)

// Parts is the decoded span shared by every structure kind, together with
// the optional platform version. All offsets taken by its accessors are
// relative to the start of the structure header, as in DSP0134.
type Parts struct {
	span    Span
	version *Version
}

func newParts(s Span, v *Version) Parts {
	return Parts{span: s, version: v}
}

func (p Parts) Span() Span {
	return p.span
}

func (p Parts) Header() Header {
	return p.span.Header
}

func (p Parts) Type() Type {
	return Type(p.span.Header.Type)
}

func (p Parts) Handle() Handle {
	return Handle(p.span.Header.Handle)
}

// Length is the declared length of the header and formatted area.
func (p Parts) Length() int {
	return int(p.span.Header.Length)
}

func (p Parts) Strings() StringTable {
	return p.span.strings
}

func (p Parts) Version() (Version, bool) {
	if p.version == nil {
		return Version{}, false
	}
	return *p.version, true
}

func (p Parts) sealed() {}

// has reports whether [offset, offset+size) lies within the structure.
// The sum is never formed, so huge arguments cannot wrap around.
func (p Parts) has(offset, size int) bool {
	n := len(p.span.data)
	return offset >= 0 && size >= 0 && offset <= n && size <= n-offset
}

func (p Parts) ByteAt(offset int) Field[uint8] {
	if !p.has(offset, 1) {
		return Field[uint8]{}
	}
	return fieldOf(p.span.data[offset])
}

func (p Parts) WordAt(offset int) Field[uint16] {
	if !p.has(offset, 2) {
		return Field[uint16]{}
	}
	return fieldOf(binary.LittleEndian.Uint16(p.span.data[offset:]))
}

func (p Parts) DwordAt(offset int) Field[uint32] {
	if !p.has(offset, 4) {
		return Field[uint32]{}
	}
	return fieldOf(binary.LittleEndian.Uint32(p.span.data[offset:]))
}

func (p Parts) QwordAt(offset int) Field[uint64] {
	if !p.has(offset, 8) {
		return Field[uint64]{}
	}
	return fieldOf(binary.LittleEndian.Uint64(p.span.data[offset:]))
}

// BytesAt returns a view of n bytes, not a copy.
func (p Parts) BytesAt(offset, n int) Field[[]byte] {
	if !p.has(offset, n) {
		return Field[[]byte]{}
	}
	return fieldOf(p.span.data[offset : offset+n : offset+n])
}

// StringAt resolves the string index stored at offset.
func (p Parts) StringAt(offset int) Field[Text] {
	idx := p.ByteAt(offset)
	if !idx.present {
		return Field[Text]{}
	}
	return fieldOf(p.span.strings.Lookup(idx.value))
}

// HandleAt reads a structure handle reference.
func (p Parts) HandleAt(offset int) Field[Handle] {
	return cast[Handle](p.WordAt(offset))
}

// Handle references another structure. 0xFFFF and 0xFFFE are used by
// firmware to mean "no structure".
type Handle uint16

const (
	HandleNone        Handle = 0xFFFF
	HandleUnavailable Handle = 0xFFFE
)

func (h Handle) Valid() bool {
	return h != HandleNone && h != HandleUnavailable
}

func (h Handle) String() string {
	return fmt.Sprintf("0x%04X", uint16(h))
}

// records decodes count fixed-size records starting at offset. Records that
// would cross the declared length are dropped.
func records[T any](p Parts, offset, count, size int, decode func(off int) T) []T {
	out := make([]T, 0, count)
	for i := range count {
		off := offset + i*size
		if !p.has(off, size) {
			break
		}
		out = append(out, decode(off))
	}
	return out
}

// handles reads a byte count at countOffset followed by that many handles.
func (p Parts) handles(countOffset int) Field[[]Handle] {
	n, ok := p.ByteAt(countOffset).Get()
	if !ok {
		return Field[[]Handle]{}
	}
	return fieldOf(records(p, countOffset+1, int(n), 2, func(off int) Handle {
		return Handle(p.WordAt(off).value)
	}))
}
