package smbios

import (
	"iter"
)

// Span is one bounded structure inside a table buffer. Every slice it
// holds is a view into that buffer.
type Span struct {
	Header Header
	// Offset of the header within the table buffer.
	Offset int
	// Size counts the bytes consumed, from the header through the string
	// table terminator.
	Size int

	data    []byte
	strings StringTable
}

// Data returns the header and formatted area, Header.Length bytes.
func (s Span) Data() []byte {
	return s.data
}

// Formatted returns the formatted area that follows the header.
func (s Span) Formatted() []byte {
	if len(s.data) < headerLength {
		return nil
	}
	return s.data[headerLength:]
}

func (s Span) Strings() StringTable {
	return s.strings
}

// Walker scans a raw structure table. The table is never copied or
// modified; spans alias it.
type Walker struct {
	buf []byte
}

func NewWalker(buf []byte) *Walker {
	return &Walker{buf: buf}
}

// Spans yields the structures of the table in order. It stops after the
// End-of-Table structure or when the buffer is exhausted. A structure that
// cannot be bounded yields a *DecodeError and ends the sequence. Each call
// starts over from the beginning of the buffer.
func (w *Walker) Spans() iter.Seq2[Span, error] {
	return func(yield func(Span, error) bool) {
		off := 0
		for off < len(w.buf) {
			s, err := w.spanAt(off)
			if err != nil {
				yield(Span{}, err)
				return
			}
			if !yield(s, nil) {
				return
			}
			if Type(s.Header.Type) == TypeEndOfTable {
				return
			}
			off += s.Size
		}
	}
}

func (w *Walker) spanAt(off int) (Span, error) {
	h, err := ParseHeader(w.buf[off:])
	if err != nil {
		return Span{}, &DecodeError{Op: "header", Offset: off, Err: err}
	}

	end := off + int(h.Length)
	if end > len(w.buf) {
		return Span{}, &DecodeError{Op: "formatted area", Offset: off, Err: ErrTruncatedStructure}
	}

	term := stringTableEnd(w.buf, end)
	if term < 0 {
		return Span{}, &DecodeError{Op: "string table", Offset: off, Err: ErrTruncatedStructure}
	}

	return Span{
		Header:  h,
		Offset:  off,
		Size:    term + 2 - off,
		data:    w.buf[off:end:end],
		strings: parseStringTable(w.buf[end : term+1]),
	}, nil
}

// stringTableEnd returns the index of the first byte of the double NUL
// that terminates the string table starting at from, or -1.
func stringTableEnd(buf []byte, from int) int {
	for i := from; i+1 < len(buf); i++ {
		if buf[i] == 0 && buf[i+1] == 0 {
			return i
		}
	}
	return -1
}

// Walk collects every span of buf. On failure the spans decoded before the
// broken structure are returned with the error.
func Walk(buf []byte) ([]Span, error) {
	var spans []Span
	for s, err := range NewWalker(buf).Spans() {
		if err != nil {
			return spans, err
		}
		spans = append(spans, s)
	}
	return spans, nil
}
