package smbios

// AdditionalInformation is SMBIOS type 40.
type AdditionalInformation struct {
	Parts
}

type AdditionalEntry struct {
	ReferencedHandle Handle
	ReferencedOffset uint8
	String           Text
	// Value aliases the structure bytes.
	Value []byte
}

func (a *AdditionalInformation) NumberOfEntries() Field[uint8] { return a.ByteAt(0x04) }

// Entries walks the variable length entries. Decoding stops at the first
// entry whose declared length is too short or crosses the structure end.
func (a *AdditionalInformation) Entries() Field[[]AdditionalEntry] {
	n, ok := a.NumberOfEntries().Get()
	if !ok {
		return Field[[]AdditionalEntry]{}
	}

	out := make([]AdditionalEntry, 0, n)
	off := 0x05
	for range int(n) {
		size, ok := a.ByteAt(off).Get()
		if !ok || size < 5 || !a.has(off, int(size)) {
			break
		}
		out = append(out, AdditionalEntry{
			ReferencedHandle: Handle(a.WordAt(off + 1).value),
			ReferencedOffset: a.span.data[off+3],
			String:           a.StringAt(off + 4).value,
			Value:            a.BytesAt(off+5, int(size)-5).value,
		})
		off += int(size)
	}
	return fieldOf(out)
}
