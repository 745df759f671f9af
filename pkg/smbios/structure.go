package smbios

// Structure is a decoded SMBIOS structure. The set of implementations is
// closed: one pointer type per known structure kind plus *Unknown. Use a
// type switch to reach the typed accessors.
type Structure interface {
	Header() Header
	Type() Type
	Handle() Handle
	Length() int
	Span() Span
	Strings() StringTable
	Version() (Version, bool)

	ByteAt(offset int) Field[uint8]
	WordAt(offset int) Field[uint16]
	DwordAt(offset int) Field[uint32]
	QwordAt(offset int) Field[uint64]
	BytesAt(offset, n int) Field[[]byte]
	StringAt(offset int) Field[Text]

	sealed()
}

// Unknown holds a structure whose type has no typed decoding, such as
// OEM-specific types 128-255.
type Unknown struct {
	Parts
}

// Inactive (type 126) marks a structure that firmware disabled in place.
type Inactive struct {
	Parts
}

// EndOfTable (type 127) closes the structure table.
type EndOfTable struct {
	Parts
}
