package smbios

// OEMStrings is SMBIOS type 11.
type OEMStrings struct {
	Parts
}

func (o *OEMStrings) Count() Field[uint8] { return o.ByteAt(0x04) }

// Values returns the first Count strings of the string table.
func (o *OEMStrings) Values() Field[[]string] { return countedStrings(o.Parts) }

// countedStrings resolves strings 1..n where n is the byte at offset 4.
func countedStrings(p Parts) Field[[]string] {
	n, ok := p.ByteAt(0x04).Get()
	if !ok {
		return Field[[]string]{}
	}
	out := make([]string, 0, n)
	for i := 1; i <= int(n); i++ {
		out = append(out, p.span.strings.Lookup(uint8(i)).String())
	}
	return fieldOf(out)
}
