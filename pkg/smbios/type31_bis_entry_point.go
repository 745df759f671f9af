package smbios

// BISEntryPoint is SMBIOS type 31, the Boot Integrity Services entry.
type BISEntryPoint struct {
	Parts
}

func (b *BISEntryPoint) Checksum() Field[uint8] { return b.ByteAt(0x04) }
func (b *BISEntryPoint) BISEntry16() Field[uint32] { return b.DwordAt(0x08) }
func (b *BISEntryPoint) BISEntry32() Field[uint32] { return b.DwordAt(0x0C) }
