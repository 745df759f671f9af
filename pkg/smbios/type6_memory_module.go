package smbios

// MemoryModuleInformation is SMBIOS type 6, obsolete since 2.1.
type MemoryModuleInformation struct {
	Parts
}

func (m *MemoryModuleInformation) SocketDesignation() Field[Text] { return m.StringAt(0x04) }

// BankConnections holds two 4-bit RAS# identifiers, 0xF meaning none.
func (m *MemoryModuleInformation) BankConnections() Field[uint8] { return m.ByteAt(0x05) }

// CurrentSpeed is in nanoseconds.
func (m *MemoryModuleInformation) CurrentSpeed() Field[uint8] { return m.ByteAt(0x06) }
func (m *MemoryModuleInformation) CurrentMemoryType() Field[uint16] { return m.WordAt(0x07) }
func (m *MemoryModuleInformation) InstalledSize() Field[uint8] { return m.ByteAt(0x09) }
func (m *MemoryModuleInformation) EnabledSize() Field[uint8] { return m.ByteAt(0x0A) }
func (m *MemoryModuleInformation) ErrorStatus() Field[uint8] { return m.ByteAt(0x0B) }

// ModuleSizeMB decodes an installed or enabled size byte: bits 6:0 are a
// power of two in MB, 0x7D not determinable, 0x7E not enabled, 0x7F not
// installed. The second return value is false for the special values.
func ModuleSizeMB(v uint8) (uint64, bool) {
	switch v & 0x7F {
	case 0x7D, 0x7E, 0x7F:
		return 0, false
	}
	return 1 << (v & 0x7F), true
}
