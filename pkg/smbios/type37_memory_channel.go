package smbios

// MemoryChannel is SMBIOS type 37.
type MemoryChannel struct {
	Parts
}

type ChannelDevice struct {
	Load   uint8
	Handle Handle
}

func (m *MemoryChannel) ChannelType() Field[uint8] { return m.ByteAt(0x04) }
func (m *MemoryChannel) MaximumChannelLoad() Field[uint8] { return m.ByteAt(0x05) }
func (m *MemoryChannel) MemoryDeviceCount() Field[uint8] { return m.ByteAt(0x06) }

func (m *MemoryChannel) Devices() Field[[]ChannelDevice] {
	n, ok := m.MemoryDeviceCount().Get()
	if !ok {
		return Field[[]ChannelDevice]{}
	}
	return fieldOf(records(m.Parts, 0x07, int(n), 3, func(off int) ChannelDevice {
		return ChannelDevice{Load: m.span.data[off], Handle: Handle(m.WordAt(off + 1).value)}
	}))
}
