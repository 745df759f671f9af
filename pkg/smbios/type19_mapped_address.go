package smbios

// MemoryArrayMappedAddress is SMBIOS type 19.
type MemoryArrayMappedAddress struct {
	Parts
}

// StartingAddress and EndingAddress are in KB; 0xFFFFFFFF defers to the
// extended byte addresses.
func (m *MemoryArrayMappedAddress) StartingAddress() Field[uint32] { return m.DwordAt(0x04) }
func (m *MemoryArrayMappedAddress) EndingAddress() Field[uint32] { return m.DwordAt(0x08) }
func (m *MemoryArrayMappedAddress) MemoryArrayHandle() Field[Handle] { return m.HandleAt(0x0C) }
func (m *MemoryArrayMappedAddress) PartitionWidth() Field[uint8] { return m.ByteAt(0x0E) }
func (m *MemoryArrayMappedAddress) ExtendedStartingAddress() Field[uint64] { return m.QwordAt(0x0F) }
func (m *MemoryArrayMappedAddress) ExtendedEndingAddress() Field[uint64] { return m.QwordAt(0x17) }

// Range returns the mapped byte range [start, end].
func (m *MemoryArrayMappedAddress) Range() Field[AddressRange] {
	return mappedRange(m.StartingAddress(), m.EndingAddress(), m.ExtendedStartingAddress(), m.ExtendedEndingAddress())
}

// MemoryDeviceMappedAddress is SMBIOS type 20.
type MemoryDeviceMappedAddress struct {
	Parts
}

func (m *MemoryDeviceMappedAddress) StartingAddress() Field[uint32] { return m.DwordAt(0x04) }
func (m *MemoryDeviceMappedAddress) EndingAddress() Field[uint32] { return m.DwordAt(0x08) }
func (m *MemoryDeviceMappedAddress) MemoryDeviceHandle() Field[Handle] { return m.HandleAt(0x0C) }
func (m *MemoryDeviceMappedAddress) MemoryArrayMappedAddressHandle() Field[Handle] {
	return m.HandleAt(0x0E)
}
func (m *MemoryDeviceMappedAddress) PartitionRowPosition() Field[uint8] { return m.ByteAt(0x10) }
func (m *MemoryDeviceMappedAddress) InterleavePosition() Field[uint8] { return m.ByteAt(0x11) }
func (m *MemoryDeviceMappedAddress) InterleavedDataDepth() Field[uint8] { return m.ByteAt(0x12) }
func (m *MemoryDeviceMappedAddress) ExtendedStartingAddress() Field[uint64] { return m.QwordAt(0x13) }
func (m *MemoryDeviceMappedAddress) ExtendedEndingAddress() Field[uint64] { return m.QwordAt(0x1B) }

func (m *MemoryDeviceMappedAddress) Range() Field[AddressRange] {
	return mappedRange(m.StartingAddress(), m.EndingAddress(), m.ExtendedStartingAddress(), m.ExtendedEndingAddress())
}

type AddressRange struct {
	Start uint64
	End   uint64
}

// Size is the number of bytes covered by the inclusive range.
func (r AddressRange) Size() uint64 {
	return r.End - r.Start + 1
}

func mappedRange(start, end Field[uint32], extStart, extEnd Field[uint64]) Field[AddressRange] {
	s, ok1 := start.Get()
	e, ok2 := end.Get()
	if !ok1 || !ok2 {
		return Field[AddressRange]{}
	}
	if s == 0xFFFFFFFF {
		xs, ok1 := extStart.Get()
		xe, ok2 := extEnd.Get()
		if !ok1 || !ok2 {
			return Field[AddressRange]{}
		}
		return fieldOf(AddressRange{Start: xs, End: xe})
	}
	return fieldOf(AddressRange{Start: uint64(s) * KB, End: (uint64(e)+1)*KB - 1})
}
