package smbios

// PhysicalMemoryArray is SMBIOS type 16.
type PhysicalMemoryArray struct {
	Parts
}

func (m *PhysicalMemoryArray) Location() Field[uint8] { return m.ByteAt(0x04) }
func (m *PhysicalMemoryArray) Use() Field[MemoryArrayUse] { return cast[MemoryArrayUse](m.ByteAt(0x05)) }
func (m *PhysicalMemoryArray) MemoryErrorCorrection() Field[MemoryErrorCorrection] {
	return cast[MemoryErrorCorrection](m.ByteAt(0x06))
}

// MaximumCapacity is in KB; 0x80000000 defers to ExtendedMaximumCapacity.
func (m *PhysicalMemoryArray) MaximumCapacity() Field[uint32] { return m.DwordAt(0x07) }
func (m *PhysicalMemoryArray) MemoryErrorInformationHandle() Field[Handle] { return m.HandleAt(0x0B) }
func (m *PhysicalMemoryArray) NumberOfMemoryDevices() Field[uint16] { return m.WordAt(0x0D) }

// ExtendedMaximumCapacity is in bytes (2.7+).
func (m *PhysicalMemoryArray) ExtendedMaximumCapacity() Field[uint64] { return m.QwordAt(0x0F) }

func (m *PhysicalMemoryArray) MaximumCapacityBytes() Field[uint64] {
	v, ok := m.MaximumCapacity().Get()
	if !ok {
		return Field[uint64]{}
	}
	if v == 0x80000000 {
		return m.ExtendedMaximumCapacity()
	}
	return fieldOf(uint64(v) * KB)
}

type MemoryArrayUse uint8

var memoryArrayUseNames = map[MemoryArrayUse]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "System Memory",
	0x04: "Video Memory",
	0x05: "Flash Memory",
	0x06: "Non-volatile RAM",
	0x07: "Cache Memory",
}

func (u MemoryArrayUse) String() string { return enumName(u, memoryArrayUseNames) }

type MemoryErrorCorrection uint8

var memoryErrorCorrectionNames = map[MemoryErrorCorrection]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "None",
	0x04: "Parity",
	0x05: "Single-bit ECC",
	0x06: "Multi-bit ECC",
	0x07: "CRC",
}

func (c MemoryErrorCorrection) String() string { return enumName(c, memoryErrorCorrectionNames) }
