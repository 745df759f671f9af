package smbios

import "fmt"

// MemoryDevice is SMBIOS type 17, one per memory socket.
type MemoryDevice struct {
	Parts
}

func (m *MemoryDevice) PhysicalMemoryArrayHandle() Field[Handle] { return m.HandleAt(0x04) }
func (m *MemoryDevice) MemoryErrorInformationHandle() Field[Handle] { return m.HandleAt(0x06) }
func (m *MemoryDevice) TotalWidth() Field[uint16] { return m.WordAt(0x08) }
func (m *MemoryDevice) DataWidth() Field[uint16] { return m.WordAt(0x0A) }

// Size is 0 for an empty socket and 0xFFFF when unknown. Bit 15 selects KB
// granularity, 0x7FFF defers to ExtendedSize.
func (m *MemoryDevice) Size() Field[uint16] { return m.WordAt(0x0C) }

func (m *MemoryDevice) FormFactor() Field[MemoryFormFactor] {
	return cast[MemoryFormFactor](m.ByteAt(0x0E))
}
func (m *MemoryDevice) DeviceSet() Field[uint8] { return m.ByteAt(0x0F) }
func (m *MemoryDevice) DeviceLocator() Field[Text] { return m.StringAt(0x10) }
func (m *MemoryDevice) BankLocator() Field[Text] { return m.StringAt(0x11) }
func (m *MemoryDevice) MemoryType() Field[MemoryType] { return cast[MemoryType](m.ByteAt(0x12)) }
func (m *MemoryDevice) TypeDetail() Field[MemoryTypeDetail] {
	return cast[MemoryTypeDetail](m.WordAt(0x13))
}

// 2.3+
func (m *MemoryDevice) Speed() Field[uint16] { return m.WordAt(0x15) }
func (m *MemoryDevice) Manufacturer() Field[Text] { return m.StringAt(0x17) }
func (m *MemoryDevice) SerialNumber() Field[Text] { return m.StringAt(0x18) }
func (m *MemoryDevice) AssetTag() Field[Text] { return m.StringAt(0x19) }
func (m *MemoryDevice) PartNumber() Field[Text] { return m.StringAt(0x1A) }

// 2.6+
func (m *MemoryDevice) Attributes() Field[uint8] { return m.ByteAt(0x1B) }

// Rank is bits 3:0 of Attributes, 0 when unknown.
func (m *MemoryDevice) Rank() Field[uint8] {
	return convert(m.Attributes(), func(v uint8) uint8 { return v & 0x0F })
}

// 2.7+
func (m *MemoryDevice) ExtendedSize() Field[uint32] { return m.DwordAt(0x1C) }
func (m *MemoryDevice) ConfiguredMemorySpeed() Field[uint16] { return m.WordAt(0x20) }

// 2.8+, millivolts
func (m *MemoryDevice) MinimumVoltage() Field[uint16] { return m.WordAt(0x22) }
func (m *MemoryDevice) MaximumVoltage() Field[uint16] { return m.WordAt(0x24) }
func (m *MemoryDevice) ConfiguredVoltage() Field[uint16] { return m.WordAt(0x26) }

// 3.2+
func (m *MemoryDevice) MemoryTechnology() Field[MemoryTechnology] {
	return cast[MemoryTechnology](m.ByteAt(0x28))
}
func (m *MemoryDevice) OperatingModeCapability() Field[MemoryOperatingMode] {
	return cast[MemoryOperatingMode](m.WordAt(0x29))
}
func (m *MemoryDevice) FirmwareVersion() Field[Text] { return m.StringAt(0x2B) }
func (m *MemoryDevice) ModuleManufacturerID() Field[uint16] { return m.WordAt(0x2C) }
func (m *MemoryDevice) ModuleProductID() Field[uint16] { return m.WordAt(0x2E) }
func (m *MemoryDevice) SubsystemControllerManufacturerID() Field[uint16] { return m.WordAt(0x30) }
func (m *MemoryDevice) SubsystemControllerProductID() Field[uint16] { return m.WordAt(0x32) }
func (m *MemoryDevice) NonVolatileSize() Field[uint64] { return m.QwordAt(0x34) }
func (m *MemoryDevice) VolatileSize() Field[uint64] { return m.QwordAt(0x3C) }
func (m *MemoryDevice) CacheSize() Field[uint64] { return m.QwordAt(0x44) }
func (m *MemoryDevice) LogicalSize() Field[uint64] { return m.QwordAt(0x4C) }

// 3.3+
func (m *MemoryDevice) ExtendedSpeed() Field[uint32] { return m.DwordAt(0x54) }
func (m *MemoryDevice) ExtendedConfiguredMemorySpeed() Field[uint32] { return m.DwordAt(0x58) }

func (m *MemoryDevice) PMIC0ManufacturerID() Field[uint16] { return since(m.Parts, 3, 7, m.WordAt(0x5C)) }
func (m *MemoryDevice) PMIC0RevisionNumber() Field[uint16] { return since(m.Parts, 3, 7, m.WordAt(0x5E)) }
func (m *MemoryDevice) RCDManufacturerID() Field[uint16] { return since(m.Parts, 3, 7, m.WordAt(0x60)) }
func (m *MemoryDevice) RCDRevisionNumber() Field[uint16] { return since(m.Parts, 3, 7, m.WordAt(0x62)) }

// Installed reports whether the socket holds a module.
func (m *MemoryDevice) Installed() Field[bool] {
	return convert(m.Size(), func(v uint16) bool { return v != 0 })
}

// SizeBytes decodes Size and ExtendedSize. It is absent for empty sockets
// and unknown sizes.
func (m *MemoryDevice) SizeBytes() Field[uint64] {
	size, ok := m.Size().Get()
	if !ok || size == 0 || size == 0xFFFF {
		return Field[uint64]{}
	}
	if size == 0x7FFF {
		return convert(m.ExtendedSize(), func(v uint32) uint64 { return uint64(v&0x7FFFFFFF) * MB })
	}
	if size&0x8000 != 0 {
		return fieldOf(uint64(size&0x7FFF) * KB)
	}
	return fieldOf(uint64(size) * MB)
}

// SpeedMTs prefers ExtendedSpeed when Speed holds the 0xFFFF escape.
func (m *MemoryDevice) SpeedMTs() Field[uint32] {
	return extendedSpeed(m.Speed(), m.ExtendedSpeed())
}

func (m *MemoryDevice) ConfiguredSpeedMTs() Field[uint32] {
	return extendedSpeed(m.ConfiguredMemorySpeed(), m.ExtendedConfiguredMemorySpeed())
}

func extendedSpeed(short Field[uint16], long Field[uint32]) Field[uint32] {
	v, ok := short.Get()
	if !ok {
		return Field[uint32]{}
	}
	if v == 0xFFFF {
		return long
	}
	return fieldOf(uint32(v))
}

type MemoryFormFactor uint8

var memoryFormFactorNames = []string{
	"Other", "Unknown", "SIMM", "SIP", "Chip", "DIP", "ZIP", "Proprietary Card", "DIMM", "TSOP",
	"Row Of Chips", "RIMM", "SODIMM", "SRIMM", "FB-DIMM", "Die", "CAMM",
}

func (f MemoryFormFactor) String() string {
	if f >= 1 && int(f) <= len(memoryFormFactorNames) {
		return memoryFormFactorNames[f-1]
	}
	return fmt.Sprintf("%#x", uint8(f))
}

type MemoryType uint8

const (
	MemoryTypeDDR3  MemoryType = 0x18
	MemoryTypeDDR4  MemoryType = 0x1A
	MemoryTypeDDR5  MemoryType = 0x22
	MemoryTypeLPDDR MemoryType = 0x1B
)

var memoryTypeNames = map[MemoryType]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "DRAM",
	0x04: "EDRAM",
	0x05: "VRAM",
	0x06: "SRAM",
	0x07: "RAM",
	0x08: "ROM",
	0x09: "Flash",
	0x0A: "EEPROM",
	0x0B: "FEPROM",
	0x0C: "EPROM",
	0x0D: "CDRAM",
	0x0E: "3DRAM",
	0x0F: "SDRAM",
	0x10: "SGRAM",
	0x11: "RDRAM",
	0x12: "DDR",
	0x13: "DDR2",
	0x14: "DDR2 FB-DIMM",
	0x18: "DDR3",
	0x19: "FBD2",
	0x1A: "DDR4",
	0x1B: "LPDDR",
	0x1C: "LPDDR2",
	0x1D: "LPDDR3",
	0x1E: "LPDDR4",
	0x1F: "Logical non-volatile device",
	0x20: "HBM",
	0x21: "HBM2",
	0x22: "DDR5",
	0x23: "LPDDR5",
	0x24: "HBM3",
}

func (t MemoryType) String() string { return enumName(t, memoryTypeNames) }

type MemoryTypeDetail uint16

var memoryTypeDetailNames = []string{
	1:  "Other",
	2:  "Unknown",
	3:  "Fast-paged",
	4:  "Static Column",
	5:  "Pseudo-static",
	6:  "RAMBus",
	7:  "Synchronous",
	8:  "CMOS",
	9:  "EDO",
	10: "Window DRAM",
	11: "Cache DRAM",
	12: "Non-Volatile",
	13: "Registered (Buffered)",
	14: "Unbuffered (Unregistered)",
	15: "LRDIMM",
}

func (d MemoryTypeDetail) Flags() []string { return flagNames(d&^1, memoryTypeDetailNames) }

func (d MemoryTypeDetail) String() string {
	if d&^1 == 0 {
		return "None"
	}
	return joinFlags(d&^1, memoryTypeDetailNames)
}

type MemoryTechnology uint8

var memoryTechnologyNames = map[MemoryTechnology]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "DRAM",
	0x04: "NVDIMM-N",
	0x05: "NVDIMM-F",
	0x06: "NVDIMM-P",
	0x07: "Intel Optane persistent memory",
	0x08: "MRDIMM",
}

func (t MemoryTechnology) String() string { return enumName(t, memoryTechnologyNames) }

type MemoryOperatingMode uint16

var memoryOperatingModeNames = []string{
	1: "Other",
	2: "Unknown",
	3: "Volatile memory",
	4: "Byte-accessible persistent memory",
	5: "Block-accessible persistent memory",
}

func (o MemoryOperatingMode) String() string {
	if o&^1 == 0 {
		return "None"
	}
	return joinFlags(o&^1, memoryOperatingModeNames)
}
