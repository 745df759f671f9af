package smbios

// BIOSInformation is SMBIOS type 0.
type BIOSInformation struct {
	Parts
}

func (b *BIOSInformation) Vendor() Field[Text] { return b.StringAt(0x04) }
func (b *BIOSInformation) BIOSVersion() Field[Text] { return b.StringAt(0x05) }
func (b *BIOSInformation) StartingAddressSegment() Field[uint16] { return b.WordAt(0x06) }
func (b *BIOSInformation) ReleaseDate() Field[Text] { return b.StringAt(0x08) }

// ROMSize is the raw size byte: 64K * (n+1). 0xFF defers to
// ExtendedROMSize.
func (b *BIOSInformation) ROMSize() Field[uint8] { return b.ByteAt(0x09) }

func (b *BIOSInformation) Characteristics() Field[BIOSChars] {
	return cast[BIOSChars](b.QwordAt(0x0A))
}

// 2.4+
func (b *BIOSInformation) CharacteristicsExt1() Field[BIOSCharsExt1] {
	return cast[BIOSCharsExt1](b.ByteAt(0x12))
}

func (b *BIOSInformation) CharacteristicsExt2() Field[BIOSCharsExt2] {
	return cast[BIOSCharsExt2](b.ByteAt(0x13))
}

func (b *BIOSInformation) SystemBIOSMajorRelease() Field[uint8] { return b.ByteAt(0x14) }
func (b *BIOSInformation) SystemBIOSMinorRelease() Field[uint8] { return b.ByteAt(0x15) }
func (b *BIOSInformation) EmbeddedControllerMajorRelease() Field[uint8] { return b.ByteAt(0x16) }
func (b *BIOSInformation) EmbeddedControllerMinorRelease() Field[uint8] { return b.ByteAt(0x17) }

// ExtendedROMSize was added in 3.1. Bits 15:14 select MB (0) or GB (1).
func (b *BIOSInformation) ExtendedROMSize() Field[uint16] {
	return since(b.Parts, 3, 1, b.WordAt(0x18))
}

// ROMSizeBytes combines ROMSize and ExtendedROMSize.
func (b *BIOSInformation) ROMSizeBytes() Field[uint64] {
	size, ok := b.ROMSize().Get()
	if !ok {
		return Field[uint64]{}
	}
	ext, ok := b.ExtendedROMSize().Get()
	if size != 0xFF || !ok {
		return fieldOf((uint64(size) + 1) << 16)
	}

	n := uint64(ext & 0x3FFF)
	switch ext >> 14 {
	case 0:
		return fieldOf(n * MB)
	case 1:
		return fieldOf(n * GB)
	}
	return Field[uint64]{}
}

// BIOSChars is the characteristics qword. Bits 32-47 are reserved for the
// BIOS vendor and 48-63 for the system vendor.
type BIOSChars uint64

const (
	BIOSCharsUnknown BIOSChars = 1 << (iota + 2)
	BIOSCharsNotSupported
	BIOSCharsISA
	BIOSCharsMCA
	BIOSCharsEISA
	BIOSCharsPCI
	BIOSCharsPCMCIA
	BIOSCharsPlugAndPlay
	BIOSCharsAPM
	BIOSCharsUpgradeable
	BIOSCharsShadowing
	BIOSCharsVLVESA
	BIOSCharsESCD
	BIOSCharsBootFromCD
	BIOSCharsSelectableBoot
	BIOSCharsROMSocketed
	BIOSCharsBootFromPCMCIA
	BIOSCharsEDD
	BIOSCharsFloppyNEC
	BIOSCharsFloppyToshiba
	BIOSCharsFloppy360K
	BIOSCharsFloppy1200K
	BIOSCharsFloppy720K
	BIOSCharsFloppy2880K
	BIOSCharsPrintScreen
	BIOSCharsKeyboard8042
	BIOSCharsSerial
	BIOSCharsPrinter
	BIOSCharsCGAVideo
	BIOSCharsNECPC98
)

var biosCharNames = []string{
	2:  "BIOS characteristics not known",
	3:  "BIOS characteristics not supported",
	4:  "ISA is supported",
	5:  "MCA is supported",
	6:  "EISA is supported",
	7:  "PCI is supported",
	8:  "PC Card (PCMCIA) is supported",
	9:  "PNP is supported",
	10: "APM is supported",
	11: "BIOS is upgradeable",
	12: "BIOS shadowing is allowed",
	13: "VLB is supported",
	14: "ESCD support is available",
	15: "Boot from CD is supported",
	16: "Selectable boot is supported",
	17: "BIOS ROM is socketed",
	18: "Boot from PC Card (PCMCIA) is supported",
	19: "EDD is supported",
	20: "Japanese floppy for NEC 9800 1.2 MB is supported (int 13h)",
	21: "Japanese floppy for Toshiba 1.2 MB is supported (int 13h)",
	22: "5.25\"/360 kB floppy services are supported (int 13h)",
	23: "5.25\"/1.2 MB floppy services are supported (int 13h)",
	24: "3.5\"/720 kB floppy services are supported (int 13h)",
	25: "3.5\"/2.88 MB floppy services are supported (int 13h)",
	26: "Print screen service is supported (int 5h)",
	27: "8042 keyboard services are supported (int 9h)",
	28: "Serial services are supported (int 14h)",
	29: "Printer services are supported (int 17h)",
	30: "CGA/mono video services are supported (int 10h)",
	31: "NEC PC-98",
}

// Flags names the defined bits that are set; vendor bits are left out.
func (c BIOSChars) Flags() []string {
	return flagNames(c&0xFFFFFFFC, biosCharNames)
}

func (c BIOSChars) String() string {
	return joinFlags(c&0xFFFFFFFC, biosCharNames)
}

type BIOSCharsExt1 uint8

const (
	BIOSCharsExt1ACPI BIOSCharsExt1 = 1 << iota
	BIOSCharsExt1USBLegacy
	BIOSCharsExt1AGP
	BIOSCharsExt1I2OBoot
	BIOSCharsExt1LS120Boot
	BIOSCharsExt1ATAPIZIPBoot
	BIOSCharsExt11394Boot
	BIOSCharsExt1SmartBattery
)

var biosCharExt1Names = []string{
	"ACPI is supported",
	"USB legacy is supported",
	"AGP is supported",
	"I2O boot is supported",
	"LS-120 boot is supported",
	"ATAPI Zip drive boot is supported",
	"IEEE 1394 boot is supported",
	"Smart battery is supported",
}

func (c BIOSCharsExt1) Flags() []string { return flagNames(c, biosCharExt1Names) }
func (c BIOSCharsExt1) String() string { return joinFlags(c, biosCharExt1Names) }

type BIOSCharsExt2 uint8

const (
	BIOSCharsExt2BootSpecification BIOSCharsExt2 = 1 << iota
	BIOSCharsExt2NetworkBoot
	BIOSCharsExt2TargetedContent
	BIOSCharsExt2UEFI
	BIOSCharsExt2VirtualMachine
	BIOSCharsExt2ManufacturingMode
	BIOSCharsExt2ManufacturingModeEnabled
)

var biosCharExt2Names = []string{
	"BIOS boot specification is supported",
	"Function key-initiated network boot is supported",
	"Targeted content distribution is supported",
	"UEFI is supported",
	"System is a virtual machine",
	"Manufacturing mode is supported",
	"Manufacturing mode is enabled",
}

func (c BIOSCharsExt2) Flags() []string { return flagNames(c, biosCharExt2Names) }
func (c BIOSCharsExt2) String() string { return joinFlags(c, biosCharExt2Names) }
