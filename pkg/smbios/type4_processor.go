package smbios

import "fmt"

// ProcessorInformation is SMBIOS type 4.
type ProcessorInformation struct {
	Parts
}

func (p *ProcessorInformation) SocketDesignation() Field[Text] { return p.StringAt(0x04) }
func (p *ProcessorInformation) ProcessorType() Field[ProcessorType] {
	return cast[ProcessorType](p.ByteAt(0x05))
}
func (p *ProcessorInformation) Family() Field[uint8] { return p.ByteAt(0x06) }
func (p *ProcessorInformation) Manufacturer() Field[Text] { return p.StringAt(0x07) }

// ID is the raw CPUID-derived identification qword.
func (p *ProcessorInformation) ID() Field[uint64] { return p.QwordAt(0x08) }
func (p *ProcessorInformation) ProcessorVersion() Field[Text] { return p.StringAt(0x10) }
func (p *ProcessorInformation) Voltage() Field[uint8] { return p.ByteAt(0x11) }

// ExternalClock, MaxSpeed and CurrentSpeed are in MHz, 0 when unknown.
func (p *ProcessorInformation) ExternalClock() Field[uint16] { return p.WordAt(0x12) }
func (p *ProcessorInformation) MaxSpeed() Field[uint16] { return p.WordAt(0x14) }
func (p *ProcessorInformation) CurrentSpeed() Field[uint16] { return p.WordAt(0x16) }

func (p *ProcessorInformation) Status() Field[ProcessorStatus] {
	return cast[ProcessorStatus](p.ByteAt(0x18))
}

func (p *ProcessorInformation) Upgrade() Field[ProcessorUpgrade] {
	return cast[ProcessorUpgrade](p.ByteAt(0x19))
}

// 2.1+
func (p *ProcessorInformation) L1CacheHandle() Field[Handle] { return p.HandleAt(0x1A) }
func (p *ProcessorInformation) L2CacheHandle() Field[Handle] { return p.HandleAt(0x1C) }
func (p *ProcessorInformation) L3CacheHandle() Field[Handle] { return p.HandleAt(0x1E) }

// 2.3+
func (p *ProcessorInformation) SerialNumber() Field[Text] { return p.StringAt(0x20) }
func (p *ProcessorInformation) AssetTag() Field[Text] { return p.StringAt(0x21) }
func (p *ProcessorInformation) PartNumber() Field[Text] { return p.StringAt(0x22) }

// 2.5+
func (p *ProcessorInformation) CoreCount() Field[uint8] { return p.ByteAt(0x23) }
func (p *ProcessorInformation) CoreEnabled() Field[uint8] { return p.ByteAt(0x24) }
func (p *ProcessorInformation) ThreadCount() Field[uint8] { return p.ByteAt(0x25) }
func (p *ProcessorInformation) Characteristics() Field[ProcessorCharacteristics] {
	return cast[ProcessorCharacteristics](p.WordAt(0x26))
}

// 2.6+
func (p *ProcessorInformation) Family2() Field[ProcessorFamily] {
	return cast[ProcessorFamily](p.WordAt(0x28))
}

// 3.0+
func (p *ProcessorInformation) CoreCount2() Field[uint16] { return p.WordAt(0x2A) }
func (p *ProcessorInformation) CoreEnabled2() Field[uint16] { return p.WordAt(0x2C) }
func (p *ProcessorInformation) ThreadCount2() Field[uint16] { return p.WordAt(0x2E) }

func (p *ProcessorInformation) ThreadEnabled() Field[uint16] {
	return since(p.Parts, 3, 6, p.WordAt(0x30))
}

func (p *ProcessorInformation) SocketType() Field[Text] {
	return since(p.Parts, 3, 8, p.StringAt(0x32))
}

// EffectiveFamily resolves the 0xFE escape to Family2.
func (p *ProcessorInformation) EffectiveFamily() Field[ProcessorFamily] {
	f, ok := p.Family().Get()
	if !ok {
		return Field[ProcessorFamily]{}
	}
	if f == 0xFE {
		if f2, ok := p.Family2().Get(); ok {
			return fieldOf(f2)
		}
	}
	return fieldOf(ProcessorFamily(f))
}

// Count fields hold 0xFF when the real value only fits the 16-bit
// variant.
func effectiveCount(short Field[uint8], long Field[uint16]) Field[uint16] {
	v, ok := short.Get()
	if !ok {
		return Field[uint16]{}
	}
	if v == 0xFF {
		if l, ok := long.Get(); ok {
			return fieldOf(l)
		}
	}
	return fieldOf(uint16(v))
}

func (p *ProcessorInformation) EffectiveCoreCount() Field[uint16] {
	return effectiveCount(p.CoreCount(), p.CoreCount2())
}

func (p *ProcessorInformation) EffectiveCoreEnabled() Field[uint16] {
	return effectiveCount(p.CoreEnabled(), p.CoreEnabled2())
}

func (p *ProcessorInformation) EffectiveThreadCount() Field[uint16] {
	return effectiveCount(p.ThreadCount(), p.ThreadCount2())
}

// VoltageVolts decodes the voltage byte. In legacy mode (bit 7 clear) the
// lowest set capability bit wins.
func (p *ProcessorInformation) VoltageVolts() Field[float64] {
	return convert(p.Voltage(), func(v uint8) float64 {
		if v&0x80 != 0 {
			return float64(v&0x7F) / 10
		}
		switch {
		case v&0x01 != 0:
			return 5.0
		case v&0x02 != 0:
			return 3.3
		case v&0x04 != 0:
			return 2.9
		}
		return 0
	})
}

type ProcessorType uint8

const (
	ProcessorTypeOther ProcessorType = iota + 1
	ProcessorTypeUnknown
	ProcessorTypeCentral
	ProcessorTypeMath
	ProcessorTypeDSP
	ProcessorTypeVideo
)

var processorTypeNames = map[ProcessorType]string{
	ProcessorTypeOther:   "Other",
	ProcessorTypeUnknown: "Unknown",
	ProcessorTypeCentral: "Central Processor",
	ProcessorTypeMath:    "Math Processor",
	ProcessorTypeDSP:     "DSP Processor",
	ProcessorTypeVideo:   "Video Processor",
}

func (t ProcessorType) String() string { return enumName(t, processorTypeNames) }

// ProcessorFamily holds the 16-bit family code. Only commonly deployed
// families are named.
type ProcessorFamily uint16

var processorFamilyNames = map[ProcessorFamily]string{
	0x01:  "Other",
	0x02:  "Unknown",
	0x03:  "8086",
	0x0B:  "Pentium",
	0x0F:  "Celeron",
	0x28:  "Core Duo",
	0x2B:  "Atom",
	0x6B:  "Zen",
	0x83:  "Athlon 64",
	0x84:  "Opteron",
	0xB3:  "Xeon",
	0xB5:  "Xeon MP",
	0xBF:  "Core 2 Duo",
	0xC6:  "Core i7",
	0xCD:  "Core i5",
	0xCE:  "Core i3",
	0xCF:  "Core i9",
	0xFE:  "Use Family 2",
	0x100: "ARMv7",
	0x101: "ARMv8",
	0x102: "ARMv9",
	0x118: "ARM",
	0x200: "RISC-V RV32",
	0x201: "RISC-V RV64",
	0x202: "RISC-V RV128",
	0x258: "LoongArch",
}

func (f ProcessorFamily) String() string { return enumName(f, processorFamilyNames) }

// ProcessorStatus packs the socket-populated bit (6) and the CPU status
// (bits 2:0).
type ProcessorStatus uint8

var processorStatusNames = []string{
	"Unknown", "Enabled", "Disabled By User", "Disabled By BIOS", "Idle", "", "", "Other",
}

func (s ProcessorStatus) Populated() bool {
	return s&0x40 != 0
}

func (s ProcessorStatus) String() string {
	if !s.Populated() {
		return "Unpopulated"
	}
	name := processorStatusNames[s&0x07]
	if name == "" {
		name = fmt.Sprintf("Reserved %d", s&0x07)
	}
	return "Populated, " + name
}

type ProcessorUpgrade uint8

var processorUpgradeNames = map[ProcessorUpgrade]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "Daughter Board",
	0x04: "ZIF Socket",
	0x06: "None",
	0x14: "Socket LGA771",
	0x15: "Socket LGA775",
	0x17: "Socket AM2",
	0x19: "Socket LGA1366",
	0x1B: "Socket AM3",
	0x1D: "Socket LGA1156",
	0x1E: "Socket LGA1567",
	0x25: "Socket LGA1356",
	0x26: "Socket LGA2011",
	0x2B: "Socket LGA2011-3",
	0x2D: "Socket LGA1150",
	0x31: "Socket AM4",
	0x32: "Socket LGA1151",
	0x36: "Socket LGA3647-1",
	0x37: "Socket SP3",
	0x38: "Socket SP3r2",
	0x39: "Socket LGA2066",
	0x3D: "Socket LGA4189",
	0x3E: "Socket LGA1200",
	0x3F: "Socket LGA4677",
	0x40: "Socket LGA1700",
	0x47: "Socket LGA5773",
	0x49: "Socket AM5",
	0x4A: "Socket SP5",
	0x4B: "Socket SP6",
	0x4F: "Socket LGA4710",
	0x50: "Socket LGA7529",
	0x55: "Socket LGA1851",
	0xFE: "Use Socket Type",
}

func (u ProcessorUpgrade) String() string { return enumName(u, processorUpgradeNames) }

type ProcessorCharacteristics uint16

const (
	ProcessorChars64Bit ProcessorCharacteristics = 1 << (iota + 2)
	ProcessorCharsMultiCore
	ProcessorCharsHardwareThread
	ProcessorCharsExecuteProtection
	ProcessorCharsEnhancedVirtualization
	ProcessorCharsPowerPerformanceControl
	ProcessorChars128Bit
	ProcessorCharsArm64SoCID
)

var processorCharNames = []string{
	1: "Unknown",
	2: "64-bit capable",
	3: "Multi-Core",
	4: "Hardware Thread",
	5: "Execute Protection",
	6: "Enhanced Virtualization",
	7: "Power/Performance Control",
	8: "128-bit Capable",
	9: "Arm64 SoC ID",
}

func (c ProcessorCharacteristics) Flags() []string { return flagNames(c&^1, processorCharNames) }
func (c ProcessorCharacteristics) String() string { return joinFlags(c&^1, processorCharNames) }
