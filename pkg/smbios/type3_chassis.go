package smbios

import "fmt"

// ChassisInformation is SMBIOS type 3.
type ChassisInformation struct {
	Parts
}

func (c *ChassisInformation) Manufacturer() Field[Text] { return c.StringAt(0x04) }

// ChassisType strips the lock bit from the type byte.
func (c *ChassisInformation) ChassisType() Field[ChassisType] {
	return convert(c.ByteAt(0x05), func(v uint8) ChassisType { return ChassisType(v & 0x7F) })
}

// Locked reports whether a chassis lock is present.
func (c *ChassisInformation) Locked() Field[bool] {
	return convert(c.ByteAt(0x05), func(v uint8) bool { return v&0x80 != 0 })
}

func (c *ChassisInformation) ChassisVersion() Field[Text] { return c.StringAt(0x06) }
func (c *ChassisInformation) SerialNumber() Field[Text] { return c.StringAt(0x07) }
func (c *ChassisInformation) AssetTag() Field[Text] { return c.StringAt(0x08) }

// 2.1+
func (c *ChassisInformation) BootUpState() Field[ChassisState] { return cast[ChassisState](c.ByteAt(0x09)) }
func (c *ChassisInformation) PowerSupplyState() Field[ChassisState] { return cast[ChassisState](c.ByteAt(0x0A)) }
func (c *ChassisInformation) ThermalState() Field[ChassisState] { return cast[ChassisState](c.ByteAt(0x0B)) }
func (c *ChassisInformation) SecurityStatus() Field[ChassisSecurityStatus] {
	return cast[ChassisSecurityStatus](c.ByteAt(0x0C))
}

// 2.3+
func (c *ChassisInformation) OEMDefined() Field[uint32] { return c.DwordAt(0x0D) }

// Height in rack units, 0 when unspecified.
func (c *ChassisInformation) Height() Field[uint8] { return c.ByteAt(0x11) }
func (c *ChassisInformation) NumberOfPowerCords() Field[uint8] { return c.ByteAt(0x12) }

type ChassisElement struct {
	// Bit 7 selects a structure type (set) or a baseboard type (clear).
	Type    uint8
	Minimum uint8
	Maximum uint8
}

func (e ChassisElement) String() string {
	var kind string
	if e.Type&0x80 != 0 {
		kind = Type(e.Type & 0x7F).String()
	} else {
		kind = BoardType(e.Type).String()
	}
	return fmt.Sprintf("%s %d-%d", kind, e.Minimum, e.Maximum)
}

func (c *ChassisInformation) ContainedElements() Field[[]ChassisElement] {
	n, okN := c.ByteAt(0x13).Get()
	m, okM := c.ByteAt(0x14).Get()
	if !okN || !okM {
		return Field[[]ChassisElement]{}
	}
	if m < 3 {
		return fieldOf([]ChassisElement{})
	}
	return fieldOf(records(c.Parts, 0x15, int(n), int(m), func(off int) ChassisElement {
		return ChassisElement{
			Type:    c.span.data[off],
			Minimum: c.span.data[off+1],
			Maximum: c.span.data[off+2],
		}
	}))
}

// SKUNumber follows the contained elements (2.7+).
func (c *ChassisInformation) SKUNumber() Field[Text] {
	n, okN := c.ByteAt(0x13).Get()
	m, okM := c.ByteAt(0x14).Get()
	if !okN || !okM {
		return Field[Text]{}
	}
	return c.StringAt(0x15 + int(n)*int(m))
}

type ChassisType uint8

const (
	ChassisTypeOther ChassisType = iota + 1
	ChassisTypeUnknown
	ChassisTypeDesktop
	ChassisTypeLowProfileDesktop
	ChassisTypePizzaBox
	ChassisTypeMiniTower
	ChassisTypeTower
	ChassisTypePortable
	ChassisTypeLaptop
	ChassisTypeNotebook
	ChassisTypeHandHeld
	ChassisTypeDockingStation
	ChassisTypeAllInOne
	ChassisTypeSubNotebook
	ChassisTypeSpaceSaving
	ChassisTypeLunchBox
	ChassisTypeMainServer
	ChassisTypeExpansion
	ChassisTypeSubChassis
	ChassisTypeBusExpansion
	ChassisTypePeripheral
	ChassisTypeRAID
	ChassisTypeRackMount
	ChassisTypeSealedCasePC
	ChassisTypeMultiSystem
	ChassisTypeCompactPCI
	ChassisTypeAdvancedTCA
	ChassisTypeBlade
	ChassisTypeBladeEnclosure
	ChassisTypeTablet
	ChassisTypeConvertible
	ChassisTypeDetachable
	ChassisTypeIoTGateway
	ChassisTypeEmbeddedPC
	ChassisTypeMiniPC
	ChassisTypeStickPC
)

var chassisTypeNames = []string{
	"Other", "Unknown", "Desktop", "Low Profile Desktop", "Pizza Box", "Mini Tower", "Tower",
	"Portable", "Laptop", "Notebook", "Hand Held", "Docking Station", "All In One", "Sub Notebook",
	"Space-saving", "Lunch Box", "Main Server Chassis", "Expansion Chassis", "Sub Chassis",
	"Bus Expansion Chassis", "Peripheral Chassis", "RAID Chassis", "Rack Mount Chassis",
	"Sealed-case PC", "Multi-system", "CompactPCI", "AdvancedTCA", "Blade", "Blade Enclosure",
	"Tablet", "Convertible", "Detachable", "IoT Gateway", "Embedded PC", "Mini PC", "Stick PC",
}

func (t ChassisType) String() string {
	if t >= 1 && int(t) <= len(chassisTypeNames) {
		return chassisTypeNames[t-1]
	}
	return fmt.Sprintf("%#x", uint8(t))
}

type ChassisState uint8

const (
	ChassisStateOther ChassisState = iota + 1
	ChassisStateUnknown
	ChassisStateSafe
	ChassisStateWarning
	ChassisStateCritical
	ChassisStateNonRecoverable
)

var chassisStateNames = map[ChassisState]string{
	ChassisStateOther:          "Other",
	ChassisStateUnknown:        "Unknown",
	ChassisStateSafe:           "Safe",
	ChassisStateWarning:        "Warning",
	ChassisStateCritical:       "Critical",
	ChassisStateNonRecoverable: "Non-recoverable",
}

func (s ChassisState) String() string { return enumName(s, chassisStateNames) }

type ChassisSecurityStatus uint8

const (
	ChassisSecurityOther ChassisSecurityStatus = iota + 1
	ChassisSecurityUnknown
	ChassisSecurityNone
	ChassisSecurityLockedOut
	ChassisSecurityEnabled
)

var chassisSecurityNames = map[ChassisSecurityStatus]string{
	ChassisSecurityOther:     "Other",
	ChassisSecurityUnknown:   "Unknown",
	ChassisSecurityNone:      "None",
	ChassisSecurityLockedOut: "External Interface Locked Out",
	ChassisSecurityEnabled:   "External Interface Enabled",
}

func (s ChassisSecurityStatus) String() string { return enumName(s, chassisSecurityNames) }
