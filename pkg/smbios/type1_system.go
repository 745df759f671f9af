package smbios

import (
	"github.com/google/uuid"
)

// SystemInformation is SMBIOS type 1.
type SystemInformation struct {
	Parts
}

func (s *SystemInformation) Manufacturer() Field[Text] { return s.StringAt(0x04) }
func (s *SystemInformation) ProductName() Field[Text] { return s.StringAt(0x05) }
func (s *SystemInformation) SystemVersion() Field[Text] { return s.StringAt(0x06) }
func (s *SystemInformation) SerialNumber() Field[Text] { return s.StringAt(0x07) }

// UUID decodes the system UUID. Since 2.6 the first three fields are
// stored little-endian; older tables store all bytes in network order.
func (s *SystemInformation) UUID() Field[uuid.UUID] {
	raw, ok := s.BytesAt(0x08, 16).Get()
	if !ok {
		return Field[uuid.UUID]{}
	}

	var u uuid.UUID
	copy(u[:], raw)
	if v, known := s.Version(); !known || v.AtLeast(2, 6) {
		u[0], u[1], u[2], u[3] = raw[3], raw[2], raw[1], raw[0]
		u[4], u[5] = raw[5], raw[4]
		u[6], u[7] = raw[7], raw[6]
	}
	return fieldOf(u)
}

// UUIDState reports whether the UUID is present, all 0xFF meaning not yet
// settable and all zero meaning absent.
func (s *SystemInformation) UUIDState() Field[UUIDState] {
	raw, ok := s.BytesAt(0x08, 16).Get()
	if !ok {
		return Field[UUIDState]{}
	}

	zero, ff := true, true
	for _, b := range raw {
		zero = zero && b == 0x00
		ff = ff && b == 0xFF
	}
	switch {
	case zero:
		return fieldOf(UUIDNotPresent)
	case ff:
		return fieldOf(UUIDNotSettable)
	}
	return fieldOf(UUIDPresent)
}

func (s *SystemInformation) WakeUpType() Field[WakeUpType] { return cast[WakeUpType](s.ByteAt(0x18)) }

// 2.4+
func (s *SystemInformation) SKUNumber() Field[Text] { return s.StringAt(0x19) }
func (s *SystemInformation) Family() Field[Text] { return s.StringAt(0x1A) }

type UUIDState uint8

const (
	UUIDPresent UUIDState = iota
	UUIDNotPresent
	UUIDNotSettable
)

func (u UUIDState) String() string {
	return enumName(u, map[UUIDState]string{
		UUIDPresent:     "Present",
		UUIDNotPresent:  "Not Present",
		UUIDNotSettable: "Not Settable",
	})
}

type WakeUpType uint8

const (
	WakeUpTypeReserved WakeUpType = iota
	WakeUpTypeOther
	WakeUpTypeUnknown
	WakeUpTypeAPMTimer
	WakeUpTypeModemRing
	WakeUpTypeLANRemote
	WakeUpTypePowerSwitch
	WakeUpTypePCIPME
	WakeUpTypeACPowerRestored
)

var wakeUpTypeNames = map[WakeUpType]string{
	WakeUpTypeReserved:        "Reserved",
	WakeUpTypeOther:           "Other",
	WakeUpTypeUnknown:         "Unknown",
	WakeUpTypeAPMTimer:        "APM Timer",
	WakeUpTypeModemRing:       "Modem Ring",
	WakeUpTypeLANRemote:       "LAN Remote",
	WakeUpTypePowerSwitch:     "Power Switch",
	WakeUpTypePCIPME:          "PCI PME#",
	WakeUpTypeACPowerRestored: "AC Power Restored",
}

func (w WakeUpType) String() string { return enumName(w, wakeUpTypeNames) }
