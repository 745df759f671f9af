package smbios

import "fmt"

// IPMIDeviceInformation is SMBIOS type 38.
type IPMIDeviceInformation struct {
	Parts
}

func (i *IPMIDeviceInformation) InterfaceType() Field[IPMIInterfaceType] {
	return cast[IPMIInterfaceType](i.ByteAt(0x04))
}

// SpecificationRevision is BCD, major in the high nibble.
func (i *IPMIDeviceInformation) SpecificationRevision() Field[uint8] { return i.ByteAt(0x05) }
func (i *IPMIDeviceInformation) I2CTargetAddress() Field[uint8] { return i.ByteAt(0x06) }
func (i *IPMIDeviceInformation) NVStorageDeviceAddress() Field[uint8] { return i.ByteAt(0x07) }
func (i *IPMIDeviceInformation) BaseAddress() Field[uint64] { return i.QwordAt(0x08) }
func (i *IPMIDeviceInformation) BaseAddressModifier() Field[uint8] { return i.ByteAt(0x10) }
func (i *IPMIDeviceInformation) InterruptNumber() Field[uint8] { return i.ByteAt(0x11) }

func (i *IPMIDeviceInformation) SpecificationVersion() Field[string] {
	return convert(i.SpecificationRevision(), func(v uint8) string {
		return fmt.Sprintf("%d.%d", v>>4, v&0x0F)
	})
}

type IPMIInterfaceType uint8

var ipmiInterfaceNames = map[IPMIInterfaceType]string{
	0x00: "Unknown",
	0x01: "KCS (Keyboard Control Style)",
	0x02: "SMIC (Server Management Interface Chip)",
	0x03: "BT (Block Transfer)",
	0x04: "SSIF (SMBus System Interface)",
}

func (t IPMIInterfaceType) String() string { return enumName(t, ipmiInterfaceNames) }
