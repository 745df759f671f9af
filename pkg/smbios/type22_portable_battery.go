package smbios

// PortableBattery is SMBIOS type 22.
type PortableBattery struct {
	Parts
}

func (b *PortableBattery) Location() Field[Text] { return b.StringAt(0x04) }
func (b *PortableBattery) Manufacturer() Field[Text] { return b.StringAt(0x05) }
func (b *PortableBattery) ManufactureDate() Field[Text] { return b.StringAt(0x06) }
func (b *PortableBattery) SerialNumber() Field[Text] { return b.StringAt(0x07) }
func (b *PortableBattery) DeviceName() Field[Text] { return b.StringAt(0x08) }
func (b *PortableBattery) DeviceChemistry() Field[uint8] { return b.ByteAt(0x09) }

// DesignCapacity is in mWh before applying DesignCapacityMultiplier.
func (b *PortableBattery) DesignCapacity() Field[uint16] { return b.WordAt(0x0A) }
func (b *PortableBattery) DesignVoltage() Field[uint16] { return b.WordAt(0x0C) }
func (b *PortableBattery) SBDSVersionNumber() Field[Text] { return b.StringAt(0x0E) }
func (b *PortableBattery) MaximumErrorInBatteryData() Field[uint8] { return b.ByteAt(0x0F) }
func (b *PortableBattery) SBDSSerialNumber() Field[uint16] { return b.WordAt(0x10) }

// SBDSManufactureDate packs (year-1980)<<9 | month<<5 | day.
func (b *PortableBattery) SBDSManufactureDate() Field[uint16] { return b.WordAt(0x12) }
func (b *PortableBattery) SBDSDeviceChemistry() Field[Text] { return b.StringAt(0x14) }
func (b *PortableBattery) DesignCapacityMultiplier() Field[uint8] { return b.ByteAt(0x15) }
func (b *PortableBattery) OEMSpecific() Field[uint32] { return b.DwordAt(0x16) }

func (b *PortableBattery) DesignCapacityMWh() Field[uint32] {
	c, ok := b.DesignCapacity().Get()
	if !ok {
		return Field[uint32]{}
	}
	return fieldOf(uint32(c) * uint32(b.DesignCapacityMultiplier().Or(1)))
}
