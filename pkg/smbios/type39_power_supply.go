package smbios

// SystemPowerSupply is SMBIOS type 39.
type SystemPowerSupply struct {
	Parts
}

func (p *SystemPowerSupply) PowerUnitGroup() Field[uint8] { return p.ByteAt(0x04) }
func (p *SystemPowerSupply) Location() Field[Text] { return p.StringAt(0x05) }
func (p *SystemPowerSupply) DeviceName() Field[Text] { return p.StringAt(0x06) }
func (p *SystemPowerSupply) Manufacturer() Field[Text] { return p.StringAt(0x07) }
func (p *SystemPowerSupply) SerialNumber() Field[Text] { return p.StringAt(0x08) }
func (p *SystemPowerSupply) AssetTagNumber() Field[Text] { return p.StringAt(0x09) }
func (p *SystemPowerSupply) ModelPartNumber() Field[Text] { return p.StringAt(0x0A) }
func (p *SystemPowerSupply) RevisionLevel() Field[Text] { return p.StringAt(0x0B) }

// MaxPowerCapacity is in milliwatts, 0x8000 when unknown.
func (p *SystemPowerSupply) MaxPowerCapacity() Field[uint16] { return p.WordAt(0x0C) }

// Characteristics packs supply type, status, input range switching and
// the plugged, present and hot-replaceable bits.
func (p *SystemPowerSupply) Characteristics() Field[uint16] { return p.WordAt(0x0E) }
func (p *SystemPowerSupply) InputVoltageProbeHandle() Field[Handle] { return p.HandleAt(0x10) }
func (p *SystemPowerSupply) CoolingDeviceHandle() Field[Handle] { return p.HandleAt(0x12) }
func (p *SystemPowerSupply) InputCurrentProbeHandle() Field[Handle] { return p.HandleAt(0x14) }

func (p *SystemPowerSupply) HotReplaceable() Field[bool] {
	return convert(p.Characteristics(), func(v uint16) bool { return v&0x01 != 0 })
}

func (p *SystemPowerSupply) SupplyPresent() Field[bool] {
	return convert(p.Characteristics(), func(v uint16) bool { return v&0x02 != 0 })
}
