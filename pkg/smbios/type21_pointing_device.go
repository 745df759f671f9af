package smbios

// BuiltInPointingDevice is SMBIOS type 21.
type BuiltInPointingDevice struct {
	Parts
}

func (p *BuiltInPointingDevice) DeviceType() Field[uint8] { return p.ByteAt(0x04) }
func (p *BuiltInPointingDevice) InterfaceType() Field[uint8] { return p.ByteAt(0x05) }
func (p *BuiltInPointingDevice) NumberOfButtons() Field[uint8] { return p.ByteAt(0x06) }
