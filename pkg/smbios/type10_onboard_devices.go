package smbios

// OnBoardDeviceInformation is SMBIOS type 10, obsolete since 2.6 in favour
// of type 41. One structure describes several devices.
type OnBoardDeviceInformation struct {
	Parts
}

type OnBoardDevice struct {
	// Bits 6:0 hold the device type, bit 7 the enabled status.
	TypeStatus  uint8
	Description Text
}

func (d OnBoardDevice) Enabled() bool {
	return d.TypeStatus&0x80 != 0
}

func (d OnBoardDevice) DeviceType() uint8 {
	return d.TypeStatus & 0x7F
}

// Devices decodes the (type, description) pairs that fill the formatted
// area.
func (o *OnBoardDeviceInformation) Devices() Field[[]OnBoardDevice] {
	if !o.has(0x04, 2) {
		return Field[[]OnBoardDevice]{}
	}
	n := (o.Length() - headerLength) / 2
	return fieldOf(records(o.Parts, 0x04, n, 2, func(off int) OnBoardDevice {
		return OnBoardDevice{
			TypeStatus:  o.span.data[off],
			Description: o.StringAt(off + 1).value,
		}
	}))
}
