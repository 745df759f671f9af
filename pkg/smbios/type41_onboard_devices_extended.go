package smbios

// OnboardDevicesExtendedInformation is SMBIOS type 41.
type OnboardDevicesExtendedInformation struct {
	Parts
}

func (o *OnboardDevicesExtendedInformation) ReferenceDesignation() Field[Text] { return o.StringAt(0x04) }

// DeviceTypeAndStatus holds the device type in bits 6:0 and the enabled
// bit in bit 7.
func (o *OnboardDevicesExtendedInformation) DeviceTypeAndStatus() Field[uint8] { return o.ByteAt(0x05) }
func (o *OnboardDevicesExtendedInformation) DeviceTypeInstance() Field[uint8] { return o.ByteAt(0x06) }
func (o *OnboardDevicesExtendedInformation) SegmentGroupNumber() Field[uint16] { return o.WordAt(0x07) }
func (o *OnboardDevicesExtendedInformation) BusNumber() Field[uint8] { return o.ByteAt(0x09) }
func (o *OnboardDevicesExtendedInformation) DeviceFunctionNumber() Field[uint8] { return o.ByteAt(0x0A) }

func (o *OnboardDevicesExtendedInformation) Enabled() Field[bool] {
	return convert(o.DeviceTypeAndStatus(), func(v uint8) bool { return v&0x80 != 0 })
}
