package smbios

// ManagementDevice is SMBIOS type 34.
type ManagementDevice struct {
	Parts
}

func (m *ManagementDevice) Description() Field[Text] { return m.StringAt(0x04) }
func (m *ManagementDevice) DeviceType() Field[uint8] { return m.ByteAt(0x05) }
func (m *ManagementDevice) Address() Field[uint32] { return m.DwordAt(0x06) }
func (m *ManagementDevice) AddressType() Field[uint8] { return m.ByteAt(0x0A) }

// ManagementDeviceComponent is SMBIOS type 35.
type ManagementDeviceComponent struct {
	Parts
}

func (m *ManagementDeviceComponent) Description() Field[Text] { return m.StringAt(0x04) }
func (m *ManagementDeviceComponent) ManagementDeviceHandle() Field[Handle] { return m.HandleAt(0x05) }
func (m *ManagementDeviceComponent) ComponentHandle() Field[Handle] { return m.HandleAt(0x07) }
func (m *ManagementDeviceComponent) ThresholdHandle() Field[Handle] { return m.HandleAt(0x09) }

// ManagementDeviceThresholdData is SMBIOS type 36. Thresholds hold 0x8000
// when not available.
type ManagementDeviceThresholdData struct {
	Parts
}

func (m *ManagementDeviceThresholdData) LowerThresholdNonCritical() Field[uint16] { return m.WordAt(0x04) }
func (m *ManagementDeviceThresholdData) UpperThresholdNonCritical() Field[uint16] { return m.WordAt(0x06) }
func (m *ManagementDeviceThresholdData) LowerThresholdCritical() Field[uint16] { return m.WordAt(0x08) }
func (m *ManagementDeviceThresholdData) UpperThresholdCritical() Field[uint16] { return m.WordAt(0x0A) }
func (m *ManagementDeviceThresholdData) LowerThresholdNonRecoverable() Field[uint16] {
	return m.WordAt(0x0C)
}
func (m *ManagementDeviceThresholdData) UpperThresholdNonRecoverable() Field[uint16] {
	return m.WordAt(0x0E)
}
