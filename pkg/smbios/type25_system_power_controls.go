package smbios

// SystemPowerControls is SMBIOS type 25. The fields are BCD encoded, 0xFF
// meaning "every".
type SystemPowerControls struct {
	Parts
}

func (s *SystemPowerControls) NextScheduledPowerOnMonth() Field[uint8] { return s.ByteAt(0x04) }
func (s *SystemPowerControls) NextScheduledPowerOnDay() Field[uint8] { return s.ByteAt(0x05) }
func (s *SystemPowerControls) NextScheduledPowerOnHour() Field[uint8] { return s.ByteAt(0x06) }
func (s *SystemPowerControls) NextScheduledPowerOnMinute() Field[uint8] { return s.ByteAt(0x07) }
func (s *SystemPowerControls) NextScheduledPowerOnSecond() Field[uint8] { return s.ByteAt(0x08) }
