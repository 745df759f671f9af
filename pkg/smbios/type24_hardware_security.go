package smbios

// HardwareSecurity is SMBIOS type 24.
type HardwareSecurity struct {
	Parts
}

// Settings packs four 2-bit status fields: power-on password (7:6),
// keyboard password (5:4), administrator password (3:2) and front panel
// reset (1:0).
func (h *HardwareSecurity) Settings() Field[uint8] { return h.ByteAt(0x04) }

func (h *HardwareSecurity) PowerOnPasswordStatus() Field[SecurityStatus] { return h.status(6) }
func (h *HardwareSecurity) KeyboardPasswordStatus() Field[SecurityStatus] { return h.status(4) }
func (h *HardwareSecurity) AdministratorPasswordStatus() Field[SecurityStatus] { return h.status(2) }
func (h *HardwareSecurity) FrontPanelResetStatus() Field[SecurityStatus] { return h.status(0) }

func (h *HardwareSecurity) status(shift uint) Field[SecurityStatus] {
	return convert(h.Settings(), func(v uint8) SecurityStatus { return SecurityStatus(v >> shift & 0x03) })
}

type SecurityStatus uint8

var securityStatusNames = map[SecurityStatus]string{
	0: "Disabled",
	1: "Enabled",
	2: "Not Implemented",
	3: "Unknown",
}

func (s SecurityStatus) String() string { return enumName(s, securityStatusNames) }
