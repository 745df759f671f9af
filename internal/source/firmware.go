package source

// Firmware asks Windows for the raw SMBIOS firmware table ('RSMB'). The
// result is enveloped.
type Firmware struct{}

func (Firmware) Name() string {
	return "firmware"
}
