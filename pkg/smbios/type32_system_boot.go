package smbios

// SystemBootInformation is SMBIOS type 32.
type SystemBootInformation struct {
	Parts
}

// BootStatus is the status block at 0Ah, up to the end of the structure.
// The first byte is the status code, 0 meaning no errors.
func (s *SystemBootInformation) BootStatus() Field[[]byte] {
	return s.BytesAt(0x0A, s.Length()-0x0A)
}

func (s *SystemBootInformation) BootStatusCode() Field[uint8] { return s.ByteAt(0x0A) }
