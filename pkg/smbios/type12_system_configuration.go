package smbios

// SystemConfigurationOptions is SMBIOS type 12, jumper and switch notes.
type SystemConfigurationOptions struct {
	Parts
}

func (s *SystemConfigurationOptions) Count() Field[uint8] { return s.ByteAt(0x04) }
func (s *SystemConfigurationOptions) Options() Field[[]string] { return countedStrings(s.Parts) }
