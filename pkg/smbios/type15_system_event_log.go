package smbios

// SystemEventLog is SMBIOS type 15.
type SystemEventLog struct {
	Parts
}

func (s *SystemEventLog) LogAreaLength() Field[uint16] { return s.WordAt(0x04) }
func (s *SystemEventLog) LogHeaderStartOffset() Field[uint16] { return s.WordAt(0x06) }
func (s *SystemEventLog) LogDataStartOffset() Field[uint16] { return s.WordAt(0x08) }

// AccessMethod: 0-2 indexed I/O, 3 memory-mapped, 4 GPNV.
func (s *SystemEventLog) AccessMethod() Field[uint8] { return s.ByteAt(0x0A) }
func (s *SystemEventLog) LogStatus() Field[uint8] { return s.ByteAt(0x0B) }
func (s *SystemEventLog) LogChangeToken() Field[uint32] { return s.DwordAt(0x0C) }
func (s *SystemEventLog) AccessMethodAddress() Field[uint32] { return s.DwordAt(0x10) }

// 2.1+
func (s *SystemEventLog) LogHeaderFormat() Field[uint8] { return s.ByteAt(0x14) }
func (s *SystemEventLog) NumberOfSupportedLogTypeDescriptors() Field[uint8] { return s.ByteAt(0x15) }
func (s *SystemEventLog) LengthOfLogTypeDescriptor() Field[uint8] { return s.ByteAt(0x16) }

type EventLogTypeDescriptor struct {
	LogType          uint8
	VariableDataType uint8
}

func (s *SystemEventLog) SupportedLogTypeDescriptors() Field[[]EventLogTypeDescriptor] {
	n, ok1 := s.NumberOfSupportedLogTypeDescriptors().Get()
	size, ok2 := s.LengthOfLogTypeDescriptor().Get()
	if !ok1 || !ok2 {
		return Field[[]EventLogTypeDescriptor]{}
	}
	if size < 2 {
		return fieldOf([]EventLogTypeDescriptor{})
	}
	return fieldOf(records(s.Parts, 0x17, int(n), int(size), func(off int) EventLogTypeDescriptor {
		return EventLogTypeDescriptor{LogType: s.span.data[off], VariableDataType: s.span.data[off+1]}
	}))
}
