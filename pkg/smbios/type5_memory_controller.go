package smbios

// MemoryControllerInformation is SMBIOS type 5, obsolete since 2.1.
type MemoryControllerInformation struct {
	Parts
}

func (m *MemoryControllerInformation) ErrorDetectingMethod() Field[uint8] { return m.ByteAt(0x04) }
func (m *MemoryControllerInformation) ErrorCorrectingCapability() Field[uint8] { return m.ByteAt(0x05) }
func (m *MemoryControllerInformation) SupportedInterleave() Field[uint8] { return m.ByteAt(0x06) }
func (m *MemoryControllerInformation) CurrentInterleave() Field[uint8] { return m.ByteAt(0x07) }

// MaximumMemoryModuleSize is a power of two in MB.
func (m *MemoryControllerInformation) MaximumMemoryModuleSize() Field[uint8] { return m.ByteAt(0x08) }
func (m *MemoryControllerInformation) SupportedSpeeds() Field[uint16] { return m.WordAt(0x09) }
func (m *MemoryControllerInformation) SupportedMemoryTypes() Field[uint16] { return m.WordAt(0x0B) }
func (m *MemoryControllerInformation) MemoryModuleVoltage() Field[uint8] { return m.ByteAt(0x0D) }
func (m *MemoryControllerInformation) NumberOfSlots() Field[uint8] { return m.ByteAt(0x0E) }

// AssociatedSlotHandles lists the type 6 structures of this controller.
func (m *MemoryControllerInformation) AssociatedSlotHandles() Field[[]Handle] { return m.handles(0x0E) }

// EnabledErrorCorrectingCapabilities follows the slot handles (2.1+).
func (m *MemoryControllerInformation) EnabledErrorCorrectingCapabilities() Field[uint8] {
	n, ok := m.NumberOfSlots().Get()
	if !ok {
		return Field[uint8]{}
	}
	return m.ByteAt(0x0F + 2*int(n))
}
