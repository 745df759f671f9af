package smbios

// MemoryError32 is SMBIOS type 18. Addresses hold 0x80000000 when unknown.
type MemoryError32 struct {
	Parts
}

func (e *MemoryError32) ErrorType() Field[uint8] { return e.ByteAt(0x04) }
func (e *MemoryError32) ErrorGranularity() Field[uint8] { return e.ByteAt(0x05) }
func (e *MemoryError32) ErrorOperation() Field[uint8] { return e.ByteAt(0x06) }
func (e *MemoryError32) VendorSyndrome() Field[uint32] { return e.DwordAt(0x07) }
func (e *MemoryError32) MemoryArrayErrorAddress() Field[uint32] { return e.DwordAt(0x0B) }
func (e *MemoryError32) DeviceErrorAddress() Field[uint32] { return e.DwordAt(0x0F) }
func (e *MemoryError32) ErrorResolution() Field[uint32] { return e.DwordAt(0x13) }

// MemoryError64 is SMBIOS type 33.
type MemoryError64 struct {
	Parts
}

func (e *MemoryError64) ErrorType() Field[uint8] { return e.ByteAt(0x04) }
func (e *MemoryError64) ErrorGranularity() Field[uint8] { return e.ByteAt(0x05) }
func (e *MemoryError64) ErrorOperation() Field[uint8] { return e.ByteAt(0x06) }
func (e *MemoryError64) VendorSyndrome() Field[uint32] { return e.DwordAt(0x07) }
func (e *MemoryError64) MemoryArrayErrorAddress() Field[uint64] { return e.QwordAt(0x0B) }
func (e *MemoryError64) DeviceErrorAddress() Field[uint64] { return e.QwordAt(0x13) }
func (e *MemoryError64) ErrorResolution() Field[uint32] { return e.DwordAt(0x1B) }
