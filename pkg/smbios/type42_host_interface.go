package smbios

// ManagementControllerHostInterface is SMBIOS type 42, used by Redfish
// host interfaces.
type ManagementControllerHostInterface struct {
	Parts
}

type ProtocolRecord struct {
	ProtocolType uint8
	Data         []byte
}

func (m *ManagementControllerHostInterface) InterfaceType() Field[uint8] { return m.ByteAt(0x04) }
func (m *ManagementControllerHostInterface) InterfaceDataLength() Field[uint8] { return m.ByteAt(0x05) }

func (m *ManagementControllerHostInterface) InterfaceData() Field[[]byte] {
	n, ok := m.InterfaceDataLength().Get()
	if !ok {
		return Field[[]byte]{}
	}
	return m.BytesAt(0x06, int(n))
}

// ProtocolRecords decodes the records that follow the interface data
// (3.2+). Each record is type, length, data.
func (m *ManagementControllerHostInterface) ProtocolRecords() Field[[]ProtocolRecord] {
	n, ok := m.InterfaceDataLength().Get()
	if !ok {
		return Field[[]ProtocolRecord]{}
	}
	countOff := 0x06 + int(n)
	count, ok := m.ByteAt(countOff).Get()
	if !ok {
		return Field[[]ProtocolRecord]{}
	}

	out := make([]ProtocolRecord, 0, count)
	off := countOff + 1
	for range int(count) {
		if !m.has(off, 2) {
			break
		}
		typ, size := m.span.data[off], int(m.span.data[off+1])
		data, ok := m.BytesAt(off+2, size).Get()
		if !ok {
			break
		}
		out = append(out, ProtocolRecord{ProtocolType: typ, Data: data})
		off += 2 + size
	}
	return fieldOf(out)
}
