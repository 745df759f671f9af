package smbios

// OutOfBandRemoteAccess is SMBIOS type 30.
type OutOfBandRemoteAccess struct {
	Parts
}

func (o *OutOfBandRemoteAccess) ManufacturerName() Field[Text] { return o.StringAt(0x04) }

// Connections bit 0 allows inbound and bit 1 outbound connections.
func (o *OutOfBandRemoteAccess) Connections() Field[uint8] { return o.ByteAt(0x05) }
