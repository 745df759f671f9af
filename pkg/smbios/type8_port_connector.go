package smbios

// PortConnectorInformation is SMBIOS type 8.
type PortConnectorInformation struct {
	Parts
}

func (p *PortConnectorInformation) InternalReferenceDesignator() Field[Text] { return p.StringAt(0x04) }
func (p *PortConnectorInformation) InternalConnectorType() Field[uint8] { return p.ByteAt(0x05) }
func (p *PortConnectorInformation) ExternalReferenceDesignator() Field[Text] { return p.StringAt(0x06) }
func (p *PortConnectorInformation) ExternalConnectorType() Field[uint8] { return p.ByteAt(0x07) }
func (p *PortConnectorInformation) PortType() Field[uint8] { return p.ByteAt(0x08) }
