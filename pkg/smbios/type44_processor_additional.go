package smbios

// ProcessorAdditionalInformation is SMBIOS type 44.
type ProcessorAdditionalInformation struct {
	Parts
}

func (p *ProcessorAdditionalInformation) ReferencedHandle() Field[Handle] { return p.HandleAt(0x04) }
func (p *ProcessorAdditionalInformation) BlockLength() Field[uint8] { return p.ByteAt(0x06) }

// ProcessorType names the architecture of the data block, e.g. 0x07 for
// RISC-V RV64 or 0x0A for LoongArch.
func (p *ProcessorAdditionalInformation) ProcessorType() Field[uint8] { return p.ByteAt(0x07) }

func (p *ProcessorAdditionalInformation) ProcessorSpecificData() Field[[]byte] {
	n, ok := p.BlockLength().Get()
	if !ok {
		return Field[[]byte]{}
	}
	return p.BytesAt(0x08, int(n))
}
