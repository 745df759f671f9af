package smbios

// probe is the layout shared by voltage (26), temperature (28) and
// electrical current (29) probes. Readings hold 0x8000 when unknown; units
// are mV, 1/10 degC or mA respectively.
type probe struct {
	Parts
}

func (p *probe) Description() Field[Text] { return p.StringAt(0x04) }

// LocationAndStatus packs status (7:5) and location (4:0).
func (p *probe) LocationAndStatus() Field[uint8] { return p.ByteAt(0x05) }
func (p *probe) MaximumValue() Field[uint16] { return p.WordAt(0x06) }
func (p *probe) MinimumValue() Field[uint16] { return p.WordAt(0x08) }
func (p *probe) Resolution() Field[uint16] { return p.WordAt(0x0A) }
func (p *probe) Tolerance() Field[uint16] { return p.WordAt(0x0C) }
func (p *probe) Accuracy() Field[uint16] { return p.WordAt(0x0E) }
func (p *probe) OEMDefined() Field[uint32] { return p.DwordAt(0x10) }
func (p *probe) NominalValue() Field[uint16] { return p.WordAt(0x14) }

func (p *probe) Status() Field[uint8] {
	return convert(p.LocationAndStatus(), func(v uint8) uint8 { return v >> 5 })
}

func (p *probe) Location() Field[uint8] {
	return convert(p.LocationAndStatus(), func(v uint8) uint8 { return v & 0x1F })
}

// VoltageProbe is SMBIOS type 26.
type VoltageProbe struct {
	probe
}

// TemperatureProbe is SMBIOS type 28.
type TemperatureProbe struct {
	probe
}

// ElectricalCurrentProbe is SMBIOS type 29.
type ElectricalCurrentProbe struct {
	probe
}
