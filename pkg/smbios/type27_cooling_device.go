package smbios

// CoolingDevice is SMBIOS type 27.
type CoolingDevice struct {
	Parts
}

func (c *CoolingDevice) TemperatureProbeHandle() Field[Handle] { return c.HandleAt(0x04) }

// DeviceTypeAndStatus packs status (7:5) and device type (4:0).
func (c *CoolingDevice) DeviceTypeAndStatus() Field[uint8] { return c.ByteAt(0x06) }
func (c *CoolingDevice) CoolingUnitGroup() Field[uint8] { return c.ByteAt(0x07) }
func (c *CoolingDevice) OEMDefined() Field[uint32] { return c.DwordAt(0x08) }

// NominalSpeed is in rpm, 0x8000 when unknown.
func (c *CoolingDevice) NominalSpeed() Field[uint16] { return c.WordAt(0x0C) }

// 2.7+
func (c *CoolingDevice) Description() Field[Text] { return c.StringAt(0x0E) }
