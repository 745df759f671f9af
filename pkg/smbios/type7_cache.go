package smbios

// CacheInformation is SMBIOS type 7.
type CacheInformation struct {
	Parts
}

func (c *CacheInformation) SocketDesignation() Field[Text] { return c.StringAt(0x04) }

// Configuration packs level (bits 2:0, zero based), socketed (3),
// location (6:5), enabled (7) and operational mode (9:8).
func (c *CacheInformation) Configuration() Field[uint16] { return c.WordAt(0x05) }

func (c *CacheInformation) Level() Field[uint8] {
	return convert(c.Configuration(), func(v uint16) uint8 { return uint8(v&0x07) + 1 })
}

func (c *CacheInformation) Enabled() Field[bool] {
	return convert(c.Configuration(), func(v uint16) bool { return v&0x80 != 0 })
}

func (c *CacheInformation) MaximumCacheSize() Field[uint16] { return c.WordAt(0x07) }
func (c *CacheInformation) InstalledSize() Field[uint16] { return c.WordAt(0x09) }
func (c *CacheInformation) SupportedSRAMType() Field[uint16] { return c.WordAt(0x0B) }
func (c *CacheInformation) CurrentSRAMType() Field[uint16] { return c.WordAt(0x0D) }

// 2.1+
func (c *CacheInformation) CacheSpeed() Field[uint8] { return c.ByteAt(0x0F) }
func (c *CacheInformation) ErrorCorrectionType() Field[uint8] { return c.ByteAt(0x10) }
func (c *CacheInformation) SystemCacheType() Field[uint8] { return c.ByteAt(0x11) }
func (c *CacheInformation) Associativity() Field[uint8] { return c.ByteAt(0x12) }

func (c *CacheInformation) MaximumCacheSize2() Field[uint32] {
	return since(c.Parts, 3, 1, c.DwordAt(0x13))
}

func (c *CacheInformation) InstalledCacheSize2() Field[uint32] {
	return since(c.Parts, 3, 1, c.DwordAt(0x17))
}

// InstalledSizeBytes prefers the 32-bit size when present. Bit 15 (or bit
// 31) selects 64K granularity instead of 1K.
func (c *CacheInformation) InstalledSizeBytes() Field[uint64] {
	if v, ok := c.InstalledCacheSize2().Get(); ok {
		return fieldOf(cacheSize(uint64(v&0x7FFFFFFF), v&0x80000000 != 0))
	}
	return convert(c.InstalledSize(), func(v uint16) uint64 {
		return cacheSize(uint64(v&0x7FFF), v&0x8000 != 0)
	})
}

func cacheSize(n uint64, coarse bool) uint64 {
	if coarse {
		return n * 64 * KB
	}
	return n * KB
}
