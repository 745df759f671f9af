package smbios

// SystemReset is SMBIOS type 23. Counts and timers hold 0xFFFF when
// unknown.
type SystemReset struct {
	Parts
}

func (r *SystemReset) Capabilities() Field[uint8] { return r.ByteAt(0x04) }
func (r *SystemReset) ResetCount() Field[uint16] { return r.WordAt(0x05) }
func (r *SystemReset) ResetLimit() Field[uint16] { return r.WordAt(0x07) }
func (r *SystemReset) TimerInterval() Field[uint16] { return r.WordAt(0x09) }
func (r *SystemReset) Timeout() Field[uint16] { return r.WordAt(0x0B) }

func (r *SystemReset) WatchdogEnabled() Field[bool] {
	return convert(r.Capabilities(), func(v uint8) bool { return v&0x01 != 0 })
}
