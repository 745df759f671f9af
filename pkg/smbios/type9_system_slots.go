package smbios

import "fmt"

// SystemSlots is SMBIOS type 9.
type SystemSlots struct {
	Parts
}

func (s *SystemSlots) SlotDesignation() Field[Text] { return s.StringAt(0x04) }
func (s *SystemSlots) SlotType() Field[uint8] { return s.ByteAt(0x05) }
func (s *SystemSlots) SlotDataBusWidth() Field[uint8] { return s.ByteAt(0x06) }
func (s *SystemSlots) CurrentUsage() Field[SlotUsage] { return cast[SlotUsage](s.ByteAt(0x07)) }
func (s *SystemSlots) SlotLength() Field[uint8] { return s.ByteAt(0x08) }
func (s *SystemSlots) SlotID() Field[uint16] { return s.WordAt(0x09) }
func (s *SystemSlots) SlotCharacteristics1() Field[uint8] { return s.ByteAt(0x0B) }

// 2.1+
func (s *SystemSlots) SlotCharacteristics2() Field[uint8] { return s.ByteAt(0x0C) }

// 2.6+
func (s *SystemSlots) SegmentGroupNumber() Field[uint16] { return s.WordAt(0x0D) }
func (s *SystemSlots) BusNumber() Field[uint8] { return s.ByteAt(0x0F) }
func (s *SystemSlots) DeviceFunctionNumber() Field[uint8] { return s.ByteAt(0x10) }

// BusAddress formats segment, bus, device and function the way lspci does.
func (s *SystemSlots) BusAddress() Field[string] {
	seg, ok1 := s.SegmentGroupNumber().Get()
	bus, ok2 := s.BusNumber().Get()
	df, ok3 := s.DeviceFunctionNumber().Get()
	if !ok1 || !ok2 || !ok3 {
		return Field[string]{}
	}
	return fieldOf(fmt.Sprintf("%04x:%02x:%02x.%x", seg, bus, df>>3, df&0x07))
}

// 3.2+
func (s *SystemSlots) DataBusWidth() Field[uint8] { return s.ByteAt(0x11) }
func (s *SystemSlots) PeerGroupingCount() Field[uint8] { return s.ByteAt(0x12) }

type SlotPeer struct {
	SegmentGroupNumber   uint16
	BusNumber            uint8
	DeviceFunctionNumber uint8
	DataBusWidth         uint8
}

func (s *SystemSlots) PeerGroups() Field[[]SlotPeer] {
	n, ok := s.PeerGroupingCount().Get()
	if !ok {
		return Field[[]SlotPeer]{}
	}
	return fieldOf(records(s.Parts, 0x13, int(n), 5, func(off int) SlotPeer {
		return SlotPeer{
			SegmentGroupNumber:   s.WordAt(off).value,
			BusNumber:            s.span.data[off+2],
			DeviceFunctionNumber: s.span.data[off+3],
			DataBusWidth:         s.span.data[off+4],
		}
	}))
}

// afterPeers returns the offset rel bytes past the peer group list.
func (s *SystemSlots) afterPeers(rel int) (int, bool) {
	n, ok := s.PeerGroupingCount().Get()
	if !ok {
		return 0, false
	}
	return 0x13 + 5*int(n) + rel, true
}

func (s *SystemSlots) SlotInformation() Field[uint8] {
	off, ok := s.afterPeers(0)
	if !ok {
		return Field[uint8]{}
	}
	return since(s.Parts, 3, 4, s.ByteAt(off))
}

func (s *SystemSlots) SlotPhysicalWidth() Field[uint8] {
	off, ok := s.afterPeers(1)
	if !ok {
		return Field[uint8]{}
	}
	return since(s.Parts, 3, 4, s.ByteAt(off))
}

func (s *SystemSlots) SlotPitch() Field[uint16] {
	off, ok := s.afterPeers(2)
	if !ok {
		return Field[uint16]{}
	}
	return since(s.Parts, 3, 4, s.WordAt(off))
}

func (s *SystemSlots) SlotHeight() Field[uint8] {
	off, ok := s.afterPeers(4)
	if !ok {
		return Field[uint8]{}
	}
	return since(s.Parts, 3, 5, s.ByteAt(off))
}

type SlotUsage uint8

const (
	SlotUsageOther SlotUsage = iota + 1
	SlotUsageUnknown
	SlotUsageAvailable
	SlotUsageInUse
	SlotUsageUnavailable
)

var slotUsageNames = map[SlotUsage]string{
	SlotUsageOther:       "Other",
	SlotUsageUnknown:     "Unknown",
	SlotUsageAvailable:   "Available",
	SlotUsageInUse:       "In Use",
	SlotUsageUnavailable: "Unavailable",
}

func (u SlotUsage) String() string { return enumName(u, slotUsageNames) }
