package smbios

import (
	"bytes"
	"fmt"
)

// TPMDevice is SMBIOS type 43.
type TPMDevice struct {
	Parts
}

// VendorID is four ASCII bytes, NUL padded.
func (t *TPMDevice) VendorID() Field[string] {
	return convert(t.BytesAt(0x04, 4), func(b []byte) string {
		return string(bytes.TrimRight(b, "\x00"))
	})
}

func (t *TPMDevice) MajorSpecVersion() Field[uint8] { return t.ByteAt(0x08) }
func (t *TPMDevice) MinorSpecVersion() Field[uint8] { return t.ByteAt(0x09) }
func (t *TPMDevice) FirmwareVersion1() Field[uint32] { return t.DwordAt(0x0A) }
func (t *TPMDevice) FirmwareVersion2() Field[uint32] { return t.DwordAt(0x0E) }
func (t *TPMDevice) Description() Field[Text] { return t.StringAt(0x12) }
func (t *TPMDevice) Characteristics() Field[uint64] { return t.QwordAt(0x13) }
func (t *TPMDevice) OEMDefined() Field[uint32] { return t.DwordAt(0x1B) }

// FirmwareVersion depends on the TPM family: TPM 1.2 stores a version
// structure in FirmwareVersion1, TPM 2.0 two 16-bit halves in each dword.
func (t *TPMDevice) FirmwareVersion() Field[string] {
	major, ok := t.MajorSpecVersion().Get()
	fw1, ok1 := t.FirmwareVersion1().Get()
	if !ok || !ok1 {
		return Field[string]{}
	}
	switch major {
	case 1:
		return fieldOf(fmt.Sprintf("%d.%d", fw1>>16&0xFF, fw1>>24))
	case 2:
		return fieldOf(fmt.Sprintf("%d.%d", fw1>>16, fw1&0xFFFF))
	}
	return Field[string]{}
}
