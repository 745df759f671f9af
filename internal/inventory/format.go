package inventory

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zenithax-cc/dmidecode/pkg/smbios"
)

func text(f smbios.Field[smbios.Text]) string {
	return strings.TrimSpace(f.Or(smbios.Text{}).String())
}

func stringer[T fmt.Stringer](f smbios.Field[T]) string {
	v, ok := f.Get()
	if !ok {
		return ""
	}
	return v.String()
}

func formatMHz(f smbios.Field[uint16]) string {
	v, ok := f.Get()
	if !ok || v == 0 {
		return ""
	}
	return strconv.Itoa(int(v)) + " MHz"
}

func count(f smbios.Field[uint16]) string {
	v, ok := f.Get()
	if !ok || v == 0 {
		return ""
	}
	return strconv.Itoa(int(v))
}

func bitWidth(f smbios.Field[uint16]) string {
	v, ok := f.Get()
	if !ok || v == 0 || v == 0xFFFF {
		return unknownValue
	}
	return fmt.Sprintf("%d bits", v)
}

func speed(f smbios.Field[uint32]) string {
	v, ok := f.Get()
	if !ok || v == 0 {
		return unknownValue
	}
	return fmt.Sprintf("%d MT/s", v)
}

// voltage renders millivolts.
func voltage(f smbios.Field[uint16]) string {
	v, ok := f.Get()
	switch {
	case !ok || v == 0:
		return unknownValue
	case v%100 == 0:
		return fmt.Sprintf("%.1f V", float32(v)/1000.0)
	default:
		return fmt.Sprintf("%g V", float32(v)/1000.0)
	}
}

func rank(f smbios.Field[uint8]) string {
	v, ok := f.Get()
	if !ok || v == 0 {
		return unknownValue
	}
	return strconv.Itoa(int(v))
}
