package smbios

import (
	"fmt"
	"strings"
)

type unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// enumName looks v up in names, falling back to its hex value.
func enumName[T unsigned](v T, names map[T]string) string {
	if s, ok := names[v]; ok {
		return s
	}
	return fmt.Sprintf("%#x", uint64(v))
}

// flagNames lists the names of the bits set in v, bit 0 first. Bits past
// the end of names are reported by number.
func flagNames[T unsigned](v T, names []string) []string {
	var out []string
	for bit := 0; bit < 64 && uint64(v)>>bit != 0; bit++ {
		if uint64(v)&(1<<bit) == 0 {
			continue
		}
		if bit < len(names) && names[bit] != "" {
			out = append(out, names[bit])
		} else {
			out = append(out, fmt.Sprintf("bit %d", bit))
		}
	}
	return out
}

func joinFlags[T unsigned](v T, names []string) string {
	return strings.Join(flagNames(v, names), ", ")
}
