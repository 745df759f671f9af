package smbios

import "fmt"

const (
	_         = iota
	KB uint64 = 1 << (iota * 10)
	MB
	GB
	TB
)

var sizeUnits = []struct {
	unit   uint64
	suffix string
}{
	{TB, "TB"},
	{GB, "GB"},
	{MB, "MB"},
	{KB, "KB"},
}

// FormatSize renders a byte count in the largest unit that divides it.
func FormatSize(v uint64) string {
	for _, u := range sizeUnits {
		if v >= u.unit && v%u.unit == 0 {
			return fmt.Sprintf("%d %s", v/u.unit, u.suffix)
		}
	}
	return fmt.Sprintf("%d B", v)
}
