package smbios

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is the SMBIOS version triple reported by the platform.
type Version struct {
	Major    uint8
	Minor    uint8
	Revision uint8
}

// AtLeast reports whether v is major.minor or newer.
func (v Version) AtLeast(major, minor uint8) bool {
	if v.Major != major {
		return v.Major > major
	}
	return v.Minor >= minor
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Revision)
}

// ParseVersion accepts "major.minor" or "major.minor.revision".
func ParseVersion(s string) (Version, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) < 2 || len(parts) > 3 {
		return Version{}, fmt.Errorf("smbios: invalid version %q", s)
	}

	var nums [3]uint8
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 8)
		if err != nil {
			return Version{}, fmt.Errorf("smbios: invalid version %q: %w", s, err)
		}
		nums[i] = uint8(n)
	}

	return Version{Major: nums[0], Minor: nums[1], Revision: nums[2]}, nil
}
