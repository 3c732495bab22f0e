package an

import "fmt"

// ProtocolVersion is an AWDL protocol version packed into one octet as major:4 minor:4.
type ProtocolVersion struct {
	Major uint8
	Minor uint8
}

// ParseProtocolVersion unpacks a version octet.
func ParseProtocolVersion(b byte) ProtocolVersion {
	return ProtocolVersion{Major: b >> 4, Minor: b & 0x0F}
}

// Byte packs the version into one octet.
// Fields are truncated to 4 bits.
func (v ProtocolVersion) Byte() byte {
	return (v.Major&0x0F)<<4 | v.Minor&0x0F
}

// Compare returns -1, 0, +1 if v is older, equal, newer than other.
func (v ProtocolVersion) Compare(other ProtocolVersion) int {
	a, b := v.Byte(), other.Byte()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (v ProtocolVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}
