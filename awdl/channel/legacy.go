package channel

// SupportChannel is the position of the secondary 20 MHz channel, bits 0-1 of the Legacy flags octet.
type SupportChannel uint8

// Support channel positions.
const (
	SupportLower SupportChannel = 1
	SupportUpper SupportChannel = 3
)

// Bandwidth is bits 2-3 of the Legacy flags octet.
type Bandwidth uint8

// Bandwidths.
const (
	Bandwidth20MHz Bandwidth = 1
	Bandwidth40MHz Bandwidth = 3
)

// Band is bits 4-5 of the Legacy flags octet.
type Band uint8

// Bands.
const (
	Band5GHz  Band = 1
	Band24GHz Band = 2
)

// LegacyFlags is the flags octet of a Legacy-encoded channel.
// Every sub-field keeps its raw value, so unassigned codes survive a round trip.
type LegacyFlags struct {
	Support   SupportChannel // bits 0-1
	Bandwidth Bandwidth      // bits 2-3
	Band      Band           // bits 4-5
	Reserved  uint8          // bits 6-7
}

// ParseLegacyFlags unpacks the flags octet.
func ParseLegacyFlags(b byte) LegacyFlags {
	return LegacyFlags{
		Support:   SupportChannel(b & 0x03),
		Bandwidth: Bandwidth(b >> 2 & 0x03),
		Band:      Band(b >> 4 & 0x03),
		Reserved:  b >> 6,
	}
}

// Byte packs the flags octet.
func (f LegacyFlags) Byte() byte {
	return byte(f.Support)&0x03 | (byte(f.Bandwidth)&0x03)<<2 | (byte(f.Band)&0x03)<<4 | f.Reserved<<6
}
