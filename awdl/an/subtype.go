package an

import "strconv"

// Subtype is the Action Frame subtype.
type Subtype uint8

// Action Frame subtypes.
const (
	SubtypePSF Subtype = 0x00 // Periodic Synchronization Frame
	SubtypeMIF Subtype = 0x03 // Master Indication Frame
)

func (st Subtype) String() string {
	switch st {
	case SubtypePSF:
		return "PSF"
	case SubtypeMIF:
		return "MIF"
	}
	return "Unknown(" + strconv.Itoa(int(st)) + ")"
}
