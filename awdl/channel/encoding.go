// Package channel implements AWDL channel descriptors and the 16-entry channel sequence.
package channel

import "strconv"

// Encoding selects how each channel in a sequence is encoded.
type Encoding uint8

// Channel encodings.
const (
	EncodingSimple  Encoding = 0
	EncodingLegacy  Encoding = 1
	EncodingOpClass Encoding = 3
)

// Width returns the encoded size of one channel.
// ok is false for unknown encodings.
func (enc Encoding) Width() (w int, ok bool) {
	switch enc {
	case EncodingSimple:
		return 1, true
	case EncodingLegacy, EncodingOpClass:
		return 2, true
	}
	return 0, false
}

func (enc Encoding) String() string {
	switch enc {
	case EncodingSimple:
		return "Simple"
	case EncodingLegacy:
		return "Legacy"
	case EncodingOpClass:
		return "OpClass"
	}
	return "Unknown(" + strconv.Itoa(int(enc)) + ")"
}
