package channel

import (
	"fmt"

	"github.com/Frostie314159/awdl-frame-parser/awdl/tlv"
)

// Channel is one channel descriptor.
// Flags is meaningful only in Legacy encoding; OpClass only in OpClass encoding.
type Channel struct {
	Encoding Encoding
	Number   uint8
	Flags    LegacyFlags
	OpClass  uint8
}

// Simple constructs a Simple-encoded channel.
func Simple(number uint8) Channel {
	return Channel{Encoding: EncodingSimple, Number: number}
}

// Legacy constructs a Legacy-encoded channel.
func Legacy(flags LegacyFlags, number uint8) Channel {
	return Channel{Encoding: EncodingLegacy, Number: number, Flags: flags}
}

// OpClass constructs an OpClass-encoded channel.
func OpClass(number, opClass uint8) Channel {
	return Channel{Encoding: EncodingOpClass, Number: number, OpClass: opClass}
}

// Primary returns the primary channel number.
//
// A Legacy channel whose secondary channel is below it advertises the 40 MHz center,
// so the primary is Number-2; Upper gives Number+2.
// Earlier firmware analyses disagree on the sign for Lower; this follows the later one.
// The result saturates at 0 and 255.
func (ch Channel) Primary() uint8 {
	if ch.Encoding != EncodingLegacy {
		return ch.Number
	}
	switch ch.Flags.Support {
	case SupportLower:
		if ch.Number < 2 {
			return 0
		}
		return ch.Number - 2
	case SupportUpper:
		if ch.Number > 0xFF-2 {
			return 0xFF
		}
		return ch.Number + 2
	}
	return ch.Number
}

// Read decodes one channel in the given encoding.
func Read(r *tlv.Reader, enc Encoding) (ch Channel, e error) {
	ch.Encoding = enc
	switch enc {
	case EncodingSimple:
		ch.Number = r.U8()
	case EncodingLegacy:
		ch.Flags = ParseLegacyFlags(r.U8())
		ch.Number = r.U8()
	case EncodingOpClass:
		ch.Number = r.U8()
		ch.OpClass = r.U8()
	default:
		return Channel{}, fmt.Errorf("channel encoding %s: %w", enc, tlv.ErrValueNotUnderstood)
	}
	return ch, r.Err()
}

// Field implements tlv.Fielder interface.
func (ch Channel) Field() tlv.Field {
	switch ch.Encoding {
	case EncodingSimple:
		return tlv.U8(ch.Number)
	case EncodingLegacy:
		return tlv.Bytes([]byte{ch.Flags.Byte(), ch.Number})
	case EncodingOpClass:
		return tlv.Bytes([]byte{ch.Number, ch.OpClass})
	}
	return tlv.FieldError(fmt.Errorf("channel encoding %s: %w", ch.Encoding, tlv.ErrValueNotUnderstood))
}

func (ch Channel) String() string {
	switch ch.Encoding {
	case EncodingLegacy:
		return fmt.Sprintf("%d(flags=%02X)", ch.Number, ch.Flags.Byte())
	case EncodingOpClass:
		return fmt.Sprintf("%d/%d", ch.Number, ch.OpClass)
	}
	return fmt.Sprintf("%d", ch.Number)
}
