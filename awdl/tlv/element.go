package tlv

import (
	"encoding/binary"
	"fmt"

	"github.com/Frostie314159/awdl-frame-parser/awdl/an"
)

// Element represents a raw TLV element.
type Element struct {
	// Type is the TLV-TYPE.
	Type an.TlvType
	// Value is the TLV-VALUE.
	Value []byte
}

// MakeElement constructs Element from TLV-TYPE and TLV-VALUE.
func MakeElement(typ an.TlvType, value []byte) Element {
	return Element{Type: typ, Value: value}
}

// Size returns encoded size.
func (element Element) Size() int {
	return HeaderLen + len(element.Value)
}

// Length returns TLV-LENGTH.
func (element Element) Length() int {
	return len(element.Value)
}

// Decode extracts an element from the front of wire.
// element.Value aliases wire.
func (element *Element) Decode(wire []byte) (rest []byte, e error) {
	if len(wire) < HeaderLen {
		return nil, TooLittleData(HeaderLen - len(wire))
	}
	length := int(binary.LittleEndian.Uint16(wire[1:]))
	if len(wire)-HeaderLen < length {
		return nil, TooLittleData(length - (len(wire) - HeaderLen))
	}
	element.Type = an.TlvType(wire[0])
	element.Value = wire[HeaderLen : HeaderLen+length]
	return wire[HeaderLen+length:], nil
}

// Field implements Fielder interface.
// TLV-LENGTH is computed from len(Value).
func (element Element) Field() Field {
	return TLVBytes(element.Type, element.Value)
}

// Unmarshal decodes TLV-VALUE into u.
func (element Element) Unmarshal(u Unmarshaler) error {
	return u.UnmarshalTLV(element.Type, element.Value)
}

func (element Element) String() string {
	return fmt.Sprintf("%s[%d]", element.Type, len(element.Value))
}
