// Package tlv implements the AWDL Type-Length-Value envelope and the fixed-width field primitives shared by TLV payload codecs.
//
// An AWDL TLV is one octet TLV-TYPE, a little endian uint16 TLV-LENGTH, and TLV-LENGTH octets of TLV-VALUE.
package tlv

import "github.com/Frostie314159/awdl-frame-parser/awdl/an"

// HeaderLen is the length of TLV-TYPE plus TLV-LENGTH.
const HeaderLen = 3

// MaxLength is the largest TLV-LENGTH.
const MaxLength = 0xFFFF

// Fielder is the interface implemented by an object that can encode itself to a Field.
type Fielder interface {
	Field() Field
}

// Unmarshaler is the interface implemented by an object that can decode its TLV-VALUE.
type Unmarshaler interface {
	UnmarshalTLV(typ an.TlvType, value []byte) error
}
