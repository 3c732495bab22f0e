package awdl

import (
	"github.com/Frostie314159/awdl-frame-parser/awdl/an"
	"github.com/Frostie314159/awdl-frame-parser/awdl/tlv"
	"github.com/google/gopacket/layers"
)

const ieee80211ContainerMinLen = 2

// IEEE80211Container is a TLV that wraps one 802.11 information element, in practice VHT Capabilities.
type IEEE80211Container struct {
	ID   layers.Dot11InformationElementID
	Info []byte
	// Trailer contains octets after the information element.
	Trailer []byte
}

// Type implements TLV interface.
func (IEEE80211Container) Type() an.TlvType {
	return an.TtVHTCapabilities
}

// Field implements tlv.Fielder interface.
func (c IEEE80211Container) Field() tlv.Field {
	if len(c.Info) > 0xFF {
		return tlv.FieldError(tlv.ErrIncorrectTlvLength)
	}
	return tlv.TLV(an.TtVHTCapabilities,
		tlv.U8(uint8(c.ID)),
		tlv.U8(uint8(len(c.Info))),
		tlv.Bytes(c.Info),
		tlv.Bytes(c.Trailer),
	)
}

// UnmarshalTLV implements tlv.Unmarshaler interface.
func (c *IEEE80211Container) UnmarshalTLV(typ an.TlvType, value []byte) error {
	r, e := checkElement(an.TtVHTCapabilities, typ, value)
	if e != nil {
		return e
	}
	c.ID = layers.Dot11InformationElementID(r.U8())
	c.Info = r.Bytes(int(r.U8()))
	c.Trailer = nil
	if r.Len() > 0 {
		c.Trailer = r.Bytes(r.Len())
	}
	return r.Err()
}
