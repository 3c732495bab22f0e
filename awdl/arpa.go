package awdl

import (
	"github.com/Frostie314159/awdl-frame-parser/awdl/an"
	"github.com/Frostie314159/awdl-frame-parser/awdl/dnsname"
	"github.com/Frostie314159/awdl-frame-parser/awdl/tlv"
)

const arpaMinLen = 1 + dnsname.MinSize

// Arpa is the Arpa TLV, which announces the hostname of the sender.
type Arpa struct {
	Flags    uint8
	Hostname dnsname.Name
}

// Type implements TLV interface.
func (Arpa) Type() an.TlvType {
	return an.TtArpa
}

// Field implements tlv.Fielder interface.
func (a Arpa) Field() tlv.Field {
	return tlv.TLV(an.TtArpa, tlv.U8(a.Flags), a.Hostname.Field())
}

// UnmarshalTLV implements tlv.Unmarshaler interface.
func (a *Arpa) UnmarshalTLV(typ an.TlvType, value []byte) error {
	r, e := checkElement(an.TtArpa, typ, value)
	if e != nil {
		return e
	}
	a.Flags = r.U8()
	return a.Hostname.UnmarshalBinary(r.Rest())
}
