package awdl

import (
	"github.com/Frostie314159/awdl-frame-parser/awdl/an"
	"github.com/Frostie314159/awdl-frame-parser/awdl/tlv"
)

const versionLen = 2

// Version is the Version TLV: the protocol version a peer actually speaks and its device class.
type Version struct {
	Protocol    an.ProtocolVersion
	DeviceClass an.DeviceClass
}

// Type implements TLV interface.
func (Version) Type() an.TlvType {
	return an.TtVersion
}

// Field implements tlv.Fielder interface.
func (v Version) Field() tlv.Field {
	return tlv.TLV(an.TtVersion, tlv.U8(v.Protocol.Byte()), tlv.U8(uint8(v.DeviceClass)))
}

// UnmarshalTLV implements tlv.Unmarshaler interface.
func (v *Version) UnmarshalTLV(typ an.TlvType, value []byte) error {
	r, e := checkElement(an.TtVersion, typ, value)
	if e != nil {
		return e
	}
	v.Protocol = an.ParseProtocolVersion(r.U8())
	v.DeviceClass = an.DeviceClass(r.U8())
	return r.Err()
}
