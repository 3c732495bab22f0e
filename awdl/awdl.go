// Package awdl implements Apple Wireless Direct Link (AWDL) Action Frames and their typed TLVs.
//
// A decoded Frame owns all of its data: byte ranges kept by TLVs are copied out of the input buffer.
// Use tlv.Decoder with NewIterator to walk TLVs lazily without materializing a list.
package awdl

import (
	"github.com/Frostie314159/awdl-frame-parser/awdl/an"
	"github.com/Frostie314159/awdl-frame-parser/awdl/tlv"
	"github.com/Frostie314159/awdl-frame-parser/core/logging"
)

var logger = logging.New("awdl")

// TLV is a typed AWDL TLV.
// Concrete types are *Version, *ElectionParameters, *ElectionParametersV2, *SynchronizationParameters,
// *ChannelSequence, *SynchronizationTree, *ServiceParameters, *ServiceResponse, *Arpa,
// *HTCapabilities, *DataPathState, *IEEE80211Container, and *Unknown.
type TLV interface {
	tlv.Fielder

	// Type returns the TLV-TYPE this value encodes to.
	Type() an.TlvType
}

// payload is a TLV that can decode its own TLV-VALUE.
type payload interface {
	TLV
	tlv.Unmarshaler
}

// Unknown is a TLV whose type code has no typed decoder.
// Its TLV-VALUE is carried verbatim.
type Unknown struct {
	Code  an.TlvType
	Value []byte
}

// Type implements TLV interface.
func (u Unknown) Type() an.TlvType {
	return u.Code
}

// Field implements tlv.Fielder interface.
func (u Unknown) Field() tlv.Field {
	return tlv.TLVBytes(u.Code, u.Value)
}

// UnmarshalTLV implements tlv.Unmarshaler interface.
// It accepts any TLV-TYPE and copies the TLV-VALUE.
func (u *Unknown) UnmarshalTLV(typ an.TlvType, value []byte) error {
	u.Code = typ
	u.Value = append([]byte{}, value...)
	return nil
}
