package awdl

import (
	"net"

	"github.com/Frostie314159/awdl-frame-parser/awdl/an"
	"github.com/Frostie314159/awdl-frame-parser/awdl/tlv"
)

const (
	electionLen   = 21
	electionV2Len = 40
)

// ElectionParameters is the version 1 Election Parameters TLV.
type ElectionParameters struct {
	Flags            uint8
	ID               uint16
	DistanceToMaster uint8
	Reserved         uint8
	MasterAddress    net.HardwareAddr
	MasterMetric     uint32
	SelfMetric       uint32
	Trailer          [2]byte
}

// Type implements TLV interface.
func (ElectionParameters) Type() an.TlvType {
	return an.TtElectionParameters
}

// Field implements tlv.Fielder interface.
func (ep ElectionParameters) Field() tlv.Field {
	return tlv.TLV(an.TtElectionParameters,
		tlv.U8(ep.Flags),
		tlv.U16(ep.ID),
		tlv.U8(ep.DistanceToMaster),
		tlv.U8(ep.Reserved),
		tlv.MAC(ep.MasterAddress),
		tlv.U32(ep.MasterMetric),
		tlv.U32(ep.SelfMetric),
		tlv.Bytes(ep.Trailer[:]),
	)
}

// UnmarshalTLV implements tlv.Unmarshaler interface.
func (ep *ElectionParameters) UnmarshalTLV(typ an.TlvType, value []byte) error {
	r, e := checkElement(an.TtElectionParameters, typ, value)
	if e != nil {
		return e
	}
	ep.Flags = r.U8()
	ep.ID = r.U16()
	ep.DistanceToMaster = r.U8()
	ep.Reserved = r.U8()
	ep.MasterAddress = r.MAC()
	ep.MasterMetric = r.U32()
	ep.SelfMetric = r.U32()
	copy(ep.Trailer[:], r.Slice(2))
	return r.Err()
}

// ElectionParametersV2 is the version 2 Election Parameters TLV.
type ElectionParametersV2 struct {
	MasterAddress    net.HardwareAddr
	SyncAddress      net.HardwareAddr
	MasterCounter    uint32
	DistanceToMaster uint32
	MasterMetric     uint32
	SelfMetric       uint32
	Reserved         [8]byte
	SelfCounter      uint32
}

// Type implements TLV interface.
func (ElectionParametersV2) Type() an.TlvType {
	return an.TtElectionParametersV2
}

// Field implements tlv.Fielder interface.
func (ep ElectionParametersV2) Field() tlv.Field {
	return tlv.TLV(an.TtElectionParametersV2,
		tlv.MAC(ep.MasterAddress),
		tlv.MAC(ep.SyncAddress),
		tlv.U32(ep.MasterCounter),
		tlv.U32(ep.DistanceToMaster),
		tlv.U32(ep.MasterMetric),
		tlv.U32(ep.SelfMetric),
		tlv.Bytes(ep.Reserved[:]),
		tlv.U32(ep.SelfCounter),
	)
}

// UnmarshalTLV implements tlv.Unmarshaler interface.
func (ep *ElectionParametersV2) UnmarshalTLV(typ an.TlvType, value []byte) error {
	r, e := checkElement(an.TtElectionParametersV2, typ, value)
	if e != nil {
		return e
	}
	ep.MasterAddress = r.MAC()
	ep.SyncAddress = r.MAC()
	ep.MasterCounter = r.U32()
	ep.DistanceToMaster = r.U32()
	ep.MasterMetric = r.U32()
	ep.SelfMetric = r.U32()
	copy(ep.Reserved[:], r.Slice(8))
	ep.SelfCounter = r.U32()
	return r.Err()
}
