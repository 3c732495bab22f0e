package awdl

import (
	"fmt"
	"net"

	"github.com/Frostie314159/awdl-frame-parser/awdl/an"
	"github.com/Frostie314159/awdl-frame-parser/awdl/channel"
	"github.com/Frostie314159/awdl-frame-parser/awdl/tlv"
	"github.com/Frostie314159/awdl-frame-parser/core/macaddr"
)

const (
	syncParamsMinLen      = 33
	channelSequenceMinLen = 9
)

// SynchronizationParameters is the Synchronization Parameters TLV.
//
// Only the fixed-offset prefix is decoded.
// Octets after it, which usually carry a copy of the channel sequence, are kept in Tail.
type SynchronizationParameters struct {
	NextChannel                uint8
	TxCounter                  uint16
	MasterChannel              uint8
	GuardTime                  uint8
	AWPeriod                   uint16
	AFPeriod                   uint16
	AWDLFlags                  uint16
	AWExtensionLength          uint16
	AWCommonLength             uint16
	RemainingAWLength          uint16
	MinExtensionCount          uint8
	MaxMulticastExtensionCount uint8
	MaxUnicastExtensionCount   uint8
	MaxAFExtensionCount        uint8
	MasterAddress              net.HardwareAddr
	PresenceMode               uint8
	AWSequenceNumber           uint16
	APBeaconAlignmentDelta     uint16
	Tail                       []byte
}

// Type implements TLV interface.
func (SynchronizationParameters) Type() an.TlvType {
	return an.TtSynchronizationParameters
}

// Field implements tlv.Fielder interface.
func (sp SynchronizationParameters) Field() tlv.Field {
	return tlv.TLV(an.TtSynchronizationParameters,
		tlv.U8(sp.NextChannel),
		tlv.U16(sp.TxCounter),
		tlv.U8(sp.MasterChannel),
		tlv.U8(sp.GuardTime),
		tlv.U16(sp.AWPeriod),
		tlv.U16(sp.AFPeriod),
		tlv.U16(sp.AWDLFlags),
		tlv.U16(sp.AWExtensionLength),
		tlv.U16(sp.AWCommonLength),
		tlv.U16(sp.RemainingAWLength),
		tlv.U8(sp.MinExtensionCount),
		tlv.U8(sp.MaxMulticastExtensionCount),
		tlv.U8(sp.MaxUnicastExtensionCount),
		tlv.U8(sp.MaxAFExtensionCount),
		tlv.MAC(sp.MasterAddress),
		tlv.U8(sp.PresenceMode),
		tlv.Zeros(1),
		tlv.U16(sp.AWSequenceNumber),
		tlv.U16(sp.APBeaconAlignmentDelta),
		tlv.Bytes(sp.Tail),
	)
}

// UnmarshalTLV implements tlv.Unmarshaler interface.
func (sp *SynchronizationParameters) UnmarshalTLV(typ an.TlvType, value []byte) error {
	r, e := checkElement(an.TtSynchronizationParameters, typ, value)
	if e != nil {
		return e
	}
	sp.NextChannel = r.U8()
	sp.TxCounter = r.U16()
	sp.MasterChannel = r.U8()
	sp.GuardTime = r.U8()
	sp.AWPeriod = r.U16()
	sp.AFPeriod = r.U16()
	sp.AWDLFlags = r.U16()
	sp.AWExtensionLength = r.U16()
	sp.AWCommonLength = r.U16()
	sp.RemainingAWLength = r.U16()
	sp.MinExtensionCount = r.U8()
	sp.MaxMulticastExtensionCount = r.U8()
	sp.MaxUnicastExtensionCount = r.U8()
	sp.MaxAFExtensionCount = r.U8()
	sp.MasterAddress = r.MAC()
	sp.PresenceMode = r.U8()
	r.Skip(1)
	sp.AWSequenceNumber = r.U16()
	sp.APBeaconAlignmentDelta = r.U16()
	sp.Tail = nil
	if r.Len() > 0 {
		sp.Tail = r.Bytes(r.Len())
	}
	return r.Err()
}

// EmbeddedSequence decodes the channel sequence carried at the start of Tail.
func (sp SynchronizationParameters) EmbeddedSequence() (seq channel.Sequence, e error) {
	e = seq.Read(tlv.NewReader(sp.Tail))
	return seq, e
}

// SynchronizationTree is the Synchronization Tree TLV.
// Addresses starts with the mesh master, followed by its descendants in priority order.
type SynchronizationTree struct {
	Addresses []net.HardwareAddr
}

// Type implements TLV interface.
func (SynchronizationTree) Type() an.TlvType {
	return an.TtSynchronizationTree
}

// Field implements tlv.Fielder interface.
func (st SynchronizationTree) Field() tlv.Field {
	fields := make([]tlv.Field, len(st.Addresses))
	for i, a := range st.Addresses {
		fields[i] = tlv.MAC(a)
	}
	return tlv.TLV(an.TtSynchronizationTree, fields...)
}

// UnmarshalTLV implements tlv.Unmarshaler interface.
// TLV-LENGTH must be a multiple of 6.
func (st *SynchronizationTree) UnmarshalTLV(typ an.TlvType, value []byte) error {
	r, e := checkElement(an.TtSynchronizationTree, typ, value)
	if e != nil {
		return e
	}
	if len(value)%macaddr.Size != 0 {
		return fmt.Errorf("%s TLV-LENGTH %d: %w", an.TtSynchronizationTree, len(value), tlv.ErrIncorrectTlvLength)
	}
	st.Addresses = make([]net.HardwareAddr, 0, len(value)/macaddr.Size)
	for r.Len() > 0 {
		st.Addresses = append(st.Addresses, r.MAC())
	}
	return r.Err()
}

// ChannelSequence is the Channel Sequence TLV.
type ChannelSequence struct {
	channel.Sequence
}

// Type implements TLV interface.
func (ChannelSequence) Type() an.TlvType {
	return an.TtChannelSequence
}

// Field implements tlv.Fielder interface.
func (cs ChannelSequence) Field() tlv.Field {
	return tlv.TLV(an.TtChannelSequence, cs.Sequence.Field())
}

// UnmarshalTLV implements tlv.Unmarshaler interface.
func (cs *ChannelSequence) UnmarshalTLV(typ an.TlvType, value []byte) error {
	r, e := checkElement(an.TtChannelSequence, typ, value)
	if e != nil {
		return e
	}
	if e := cs.Sequence.Read(r); e != nil {
		return e
	}
	return expectEOF(an.TtChannelSequence, r)
}
