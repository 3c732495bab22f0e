package awdl

import (
	"fmt"

	"github.com/Frostie314159/awdl-frame-parser/awdl/an"
	"github.com/Frostie314159/awdl-frame-parser/awdl/tlv"
)

// htCapabilitiesMinLen covers reserved, capabilities, A-MPDU parameters, and the 2-octet MCS trailer.
const htCapabilitiesMinLen = 2 + 2 + 1 + 2

// SMPowerSave is the spatial multiplexing power save mode.
type SMPowerSave uint8

// SMPowerSave values.
const (
	SMPowerSaveStatic   SMPowerSave = 0
	SMPowerSaveDynamic  SMPowerSave = 1
	SMPowerSaveDisabled SMPowerSave = 3
)

// HTCapabilitiesInfo is the 802.11n HT capabilities information bitfield.
//
//	bit 0      LDPC
//	bit 1      ChannelWidth
//	bits 2-3   SMPowerSave
//	bit 4      Greenfield
//	bit 5      ShortGI20
//	bit 6      ShortGI40
//	bit 7      TxSTBC
//	bits 8-9   RxSTBC
//	bit 10     DelayedBlockAck
//	bit 11     MaxAMSDULength
//	bit 12     DSSSCCK40
//	bit 13     PSMP
//	bit 14     FortyMHzIntolerant
//	bit 15     LSIGTXOPProtection
type HTCapabilitiesInfo struct {
	LDPC               bool
	ChannelWidth       bool
	SMPowerSave        SMPowerSave
	Greenfield         bool
	ShortGI20          bool
	ShortGI40          bool
	TxSTBC             bool
	RxSTBC             uint8
	DelayedBlockAck    bool
	MaxAMSDULength     bool
	DSSSCCK40          bool
	PSMP               bool
	FortyMHzIntolerant bool
	LSIGTXOPProtection bool
}

var htCapBits = []struct {
	bit uint
	get func(*HTCapabilitiesInfo) *bool
}{
	{0, func(c *HTCapabilitiesInfo) *bool { return &c.LDPC }},
	{1, func(c *HTCapabilitiesInfo) *bool { return &c.ChannelWidth }},
	{4, func(c *HTCapabilitiesInfo) *bool { return &c.Greenfield }},
	{5, func(c *HTCapabilitiesInfo) *bool { return &c.ShortGI20 }},
	{6, func(c *HTCapabilitiesInfo) *bool { return &c.ShortGI40 }},
	{7, func(c *HTCapabilitiesInfo) *bool { return &c.TxSTBC }},
	{10, func(c *HTCapabilitiesInfo) *bool { return &c.DelayedBlockAck }},
	{11, func(c *HTCapabilitiesInfo) *bool { return &c.MaxAMSDULength }},
	{12, func(c *HTCapabilitiesInfo) *bool { return &c.DSSSCCK40 }},
	{13, func(c *HTCapabilitiesInfo) *bool { return &c.PSMP }},
	{14, func(c *HTCapabilitiesInfo) *bool { return &c.FortyMHzIntolerant }},
	{15, func(c *HTCapabilitiesInfo) *bool { return &c.LSIGTXOPProtection }},
}

// ParseHTCapabilitiesInfo unpacks the bitfield.
func ParseHTCapabilitiesInfo(v uint16) (c HTCapabilitiesInfo) {
	for _, b := range htCapBits {
		*b.get(&c) = v&(1<<b.bit) != 0
	}
	c.SMPowerSave = SMPowerSave(v >> 2 & 0x3)
	c.RxSTBC = uint8(v >> 8 & 0x3)
	return c
}

// Uint16 packs the bitfield.
func (c HTCapabilitiesInfo) Uint16() (v uint16) {
	for _, b := range htCapBits {
		if *b.get(&c) {
			v |= 1 << b.bit
		}
	}
	v |= uint16(c.SMPowerSave&0x3) << 2
	v |= uint16(c.RxSTBC&0x3) << 8
	return v
}

// MaxAMPDULength is the maximum A-MPDU length exponent.
type MaxAMPDULength uint8

// MaxAMPDULength values.
const (
	MaxAMPDULength8K  MaxAMPDULength = iota // Small
	MaxAMPDULength16K                       // Medium
	MaxAMPDULength32K                       // Large
	MaxAMPDULength64K                       // VeryLarge
)

// Octets returns the length limit in octets.
func (l MaxAMPDULength) Octets() int {
	return 8192 << l
}

// MPDUDensity is the minimum MPDU start spacing.
type MPDUDensity uint8

// MPDUDensity values, in microseconds.
const (
	MPDUDensityNoRestriction MPDUDensity = iota
	MPDUDensityQuarter
	MPDUDensityHalf
	MPDUDensityOne
	MPDUDensityTwo
	MPDUDensityFour
	MPDUDensityEight
	MPDUDensitySixteen
)

// AMPDUParameters is the A-MPDU parameters bitfield.
//
//	bits 0-1   MaxLength
//	bits 2-4   Density
//	bits 5-7   Reserved
type AMPDUParameters struct {
	MaxLength MaxAMPDULength
	Density   MPDUDensity
	Reserved  uint8
}

// ParseAMPDUParameters unpacks the bitfield.
func ParseAMPDUParameters(b byte) AMPDUParameters {
	return AMPDUParameters{
		MaxLength: MaxAMPDULength(b & 0x3),
		Density:   MPDUDensity(b >> 2 & 0x7),
		Reserved:  b >> 5,
	}
}

// Byte packs the bitfield.
func (p AMPDUParameters) Byte() byte {
	return byte(p.MaxLength&0x3) | byte(p.Density&0x7)<<2 | p.Reserved<<5
}

// HTCapabilities is the HT Capabilities TLV.
//
// The supported MCS region is not decoded.
// It must be RxSpatialStreams octets of 0xFF followed by 2 zero octets.
type HTCapabilities struct {
	Info             HTCapabilitiesInfo
	AMPDU            AMPDUParameters
	RxSpatialStreams uint8
}

// Type implements TLV interface.
func (HTCapabilities) Type() an.TlvType {
	return an.TtHTCapabilities
}

// Field implements tlv.Fielder interface.
func (ht HTCapabilities) Field() tlv.Field {
	mcs := make([]byte, int(ht.RxSpatialStreams)+2)
	for i := 0; i < int(ht.RxSpatialStreams); i++ {
		mcs[i] = 0xFF
	}
	return tlv.TLV(an.TtHTCapabilities,
		tlv.Zeros(2),
		tlv.U16(ht.Info.Uint16()),
		tlv.U8(ht.AMPDU.Byte()),
		tlv.Bytes(mcs),
	)
}

// UnmarshalTLV implements tlv.Unmarshaler interface.
// RxSpatialStreams is inferred from TLV-LENGTH.
func (ht *HTCapabilities) UnmarshalTLV(typ an.TlvType, value []byte) error {
	r, e := checkElement(an.TtHTCapabilities, typ, value)
	if e != nil {
		return e
	}
	r.Skip(2)
	ht.Info = ParseHTCapabilitiesInfo(r.U16())
	ht.AMPDU = ParseAMPDUParameters(r.U8())
	streams := r.Len() - 2
	if streams > 0xFF {
		return fmt.Errorf("%s with %d spatial streams: %w", an.TtHTCapabilities, streams, tlv.ErrIncorrectTlvLength)
	}
	ht.RxSpatialStreams = uint8(streams)
	if e := r.Err(); e != nil {
		return e
	}
	for i, b := range r.Rest() {
		want := byte(0xFF)
		if i >= streams {
			want = 0
		}
		if b != want {
			return fmt.Errorf("%s MCS filler octet %d is %02X: %w", an.TtHTCapabilities, i, b, tlv.ErrValueNotUnderstood)
		}
	}
	return nil
}
