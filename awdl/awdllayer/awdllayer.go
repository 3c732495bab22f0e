// Package awdllayer provides a GoPacket layer for AWDL Action Frames.
package awdllayer

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/Frostie314159/awdl-frame-parser/awdl"
	"github.com/google/gopacket"
)

// Vendor-specific action frame header.
const (
	CategoryVendorSpecific = 0x7F
	VendorHeaderLen        = 4
)

// OUI is the Apple organizationally unique identifier.
var OUI = [3]byte{0x00, 0x17, 0xF2}

// ErrNotAWDL indicates the action frame is not an AWDL vendor action frame.
var ErrNotAWDL = errors.New("not an AWDL action frame")

// LayerTypeAWDL identifies AWDL layer.
var LayerTypeAWDL = gopacket.RegisterLayerType(1700, gopacket.LayerTypeMetadata{
	Name:    "AWDL",
	Decoder: gopacket.DecodeFunc(decodeAWDL),
})

// AWDL is the layer for an AWDL Action Frame, starting at the action category octet.
type AWDL struct {
	Frame awdl.Frame
	// Options applies to DecodeFromBytes.
	Options awdl.DecodeOptions
	wire    []byte
}

var _ interface {
	gopacket.ApplicationLayer
	gopacket.DecodingLayer
	gopacket.SerializableLayer
} = &AWDL{}

// LayerType returns LayerTypeAWDL.
func (AWDL) LayerType() gopacket.LayerType {
	return LayerTypeAWDL
}

// LayerContents returns the action frame body.
func (l *AWDL) LayerContents() []byte {
	return l.wire
}

// LayerPayload returns nil, because TLVs are decoded into Frame.
func (l *AWDL) LayerPayload() []byte {
	return nil
}

// Payload implements gopacket.ApplicationLayer interface.
func (l *AWDL) Payload() []byte {
	return l.LayerPayload()
}

// DecodeFromBytes recognizes an AWDL vendor action frame body.
func (l *AWDL) DecodeFromBytes(wire []byte, df gopacket.DecodeFeedback) (e error) {
	if len(wire) < VendorHeaderLen {
		df.SetTruncated()
		return fmt.Errorf("%w: %d octets", ErrNotAWDL, len(wire))
	}
	if wire[0] != CategoryVendorSpecific || !bytes.Equal(wire[1:VendorHeaderLen], OUI[:]) {
		return fmt.Errorf("%w: category %02X OUI %X", ErrNotAWDL, wire[0], wire[1:VendorHeaderLen])
	}

	if l.Frame, e = l.Options.DecodeFrame(wire[VendorHeaderLen:]); e != nil {
		return e
	}
	l.wire = wire
	return nil
}

// CanDecode implements gopacket.DecodingLayer interface.
func (AWDL) CanDecode() gopacket.LayerClass {
	return LayerTypeAWDL
}

// NextLayerType implements gopacket.DecodingLayer interface.
func (AWDL) NextLayerType() gopacket.LayerType {
	return gopacket.LayerTypeZero
}

// SerializeTo implements gopacket.SerializableLayer interface.
func (l *AWDL) SerializeTo(b gopacket.SerializeBuffer, opts gopacket.SerializeOptions) error {
	wire, e := l.Frame.MarshalBinary()
	if e != nil {
		return e
	}

	room, e := b.PrependBytes(VendorHeaderLen + len(wire))
	if e != nil {
		return e
	}
	room[0] = CategoryVendorSpecific
	copy(room[1:], OUI[:])
	copy(room[VendorHeaderLen:], wire)
	return nil
}

func decodeAWDL(wire []byte, p gopacket.PacketBuilder) error {
	l := &AWDL{}
	if e := l.DecodeFromBytes(wire, p); e != nil {
		return e
	}
	p.AddLayer(l)
	p.SetApplicationLayer(l)
	return nil
}
