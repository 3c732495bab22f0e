package awdllayer

import (
	"encoding/binary"
	"hash/crc32"
	"net"

	"github.com/Frostie314159/awdl-frame-parser/awdl"
	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
)

// BSSID is the fixed BSSID of AWDL Action Frames.
var BSSID = net.HardwareAddr{0x00, 0x25, 0x00, 0xFF, 0x94, 0x73}

// FCSLen is the length of 802.11 frame check sequence.
const FCSLen = 4

// Dot11 returns the 802.11 header of a broadcast AWDL Action Frame sent by src.
func Dot11(src net.HardwareAddr) *layers.Dot11 {
	return &layers.Dot11{
		Type:     layers.Dot11TypeMgmtAction,
		Address1: layers.EthernetBroadcast,
		Address2: src,
		Address3: BSSID,
	}
}

// AppendFCS appends the 802.11 frame check sequence.
// layers.Dot11 expects it when decoding but does not write it when serializing.
func AppendFCS(frame []byte) []byte {
	return binary.LittleEndian.AppendUint32(frame, crc32.ChecksumIEEE(frame))
}

// Serialize encodes an 802.11 frame, including FCS, that carries f.
func Serialize(src net.HardwareAddr, f awdl.Frame) ([]byte, error) {
	buf := gopacket.NewSerializeBuffer()
	if e := gopacket.SerializeLayers(buf, gopacket.SerializeOptions{}, Dot11(src), &AWDL{Frame: f}); e != nil {
		return nil, e
	}
	return AppendFCS(append([]byte{}, buf.Bytes()...)), nil
}

// FromPacket extracts the AWDL layer from a packet decoded from LayerTypeDot11 or LinkTypeIEEE802_11.
// layers.Dot11MgmtAction does not dispatch vendor-specific bodies, so its contents are decoded here.
func FromPacket(pkt gopacket.Packet, opts awdl.DecodeOptions) (*AWDL, error) {
	if l, ok := pkt.Layer(LayerTypeAWDL).(*AWDL); ok {
		return l, nil
	}
	action := pkt.Layer(layers.LayerTypeDot11MgmtAction)
	if action == nil {
		return nil, ErrNotAWDL
	}
	l := &AWDL{Options: opts}
	if e := l.DecodeFromBytes(action.LayerContents(), gopacket.NilDecodeFeedback); e != nil {
		return nil, e
	}
	return l, nil
}

// Transmitter returns the transmitter address of an 802.11 packet, or nil.
func Transmitter(pkt gopacket.Packet) net.HardwareAddr {
	if dot11, ok := pkt.Layer(layers.LayerTypeDot11).(*layers.Dot11); ok {
		return dot11.Address2
	}
	return nil
}
