package awdllayer_test

import (
	"errors"
	"io"
	"net"
	"os"
	"testing"
	"time"

	"github.com/Frostie314159/awdl-frame-parser/awdl"
	"github.com/Frostie314159/awdl-frame-parser/awdl/an"
	"github.com/Frostie314159/awdl-frame-parser/awdl/awdllayer"
	"github.com/Frostie314159/awdl-frame-parser/awdl/dnsname"
	"github.com/Frostie314159/awdl-frame-parser/core/testenv"
	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
	"go4.org/must"
)

var makeAR = testenv.MakeAR

var src = net.HardwareAddr{0xCE, 0x21, 0x1F, 0x62, 0x21, 0x22}

func makeFrame() awdl.Frame {
	return awdl.Frame{
		Header: awdl.Header{
			Version:      an.ProtocolVersion{Major: 3, Minor: 4},
			Subtype:      an.SubtypePSF,
			PhyTxTime:    1000,
			TargetTxTime: 900,
		},
		TLVs: []awdl.TLV{
			&awdl.Version{Protocol: an.ProtocolVersion{Major: 3, Minor: 4}, DeviceClass: an.DeviceIOS},
			&awdl.Arpa{Flags: 0x03, Hostname: dnsname.MakeName(dnsname.Local, "iPhone")},
		},
	}
}

func TestSerializeDecode(t *testing.T) {
	assert, require := makeAR(t)

	f := makeFrame()
	wire, e := awdllayer.Serialize(src, f)
	require.NoError(e)
	require.Greater(len(wire), 24+awdllayer.VendorHeaderLen+awdl.HeaderLen+awdllayer.FCSLen)

	pkt := gopacket.NewPacket(wire, layers.LayerTypeDot11, gopacket.Default)
	require.Nil(pkt.ErrorLayer())
	dot11, ok := pkt.Layer(layers.LayerTypeDot11).(*layers.Dot11)
	require.True(ok)
	assert.True(dot11.ChecksumValid())
	assert.Equal(layers.Dot11TypeMgmtAction, dot11.Type)
	assert.Equal(awdllayer.BSSID, dot11.Address3)
	assert.Equal(src, awdllayer.Transmitter(pkt))

	l, e := awdllayer.FromPacket(pkt, awdl.DecodeOptions{})
	require.NoError(e)
	assert.Equal(f, l.Frame)
	assert.EqualValues(awdllayer.CategoryVendorSpecific, l.LayerContents()[0])
	assert.Nil(l.LayerPayload())
}

func TestDecodingLayerParser(t *testing.T) {
	assert, require := makeAR(t)

	f := makeFrame()
	wire, e := f.MarshalBinary()
	require.NoError(e)
	body := append([]byte{awdllayer.CategoryVendorSpecific, 0x00, 0x17, 0xF2}, wire...)

	var l awdllayer.AWDL
	parser := gopacket.NewDecodingLayerParser(awdllayer.LayerTypeAWDL, &l)
	decoded := []gopacket.LayerType{}
	require.NoError(parser.DecodeLayers(body, &decoded))
	assert.Equal([]gopacket.LayerType{awdllayer.LayerTypeAWDL}, decoded)
	assert.Equal(f, l.Frame)

	pkt := gopacket.NewPacket(body, awdllayer.LayerTypeAWDL, gopacket.Default)
	require.Nil(pkt.ErrorLayer())
	assert.Equal(awdllayer.LayerTypeAWDL, pkt.ApplicationLayer().LayerType())
}

func TestNotAWDL(t *testing.T) {
	assert, _ := makeAR(t)

	tests := [][]byte{
		{0x7F, 0x00, 0x17},
		{0x04, 0x00, 0x17, 0xF2, 0x08},
		{0x7F, 0x00, 0x50, 0xF2, 0x08},
	}
	for _, body := range tests {
		var l awdllayer.AWDL
		assert.ErrorIs(l.DecodeFromBytes(body, gopacket.NilDecodeFeedback), awdllayer.ErrNotAWDL, "%X", body)
	}

	beacon := gopacket.NewSerializeBuffer()
	dot11 := awdllayer.Dot11(src)
	dot11.Type = layers.Dot11TypeMgmtBeacon
	assert.NoError(gopacket.SerializeLayers(beacon, gopacket.SerializeOptions{}, dot11))
	pkt := gopacket.NewPacket(awdllayer.AppendFCS(beacon.Bytes()), layers.LayerTypeDot11, gopacket.Default)
	_, e := awdllayer.FromPacket(pkt, awdl.DecodeOptions{})
	assert.True(errors.Is(e, awdllayer.ErrNotAWDL))
}

func TestPcapFile(t *testing.T) {
	assert, require := makeAR(t)
	filename := testenv.TempName(t, "awdl.pcap")

	f := makeFrame()
	wire, e := awdllayer.Serialize(src, f)
	require.NoError(e)

	file, e := os.Create(filename)
	require.NoError(e)
	w := pcapgo.NewWriter(file)
	require.NoError(w.WriteFileHeader(65536, layers.LinkTypeIEEE802_11))
	for i := 0; i < 3; i++ {
		require.NoError(w.WritePacket(gopacket.CaptureInfo{
			Timestamp:     time.Unix(1700000000+int64(i), 0),
			CaptureLength: len(wire),
			Length:        len(wire),
		}, wire))
	}
	must.Close(file)

	file, e = os.Open(filename)
	require.NoError(e)
	defer must.Close(file)
	r, e := pcapgo.NewReader(file)
	require.NoError(e)
	assert.Equal(layers.LinkTypeIEEE802_11, r.LinkType())

	n := 0
	for {
		data, _, e := r.ReadPacketData()
		if errors.Is(e, io.EOF) {
			break
		}
		require.NoError(e)
		pkt := gopacket.NewPacket(data, r.LinkType(), gopacket.Default)
		l, e := awdllayer.FromPacket(pkt, awdl.DecodeOptions{})
		if assert.NoError(e) {
			assert.Equal(f, l.Frame)
		}
		n++
	}
	assert.Equal(3, n)
}
