package awdl_test

import (
	"net"
	"testing"

	"github.com/Frostie314159/awdl-frame-parser/awdl"
	"github.com/Frostie314159/awdl-frame-parser/awdl/an"
	"github.com/Frostie314159/awdl-frame-parser/awdl/channel"
	"github.com/Frostie314159/awdl-frame-parser/awdl/tlv"
	"github.com/google/gopacket/layers"
)

func TestVersion(t *testing.T) {
	assert, require := makeAR(t)

	wire := bytesFromHex("15 0200 31 01")
	decoded, e := decodeOne(wire)
	require.NoError(e)
	require.IsType(&awdl.Version{}, decoded)
	v := decoded.(*awdl.Version)
	assert.Equal(an.ProtocolVersion{Major: 3, Minor: 1}, v.Protocol)
	assert.Equal(an.DeviceMacOS, v.DeviceClass)

	encoded, e := tlv.EncodeFrom(v)
	require.NoError(e)
	assert.Equal(wire, encoded)
}

func TestElectionParameters(t *testing.T) {
	assert, require := makeAR(t)

	wire := bytesFromHex("05 1500 00 0000 02 00 CE211F622122 8A020000 8A020000 0000")
	decoded, e := decodeOne(wire)
	require.NoError(e)
	assert.Equal(&awdl.ElectionParameters{
		DistanceToMaster: 2,
		MasterAddress:    mac("ce:21:1f:62:21:22"),
		MasterMetric:     650,
		SelfMetric:       650,
	}, decoded)

	encoded, e := tlv.EncodeFrom(decoded)
	require.NoError(e)
	assert.Equal(wire, encoded)

	// reserved octets survive
	wire = bytesFromHex("05 1500 00 0000 02 7E CE211F622122 8A020000 8A020000 A55A")
	decoded, e = decodeOne(wire)
	require.NoError(e)
	ep := decoded.(*awdl.ElectionParameters)
	assert.EqualValues(0x7E, ep.Reserved)
	assert.Equal([2]byte{0xA5, 0x5A}, ep.Trailer)
	encoded, e = tlv.EncodeFrom(ep)
	require.NoError(e)
	assert.Equal(wire, encoded)
}

func TestElectionParametersV2(t *testing.T) {
	assert, require := makeAR(t)

	wire := bytesFromHex("18 2800 CE211F622122 CE211F622122 C0030000 01000000 8A020000 8A020000 0000000000000000 1E000000")
	require.Len(wire, 43)
	decoded, e := decodeOne(wire)
	require.NoError(e)
	assert.Equal(&awdl.ElectionParametersV2{
		MasterAddress:    mac("ce:21:1f:62:21:22"),
		SyncAddress:      mac("ce:21:1f:62:21:22"),
		MasterCounter:    960,
		DistanceToMaster: 1,
		MasterMetric:     650,
		SelfMetric:       650,
		SelfCounter:      30,
	}, decoded)

	encoded, e := tlv.EncodeFrom(decoded)
	require.NoError(e)
	assert.Equal(wire, encoded)

	copy(wire[31:39], bytesFromHex("0102030405060708"))
	decoded, e = decodeOne(wire)
	require.NoError(e)
	assert.Equal([8]byte{1, 2, 3, 4, 5, 6, 7, 8}, decoded.(*awdl.ElectionParametersV2).Reserved)
	encoded, e = tlv.EncodeFrom(decoded)
	require.NoError(e)
	assert.Equal(wire, encoded)
}

const opClassSequenceHex = "0F 03 00 03 FFFF" // followed by 16 channels and padding

func TestSynchronizationParameters(t *testing.T) {
	assert, require := makeAR(t)

	tail := bytesFromHex(opClassSequenceHex + repeatHex("06 51", 16) + "000000")
	value := join(bytesFromHex("2C 2600 2C 00 1000 6E00 0018 1000 1000 0000 03 03 03 03 CE211F622122 04 00 E907 E607"), tail)
	wire := element(an.TtSynchronizationParameters, value)
	decoded, e := decodeOne(wire)
	require.NoError(e)
	require.IsType(&awdl.SynchronizationParameters{}, decoded)
	sp := decoded.(*awdl.SynchronizationParameters)
	assert.EqualValues(44, sp.NextChannel)
	assert.EqualValues(38, sp.TxCounter)
	assert.EqualValues(44, sp.MasterChannel)
	assert.EqualValues(0, sp.GuardTime)
	assert.EqualValues(16, sp.AWPeriod)
	assert.EqualValues(110, sp.AFPeriod)
	assert.EqualValues(0x1800, sp.AWDLFlags)
	assert.EqualValues(16, sp.AWExtensionLength)
	assert.EqualValues(16, sp.AWCommonLength)
	assert.EqualValues(0, sp.RemainingAWLength)
	assert.EqualValues(3, sp.MinExtensionCount)
	assert.EqualValues(3, sp.MaxMulticastExtensionCount)
	assert.EqualValues(3, sp.MaxUnicastExtensionCount)
	assert.EqualValues(3, sp.MaxAFExtensionCount)
	assert.Equal(mac("ce:21:1f:62:21:22"), sp.MasterAddress)
	assert.EqualValues(4, sp.PresenceMode)
	assert.EqualValues(2025, sp.AWSequenceNumber)
	assert.EqualValues(2022, sp.APBeaconAlignmentDelta)
	assert.Equal(tail, sp.Tail)

	seq, e := sp.EmbeddedSequence()
	require.NoError(e)
	assert.Equal(channel.MakeSequence(4, channel.OpClass(6, 0x51)), seq)

	encoded, e := tlv.EncodeFrom(sp)
	require.NoError(e)
	assert.Equal(wire, encoded)

	_, e = decodeOne(element(an.TtSynchronizationParameters, value[:32]))
	assert.ErrorIs(e, tlv.ErrIncorrectTlvLength)
}

func TestSynchronizationTree(t *testing.T) {
	assert, require := makeAR(t)

	wire := bytesFromHex("14 0C00 BE70F31721F2 000000000000")
	decoded, e := decodeOne(wire)
	require.NoError(e)
	assert.Equal(&awdl.SynchronizationTree{
		Addresses: []net.HardwareAddr{mac("be:70:f3:17:21:f2"), mac("00:00:00:00:00:00")},
	}, decoded)

	encoded, e := tlv.EncodeFrom(decoded)
	require.NoError(e)
	assert.Equal(wire, encoded)

	_, e = decodeOne(bytesFromHex("14 0700 BE70F31721F2 00"))
	assert.ErrorIs(e, tlv.ErrIncorrectTlvLength)

	decoded, e = decodeOne(bytesFromHex("14 0000"))
	require.NoError(e)
	assert.Len(decoded.(*awdl.SynchronizationTree).Addresses, 0)
}

func TestChannelSequence(t *testing.T) {
	assert, require := makeAR(t)

	wire := element(an.TtChannelSequence, bytesFromHex(opClassSequenceHex+repeatHex("06 51", 16)+"000000"))
	require.Len(wire, 44)
	decoded, e := decodeOne(wire)
	require.NoError(e)
	assert.Equal(&awdl.ChannelSequence{Sequence: channel.MakeSequence(4, channel.OpClass(6, 0x51))}, decoded)

	encoded, e := tlv.EncodeFrom(decoded)
	require.NoError(e)
	assert.Equal(wire, encoded)

	_, e = decodeOne(element(an.TtChannelSequence, bytesFromHex(opClassSequenceHex+repeatHex("06 51", 16)+"000000 00")))
	assert.ErrorIs(e, tlv.ErrIncorrectTlvLength)
	_, e = decodeOne(element(an.TtChannelSequence, bytesFromHex("0F 02 00 03 FFFF"+repeatHex("06 51", 16)+"000000")))
	assert.ErrorIs(e, tlv.ErrValueNotUnderstood)
}

func TestIEEE80211Container(t *testing.T) {
	assert, require := makeAR(t)

	tests := []struct {
		input   string
		info    []byte
		trailer []byte
	}{
		{input: "11 0600 BF 04 01020304", info: []byte{1, 2, 3, 4}},
		{input: "11 0700 BF 04 01020304 FF", info: []byte{1, 2, 3, 4}, trailer: []byte{0xFF}},
	}
	for _, tt := range tests {
		wire := bytesFromHex(tt.input)
		decoded, e := decodeOne(wire)
		require.NoError(e, tt.input)
		require.IsType(&awdl.IEEE80211Container{}, decoded, tt.input)
		c := decoded.(*awdl.IEEE80211Container)
		assert.Equal(layers.Dot11InformationElementID(191), c.ID, tt.input)
		assert.Equal(tt.info, c.Info, tt.input)
		assert.Equal(tt.trailer, c.Trailer, tt.input)

		encoded, e := tlv.EncodeFrom(c)
		require.NoError(e)
		assert.Equal(wire, encoded, tt.input)
	}

	_, e := decodeOne(bytesFromHex("11 0300 BF 04 01"))
	assert.ErrorIs(e, tlv.ErrTooLittleData)
	_, e = decodeOne(bytesFromHex("11 0100 BF"))
	assert.ErrorIs(e, tlv.ErrIncorrectTlvLength)
}
