package channel_test

import (
	"testing"

	"github.com/Frostie314159/awdl-frame-parser/awdl/channel"
	"github.com/Frostie314159/awdl-frame-parser/awdl/tlv"
)

func TestSequenceOpClass(t *testing.T) {
	assert, require := makeAR(t)

	input := bytesFromHex("0F 03 00 03 FFFF" + repeatHex("06 51", 16) + "000000")
	require.Len(input, 41)

	var seq channel.Sequence
	r := tlv.NewReader(input)
	require.NoError(seq.Read(r))
	assert.Equal(0, r.Len())

	assert.Equal(channel.MakeSequence(4, channel.OpClass(6, 0x51)), seq)
	assert.Equal(41, seq.Size())
	assert.Equal([]uint8{6}, seq.Distinct())

	wire, e := tlv.Encode(seq.Field())
	require.NoError(e)
	assert.Equal(input, wire)
}

func TestSequenceSimple(t *testing.T) {
	assert, require := makeAR(t)

	input := bytesFromHex("0F 00 01 00 0600" + repeatHex("95 95 95 95 06 06 06 06", 2) + "FFFFFF")
	require.Len(input, 25)

	var seq channel.Sequence
	require.NoError(seq.Read(tlv.NewReader(input)))
	assert.Equal(channel.EncodingSimple, seq.Encoding)
	assert.EqualValues(1, seq.DuplicateCount)
	assert.EqualValues(1, seq.StepCount)
	assert.EqualValues(6, seq.FillChannel)
	assert.Equal(channel.Simple(149), seq.Channels[0])
	assert.Equal(channel.Simple(6), seq.Channels[15])
	assert.Equal([3]byte{0xFF, 0xFF, 0xFF}, seq.Padding)
	assert.Equal([]uint8{149, 6}, seq.Distinct())

	wire, e := tlv.Encode(seq.Field())
	require.NoError(e)
	assert.Equal(input, wire)
}

func TestSequenceBad(t *testing.T) {
	assert, _ := makeAR(t)

	tests := []struct {
		input string
		err   error
	}{
		{input: "0F 03 00 03", err: tlv.ErrTooLittleData},
		{input: "0E 03 00 03 FFFF" + repeatHex("06 51", 16) + "000000", err: tlv.ErrValueNotUnderstood},
		{input: "0F 02 00 03 FFFF" + repeatHex("06 51", 16) + "000000", err: tlv.ErrValueNotUnderstood},
		{input: "0F 03 00 03 FFFF" + repeatHex("06 51", 15), err: tlv.ErrTooLittleData},
		{input: "0F 03 00 03 FFFF" + repeatHex("06 51", 16) + "00", err: tlv.ErrTooLittleData},
	}
	for _, tt := range tests {
		var seq channel.Sequence
		assert.ErrorIs(seq.Read(tlv.NewReader(bytesFromHex(tt.input))), tt.err, tt.input)
	}

	seq := channel.MakeSequence(4, channel.OpClass(6, 0x51))
	seq.Channels[3] = channel.Simple(6)
	_, e := tlv.Encode(seq.Field())
	assert.ErrorIs(e, tlv.ErrValueNotUnderstood)

	seq = channel.MakeSequence(1, channel.Simple(6))
	seq.Encoding = 2
	_, e = tlv.Encode(seq.Field())
	assert.ErrorIs(e, tlv.ErrValueNotUnderstood)
}
