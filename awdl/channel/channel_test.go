package channel_test

import (
	"testing"

	"github.com/Frostie314159/awdl-frame-parser/awdl/channel"
	"github.com/Frostie314159/awdl-frame-parser/awdl/tlv"
)

func TestLegacyFlags(t *testing.T) {
	assert, _ := makeAR(t)

	f := channel.ParseLegacyFlags(0x1D)
	assert.Equal(channel.LegacyFlags{
		Support:   channel.SupportLower,
		Bandwidth: channel.Bandwidth40MHz,
		Band:      channel.Band5GHz,
	}, f)
	assert.EqualValues(0x1D, f.Byte())

	f = channel.ParseLegacyFlags(0xE6)
	assert.EqualValues(2, f.Support)
	assert.Equal(channel.Bandwidth20MHz, f.Bandwidth)
	assert.Equal(channel.Band24GHz, f.Band)
	assert.EqualValues(3, f.Reserved)
	assert.EqualValues(0xE6, f.Byte())
}

func TestChannel(t *testing.T) {
	assert, _ := makeAR(t)

	tests := []struct {
		enc     channel.Encoding
		input   string
		bad     bool
		ch      channel.Channel
		primary uint8
	}{
		{enc: channel.EncodingSimple, input: "", bad: true},
		{enc: channel.EncodingLegacy, input: "1D", bad: true},
		{enc: channel.EncodingOpClass, input: "06", bad: true},
		{enc: channel.EncodingSimple, input: "95", ch: channel.Simple(149), primary: 149},
		{enc: channel.EncodingOpClass, input: "06 51", ch: channel.OpClass(6, 0x51), primary: 6},
		{
			enc: channel.EncodingLegacy, input: "1D 2E",
			ch:      channel.Legacy(channel.LegacyFlags{Support: channel.SupportLower, Bandwidth: channel.Bandwidth40MHz, Band: channel.Band5GHz}, 46),
			primary: 44,
		},
		{
			enc: channel.EncodingLegacy, input: "1F 2A",
			ch:      channel.Legacy(channel.LegacyFlags{Support: channel.SupportUpper, Bandwidth: channel.Bandwidth40MHz, Band: channel.Band5GHz}, 42),
			primary: 44,
		},
		{
			enc: channel.EncodingLegacy, input: "1D 01",
			ch:      channel.Legacy(channel.LegacyFlags{Support: channel.SupportLower, Bandwidth: channel.Bandwidth40MHz, Band: channel.Band5GHz}, 1),
			primary: 0,
		},
		{
			enc: channel.EncodingLegacy, input: "1F FE",
			ch:      channel.Legacy(channel.LegacyFlags{Support: channel.SupportUpper, Bandwidth: channel.Bandwidth40MHz, Band: channel.Band5GHz}, 254),
			primary: 255,
		},
		{
			enc: channel.EncodingLegacy, input: "24 06",
			ch:      channel.Legacy(channel.LegacyFlags{Bandwidth: channel.Bandwidth20MHz, Band: channel.Band24GHz}, 6),
			primary: 6,
		},
	}
	for _, tt := range tests {
		input := bytesFromHex(tt.input)
		r := tlv.NewReader(input)
		ch, e := channel.Read(r, tt.enc)

		if tt.bad {
			assert.ErrorIs(e, tlv.ErrTooLittleData, tt.input)
		} else if assert.NoError(e, tt.input) {
			assert.Equal(tt.ch, ch, tt.input)
			assert.Equal(tt.primary, ch.Primary(), tt.input)
			assert.Equal(0, r.Len(), tt.input)

			wire, e := tlv.Encode(ch.Field())
			assert.NoError(e, tt.input)
			assert.Equal(input, wire, tt.input)
		}
	}

	_, e := channel.Read(tlv.NewReader([]byte{1, 2}), channel.Encoding(2))
	assert.ErrorIs(e, tlv.ErrValueNotUnderstood)

	_, e = tlv.Encode(channel.Channel{Encoding: 7}.Field())
	assert.ErrorIs(e, tlv.ErrValueNotUnderstood)
}

func TestEncoding(t *testing.T) {
	assert, _ := makeAR(t)

	w, ok := channel.EncodingSimple.Width()
	assert.True(ok)
	assert.Equal(1, w)
	w, ok = channel.EncodingOpClass.Width()
	assert.True(ok)
	assert.Equal(2, w)
	_, ok = channel.Encoding(2).Width()
	assert.False(ok)

	assert.Equal("Legacy", channel.EncodingLegacy.String())
	assert.Equal("Unknown(2)", channel.Encoding(2).String())
}
