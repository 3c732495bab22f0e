package tlv_test

import (
	"errors"
	"net"
	"testing"

	"github.com/Frostie314159/awdl-frame-parser/awdl/an"
	"github.com/Frostie314159/awdl-frame-parser/awdl/tlv"
)

type testEncodeMarshaler int

func (m testEncodeMarshaler) Field() tlv.Field {
	if m < 0 {
		return tlv.FieldError(errors.New("testEncodeMarshaler error"))
	}
	return tlv.TLVBytes(an.TlvType(m), make([]byte, m))
}

func TestEncode(t *testing.T) {
	assert, _ := makeAR(t)

	mac, _ := net.ParseMAC("ce:21:1f:62:21:22")
	wire, e := tlv.EncodeFrom(
		tlv.Bytes(nil),
		tlv.Bytes([]byte{0xF1}),
		tlv.FieldFunc(func(b []byte) ([]byte, error) { return append(b, 0xF2), nil }),
		tlv.U8(0xF3),
		tlv.U16(0x0102),
		tlv.U16BE(0x0102),
		tlv.U32(0x01020304),
		tlv.Zeros(2),
		tlv.MAC(mac),
		tlv.TLVBytes(1, []byte{0xF4}),
		testEncodeMarshaler(2),
		tlv.TLV(3, testEncodeMarshaler(1).Field(), tlv.U8(0xF5)),
		tlv.TLVFrom(4, testEncodeMarshaler(0)),
	)
	assert.NoError(e)
	assert.Equal(bytesFromHex(`
		F1 F2 F3
		0201 0102 04030201
		0000
		CE211F622122
		01 0100 F4
		02 0200 0000
		03 0500 01 0100 00 F5
		04 0300 00 0000
	`), wire)

	wire, e = tlv.Encode(tlv.Fields(tlv.U8(0xA0), tlv.Fields(), tlv.U16BE(0xA1A2)))
	assert.NoError(e)
	assert.Equal([]byte{0xA0, 0xA1, 0xA2}, wire)

	_, e = tlv.Encode(tlv.Fields(tlv.U8(0xA0), tlv.FieldError(nil)))
	assert.Error(e)

	_, e = tlv.EncodeFrom(tlv.U8(0), testEncodeMarshaler(-1))
	assert.Error(e)

	_, e = tlv.Encode(tlv.FieldError(nil))
	assert.ErrorIs(e, tlv.ErrErrorField)

	_, e = tlv.Encode(tlv.TLVBytes(1, make([]byte, tlv.MaxLength+1)))
	assert.ErrorIs(e, tlv.ErrIncorrectTlvLength)

	wire, e = tlv.Encode(tlv.TLVBytes(1, make([]byte, tlv.MaxLength)))
	assert.NoError(e)
	assert.Len(wire, tlv.MaxLength+3)
}
