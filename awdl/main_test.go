package awdl_test

import (
	"bytes"
	"net"

	"github.com/Frostie314159/awdl-frame-parser/awdl"
	"github.com/Frostie314159/awdl-frame-parser/awdl/an"
	"github.com/Frostie314159/awdl-frame-parser/awdl/tlv"
	"github.com/Frostie314159/awdl-frame-parser/core/testenv"
)

var (
	makeAR       = testenv.MakeAR
	bytesFromHex = testenv.BytesFromHex
	repeatHex    = testenv.RepeatHex
)

// label returns s with a 1-octet length prefix.
func label(s string) []byte {
	return append([]byte{byte(len(s))}, s...)
}

func join(parts ...[]byte) []byte {
	return bytes.Join(parts, nil)
}

// element prepends a TLV header to value.
func element(typ an.TlvType, value []byte) []byte {
	n := len(value)
	return append([]byte{byte(typ), byte(n), byte(n >> 8)}, value...)
}

func mac(s string) net.HardwareAddr {
	a, e := net.ParseMAC(s)
	if e != nil {
		panic(e)
	}
	return a
}

// decodeOne decodes wire as exactly one typed TLV.
func decodeOne(wire []byte) (awdl.TLV, error) {
	element, rest, e := tlv.DecodeFirst(wire)
	if e != nil {
		return nil, e
	}
	if len(rest) > 0 {
		panic("trailing input")
	}
	return awdl.DecodeTLV(element)
}
