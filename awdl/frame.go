package awdl

import (
	"errors"
	"fmt"
	"io"

	"github.com/Frostie314159/awdl-frame-parser/awdl/an"
	"github.com/Frostie314159/awdl-frame-parser/awdl/tlv"
)

// Action Frame header constants.
const (
	Magic     = 0x08
	HeaderLen = 12
)

// Header is the fixed Action Frame header.
type Header struct {
	Version      an.ProtocolVersion
	Subtype      an.Subtype
	PhyTxTime    uint32 // microseconds
	TargetTxTime uint32 // microseconds
}

// Field implements tlv.Fielder interface.
func (h Header) Field() tlv.Field {
	return tlv.Fields(
		tlv.U8(Magic),
		tlv.U8(h.Version.Byte()),
		tlv.U8(uint8(h.Subtype)),
		tlv.Zeros(1),
		tlv.U32(h.PhyTxTime),
		tlv.U32(h.TargetTxTime),
	)
}

// ParseHeader decodes the fixed header and returns a Decoder over the TLV sequence that follows.
func ParseHeader(wire []byte) (h Header, d tlv.Decoder, e error) {
	if len(wire) < HeaderLen {
		return h, nil, HeaderIncomplete(HeaderLen - len(wire))
	}
	r := tlv.NewReader(wire[:HeaderLen])
	if magic := r.U8(); magic != Magic {
		return h, nil, fmt.Errorf("first octet 0x%02X: %w", magic, ErrInvalidMagic)
	}
	h.Version = an.ParseProtocolVersion(r.U8())
	h.Subtype = an.Subtype(r.U8())
	r.Skip(1)
	h.PhyTxTime = r.U32()
	h.TargetTxTime = r.U32()
	return h, tlv.Decoder(wire[HeaderLen:]), r.Err()
}

// Frame is an AWDL Action Frame.
type Frame struct {
	Header
	TLVs []TLV
}

// DecodeFrame decodes an Action Frame whose TLV sequence extends to the end of wire.
func (opts DecodeOptions) DecodeFrame(wire []byte) (f Frame, e error) {
	h, d, e := ParseHeader(wire)
	if e != nil {
		return Frame{}, e
	}
	f.Header = h
	it := opts.NewIterator(d)
	for {
		t, e := it.Next()
		switch {
		case e == nil:
			f.TLVs = append(f.TLVs, t)
		case errors.Is(e, io.EOF):
			return f, nil
		default:
			return Frame{}, e
		}
	}
}

// UnmarshalBinary decodes an Action Frame in strict mode.
func (f *Frame) UnmarshalBinary(wire []byte) (e error) {
	*f, e = DecodeOptions{}.DecodeFrame(wire)
	return e
}

// Field implements tlv.Fielder interface.
func (f Frame) Field() tlv.Field {
	fields := []tlv.Field{f.Header.Field()}
	for i, t := range f.TLVs {
		if t == nil {
			return tlv.FieldError(fmt.Errorf("TLV %d is nil: %w", i, tlv.ErrValueNotUnderstood))
		}
		fields = append(fields, t.Field())
	}
	return tlv.Fields(fields...)
}

// MarshalBinary encodes the Action Frame.
func (f Frame) MarshalBinary() ([]byte, error) {
	return tlv.Encode(f.Field())
}

// TLVsOf returns TLVs of a type code, in frame order.
func (f Frame) TLVsOf(typ an.TlvType) (list []TLV) {
	for _, t := range f.TLVs {
		if t.Type() == typ {
			list = append(list, t)
		}
	}
	return list
}

// Find assigns the first TLV whose concrete type matches *ptr.
// ptr must be a pointer to a TLV variable such as **Version.
// Returns false if there is no such TLV.
func Find[T TLV](f Frame, ptr *T) bool {
	for _, t := range f.TLVs {
		if v, ok := t.(T); ok {
			*ptr = v
			return true
		}
	}
	return false
}

// Iterator decodes typed TLVs one at a time from a tlv.Decoder.
type Iterator struct {
	d    tlv.Decoder
	opts DecodeOptions
}

// NewIterator creates an Iterator that decodes in strict mode.
func NewIterator(d tlv.Decoder) *Iterator {
	return DecodeOptions{}.NewIterator(d)
}

// NewIterator creates an Iterator with these options.
func (opts DecodeOptions) NewIterator(d tlv.Decoder) *Iterator {
	return &Iterator{d: d, opts: opts}
}

// Next decodes the next TLV.
// It returns io.EOF at end of input.
func (it *Iterator) Next() (TLV, error) {
	element, e := it.d.Next()
	if e != nil {
		return nil, e
	}
	return it.opts.DecodeTLV(element)
}

// Rest returns undecoded input.
func (it *Iterator) Rest() []byte {
	return it.d.Rest()
}
