package tlv

import (
	"encoding/binary"
	"net"

	"github.com/Frostie314159/awdl-frame-parser/core/macaddr"
)

// Reader reads fixed-width fields from a TLV-VALUE.
// The first short read sets a sticky error; later reads return zero values.
//
// Multi-octet integers are little endian unless the method name says BE.
type Reader struct {
	b   []byte
	err error
}

// NewReader creates a Reader over b.
func NewReader(b []byte) *Reader {
	return &Reader{b: b}
}

// Err returns the first error, if any.
func (r *Reader) Err() error {
	return r.err
}

// Len returns the number of unread octets.
func (r *Reader) Len() int {
	return len(r.b)
}

func (r *Reader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if len(r.b) < n {
		r.err = TooLittleData(n - len(r.b))
		return nil
	}
	v := r.b[:n]
	r.b = r.b[n:]
	return v
}

// U8 reads an octet.
func (r *Reader) U8() uint8 {
	if b := r.take(1); b != nil {
		return b[0]
	}
	return 0
}

// U16 reads a little endian uint16.
func (r *Reader) U16() uint16 {
	if b := r.take(2); b != nil {
		return binary.LittleEndian.Uint16(b)
	}
	return 0
}

// U16BE reads a big endian uint16.
func (r *Reader) U16BE() uint16 {
	if b := r.take(2); b != nil {
		return binary.BigEndian.Uint16(b)
	}
	return 0
}

// U32 reads a little endian uint32.
func (r *Reader) U32() uint32 {
	if b := r.take(4); b != nil {
		return binary.LittleEndian.Uint32(b)
	}
	return 0
}

// MAC reads a MAC-48 address into a new slice.
func (r *Reader) MAC() net.HardwareAddr {
	if b := r.take(macaddr.Size); b != nil {
		return macaddr.FromBytes(b)
	}
	return nil
}

// Bytes reads n octets into a new slice.
func (r *Reader) Bytes(n int) []byte {
	if b := r.take(n); b != nil {
		return append([]byte{}, b...)
	}
	return nil
}

// Slice reads n octets, aliasing the input.
func (r *Reader) Slice(n int) []byte {
	return r.take(n)
}

// Skip discards n octets.
func (r *Reader) Skip(n int) {
	r.take(n)
}

// Rest consumes and returns all unread octets, aliasing the input.
func (r *Reader) Rest() []byte {
	if r.err != nil {
		return nil
	}
	v := r.b
	r.b = nil
	return v
}
