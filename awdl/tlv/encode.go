package tlv

import (
	"encoding/binary"
	"fmt"
	"net"

	"github.com/Frostie314159/awdl-frame-parser/awdl/an"
	"github.com/Frostie314159/awdl-frame-parser/core/macaddr"
)

// EncodingBuffer is an encoding buffer.
// Zero value is an empty buffer.
type EncodingBuffer struct {
	b   []byte
	err error
}

// Append appends a field.
// If there's an error, it is accumulated in the EncodingBuffer.
func (eb *EncodingBuffer) Append(f Field) {
	if eb.err != nil {
		return
	}
	eb.b, eb.err = f.Encode(eb.b)
}

// Output returns encoding output and accumulated error.
func (eb EncodingBuffer) Output() ([]byte, error) {
	return eb.b, eb.err
}

type fieldType uint8

const (
	fieldTypeEmpty fieldType = iota
	fieldTypeError
	fieldTypeFunc
	fieldTypeBytes
	fieldTypeU8
	fieldTypeU16
	fieldTypeU16BE
	fieldTypeU32
	fieldTypeZeros
	fieldTypeTLV
)

// Field is an encodable field.
// Zero value encodes to nothing.
type Field struct {
	typ     fieldType
	integer uint64
	object  any
}

// Encode appends to the byte slice.
// Returns modified slice and error.
func (f Field) Encode(b []byte) ([]byte, error) {
	switch f.typ {
	case fieldTypeEmpty:
		return b, nil
	case fieldTypeError:
		return nil, f.object.(error)
	case fieldTypeFunc:
		return f.object.(func([]byte) ([]byte, error))(b)
	case fieldTypeBytes:
		return append(b, f.object.([]byte)...), nil
	case fieldTypeU8:
		return append(b, uint8(f.integer)), nil
	case fieldTypeU16:
		return binary.LittleEndian.AppendUint16(b, uint16(f.integer)), nil
	case fieldTypeU16BE:
		return binary.BigEndian.AppendUint16(b, uint16(f.integer)), nil
	case fieldTypeU32:
		return binary.LittleEndian.AppendUint32(b, uint32(f.integer)), nil
	case fieldTypeZeros:
		return append(b, make([]byte, f.integer)...), nil
	case fieldTypeTLV:
		return f.encodeTLV(b)
	default:
		panic(f.typ)
	}
}

func (f Field) encodeTLV(b []byte) ([]byte, error) {
	start := len(b)
	b = append(b, uint8(f.integer), 0, 0)
	for _, sub := range f.object.([]Field) {
		var e error
		if b, e = sub.Encode(b); e != nil {
			return nil, e
		}
	}

	length := len(b) - start - HeaderLen
	if length > MaxLength {
		return nil, fmt.Errorf("%s TLV-VALUE is %d octets: %w", an.TlvType(f.integer), length, ErrIncorrectTlvLength)
	}
	binary.LittleEndian.PutUint16(b[start+1:], uint16(length))
	return b, nil
}

// Field implements Fielder interface.
func (f Field) Field() Field {
	return f
}

// FieldError creates a Field that generates an error.
func FieldError(e error) Field {
	if e == nil {
		e = ErrErrorField
	}
	return Field{
		typ:    fieldTypeError,
		object: e,
	}
}

// FieldFunc creates a Field that calls a function to append to a slice.
func FieldFunc(f func([]byte) ([]byte, error)) Field {
	return Field{
		typ:    fieldTypeFunc,
		object: f,
	}
}

// Bytes creates a Field that encodes to given bytes.
func Bytes(b []byte) Field {
	return Field{
		typ:    fieldTypeBytes,
		object: b,
	}
}

// U8 creates a Field that encodes to one octet.
func U8(v uint8) Field {
	return Field{typ: fieldTypeU8, integer: uint64(v)}
}

// U16 creates a Field that encodes to little endian uint16.
func U16(v uint16) Field {
	return Field{typ: fieldTypeU16, integer: uint64(v)}
}

// U16BE creates a Field that encodes to big endian uint16.
func U16BE(v uint16) Field {
	return Field{typ: fieldTypeU16BE, integer: uint64(v)}
}

// U32 creates a Field that encodes to little endian uint32.
func U32(v uint32) Field {
	return Field{typ: fieldTypeU32, integer: uint64(v)}
}

// Zeros creates a Field that encodes to n zero octets.
func Zeros(n int) Field {
	if n < 0 {
		n = 0
	}
	return Field{typ: fieldTypeZeros, integer: uint64(n)}
}

// MAC creates a Field that encodes to a 6-octet MAC-48 address.
func MAC(a net.HardwareAddr) Field {
	return Bytes(macaddr.Append(nil, a))
}

// Fields creates a Field that encodes each field in order.
func Fields(fields ...Field) Field {
	return FieldFunc(func(b []byte) (o []byte, e error) {
		for _, f := range fields {
			if b, e = f.Encode(b); e != nil {
				return nil, e
			}
		}
		return b, nil
	})
}

// TLV creates a Field that encodes to TLV element from TLV-TYPE and TLV-VALUE Fields.
// TLV-LENGTH is computed from encoded TLV-VALUE.
func TLV(typ an.TlvType, values ...Field) Field {
	return Field{
		typ:     fieldTypeTLV,
		integer: uint64(typ),
		object:  values,
	}
}

// TLVFrom creates a Field that encodes to TLV element from TLV-TYPE and TLV-VALUE Fielders.
func TLVFrom(typ an.TlvType, values ...Fielder) Field {
	fields := make([]Field, len(values))
	for i, v := range values {
		fields[i] = v.Field()
	}
	return TLV(typ, fields...)
}

// TLVBytes creates a Field that encodes to TLV element from TLV-TYPE and TLV-VALUE byte slice.
func TLVBytes(typ an.TlvType, value []byte) Field {
	return TLV(typ, Bytes(value))
}

// Encode encodes a sequence of Fields.
func Encode(fields ...Field) (wire []byte, e error) {
	var eb EncodingBuffer
	for _, f := range fields {
		eb.Append(f)
	}
	return eb.Output()
}

// EncodeFrom encodes a sequence of Fielders.
func EncodeFrom(fields ...Fielder) (wire []byte, e error) {
	var eb EncodingBuffer
	for _, f := range fields {
		eb.Append(f.Field())
	}
	return eb.Output()
}
