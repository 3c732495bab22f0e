package dnsname

import (
	"fmt"

	"github.com/Frostie314159/awdl-frame-parser/awdl/tlv"
)

// MaxStrLen is the longest string that fits behind a 1-octet length prefix.
const MaxStrLen = 0xFF

// ReadStr reads one length-prefixed string.
func ReadStr(r *tlv.Reader) string {
	n := r.U8()
	return string(r.Slice(int(n)))
}

// DecodeStrs decodes a run of length-prefixed strings that fills wire exactly.
func DecodeStrs(wire []byte) (list []string, e error) {
	r := tlv.NewReader(wire)
	for r.Len() > 0 {
		s := ReadStr(r)
		if e := r.Err(); e != nil {
			return nil, e
		}
		list = append(list, s)
	}
	return list, nil
}

// Str creates a Field that encodes s with a 1-octet length prefix.
func Str(s string) tlv.Field {
	if len(s) > MaxStrLen {
		return tlv.FieldError(fmt.Errorf("string %q longer than %d octets: %w", s, MaxStrLen, tlv.ErrValueNotUnderstood))
	}
	return tlv.FieldFunc(func(b []byte) ([]byte, error) {
		b = append(b, uint8(len(s)))
		return append(b, s...), nil
	})
}

// Strs creates a Field that encodes each string with a 1-octet length prefix.
func Strs(list []string) tlv.Field {
	fields := make([]tlv.Field, len(list))
	for i, s := range list {
		fields[i] = Str(s)
	}
	return tlv.Fields(fields...)
}

// StrsSize returns encoded size of Strs(list).
func StrsSize(list []string) (n int) {
	for _, s := range list {
		n += 1 + len(s)
	}
	return n
}
