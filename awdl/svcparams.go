package awdl

import (
	"fmt"
	"math/bits"

	"github.com/Frostie314159/awdl-frame-parser/awdl/an"
	"github.com/Frostie314159/awdl-frame-parser/awdl/tlv"
)

const (
	serviceParamsMinLen = 3 + 2 + 4
	serviceParamsBucket = 8
)

// ServiceParameters is the Service Parameters TLV.
//
// Values is a set of octets.
// On the wire, a 32-bit mask marks which 8-value buckets are occupied,
// followed by one octet per occupied bucket whose bits mark the values in that bucket.
type ServiceParameters struct {
	// SUI is the service update indicator; an increment tells peers to flush their DNS-SD caches.
	SUI uint16
	// Values contains distinct values in ascending order, after decoding.
	Values []uint8
}

// Type implements TLV interface.
func (ServiceParameters) Type() an.TlvType {
	return an.TtServiceParameters
}

func (sp ServiceParameters) buckets() (mask uint32, values [32]uint8) {
	for _, v := range sp.Values {
		bucket := v / serviceParamsBucket
		mask |= 1 << bucket
		values[bucket] |= 1 << (v % serviceParamsBucket)
	}
	return
}

// Field implements tlv.Fielder interface.
// Duplicates in Values are encoded once.
func (sp ServiceParameters) Field() tlv.Field {
	mask, values := sp.buckets()
	fields := []tlv.Field{tlv.Zeros(3), tlv.U16(sp.SUI), tlv.U32(mask)}
	for bucket, b := range values {
		if mask&(1<<bucket) != 0 {
			fields = append(fields, tlv.U8(b))
		}
	}
	return tlv.TLV(an.TtServiceParameters, fields...)
}

// UnmarshalTLV implements tlv.Unmarshaler interface.
func (sp *ServiceParameters) UnmarshalTLV(typ an.TlvType, value []byte) error {
	r, e := checkElement(an.TtServiceParameters, typ, value)
	if e != nil {
		return e
	}
	r.Skip(3)
	sp.SUI = r.U16()
	mask := r.U32()
	if n := bits.OnesCount32(mask); r.Len() < n {
		return tlv.TooLittleData(n - r.Len())
	}

	sp.Values = nil
	for bucket := 0; bucket < 32; bucket++ {
		if mask&(1<<bucket) == 0 {
			continue
		}
		b := r.U8()
		if b == 0 && r.Err() == nil {
			return fmt.Errorf("%s bucket %d is empty: %w", an.TtServiceParameters, bucket, tlv.ErrValueNotUnderstood)
		}
		for bit := 0; bit < serviceParamsBucket; bit++ {
			if b&(1<<bit) != 0 {
				sp.Values = append(sp.Values, uint8(bucket*serviceParamsBucket+bit))
			}
		}
	}
	return expectEOF(an.TtServiceParameters, r)
}
