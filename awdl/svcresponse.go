package awdl

import (
	"fmt"

	"github.com/Frostie314159/awdl-frame-parser/awdl/an"
	"github.com/Frostie314159/awdl-frame-parser/awdl/dnsname"
	"github.com/Frostie314159/awdl-frame-parser/awdl/tlv"
	"github.com/miekg/dns"
)

const serviceResponseMinLen = 2 + dnsname.MinSize + dnsRecordHeaderLen

// ServiceResponse is the Service Response TLV, which advertises one DNS-SD record.
type ServiceResponse struct {
	Name   dnsname.Name
	Record DnsRecord
}

// Type implements TLV interface.
func (ServiceResponse) Type() an.TlvType {
	return an.TtServiceResponse
}

// Field implements tlv.Fielder interface.
// The name length prefix counts one octet beyond the encoded name.
func (sr ServiceResponse) Field() tlv.Field {
	if sr.Record == nil {
		return tlv.FieldError(fmt.Errorf("%s without record: %w", an.TtServiceResponse, tlv.ErrValueNotUnderstood))
	}
	return tlv.TLV(an.TtServiceResponse,
		tlv.U16(uint16(sr.Name.Size()+1)),
		sr.Name.Field(),
		sr.Record.Field(),
	)
}

// UnmarshalTLV implements tlv.Unmarshaler interface.
func (sr *ServiceResponse) UnmarshalTLV(typ an.TlvType, value []byte) error {
	r, e := checkElement(an.TtServiceResponse, typ, value)
	if e != nil {
		return e
	}
	nameLen := int(r.U16())
	if nameLen == 0 {
		return fmt.Errorf("%s name length 0: %w", an.TtServiceResponse, tlv.ErrValueNotUnderstood)
	}
	nameWire := r.Slice(nameLen - 1)
	if e := r.Err(); e != nil {
		return e
	}
	if e := sr.Name.UnmarshalBinary(nameWire); e != nil {
		return e
	}
	sr.Record, e = readRecord(r)
	return e
}

// RR converts to a DNS resource record owned by the service name.
// Unknown record types become *dns.RFC3597.
func (sr ServiceResponse) RR() (dns.RR, error) {
	if sr.Record == nil {
		return nil, fmt.Errorf("%s without record: %w", an.TtServiceResponse, tlv.ErrValueNotUnderstood)
	}
	owner, ok := sr.Name.FQDN()
	if !ok {
		return nil, fmt.Errorf("service name %s: %w", sr.Name, tlv.ErrValueNotUnderstood)
	}
	return sr.Record.rr(dns.RR_Header{
		Name:   owner,
		Rrtype: uint16(sr.Record.RecordType()),
		Class:  dns.ClassINET,
	})
}
