package awdl

import (
	"encoding/binary"
	"fmt"

	"github.com/Frostie314159/awdl-frame-parser/awdl/an"
	"github.com/Frostie314159/awdl-frame-parser/awdl/dnsname"
	"github.com/Frostie314159/awdl-frame-parser/awdl/tlv"
	"github.com/miekg/dns"
)

const dnsRecordHeaderLen = 5

// DnsRecord is the DNS-SD record carried in a Service Response TLV.
// Concrete types are PTR, SRV, TXT, and UnknownRecord.
type DnsRecord interface {
	tlv.Fielder

	// RecordType returns the record type octet.
	RecordType() an.RecordType

	body() tlv.Field
	rr(hdr dns.RR_Header) (dns.RR, error)
}

// recordField encodes the 5-octet record header followed by the body.
// The length is written after the body, because it is not known in advance.
func recordField(rec DnsRecord) tlv.Field {
	return tlv.FieldFunc(func(b []byte) ([]byte, error) {
		b = append(b, uint8(rec.RecordType()), 0, 0, 0, 0)
		start := len(b)
		b, e := rec.body().Encode(b)
		if e != nil {
			return nil, e
		}
		bodyLen := len(b) - start
		if bodyLen > tlv.MaxLength {
			return nil, fmt.Errorf("%s record body %d octets: %w", rec.RecordType(), bodyLen, tlv.ErrIncorrectTlvLength)
		}
		binary.LittleEndian.PutUint16(b[start-4:], uint16(bodyLen))
		return b, nil
	})
}

// readRecord decodes a DNS record that fills the reader exactly.
func readRecord(r *tlv.Reader) (rec DnsRecord, e error) {
	typ := an.RecordType(r.U8())
	bodyLen := int(r.U16())
	r.Skip(2)
	if e := r.Err(); e != nil {
		return nil, e
	}
	if r.Len() < bodyLen {
		return nil, tlv.TooLittleData(bodyLen - r.Len())
	}
	body := tlv.NewReader(r.Slice(bodyLen))

	switch typ {
	case an.RecordPTR:
		var ptr PTR
		e = ptr.Target.UnmarshalBinary(body.Rest())
		rec = ptr
	case an.RecordSRV:
		var srv SRV
		srv.Priority, srv.Weight, srv.Port = body.U16BE(), body.U16BE(), body.U16BE()
		if e = body.Err(); e == nil {
			e = srv.Target.UnmarshalBinary(body.Rest())
		}
		rec = srv
	case an.RecordTXT:
		var txt TXT
		txt.Strings, e = dnsname.DecodeStrs(body.Rest())
		rec = txt
	default:
		rec = UnknownRecord{Type: typ, Body: body.Bytes(bodyLen)}
	}
	if e != nil {
		return nil, fmt.Errorf("%s record: %w", typ, e)
	}
	if r.Len() > 0 {
		return nil, fmt.Errorf("%d octets after %s record: %w", r.Len(), typ, tlv.ErrIncorrectTlvLength)
	}
	return rec, nil
}

// PTR is a DNS-SD PTR record.
type PTR struct {
	Target dnsname.Name
}

// RecordType implements DnsRecord interface.
func (PTR) RecordType() an.RecordType {
	return an.RecordPTR
}

func (rec PTR) body() tlv.Field {
	return rec.Target.Field()
}

// Field implements tlv.Fielder interface.
func (rec PTR) Field() tlv.Field {
	return recordField(rec)
}

func (rec PTR) rr(hdr dns.RR_Header) (dns.RR, error) {
	target, ok := rec.Target.FQDN()
	if !ok {
		return nil, fmt.Errorf("PTR target %s: %w", rec.Target, tlv.ErrValueNotUnderstood)
	}
	return &dns.PTR{Hdr: hdr, Ptr: target}, nil
}

// SRV is a DNS-SD SRV record.
type SRV struct {
	Priority uint16
	Weight   uint16
	Port     uint16
	Target   dnsname.Name
}

// RecordType implements DnsRecord interface.
func (SRV) RecordType() an.RecordType {
	return an.RecordSRV
}

func (rec SRV) body() tlv.Field {
	return tlv.Fields(tlv.U16BE(rec.Priority), tlv.U16BE(rec.Weight), tlv.U16BE(rec.Port), rec.Target.Field())
}

// Field implements tlv.Fielder interface.
func (rec SRV) Field() tlv.Field {
	return recordField(rec)
}

func (rec SRV) rr(hdr dns.RR_Header) (dns.RR, error) {
	target, ok := rec.Target.FQDN()
	if !ok {
		return nil, fmt.Errorf("SRV target %s: %w", rec.Target, tlv.ErrValueNotUnderstood)
	}
	return &dns.SRV{Hdr: hdr, Priority: rec.Priority, Weight: rec.Weight, Port: rec.Port, Target: target}, nil
}

// TXT is a DNS-SD TXT record.
// Each string is one key=value pair.
type TXT struct {
	Strings []string
}

// RecordType implements DnsRecord interface.
func (TXT) RecordType() an.RecordType {
	return an.RecordTXT
}

func (rec TXT) body() tlv.Field {
	return dnsname.Strs(rec.Strings)
}

// Field implements tlv.Fielder interface.
func (rec TXT) Field() tlv.Field {
	return recordField(rec)
}

func (rec TXT) rr(hdr dns.RR_Header) (dns.RR, error) {
	return &dns.TXT{Hdr: hdr, Txt: append([]string{}, rec.Strings...)}, nil
}

// UnknownRecord is a record of an unrecognized type, with its body carried verbatim.
type UnknownRecord struct {
	Type an.RecordType
	Body []byte
}

// RecordType implements DnsRecord interface.
func (rec UnknownRecord) RecordType() an.RecordType {
	return rec.Type
}

func (rec UnknownRecord) body() tlv.Field {
	return tlv.Bytes(rec.Body)
}

// Field implements tlv.Fielder interface.
func (rec UnknownRecord) Field() tlv.Field {
	return recordField(rec)
}

func (rec UnknownRecord) rr(hdr dns.RR_Header) (dns.RR, error) {
	hdr.Rrtype = uint16(rec.Type)
	return &dns.RFC3597{Hdr: hdr, Rdata: fmt.Sprintf("%x", rec.Body)}, nil
}
