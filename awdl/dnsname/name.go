// Package dnsname implements the compressed DNS names that AWDL reuses from DNS-SD.
//
// A name is a run of length-prefixed labels followed by a big endian Compression code.
// The code replaces a well-known suffix such as "local" or "_airplay._tcp.local".
package dnsname

import (
	"encoding/binary"
	"strings"

	"github.com/Frostie314159/awdl-frame-parser/awdl/tlv"
	"github.com/miekg/dns"
)

// MinSize is the shortest valid encoding: a bare compression code.
const MinSize = 2

// Name is a compressed DNS name.
type Name struct {
	Labels []string
	Domain Compression
}

// MakeName constructs a Name.
func MakeName(domain Compression, labels ...string) Name {
	return Name{Labels: labels, Domain: domain}
}

// Size returns encoded size.
func (n Name) Size() int {
	return StrsSize(n.Labels) + 2
}

// UnmarshalBinary decodes a Name that fills wire exactly.
// Labels are copied out of wire.
func (n *Name) UnmarshalBinary(wire []byte) (e error) {
	if len(wire) < MinSize {
		return tlv.TooLittleData(MinSize - len(wire))
	}
	split := len(wire) - 2
	if n.Labels, e = DecodeStrs(wire[:split]); e != nil {
		return e
	}
	n.Domain = Compression(binary.BigEndian.Uint16(wire[split:]))
	return nil
}

// Field implements tlv.Fielder interface.
func (n Name) Field() tlv.Field {
	return tlv.Fields(Strs(n.Labels), tlv.U16BE(uint16(n.Domain)))
}

// MarshalBinary encodes the Name.
func (n Name) MarshalBinary() ([]byte, error) {
	return tlv.Encode(n.Field())
}

// String returns labels and domain suffix joined by dots.
func (n Name) String() string {
	parts := append([]string{}, n.Labels...)
	if suffix := n.Domain.String(); suffix != "" {
		parts = append(parts, suffix)
	}
	return strings.Join(parts, ".")
}

var labelEscaper = strings.NewReplacer(`\`, `\\`, `.`, `\.`)

// FQDN returns the name in DNS presentation format, with a trailing dot.
// Dots inside a label are escaped.
// ok is false if the domain code is unassigned or the result is not a valid domain name.
func (n Name) FQDN() (fqdn string, ok bool) {
	suffix, ok := n.Domain.Suffix()
	if !ok {
		return "", false
	}

	parts := make([]string, 0, len(n.Labels)+1)
	for _, label := range n.Labels {
		parts = append(parts, labelEscaper.Replace(label))
	}
	if suffix != "" {
		parts = append(parts, suffix)
	}

	fqdn = dns.Fqdn(strings.Join(parts, "."))
	_, ok = dns.IsDomainName(fqdn)
	return fqdn, ok
}
