package an

import (
	"strconv"

	"github.com/miekg/dns"
)

// RecordType is the DNS resource record type in a Service Response.
// AWDL carries it in one octet.
type RecordType uint8

// DNS record types used by AWDL.
const (
	RecordPTR RecordType = RecordType(dns.TypePTR)
	RecordTXT RecordType = RecordType(dns.TypeTXT)
	RecordSRV RecordType = RecordType(dns.TypeSRV)
)

func (rt RecordType) String() string {
	if s, ok := dns.TypeToString[uint16(rt)]; ok {
		return s
	}
	return "TYPE" + strconv.Itoa(int(rt))
}
