package dnsname

import "fmt"

// Compression is a 2-octet code that stands for a well-known domain suffix.
// It is big endian on the wire.
type Compression uint16

// Known compression codes.
const (
	Null            Compression = 0xC000
	AirPlayTcpLocal Compression = 0xC001
	AirPlayUdpLocal Compression = 0xC002
	AirPlay         Compression = 0xC003
	RaopTcpLocal    Compression = 0xC004
	RaopUdpLocal    Compression = 0xC005
	Raop            Compression = 0xC006
	AirDropTcpLocal Compression = 0xC007
	AirDropUdpLocal Compression = 0xC008
	AirDrop         Compression = 0xC009
	TcpLocal        Compression = 0xC00A
	UdpLocal        Compression = 0xC00B
	Local           Compression = 0xC00C
	Ip6Arpa         Compression = 0xC00D
	Ip4Arpa         Compression = 0xC00E
)

var compressionSuffix = map[Compression]string{
	Null:            "",
	AirPlayTcpLocal: "_airplay._tcp.local",
	AirPlayUdpLocal: "_airplay._udp.local",
	AirPlay:         "_airplay",
	RaopTcpLocal:    "_raop._tcp.local",
	RaopUdpLocal:    "_raop._udp.local",
	Raop:            "raop",
	AirDropTcpLocal: "_airdrop._tcp.local",
	AirDropUdpLocal: "_airdrop._udp.local",
	AirDrop:         "_airdrop",
	TcpLocal:        "_tcp.local",
	UdpLocal:        "_udp.local",
	Local:           "local",
	Ip6Arpa:         "ip6.arpa",
	Ip4Arpa:         "ip4.arpa",
}

// Known returns true if c maps to a suffix.
func (c Compression) Known() bool {
	_, ok := compressionSuffix[c]
	return ok
}

// Suffix returns the domain suffix that c stands for.
// ok is false for unassigned codes.
func (c Compression) Suffix() (suffix string, ok bool) {
	suffix, ok = compressionSuffix[c]
	return
}

func (c Compression) String() string {
	if suffix, ok := compressionSuffix[c]; ok {
		return suffix
	}
	return fmt.Sprintf("Unknown(0x%04X)", uint16(c))
}
