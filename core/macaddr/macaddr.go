// Package macaddr provides helpers for MAC-48 addresses as they appear in AWDL frames.
package macaddr

import (
	"bytes"
	"net"
)

// Size is the length of a MAC-48 address.
const Size = 6

// Equal determines whether two HardwareAddrs are the same.
func Equal(a, b net.HardwareAddr) bool {
	return bytes.Equal([]byte(a), []byte(b))
}

// IsValid determines whether the HardwareAddr is a MAC-48 address.
func IsValid(a net.HardwareAddr) bool {
	return len(a) == Size
}

// IsZero determines whether the HardwareAddr is unset or all zeros.
func IsZero(a net.HardwareAddr) bool {
	for _, b := range a {
		if b != 0 {
			return false
		}
	}
	return true
}

// IsUnicast determines whether the HardwareAddr is a non-zero unicast MAC-48 address.
func IsUnicast(a net.HardwareAddr) bool {
	return IsValid(a) && (a[0]&0x01) == 0 && !IsZero(a)
}

// IsMulticast determines whether the HardwareAddr is a multicast MAC-48 address.
func IsMulticast(a net.HardwareAddr) bool {
	return IsValid(a) && (a[0]&0x01) != 0
}

// FromBytes copies a MAC-48 address from the first 6 octets of b.
// Caller must ensure len(b) >= Size.
func FromBytes(b []byte) net.HardwareAddr {
	a := make(net.HardwareAddr, Size)
	copy(a, b[:Size])
	return a
}

// Append appends a as exactly 6 octets.
// A shorter address is zero-padded; nil encodes as 00:00:00:00:00:00.
func Append(b []byte, a net.HardwareAddr) []byte {
	var room [Size]byte
	copy(room[:], a)
	return append(b, room[:]...)
}
