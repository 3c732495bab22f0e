package awdl

import (
	"fmt"
	"net"

	"github.com/Frostie314159/awdl-frame-parser/awdl/an"
	"github.com/Frostie314159/awdl-frame-parser/awdl/tlv"
)

const dataPathStateMinLen = 2

// Data Path State flag word bits.
const (
	dpInfraBSSIDChannel uint16 = 1 << iota
	dpInfraAddress
	dpAWDLAddress
	dpReserved3
	dpUMI
	dpDualband
	dpAirPlaySink
	dpFollowChannelSequence
	dpCountryCode
	dpChannel
	dpAirPlaySolo
	dpUMISupport
	dpUnicastOptions
	dpRealtime
	dpRangeable
	dpExtension

	dpReservedMask = dpReserved3
)

// Data Path State extended flag word bits.
const (
	dpxLogTriggerID uint16 = 1 << iota
	dpxRangingDiscovery
	dpxRLFC
	dpxChannelMap
	dpxSDBActive
	dpxDFSProxySupport
	dpxStats

	dpxReservedMask uint16 = 0xFF80
)

// ChannelMap is a set of well-known channels, one bit each.
type ChannelMap uint16

// ChannelMap bits.
const (
	ChannelMap6 ChannelMap = 1 << iota
	ChannelMap44
	ChannelMap149
)

var channelMapNumbers = []struct {
	bit ChannelMap
	ch  uint8
}{{ChannelMap6, 6}, {ChannelMap44, 44}, {ChannelMap149, 149}}

// Channels returns the channel numbers in the map.
func (m ChannelMap) Channels() (list []uint8) {
	for _, c := range channelMapNumbers {
		if m&c.bit != 0 {
			list = append(list, c.ch)
		}
	}
	return list
}

// DataPathChannel is either a single channel number or a ChannelMap.
// It is a map if and only if the extended flag word marks it as such.
type DataPathChannel struct {
	IsMap  bool
	Number uint16
	Map    ChannelMap
}

func (ch DataPathChannel) word() uint16 {
	if ch.IsMap {
		return uint16(ch.Map)
	}
	return ch.Number
}

// UnicastOptions is the length-prefixed unicast options block.
type UnicastOptions struct {
	Flags UnicastOptionFlags
	// Extra contains octets after the flag word, typically 0 or 4.
	Extra []byte
}

// UnicastOptionFlags is the unicast options bitmask.
type UnicastOptionFlags uint32

// UnicastOptionFlags bits.
const (
	UnicastStartAirPlay             UnicastOptionFlags = 1 << 1
	UnicastCacheRequest             UnicastOptionFlags = 1 << 3
	UnicastJumpstartDFSProxy        UnicastOptionFlags = 1 << 5
	UnicastAirPlayOnDFSChannel      UnicastOptionFlags = 1 << 6
	UnicastStartSidecar             UnicastOptionFlags = 1 << 9
	UnicastSidecarBackgroundRequest UnicastOptionFlags = 1 << 10
	UnicastSidecarForegroundRequest UnicastOptionFlags = 1 << 11
	UnicastStopSidecar              UnicastOptionFlags = 1 << 12
	UnicastStartMultiPeerSteering   UnicastOptionFlags = 1 << 13
	UnicastStartRealtimeMode        UnicastOptionFlags = 1 << 14
	UnicastStopRealtimeMode         UnicastOptionFlags = 1 << 15
	UnicastStartAirPlayRecovery     UnicastOptionFlags = 1 << 16
	UnicastStartHTMode              UnicastOptionFlags = 1 << 17
	UnicastStopHTMode               UnicastOptionFlags = 1 << 18
	UnicastStopAirPlay              UnicastOptionFlags = 1 << 19
	UnicastFailedMultiPeerSteering  UnicastOptionFlags = 1 << 20
	UnicastStartRTGEnsemble         UnicastOptionFlags = 1 << 24
	UnicastStopRTGEnsemble          UnicastOptionFlags = 1 << 25
	UnicastStartAirPlayInRTGMode    UnicastOptionFlags = 1 << 26
	UnicastStopAirPlayInRTGMode     UnicastOptionFlags = 1 << 27
	UnicastStartSidecarInRTGMode    UnicastOptionFlags = 1 << 28
	UnicastStopSidecarInRTGMode     UnicastOptionFlags = 1 << 29
	UnicastStartRemoteCamera        UnicastOptionFlags = 1 << 30
	UnicastStopRemoteCamera         UnicastOptionFlags = 1 << 31
)

// DataPathStats is the statistics block of the extended region.
type DataPathStats struct {
	MsecSinceActivation uint32
	AWSeqCounter        uint32
	PayUpdateCounter    uint32
}

// DataPathExtension is the region gated by the extension bit of the flag word.
type DataPathExtension struct {
	LogTriggerID     *uint16
	RangingDiscovery bool
	RLFC             *uint32
	SDBActive        bool
	DFSProxySupport  bool
	Stats            *DataPathStats
	// ReservedFlags holds extended flag bits without a known meaning.
	ReservedFlags uint16
}

// DataPathState is the Data Path State TLV.
//
// Each optional field is present on the wire iff it is non-nil (non-empty for CountryCode).
// Flag bits are derived from the fields when encoding.
type DataPathState struct {
	CountryCode string
	// CountryEnvironment is the third octet of the country string, such as ' ', 'I' or 'O'.
	CountryEnvironment byte

	Channel        *DataPathChannel
	InfraBSSID     net.HardwareAddr
	InfraChannel   uint16
	InfraAddress   net.HardwareAddr
	AWDLAddress    net.HardwareAddr
	UnicastOptions *UnicastOptions
	UMI            *uint16

	Dualband              bool
	AirPlaySink           bool
	FollowChannelSequence bool
	AirPlaySolo           bool
	UMISupport            bool
	Realtime              bool
	Rangeable             bool
	// ReservedFlags holds flag bits without a known meaning.
	ReservedFlags uint16

	Extension *DataPathExtension
}

// Type implements TLV interface.
func (DataPathState) Type() an.TlvType {
	return an.TtDataPathState
}

func setIf(flags *uint16, bit uint16, cond bool) {
	if cond {
		*flags |= bit
	}
}

// Field implements tlv.Fielder interface.
func (dps DataPathState) Field() tlv.Field {
	var flags uint16
	setIf(&flags, dpCountryCode, dps.CountryCode != "")
	setIf(&flags, dpChannel, dps.Channel != nil)
	setIf(&flags, dpInfraBSSIDChannel, dps.InfraBSSID != nil)
	setIf(&flags, dpInfraAddress, dps.InfraAddress != nil)
	setIf(&flags, dpAWDLAddress, dps.AWDLAddress != nil)
	setIf(&flags, dpUnicastOptions, dps.UnicastOptions != nil)
	setIf(&flags, dpUMI, dps.UMI != nil)
	setIf(&flags, dpDualband, dps.Dualband)
	setIf(&flags, dpAirPlaySink, dps.AirPlaySink)
	setIf(&flags, dpFollowChannelSequence, dps.FollowChannelSequence)
	setIf(&flags, dpAirPlaySolo, dps.AirPlaySolo)
	setIf(&flags, dpUMISupport, dps.UMISupport)
	setIf(&flags, dpRealtime, dps.Realtime)
	setIf(&flags, dpRangeable, dps.Rangeable)
	setIf(&flags, dpExtension, dps.Extension != nil)
	flags |= dps.ReservedFlags & dpReservedMask

	fields := []tlv.Field{tlv.U16(flags)}
	if dps.CountryCode != "" {
		if len(dps.CountryCode) != 2 {
			return tlv.FieldError(fmt.Errorf("country code %q: %w", dps.CountryCode, tlv.ErrValueNotUnderstood))
		}
		fields = append(fields, tlv.Bytes([]byte(dps.CountryCode)), tlv.U8(dps.CountryEnvironment))
	}
	if dps.Channel != nil {
		if dps.Channel.IsMap && dps.Extension == nil {
			return tlv.FieldError(fmt.Errorf("channel map requires extension flags: %w", tlv.ErrValueNotUnderstood))
		}
		fields = append(fields, tlv.U16(dps.Channel.word()))
	}
	if dps.InfraBSSID != nil {
		fields = append(fields, tlv.MAC(dps.InfraBSSID), tlv.U16(dps.InfraChannel))
	}
	if dps.InfraAddress != nil {
		fields = append(fields, tlv.MAC(dps.InfraAddress))
	}
	if dps.AWDLAddress != nil {
		fields = append(fields, tlv.MAC(dps.AWDLAddress))
	}
	if uo := dps.UnicastOptions; uo != nil {
		fields = append(fields, tlv.U16(uint16(4+len(uo.Extra))), tlv.U32(uint32(uo.Flags)), tlv.Bytes(uo.Extra))
	}
	if dps.UMI != nil {
		fields = append(fields, tlv.U16(*dps.UMI))
	}
	if x := dps.Extension; x != nil {
		fields = append(fields, x.field(dps.Channel != nil && dps.Channel.IsMap))
	}
	return tlv.TLV(an.TtDataPathState, fields...)
}

func (x DataPathExtension) field(channelMap bool) tlv.Field {
	var flags uint16
	setIf(&flags, dpxLogTriggerID, x.LogTriggerID != nil)
	setIf(&flags, dpxRangingDiscovery, x.RangingDiscovery)
	setIf(&flags, dpxRLFC, x.RLFC != nil)
	setIf(&flags, dpxChannelMap, channelMap)
	setIf(&flags, dpxSDBActive, x.SDBActive)
	setIf(&flags, dpxDFSProxySupport, x.DFSProxySupport)
	setIf(&flags, dpxStats, x.Stats != nil)
	flags |= x.ReservedFlags & dpxReservedMask

	fields := []tlv.Field{tlv.U16(flags)}
	if x.LogTriggerID != nil {
		fields = append(fields, tlv.U16(*x.LogTriggerID))
	}
	if x.RLFC != nil {
		fields = append(fields, tlv.U32(*x.RLFC))
	}
	if s := x.Stats; s != nil {
		fields = append(fields, tlv.U32(s.MsecSinceActivation), tlv.U32(s.AWSeqCounter), tlv.U32(s.PayUpdateCounter))
	}
	return tlv.Fields(fields...)
}

// UnmarshalTLV implements tlv.Unmarshaler interface.
// Optional fields are read in flag bit order: country code, channel, infra BSSID and channel,
// infra address, AWDL address, unicast options, UMI, extension.
func (dps *DataPathState) UnmarshalTLV(typ an.TlvType, value []byte) error {
	r, e := checkElement(an.TtDataPathState, typ, value)
	if e != nil {
		return e
	}
	*dps = DataPathState{}
	flags := r.U16()
	has := func(bit uint16) bool { return flags&bit != 0 }

	if has(dpCountryCode) {
		dps.CountryCode = string(r.Slice(2))
		dps.CountryEnvironment = r.U8()
	}
	var channelWord uint16
	if has(dpChannel) {
		channelWord = r.U16()
	}
	if has(dpInfraBSSIDChannel) {
		dps.InfraBSSID = r.MAC()
		dps.InfraChannel = r.U16()
	}
	if has(dpInfraAddress) {
		dps.InfraAddress = r.MAC()
	}
	if has(dpAWDLAddress) {
		dps.AWDLAddress = r.MAC()
	}
	if has(dpUnicastOptions) {
		n := int(r.U16())
		if r.Err() == nil && n < 4 {
			return fmt.Errorf("unicast options length %d: %w", n, tlv.ErrIncorrectTlvLength)
		}
		uo := &UnicastOptions{Flags: UnicastOptionFlags(r.U32())}
		if n > 4 {
			uo.Extra = r.Bytes(n - 4)
		}
		dps.UnicastOptions = uo
	}
	if has(dpUMI) {
		umi := r.U16()
		dps.UMI = &umi
	}

	dps.Dualband = has(dpDualband)
	dps.AirPlaySink = has(dpAirPlaySink)
	dps.FollowChannelSequence = has(dpFollowChannelSequence)
	dps.AirPlaySolo = has(dpAirPlaySolo)
	dps.UMISupport = has(dpUMISupport)
	dps.Realtime = has(dpRealtime)
	dps.Rangeable = has(dpRangeable)
	dps.ReservedFlags = flags & dpReservedMask

	channelMap := false
	if has(dpExtension) {
		dps.Extension, channelMap = readDataPathExtension(r)
	}
	if channelMap && !has(dpChannel) {
		return fmt.Errorf("channel map flag without channel: %w", tlv.ErrValueNotUnderstood)
	}
	if has(dpChannel) {
		dps.Channel = &DataPathChannel{Number: channelWord}
		if channelMap {
			dps.Channel = &DataPathChannel{IsMap: true, Map: ChannelMap(channelWord)}
		}
	}
	return expectEOF(an.TtDataPathState, r)
}

func readDataPathExtension(r *tlv.Reader) (x *DataPathExtension, channelMap bool) {
	flags := r.U16()
	has := func(bit uint16) bool { return flags&bit != 0 }
	x = &DataPathExtension{
		RangingDiscovery: has(dpxRangingDiscovery),
		SDBActive:        has(dpxSDBActive),
		DFSProxySupport:  has(dpxDFSProxySupport),
		ReservedFlags:    flags & dpxReservedMask,
	}
	if has(dpxLogTriggerID) {
		id := r.U16()
		x.LogTriggerID = &id
	}
	if has(dpxRLFC) {
		rlfc := r.U32()
		x.RLFC = &rlfc
	}
	if has(dpxStats) {
		x.Stats = &DataPathStats{
			MsecSinceActivation: r.U32(),
			AWSeqCounter:        r.U32(),
			PayUpdateCounter:    r.U32(),
		}
	}
	return x, has(dpxChannelMap)
}
