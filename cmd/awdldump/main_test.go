package main

import (
	"net"

	"github.com/Frostie314159/awdl-frame-parser/awdl"
	"github.com/Frostie314159/awdl-frame-parser/awdl/an"
	"github.com/Frostie314159/awdl-frame-parser/awdl/channel"
	"github.com/Frostie314159/awdl-frame-parser/awdl/dnsname"
	"github.com/Frostie314159/awdl-frame-parser/core/testenv"
)

var makeAR = testenv.MakeAR

var (
	peerA = net.HardwareAddr{0xCE, 0x21, 0x1F, 0x62, 0x21, 0x22}
	peerB = net.HardwareAddr{0x02, 0x11, 0x22, 0x33, 0x44, 0x55}
	peerC = net.HardwareAddr{0x02, 0x66, 0x77, 0x88, 0x99, 0xAA}
)

func makeFrame(hostname string, channels ...uint8) awdl.Frame {
	f := awdl.Frame{
		Header: awdl.Header{
			Version: an.ProtocolVersion{Major: 3, Minor: 4},
			Subtype: an.SubtypeMIF,
		},
		TLVs: []awdl.TLV{
			&awdl.Version{Protocol: an.ProtocolVersion{Major: 3, Minor: 4}, DeviceClass: an.DeviceMacOS},
		},
	}
	if hostname != "" {
		f.TLVs = append(f.TLVs, &awdl.Arpa{Flags: 0x03, Hostname: dnsname.MakeName(dnsname.Local, hostname)})
	}
	if len(channels) > 0 {
		seq := channel.MakeSequence(3, channel.Simple(channels[0]))
		for i := range seq.Channels {
			seq.Channels[i] = channel.Simple(channels[i%len(channels)])
		}
		f.TLVs = append(f.TLVs, &awdl.ChannelSequence{Sequence: seq})
	}
	return f
}
