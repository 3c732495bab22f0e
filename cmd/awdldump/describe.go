package main

import (
	"fmt"
	"io"
	"net"
	"strings"

	"github.com/Frostie314159/awdl-frame-parser/awdl"
)

// describe prints a frame summary and one line per TLV.
func describe(w io.Writer, src net.HardwareAddr, f awdl.Frame) {
	from := ""
	if src != nil {
		from = " from " + src.String()
	}
	fmt.Fprintf(w, "AWDL v%s %s%s phy=%d target=%d tlvs=%d\n", f.Version, f.Subtype, from, f.PhyTxTime, f.TargetTxTime, len(f.TLVs))
	for _, t := range f.TLVs {
		fmt.Fprintf(w, "  %s: %s\n", t.Type(), describeTLV(t))
	}
}

func describeTLV(t awdl.TLV) string {
	switch t := t.(type) {
	case *awdl.Version:
		return fmt.Sprintf("%s %s", t.Protocol, t.DeviceClass)
	case *awdl.ChannelSequence:
		return fmt.Sprintf("%s step=%d channels=%v", t.Encoding, t.StepCount, t.Distinct())
	case *awdl.SynchronizationTree:
		addrs := make([]string, len(t.Addresses))
		for i, a := range t.Addresses {
			addrs[i] = a.String()
		}
		return strings.Join(addrs, " > ")
	case *awdl.Arpa:
		return t.Hostname.String()
	case *awdl.ServiceResponse:
		if rr, e := t.RR(); e == nil {
			return rr.String()
		}
		return fmt.Sprintf("%s %+v", t.Name, t.Record)
	case *awdl.ServiceParameters:
		return fmt.Sprintf("sui=%d values=%v", t.SUI, t.Values)
	case *awdl.Unknown:
		return fmt.Sprintf("%X", t.Value)
	}
	return fmt.Sprintf("%+v", t)
}
