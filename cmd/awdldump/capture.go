package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Frostie314159/awdl-frame-parser/awdl"
	"github.com/Frostie314159/awdl-frame-parser/awdl/awdllayer"
	"github.com/google/gopacket"
	"github.com/google/gopacket/pcapgo"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// capturedFrame is an AWDL frame read from a capture file.
type capturedFrame struct {
	Index int
	Info  gopacket.CaptureInfo
	Pkt   gopacket.Packet
	Layer *awdllayer.AWDL
}

// readCapture invokes cb on each AWDL frame in a pcap file.
// Packets that are not AWDL are skipped; decoding errors are collected and returned after the whole file is read.
func readCapture(filename string, opts awdl.DecodeOptions, cb func(cf capturedFrame) error) (errs error) {
	file, e := os.Open(filename)
	if e != nil {
		return e
	}
	defer file.Close()

	r, e := pcapgo.NewReader(file)
	if e != nil {
		return e
	}
	logger.Debug("capture opened", zap.String("filename", filename), zap.Stringer("link-type", r.LinkType()))

	for i := 0; ; i++ {
		data, ci, e := r.ReadPacketData()
		if errors.Is(e, io.EOF) {
			return errs
		}
		if e != nil {
			return multierr.Append(errs, e)
		}

		pkt := gopacket.NewPacket(data, r.LinkType(), gopacket.Default)
		l, e := awdllayer.FromPacket(pkt, opts)
		switch {
		case errors.Is(e, awdllayer.ErrNotAWDL):
			continue
		case e != nil:
			logger.Warn("frame decode error", zap.Int("index", i), zap.Error(e))
			errs = multierr.Append(errs, fmt.Errorf("packet %d: %w", i, e))
			continue
		}

		if e := cb(capturedFrame{Index: i, Info: ci, Pkt: pkt, Layer: l}); e != nil {
			return multierr.Append(errs, e)
		}
	}
}
