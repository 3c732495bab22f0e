package main

import (
	"bytes"
	"os"

	"github.com/Frostie314159/awdl-frame-parser/awdl/awdllayer"
	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// dump prints AWDL frames from cfg.Input, optionally re-encoding them into cfg.Output.
func dump(c *cli.Context, cfg DumpConfig) error {
	if e := cfg.validate(); e != nil {
		return e
	}

	var w *pcapgo.Writer
	if cfg.Output != "" {
		file, e := os.Create(cfg.Output)
		if e != nil {
			return e
		}
		defer file.Close()
		w = pcapgo.NewWriter(file)
		if e := w.WriteFileHeader(SnapLen, layers.LinkTypeIEEE802_11); e != nil {
			return e
		}
	}

	nFrames, nMismatch := 0, 0
	e := readCapture(cfg.Input, decodeOpts, func(cf capturedFrame) error {
		nFrames++
		src := awdllayer.Transmitter(cf.Pkt)
		describe(c.App.Writer, src, cf.Layer.Frame)

		if w == nil {
			return nil
		}
		wire, e := awdllayer.Serialize(src, cf.Layer.Frame)
		if e != nil {
			return e
		}
		if !roundTrips(cf.Layer, wire) {
			nMismatch++
			logger.Warn("re-encoded frame differs", zap.Int("index", cf.Index), zap.Stringer("src", src))
		}
		ci := cf.Info
		ci.CaptureLength, ci.Length = len(wire), len(wire)
		return w.WritePacket(ci, wire)
	})
	logger.Info("dump finished", zap.Int("frames", nFrames), zap.Int("mismatch", nMismatch))
	return e
}

// roundTrips determines whether a re-encoded 802.11 frame carries the same action body as the decoded layer.
func roundTrips(l *awdllayer.AWDL, wire []byte) bool {
	pkt := gopacket.NewPacket(wire, layers.LayerTypeDot11, gopacket.Default)
	l2, e := awdllayer.FromPacket(pkt, l.Options)
	return e == nil && bytes.Equal(l.LayerContents(), l2.LayerContents())
}

func init() {
	var cfg DumpConfig
	defineCommand(&cli.Command{
		Name:  "dump",
		Usage: "Print AWDL frames in a pcap file.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "input",
				Aliases:     []string{"r"},
				Usage:       "Read packets from `FILE`.",
				Destination: &cfg.Input,
				Required:    true,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"w"},
				Usage:       "Write re-encoded AWDL frames to `FILE`.",
				Destination: &cfg.Output,
			},
		},
		Action: func(c *cli.Context) error {
			return dump(c, cfg)
		},
	})
}
