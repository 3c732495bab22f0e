package main

import (
	"fmt"
	"io"
	"net"
	"text/tabwriter"
	"time"

	"github.com/Frostie314159/awdl-frame-parser/awdl"
	"github.com/Frostie314159/awdl-frame-parser/awdl/awdllayer"
	"github.com/Frostie314159/awdl-frame-parser/core/macaddr"
	lru "github.com/hashicorp/golang-lru"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// Peer contains information learned about an AWDL peer.
type Peer struct {
	Address  net.HardwareAddr
	Hostname string
	Version  *awdl.Version
	Channels []uint8
	LastSeen time.Time
	Frames   int
}

// PeerTable tracks recently active peers.
// When full, the least recently seen peer is evicted.
type PeerTable struct {
	cache *lru.Cache
}

// NewPeerTable creates a PeerTable.
func NewPeerTable(capacity int) *PeerTable {
	cache, e := lru.NewWithEvict(alignCapacity(capacity), func(key, value interface{}) {
		logger.Debug("peer evicted", zap.String("address", key.(string)))
	})
	if e != nil {
		logger.Panic("lru.New error", zap.Error(e))
	}
	return &PeerTable{cache: cache}
}

// Len returns number of peers in the table.
func (t *PeerTable) Len() int {
	return t.cache.Len()
}

// Get retrieves a peer without updating its recency.
func (t *PeerTable) Get(addr net.HardwareAddr) *Peer {
	if v, ok := t.cache.Peek(addr.String()); ok {
		return v.(*Peer)
	}
	return nil
}

// Update records a frame sent by src at time ts.
func (t *PeerTable) Update(src net.HardwareAddr, ts time.Time, f awdl.Frame) *Peer {
	key := src.String()
	var p *Peer
	if v, ok := t.cache.Get(key); ok {
		p = v.(*Peer)
	} else {
		p = &Peer{Address: macaddr.FromBytes(src)}
		t.cache.Add(key, p)
	}

	p.Frames++
	if ts.After(p.LastSeen) {
		p.LastSeen = ts
	}

	var arpa *awdl.Arpa
	if awdl.Find(f, &arpa) {
		p.Hostname = arpa.Hostname.String()
	}
	var version *awdl.Version
	if awdl.Find(f, &version) {
		p.Version = version
	}
	var seq *awdl.ChannelSequence
	if awdl.Find(f, &seq) {
		p.Channels = seq.Distinct()
	}
	return p
}

// List returns peers, most recently seen first.
func (t *PeerTable) List() (list []Peer) {
	keys := t.cache.Keys()
	for i := len(keys) - 1; i >= 0; i-- {
		if v, ok := t.cache.Peek(keys[i]); ok {
			list = append(list, *v.(*Peer))
		}
	}
	return list
}

// Print writes the peer table as aligned columns.
func (t *PeerTable) Print(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ADDRESS\tHOSTNAME\tVERSION\tCHANNELS\tFRAMES\tLAST-SEEN")
	for _, p := range t.List() {
		version := "-"
		if p.Version != nil {
			version = fmt.Sprintf("%s/%s", p.Version.Protocol, p.Version.DeviceClass)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%v\t%d\t%s\n", p.Address, p.Hostname, version, p.Channels, p.Frames, p.LastSeen.Format(time.RFC3339))
	}
	return tw.Flush()
}

func init() {
	var cfg PeersConfig
	defineCommand(&cli.Command{
		Name:  "peers",
		Usage: "List AWDL peers seen in a pcap file.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "input",
				Aliases:     []string{"r"},
				Usage:       "Read packets from `FILE`.",
				Destination: &cfg.Input,
				Required:    true,
			},
			&cli.IntFlag{
				Name:        "capacity",
				Usage:       "Peer table capacity, rounded up to a power of two.",
				Value:       DefaultPeerCapacity,
				Destination: &cfg.Capacity,
			},
			&cli.GenericFlag{
				Name:  "filter",
				Usage: "Only track frames from transmitter `MAC`.",
				Value: &cfg.Filter,
			},
		},
		Action: func(c *cli.Context) error {
			cfg.applyDefaults()
			if e := cfg.validate(); e != nil {
				return e
			}

			table := NewPeerTable(cfg.Capacity)
			e := readCapture(cfg.Input, decodeOpts, func(cf capturedFrame) error {
				src := awdllayer.Transmitter(cf.Pkt)
				if !macaddr.IsValid(src) || (!cfg.Filter.Empty() && !macaddr.Equal(src, cfg.Filter.HardwareAddr)) {
					return nil
				}
				table.Update(src, cf.Info.Timestamp, cf.Layer.Frame)
				return nil
			})
			if pe := table.Print(c.App.Writer); pe != nil {
				return pe
			}
			return e
		},
	})
}
