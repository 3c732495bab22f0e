package main

import (
	"errors"

	"github.com/Frostie314159/awdl-frame-parser/core/macaddr"
	binutils "github.com/jfoster/binary-utilities"
	"github.com/pkg/math"
	"go.uber.org/multierr"
)

// Peer table limits and defaults.
const (
	MinPeerCapacity     = 4
	MaxPeerCapacity     = 65536
	DefaultPeerCapacity = 256
)

// SnapLen is the snapshot length written into pcap file headers.
const SnapLen = 65536

// alignCapacity adjusts peer table capacity to a power of two within limits.
func alignCapacity(capacity int) int {
	if capacity <= 0 {
		return DefaultPeerCapacity
	}
	capacity = int(binutils.NextPowerOfTwo(int64(capacity)))
	return math.MinInt(math.MaxInt(MinPeerCapacity, capacity), MaxPeerCapacity)
}

// DumpConfig contains options of the dump command.
type DumpConfig struct {
	Input  string
	Output string
}

func (cfg DumpConfig) validate() error {
	errs := []error{}
	if cfg.Input == "" {
		errs = append(errs, errors.New("input file is required"))
	}
	if cfg.Output != "" && cfg.Output == cfg.Input {
		errs = append(errs, errors.New("output must differ from input"))
	}
	return multierr.Combine(errs...)
}

// PeersConfig contains options of the peers command.
type PeersConfig struct {
	Input    string
	Capacity int
	Filter   macaddr.Flag
}

func (cfg *PeersConfig) applyDefaults() {
	cfg.Capacity = alignCapacity(cfg.Capacity)
}

func (cfg PeersConfig) validate() error {
	errs := []error{}
	if cfg.Input == "" {
		errs = append(errs, errors.New("input file is required"))
	}
	if !cfg.Filter.Empty() && !macaddr.IsUnicast(cfg.Filter.HardwareAddr) {
		errs = append(errs, errors.New("filter must be a unicast address"))
	}
	return multierr.Combine(errs...)
}
