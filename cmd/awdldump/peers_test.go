package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/Frostie314159/awdl-frame-parser/awdl/an"
)

func TestPeerTable(t *testing.T) {
	assert, require := makeAR(t)
	t0 := time.Unix(1700000000, 0).UTC()

	table := NewPeerTable(4)
	table.Update(peerA, t0, makeFrame("iPhone", 6, 44, 149))
	table.Update(peerB, t0.Add(time.Second), makeFrame(""))
	p := table.Update(peerA, t0.Add(2*time.Second), makeFrame("", 149))
	assert.Equal(2, table.Len())

	assert.Equal(2, p.Frames)
	assert.Equal("iPhone.local", p.Hostname)
	assert.Equal([]uint8{149}, p.Channels)
	assert.Equal(t0.Add(2*time.Second), p.LastSeen)
	require.NotNil(p.Version)
	assert.Equal(an.DeviceMacOS, p.Version.DeviceClass)

	// an older timestamp does not move LastSeen backwards
	table.Update(peerB, t0, makeFrame(""))
	assert.Equal(t0.Add(time.Second), table.Get(peerB).LastSeen)
	assert.Nil(table.Get(peerC))

	list := table.List()
	require.Len(list, 2)
	assert.Equal(peerB, list[0].Address)
	assert.Equal(peerA, list[1].Address)

	var buf bytes.Buffer
	require.NoError(table.Print(&buf))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(lines, 3)
	assert.True(strings.HasPrefix(lines[0], "ADDRESS"))
	assert.Contains(lines[2], "iPhone.local")
	assert.Contains(lines[2], "[149]")
}

func TestPeerTableEvict(t *testing.T) {
	assert, _ := makeAR(t)
	t0 := time.Unix(1700000000, 0)

	table := NewPeerTable(1)
	assert.Equal(MinPeerCapacity, alignCapacity(1))
	for i := 0; i < MinPeerCapacity+1; i++ {
		addr := append(peerC[:5:5], byte(i))
		table.Update(addr, t0.Add(time.Duration(i)*time.Second), makeFrame(""))
	}
	assert.Equal(MinPeerCapacity, table.Len())
	assert.Nil(table.Get(append(peerC[:5:5], 0)))
	assert.NotNil(table.Get(append(peerC[:5:5], MinPeerCapacity)))
}
