// Package discovery implements the Discovery Service: a directory of live
// Game Servers keyed by source endpoint, refreshed by REGISTER/HEARTBEAT
// datagrams and swept for staleness (§4.2).
package discovery

import (
	"fmt"
	"time"

	"github.com/udisondev/blobarena/internal/protocol"
)

// entry is one directory row plus its liveness bookkeeping.
type entry struct {
	data          protocol.DirectoryEntry
	lastHeartbeat time.Time
}

// Directory holds every registered Game Server, keyed by "<ip>:<port>"
// (§4.2). Not safe for concurrent use; the Discovery Service's single loop
// is the only caller.
type Directory struct {
	entries map[string]*entry
	Now     func() time.Time
}

// NewDirectory returns an empty directory.
func NewDirectory() *Directory {
	return &Directory{
		entries: make(map[string]*entry),
		Now:     time.Now,
	}
}

// Key formats the directory key for an address and the port a Game Server
// registered under (§4.2: "keyed by <source_ip>:<port>").
func Key(ip string, port int) string {
	return fmt.Sprintf("%s:%d", ip, port)
}

// Register inserts or replaces the directory entry for key (§4.2 REGISTER).
func (d *Directory) Register(key string, sourceIP string, req protocol.RegisterRequest) {
	d.entries[key] = &entry{
		data: protocol.DirectoryEntry{
			Name:    req.Name,
			Address: sourceIP,
			Port:    req.Port,
			Current: req.Current,
			Max:     req.Max,
			Width:   req.Width,
			Height:  req.Height,
			HasPass: req.HasPass,
			Code:    req.Code,
		},
		lastHeartbeat: d.Now(),
	}
}

// Heartbeat refreshes last_heartbeat for key if it exists; a miss is a
// silent no-op (§4.2 HEARTBEAT).
func (d *Directory) Heartbeat(key string) {
	if e, ok := d.entries[key]; ok {
		e.lastHeartbeat = d.Now()
	}
}

// List returns every live entry, in no particular order (§4.2 QUERY).
func (d *Directory) List() []protocol.DirectoryEntry {
	out := make([]protocol.DirectoryEntry, 0, len(d.entries))
	for _, e := range d.entries {
		out = append(out, e.data)
	}
	return out
}

// SweepTimeouts drops every entry whose last_heartbeat is older than
// staleAfter (§4.2: "drop entries older than 60 s").
func (d *Directory) SweepTimeouts(staleAfter time.Duration) {
	now := d.Now()
	for key, e := range d.entries {
		if now.Sub(e.lastHeartbeat) > staleAfter {
			delete(d.entries, key)
		}
	}
}
