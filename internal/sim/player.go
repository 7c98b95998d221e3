package sim

import (
	"net"
	"time"
)

// Player is a session owned by the Game Server's single-threaded loop (§3).
// No field is guarded by a mutex: §5 guarantees exactly one goroutine ever
// touches it.
type Player struct {
	ID    string
	Name  string
	Cells []Cell
	Color Color

	LastSeen *net.UDPAddr

	LastPingResponse time.Time
	LastMovement     time.Time
	LastPingSent     time.Time
	LastSplit        time.Time
	LastMerge        time.Time
}

// Centroid returns the average position of a player's cells, used as the
// reference point for a snapshot's POS field and for the AoI food filter (§4.1).
func (p *Player) Centroid() (x, y float64) {
	if len(p.Cells) == 0 {
		return 0, 0
	}
	for _, c := range p.Cells {
		x += c.X
		y += c.Y
	}
	n := float64(len(p.Cells))
	return x / n, y / n
}

// PrimarySize returns the size reported in a snapshot's SIZE field: the first
// cell's size. This mirrors the original implementation, which never
// aggregates size across a split player's cells for that field.
func (p *Player) PrimarySize() float64 {
	if len(p.Cells) == 0 {
		return 0
	}
	return p.Cells[0].Size
}

// SameEndpoint reports whether addr matches this player's last known endpoint,
// used for idempotent re-admission (§4.1).
func (p *Player) SameEndpoint(addr *net.UDPAddr) bool {
	if p.LastSeen == nil || addr == nil {
		return false
	}
	return p.LastSeen.IP.Equal(addr.IP) && p.LastSeen.Port == addr.Port
}
