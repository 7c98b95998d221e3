package sim

import "sort"

// RosterEntry is one cell-row of the roster (§6: "Roster entry:
// uuid,name,x,y,size,r,g,b"). A split player contributes one entry per cell.
type RosterEntry struct {
	PlayerID string
	Name     string
	X, Y     float64
	Size     float64
	Color    Color
}

// FoodEntry is one row of a snapshot's food list (§6: "Food entry:
// id,x,y,r,g,b").
type FoodEntry struct {
	ID    int
	X, Y  float64
	Color Color
}

// Roster returns one RosterEntry per cell across every live player, ordered
// by player identifier (§4.1 "Snapshots include all players"; §8 "Movement
// determinism" requires this order be independent of Go's randomized map
// iteration, matching the original's std::map<uuid, PlayerData> ordering).
func (s *State) Roster() []RosterEntry {
	var entries []RosterEntry
	for _, id := range s.sortedPlayerIDs() {
		p := s.Players[id]
		for _, c := range p.Cells {
			entries = append(entries, RosterEntry{
				PlayerID: p.ID,
				Name:     p.Name,
				X:        c.X,
				Y:        c.Y,
				Size:     c.Size,
				Color:    p.Color,
			})
		}
	}
	return entries
}

// sortedPlayerIDs returns every live player identifier in ascending order,
// giving every map-keyed-on-identifier iteration in this package a
// deterministic traversal (§8 "Movement determinism").
func (s *State) sortedPlayerIDs() []string {
	ids := make([]string, 0, len(s.Players))
	for id := range s.Players {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// NearbyFood returns every food dot within viewDistance units of (x,y),
// capped at maxFoodInPacket entries (§4.1 AoI).
func (s *State) NearbyFood(x, y float64) []FoodEntry {
	var entries []FoodEntry
	for _, f := range s.Food {
		if len(entries) >= maxFoodInPacket {
			break
		}
		dx := f.X - x
		dy := f.Y - y
		if dx*dx+dy*dy <= viewDistance*viewDistance {
			entries = append(entries, FoodEntry{ID: f.ID, X: f.X, Y: f.Y, Color: f.Color})
		}
	}
	return entries
}

// JoinSnapshot is everything a join reply needs (§6).
type JoinSnapshot struct {
	PlayerID string
	MapW     int
	MapH     int
	X, Y     float64
	Size     float64
	Color    Color
	Roster   []RosterEntry
	Food     []FoodEntry
}

// DeltaSnapshot is everything a per-input reply needs (§6).
type DeltaSnapshot struct {
	X, Y   float64
	Size   float64
	Roster []RosterEntry
	Food   []FoodEntry
}

// BuildJoinSnapshot assembles the full join reply for p (§6).
func (s *State) BuildJoinSnapshot(p *Player) JoinSnapshot {
	x, y := p.Centroid()
	return JoinSnapshot{
		PlayerID: p.ID,
		MapW:     s.World.Width,
		MapH:     s.World.Height,
		X:        x,
		Y:        y,
		Size:     p.PrimarySize(),
		Color:    p.Color,
		Roster:   s.Roster(),
		Food:     s.NearbyFood(x, y),
	}
}

// BuildDeltaSnapshot assembles the per-input reply for p (§6).
func (s *State) BuildDeltaSnapshot(p *Player) DeltaSnapshot {
	x, y := p.Centroid()
	return DeltaSnapshot{
		X:      x,
		Y:      y,
		Size:   p.PrimarySize(),
		Roster: s.Roster(),
		Food:   s.NearbyFood(x, y),
	}
}
