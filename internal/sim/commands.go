package sim

import (
	"math"
	"strings"
	"time"
)

const (
	splitMergeCooldown = 100 * time.Millisecond
	splitFactor        = 1.0 / math.Sqrt2
	splitOffsetRatio   = 0.6
	viewDistance       = 300.0
	maxFoodInPacket    = 200
)

// Split applies the SPLIT command (§4.1): a 100ms cooldown via LastSplit, and
// — only if at least one cell is eligible (size >= 2*MinPlayerSize) — every
// eligible cell is replaced by two half-area cells, ineligible cells pass
// through unchanged. If no cell is eligible, the whole command is rejected
// and nothing changes.
func (s *State) Split(p *Player) {
	now := s.Now()
	if now.Sub(p.LastSplit) < splitMergeCooldown {
		return
	}

	threshold := 2 * s.Cfg.PlayerMinSize
	canSplit := false
	for _, c := range p.Cells {
		if c.Size >= threshold {
			canSplit = true
			break
		}
	}
	if !canSplit {
		return
	}

	next := make([]Cell, 0, len(p.Cells)*2)
	for _, c := range p.Cells {
		if c.Size >= threshold {
			newSize := c.Size * splitFactor
			offset := c.Size * splitOffsetRatio
			a := Cell{X: c.X - offset, Y: c.Y, Size: newSize}
			b := Cell{X: c.X + offset, Y: c.Y, Size: newSize}
			a.clampToWorld(s.World.Width, s.World.Height)
			b.clampToWorld(s.World.Width, s.World.Height)
			next = append(next, a, b)
		} else {
			next = append(next, c)
		}
	}
	p.Cells = next
	p.LastSplit = now
}

// Merge applies the MERGE command (§4.1): a 100ms cooldown via LastMerge; a
// no-op below 2 cells; otherwise the two cells with smallest center distance
// are replaced by one area-preserving cell at their midpoint.
func (s *State) Merge(p *Player) {
	now := s.Now()
	if now.Sub(p.LastMerge) < splitMergeCooldown {
		return
	}
	if len(p.Cells) < 2 {
		return
	}

	i, j := closestPair(p.Cells)
	merged := Cell{Size: areaPreservingMerge(p.Cells[i].Size, p.Cells[j].Size)}
	merged.X, merged.Y = midpoint(p.Cells[i], p.Cells[j])
	merged.clampToWorld(s.World.Width, s.World.Height)

	next := make([]Cell, 0, len(p.Cells)-1)
	for k, c := range p.Cells {
		if k != i && k != j {
			next = append(next, c)
		}
	}
	next = append(next, merged)
	p.Cells = next
	p.LastMerge = now
}

// closestPair returns the indices of the two cells with smallest center
// distance. Requires len(cells) >= 2.
func closestPair(cells []Cell) (int, int) {
	bi, bj := 0, 1
	best := distance(cells[0], cells[1])
	for i := 0; i < len(cells); i++ {
		for j := i + 1; j < len(cells); j++ {
			if d := distance(cells[i], cells[j]); d < best {
				best, bi, bj = d, i, j
			}
		}
	}
	return bi, bj
}

// ParseDirections parses a comma-separated subset of
// {UP,DOWN,LEFT,RIGHT} into a unit-ish (dx,dy), UP=+y, DOWN=-y, LEFT=-x,
// RIGHT=+x (§4.1). Returns (0,0,false) if the command contains no recognized
// direction token.
func ParseDirections(command string) (dx, dy float64, moved bool) {
	for _, tok := range strings.Split(command, ",") {
		switch strings.TrimSpace(tok) {
		case "UP":
			dy += 1
			moved = true
		case "DOWN":
			dy -= 1
			moved = true
		case "LEFT":
			dx -= 1
			moved = true
		case "RIGHT":
			dx += 1
			moved = true
		}
	}
	return dx, dy, moved
}

// Move applies a parsed (dx,dy) direction to every cell of p, proportional to
// MoveSpeedBase * (PlayerStartSize / cell.Size) -- larger cells are slower
// (§4.1) -- clamping each cell to the world bounds and updating LastMovement.
// dx,dy are normalized first if both axes are non-zero.
func (s *State) Move(p *Player, dx, dy float64) {
	if dx != 0 && dy != 0 {
		length := math.Sqrt(dx*dx + dy*dy)
		dx /= length
		dy /= length
	}

	for i := range p.Cells {
		c := &p.Cells[i]
		speed := s.Cfg.MoveSpeedBase * (s.Cfg.PlayerStartSize / c.Size)
		c.X += dx * speed
		c.Y += dy * speed
		c.clampToWorld(s.World.Width, s.World.Height)
	}
	p.LastMovement = s.Now()
}
