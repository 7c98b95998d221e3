package sim

// ResolveCollisions runs the full post-input collision pipeline for the
// acting player, in the order §4.1 describes: self-eating, food, then
// player-on-player. onEat is called (if non-nil) whenever a player is
// reduced to zero cells and respawned, so the caller can log it.
func (s *State) ResolveCollisions(actorID string, onEat func(eater, victim *Player)) {
	actor, ok := s.Players[actorID]
	if !ok {
		return
	}

	selfEatSweep(actor)
	s.eatFood(actor)
	s.eatPlayers(actor, onEat)
}

// selfEatSweep repeatedly merges overlapping cells belonging to the same
// player until no eligible pair remains (§4.1 "Repeat sweep until stable").
func selfEatSweep(p *Player) {
	for {
		merged := false
		for i := 0; i < len(p.Cells); i++ {
			for j := i + 1; j < len(p.Cells); j++ {
				a, b := p.Cells[i], p.Cells[j]
				var big, small Cell
				var bigIdx, smallIdx int
				switch {
				case fullyContains(a, b):
					big, small, bigIdx, smallIdx = a, b, i, j
				case fullyContains(b, a):
					big, small, bigIdx, smallIdx = b, a, j, i
				default:
					continue
				}

				newSize := areaPreservingMerge(big.Size, small.Size)
				newX, newY := midpoint(big, small)
				p.Cells[bigIdx] = Cell{X: newX, Y: newY, Size: newSize}
				p.Cells = append(p.Cells[:smallIdx], p.Cells[smallIdx+1:]...)
				merged = true
				break
			}
			if merged {
				break
			}
		}
		if !merged {
			return
		}
	}
}

// eatFood grows each of the acting player's cells by consuming overlapping
// food dots (§4.1 Food).
func (s *State) eatFood(p *Player) {
	growth := s.Cfg.FoodSize * s.Cfg.GrowthRateFood

	for i := range p.Cells {
		c := &p.Cells[i]
		remaining := s.Food[:0]
		for _, f := range s.Food {
			if overlaps(*c, f.X, f.Y, s.Cfg.FoodSize) {
				c.Size = clamp(c.Size+growth, c.Size, s.Cfg.PlayerMaxSize)
				continue
			}
			remaining = append(remaining, f)
		}
		s.Food = remaining
	}
}

// eatPlayers lets the acting player's cells consume other players' cells it
// strictly dominates and fully contains (§4.1 Player-on-player). A victim
// reduced to zero cells is respawned in place, never removed. Victims are
// visited in identifier order, not map iteration order, so that growth
// accrual is reproducible across runs with identical inputs (§8 "Movement
// determinism").
func (s *State) eatPlayers(actor *Player, onEat func(eater, victim *Player)) {
	for _, id := range s.sortedPlayerIDs() {
		other := s.Players[id]
		if other == actor {
			continue
		}

		for i := range actor.Cells {
			acting := &actor.Cells[i]
			remaining := other.Cells[:0]
			for _, victimCell := range other.Cells {
				if acting.Size > victimCell.Size*1.1 && fullyContains(*acting, victimCell) {
					growth := victimCell.Size * s.Cfg.GrowthRatePlayer
					acting.Size = clamp(acting.Size+growth, acting.Size, s.Cfg.PlayerMaxSize)
					continue
				}
				remaining = append(remaining, victimCell)
			}
			other.Cells = remaining

			if len(other.Cells) == 0 {
				s.Respawn(other)
				if onEat != nil {
					onEat(actor, other)
				}
				break
			}
		}
	}
}
