package sim

import (
	"math"
	"time"
)

const pingSendInterval = 10 * time.Second

// SpawnInitialFood seeds MaxFood/2 food dots at startup (§4.1 Background jobs).
func (s *State) SpawnInitialFood() {
	n := s.Cfg.MaxFood / 2
	for i := 0; i < n; i++ {
		s.spawnOneFood()
	}
}

// SpawnFoodTick spawns up to FoodSpawnPerTick dots, skipping entirely once
// the food list holds MaxFood dots (§4.1, job period 100ms -- the caller is
// responsible for the period).
func (s *State) SpawnFoodTick() {
	if len(s.Food) >= s.Cfg.MaxFood {
		return
	}
	for i := 0; i < s.Cfg.FoodSpawnPerTick; i++ {
		if len(s.Food) >= s.Cfg.MaxFood {
			return
		}
		s.spawnOneFood()
	}
}

func (s *State) spawnOneFood() {
	x, y := s.World.RandomPointAwayFromEdge(s.rng, 5)
	s.Food = append(s.Food, &FoodDot{
		ID:    s.nextFoodID,
		X:     x,
		Y:     y,
		Color: RandomFoodColor(s.rng.color()),
	})
	s.nextFoodID++
}

// PlayersDueForPing returns every player that has not been pinged in the
// last 10 seconds, updating their LastPingSent as of now (§4.1 Ping sweep,
// job period 5s).
func (s *State) PlayersDueForPing() []*Player {
	now := s.Now()
	var due []*Player
	for _, p := range s.Players {
		if now.Sub(p.LastPingSent) >= pingSendInterval {
			p.LastPingSent = now
			due = append(due, p)
		}
	}
	return due
}

// SweepTimeouts removes every player whose liveness has expired -- either no
// inbound datagram within PingTimeoutSeconds, or no movement within
// InactivityTimeoutSeconds -- converting each of their cells to food
// (§4.1 Timeout sweep, job period 5s). Returns the removed players so the
// caller can log them.
func (s *State) SweepTimeouts() []*Player {
	now := s.Now()
	pingTimeout := time.Duration(s.Cfg.PingTimeoutSeconds * float64(time.Second))
	inactivityTimeout := time.Duration(s.Cfg.InactivityTimeoutSecs * float64(time.Second))

	var removed []*Player
	for id, p := range s.Players {
		if now.Sub(p.LastPingResponse) > pingTimeout || now.Sub(p.LastMovement) > inactivityTimeout {
			delete(s.Players, id)
			s.convertToFood(p)
			removed = append(removed, p)
		}
	}
	return removed
}

// convertToFood scatters floor(cell_area / food_area) food dots, carrying
// the player's color, uniformly within each of the player's cells (§3
// Lifecycle, §4.1 Timeout sweep).
func (s *State) convertToFood(p *Player) {
	foodArea := math.Pi * s.Cfg.FoodSize * s.Cfg.FoodSize

	for _, c := range p.Cells {
		cellArea := math.Pi * c.Size * c.Size
		count := int(cellArea / foodArea)

		for i := 0; i < count; i++ {
			angle := s.rng.Float64Range(0, 2*math.Pi)
			dist := s.rng.Float64Range(0, c.Size)
			x := clamp(c.X+math.Cos(angle)*dist, 5, float64(s.World.Width)-5)
			y := clamp(c.Y+math.Sin(angle)*dist, 5, float64(s.World.Height)-5)

			s.Food = append(s.Food, &FoodDot{
				ID:    s.nextFoodID,
				X:     x,
				Y:     y,
				Color: p.Color,
			})
			s.nextFoodID++
		}
	}
}
