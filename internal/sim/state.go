// Package sim holds the Game Server's authoritative world state and the pure
// mutation logic that drives it: admission, movement, split/merge, collision
// and eating, timeout-to-food conversion, and food spawning. Nothing in this
// package is safe for concurrent use — §5 dedicates exactly one goroutine
// (the Game Server's cooperative loop) to touching it.
package sim

import (
	"net"
	"time"

	"github.com/google/uuid"

	"github.com/udisondev/blobarena/internal/config"
)

// State is the complete authoritative world owned by one Game Server process.
type State struct {
	Cfg   config.GameServer
	World World

	Players map[string]*Player
	Food    []*FoodDot

	nextFoodID int
	rng        *rngSource

	// NewID mints a player identifier. Defaults to uuid.NewString; tests may
	// override it for deterministic scenarios.
	NewID func() string

	// Now returns the current monotonic instant. Defaults to time.Now; tests
	// may override it to control timestamps deterministically.
	Now func() time.Time
}

// NewState builds a fresh world from cfg, seeded from seed1/seed2 (pass two
// fixed values for reproducible test runs, or values derived from the OS
// entropy source in production).
func NewState(cfg config.GameServer, seed1, seed2 uint64) *State {
	return &State{
		Cfg:     cfg,
		World:   World{Width: cfg.MapWidth, Height: cfg.MapHeight},
		Players: make(map[string]*Player),
		Food:    nil,
		rng:     newRNG(seed1, seed2),
		NewID:   uuid.NewString,
		Now:     time.Now,
	}
}

// PlayerByEndpoint returns the live Player whose LastSeen matches addr, or
// nil if none does (§4.1 admission idempotence).
func (s *State) PlayerByEndpoint(addr *net.UDPAddr) *Player {
	for _, p := range s.Players {
		if p.SameEndpoint(addr) {
			return p
		}
	}
	return nil
}
