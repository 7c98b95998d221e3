package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/blobarena/internal/config"
)

func newCollisionState(t *testing.T) *State {
	t.Helper()
	cfg := config.Default()
	cfg.MapWidth = 1000
	cfg.MapHeight = 1000
	cfg.Derive()
	cfg.GrowthRateFood = 1.0
	cfg.GrowthRatePlayer = 0.5
	s := NewState(cfg, 1, 2)
	return s
}

func TestSelfEatSweepMergesOverlappingCells(t *testing.T) {
	p := &Player{ID: "p1", Cells: []Cell{
		{X: 100, Y: 100, Size: 20},
		{X: 102, Y: 100, Size: 5},
	}}
	selfEatSweep(p)
	require.Len(t, p.Cells, 1)
	assert.InDelta(t, 20.6155, p.Cells[0].Size, 1e-3)
}

func TestSelfEatSweepRepeatsUntilStable(t *testing.T) {
	// Three mutually-overlapping cells of increasing size; a single pass
	// could leave one unmerged pair depending on iteration order, so the
	// sweep must repeat until no eligible pair remains (§4.1).
	p := &Player{ID: "p1", Cells: []Cell{
		{X: 100, Y: 100, Size: 30},
		{X: 101, Y: 100, Size: 10},
		{X: 100, Y: 101, Size: 3},
	}}
	selfEatSweep(p)
	assert.Len(t, p.Cells, 1)
}

func TestEatFoodGrowsCellAndRemovesDot(t *testing.T) {
	s := newCollisionState(t)
	p := &Player{ID: "p1", Cells: []Cell{{X: 100, Y: 100, Size: 10}}}
	s.Players["p1"] = p
	s.Food = []*FoodDot{
		{ID: 1, X: 101, Y: 100, Color: Color{}},
		{ID: 2, X: 900, Y: 900, Color: Color{}},
	}

	s.eatFood(p)
	assert.Len(t, s.Food, 1)
	assert.Equal(t, 2, s.Food[0].ID)
	assert.Greater(t, p.Cells[0].Size, 10.0)
}

func TestEatFoodGrowthCappedAtMaxPlayerSize(t *testing.T) {
	s := newCollisionState(t)
	s.Cfg.PlayerMaxSize = 10.5
	p := &Player{ID: "p1", Cells: []Cell{{X: 100, Y: 100, Size: 10}}}
	s.Players["p1"] = p
	s.Food = []*FoodDot{{ID: 1, X: 101, Y: 100}}

	s.eatFood(p)
	assert.LessOrEqual(t, p.Cells[0].Size, 10.5)
}

func TestEatPlayersRemovesVictimCellAndRespawns(t *testing.T) {
	s := newCollisionState(t)
	actor := &Player{ID: "actor", Cells: []Cell{{X: 100, Y: 100, Size: 20}}}
	victim := &Player{ID: "victim", Cells: []Cell{{X: 105, Y: 100, Size: 5}}}
	s.Players["actor"] = actor
	s.Players["victim"] = victim

	var eaten bool
	s.eatPlayers(actor, func(eater, v *Player) {
		eaten = true
		assert.Same(t, actor, eater)
		assert.Same(t, victim, v)
	})

	assert.True(t, eaten)
	assert.Greater(t, actor.Cells[0].Size, 20.0)
	// respawned: exactly one fresh cell at the configured start size
	require.Len(t, victim.Cells, 1)
	assert.InDelta(t, s.Cfg.PlayerStartSize, victim.Cells[0].Size, 1e-9)
}

func TestEatPlayersRequiresSizeMargin(t *testing.T) {
	s := newCollisionState(t)
	actor := &Player{ID: "actor", Cells: []Cell{{X: 100, Y: 100, Size: 10}}}
	victim := &Player{ID: "victim", Cells: []Cell{{X: 100, Y: 100, Size: 9.5}}}
	s.Players["actor"] = actor
	s.Players["victim"] = victim

	s.eatPlayers(actor, nil)
	assert.Len(t, victim.Cells, 1)
	assert.Equal(t, 9.5, victim.Cells[0].Size)
}

func TestResolveCollisionsUnknownActorIsNoop(t *testing.T) {
	s := newCollisionState(t)
	assert.NotPanics(t, func() {
		s.ResolveCollisions("nobody", nil)
	})
}
