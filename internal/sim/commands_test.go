package sim

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/blobarena/internal/config"
)

// Scenario 4: split then merge.
func TestSplitThenMerge(t *testing.T) {
	cfg := config.Default()
	cfg.MapWidth = 1000
	cfg.MapHeight = 1000
	cfg.Derive()
	s := NewState(cfg, 1, 2)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s.Now = func() time.Time { return base }

	p := &Player{
		ID:    "p1",
		Cells: []Cell{{X: 500, Y: 500, Size: 40}},
	}
	s.Cfg.PlayerMinSize = 10

	s.Split(p)
	require.Len(t, p.Cells, 2)
	for _, c := range p.Cells {
		assert.InDelta(t, 40/math.Sqrt2, c.Size, 1e-9)
	}
	// area conservation: combined size^2 equals original r^2
	sum := p.Cells[0].Size*p.Cells[0].Size + p.Cells[1].Size*p.Cells[1].Size
	assert.InDelta(t, 40*40, sum, 1e-6)

	s.Now = func() time.Time { return base.Add(150 * time.Millisecond) }
	s.Merge(p)
	require.Len(t, p.Cells, 1)
	assert.InDelta(t, 40, p.Cells[0].Size, 1e-9)
}

func TestSplitRejectedWhenNoCellEligible(t *testing.T) {
	cfg := config.Default()
	cfg.Derive()
	s := NewState(cfg, 1, 2)
	s.Cfg.PlayerMinSize = 10

	p := &Player{ID: "p1", Cells: []Cell{{X: 5, Y: 5, Size: 5}}}
	s.Split(p)
	assert.Len(t, p.Cells, 1)
}

func TestSplitEnforcesCooldown(t *testing.T) {
	cfg := config.Default()
	cfg.Derive()
	s := NewState(cfg, 1, 2)
	s.Cfg.PlayerMinSize = 10

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s.Now = func() time.Time { return base }
	p := &Player{ID: "p1", Cells: []Cell{{X: 500, Y: 500, Size: 40}}}

	s.Split(p)
	require.Len(t, p.Cells, 2)

	// Immediately split again: still within cooldown, no-op.
	s.Split(p)
	assert.Len(t, p.Cells, 2)
}

func TestMergeNoopBelowTwoCells(t *testing.T) {
	cfg := config.Default()
	cfg.Derive()
	s := NewState(cfg, 1, 2)

	p := &Player{ID: "p1", Cells: []Cell{{X: 5, Y: 5, Size: 5}}}
	s.Merge(p)
	assert.Len(t, p.Cells, 1)
}

func TestParseDirections(t *testing.T) {
	dx, dy, moved := ParseDirections("UP,RIGHT")
	assert.True(t, moved)
	assert.Equal(t, 1.0, dx)
	assert.Equal(t, 1.0, dy)

	dx, dy, moved = ParseDirections("ACK")
	assert.False(t, moved)
	assert.Equal(t, 0.0, dx)
	assert.Equal(t, 0.0, dy)

	dx, dy, moved = ParseDirections("DOWN,LEFT")
	assert.True(t, moved)
	assert.Equal(t, -1.0, dx)
	assert.Equal(t, -1.0, dy)
}

func TestMoveNormalizesDiagonal(t *testing.T) {
	cfg := config.Default()
	cfg.MapWidth = 100
	cfg.MapHeight = 100
	cfg.Derive()
	s := NewState(cfg, 1, 2)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s.Now = func() time.Time { return base }

	p := &Player{ID: "p1", Cells: []Cell{{X: 50, Y: 50, Size: 5}}}
	s.Move(p, 1, 1)

	want := s.Cfg.MoveSpeedBase * (s.Cfg.PlayerStartSize / 5) / math.Sqrt2
	assert.InDelta(t, 50+want, p.Cells[0].X, 1e-6)
	assert.InDelta(t, 50+want, p.Cells[0].Y, 1e-6)
	assert.Equal(t, base, p.LastMovement)
}

func TestMoveClampsToWorldBounds(t *testing.T) {
	cfg := config.Default()
	cfg.MapWidth = 100
	cfg.MapHeight = 100
	cfg.Derive()
	s := NewState(cfg, 1, 2)

	p := &Player{ID: "p1", Cells: []Cell{{X: 99, Y: 99, Size: 5}}}
	s.Move(p, 1, 1)
	assert.LessOrEqual(t, p.Cells[0].X, 95.0)
	assert.LessOrEqual(t, p.Cells[0].Y, 95.0)
}

func TestClosestPair(t *testing.T) {
	cells := []Cell{{X: 0, Y: 0}, {X: 100, Y: 100}, {X: 1, Y: 1}}
	i, j := closestPair(cells)
	assert.ElementsMatch(t, []int{0, 2}, []int{i, j})
}
