package protocol_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udisondev/blobarena/internal/protocol"
	"github.com/udisondev/blobarena/internal/sim"
)

func TestEncodeJoinEmptyRosterAndFood(t *testing.T) {
	snap := sim.JoinSnapshot{
		PlayerID: "abc",
		MapW:     1000,
		MapH:     1000,
		X:        12.345,
		Y:        6.7,
		Size:     10,
		Color:    sim.Color{R: 1, G: 2, B: 3},
	}
	got := protocol.EncodeJoin(snap)
	assert.True(t, strings.HasPrefix(got, "UUID:abc|MAP:1000,1000|POS:12.35,6.70|SIZE:10.00|COLOR:1,2,3|PLAYERS:|FOOD:"))
}

func TestEncodeDeltaWithRosterAndFood(t *testing.T) {
	snap := sim.DeltaSnapshot{
		X:    1,
		Y:    2,
		Size: 3,
		Roster: []sim.RosterEntry{
			{PlayerID: "p1", Name: "alice", X: 10, Y: 20, Size: 5, Color: sim.Color{R: 9, G: 8, B: 7}},
		},
		Food: []sim.FoodEntry{
			{ID: 1, X: 30, Y: 40, Color: sim.Color{R: 1, G: 1, B: 1}},
		},
	}
	got := protocol.EncodeDelta(snap)
	assert.Equal(t, "POS:1.00,2.00|SIZE:3.00|PLAYERS:p1,alice,10.00,20.00,5.00,9,8,7|FOOD:1,30.00,40.00,1,1,1", got)
}
