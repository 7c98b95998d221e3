package discovery_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/udisondev/blobarena/internal/discovery"
	"github.com/udisondev/blobarena/internal/protocol"
)

func TestRegisterThenQuery(t *testing.T) {
	dir := discovery.NewDirectory()
	key := discovery.Key("203.0.113.1", 8888)
	dir.Register(key, "203.0.113.1", protocol.RegisterRequest{
		Name: "Arena", Port: 8888, Current: 0, Max: 50, Width: 1000, Height: 1000,
	})

	list := dir.List()
	assert.Len(t, list, 1)
	assert.Equal(t, "Arena", list[0].Name)
	assert.Equal(t, "203.0.113.1", list[0].Address)
}

func TestRegisterReplacesExistingKey(t *testing.T) {
	dir := discovery.NewDirectory()
	key := discovery.Key("203.0.113.1", 8888)
	dir.Register(key, "203.0.113.1", protocol.RegisterRequest{Name: "Arena", Port: 8888, Current: 0, Max: 50})
	dir.Register(key, "203.0.113.1", protocol.RegisterRequest{Name: "Arena", Port: 8888, Current: 5, Max: 50})

	list := dir.List()
	assert.Len(t, list, 1)
	assert.Equal(t, 5, list[0].Current)
}

func TestHeartbeatUnknownKeyIsNoop(t *testing.T) {
	dir := discovery.NewDirectory()
	dir.Heartbeat("nobody:1234")
	assert.Empty(t, dir.List())
}

func TestSweepTimeoutsDropsStaleEntries(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	dir := discovery.NewDirectory()
	dir.Now = func() time.Time { return now }

	key := discovery.Key("203.0.113.1", 8888)
	dir.Register(key, "203.0.113.1", protocol.RegisterRequest{Name: "Arena", Port: 8888})

	now = now.Add(61 * time.Second)
	dir.SweepTimeouts(60 * time.Second)
	assert.Empty(t, dir.List())
}

func TestHeartbeatRefreshesSurvival(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	dir := discovery.NewDirectory()
	dir.Now = func() time.Time { return now }

	key := discovery.Key("203.0.113.1", 8888)
	dir.Register(key, "203.0.113.1", protocol.RegisterRequest{Name: "Arena", Port: 8888})

	now = now.Add(59 * time.Second)
	dir.Heartbeat(key)

	now = now.Add(59 * time.Second)
	dir.SweepTimeouts(60 * time.Second)
	assert.Len(t, dir.List(), 1)
}
