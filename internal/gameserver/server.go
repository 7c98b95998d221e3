// Package gameserver implements the Game Server process: a single-threaded
// cooperative UDP loop driving one internal/sim.State, periodically
// re-registering with a Discovery Service (§4.1, §5).
package gameserver

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/udisondev/blobarena/internal/config"
	"github.com/udisondev/blobarena/internal/protocol"
	"github.com/udisondev/blobarena/internal/sim"
)

const (
	idleSleep           = 10 * time.Millisecond
	discoveryReregister = 30 * time.Second
	pingSweepPeriod     = 5 * time.Second
	timeoutSweepPeriod  = 5 * time.Second
	foodSpawnPeriod     = 100 * time.Millisecond
	readBufSize         = 64 * 1024
)

// Server owns the world state and the socket driving it.
type Server struct {
	cfg           config.GameServer
	state         *sim.State
	discoveryAddr *net.UDPAddr

	conn *net.UDPConn
}

// NewServer builds a Game Server bound to cfg with a fresh world seeded from
// seed1/seed2. discoveryAddr may be nil to run with no Discovery Service
// (re-register attempts are then skipped).
func NewServer(cfg config.GameServer, discoveryAddr *net.UDPAddr, seed1, seed2 uint64) *Server {
	return &Server{
		cfg:           cfg,
		state:         sim.NewState(cfg, seed1, seed2),
		discoveryAddr: discoveryAddr,
	}
}

// Run opens a dual-stack UDP socket on cfg.Port and drives the world until
// ctx is cancelled (§5).
func (s *Server) Run(ctx context.Context) error {
	conn, err := net.ListenUDP("udp", &net.UDPAddr{Port: s.cfg.Port})
	if err != nil {
		return fmt.Errorf("binding game server socket on port %d: %w", s.cfg.Port, err)
	}
	s.conn = conn
	defer conn.Close()

	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	slog.Info("game server listening",
		"port", s.cfg.Port, "name", s.cfg.ServerName,
		"map", fmt.Sprintf("%dx%d", s.cfg.MapWidth, s.cfg.MapHeight),
		"maxPlayers", s.cfg.MaxPlayers, "maxFood", s.cfg.MaxFood)

	s.state.SpawnInitialFood()
	s.registerWithDiscovery()

	lastPingSweep := time.Now()
	lastTimeoutSweep := time.Now()
	lastFoodSpawn := time.Now()
	lastReregister := time.Now()

	buf := make([]byte, readBufSize)

	for {
		if ctx.Err() != nil {
			return nil
		}

		now := time.Now()
		if now.Sub(lastFoodSpawn) >= foodSpawnPeriod {
			s.state.SpawnFoodTick()
			lastFoodSpawn = now
		}
		if now.Sub(lastPingSweep) >= pingSweepPeriod {
			s.sendPings()
			lastPingSweep = now
		}
		if now.Sub(lastTimeoutSweep) >= timeoutSweepPeriod {
			s.sweepTimeouts()
			lastTimeoutSweep = now
		}
		if now.Sub(lastReregister) >= discoveryReregister {
			s.registerWithDiscovery()
			lastReregister = now
		}

		conn.SetReadDeadline(time.Now().Add(idleSleep))
		n, addr, err := conn.ReadFromUDP(buf)
		if err != nil {
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				continue
			}
			if ctx.Err() != nil {
				return nil
			}
			slog.Warn("game server read error", "error", err)
			continue
		}

		s.handle(addr, string(buf[:n]))
	}
}

func (s *Server) send(addr *net.UDPAddr, payload string) {
	if _, err := s.conn.WriteToUDP([]byte(payload), addr); err != nil {
		slog.Debug("send failed", "remote", addr, "error", err)
	}
}

func (s *Server) sendPings() {
	for _, p := range s.state.PlayersDueForPing() {
		s.send(p.LastSeen, protocol.Ping)
	}
}

func (s *Server) sweepTimeouts() {
	removed := s.state.SweepTimeouts()
	for _, p := range removed {
		slog.Info("player timed out", "id", p.ID, "name", p.Name)
	}
}

func (s *Server) registerWithDiscovery() {
	if s.discoveryAddr == nil || s.conn == nil {
		return
	}
	payload := protocol.EncodeRegister(
		s.cfg.ServerName, s.cfg.Port, len(s.state.Players), s.cfg.MaxPlayers,
		s.cfg.MapWidth, s.cfg.MapHeight, s.cfg.ServerCode != "", s.cfg.ServerCode,
	)
	s.send(s.discoveryAddr, payload)
}
