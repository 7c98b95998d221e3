package gameserver

import (
	"log/slog"
	"net"

	"github.com/udisondev/blobarena/internal/protocol"
	"github.com/udisondev/blobarena/internal/sim"
)

// handle dispatches one inbound datagram: admission or per-player session
// (§4.1).
func (s *Server) handle(addr *net.UDPAddr, payload string) {
	if protocol.IsAdmission(payload) {
		s.handleAdmission(addr, payload)
		return
	}
	s.handleSession(addr, payload)
}

func (s *Server) handleAdmission(addr *net.UDPAddr, payload string) {
	req, err := protocol.DecodeAdmission(payload)
	if err != nil {
		slog.Debug("dropping malformed admission datagram", "remote", addr, "error", err)
		return
	}

	player, result := s.state.Admit(addr, req.Name, req.Code, req.HasCode)
	switch result {
	case sim.AdmitCodeRequired:
		s.send(addr, protocol.ErrCodeRequired)
		return
	case sim.AdmitWrongCode:
		s.send(addr, protocol.ErrWrongCode)
		return
	case sim.AdmitServerFull:
		s.send(addr, protocol.ErrServerFull)
		return
	}

	slog.Info("player admitted", "id", player.ID, "name", player.Name, "remote", addr)
	s.registerWithDiscovery()

	snap := s.state.BuildJoinSnapshot(player)
	s.send(addr, protocol.EncodeJoin(snap))
}

func (s *Server) handleSession(addr *net.UDPAddr, payload string) {
	req, err := protocol.DecodeSession(payload)
	if err != nil {
		slog.Debug("dropping malformed session datagram", "remote", addr, "error", err)
		return
	}

	player, ok := s.state.Players[req.PlayerID]
	if !ok {
		return
	}

	s.state.Touch(player, addr)

	// ACK/PONG/SPLIT/MERGE each do their own work (or none) and stop there:
	// no collision resolution, no reply. Only a direction command (including
	// one the parser doesn't recognize) falls through to eating and a delta
	// reply, matching the original dispatcher's unconditional fallthrough.
	switch req.Command {
	case protocol.CommandAck, protocol.CommandPong:
		return
	case protocol.CommandSplit:
		s.state.Split(player)
		return
	case protocol.CommandMerge:
		s.state.Merge(player)
		return
	}

	if dx, dy, moved := sim.ParseDirections(req.Command); moved {
		s.state.Move(player, dx, dy)
	}

	s.state.ResolveCollisions(player.ID, func(eater, victim *sim.Player) {
		slog.Info("player eaten", "eater", eater.ID, "victim", victim.ID)
	})

	snap := s.state.BuildDeltaSnapshot(player)
	s.send(addr, protocol.EncodeDelta(snap))
}
