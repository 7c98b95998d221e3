package sim

import (
	"net"
)

// AdmitResult is what Admit decided to do.
type AdmitResult int

const (
	// AdmitOK means player is the (possibly reused) Player for this session;
	// a join snapshot should be sent.
	AdmitOK AdmitResult = iota
	// AdmitCodeRequired means the server has a code configured and none was
	// supplied; reply "ERROR:CODE_REQUIRED".
	AdmitCodeRequired
	// AdmitWrongCode means a code was supplied but didn't match; reply
	// "ERROR:WRONG_CODE".
	AdmitWrongCode
	// AdmitServerFull means the roster is already at MaxPlayers; reply
	// "ERROR:SERVER_FULL".
	AdmitServerFull
)

// Admit processes an admission request (§4.1): name is the caller-supplied
// display string, code is the value following "CODE:" if the command took
// that form (empty string if the command was plain "INIT"), addr is the
// datagram's source endpoint.
//
// On AdmitOK, the returned *Player is either a freshly minted session or a
// pre-existing one reused because its LastSeen matches addr (idempotent
// re-INIT, §8 "Admission idempotence"). Returns (nil, AdmitResult) for every
// rejection.
func (s *State) Admit(addr *net.UDPAddr, name, code string, hadCodeCommand bool) (*Player, AdmitResult) {
	if s.Cfg.ServerCode != "" {
		if !hadCodeCommand {
			return nil, AdmitCodeRequired
		}
		if code != s.Cfg.ServerCode {
			return nil, AdmitWrongCode
		}
	}

	if existing := s.PlayerByEndpoint(addr); existing != nil {
		return existing, AdmitOK
	}

	if len(s.Players) >= s.Cfg.MaxPlayers {
		return nil, AdmitServerFull
	}

	player := s.newPlayer(addr, name)
	s.Players[player.ID] = player
	return player, AdmitOK
}

// newPlayer mints a fresh session: new identifier, one cell placed uniformly
// at random away from the edges, a palette color, and all timestamps set to
// now (§4.1 admission step 3).
func (s *State) newPlayer(addr *net.UDPAddr, name string) *Player {
	now := s.Now()
	x, y := s.World.RandomPointAwayFromEdge(s.rng, s.Cfg.PlayerStartSize)

	p := &Player{
		ID:   s.NewID(),
		Name: name,
		Cells: []Cell{
			{X: x, Y: y, Size: s.Cfg.PlayerStartSize},
		},
		Color:            RandomPlayerColor(s.rng.color()),
		LastSeen:         addr,
		LastPingResponse: now,
		LastMovement:     now,
		LastPingSent:     now,
		LastSplit:        now,
		LastMerge:        now,
	}
	return p
}

// Touch refreshes a player's liveness bookkeeping from any inbound datagram
// (§3 last_seen / last_ping_response, §4.1 "refresh last_seen (and the
// last_ping_response timestamp -- any inbound datagram proves liveness)").
func (s *State) Touch(p *Player, addr *net.UDPAddr) {
	p.LastSeen = addr
	p.LastPingResponse = s.Now()
}
