package sim

// Respawn replaces a player's cells with a single fresh one at a new random
// position and re-rolls its color (§3 Lifecycle, §4.1 Player-on-player eat).
// It also refreshes liveness timestamps so a victim respawned after being
// eaten isn't immediately reaped by the next timeout sweep.
func (s *State) Respawn(p *Player) {
	x, y := s.World.RandomPointAwayFromEdge(s.rng, s.Cfg.PlayerStartSize)
	p.Cells = []Cell{{X: x, Y: y, Size: s.Cfg.PlayerStartSize}}
	p.Color = RandomPlayerColor(s.rng.color())

	now := s.Now()
	p.LastMovement = now
	p.LastPingResponse = now
}
