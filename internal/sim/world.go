package sim

// World is the rectangular bounds [0, Width] x [0, Height] every cell and
// food centroid must stay within, offset by its own radius (§3).
type World struct {
	Width  int
	Height int
}

// RandomPointAwayFromEdge returns a uniformly random point at least margin
// units from every edge. Used to place a new player's start cell (§4.1) and
// newly spawned food (§4.1 Food spawn job).
func (w World) RandomPointAwayFromEdge(r randFloater, margin float64) (x, y float64) {
	lo, hiX := margin, float64(w.Width)-margin
	_, hiY := margin, float64(w.Height)-margin
	if hiX < lo {
		hiX = lo
	}
	if hiY < lo {
		hiY = lo
	}
	return r.Float64Range(lo, hiX), r.Float64Range(lo, hiY)
}

// randFloater is the minimal randomness surface sim needs, satisfied by
// *rngSource in rng.go. Kept as an interface so tests can inject a deterministic
// source (§8 "Movement determinism").
type randFloater interface {
	Float64Range(lo, hi float64) float64
}
