package sim

// FoodDot is a collectible dot (§3). IDs are minted from a monotonically
// increasing counter owned by State and are never reused.
type FoodDot struct {
	ID    int
	X, Y  float64
	Color Color
}
