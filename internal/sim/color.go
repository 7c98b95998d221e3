package sim

import "math/rand/v2"

// Color is an RGB triple, each channel 0-255, rendered as decimal in the wire
// protocol (§6).
type Color struct {
	R, G, B uint8
}

// Palette is the fixed 12-hue player color table (§3, §9: "a plain table, not
// polymorphism"). A player's color is drawn from here at creation and on
// every respawn.
var Palette = [12]Color{
	{255, 100, 100},
	{100, 255, 100},
	{100, 100, 255},
	{255, 255, 100},
	{255, 100, 255},
	{100, 255, 255},
	{255, 150, 100},
	{150, 100, 255},
	{255, 100, 150},
	{150, 255, 100},
	{100, 150, 255},
	{255, 200, 100},
}

// RandomPlayerColor draws a color uniformly from Palette.
func RandomPlayerColor(r *rand.Rand) Color {
	return Palette[r.IntN(len(Palette))]
}

// RandomFoodColor draws a bright color, each channel uniform in [100,255] (§4.1).
func RandomFoodColor(r *rand.Rand) Color {
	return Color{
		R: uint8(100 + r.IntN(156)),
		G: uint8(100 + r.IntN(156)),
		B: uint8(100 + r.IntN(156)),
	}
}
