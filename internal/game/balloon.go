package game

// Balloon tuning constants. Speeds are pixels per nominal 60Hz frame, to
// match the client-side canvas animation.
const (
	RadiusMin = 30.0
	RadiusMax = 50.0

	SpeedMin = 1.0
	SpeedMax = 3.0
	// Every 500 points of score adds one pixel/frame of rise speed.
	SpeedScoreDivisor = 500.0

	WobbleSpeedMin = 0.02
	WobbleSpeedMax = 0.04
	WobbleAmpMin   = 0.5
	WobbleAmpMax   = 1.5

	// HitMargin widens the hit circle beyond the visual radius to absorb
	// hand-tracking jitter.
	HitMargin = 20.0
)

// paletteEntry pairs a balloon color with its point value. Points grow with
// the palette index so rarer-looking hues read as more valuable.
type paletteEntry struct {
	Color  string
	Points int
}

var palette = [7]paletteEntry{
	{"#ff5252", 10},
	{"#ff9800", 15},
	{"#ffd600", 20},
	{"#66bb6a", 25},
	{"#29b6f6", 30},
	{"#7e57c2", 35},
	{"#ec407a", 40},
}

// Balloon is a single live balloon. Everything except Position and
// WobblePhase is drawn once at spawn and never mutated.
type Balloon struct {
	ID          uint64  `json:"id"`
	Position    Vec2    `json:"position"`
	Radius      float64 `json:"radius"`
	Color       string  `json:"color"`
	Points      int     `json:"points"`
	Speed       float64 `json:"-"`
	WobblePhase float64 `json:"-"`
	WobbleSpeed float64 `json:"-"`
	WobbleAmp   float64 `json:"-"`
}
