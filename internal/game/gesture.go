package game

import (
	"math"
	"time"
)

// Landmark is one normalized hand keypoint from the client-side detector.
// Coordinates are in [0,1] detector space, x growing rightward in the raw
// (unmirrored) camera image.
type Landmark struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Landmark indices, by convention of the MediaPipe-style hand detector.
const (
	landmarkThumbTip = 4
	landmarkIndexTip = 8
	minLandmarks     = 9 // need at least indices 0..8
)

// CursorState is the per-frame view of the player's aim, derived entirely
// from the latest landmark sample. It carries no state across a missing-hand
// frame.
type CursorState struct {
	Position      Vec2
	Present       bool
	PinchDistance float64
	IsPinching    bool
	WasPinching   bool
}

// GestureTracker turns noisy per-frame landmark samples into a cursor
// position and debounced discrete shoot events. A shoot fires on the rising
// edge of the pinch, gated by a refractory cooldown; events arriving inside
// the cooldown are dropped, not queued.
type GestureTracker struct {
	frameW, frameH float64
	pinchThreshold float64
	cooldown       time.Duration
	clock          Clock

	cursor   CursorState
	pending  bool
	lastShot time.Time
	hasShot  bool
}

func NewGestureTracker(frameW, frameH, pinchThreshold float64, cooldown time.Duration, clock Clock) *GestureTracker {
	if clock == nil {
		clock = SystemClock
	}
	return &GestureTracker{
		frameW:         frameW,
		frameH:         frameH,
		pinchThreshold: pinchThreshold,
		cooldown:       cooldown,
		clock:          clock,
	}
}

// Update consumes one landmark sample (nil or short = no hand detected) and
// returns the resulting cursor state. Malformed samples degrade to "no hand";
// Update never fails.
func (t *GestureTracker) Update(sample []Landmark) CursorState {
	if !validSample(sample) {
		t.cursor = CursorState{}
		return t.cursor
	}

	tip := sample[landmarkIndexTip]
	thumb := sample[landmarkThumbTip]

	// Mirror x so the cursor tracks the hand naturally in front of a
	// front-facing camera.
	pos := NewVec2(t.frameW-tip.X*t.frameW, tip.Y*t.frameH)
	dist := math.Hypot(tip.X-thumb.X, tip.Y-thumb.Y)

	was := t.cursor.IsPinching
	is := dist < t.pinchThreshold
	t.cursor = CursorState{
		Position:      pos,
		Present:       true,
		PinchDistance: dist,
		IsPinching:    is,
		WasPinching:   was,
	}

	if is && !was {
		t.tryFire()
	}
	return t.cursor
}

// PressAt handles the click/tap fallback: the pointer location becomes the
// cursor (already in screen coordinates, no mirroring) and a shoot is
// attempted through the same cooldown gate as a pinch.
func (t *GestureTracker) PressAt(x, y float64) CursorState {
	t.cursor = CursorState{
		Position: NewVec2(x, y),
		Present:  true,
	}
	t.tryFire()
	return t.cursor
}

// ConsumeShoot returns true at most once per fired shoot event.
func (t *GestureTracker) ConsumeShoot() bool {
	fired := t.pending
	t.pending = false
	return fired
}

// Cursor returns the state produced by the most recent Update or PressAt.
func (t *GestureTracker) Cursor() CursorState {
	return t.cursor
}

// Reset clears cursor and shoot state for a fresh session.
func (t *GestureTracker) Reset() {
	t.cursor = CursorState{}
	t.pending = false
	t.hasShot = false
}

func (t *GestureTracker) tryFire() {
	now := t.clock.Now()
	if t.hasShot && now.Sub(t.lastShot) < t.cooldown {
		return
	}
	t.lastShot = now
	t.hasShot = true
	t.pending = true
}

func validSample(sample []Landmark) bool {
	if len(sample) < minLandmarks {
		return false
	}
	for _, i := range []int{landmarkThumbTip, landmarkIndexTip} {
		if math.IsNaN(sample[i].X) || math.IsNaN(sample[i].Y) ||
			math.IsInf(sample[i].X, 0) || math.IsInf(sample[i].Y, 0) {
			return false
		}
	}
	return true
}
