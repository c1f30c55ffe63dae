package game

import (
	"math"
	"math/rand"
)

// BalloonField owns the set of live balloons: spawning, per-tick motion,
// culling and hit testing. It has no notion of time or score beyond the
// score passed into Spawn; scheduling lives in SessionController.
type BalloonField struct {
	width, height float64
	rng           *rand.Rand
	nextID        uint64
	balloons      []*Balloon
}

func NewBalloonField(width, height float64, rng *rand.Rand) *BalloonField {
	return &BalloonField{width: width, height: height, rng: rng}
}

// Spawn creates one balloon at a random horizontal position fully inside the
// play area, just below the visible bottom edge. Rise speed scales linearly
// with the current score.
func (f *BalloonField) Spawn(score int) *Balloon {
	radius := f.uniform(RadiusMin, RadiusMax)
	entry := palette[f.rng.Intn(len(palette))]

	f.nextID++
	b := &Balloon{
		ID:          f.nextID,
		Position:    NewVec2(f.uniform(radius, f.width-radius), f.height+radius),
		Radius:      radius,
		Color:       entry.Color,
		Points:      entry.Points,
		Speed:       f.uniform(SpeedMin, SpeedMax) + float64(score)/SpeedScoreDivisor,
		WobblePhase: f.uniform(0, 2*math.Pi),
		WobbleSpeed: f.uniform(WobbleSpeedMin, WobbleSpeedMax),
		WobbleAmp:   f.uniform(WobbleAmpMin, WobbleAmpMax),
	}
	f.balloons = append(f.balloons, b)
	return b
}

// Tick advances every balloon by dt frames (1.0 = one nominal 60Hz frame):
// vertical rise by speed, horizontal sinusoidal drift by the wobble, then
// culls balloons that have exited above the top edge.
func (f *BalloonField) Tick(dtFrames float64) {
	kept := f.balloons[:0]
	for _, b := range f.balloons {
		b.Position.Y -= b.Speed * dtFrames
		b.Position.X += math.Sin(b.WobblePhase) * b.WobbleAmp * dtFrames
		b.WobblePhase += b.WobbleSpeed * dtFrames
		if b.Position.Y >= -b.Radius {
			kept = append(kept, b)
		}
	}
	// Drop lingering tail pointers so culled balloons can be collected.
	for i := len(kept); i < len(f.balloons); i++ {
		f.balloons[i] = nil
	}
	f.balloons = kept
}

// AttemptHit removes and returns the balloon nearest to point among those
// whose center lies within radius+HitMargin of it. Exact-distance ties go to
// the most recently spawned balloon. Returns nil when nothing is in range.
func (f *BalloonField) AttemptHit(point Vec2) *Balloon {
	best := -1
	var bestDist float64
	for i, b := range f.balloons {
		d := b.Position.DistanceTo(point)
		if d > b.Radius+HitMargin {
			continue
		}
		if best == -1 || d <= bestDist {
			best = i
			bestDist = d
		}
	}
	if best == -1 {
		return nil
	}
	hit := f.balloons[best]
	f.balloons = append(f.balloons[:best], f.balloons[best+1:]...)
	return hit
}

// Balloons exposes the live set for snapshotting. Callers must not retain
// the slice across ticks.
func (f *BalloonField) Balloons() []*Balloon {
	return f.balloons
}

func (f *BalloonField) Len() int {
	return len(f.balloons)
}

// Clear removes all live balloons, for session start.
func (f *BalloonField) Clear() {
	f.balloons = nil
}

func (f *BalloonField) uniform(min, max float64) float64 {
	return min + f.rng.Float64()*(max-min)
}
