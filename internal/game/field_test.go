package game

import (
	"math"
	"math/rand"
	"testing"
)

func newTestField() *BalloonField {
	return NewBalloonField(1280, 720, rand.New(rand.NewSource(1)))
}

func TestSpawnWithinBounds(t *testing.T) {
	f := newTestField()
	validPoints := map[int]bool{}
	for _, e := range palette {
		validPoints[e.Points] = true
	}

	for i := 0; i < 500; i++ {
		b := f.Spawn(0)
		if b.Radius < RadiusMin || b.Radius > RadiusMax {
			t.Fatalf("radius %f outside [%f,%f]", b.Radius, RadiusMin, RadiusMax)
		}
		if b.Position.X < b.Radius || b.Position.X > 1280-b.Radius {
			t.Fatalf("x=%f not fully inside play area for radius %f", b.Position.X, b.Radius)
		}
		if b.Position.Y != 720+b.Radius {
			t.Fatalf("y=%f, want just below visible area (%f)", b.Position.Y, 720+b.Radius)
		}
		if !validPoints[b.Points] {
			t.Fatalf("points %d not in palette", b.Points)
		}
		if b.WobbleSpeed < WobbleSpeedMin || b.WobbleSpeed > WobbleSpeedMax {
			t.Fatalf("wobble speed %f outside range", b.WobbleSpeed)
		}
		if b.WobbleAmp < WobbleAmpMin || b.WobbleAmp > WobbleAmpMax {
			t.Fatalf("wobble amplitude %f outside range", b.WobbleAmp)
		}
		if b.WobblePhase < 0 || b.WobblePhase >= 2*math.Pi {
			t.Fatalf("wobble phase %f outside [0,2pi)", b.WobblePhase)
		}
	}
}

func TestSpawnSpeedScalesWithScore(t *testing.T) {
	f := newTestField()
	for i := 0; i < 200; i++ {
		if s := f.Spawn(0).Speed; s < 1 || s > 3 {
			t.Fatalf("score 0: speed %f outside [1,3]", s)
		}
	}
	for i := 0; i < 200; i++ {
		if s := f.Spawn(1000).Speed; s < 3 || s > 5 {
			t.Fatalf("score 1000: speed %f outside [3,5]", s)
		}
	}
}

func TestSpawnIDsAreUnique(t *testing.T) {
	f := newTestField()
	seen := map[uint64]bool{}
	for i := 0; i < 100; i++ {
		b := f.Spawn(0)
		if seen[b.ID] {
			t.Fatalf("duplicate balloon id %d", b.ID)
		}
		seen[b.ID] = true
	}
}

func TestTickCullsAboveTopBoundary(t *testing.T) {
	f := newTestField()
	gone := &Balloon{ID: 1, Position: NewVec2(100, -41), Radius: 40, Speed: 0.5}
	kept := &Balloon{ID: 2, Position: NewVec2(200, -39), Radius: 40, Speed: 0.5}
	f.balloons = []*Balloon{gone, kept}

	f.Tick(1)

	if f.Len() != 1 {
		t.Fatalf("len=%d after tick, want 1", f.Len())
	}
	if f.balloons[0].ID != kept.ID {
		t.Fatalf("wrong balloon culled: kept id %d", f.balloons[0].ID)
	}
}

func TestTickAdvancesMotion(t *testing.T) {
	f := newTestField()
	b := &Balloon{
		ID:          1,
		Position:    NewVec2(400, 300),
		Radius:      40,
		Speed:       2,
		WobblePhase: math.Pi / 2,
		WobbleSpeed: 0.03,
		WobbleAmp:   1,
	}
	f.balloons = []*Balloon{b}

	f.Tick(1)

	if math.Abs(b.Position.Y-298) > 1e-9 {
		t.Errorf("y=%f after tick, want 298", b.Position.Y)
	}
	// sin(pi/2) * amp 1 = 1 pixel of drift.
	if math.Abs(b.Position.X-401) > 1e-9 {
		t.Errorf("x=%f after tick, want 401", b.Position.X)
	}
	if math.Abs(b.WobblePhase-(math.Pi/2+0.03)) > 1e-9 {
		t.Errorf("phase=%f after tick, want %f", b.WobblePhase, math.Pi/2+0.03)
	}
}

func TestTickHasNoScoreSideEffects(t *testing.T) {
	f := newTestField()
	f.Spawn(0)
	before := f.Len()
	f.Tick(1)
	if f.Len() != before {
		t.Fatalf("tick changed balloon count with nothing near the top")
	}
}

func TestAttemptHitMarginBoundary(t *testing.T) {
	place := func(f *BalloonField) *Balloon {
		b := &Balloon{ID: 1, Position: NewVec2(400, 300), Radius: 40}
		f.balloons = []*Balloon{b}
		return b
	}

	f := newTestField()
	b := place(f)
	// radius + 19 away: inside the tolerance margin.
	if got := f.AttemptHit(NewVec2(400+b.Radius+19, 300)); got == nil {
		t.Fatalf("hit at radius+19 should pop")
	}
	if f.Len() != 0 {
		t.Fatalf("popped balloon must be removed")
	}

	f = newTestField()
	place(f)
	// radius + 21 away: outside.
	if got := f.AttemptHit(NewVec2(400+40+21, 300)); got != nil {
		t.Fatalf("hit at radius+21 should miss, got balloon %d", got.ID)
	}
	if f.Len() != 1 {
		t.Fatalf("miss must not remove anything")
	}
}

func TestAttemptHitPopsNearestOnly(t *testing.T) {
	f := newTestField()
	near := &Balloon{ID: 1, Position: NewVec2(400, 300), Radius: 40}
	far := &Balloon{ID: 2, Position: NewVec2(430, 300), Radius: 40}
	f.balloons = []*Balloon{near, far}

	got := f.AttemptHit(NewVec2(405, 300))
	if got == nil || got.ID != near.ID {
		t.Fatalf("expected nearest balloon 1, got %+v", got)
	}
	if f.Len() != 1 {
		t.Fatalf("exactly one balloon must be removed per hit, len=%d", f.Len())
	}
	if f.balloons[0].ID != far.ID {
		t.Fatalf("surviving balloon should be 2, got %d", f.balloons[0].ID)
	}
}

func TestAttemptHitTieGoesToMostRecent(t *testing.T) {
	f := newTestField()
	older := &Balloon{ID: 1, Position: NewVec2(400, 300), Radius: 40}
	newer := &Balloon{ID: 2, Position: NewVec2(400, 300), Radius: 40}
	f.balloons = []*Balloon{older, newer}

	got := f.AttemptHit(NewVec2(400, 300))
	if got == nil || got.ID != newer.ID {
		t.Fatalf("exact tie should pop the most recently spawned, got %+v", got)
	}
}

func TestAttemptHitOnEmptyField(t *testing.T) {
	f := newTestField()
	if got := f.AttemptHit(NewVec2(100, 100)); got != nil {
		t.Fatalf("empty field should miss, got %+v", got)
	}
}

func TestClear(t *testing.T) {
	f := newTestField()
	f.Spawn(0)
	f.Spawn(0)
	f.Clear()
	if f.Len() != 0 {
		t.Fatalf("len=%d after clear, want 0", f.Len())
	}
}
