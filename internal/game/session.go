package game

import (
	"fmt"
	"math"
)

// Phase represents the lifecycle state of a game session.
type Phase string

const (
	PhaseIdle    Phase = "IDLE"
	PhaseLoading Phase = "LOADING"
	PhasePlaying Phase = "PLAYING"
	PhaseEnded   Phase = "ENDED"
	PhaseError   Phase = "ERROR"
)

// msPerFrame converts tick dt (nominal 60Hz frames) into milliseconds for
// the spawn-interval accumulator.
const msPerFrame = 1000.0 / 60.0

// Rules are the per-session tunables fixed at construction.
type Rules struct {
	SessionSeconds       int
	SpawnIntervalStartMs float64
	SpawnIntervalStepMs  float64
	SpawnIntervalFloorMs float64
}

// PoppedEvent tells the renderer where and what to animate when a balloon
// bursts.
type PoppedEvent struct {
	Position Vec2
	Color    string
	Points   int
	Score    int // running score after this pop
}

// FinalResult is the frozen outcome of an ended session.
type FinalResult struct {
	Score   int
	Message string
}

// SessionController owns score, countdown and the
// Idle -> Loading -> Playing -> Ended lifecycle, and routes input into the
// balloon field each tick. All methods must be called from a single
// goroutine; the arena run loop serializes the three timelines onto one.
type SessionController struct {
	phase   Phase
	errMsg  string
	score   int
	seconds int
	final   *FinalResult

	spawnIntervalMs float64
	spawnElapsedMs  float64

	tracker *GestureTracker
	field   *BalloonField
	rules   Rules

	popped []PoppedEvent
}

func NewSessionController(tracker *GestureTracker, field *BalloonField, rules Rules) *SessionController {
	return &SessionController{
		phase:   PhaseIdle,
		tracker: tracker,
		field:   field,
		rules:   rules,
	}
}

// Start moves the session into Loading while the client acquires its camera
// and detector. Valid from Idle, Ended and Error; a session that ended or
// failed restarts cleanly.
func (s *SessionController) Start() error {
	switch s.phase {
	case PhaseIdle, PhaseEnded, PhaseError:
		s.phase = PhaseLoading
		s.errMsg = ""
		return nil
	default:
		return fmt.Errorf("cannot start session from phase %s", s.phase)
	}
}

// BeginPlay completes a successful resource acquisition: Loading -> Playing
// with all per-session state reset.
func (s *SessionController) BeginPlay() error {
	if s.phase != PhaseLoading {
		return fmt.Errorf("cannot begin play from phase %s", s.phase)
	}
	s.phase = PhasePlaying
	s.score = 0
	s.seconds = s.rules.SessionSeconds
	s.spawnIntervalMs = s.rules.SpawnIntervalStartMs
	s.spawnElapsedMs = 0
	s.final = nil
	s.popped = nil
	s.field.Clear()
	s.tracker.Reset()
	return nil
}

// Fail records a resource acquisition failure: Loading -> Error with a
// message the player sees before retrying.
func (s *SessionController) Fail(message string) error {
	if s.phase != PhaseLoading {
		return fmt.Errorf("cannot fail session from phase %s", s.phase)
	}
	s.phase = PhaseError
	s.errMsg = message
	return nil
}

// HandleFrame routes a detector frame into the tracker. Frames arriving
// outside Playing (including after Ended) are no-ops.
func (s *SessionController) HandleFrame(sample []Landmark) {
	if s.phase != PhasePlaying {
		return
	}
	s.tracker.Update(sample)
}

// HandlePointer routes a click/tap into the tracker, same gating as frames.
func (s *SessionController) HandlePointer(x, y float64) {
	if s.phase != PhasePlaying {
		return
	}
	s.tracker.PressAt(x, y)
}

// Tick advances one simulation step: apply at most one buffered shoot event,
// advance the balloon field, and run the spawn-interval ramp. dtFrames is in
// nominal 60Hz frames.
func (s *SessionController) Tick(dtFrames float64) {
	if s.phase != PhasePlaying {
		return
	}

	cursor := s.tracker.Cursor()
	if s.tracker.ConsumeShoot() && cursor.Present {
		if b := s.field.AttemptHit(cursor.Position); b != nil {
			s.score += b.Points
			s.popped = append(s.popped, PoppedEvent{
				Position: b.Position,
				Color:    b.Color,
				Points:   b.Points,
				Score:    s.score,
			})
		}
	}

	s.field.Tick(dtFrames)

	s.spawnElapsedMs += dtFrames * msPerFrame
	for s.spawnElapsedMs >= s.spawnIntervalMs {
		s.spawnElapsedMs -= s.spawnIntervalMs
		s.field.Spawn(s.score)
		s.spawnIntervalMs = math.Max(s.rules.SpawnIntervalFloorMs, s.spawnIntervalMs-s.rules.SpawnIntervalStepMs)
	}
}

// CountdownTick is driven by the independent 1Hz timer. It decrements the
// remaining time while Playing and ends the session the moment it reaches
// zero; seconds never go negative.
func (s *SessionController) CountdownTick() {
	if s.phase != PhasePlaying {
		return
	}
	if s.seconds > 0 {
		s.seconds--
	}
	if s.seconds == 0 {
		s.phase = PhaseEnded
		s.final = &FinalResult{Score: s.score, Message: endMessage(s.score)}
	}
}

func (s *SessionController) Phase() Phase           { return s.phase }
func (s *SessionController) Score() int             { return s.score }
func (s *SessionController) SecondsRemaining() int  { return s.seconds }
func (s *SessionController) SpawnInterval() float64 { return s.spawnIntervalMs }
func (s *SessionController) ErrorMessage() string   { return s.errMsg }
func (s *SessionController) Final() *FinalResult    { return s.final }
func (s *SessionController) Cursor() CursorState    { return s.tracker.Cursor() }
func (s *SessionController) Balloons() []*Balloon   { return s.field.Balloons() }

// DrainPopped returns and clears the pop events accumulated since the last
// drain, for the renderer's burst animation.
func (s *SessionController) DrainPopped() []PoppedEvent {
	events := s.popped
	s.popped = nil
	return events
}

// endMessage buckets a final score into one of five fixed bands.
func endMessage(score int) string {
	switch {
	case score >= 1000:
		return "Legendary! You're a balloon-popping machine!"
	case score >= 500:
		return "Sharp shooter! That was a great round."
	case score >= 250:
		return "Nice work! Your aim is getting there."
	case score >= 100:
		return "Good warm-up. Keep those pinches coming!"
	default:
		return "Every balloon counts. Give it another go!"
	}
}
