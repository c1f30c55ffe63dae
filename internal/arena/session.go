package arena

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/skypop/backend/internal/config"
	"github.com/skypop/backend/internal/game"
	"github.com/skypop/backend/internal/protocol"
)

// Session hosts one player's game. A single goroutine (Run) serializes the
// three timelines the game depends on: the simulation ticker, the 1Hz
// countdown ticker, and commands arriving from the websocket read pump.
type Session struct {
	ID    string
	Inbox chan any

	conn Conn
	ctrl *game.SessionController
	cfg  *config.Config

	tick           int
	broadcastEvery int

	quit     chan struct{}
	stopOnce sync.Once

	// OnClose is called once after Run returns, with the session ID.
	OnClose func(id string)

	// Read-side snapshot for the sessions API, updated from the run loop.
	mu        sync.RWMutex
	infoName  string
	infoPhase game.Phase
	infoScore int
}

func NewSession(id string, conn Conn, cfg *config.Config) *Session {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	tracker := game.NewGestureTracker(
		cfg.PlayAreaWidth, cfg.PlayAreaHeight,
		cfg.PinchThreshold,
		time.Duration(cfg.ShootCooldownMs)*time.Millisecond,
		game.SystemClock,
	)
	field := game.NewBalloonField(cfg.PlayAreaWidth, cfg.PlayAreaHeight, rng)
	ctrl := game.NewSessionController(tracker, field, game.Rules{
		SessionSeconds:       cfg.SessionSeconds,
		SpawnIntervalStartMs: cfg.SpawnIntervalStartMs,
		SpawnIntervalStepMs:  cfg.SpawnIntervalStepMs,
		SpawnIntervalFloorMs: cfg.SpawnIntervalFloorMs,
	})

	broadcastEvery := protocol.SimTickHz / protocol.BroadcastHz
	if broadcastEvery <= 0 {
		broadcastEvery = 1
	}

	return &Session{
		ID:             id,
		Inbox:          make(chan any, 256),
		conn:           conn,
		ctrl:           ctrl,
		cfg:            cfg,
		broadcastEvery: broadcastEvery,
		quit:           make(chan struct{}),
		infoPhase:      game.PhaseIdle,
	}
}

// Run is the session's event loop. It returns when the client leaves or
// Stop is called, closing the connection on the way out.
func (s *Session) Run() {
	defer func() {
		s.Stop()
		_ = s.conn.Close()
		if s.OnClose != nil {
			s.OnClose(s.ID)
		}
	}()

	sim := time.NewTicker(time.Second / protocol.SimTickHz)
	defer sim.Stop()
	countdown := time.NewTicker(time.Second)
	defer countdown.Stop()

	s.sendWelcome()

	for {
		select {
		case <-s.quit:
			return
		case cmd := <-s.Inbox:
			if !s.handleCommand(cmd, countdown) {
				return
			}
		case <-sim.C:
			if s.ctrl.Phase() != game.PhasePlaying {
				continue
			}
			s.ctrl.Tick(1)
			s.tick++
			s.flushPopped()
			if s.tick%s.broadcastEvery == 0 {
				s.sendState()
			}
			s.syncInfo()
		case <-countdown.C:
			if s.ctrl.Phase() != game.PhasePlaying {
				continue
			}
			s.ctrl.CountdownTick()
			if s.ctrl.Phase() == game.PhaseEnded {
				s.sendEnded()
				s.sendState()
			}
			s.syncInfo()
		}
	}
}

// Stop terminates the run loop. Safe to call more than once.
func (s *Session) Stop() {
	s.stopOnce.Do(func() {
		close(s.quit)
	})
}

// Enqueue delivers a command to the run loop, reporting false if the
// session has already stopped.
func (s *Session) Enqueue(cmd any) bool {
	select {
	case s.Inbox <- cmd:
		return true
	case <-s.quit:
		return false
	}
}

// Info returns the listing view of this session.
func (s *Session) Info() SessionInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return SessionInfo{
		ID:    s.ID,
		Name:  s.infoName,
		Phase: string(s.infoPhase),
		Score: s.infoScore,
	}
}

func (s *Session) handleCommand(cmd any, countdown *time.Ticker) bool {
	switch c := cmd.(type) {
	case HelloCmd:
		s.mu.Lock()
		s.infoName = c.Name
		s.mu.Unlock()
	case StartCmd:
		if err := s.ctrl.Start(); err != nil {
			s.sendError(err.Error())
			return true
		}
		s.sendState()
	case ReadyCmd:
		if err := s.ctrl.BeginPlay(); err != nil {
			s.sendError(err.Error())
			return true
		}
		// Align the countdown with the moment play begins.
		countdown.Reset(time.Second)
		s.tick = 0
		s.sendState()
	case InitErrorCmd:
		if err := s.ctrl.Fail(c.Message); err != nil {
			s.sendError(err.Error())
			return true
		}
		log.Printf("[ARENA] Session %s failed to acquire resources: %s", s.ID, c.Message)
		s.sendError(c.Message)
	case FrameCmd:
		s.ctrl.HandleFrame(c.Landmarks)
	case PointerCmd:
		s.ctrl.HandlePointer(c.X, c.Y)
	case LeaveCmd:
		return false
	default:
		log.Printf("[ARENA] Session %s dropped unknown command %T", s.ID, cmd)
	}
	s.syncInfo()
	return true
}

func (s *Session) syncInfo() {
	s.mu.Lock()
	s.infoPhase = s.ctrl.Phase()
	s.infoScore = s.ctrl.Score()
	s.mu.Unlock()
}

func (s *Session) sendWelcome() {
	s.send(protocol.MsgWelcome, protocol.Welcome{
		SessionID: s.ID,
		TickHz:    protocol.SimTickHz,
		Width:     s.cfg.PlayAreaWidth,
		Height:    s.cfg.PlayAreaHeight,
		Seconds:   s.cfg.SessionSeconds,
	})
}

func (s *Session) sendState() {
	balloons := s.ctrl.Balloons()
	snapshot := protocol.State{
		Tick:             s.tick,
		Phase:            string(s.ctrl.Phase()),
		Score:            s.ctrl.Score(),
		SecondsRemaining: s.ctrl.SecondsRemaining(),
		Balloons:         make([]protocol.BalloonSnapshot, 0, len(balloons)),
	}
	if cursor := s.ctrl.Cursor(); cursor.Present {
		snapshot.Cursor = &protocol.CursorSnapshot{
			X:        cursor.Position.X,
			Y:        cursor.Position.Y,
			Pinching: cursor.IsPinching,
		}
	}
	for _, b := range balloons {
		snapshot.Balloons = append(snapshot.Balloons, protocol.BalloonSnapshot{
			ID:     b.ID,
			X:      b.Position.X,
			Y:      b.Position.Y,
			Radius: b.Radius,
			Color:  b.Color,
			Points: b.Points,
		})
	}
	s.send(protocol.MsgState, snapshot)
}

func (s *Session) flushPopped() {
	for _, e := range s.ctrl.DrainPopped() {
		s.send(protocol.MsgPopped, protocol.Popped{
			X:      e.Position.X,
			Y:      e.Position.Y,
			Color:  e.Color,
			Points: e.Points,
			Score:  e.Score,
		})
	}
}

func (s *Session) sendEnded() {
	final := s.ctrl.Final()
	if final == nil {
		return
	}
	s.send(protocol.MsgEnded, protocol.Ended{Score: final.Score, Message: final.Message})
}

func (s *Session) sendError(message string) {
	s.send(protocol.MsgError, protocol.ErrorMsg{Message: message})
}

func (s *Session) send(t string, payload any) {
	b, err := protocol.Encode(t, payload)
	if err != nil {
		log.Printf("[ARENA] Session %s encode %s: %v", s.ID, t, err)
		return
	}
	if err := s.conn.Send(b); err != nil {
		log.Printf("[ARENA] Session %s send %s: %v", s.ID, t, err)
	}
}
