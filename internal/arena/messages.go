package arena

import "github.com/skypop/backend/internal/game"

// Conn is the transport a session talks back through. The ws package
// implements it; tests use in-memory fakes.
type Conn interface {
	Send([]byte) error
	Close() error
}

// Commands delivered to a session's inbox. Each is handled on the session
// goroutine, so core state never sees concurrent mutation.

// HelloCmd carries the client's introduction.
type HelloCmd struct {
	Name string
}

// StartCmd asks for a new round: Idle/Ended/Error -> Loading.
type StartCmd struct{}

// ReadyCmd reports the client acquired camera+detector: Loading -> Playing.
type ReadyCmd struct{}

// InitErrorCmd reports acquisition failure: Loading -> Error.
type InitErrorCmd struct {
	Message string
}

// FrameCmd delivers one detector frame. Nil landmarks = no hand.
type FrameCmd struct {
	Landmarks []game.Landmark
}

// PointerCmd delivers a click/tap in canvas coordinates.
type PointerCmd struct {
	X, Y float64
}

// LeaveCmd tears the session down after the socket closes.
type LeaveCmd struct{}
