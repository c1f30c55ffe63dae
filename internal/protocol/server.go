package protocol

// Outbound payloads to the browser client.

// Welcome is sent once after connect.
type Welcome struct {
	SessionID string  `json:"sessionId"`
	TickHz    int     `json:"tickHz"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Seconds   int     `json:"seconds"`
}

// State is the periodic render snapshot.
type State struct {
	Tick             int               `json:"tick"`
	Phase            string            `json:"phase"`
	Score            int               `json:"score"`
	SecondsRemaining int               `json:"secondsRemaining"`
	Cursor           *CursorSnapshot   `json:"cursor,omitempty"`
	Balloons         []BalloonSnapshot `json:"balloons"`
}

type CursorSnapshot struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Pinching bool    `json:"pinching"`
}

type BalloonSnapshot struct {
	ID     uint64  `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"r"`
	Color  string  `json:"color"`
	Points int     `json:"points"`
}

// Popped is emitted once per burst balloon so the renderer can run its
// particle effect at the right spot.
type Popped struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Color  string  `json:"color"`
	Points int     `json:"points"`
	Score  int     `json:"score"`
}

// Ended carries the frozen final score and its message band.
type Ended struct {
	Score   int    `json:"score"`
	Message string `json:"message"`
}

// ErrorMsg surfaces a session error (resource acquisition failure or a
// rejected command) to the player.
type ErrorMsg struct {
	Message string `json:"message"`
}
