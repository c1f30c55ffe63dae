package protocol

import "encoding/json"

// Message types, client -> server.
const (
	MsgHello     = "hello"
	MsgStart     = "start"
	MsgReady     = "ready"
	MsgInitError = "init_error"
	MsgFrame     = "frame"
	MsgPointer   = "pointer"
)

// Message types, server -> client.
const (
	MsgWelcome = "welcome"
	MsgState   = "state"
	MsgPopped  = "popped"
	MsgEnded   = "ended"
	MsgError   = "error"
)

const (
	// SimTickHz is the authoritative simulation rate.
	SimTickHz = 60
	// BroadcastHz is how often full state snapshots go out; pop events are
	// sent immediately, outside this cadence.
	BroadcastHz = 20
)

// Envelope wraps every websocket message with a type tag and raw payload.
type Envelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p"`
}
