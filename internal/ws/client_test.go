package ws

import (
	"testing"

	"github.com/skypop/backend/internal/arena"
	"github.com/skypop/backend/internal/protocol"
)

func encode(t *testing.T, msgType string, payload any) protocol.Envelope {
	t.Helper()
	b, err := protocol.Encode(msgType, payload)
	if err != nil {
		t.Fatalf("encode %s: %v", msgType, err)
	}
	env, err := protocol.DecodeEnvelope(b)
	if err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return env
}

func TestCommandForFrameConvertsLandmarks(t *testing.T) {
	env := encode(t, protocol.MsgFrame, protocol.Frame{
		Landmarks: []protocol.Landmark{{X: 0.1, Y: 0.2, Z: 0.3}, {X: 0.4, Y: 0.5}},
	})

	cmd, err := commandFor(env)
	if err != nil {
		t.Fatalf("commandFor: %v", err)
	}
	frame, ok := cmd.(arena.FrameCmd)
	if !ok {
		t.Fatalf("expected FrameCmd, got %T", cmd)
	}
	if len(frame.Landmarks) != 2 {
		t.Fatalf("landmarks len=%d, want 2", len(frame.Landmarks))
	}
	if frame.Landmarks[0].X != 0.1 || frame.Landmarks[0].Z != 0.3 {
		t.Fatalf("landmark conversion lost data: %+v", frame.Landmarks[0])
	}
}

func TestCommandForSimpleMessages(t *testing.T) {
	if cmd, err := commandFor(protocol.Envelope{T: protocol.MsgStart}); err != nil {
		t.Fatalf("start: %v", err)
	} else if _, ok := cmd.(arena.StartCmd); !ok {
		t.Fatalf("expected StartCmd, got %T", cmd)
	}

	if cmd, err := commandFor(protocol.Envelope{T: protocol.MsgReady}); err != nil {
		t.Fatalf("ready: %v", err)
	} else if _, ok := cmd.(arena.ReadyCmd); !ok {
		t.Fatalf("expected ReadyCmd, got %T", cmd)
	}
}

func TestCommandForPointer(t *testing.T) {
	env := encode(t, protocol.MsgPointer, protocol.Pointer{X: 320, Y: 240})
	cmd, err := commandFor(env)
	if err != nil {
		t.Fatalf("commandFor: %v", err)
	}
	ptr, ok := cmd.(arena.PointerCmd)
	if !ok {
		t.Fatalf("expected PointerCmd, got %T", cmd)
	}
	if ptr.X != 320 || ptr.Y != 240 {
		t.Fatalf("pointer %+v", ptr)
	}
}

func TestCommandForInitError(t *testing.T) {
	env := encode(t, protocol.MsgInitError, protocol.InitError{Message: "no camera"})
	cmd, err := commandFor(env)
	if err != nil {
		t.Fatalf("commandFor: %v", err)
	}
	ie, ok := cmd.(arena.InitErrorCmd)
	if !ok {
		t.Fatalf("expected InitErrorCmd, got %T", cmd)
	}
	if ie.Message != "no camera" {
		t.Fatalf("message %q", ie.Message)
	}
}

func TestCommandForUnknownType(t *testing.T) {
	if _, err := commandFor(protocol.Envelope{T: "bogus"}); err == nil {
		t.Fatalf("unknown type must error")
	}
}
