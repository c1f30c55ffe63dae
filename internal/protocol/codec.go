package protocol

import (
	"encoding/json"
	"fmt"
)

// Encode marshals a payload into a typed envelope.
func Encode(t string, payload any) ([]byte, error) {
	if t == "" {
		return nil, fmt.Errorf("empty envelope type")
	}
	if payload == nil {
		return nil, fmt.Errorf("nil payload for envelope type %q", t)
	}
	pb, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{T: t, P: pb})
}

// DecodeEnvelope parses the outer envelope without touching the payload.
func DecodeEnvelope(b []byte) (Envelope, error) {
	if len(b) == 0 {
		return Envelope{}, fmt.Errorf("empty message")
	}
	var e Envelope
	if err := json.Unmarshal(b, &e); err != nil {
		return Envelope{}, err
	}
	return e, nil
}

// DecodePayload unmarshals an envelope's payload into the expected type.
func DecodePayload[T any](env Envelope) (T, error) {
	var out T
	if len(env.P) == 0 {
		return out, fmt.Errorf("empty payload for type %q", env.T)
	}
	err := json.Unmarshal(env.P, &out)
	return out, err
}
