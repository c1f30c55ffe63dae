package protocol

// Inbound payloads from the browser client.

// Hello introduces a client after connect.
type Hello struct {
	V    int    `json:"v"`              // protocol version
	Name string `json:"name,omitempty"` // optional display name
}

// Landmark is one normalized hand keypoint as the detector reports it.
type Landmark struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z,omitempty"`
}

// Frame carries one detector result. An empty or missing landmark list means
// no hand was detected this frame.
type Frame struct {
	Landmarks []Landmark `json:"landmarks,omitempty"`
}

// Pointer is a click/tap in canvas pixel coordinates, the non-gesture way to
// aim and shoot.
type Pointer struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// InitError reports that the client failed to acquire its camera or
// detector while the session was Loading.
type InitError struct {
	Message string `json:"message"`
}
