package replay

import "github.com/younwookim/splitshot/internal/application/system"

// Version is written into every replay file
const Version = "2.0"

// FrameInput records the intent of a single tick
type FrameInput struct {
	F int `json:"f"` // Frame number
	system.Intent
}

// ReplayData contains all data needed to replay a session.
// The simulation is deterministic, so the arena and the intents are enough.
type ReplayData struct {
	Version   string       `json:"version"`
	Arena     string       `json:"arena"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
