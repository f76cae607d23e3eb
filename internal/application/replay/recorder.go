package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/younwookim/splitshot/internal/application/system"
)

// ErrNoFrames is returned when saving a recording without frames
var ErrNoFrames = errors.New("no frames to save")

// Recorder handles intent recording for replay
type Recorder struct {
	data      ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a new recorder for the named arena
func NewRecorder(arena string) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   Version,
			Arena:     arena,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60 TPS
		},
		recording: true,
	}
}

// RecordFrame records a single tick's intent
func (r *Recorder) RecordFrame(in system.Intent) {
	if !r.recording {
		return
	}

	r.data.Frames = append(r.data.Frames, FrameInput{F: r.frame, Intent: in})
	r.frame++
}

// Encode writes the replay data as indented JSON
func (r *Recorder) Encode(w io.Writer) error {
	if len(r.data.Frames) == 0 {
		return ErrNoFrames
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return ErrNoFrames
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return r.Encode(file)
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the recorded replay data
func (r *Recorder) Data() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
