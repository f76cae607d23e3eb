package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/younwookim/splitshot/internal/application/system"
	"github.com/younwookim/splitshot/internal/domain/entity"
)

// Replayer handles intent playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// Decode reads replay data from JSON
func Decode(r io.Reader) (*ReplayData, error) {
	var data ReplayData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	return &data, nil
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Decode(file)
}

// GetIntent returns the intent for the current frame and advances
func (r *Replayer) GetIntent() (system.Intent, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.Intent{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.Intent, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Arena returns the arena the replay was recorded in
func (r *Replayer) Arena() string {
	return r.data.Arena
}

// Done reports whether every frame has been played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// Run plays the remaining frames through sim, calling onTick after every step.
// It returns the number of ticks played.
func (r *Replayer) Run(sim *system.Simulation, w *entity.World, onTick func(*entity.World)) int {
	played := 0
	for {
		in, ok := r.GetIntent()
		if !ok {
			return played
		}
		sim.Step(w, in)
		played++
		if onTick != nil {
			onTick(w)
		}
	}
}
