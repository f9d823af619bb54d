package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/younwookim/skyrunner/internal/application/system"
)

// Replayer plays a recording back through the same input interface the
// keyboard uses, so the session cannot tell the difference.
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a replayer over loaded data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	if err := json.NewDecoder(file).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	return &data, nil
}

// Poll returns the recorded input for the current tick and advances.
// Past the end it returns idle input; check Done to stop.
func (r *Replayer) Poll() system.InputState {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return system.InputState{
		Left:           fi.L,
		Right:          fi.R,
		JumpPressed:    fi.JP,
		PausePressed:   fi.PP,
		RestartPressed: fi.RP,
	}
}

// Done reports whether the recording has been fully consumed
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// CurrentFrame returns the current tick number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the number of recorded ticks
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the world seed the recording was made against
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// StartLevel returns the level index the recording started on
func (r *Replayer) StartLevel() int {
	return r.data.StartLevel
}

// Reset rewinds the replayer to the first tick
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates an idle recording for testing
func CreateTestReplayData(frames int) ReplayData {
	data := ReplayData{
		Version:    "1.0",
		Seed:       12345,
		StartLevel: 1,
		Frames:     make([]FrameInput, frames),
	}
	for i := range data.Frames {
		data.Frames[i] = FrameInput{F: i}
	}
	return data
}
