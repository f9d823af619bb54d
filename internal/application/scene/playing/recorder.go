package playing

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/skyrunner/internal/application/replay"
	"github.com/younwookim/skyrunner/internal/application/system"
)

// Recorder captures per-tick input for later playback
type Recorder struct {
	data      replay.ReplayData
	recording bool
	frame     int
}

// NewRecorder starts a recording bound to the session's seed and start
// level, which together pin down the world the inputs were played in.
func NewRecorder(seed int64, startLevel int) *Recorder {
	return &Recorder{
		data: replay.ReplayData{
			Version:    "1.0",
			Seed:       seed,
			StartLevel: startLevel,
			StartTime:  time.Now().Format(time.RFC3339),
			Frames:     make([]replay.FrameInput, 0, 6000), // 100 seconds at 60 TPS
		},
		recording: true,
	}
}

// RecordFrame appends one tick of input
func (r *Recorder) RecordFrame(in system.InputState) {
	if !r.recording {
		return
	}

	r.data.Frames = append(r.data.Frames, replay.FrameInput{
		F:  r.frame,
		L:  in.Left,
		R:  in.Right,
		JP: in.JumpPressed,
		PP: in.PausePressed,
		RP: in.RestartPressed,
	})
	r.frame++
}

// Save writes the recording to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// Stop ends the recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording reports whether frames are still being captured
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded ticks
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the recording accumulated so far
func (r *Recorder) Data() replay.ReplayData {
	return r.data
}

// GenerateFilename creates a timestamped replay filename
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
