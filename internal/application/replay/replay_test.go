package replay

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/skyrunner/internal/application/system"
)

func TestFrameInputCompactKeys(t *testing.T) {
	data, err := json.Marshal(FrameInput{F: 3, L: true, JP: true})
	require.NoError(t, err)

	// The wire format is part of the replay file contract
	assert.JSONEq(t, `{"f":3,"l":true,"jp":true}`, string(data))
}

func TestReplayerPollSequence(t *testing.T) {
	replayer := NewReplayer(ReplayData{
		Version:    "1.0",
		Seed:       42,
		StartLevel: 1,
		Frames: []FrameInput{
			{F: 0, L: true},
			{F: 1, R: true, JP: true},
			{F: 2, PP: true},
			{F: 3, RP: true},
		},
	})

	assert.Equal(t, system.InputState{Left: true}, replayer.Poll())
	assert.Equal(t, system.InputState{Right: true, JumpPressed: true}, replayer.Poll())
	assert.Equal(t, system.InputState{PausePressed: true}, replayer.Poll())
	assert.False(t, replayer.Done())
	assert.Equal(t, system.InputState{RestartPressed: true}, replayer.Poll())
	assert.True(t, replayer.Done())

	// Past the end: idle input, still done
	assert.Equal(t, system.InputState{}, replayer.Poll())
	assert.True(t, replayer.Done())
}

func TestReplayerCurrentAndTotalFrames(t *testing.T) {
	replayer := NewReplayer(CreateTestReplayData(5))

	assert.Equal(t, 0, replayer.CurrentFrame())
	assert.Equal(t, 5, replayer.TotalFrames())

	replayer.Poll()
	replayer.Poll()
	assert.Equal(t, 2, replayer.CurrentFrame())
}

func TestReplayerReset(t *testing.T) {
	replayer := NewReplayer(ReplayData{
		Frames: []FrameInput{{F: 0, L: true}, {F: 1}},
	})

	replayer.Poll()
	replayer.Poll()
	require.True(t, replayer.Done())

	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())
	assert.Equal(t, system.InputState{Left: true}, replayer.Poll())
}

func TestReplayerWorldIdentity(t *testing.T) {
	replayer := NewReplayer(ReplayData{Seed: 99999, StartLevel: 4})

	assert.Equal(t, int64(99999), replayer.Seed())
	assert.Equal(t, 4, replayer.StartLevel())
}

func TestLoadReplay(t *testing.T) {
	t.Run("roundtrip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "run.json")
		saved := CreateTestReplayData(3)
		saved.Frames[1].R = true

		raw, err := json.Marshal(saved)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(path, raw, 0o644))

		loaded, err := LoadReplay(path)
		require.NoError(t, err)
		assert.Equal(t, saved, *loaded)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadReplay(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("corrupt file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		_, err := LoadReplay(path)
		assert.Error(t, err)
	})
}
