package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameState_String(t *testing.T) {
	tests := []struct {
		state    GameState
		expected string
	}{
		{StateLoading, "Loading"},
		{StatePlaying, "Playing"},
		{StatePaused, "Paused"},
		{StateLevelComplete, "LevelComplete"},
		{StateGameOver, "GameOver"},
		{GameState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestGameStateConstants(t *testing.T) {
	// Verify the iota ordering
	assert.Equal(t, GameState(0), StateLoading)
	assert.Equal(t, GameState(1), StatePlaying)
	assert.Equal(t, GameState(2), StatePaused)
	assert.Equal(t, GameState(3), StateLevelComplete)
	assert.Equal(t, GameState(4), StateGameOver)
}

func TestGameState_Terminal(t *testing.T) {
	assert.True(t, StateGameOver.Terminal())
	assert.False(t, StatePlaying.Terminal())
	assert.False(t, StatePaused.Terminal())
	assert.False(t, StateLevelComplete.Terminal())
}
