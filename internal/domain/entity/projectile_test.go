package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProjectile(t *testing.T) {
	p := NewProjectile(
		Vec2{X: 200, Y: 100},
		Vec2{X: -3, Y: 0},
		Vec2{X: 8, Y: 4},
		1, 180,
	)

	require.NotNil(t, p)
	assert.True(t, p.Active)
	assert.Equal(t, 180, p.LifeTicks)
	assert.Equal(t, Rect{X: 200, Y: 100, W: 8, H: 4}, p.Hitbox())

	p.Deactivate()
	assert.False(t, p.Active)
}
