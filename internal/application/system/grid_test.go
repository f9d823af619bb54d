package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/skyrunner/internal/domain/entity"
)

func createTestGrid() (*Grid, []entity.Platform) {
	platforms := []entity.Platform{
		{Rect: entity.Rect{X: 0, Y: 560, W: 160, H: 20}},
		{Rect: entity.Rect{X: 230, Y: 480, W: 100, H: 20}},
		{Rect: entity.Rect{X: 400, Y: 400, W: 80, H: 20}},
		{Rect: entity.Rect{X: 560, Y: 330, W: 120, H: 20}},
		{Rect: entity.Rect{X: 100, Y: 300, W: 600, H: 20}}, // spans many cells
	}
	bounds := entity.Rect{X: 0, Y: 140, W: 760, H: 520}
	return NewGrid(platforms, bounds, 64), platforms
}

func TestGridQueryFindsAllOverlaps(t *testing.T) {
	grid, platforms := createTestGrid()

	// Broad phase may return extras, never misses
	queries := []entity.Rect{
		{X: 50, Y: 550, W: 20, H: 40},
		{X: 0, Y: 140, W: 760, H: 520},
		{X: 420, Y: 390, W: 10, H: 40},
		{X: 90, Y: 290, W: 640, H: 40},
	}

	for _, q := range queries {
		candidates := grid.Query(q)
		seen := make(map[int]bool, len(candidates))
		for _, i := range candidates {
			seen[i] = true
		}
		for i, p := range platforms {
			if q.Overlaps(p.Rect) {
				assert.True(t, seen[i], "query %+v missed platform %d", q, i)
			}
		}
	}
}

func TestGridQueryNoDuplicates(t *testing.T) {
	grid, _ := createTestGrid()

	// The wide platform spans many cells; it must come back once
	candidates := grid.Query(entity.Rect{X: 0, Y: 140, W: 760, H: 520})
	seen := make(map[int]int)
	for _, i := range candidates {
		seen[i]++
	}
	for i, n := range seen {
		assert.Equal(t, 1, n, "platform %d returned %d times", i, n)
	}
	assert.Len(t, seen, 5)
}

func TestGridQueryEmptyRegion(t *testing.T) {
	grid, _ := createTestGrid()

	assert.Empty(t, grid.Query(entity.Rect{X: 600, Y: 500, W: 30, H: 30}))
}

func TestGridQueryOutsideBoundsClamps(t *testing.T) {
	grid, platforms := createTestGrid()

	// A rect straying past the edge still sees the border platforms
	candidates := grid.Query(entity.Rect{X: -100, Y: 540, W: 150, H: 200})
	found := false
	for _, i := range candidates {
		if platforms[i].Y == 560 {
			found = true
		}
	}
	assert.True(t, found)
}

func TestGridZeroCellSizeFallsBack(t *testing.T) {
	platforms := []entity.Platform{{Rect: entity.Rect{X: 10, Y: 10, W: 50, H: 10}}}
	grid := NewGrid(platforms, entity.Rect{X: 0, Y: 0, W: 100, H: 100}, 0)

	require.NotNil(t, grid)
	assert.NotEmpty(t, grid.Query(entity.Rect{X: 0, Y: 0, W: 100, H: 100}))
}
