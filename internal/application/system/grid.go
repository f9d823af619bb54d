package system

import (
	"math"

	"github.com/younwookim/skyrunner/internal/domain/entity"
)

// Grid is the broad phase over static platforms: a uniform cell index
// built once per level. Queries return candidate platform indexes; the
// narrow phase does the exact overlap tests.
type Grid struct {
	cellSize float64
	origin   entity.Vec2
	cols     int
	rows     int
	cells    [][]int

	platforms []entity.Platform

	// Query-scoped dedup, reused across calls
	seen    []uint32
	gen     uint32
	scratch []int
}

// NewGrid indexes the platforms over the level bounds
func NewGrid(platforms []entity.Platform, bounds entity.Rect, cellSize float64) *Grid {
	if cellSize <= 0 {
		cellSize = 64
	}
	cols := int(math.Ceil(bounds.W/cellSize)) + 1
	rows := int(math.Ceil(bounds.H/cellSize)) + 1
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	g := &Grid{
		cellSize:  cellSize,
		origin:    entity.Vec2{X: bounds.X, Y: bounds.Y},
		cols:      cols,
		rows:      rows,
		cells:     make([][]int, cols*rows),
		platforms: platforms,
		seen:      make([]uint32, len(platforms)),
	}

	for i, p := range platforms {
		minCX, minCY := g.cellAt(p.X, p.Y)
		maxCX, maxCY := g.cellAt(p.Right(), p.Bottom())
		for cy := minCY; cy <= maxCY; cy++ {
			for cx := minCX; cx <= maxCX; cx++ {
				idx := cy*g.cols + cx
				g.cells[idx] = append(g.cells[idx], i)
			}
		}
	}
	return g
}

// Query returns the indexes of platforms whose cells the rect touches.
// The slice is reused between calls; do not retain it.
func (g *Grid) Query(r entity.Rect) []int {
	g.gen++
	out := g.scratch[:0]

	minCX, minCY := g.cellAt(r.X, r.Y)
	maxCX, maxCY := g.cellAt(r.Right(), r.Bottom())
	for cy := minCY; cy <= maxCY; cy++ {
		for cx := minCX; cx <= maxCX; cx++ {
			for _, i := range g.cells[cy*g.cols+cx] {
				if g.seen[i] != g.gen {
					g.seen[i] = g.gen
					out = append(out, i)
				}
			}
		}
	}

	g.scratch = out
	return out
}

// cellAt clamps a point into the grid, so rects straying outside the
// bounds still query the border cells instead of indexing out of range
func (g *Grid) cellAt(x, y float64) (int, int) {
	cx := int((x - g.origin.X) / g.cellSize)
	cy := int((y - g.origin.Y) / g.cellSize)
	if cx < 0 {
		cx = 0
	} else if cx >= g.cols {
		cx = g.cols - 1
	}
	if cy < 0 {
		cy = 0
	} else if cy >= g.rows {
		cy = g.rows - 1
	}
	return cx, cy
}
