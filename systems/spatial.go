// Package systems provides the spatial index, spawn placement and collision
// detection for the arena simulation.
package systems

import (
	"github.com/mlange-42/ark/ecs"
)

// GridBody is a body record held by the spatial grid for one tick. Position is
// captured at insert time so the broad phase never touches component storage.
type GridBody struct {
	Entity ecs.Entity
	ID     uint32
	X, Y   float32
}

// SpatialGrid partitions the arena into uniform cells sized to the common body
// diameter. It is rebuilt from scratch every tick: with one cell per diameter,
// any two bodies within colliding distance are guaranteed to sit in the same
// cell or in adjacent cells.
type SpatialGrid struct {
	cellSize float32
	cols     int
	rows     int
	cells    [][]GridBody // flat grid of body lists
}

// NewSpatialGrid creates a spatial grid covering the given arena size.
func NewSpatialGrid(width, height, cellSize float32) *SpatialGrid {
	cols := int(width/cellSize) + 1
	rows := int(height/cellSize) + 1

	cells := make([][]GridBody, cols*rows)
	for i := range cells {
		cells[i] = make([]GridBody, 0, 4) // pre-allocate small capacity
	}

	return &SpatialGrid{
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		cells:    cells,
	}
}

// Clear removes all bodies from the grid, keeping cell capacity.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Insert adds a body to the cell containing its center.
func (g *SpatialGrid) Insert(e ecs.Entity, id uint32, x, y float32) {
	idx := g.cellIndex(x, y)
	g.cells[idx] = append(g.cells[idx], GridBody{Entity: e, ID: id, X: x, Y: y})
}

// NeighborhoodInto appends the bodies of the 3x3 cell neighborhood around
// (col, row) to dst and returns the updated slice. Cells outside the grid are
// skipped, so border cells simply have smaller neighborhoods.
func (g *SpatialGrid) NeighborhoodInto(dst []GridBody, col, row int) []GridBody {
	for dc := -1; dc <= 1; dc++ {
		c := col + dc
		if c < 0 || c >= g.cols {
			continue
		}
		for dr := -1; dr <= 1; dr++ {
			r := row + dr
			if r < 0 || r >= g.rows {
				continue
			}
			dst = append(dst, g.cells[r*g.cols+c]...)
		}
	}
	return dst
}

// cellIndex returns the flat index for an arena position.
func (g *SpatialGrid) cellIndex(x, y float32) int {
	col := int(x / g.cellSize)
	row := int(y / g.cellSize)

	// Clamp so transient boundary overshoot still lands in a border cell
	if col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}
	if row < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}

	return row*g.cols + col
}
