package systems

import (
	"testing"

	"github.com/mlange-42/ark/ecs"
)

func TestGridCellAssignment(t *testing.T) {
	g := NewSpatialGrid(1000, 700, 100)

	tests := []struct {
		name     string
		x, y     float32
		wantCell int
	}{
		{"origin", 0, 0, 0},
		{"first cell interior", 50, 50, 0},
		{"second column", 150, 50, 1},
		{"second row", 50, 150, g.cols},
		{"overshoot left clamps", -30, 50, 0},
		{"overshoot right clamps", 1200, 50, g.cols - 1},
		{"overshoot bottom clamps", 50, 900, (g.rows - 1) * g.cols},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.cellIndex(tt.x, tt.y); got != tt.wantCell {
				t.Errorf("cellIndex(%v, %v) = %d, want %d", tt.x, tt.y, got, tt.wantCell)
			}
		})
	}
}

func TestGridNeighborhood(t *testing.T) {
	g := NewSpatialGrid(1000, 700, 100)

	// One body per cell in a 3x3 block around (5, 3), plus one far away.
	id := uint32(0)
	for dc := -1; dc <= 1; dc++ {
		for dr := -1; dr <= 1; dr++ {
			x := float32(5+dc)*100 + 50
			y := float32(3+dr)*100 + 50
			g.Insert(ecs.Entity{}, id, x, y)
			id++
		}
	}
	g.Insert(ecs.Entity{}, 99, 950, 650) // outside the neighborhood

	got := g.NeighborhoodInto(nil, 5, 3)
	if len(got) != 9 {
		t.Fatalf("neighborhood size = %d, want 9", len(got))
	}
	for _, b := range got {
		if b.ID == 99 {
			t.Error("far body must not appear in the 3x3 neighborhood")
		}
	}
}

func TestGridNeighborhoodAtBorder(t *testing.T) {
	g := NewSpatialGrid(1000, 700, 100)

	g.Insert(ecs.Entity{}, 1, 50, 50)
	g.Insert(ecs.Entity{}, 2, 150, 50)

	// Corner cell (0,0): out-of-range neighbor cells are skipped, and no body
	// is reported twice.
	got := g.NeighborhoodInto(nil, 0, 0)
	if len(got) != 2 {
		t.Fatalf("corner neighborhood size = %d, want 2", len(got))
	}

	seen := map[uint32]int{}
	for _, b := range got {
		seen[b.ID]++
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("body %d reported %d times in corner neighborhood", id, n)
		}
	}
}

func TestGridClearKeepsCapacity(t *testing.T) {
	g := NewSpatialGrid(1000, 700, 100)

	for i := uint32(0); i < 10; i++ {
		g.Insert(ecs.Entity{}, i, 50, 50)
	}
	g.Clear()

	for _, cell := range g.cells {
		if len(cell) != 0 {
			t.Fatal("grid not empty after Clear")
		}
	}

	// Grid must be reusable after Clear.
	g.Insert(ecs.Entity{}, 0, 50, 50)
	if got := g.NeighborhoodInto(nil, 0, 0); len(got) != 1 {
		t.Errorf("neighborhood size after reuse = %d, want 1", len(got))
	}
}
