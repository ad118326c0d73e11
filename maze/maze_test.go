// Package maze_test verifies the spanning-tree invariant of generation,
// adjacency query semantics, determinism under a fixed seed, and the
// hand-building surface used for non-spanning fixtures.
package maze_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmaze/maze"
)

// reachableCells floods the maze from (0,0) over CanMove and returns the
// number of cells reached. A spanning maze reaches all of them.
func reachableCells(m *maze.Maze) int {
	visited := make([]bool, m.Cells())
	queue := []int{0}
	visited[0] = true
	count := 1
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		x, y := m.CellAt(u)
		for _, d := range maze.Directions {
			if !m.CanMove(x, y, d) {
				continue
			}
			dx, dy := d.Delta()
			v := m.CellID(x+dx, y+dy)
			if !visited[v] {
				visited[v] = true
				count++
				queue = append(queue, v)
			}
		}
	}

	return count
}

func TestNew_InvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {3, -1}, {0, 0}} {
		_, err := maze.New(dims[0], dims[1])
		require.ErrorIs(t, err, maze.ErrInvalidDimension, "dims %v", dims)
	}
	_, err := maze.NewWalled(0, 1)
	require.ErrorIs(t, err, maze.ErrInvalidDimension)
}

func TestNew_SpanningTreeInvariant(t *testing.T) {
	// Connected with exactly W*H-1 open edges, across a spread of shapes.
	for _, dims := range [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}, {5, 3}, {3, 5}, {12, 7}, {30, 15}} {
		w, h := dims[0], dims[1]
		m, err := maze.New(w, h, maze.WithSeed(42))
		require.NoError(t, err)
		require.Equal(t, w*h-1, m.OpenEdges(), "%dx%d open edge count", w, h)
		require.Equal(t, w*h, reachableCells(m), "%dx%d connectivity", w, h)
	}
}

func TestNew_DeterministicUnderSeed(t *testing.T) {
	a, err := maze.New(9, 6, maze.WithSeed(1234))
	require.NoError(t, err)
	b, err := maze.New(9, 6, maze.WithSeed(1234))
	require.NoError(t, err)

	for y := 0; y < 6; y++ {
		for x := 0; x < 9; x++ {
			require.Equal(t, a.WallRight(x, y), b.WallRight(x, y), "wallRight (%d,%d)", x, y)
			require.Equal(t, a.WallDown(x, y), b.WallDown(x, y), "wallDown (%d,%d)", x, y)
		}
	}
}

func TestNew_DifferentSeedsDiffer(t *testing.T) {
	// Not guaranteed in theory, overwhelmingly likely on a 20x20 grid.
	a, err := maze.New(20, 20, maze.WithSeed(1))
	require.NoError(t, err)
	b, err := maze.New(20, 20, maze.WithSeed(2))
	require.NoError(t, err)

	same := true
	for y := 0; y < 20 && same; y++ {
		for x := 0; x < 20; x++ {
			if a.WallRight(x, y) != b.WallRight(x, y) || a.WallDown(x, y) != b.WallDown(x, y) {
				same = false
				break
			}
		}
	}
	require.False(t, same, "seeds 1 and 2 produced identical 20x20 mazes")
}

func TestCanMove_BoundsAndSymmetry(t *testing.T) {
	m, err := maze.New(4, 3, maze.WithSeed(7))
	if err != nil {
		t.Fatal(err)
	}

	// Boundary moves are always blocked.
	for x := 0; x < 4; x++ {
		if m.CanMove(x, 0, maze.Up) {
			t.Errorf("CanMove(%d,0,up) = true; want false at top boundary", x)
		}
		if m.CanMove(x, 2, maze.Down) {
			t.Errorf("CanMove(%d,2,down) = true; want false at bottom boundary", x)
		}
	}
	for y := 0; y < 3; y++ {
		if m.CanMove(0, y, maze.Left) {
			t.Errorf("CanMove(0,%d,left) = true; want false at left boundary", y)
		}
		if m.CanMove(3, y, maze.Right) {
			t.Errorf("CanMove(3,%d,right) = true; want false at right boundary", y)
		}
	}

	// Out-of-grid queries are blocked, not a crash.
	if m.CanMove(-1, 0, maze.Right) || m.CanMove(4, 0, maze.Left) || m.CanMove(0, 3, maze.Up) {
		t.Error("out-of-bounds CanMove must return false")
	}

	// Every open edge is open from both sides.
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if m.CanMove(x, y, maze.Right) != (x+1 < 4 && m.CanMove(x+1, y, maze.Left)) {
				t.Errorf("right/left asymmetry at (%d,%d)", x, y)
			}
			if m.CanMove(x, y, maze.Down) != (y+1 < 3 && m.CanMove(x, y+1, maze.Up)) {
				t.Errorf("down/up asymmetry at (%d,%d)", x, y)
			}
		}
	}
}

func TestCellID_CellAt_RoundTrip(t *testing.T) {
	m, err := maze.NewWalled(7, 4)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 7; x++ {
			id := m.CellID(x, y)
			if id != y*7+x {
				t.Fatalf("CellID(%d,%d) = %d; want %d", x, y, id, y*7+x)
			}
			gx, gy := m.CellAt(id)
			if gx != x || gy != y {
				t.Fatalf("CellAt(%d) = (%d,%d); want (%d,%d)", id, gx, gy, x, y)
			}
		}
	}
}

func TestNewWalled_OpenCarvesBothSides(t *testing.T) {
	m, err := maze.NewWalled(3, 3)
	require.NoError(t, err)
	require.Equal(t, 0, m.OpenEdges())
	require.Equal(t, 1, reachableCells(m))

	require.NoError(t, m.Open(0, 0, maze.Right))
	require.True(t, m.CanMove(0, 0, maze.Right))
	require.True(t, m.CanMove(1, 0, maze.Left))

	require.NoError(t, m.Open(1, 1, maze.Up))
	require.True(t, m.CanMove(1, 0, maze.Down))

	require.Equal(t, 2, m.OpenEdges())

	// Edges that leave the grid are rejected.
	require.ErrorIs(t, m.Open(2, 0, maze.Right), maze.ErrOutOfBounds)
	require.ErrorIs(t, m.Open(0, 0, maze.Up), maze.ErrOutOfBounds)
	require.ErrorIs(t, m.Open(5, 5, maze.Down), maze.ErrOutOfBounds)
}

func TestNew_TrivialMazes(t *testing.T) {
	// 1x1: no internal edges at all.
	one, err := maze.New(1, 1)
	require.NoError(t, err)
	require.Equal(t, 0, one.OpenEdges())
	require.Equal(t, 1, one.Cells())

	// 2x1: the single candidate edge must be open.
	two, err := maze.New(2, 1)
	require.NoError(t, err)
	require.Equal(t, 1, two.OpenEdges())
	require.True(t, two.CanMove(0, 0, maze.Right))
}

func TestDirection_StringAndDelta(t *testing.T) {
	want := map[maze.Direction]string{
		maze.Up: "up", maze.Right: "right", maze.Down: "down", maze.Left: "left",
	}
	for d, s := range want {
		if d.String() != s {
			t.Errorf("Direction(%d).String() = %q; want %q", d, d.String(), s)
		}
	}
	if maze.Direction(99).String() != "invalid" {
		t.Error("unknown direction must stringify as invalid")
	}
	dx, dy := maze.Up.Delta()
	if dx != 0 || dy != -1 {
		t.Errorf("Up.Delta() = (%d,%d); want (0,-1)", dx, dy)
	}
}
