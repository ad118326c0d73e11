package maze

// Maze is a W x H grid whose passages are encoded as two wall matrices.
// wallRight[x][y] blocks (x,y)->(x+1,y); wallDown[x][y] blocks (x,y)->(x,y+1).
// A Maze is read-only to consumers once construction (New or hand-building
// through NewWalled/Open) is complete.
type Maze struct {
	width, height int
	wallRight     [][]bool
	wallDown      [][]bool
}

// NewWalled returns a maze of the given dimensions with every wall closed.
// No generation runs: the result has zero open edges, so no two cells are
// connected. Use Open to carve passages by hand; tests use this to build
// non-spanning structures with unreachable goals.
// Returns ErrInvalidDimension if width or height is below 1.
func NewWalled(width, height int) (*Maze, error) {
	if width < 1 || height < 1 {
		return nil, ErrInvalidDimension
	}
	m := &Maze{
		width:     width,
		height:    height,
		wallRight: make([][]bool, width),
		wallDown:  make([][]bool, width),
	}
	for x := 0; x < width; x++ {
		m.wallRight[x] = make([]bool, height)
		m.wallDown[x] = make([]bool, height)
		for y := 0; y < height; y++ {
			m.wallRight[x][y] = true
			m.wallDown[x][y] = true
		}
	}

	return m, nil
}

// Width returns the maze width in cells.
func (m *Maze) Width() int { return m.width }

// Height returns the maze height in cells.
func (m *Maze) Height() int { return m.height }

// Cells returns the total cell count, width*height.
func (m *Maze) Cells() int { return m.width * m.height }

// InBounds reports whether (x,y) lies within the grid.
func (m *Maze) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// CellID maps (x,y) to its row-major index y*W+x.
func (m *Maze) CellID(x, y int) int {
	return y*m.width + x
}

// CellAt converts a row-major index back to (x,y).
func (m *Maze) CellAt(id int) (x, y int) {
	return id % m.width, id / m.width
}

// CanMove reports whether a step from (x,y) in direction d stays inside the
// grid and crosses an open edge. Any out-of-bounds source or destination
// yields false. This is the solvers' only adjacency surface; O(1).
func (m *Maze) CanMove(x, y int, d Direction) bool {
	if !m.InBounds(x, y) {
		return false
	}
	switch d {
	case Up:
		if y == 0 {
			return false
		}
		return !m.wallDown[x][y-1]
	case Right:
		if x+1 >= m.width {
			return false
		}
		return !m.wallRight[x][y]
	case Down:
		if y+1 >= m.height {
			return false
		}
		return !m.wallDown[x][y]
	case Left:
		if x == 0 {
			return false
		}
		return !m.wallRight[x-1][y]
	default:
		return false
	}
}

// WallRight reports whether a wall blocks (x,y)->(x+1,y).
// The rightmost column always reports true (the outer boundary).
func (m *Maze) WallRight(x, y int) bool {
	if !m.InBounds(x, y) || x+1 >= m.width {
		return true
	}
	return m.wallRight[x][y]
}

// WallDown reports whether a wall blocks (x,y)->(x,y+1).
// The bottom row always reports true (the outer boundary).
func (m *Maze) WallDown(x, y int) bool {
	if !m.InBounds(x, y) || y+1 >= m.height {
		return true
	}
	return m.wallDown[x][y]
}

// OpenEdges counts the open internal edges. A spanning-tree maze has
// exactly Cells()-1 of them.
func (m *Maze) OpenEdges() int {
	var n int
	for x := 0; x < m.width; x++ {
		for y := 0; y < m.height; y++ {
			if x+1 < m.width && !m.wallRight[x][y] {
				n++
			}
			if y+1 < m.height && !m.wallDown[x][y] {
				n++
			}
		}
	}

	return n
}

// Open removes the wall between (x,y) and its neighbor in direction d.
// It is the hand-building counterpart to generation; a maze produced by New
// should be treated as immutable instead. Returns ErrOutOfBounds when the
// edge does not exist (source or destination outside the grid).
func (m *Maze) Open(x, y int, d Direction) error {
	dx, dy := d.Delta()
	if !m.InBounds(x, y) || !m.InBounds(x+dx, y+dy) {
		return ErrOutOfBounds
	}
	switch d {
	case Up:
		m.wallDown[x][y-1] = false
	case Right:
		m.wallRight[x][y] = false
	case Down:
		m.wallDown[x][y] = false
	case Left:
		m.wallRight[x-1][y] = false
	}

	return nil
}
