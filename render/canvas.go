package render

import (
	"strings"

	"github.com/katalvlaran/lvlmaze/maze"
	"github.com/katalvlaran/lvlmaze/solve"
)

// ANSI color sequences for the maze glyphs.
const (
	colorCorner   = "\x1b[95m"
	colorWall     = "\x1b[94m"
	colorVisited  = "\x1b[97m"
	colorFrontier = "\x1b[33m"
	colorCurrent  = "\x1b[31m"
	colorPath     = "\x1b[32m"
	colorReset    = "\x1b[0m"
)

// Glyphs drawn on the canvas.
const (
	glyphCorner   = '+'
	glyphHWall    = '-'
	glyphVWall    = '|'
	glyphVisited  = '.'
	glyphFrontier = 'o'
	glyphCurrent  = '@'
	glyphPath     = '*'
	glyphSpace    = ' '
)

// Canvas holds the immutable wall layout of one maze, ready to be overlaid
// with per-frame search state. Build it once per maze; it never mutates.
type Canvas struct {
	mazeW, mazeH int
	rows, cols   int
	base         [][]byte
}

// NewCanvas builds the (2H+1) x (2W+1) wall grid for m, carving the open
// passages plus the entrance and exit gaps.
func NewCanvas(m *maze.Maze) *Canvas {
	w, h := m.Width(), m.Height()
	c := &Canvas{
		mazeW: w,
		mazeH: h,
		rows:  2*h + 1,
		cols:  2*w + 1,
	}

	c.base = make([][]byte, c.rows)
	for r := 0; r < c.rows; r++ {
		c.base[r] = make([]byte, c.cols)
		for col := 0; col < c.cols; col++ {
			switch {
			case r%2 == 0 && col%2 == 0:
				c.base[r][col] = glyphCorner
			case r%2 == 0:
				c.base[r][col] = glyphHWall
			case col%2 == 0:
				c.base[r][col] = glyphVWall
			default:
				c.base[r][col] = glyphSpace
			}
		}
	}

	// Carve the open passages.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dr, dc := 2*y+1, 2*x+1
			if !m.WallRight(x, y) {
				c.base[dr][dc+1] = glyphSpace
			}
			if !m.WallDown(x, y) {
				c.base[dr+1][dc] = glyphSpace
			}
		}
	}

	// Entrance on the left of (0,0), exit on the right of (W-1,H-1).
	c.base[1][0] = glyphSpace
	c.base[2*h-1][2*w] = glyphSpace

	return c
}

// Rows returns the character-grid height.
func (c *Canvas) Rows() int { return c.rows }

// Cols returns the character-grid width.
func (c *Canvas) Cols() int { return c.cols }

// cellPos maps a cell id to its interior position on the character grid.
func (c *Canvas) cellPos(id int) (r, col int) {
	x, y := id%c.mazeW, id/c.mazeW

	return 2*y + 1, 2*x + 1
}

// Walls renders the bare maze with no search overlay.
func (c *Canvas) Walls() string {
	return c.paint(c.copyBase())
}

// Frame renders one search snapshot: visited cells, then the frontier on
// top of them, then the current cell on top of everything.
func (c *Canvas) Frame(s solve.Snapshot) string {
	grid := c.copyBase()
	for _, id := range s.Visited {
		r, col := c.cellPos(id)
		grid[r][col] = glyphVisited
	}
	for _, id := range s.Frontier {
		r, col := c.cellPos(id)
		grid[r][col] = glyphFrontier
	}
	if s.Current != solve.NoCell {
		r, col := c.cellPos(s.Current)
		grid[r][col] = glyphCurrent
	}

	return c.paint(grid)
}

// FinalPath renders the solved maze with the path cells starred.
func (c *Canvas) FinalPath(path []int) string {
	grid := c.copyBase()
	for _, id := range path {
		r, col := c.cellPos(id)
		grid[r][col] = glyphPath
	}

	return c.paint(grid)
}

// copyBase clones the wall layout for a fresh overlay.
func (c *Canvas) copyBase() [][]byte {
	grid := make([][]byte, c.rows)
	for r := range c.base {
		grid[r] = make([]byte, c.cols)
		copy(grid[r], c.base[r])
	}

	return grid
}

// paint colorizes a grid row by row into one printable block.
func (c *Canvas) paint(grid [][]byte) string {
	var b strings.Builder
	b.Grow(c.rows * c.cols * 2)
	for _, row := range grid {
		for _, ch := range row {
			switch ch {
			case glyphCorner:
				b.WriteString(colorCorner)
			case glyphHWall, glyphVWall:
				b.WriteString(colorWall)
			case glyphVisited:
				b.WriteString(colorVisited)
			case glyphFrontier:
				b.WriteString(colorFrontier)
			case glyphCurrent:
				b.WriteString(colorCurrent)
			case glyphPath:
				b.WriteString(colorPath)
			default:
				b.WriteByte(ch)
				continue
			}
			b.WriteByte(ch)
			b.WriteString(colorReset)
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// Legend describes the glyphs, colored the way frames color them.
func Legend() string {
	var b strings.Builder
	b.WriteString("Legend:\n")
	b.WriteString(colorCorner + "+" + colorReset + " : corner of wall\n")
	b.WriteString(colorWall + "-" + colorReset + " : horizontal wall\n")
	b.WriteString(colorWall + "|" + colorReset + " : vertical wall\n")
	b.WriteString(colorVisited + "." + colorReset + " : visited cell\n")
	b.WriteString(colorFrontier + "o" + colorReset + " : frontier\n")
	b.WriteString(colorCurrent + "@" + colorReset + " : current cell\n")
	b.WriteString(colorPath + "*" + colorReset + " : final path\n")

	return b.String()
}
