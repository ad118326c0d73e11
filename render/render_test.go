// Package render_test checks canvas layout and renderer plumbing against
// hand-built mazes, with ANSI sequences stripped so the geometry is plain.
package render_test

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmaze/maze"
	"github.com/katalvlaran/lvlmaze/render"
	"github.com/katalvlaran/lvlmaze/solve"
)

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;?]*[A-Za-z]`)

func stripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}

// corridor builds the 2x1 maze with its single passage open.
func corridor(t *testing.T) *maze.Maze {
	t.Helper()
	m, err := maze.NewWalled(2, 1)
	require.NoError(t, err)
	require.NoError(t, m.Open(0, 0, maze.Right))

	return m
}

func TestCanvas_Walls(t *testing.T) {
	c := render.NewCanvas(corridor(t))
	require.Equal(t, 3, c.Rows())
	require.Equal(t, 5, c.Cols())

	want := "" +
		"+-+-+\n" +
		"     \n" + // entrance gap, open passage, exit gap
		"+-+-+\n"
	require.Equal(t, want, stripANSI(c.Walls()))
}

func TestCanvas_WallsClosedMaze(t *testing.T) {
	m, err := maze.NewWalled(2, 2)
	require.NoError(t, err)
	c := render.NewCanvas(m)

	want := "" +
		"+-+-+\n" +
		"  | |\n" +
		"+-+-+\n" +
		"| |  \n" + // exit gap replaces the outer right wall
		"+-+-+\n"
	got := stripANSI(c.Walls())
	require.Equal(t, want, got)
}

func TestCanvas_FrameOverlays(t *testing.T) {
	c := render.NewCanvas(corridor(t))
	frame := stripANSI(c.Frame(solve.Snapshot{
		Visited:  []int{0},
		Frontier: []int{1},
		Current:  0,
		Label:    "BFS - expanding cell (0,0)",
	}))

	want := "" +
		"+-+-+\n" +
		" @ o \n" +
		"+-+-+\n"
	require.Equal(t, want, frame)
}

func TestCanvas_FinalPath(t *testing.T) {
	c := render.NewCanvas(corridor(t))
	want := "" +
		"+-+-+\n" +
		" * * \n" +
		"+-+-+\n"
	require.Equal(t, want, stripANSI(c.FinalPath([]int{0, 1})))
}

func TestCanvas_GeneratedMazeMatchesWalls(t *testing.T) {
	m, err := maze.New(6, 4, maze.WithSeed(3))
	require.NoError(t, err)
	c := render.NewCanvas(m)
	lines := strings.Split(strings.TrimRight(stripANSI(c.Walls()), "\n"), "\n")
	require.Len(t, lines, 2*4+1)

	// Each open right wall must show as a gap in the character grid.
	for y := 0; y < 4; y++ {
		for x := 0; x < 6-1; x++ {
			ch := lines[2*y+1][2*x+2]
			if m.WallRight(x, y) {
				require.Equal(t, byte('|'), ch, "(%d,%d) right wall", x, y)
			} else {
				require.Equal(t, byte(' '), ch, "(%d,%d) right passage", x, y)
			}
		}
	}
}

func TestRenderer_FrameWritesLabelAndPaces(t *testing.T) {
	var out bytes.Buffer
	var slept []time.Duration
	r := &render.Renderer{
		Out:   &out,
		Delay: 42 * time.Millisecond,
		Size:  func() (int, int) { return 100, 100 },
		Sleep: func(d time.Duration) { slept = append(slept, d) },
	}

	c := render.NewCanvas(corridor(t))
	r.WaitForFit(c) // big terminal, returns immediately with no nag output
	require.Zero(t, out.Len())

	r.Frame(c, solve.Snapshot{Visited: []int{0}, Current: 0, Label: "DFS - expanding cell (0,0)"})
	require.Contains(t, out.String(), "DFS - expanding cell (0,0)")
	require.Equal(t, []time.Duration{42 * time.Millisecond}, slept)
}

func TestRenderer_ShowFinalPath(t *testing.T) {
	var out bytes.Buffer
	r := &render.Renderer{Out: &out, Sleep: func(time.Duration) {}}
	c := render.NewCanvas(corridor(t))

	r.ShowFinalPath(c, []int{0, 1})
	require.Contains(t, out.String(), "FINAL (exit found)")

	out.Reset()
	r.ShowFinalPath(c, nil)
	require.Contains(t, out.String(), "No path to the exit.")
}

func TestDelayForSpeed(t *testing.T) {
	require.Equal(t, 500*time.Millisecond, render.DelayForSpeed(1))
	require.Equal(t, time.Millisecond, render.DelayForSpeed(10))
	require.Equal(t, render.DefaultDelay, render.DelayForSpeed(0))
	require.Equal(t, render.DefaultDelay, render.DelayForSpeed(11))
}

func TestLegend(t *testing.T) {
	legend := stripANSI(render.Legend())
	for _, want := range []string{"corner", "visited", "frontier", "current", "final path"} {
		require.Contains(t, legend, want)
	}
}
