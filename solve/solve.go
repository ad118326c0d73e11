package solve

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlmaze/maze"
)

// Solve searches m from the top-left cell (0,0) to the bottom-right cell
// (W-1,H-1) with the chosen algorithm, applying any number of functional
// Options. The returned Result always carries the parent map; Path is nil
// when the goal was unreachable (never the case for a generated maze, which
// is a spanning tree, but hand-built mazes may disconnect it).
//
// Returns ErrNilMaze or ErrUnknownAlgorithm for invalid input, or the
// context error when the supplied context is cancelled mid-search.
func Solve(m *maze.Maze, algo Algorithm, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrNilMaze
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := m.Cells()
	w := &walker{
		m:       m,
		opts:    o,
		visited: make([]bool, n),
		res: &Result{
			Algorithm: algo,
			Start:     0,
			Goal:      n - 1,
			Parent:    make([]int, n),
		},
	}
	for i := range w.res.Parent {
		w.res.Parent[i] = NoCell
	}

	var err error
	switch algo {
	case DFS:
		err = w.runDFS()
	case BFS:
		err = w.runBFS()
	case Dijkstra:
		// Dijkstra is the zero-heuristic specialization of the PQ runner.
		err = w.runPQ(func(int, int) int { return 0 })
	case AStar:
		h := o.Heuristic
		if h == nil {
			gx, gy := m.CellAt(w.res.Goal)
			h = Manhattan(gx, gy)
		}
		err = w.runPQ(h)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(algo))
	}
	if err != nil {
		return nil, err
	}

	if path, perr := w.res.PathTo(w.res.Goal); perr == nil {
		w.res.Path = path
	}

	return w.res, nil
}

// walker holds the mutable state of one Solve run. Every run allocates a
// fresh walker; nothing is shared across invocations and the maze is only
// read through CanMove.
type walker struct {
	m       *maze.Maze
	opts    Options
	visited []bool
	res     *Result
}

// cancelled reports the context error once the context is done.
func (w *walker) cancelled() error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
		return nil
	}
}

// neighbor resolves the cell one step from u in direction d, returning
// ok=false when a wall or the boundary blocks the move.
func (w *walker) neighbor(u int, d maze.Direction) (v int, ok bool) {
	x, y := w.m.CellAt(u)
	if !w.m.CanMove(x, y, d) {
		return NoCell, false
	}
	dx, dy := d.Delta()

	return w.m.CellID(x+dx, y+dy), true
}

// emit hands a Snapshot to the OnStep sink. It is purely observational:
// when no sink is registered nothing is assembled, and the sets handed out
// are sorted copies so the sink can keep or mutate them freely.
func (w *walker) emit(label string, current int, frontier []int) {
	if w.opts.OnStep == nil {
		return
	}
	visited := make([]int, 0, len(w.visited))
	for id, seen := range w.visited {
		if seen {
			visited = append(visited, id)
		}
	}
	f := make([]int, len(frontier))
	copy(f, frontier)
	sort.Ints(f)

	w.opts.OnStep(Snapshot{
		Visited:  visited,
		Frontier: f,
		Current:  current,
		Label:    label,
	})
}

// cellLabel formats "<algo> - <verb> (x,y)" status lines.
func (w *walker) cellLabel(verb string, id int) string {
	x, y := w.m.CellAt(id)

	return fmt.Sprintf("%s - %s (%d,%d)", w.res.Algorithm, verb, x, y)
}
