// Package solve types: algorithm selection, heuristics, snapshots,
// functional options, sentinel errors, and the search Result.
package solve

import (
	"context"
	"errors"
)

// Sentinel errors for search execution and path reconstruction.
var (
	// ErrNilMaze is returned when a nil maze pointer is passed to Solve.
	ErrNilMaze = errors.New("solve: maze is nil")

	// ErrUnknownAlgorithm is returned for an Algorithm outside the four variants.
	ErrUnknownAlgorithm = errors.New("solve: unknown algorithm")

	// ErrNoPath is returned by PathTo when the target cell was never reached.
	ErrNoPath = errors.New("solve: no path to cell")
)

// NoCell marks the absence of a cell: an unset parent link, or the current
// cell of a snapshot taken before any expansion.
const NoCell = -1

// Algorithm selects the search strategy run by Solve.
type Algorithm int

const (
	// DFS is iterative depth-first search with explicit-stack backtracking.
	DFS Algorithm = iota
	// BFS is breadth-first search; hop-optimal on the unit-cost grid.
	BFS
	// Dijkstra is the priority-queue search with a zero heuristic.
	Dijkstra
	// AStar is the priority-queue search ordered by distance plus heuristic.
	AStar
)

// String returns the display name of the algorithm, as used in snapshot labels.
func (a Algorithm) String() string {
	switch a {
	case DFS:
		return "DFS"
	case BFS:
		return "BFS"
	case Dijkstra:
		return "Dijkstra"
	case AStar:
		return "A*"
	default:
		return "unknown"
	}
}

// Heuristic estimates the remaining cost from cell (x,y) to the goal.
// Any admissible estimate keeps A* optimal on the unit-cost grid.
type Heuristic func(x, y int) int

// Manhattan returns the Manhattan-distance heuristic toward (goalX, goalY),
// the A* default. It is admissible and consistent on a 4-directional grid.
func Manhattan(goalX, goalY int) Heuristic {
	return func(x, y int) int {
		dx := x - goalX
		if dx < 0 {
			dx = -dx
		}
		dy := y - goalY
		if dy < 0 {
			dy = -dy
		}

		return dx + dy
	}
}

// Snapshot is one observable search step handed to the OnStep sink.
// All fields are copies owned by the receiver; Visited and Frontier are
// sorted ascending by cell id so a rerun emits an identical sequence.
type Snapshot struct {
	// Visited lists the cells marked visited so far.
	Visited []int
	// Frontier lists the cells the step puts in front of the viewer:
	// the freshly pushed/enqueued cell for DFS and BFS, the pending
	// priority-queue contents for Dijkstra and A*.
	Frontier []int
	// Current is the cell being expanded, or NoCell on the opening frame.
	Current int
	// Label is a human-readable status line, e.g. "BFS - enqueue (3,1)".
	Label string
}

// Option configures Solve via functional arguments.
type Option func(*Options)

// Options holds the tunable parameters of a single Solve run.
type Options struct {
	// Ctx allows cancellation; checked once per main-loop turn.
	Ctx context.Context

	// OnStep, if non-nil, receives a Snapshot after each meaningful state
	// transition, synchronously and in algorithm order. Emission never
	// alters search state; leaving it nil skips snapshot assembly entirely.
	OnStep func(Snapshot)

	// Heuristic overrides the A* heuristic. Ignored by DFS and BFS;
	// Dijkstra always runs with the zero heuristic regardless.
	Heuristic Heuristic
}

// DefaultOptions returns the Solve defaults: background context, no step
// sink, and the per-algorithm default heuristic.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnStep:    nil,
		Heuristic: nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnStep registers fn as the snapshot sink.
func WithOnStep(fn func(Snapshot)) Option {
	return func(o *Options) {
		o.OnStep = fn
	}
}

// WithHeuristic sets the A* heuristic. Passing nil keeps the Manhattan default.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// Result captures the outcome of one Solve run.
type Result struct {
	// Algorithm is the variant that produced this result.
	Algorithm Algorithm

	// Start and Goal are the endpoint cell ids: 0 and W*H-1.
	Start, Goal int

	// Parent maps each cell id to the cell it was discovered from,
	// NoCell where unset. Sufficient to reconstruct any reached path.
	Parent []int

	// Dist carries per-cell cost with algorithm-specific meaning: hop counts
	// for BFS, finalized distances for Dijkstra and A* (unreached cells keep
	// a sentinel of -1 and math.MaxInt respectively). Nil for DFS.
	Dist []int

	// Path is the start-to-goal cell sequence, nil when the goal was
	// never reached.
	Path []int
}

// PathTo reconstructs the start-to-id path by following parent links
// backward from id and reversing. Returns ErrNoPath if id was never
// reached (or lies outside the grid).
func (r *Result) PathTo(id int) ([]int, error) {
	if id < 0 || id >= len(r.Parent) {
		return nil, ErrNoPath
	}
	if id != r.Start && r.Parent[id] == NoCell {
		return nil, ErrNoPath
	}

	path := []int{}
	for cur := id; ; cur = r.Parent[cur] {
		path = append(path, cur)
		if r.Parent[cur] == NoCell {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
