package maze

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/lvlmaze/dsu"
)

// edgeCandidate names a removable wall during generation: the wall on the
// right or down side of cell (x,y). Candidates exist only while New runs.
type edgeCandidate struct {
	x, y int
	d    Direction // Right or Down only
}

// New generates a fresh random perfect maze of the given dimensions.
// Every call draws a new maze; pass WithSeed for a reproducible one.
//
// Construction is randomized Kruskal: collect the 2*W*H-W-H internal edge
// candidates, shuffle them, and open each candidate whose endpoint cells are
// still in different union-find sets. After the pass the open-edge graph is
// a spanning tree of the grid: connected, acyclic, W*H-1 open edges.
//
// Returns ErrInvalidDimension if width or height is below 1.
// Complexity: O(W*H * alpha(W*H)) time, O(W*H) memory.
func New(width, height int, opts ...Option) (*Maze, error) {
	o := defaultGenOptions()
	for _, opt := range opts {
		opt(&o)
	}

	m, err := NewWalled(width, height)
	if err != nil {
		return nil, err
	}

	// 1) Enumerate every internal edge once: the right edge of each cell
	//    that has a right neighbor, the down edge of each cell that has a
	//    down neighbor.
	candidates := make([]edgeCandidate, 0, 2*width*height-width-height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x+1 < width {
				candidates = append(candidates, edgeCandidate{x: x, y: y, d: Right})
			}
			if y+1 < height {
				candidates = append(candidates, edgeCandidate{x: x, y: y, d: Down})
			}
		}
	}

	// 2) Fisher-Yates shuffle with a per-run RNG.
	rng := rngFromSeed(o.seed)
	for i := len(candidates) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		candidates[i], candidates[j] = candidates[j], candidates[i]
	}

	// 3) Kruskal pass: open an edge only when it joins two components.
	sets := dsu.New(width * height)
	for _, e := range candidates {
		a := m.CellID(e.x, e.y)
		var b int
		if e.d == Right {
			b = a + 1
		} else {
			b = a + width
		}
		if sets.Union(a, b) {
			if e.d == Right {
				m.wallRight[e.x][e.y] = false
			} else {
				m.wallDown[e.x][e.y] = false
			}
		}
	}

	return m, nil
}

// rngFromSeed returns the generation RNG.
// Policy: seed==0 seeds from the wall clock (fresh maze per run);
// any other seed is used verbatim for reproducibility.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = time.Now().UnixNano()
	}

	return rand.New(rand.NewSource(s))
}
