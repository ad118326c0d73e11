package solve

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/lvlmaze/maze"
)

// runPQ is the shared cost-relaxation loop behind Dijkstra and A*.
// The two differ only in the heuristic h ordering the min-heap: Dijkstra
// passes the zero function and orders by distance alone, A* adds the
// heuristic estimate. Edge weights are uniformly 1, so both finalize cells
// in non-decreasing true distance and return hop-optimal paths.
//
// Decrease-key is lazy, as in any heap without handles: a relaxation pushes
// a fresh entry and the stale one is skipped when popped (finalized check).
// Cells count as visited only once finalized off the heap; the heap
// contents form the frontier shown in snapshots.
func (w *walker) runPQ(h Heuristic) error {
	n := w.m.Cells()
	w.res.Dist = make([]int, n)
	for i := range w.res.Dist {
		w.res.Dist[i] = math.MaxInt
	}
	w.res.Dist[w.res.Start] = 0

	// finalized implements the lazy-deletion skip; w.visited feeds the
	// snapshot set and seeds the start cell before the first pop.
	finalized := make([]bool, n)
	w.visited[w.res.Start] = true

	hAt := func(id int) int {
		x, y := w.m.CellAt(id)
		return h(x, y)
	}

	pq := make(cellPQ, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, &cellItem{id: w.res.Start, prio: hAt(w.res.Start)})

	name := w.res.Algorithm.String()
	w.emit(name+" - starting "+name, NoCell, nil)

	for pq.Len() > 0 {
		if err := w.cancelled(); err != nil {
			return err
		}

		// The frontier frame is the queue as it stood before this pop.
		var frontier []int
		if w.opts.OnStep != nil {
			frontier = pq.ids()
		}

		u := heap.Pop(&pq).(*cellItem).id
		if finalized[u] {
			continue // stale entry left behind by a later relaxation
		}
		finalized[u] = true
		w.visited[u] = true

		w.emit(w.cellLabel("expanding cell", u), u, frontier)
		if u == w.res.Goal {
			break
		}

		for _, d := range maze.Directions {
			v, ok := w.neighbor(u, d)
			if !ok {
				continue
			}
			alt := w.res.Dist[u] + 1
			if alt >= w.res.Dist[v] {
				continue
			}
			w.res.Dist[v] = alt
			w.res.Parent[v] = u
			heap.Push(&pq, &cellItem{id: v, prio: alt + hAt(v)})
			w.emit(w.cellLabel("relax edge to", v), u, frontier)
		}
	}

	return nil
}

// cellItem pairs a cell id with its heap priority (distance, plus the
// heuristic estimate for A*).
type cellItem struct {
	id   int
	prio int
}

// cellPQ is a min-heap of *cellItem ordered by priority, then by cell id so
// equal-priority pops are deterministic across runs.
type cellPQ []*cellItem

func (pq cellPQ) Len() int { return len(pq) }

func (pq cellPQ) Less(i, j int) bool {
	if pq[i].prio != pq[j].prio {
		return pq[i].prio < pq[j].prio
	}
	return pq[i].id < pq[j].id
}

func (pq cellPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *cellPQ) Push(x any) { *pq = append(*pq, x.(*cellItem)) }

func (pq *cellPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// ids returns the cell ids currently queued, in ascending order, for
// snapshot frontiers. Stale (already finalized) entries are included;
// that matches what a heap-backed frontier actually contains.
func (pq cellPQ) ids() []int {
	out := make([]int, len(pq))
	for i, it := range pq {
		out[i] = it.id
	}

	return out
}
