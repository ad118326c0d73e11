package solve

import "github.com/katalvlaran/lvlmaze/maze"

// runBFS explores the maze in first-in-first-out order. Cells are marked
// visited when enqueued, so each enters the queue at most once, and the
// search stops the moment the goal is dequeued. Because every passage costs
// one hop, the first arrival at any cell is along a shortest path, and
// Dist records those hop counts (-1 for cells never reached).
func (w *walker) runBFS() error {
	n := w.m.Cells()
	w.res.Dist = make([]int, n)
	for i := range w.res.Dist {
		w.res.Dist[i] = -1
	}
	w.res.Dist[w.res.Start] = 0

	queue := make([]int, 0, n)
	queue = append(queue, w.res.Start)
	w.visited[w.res.Start] = true
	w.emit("BFS - starting BFS", NoCell, nil)

	for len(queue) > 0 {
		if err := w.cancelled(); err != nil {
			return err
		}

		u := queue[0]
		queue = queue[1:]
		w.emit(w.cellLabel("expanding cell", u), u, nil)
		if u == w.res.Goal {
			break
		}

		for _, d := range maze.Directions {
			v, ok := w.neighbor(u, d)
			if !ok || w.visited[v] {
				continue
			}
			w.visited[v] = true
			w.res.Parent[v] = u
			w.res.Dist[v] = w.res.Dist[u] + 1
			queue = append(queue, v)
			w.emit(w.cellLabel("enqueue", v), u, []int{v})
		}
	}

	return nil
}
