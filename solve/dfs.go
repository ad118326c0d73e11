package solve

import (
	"fmt"

	"github.com/katalvlaran/lvlmaze/maze"
)

// runDFS walks the maze with an explicit stack holding the current path.
// Each turn peeks the top cell: reaching the goal stops the search, the
// first unvisited reachable neighbor (in fixed Up/Right/Down/Left order)
// extends the path, and a dead end pops the stack to backtrack. The stack
// is explicit rather than call recursion so maze depth never meets a call
// stack limit.
func (w *walker) runDFS() error {
	stack := make([]int, 0, w.m.Cells())
	stack = append(stack, w.res.Start)
	w.visited[w.res.Start] = true
	w.emit("DFS - starting DFS", NoCell, nil)

	for len(stack) > 0 {
		if err := w.cancelled(); err != nil {
			return err
		}

		u := stack[len(stack)-1]
		if u == w.res.Goal {
			break
		}

		next := NoCell
		for _, d := range maze.Directions {
			if v, ok := w.neighbor(u, d); ok && !w.visited[v] {
				next = v
				break
			}
		}

		if next == NoCell {
			// Dead end: drop the top cell and resume from its parent.
			stack = stack[:len(stack)-1]
			x, y := w.m.CellAt(u)
			w.emit(fmt.Sprintf("DFS - dead end at (%d,%d), backtracking", x, y), u, nil)
			continue
		}

		w.emit(w.cellLabel("expanding cell", u), u, nil)
		w.res.Parent[next] = u
		w.visited[next] = true
		stack = append(stack, next)
		w.emit(w.cellLabel("add to frontier", next), u, []int{next})
	}

	return nil
}
