// Package solve runs interchangeable graph-search strategies over a maze:
// depth-first, breadth-first, Dijkstra, and A*.
//
// What:
//
//   - Solve(m, algo, opts...) searches from the top-left cell (0,0) to the
//     bottom-right cell (W-1,H-1), using Maze.CanMove as its only adjacency
//     surface, and returns a Result with parent links, per-algorithm
//     distances, and the reconstructed start-to-goal path.
//   - WithOnStep streams an immutable Snapshot (visited set, frontier set,
//     current cell, status label) after each meaningful transition, so an
//     external renderer can animate the search without touching its state.
//   - Result.PathTo reconstructs the path to any reached cell by walking
//     parent links backward and reversing.
//
// Strategy differences:
//
//   - DFS keeps an explicit stack of the current path and backtracks at dead
//     ends; its path is valid but not necessarily shortest.
//   - BFS expands in first-in-first-out order; on the unit-cost grid its
//     path is hop-optimal.
//   - Dijkstra and A* share one priority-queue runner with lazy decrease-key
//     (stale heap entries are skipped on pop). Dijkstra orders by distance
//     alone; A* adds an admissible heuristic, Manhattan distance by default,
//     and both return hop-optimal paths.
//   - DFS and BFS mark cells visited when pushed/enqueued; Dijkstra and A*
//     mark them visited only when finalized off the heap. The asymmetry is
//     kept on purpose: it is what an attached renderer observes.
//
// All variants expand neighbors in the fixed order Up, Right, Down, Left and
// stop the moment the goal is expanded, so a fixed maze yields an identical
// path and snapshot sequence on every run.
//
// Complexity, with N = W*H cells:
//
//   - DFS, BFS: O(N) time, O(N) memory.
//   - Dijkstra, A*: O(N log N) time, O(N) memory.
//
// Errors:
//
//   - ErrNilMaze:          nil maze passed to Solve.
//   - ErrUnknownAlgorithm: algorithm value outside the four variants.
//   - ErrNoPath:           PathTo target was never reached. An unreachable
//     goal is not a Solve error: the Result simply carries a nil Path.
//   - Context errors surface when the supplied context is cancelled; the
//     check sits at snapshot boundaries, once per main-loop turn.
package solve
