// Package lvlmaze generates random perfect mazes and solves them with
// interchangeable graph-search strategies, step by observable step.
//
// 🚀 What is lvlmaze?
//
//	A small, focused library that brings together:
//		• maze/   — wall-matrix grid mazes, randomized-Kruskal generation,
//		  O(1) adjacency queries, hand-building for custom structures
//		• dsu/    — the union-find forest behind cycle-free generation
//		• solve/  — DFS, BFS, Dijkstra and A* over the maze grid, with a
//		  snapshot stream (visited / frontier / current / label) per step
//		• render/ — colored ASCII frames and paced terminal animation
//		• cmd/lvlmaze — an interactive terminal front end tying it together
//
// ✨ Why choose lvlmaze?
//
//   - Deterministic – fixed seed ⇒ identical maze; fixed maze ⇒ identical
//     path and snapshot sequence on every run
//   - Observable – hooks stream immutable snapshots without touching the
//     search, so renderers stay outside the algorithms
//   - Honest guarantees – a generated maze is always a spanning tree:
//     connected, acyclic, exactly one path between any two cells
//
// Quick ASCII example, a solved 4x2 maze:
//
//	+-+-+-+-+
//	  * * * |
//	+-+-+ * +
//	|     *
//	+-+-+-+-+
//
// Solve from the entrance (top-left) to the exit (bottom-right):
//
//	m, _ := maze.New(30, 15)
//	res, _ := solve.Solve(m, solve.AStar)
//	fmt.Println(res.Path)
//
//	go get github.com/katalvlaran/lvlmaze
package lvlmaze
