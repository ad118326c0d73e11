// Package maze models a rectangular grid maze as two wall matrices and
// generates perfect mazes via randomized Kruskal construction.
//
// What:
//
//   - Maze wraps a W x H grid; wallRight[x][y] and wallDown[x][y] record
//     whether a wall blocks the move from (x,y) to its right/down neighbor.
//   - New(w, h) enumerates every internal edge candidate, shuffles them,
//     and opens each one whose endpoints are not yet connected (union-find),
//     producing a spanning tree: connected, acyclic, exactly W*H-1 open edges.
//   - CanMove(x, y, d) is the O(1) adjacency query every solver relies on.
//   - NewWalled(w, h) plus Open(x, y, d) build mazes by hand, including
//     deliberately disconnected ones for testing unreachable goals.
//
// Why:
//
//   - A perfect maze has exactly one path between any two cells, which makes
//     it an ideal fixture for comparing search strategies.
//   - The wall-matrix representation keeps adjacency constant-time with no
//     per-cell allocations.
//
// Determinism:
//
//   - WithSeed(s) fixes the shuffle; the same seed always yields the same
//     maze. Without it each New call draws from the wall clock.
//   - The spanning tree is uniform only up to the shuffle's bias; this is a
//     shuffled-Kruskal sampler, not a uniform spanning tree sampler.
//
// Complexity:
//
//   - New: O(W*H * alpha(W*H)) time, O(W*H) memory.
//   - CanMove, CellID, CellAt, InBounds: O(1).
//
// Errors:
//
//   - ErrInvalidDimension: width or height below 1.
//   - ErrOutOfBounds: Open targeting a cell or edge outside the grid.
package maze
