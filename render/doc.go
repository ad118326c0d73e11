// Package render draws mazes and search snapshots as colored ASCII frames
// for a terminal.
//
// What:
//
//   - Canvas lays a W x H maze out on a (2H+1) x (2W+1) character grid:
//     '+' corners, '-' and '|' walls, a gap in the left wall at the entrance
//     and in the right wall at the exit. Overlays mark visited cells ('.'),
//     the frontier ('o'), the current cell ('@'), and the final path ('*'),
//     each with its ANSI color.
//   - Renderer paces frames onto an io.Writer: clear/home escapes, a status
//     line from the snapshot label, a configurable inter-frame delay, and a
//     terminal-size gate that waits until the maze fits.
//
// The package is a pure consumer of solve.Snapshot values: it never reaches
// into a running search, so rendering concerns stay outside the algorithms.
// Output and sizing are injectable, which keeps everything testable without
// a TTY.
package render
