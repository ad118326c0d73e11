// Package maze types: directions, sentinel errors, and generation options.
package maze

import "errors"

// Sentinel errors for maze construction and hand-built edits.
var (
	// ErrInvalidDimension indicates a width or height below 1.
	ErrInvalidDimension = errors.New("maze: width and height must be at least 1")

	// ErrOutOfBounds indicates an Open call naming a cell or edge outside the grid.
	ErrOutOfBounds = errors.New("maze: coordinates out of bounds")
)

// Direction names one of the four orthogonal moves on the grid.
type Direction int

const (
	// Up moves toward smaller y.
	Up Direction = iota
	// Right moves toward larger x.
	Right
	// Down moves toward larger y.
	Down
	// Left moves toward smaller x.
	Left
)

// Directions lists all four directions in the fixed expansion order used by
// every solver: Up, Right, Down, Left. Iterating this slice instead of ad-hoc
// switch statements keeps neighbor order identical everywhere.
var Directions = [4]Direction{Up, Right, Down, Left}

// deltas maps a Direction to its (dx, dy) offset.
var deltas = [4][2]int{
	Up:    {0, -1},
	Right: {1, 0},
	Down:  {0, 1},
	Left:  {-1, 0},
}

// Delta returns the (dx, dy) offset of d.
func (d Direction) Delta() (dx, dy int) {
	return deltas[d][0], deltas[d][1]
}

// String returns the lower-case direction name, or "invalid" otherwise.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "invalid"
	}
}

// Option configures maze generation via functional arguments.
type Option func(*genOptions)

// genOptions holds generation parameters collected from Options.
type genOptions struct {
	seed int64 // 0 means "seed from the wall clock"
}

// defaultGenOptions returns the generation defaults: wall-clock seeding.
func defaultGenOptions() genOptions {
	return genOptions{seed: 0}
}

// WithSeed fixes the RNG seed so generation is deterministic: the same
// seed and dimensions always produce the same maze. A seed of 0 restores
// the default wall-clock seeding.
func WithSeed(seed int64) Option {
	return func(o *genOptions) {
		o.seed = seed
	}
}
