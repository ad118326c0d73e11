package render

import (
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/katalvlaran/lvlmaze/solve"
)

// ANSI control sequences.
const (
	ansiClear      = "\x1b[2J\x1b[H"
	ansiHome       = "\x1b[H"
	ansiEraseLine  = "\x1b[2K"
	ansiHideCursor = "\x1b[?25l"
	ansiShowCursor = "\x1b[?25h"
)

// fitPollInterval is how often the size gate re-checks a too-small terminal.
const fitPollInterval = 200 * time.Millisecond

// speedDelays maps speed levels 1 (slow) through 10 (fast) to frame delays.
var speedDelays = [...]time.Duration{
	500 * time.Millisecond,
	300 * time.Millisecond,
	200 * time.Millisecond,
	100 * time.Millisecond,
	80 * time.Millisecond,
	60 * time.Millisecond,
	40 * time.Millisecond,
	25 * time.Millisecond,
	10 * time.Millisecond,
	1 * time.Millisecond,
}

// DefaultDelay is the frame delay used when no speed level is chosen.
const DefaultDelay = 150 * time.Millisecond

// DelayForSpeed converts a speed level in 1..10 to a frame delay;
// out-of-range levels fall back to DefaultDelay.
func DelayForSpeed(level int) time.Duration {
	if level < 1 || level > len(speedDelays) {
		return DefaultDelay
	}

	return speedDelays[level-1]
}

// Renderer writes paced, colored frames to a terminal-like writer.
// All collaborators are injectable: Out for the destination, Size for the
// terminal dimensions, Sleep for pacing. Tests swap them out.
type Renderer struct {
	// Out receives every frame. Defaults to os.Stdout.
	Out io.Writer

	// Delay is slept after every animated frame.
	Delay time.Duration

	// Size reports the terminal dimensions as (rows, cols).
	Size func() (rows, cols int)

	// Sleep paces frames; time.Sleep unless overridden.
	Sleep func(time.Duration)
}

// New returns a Renderer bound to os.Stdout with the default delay and
// real terminal sizing.
func New() *Renderer {
	return &Renderer{
		Out:   os.Stdout,
		Delay: DefaultDelay,
		Size:  stdoutSize,
		Sleep: time.Sleep,
	}
}

// stdoutSize queries the controlling terminal; a non-terminal stdout
// reports a generous fallback so piping output never blocks the gate.
func stdoutSize() (rows, cols int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 1000, 1000
	}

	return h, w
}

// WaitForFit blocks until the terminal is tall and wide enough for the
// canvas plus one status line, nagging the user in the meantime.
func (r *Renderer) WaitForFit(c *Canvas) {
	needRows, needCols := c.Rows()+1, c.Cols()
	for {
		rows, cols := r.Size()
		if rows >= needRows && cols >= needCols {
			return
		}
		fmt.Fprint(r.Out, ansiClear)
		fmt.Fprintf(r.Out, "Terminal too small. Please resize to at least %dx%d.\n", needCols, needRows)
		r.sleep(fitPollInterval)
	}
}

// Frame draws one search snapshot: home the cursor, rewrite the status
// line from the snapshot label, repaint the maze, then pace.
func (r *Renderer) Frame(c *Canvas, s solve.Snapshot) {
	fmt.Fprint(r.Out, ansiHome, ansiEraseLine, s.Label, "\n")
	fmt.Fprint(r.Out, c.Frame(s))
	r.sleep(r.Delay)
}

// ShowMaze clears the screen and draws the bare maze under a status line.
func (r *Renderer) ShowMaze(c *Canvas, status string) {
	fmt.Fprint(r.Out, ansiClear, status, "\n")
	fmt.Fprint(r.Out, c.Walls())
}

// ShowFinalPath repaints the maze with the solution starred. An empty path
// reports the failure on the status line instead.
func (r *Renderer) ShowFinalPath(c *Canvas, path []int) {
	fmt.Fprint(r.Out, ansiHome, ansiEraseLine)
	if len(path) == 0 {
		fmt.Fprint(r.Out, "No path to the exit.\n")
	} else {
		fmt.Fprint(r.Out, "FINAL (exit found) - displaying path\n")
	}
	fmt.Fprint(r.Out, c.FinalPath(path))
}

// HideCursor hides the terminal cursor for the animation's duration.
func (r *Renderer) HideCursor() { fmt.Fprint(r.Out, ansiHideCursor) }

// ShowCursor restores the terminal cursor.
func (r *Renderer) ShowCursor() { fmt.Fprint(r.Out, ansiShowCursor) }

// Clear wipes the screen and homes the cursor.
func (r *Renderer) Clear() { fmt.Fprint(r.Out, ansiClear) }

func (r *Renderer) sleep(d time.Duration) {
	if r.Sleep != nil {
		r.Sleep(d)
	} else {
		time.Sleep(d)
	}
}
