// Command lvlmaze generates a random perfect maze in the terminal and
// animates solving it with DFS, BFS, Dijkstra, or A*.
//
// Usage:
//
//	lvlmaze [-width W] [-height H] [-seed S]
//
// The program shows the generated maze, lets you pick an algorithm and an
// animation speed (or skip the animation entirely), replays frames as the
// search runs, and finishes by highlighting the solution path. The same
// maze can be re-solved with a different algorithm, or a new one generated.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvlmaze/maze"
	"github.com/katalvlaran/lvlmaze/render"
	"github.com/katalvlaran/lvlmaze/solve"
)

// finalPathPause keeps the solved maze on screen before the next menu.
const finalPathPause = 2 * time.Second

func main() {
	width := flag.Int("width", 30, "maze width in cells")
	height := flag.Int("height", 15, "maze height in cells")
	seed := flag.Int64("seed", 0, "RNG seed for the first maze; 0 draws from the clock")
	flag.Parse()

	r := render.New()
	in := bufio.NewScanner(os.Stdin)

	r.HideCursor()
	defer r.ShowCursor()

	firstSeed := *seed
	for {
		m, err := maze.New(*width, *height, maze.WithSeed(firstSeed))
		if err != nil {
			r.ShowCursor()
			log.WithError(err).Fatal("maze generation failed")
		}
		firstSeed = 0 // regenerations draw fresh mazes

		c := render.NewCanvas(m)
		r.WaitForFit(c)
		r.ShowMaze(c, "EMPTY MAZE - pick an algorithm to solve it")
		fmt.Println("\nPress Enter to continue...")
		readLine(in)

		if !solveLoop(r, in, m, c, *width, *height) {
			return
		}
	}
}

// solveLoop runs algorithms on one maze until the user asks for a new maze
// (returns true) or quits (returns false).
func solveLoop(r *render.Renderer, in *bufio.Scanner, m *maze.Maze, c *render.Canvas, w, h int) bool {
	for {
		r.Clear()
		fmt.Printf("Maze %dx%d generated\n", w, h)
		fmt.Println("1) DFS   2) BFS   3) Dijkstra   4) A*")
		fmt.Println("q) Quit")
		fmt.Print("> ")

		choice := strings.TrimSpace(readLine(in))
		algo, ok := pickAlgorithm(choice)
		if !ok {
			if choice == "q" || choice == "Q" {
				return false
			}
			continue
		}

		r.Clear()
		fmt.Print(render.Legend())
		fmt.Println("\nPress Enter to continue...")
		readLine(in)

		r.Clear()
		fmt.Print("Press 's' (then Enter) to skip animation, or just press Enter to set speed: ")
		skip := strings.HasPrefix(strings.ToLower(strings.TrimSpace(readLine(in))), "s")
		if !skip {
			r.Delay = render.DelayForSpeed(promptSpeed(r, in))
		}

		runAlgorithm(r, m, c, algo, !skip)

		fmt.Println("\nPress Enter to continue...")
		readLine(in)

		switch nextStep(r, in) {
		case nextSameMaze:
			continue
		case nextNewMaze:
			return true
		default:
			return false
		}
	}
}

// runAlgorithm solves the maze, streaming frames when animate is set, and
// leaves the final path (or the no-path notice) on screen.
func runAlgorithm(r *render.Renderer, m *maze.Maze, c *render.Canvas, algo solve.Algorithm, animate bool) {
	var opts []solve.Option
	if animate {
		r.WaitForFit(c)
		r.Clear()
		opts = append(opts, solve.WithOnStep(func(s solve.Snapshot) {
			r.Frame(c, s)
		}))
	}

	res, err := solve.Solve(m, algo, opts...)
	if err != nil {
		log.WithError(err).WithField("algorithm", algo.String()).Error("solve failed")
		return
	}

	r.WaitForFit(c)
	r.Clear()
	r.ShowFinalPath(c, res.Path)
	time.Sleep(finalPathPause)
}

// pickAlgorithm maps a menu choice to its algorithm.
func pickAlgorithm(choice string) (solve.Algorithm, bool) {
	switch choice {
	case "1":
		return solve.DFS, true
	case "2":
		return solve.BFS, true
	case "3":
		return solve.Dijkstra, true
	case "4":
		return solve.AStar, true
	default:
		return 0, false
	}
}

// promptSpeed asks for an animation speed level until it gets one in 1..10.
func promptSpeed(r *render.Renderer, in *bufio.Scanner) int {
	for {
		r.Clear()
		fmt.Print("Choose speed (1=slow ... 10=fast): ")
		line := strings.TrimSpace(readLine(in))
		if line == "q" || line == "Q" {
			return 0 // falls back to the default delay
		}
		var level int
		if _, err := fmt.Sscanf(line, "%d", &level); err != nil {
			continue
		}
		if level >= 1 && level <= 10 {
			return level
		}
	}
}

// nextAction is the post-solve menu outcome.
type nextAction int

const (
	nextSameMaze nextAction = iota
	nextNewMaze
	nextQuit
)

// nextStep asks what to do after a solve: rerun on the same maze,
// generate a new one, or quit.
func nextStep(r *render.Renderer, in *bufio.Scanner) nextAction {
	for {
		r.Clear()
		fmt.Println("Choose next step:")
		fmt.Println("1) Run another algorithm on SAME maze")
		fmt.Println("2) Generate a NEW maze")
		fmt.Println("q) Quit")
		fmt.Print("> ")

		switch strings.TrimSpace(readLine(in)) {
		case "1":
			return nextSameMaze
		case "2":
			return nextNewMaze
		case "q", "Q":
			return nextQuit
		}
	}
}

// readLine returns the next input line. EOF reads as "q" so closed input
// quits every menu instead of spinning.
func readLine(in *bufio.Scanner) string {
	if in.Scan() {
		return in.Text()
	}

	return "q"
}
