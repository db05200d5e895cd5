package maze

import (
	"fmt"
	"math/rand"
)

// RandomSource supplies the random draws used by the generator.
// *math/rand.Rand satisfies it.
type RandomSource interface {
	// Intn returns a uniformly distributed int in [0, n).
	Intn(n int) int
}

// Option configures a single generation.
type Option func(*generator)

// WithStart fixes the cell the carve starts from instead of drawing it at random.
func WithStart(pos CellPosition) Option {
	return func(g *generator) {
		g.start = &pos
	}
}

// WithCarveHook registers a function called every time a wall is opened, in carve order.
func WithCarveHook(hook func(Carve)) Option {
	return func(g *generator) {
		g.onCarve = hook
	}
}

// globalSource adapts the process-wide math/rand source to RandomSource.
type globalSource struct{}

func (globalSource) Intn(n int) int { return rand.Intn(n) }

// generator is one generation session. It owns the visited grid and both wall matrices.
type generator struct {
	rows, cols  int
	rnd         RandomSource
	start       *CellPosition
	onCarve     func(Carve)
	visited     [][]bool
	horizontals [][]bool
	verticals   [][]bool
}

// frame is one pending visit on the carve stack.
type frame struct {
	pos   CellPosition
	moves [4]Move
	next  int // index of the next candidate move to try
}

// Generate builds a rows x cols perfect maze with a randomized depth-first carve.
//
// The carve starts from a uniformly random cell unless WithStart is given. A nil
// source falls back to the process-wide math/rand source. Given a source that
// replays the same draws, Generate returns identical mazes.
func Generate(rows, cols int, rnd RandomSource, opts ...Option) (*Maze, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimension, rows, cols)
	}

	if rnd == nil {
		rnd = globalSource{}
	}

	g := &generator{
		rows: rows,
		cols: cols,
		rnd:  rnd,
	}
	for _, opt := range opts {
		opt(g)
	}

	var start CellPosition
	if g.start != nil {
		start = *g.start
		if !g.inBound(start) {
			return nil, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrInvalidStart, start.Row, start.Col, rows, cols)
		}
	} else {
		start = CellPosition{Row: rnd.Intn(rows)}
		start.Col = rnd.Intn(cols)
	}

	g.visited = newMatrix(rows, cols)
	g.horizontals = newMatrix(rows-1, cols)
	g.verticals = newMatrix(rows, cols-1)

	g.carve(start)

	return &Maze{
		rows:        rows,
		cols:        cols,
		horizontals: g.horizontals,
		verticals:   g.verticals,
		start:       start,
	}, nil
}

// carve performs the depth-first traversal from start with an explicit stack.
// Frames are expanded in the same order a recursive visit would expand them,
// so the random draws and the resulting maze match the recursive formulation.
func (g *generator) carve(start CellPosition) {
	stack := []frame{g.enter(start)}

	for len(stack) > 0 {
		top := len(stack) - 1
		if stack[top].next == len(stack[top].moves) {
			stack = stack[:top]
			continue
		}

		move := stack[top].moves[stack[top].next]
		stack[top].next++

		if !g.inBound(move.To) || g.visited[move.To.Row][move.To.Col] {
			continue
		}

		g.openWall(move)
		stack = append(stack, g.enter(move.To))
	}
}

// enter marks pos visited and returns its frame with shuffled candidate moves.
func (g *generator) enter(pos CellPosition) frame {
	g.visited[pos.Row][pos.Col] = true

	f := frame{pos: pos}
	for i, d := range candidateOrder {
		f.moves[i] = Move{From: pos, To: pos.Step(d), Direction: d}
	}
	g.shuffle(f.moves[:])
	return f
}

// shuffle permutes moves with Fisher-Yates from the last index down to 1.
// The swap partner of index i is i - Intn(i+1), uniform over [0, i]; a zero draw keeps the element in place.
func (g *generator) shuffle(moves []Move) {
	for i := len(moves) - 1; i > 0; i-- {
		j := i - g.rnd.Intn(i+1)
		moves[i], moves[j] = moves[j], moves[i]
	}
}

// openWall removes the wall crossed by move.
func (g *generator) openWall(move Move) {
	r, c := move.From.Row, move.From.Col
	switch move.Direction {
	case Left:
		g.verticals[r][c-1] = true
	case Right:
		g.verticals[r][c] = true
	case Up:
		g.horizontals[r-1][c] = true
	case Down:
		g.horizontals[r][c] = true
	}

	if g.onCarve != nil {
		g.onCarve(move)
	}
}

func (g *generator) inBound(pos CellPosition) bool {
	return pos.Row >= 0 && pos.Row < g.rows && pos.Col >= 0 && pos.Col < g.cols
}
