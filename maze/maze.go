/*
Package maze provides tools for creating and querying rectangular mazes.

A Maze records which internal walls are open. horizontals[r][c] is the wall between cell (r, c)
and cell (r+1, c); verticals[r][c] is the wall between cell (r, c) and cell (r, c+1). A true entry
means the wall is open (passable).

Mazes are generated with a randomized depth-first carve, which yields a perfect maze: every cell is
reachable from every other cell along exactly one path. A Maze is immutable once generated.
*/
package maze

import (
	"encoding/json"
	"strings"
)

// Maze is a generated rectangular maze. The goal is always the bottom-right cell.
type Maze struct {
	rows        int      // Number of rows
	cols        int      // Number of columns
	horizontals [][]bool // (rows-1) x cols, true when the wall below (r, c) is open
	verticals   [][]bool // rows x (cols-1), true when the wall right of (r, c) is open
	start       CellPosition
}

// Rows returns the number of rows of the maze.
func (m *Maze) Rows() int { return m.rows }

// Cols returns the number of columns of the maze.
func (m *Maze) Cols() int { return m.cols }

// Start returns the cell the carve started from.
func (m *Maze) Start() CellPosition { return m.start }

// Goal returns the bottom-right cell.
func (m *Maze) Goal() CellPosition {
	return CellPosition{Row: m.rows - 1, Col: m.cols - 1}
}

// InBound reports whether (row, col) lies inside the grid.
func (m *Maze) InBound(row, col int) bool {
	return row >= 0 && row < m.rows && col >= 0 && col < m.cols
}

// IsHorizontalOpen reports whether the wall between (row, col) and (row+1, col) is open.
// Out-of-range entries are reported closed.
func (m *Maze) IsHorizontalOpen(row, col int) bool {
	if row < 0 || row >= m.rows-1 || col < 0 || col >= m.cols {
		return false
	}
	return m.horizontals[row][col]
}

// IsVerticalOpen reports whether the wall between (row, col) and (row, col+1) is open.
// Out-of-range entries are reported closed.
func (m *Maze) IsVerticalOpen(row, col int) bool {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols-1 {
		return false
	}
	return m.verticals[row][col]
}

// Horizontals returns a deep copy of the horizontal wall matrix.
func (m *Maze) Horizontals() [][]bool { return copyMatrix(m.horizontals) }

// Verticals returns a deep copy of the vertical wall matrix.
func (m *Maze) Verticals() [][]bool { return copyMatrix(m.verticals) }

// OpenWalls counts the open entries across both wall matrices.
func (m *Maze) OpenWalls() int {
	count := 0
	for _, matrix := range [][][]bool{m.horizontals, m.verticals} {
		for _, row := range matrix {
			for _, open := range row {
				if open {
					count++
				}
			}
		}
	}
	return count
}

// CanMove reports whether a step from the given cell in direction d crosses an open wall.
func (m *Maze) CanMove(from CellPosition, d Direction) bool {
	if !m.InBound(from.Row, from.Col) {
		return false
	}

	switch d {
	case Up:
		return m.IsHorizontalOpen(from.Row-1, from.Col)
	case Down:
		return m.IsHorizontalOpen(from.Row, from.Col)
	case Left:
		return m.IsVerticalOpen(from.Row, from.Col-1)
	case Right:
		return m.IsVerticalOpen(from.Row, from.Col)
	default:
		return false
	}
}

// Neighbors returns the moves leading out of pos through open walls, in up, right, down, left order.
func (m *Maze) Neighbors(pos CellPosition) []Move {
	var result []Move
	for _, d := range candidateOrder {
		if m.CanMove(pos, d) {
			result = append(result, Move{From: pos, To: pos.Step(d), Direction: d})
		}
	}
	return result
}

// Solve returns the path of cells from the start cell to the goal, both included.
// In a perfect maze this path is unique.
func (m *Maze) Solve() []CellPosition {
	return m.PathBetween(m.start, m.Goal())
}

// PathBetween finds the path between two cells with a breadth-first search over open walls.
// It returns nil when either cell is out of bounds.
func (m *Maze) PathBetween(from, to CellPosition) []CellPosition {
	if !m.InBound(from.Row, from.Col) || !m.InBound(to.Row, to.Col) {
		return nil
	}

	index := func(p CellPosition) int { return p.Row*m.cols + p.Col }
	prev := make([]int, m.rows*m.cols)
	for i := range prev {
		prev[i] = -1
	}
	prev[index(from)] = index(from)

	queue := []CellPosition{from}
	for qi := 0; qi < len(queue); qi++ {
		cell := queue[qi]
		if cell == to {
			break
		}
		for _, mv := range m.Neighbors(cell) {
			if prev[index(mv.To)] >= 0 {
				continue
			}
			prev[index(mv.To)] = index(cell)
			queue = append(queue, mv.To)
		}
	}

	if prev[index(to)] < 0 {
		return nil
	}

	var path []CellPosition
	for at := index(to); ; at = prev[at] {
		path = append(path, CellPosition{Row: at / m.cols, Col: at % m.cols})
		if at == index(from) {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// String provides a textual representation of the maze. S marks the start and G the goal.
func (m *Maze) String() string {
	var output strings.Builder

	// Top boundary
	output.WriteString("+" + strings.Repeat("---+", m.cols) + "\n")

	for row := 0; row < m.rows; row++ {
		// Cell rows
		cellRow := "|"
		for col := 0; col < m.cols; col++ {
			pos := CellPosition{Row: row, Col: col}
			switch pos {
			case m.start:
				cellRow += " S "
			case m.Goal():
				cellRow += " G "
			default:
				cellRow += "   "
			}

			if m.IsVerticalOpen(row, col) {
				cellRow += " "
			} else {
				cellRow += "|"
			}
		}
		output.WriteString(cellRow + "\n")

		// Wall rows
		wallRow := "+"
		for col := 0; col < m.cols; col++ {
			if m.IsHorizontalOpen(row, col) {
				wallRow += "   +"
			} else {
				wallRow += "---+"
			}
		}
		output.WriteString(wallRow + "\n")
	}

	return output.String()
}

// mazeJSON is the wire form of a Maze.
type mazeJSON struct {
	Rows        int          `json:"rows"`
	Cols        int          `json:"cols"`
	Horizontals [][]bool     `json:"horizontals"`
	Verticals   [][]bool     `json:"verticals"`
	Start       CellPosition `json:"start"`
	Goal        CellPosition `json:"goal"`
}

// MarshalJSON encodes the maze dimensions, wall matrices, start and goal.
func (m *Maze) MarshalJSON() ([]byte, error) {
	return json.Marshal(mazeJSON{
		Rows:        m.rows,
		Cols:        m.cols,
		Horizontals: m.horizontals,
		Verticals:   m.verticals,
		Start:       m.start,
		Goal:        m.Goal(),
	})
}

// newMatrix allocates a rows x cols matrix whose rows never share storage.
func newMatrix(rows, cols int) [][]bool {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	matrix := make([][]bool, rows)
	for i := range matrix {
		matrix[i] = make([]bool, cols)
	}
	return matrix
}

func copyMatrix(src [][]bool) [][]bool {
	dst := make([][]bool, len(src))
	for i := range src {
		dst[i] = make([]bool, len(src[i]))
		copy(dst[i], src[i])
	}
	return dst
}
