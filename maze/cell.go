package maze

// Direction names a move from a cell to one of its four orthogonal neighbors.
type Direction string

// Directions a carve or a move may take.
const (
	Up    Direction = "up"
	Right Direction = "right"
	Down  Direction = "down"
	Left  Direction = "left"
)

// deltas maps each direction to its row/column offset.
var deltas = map[Direction]CellPosition{
	Up:    {Row: -1, Col: 0},
	Right: {Row: 0, Col: 1},
	Down:  {Row: 1, Col: 0},
	Left:  {Row: 0, Col: -1},
}

// candidateOrder is the unshuffled neighbor order of a visit.
var candidateOrder = [4]Direction{Up, Right, Down, Left}

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	Row int `json:"row"` // Row index of the cell
	Col int `json:"col"` // Column index of the cell
}

// Step returns the position one cell away in the given direction.
func (cp CellPosition) Step(d Direction) CellPosition {
	delta := deltas[d]
	return CellPosition{Row: cp.Row + delta.Row, Col: cp.Col + delta.Col}
}

// Move represents a movement from one cell to another in a specific direction.
type Move struct {
	From      CellPosition // Starting cell
	To        CellPosition // Destination cell
	Direction Direction    // Direction of the move
}

// Carve is reported for every wall opened during generation.
type Carve = Move
