package layout

// Role tags a body with its purpose in the play-field.
type Role string

const (
	RoleWall     Role = "wall"
	RoleBoundary Role = "boundary"
	RoleGoal     Role = "goal"
	RoleStart    Role = "start-marker"
)

// Shape is the collision shape of a body.
type Shape string

const (
	ShapeRect   Shape = "rect"
	ShapeCircle Shape = "circle"
)

// Vec is a point or an extent in play-field coordinates. Y grows downward.
type Vec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Body is one positioned shape. For circles Size holds the diameter on both axes.
type Body struct {
	Role   Role  `json:"role"`
	Shape  Shape `json:"shape"`
	Center Vec   `json:"center"`
	Size   Vec   `json:"size"`
	Static bool  `json:"static"`
}

// Geometry is the projected play-field.
type Geometry struct {
	Width      float64 `json:"width"`      // Play-field width
	Height     float64 `json:"height"`     // Play-field height
	Boundaries []Body  `json:"boundaries"` // Top, bottom, left, right
	Walls      []Body  `json:"walls"`      // One per closed internal wall
	Goal       Body    `json:"goal"`       // Goal area in the bottom-right cell
	Start      Body    `json:"start"`      // Ball marker
}

// Spawner instantiates bodies in a simulated world.
type Spawner interface {
	// Spawn adds a static or dynamic body at b.Center with b.Size, tagged with b.Role.
	Spawn(b Body) error
}

// Bodies returns every body of the geometry: boundaries, walls, goal, then the start marker.
func (g *Geometry) Bodies() []Body {
	bodies := make([]Body, 0, len(g.Boundaries)+len(g.Walls)+2)
	bodies = append(bodies, g.Boundaries...)
	bodies = append(bodies, g.Walls...)
	return append(bodies, g.Goal, g.Start)
}

// Instantiate spawns every body of the geometry, stopping at the first error.
func (g *Geometry) Instantiate(s Spawner) error {
	for _, b := range g.Bodies() {
		if err := s.Spawn(b); err != nil {
			return err
		}
	}
	return nil
}
