/*
Package layout projects a generated maze into 2-D physical geometry.

Every closed wall becomes an axis-aligned rectangle positioned in continuous coordinates; open
walls produce nothing. The play-field is enclosed by four boundary rectangles, the goal sits in
the bottom-right cell and a circular start marker sits in the ball cell. Projection is a pure
function of the maze and the unit sizes.
*/
package layout

import (
	"errors"
	"fmt"
	"math"

	"github.com/beka-birhanu/mazeball/maze"
)

const (
	goalRatio        = 0.75 // Goal size as a fraction of one cell
	defaultBallRatio = 0.25 // Ball radius as a fraction of the smaller unit length
)

var (
	ErrNilMaze         = errors.New("layout: maze is nil")
	ErrInvalidUnit     = errors.New("layout: unit sizes and wall thickness must be positive")
	ErrInvalidBallCell = errors.New("layout: ball cell is out of bounds")
)

// Option configures a projection.
type Option func(*projector)

// WithBallCell places the start marker in the given cell instead of the maze's start cell.
func WithBallCell(pos maze.CellPosition) Option {
	return func(p *projector) {
		p.ballCell = &pos
	}
}

// WithBallRatio sets the ball radius as a fraction of min(unitWidth, unitHeight).
func WithBallRatio(ratio float64) Option {
	return func(p *projector) {
		p.ballRatio = ratio
	}
}

// WithBoundaryThickness sets the thickness of the four enclosing walls.
func WithBoundaryThickness(thickness float64) Option {
	return func(p *projector) {
		p.boundaryThickness = thickness
	}
}

type projector struct {
	unitWidth         float64
	unitHeight        float64
	wallThickness     float64
	boundaryThickness float64
	ballRatio         float64
	ballCell          *maze.CellPosition
}

// Project converts m into positioned bodies.
//
// A closed horizontal wall (r, c) yields a rect centered at (c*uw + uw/2, r*uh + uh) sized
// (uw, wallThickness); a closed vertical wall (r, c) yields a rect centered at
// (c*uw + uw, r*uh + uh/2) sized (wallThickness, uh).
func Project(m *maze.Maze, unitWidth, unitHeight, wallThickness float64, opts ...Option) (*Geometry, error) {
	if m == nil {
		return nil, ErrNilMaze
	}

	p := &projector{
		unitWidth:         unitWidth,
		unitHeight:        unitHeight,
		wallThickness:     wallThickness,
		boundaryThickness: wallThickness,
		ballRatio:         defaultBallRatio,
	}
	for _, opt := range opts {
		opt(p)
	}

	if !positive(unitWidth, unitHeight, wallThickness, p.boundaryThickness, p.ballRatio) {
		return nil, fmt.Errorf("%w: unit %gx%g, wall %g, boundary %g, ball ratio %g",
			ErrInvalidUnit, unitWidth, unitHeight, wallThickness, p.boundaryThickness, p.ballRatio)
	}

	ball := m.Start()
	if p.ballCell != nil {
		ball = *p.ballCell
	}
	if !m.InBound(ball.Row, ball.Col) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrInvalidBallCell, ball.Row, ball.Col)
	}

	g := &Geometry{
		Width:  float64(m.Cols()) * unitWidth,
		Height: float64(m.Rows()) * unitHeight,
	}
	g.Boundaries = p.boundaries(g.Width, g.Height)
	g.Walls = p.walls(m)
	g.Goal = p.goal(m.Goal())
	g.Start = p.startMarker(ball)

	return g, nil
}

func (p *projector) walls(m *maze.Maze) []Body {
	var walls []Body
	uw, uh := p.unitWidth, p.unitHeight

	for row := 0; row < m.Rows()-1; row++ {
		for col := 0; col < m.Cols(); col++ {
			if m.IsHorizontalOpen(row, col) {
				continue
			}
			walls = append(walls, Body{
				Role:   RoleWall,
				Shape:  ShapeRect,
				Center: Vec{X: float64(col)*uw + uw/2, Y: float64(row)*uh + uh},
				Size:   Vec{X: uw, Y: p.wallThickness},
				Static: true,
			})
		}
	}

	for row := 0; row < m.Rows(); row++ {
		for col := 0; col < m.Cols()-1; col++ {
			if m.IsVerticalOpen(row, col) {
				continue
			}
			walls = append(walls, Body{
				Role:   RoleWall,
				Shape:  ShapeRect,
				Center: Vec{X: float64(col)*uw + uw, Y: float64(row)*uh + uh/2},
				Size:   Vec{X: p.wallThickness, Y: uh},
				Static: true,
			})
		}
	}

	return walls
}

func (p *projector) boundaries(width, height float64) []Body {
	return Boundaries(width, height, p.boundaryThickness)
}

// Boundaries returns the top, bottom, left and right walls of a width x height field,
// centered on the field edges.
func Boundaries(width, height, thickness float64) []Body {
	rect := func(x, y, w, h float64) Body {
		return Body{Role: RoleBoundary, Shape: ShapeRect, Center: Vec{X: x, Y: y}, Size: Vec{X: w, Y: h}, Static: true}
	}
	return []Body{
		rect(width/2, 0, width, thickness),
		rect(width/2, height, width, thickness),
		rect(0, height/2, thickness, height),
		rect(width, height/2, thickness, height),
	}
}

func (p *projector) goal(cell maze.CellPosition) Body {
	return Body{
		Role:   RoleGoal,
		Shape:  ShapeRect,
		Center: p.cellCenter(cell),
		Size:   Vec{X: goalRatio * p.unitWidth, Y: goalRatio * p.unitHeight},
		Static: true,
	}
}

func (p *projector) startMarker(cell maze.CellPosition) Body {
	diameter := 2 * p.ballRatio * math.Min(p.unitWidth, p.unitHeight)
	return Body{
		Role:   RoleStart,
		Shape:  ShapeCircle,
		Center: p.cellCenter(cell),
		Size:   Vec{X: diameter, Y: diameter},
		Static: false,
	}
}

func (p *projector) cellCenter(cell maze.CellPosition) Vec {
	return Vec{
		X: float64(cell.Col)*p.unitWidth + p.unitWidth/2,
		Y: float64(cell.Row)*p.unitHeight + p.unitHeight/2,
	}
}

func positive(values ...float64) bool {
	for _, v := range values {
		if !(v > 0) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
