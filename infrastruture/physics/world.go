// Package physics instantiates projected maze geometry in a Chipmunk2D space.
package physics

import (
	"errors"
	"fmt"
	"math"

	"github.com/beka-birhanu/mazeball/layout"
	"github.com/jakecoffman/cp"
)

// RoleShape tags the loose bodies dropped into a sandbox world.
const RoleShape layout.Role = "shape"

const (
	ballCollision cp.CollisionType = iota + 1
	goalCollision

	defaultCollapseGravity = 600.0
	defaultDensity         = 0.001 // Mass per unit area of dynamic bodies
	defaultFriction        = 0.6
	defaultElasticity      = 0.2
)

var (
	ErrUnknownShape = errors.New("physics: unknown body shape")
	ErrInvalidSize  = errors.New("physics: body size must be positive")
)

// Option configures a World.
type Option func(*World)

// WithGravity sets the initial gravity. The default is no gravity.
func WithGravity(x, y float64) Option {
	return func(w *World) {
		w.space.SetGravity(cp.Vector{X: x, Y: y})
	}
}

// WithCollapseGravity sets the gravity applied once the maze collapses.
func WithCollapseGravity(y float64) Option {
	return func(w *World) {
		w.collapseGravity = y
	}
}

// WithGoalHandler registers a function called once, when the ball first touches the goal.
func WithGoalHandler(handler func()) Option {
	return func(w *World) {
		w.onGoal = handler
	}
}

// WithCollapseOnGoal collapses the maze walls when the ball reaches the goal.
func WithCollapseOnGoal() Option {
	return func(w *World) {
		w.collapseOnGoal = true
	}
}

// Entity is a spawned body together with the geometry it was spawned from.
type Entity struct {
	Spec  layout.Body // Geometry the body was spawned from
	body  *cp.Body
	shape *cp.Shape
}

// Position returns the current center of the entity.
func (e *Entity) Position() layout.Vec {
	p := e.body.Position()
	return layout.Vec{X: p.X, Y: p.Y}
}

// Angle returns the rotation of the entity in radians.
func (e *Entity) Angle() float64 {
	return e.body.Angle()
}

// World is a simulated play-field. It implements layout.Spawner.
type World struct {
	space           *cp.Space
	entities        []*Entity
	collapseGravity float64
	collapseOnGoal  bool
	collapsed       bool
	goalReached     bool
	goalPending     bool
	onGoal          func()
}

// NewWorld creates an empty world.
func NewWorld(options ...Option) *World {
	w := &World{
		space:           cp.NewSpace(),
		collapseGravity: defaultCollapseGravity,
	}
	w.space.Iterations = 20

	for _, opt := range options {
		opt(w)
	}

	handler := w.space.NewCollisionHandler(ballCollision, goalCollision)
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		if !w.goalReached {
			w.goalPending = true
		}
		return true
	}

	return w
}

// Spawn adds b to the space. Static bodies never move until the world collapses.
func (w *World) Spawn(b layout.Body) error {
	if !(b.Size.X > 0) || !(b.Size.Y > 0) {
		return fmt.Errorf("%w: %s %gx%g", ErrInvalidSize, b.Role, b.Size.X, b.Size.Y)
	}

	body, shape, err := w.newBody(b)
	if err != nil {
		return err
	}

	w.entities = append(w.entities, &Entity{Spec: b, body: body, shape: shape})
	return nil
}

// newBody builds and adds the Chipmunk body and shape for b.
func (w *World) newBody(b layout.Body) (*cp.Body, *cp.Shape, error) {
	var body *cp.Body
	if b.Static {
		body = cp.NewStaticBody()
	} else {
		mass := math.Max(b.Size.X*b.Size.Y*defaultDensity, 0.1)
		switch b.Shape {
		case layout.ShapeRect:
			body = cp.NewBody(mass, cp.MomentForBox(mass, b.Size.X, b.Size.Y))
		case layout.ShapeCircle:
			body = cp.NewBody(mass, cp.MomentForCircle(mass, 0, b.Size.X/2, cp.Vector{}))
		default:
			return nil, nil, fmt.Errorf("%w: %q", ErrUnknownShape, b.Shape)
		}
	}
	body.SetPosition(cp.Vector{X: b.Center.X, Y: b.Center.Y})

	var shape *cp.Shape
	switch b.Shape {
	case layout.ShapeRect:
		shape = cp.NewBox(body, b.Size.X, b.Size.Y, 0)
	case layout.ShapeCircle:
		shape = cp.NewCircle(body, b.Size.X/2, cp.Vector{})
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownShape, b.Shape)
	}
	shape.SetFriction(defaultFriction)
	shape.SetElasticity(defaultElasticity)

	switch b.Role {
	case layout.RoleGoal:
		shape.SetSensor(true)
		shape.SetCollisionType(goalCollision)
	case layout.RoleStart:
		shape.SetCollisionType(ballCollision)
	}

	w.space.AddBody(body)
	w.space.AddShape(shape)
	return body, shape, nil
}

// Step advances the simulation by dt seconds.
func (w *World) Step(dt float64) {
	w.space.Step(dt)

	if !w.goalPending {
		return
	}
	w.goalPending = false
	w.goalReached = true
	if w.onGoal != nil {
		w.onGoal()
	}
	if w.collapseOnGoal {
		w.Collapse()
	}
}

// Collapse turns every maze wall into a dynamic body and switches on gravity.
// Boundaries and the goal stay in place. Calling it again has no effect.
func (w *World) Collapse() {
	if w.collapsed {
		return
	}
	w.collapsed = true
	w.space.SetGravity(cp.Vector{X: 0, Y: w.collapseGravity})

	for _, e := range w.entities {
		if e.Spec.Role != layout.RoleWall || !e.Spec.Static {
			continue
		}

		w.space.RemoveShape(e.shape)
		w.space.RemoveBody(e.body)

		e.Spec.Static = false
		// newBody only fails on unknown shapes, and walls are always rects.
		e.body, e.shape, _ = w.newBody(e.Spec)
	}
}

// GoalReached reports whether the ball has touched the goal.
func (w *World) GoalReached() bool { return w.goalReached }

// Collapsed reports whether the walls have been released.
func (w *World) Collapsed() bool { return w.collapsed }

// Entities returns the spawned entities in spawn order.
func (w *World) Entities() []*Entity { return w.entities }
