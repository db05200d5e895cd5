package physics

import (
	"math/rand"
	"testing"

	"github.com/beka-birhanu/mazeball/layout"
	"github.com/beka-birhanu/mazeball/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type zeroSource struct{}

func (zeroSource) Intn(int) int { return 0 }

func spawnMaze(t *testing.T, w *World, rows, cols int, opts ...layout.Option) *layout.Geometry {
	t.Helper()
	m, err := maze.Generate(rows, cols, zeroSource{}, maze.WithStart(maze.CellPosition{Row: 0, Col: 0}))
	require.NoError(t, err)
	g, err := layout.Project(m, 100, 100, 6, opts...)
	require.NoError(t, err)
	require.NoError(t, g.Instantiate(w))
	return g
}

func stepFor(w *World, steps int) {
	for i := 0; i < steps; i++ {
		w.Step(1.0 / 60.0)
	}
}

func TestSpawn(t *testing.T) {
	t.Run("Instantiates a projected maze", func(t *testing.T) {
		w := NewWorld()
		g := spawnMaze(t, w, 3, 3)

		require.Len(t, w.Entities(), len(g.Bodies()))
		for i, e := range w.Entities() {
			assert.Equal(t, g.Bodies()[i], e.Spec)
			assert.InDelta(t, e.Spec.Center.X, e.Position().X, 1e-9)
			assert.InDelta(t, e.Spec.Center.Y, e.Position().Y, 1e-9)
		}
	})

	t.Run("Rejects degenerate sizes", func(t *testing.T) {
		w := NewWorld()
		err := w.Spawn(layout.Body{Role: layout.RoleWall, Shape: layout.ShapeRect, Size: layout.Vec{X: 0, Y: 4}, Static: true})
		assert.ErrorIs(t, err, ErrInvalidSize)
		assert.Empty(t, w.Entities())
	})

	t.Run("Rejects unknown shapes", func(t *testing.T) {
		w := NewWorld()
		for _, static := range []bool{true, false} {
			err := w.Spawn(layout.Body{Role: RoleShape, Shape: "triangle", Size: layout.Vec{X: 4, Y: 4}, Static: static})
			assert.ErrorIs(t, err, ErrUnknownShape)
		}
		assert.Empty(t, w.Entities())
	})
}

func TestGoal(t *testing.T) {
	t.Run("Ball away from the goal", func(t *testing.T) {
		w := NewWorld()
		spawnMaze(t, w, 3, 3)
		stepFor(w, 10)
		assert.False(t, w.GoalReached())
	})

	t.Run("Ball on the goal fires the handler once", func(t *testing.T) {
		calls := 0
		w := NewWorld(WithGoalHandler(func() { calls++ }))
		spawnMaze(t, w, 1, 1)

		stepFor(w, 30)
		assert.True(t, w.GoalReached())
		assert.Equal(t, 1, calls)
		assert.False(t, w.Collapsed())
	})

	t.Run("Collapse on goal", func(t *testing.T) {
		w := NewWorld(WithCollapseOnGoal())
		spawnMaze(t, w, 2, 2, layout.WithBallCell(maze.CellPosition{Row: 1, Col: 1}))

		stepFor(w, 1)
		assert.True(t, w.GoalReached())
		assert.True(t, w.Collapsed())
		for _, e := range w.Entities() {
			if e.Spec.Role == layout.RoleWall {
				assert.False(t, e.Spec.Static)
			}
		}
	})
}

func TestCollapse(t *testing.T) {
	w := NewWorld(WithCollapseGravity(900))
	spawnMaze(t, w, 3, 3)

	before := map[*Entity]layout.Vec{}
	for _, e := range w.Entities() {
		before[e] = e.Position()
	}

	w.Collapse()
	w.Collapse()
	stepFor(w, 90)

	fell := false
	for _, e := range w.Entities() {
		switch e.Spec.Role {
		case layout.RoleBoundary, layout.RoleGoal:
			assert.True(t, e.Spec.Static)
			assert.Equal(t, before[e], e.Position(), "%s moved", e.Spec.Role)
		case layout.RoleWall:
			assert.False(t, e.Spec.Static)
			if e.Position().Y > before[e].Y+1 {
				fell = true
			}
		}
	}
	assert.True(t, fell, "no wall fell after collapse")
}

func TestSandbox(t *testing.T) {
	w, err := NewSandbox(800, 600, 25, rand.New(rand.NewSource(4)))
	require.NoError(t, err)
	require.Len(t, w.Entities(), 4+25)

	start := map[*Entity]float64{}
	for _, e := range w.Entities() {
		start[e] = e.Position().Y
		if e.Spec.Role == RoleShape {
			assert.False(t, e.Spec.Static)
			assert.Less(t, e.Position().Y, 300.0+maxShapeSize)
		}
	}

	stepFor(w, 60)

	moved := 0
	for _, e := range w.Entities() {
		if e.Spec.Role == RoleShape && e.Position().Y > start[e] {
			moved++
		}
	}
	assert.Positive(t, moved)
}
