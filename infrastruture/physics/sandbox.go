package physics

import (
	"math/rand"

	"github.com/beka-birhanu/mazeball/layout"
)

const (
	minShapeSize = 20.0
	maxShapeSize = 50.0
)

// NewSandbox creates a width x height box with gravity and drops count random
// rectangles and circles into its upper half.
func NewSandbox(width, height float64, count int, rnd *rand.Rand, options ...Option) (*World, error) {
	options = append([]Option{WithGravity(0, defaultCollapseGravity)}, options...)
	w := NewWorld(options...)

	for _, b := range layout.Boundaries(width, height, maxShapeSize/2) {
		if err := w.Spawn(b); err != nil {
			return nil, err
		}
	}

	for i := 0; i < count; i++ {
		if err := w.Spawn(randomShape(width, height, rnd)); err != nil {
			return nil, err
		}
	}

	return w, nil
}

func randomShape(width, height float64, rnd *rand.Rand) layout.Body {
	size := minShapeSize + rnd.Float64()*(maxShapeSize-minShapeSize)
	center := layout.Vec{
		X: size + rnd.Float64()*(width-2*size),
		Y: size + rnd.Float64()*(height/2-size),
	}

	b := layout.Body{Role: RoleShape, Center: center, Size: layout.Vec{X: size, Y: size}}
	if rnd.Intn(2) == 0 {
		b.Shape = layout.ShapeCircle
		return b
	}

	b.Shape = layout.ShapeRect
	b.Size.Y = minShapeSize + rnd.Float64()*(maxShapeSize-minShapeSize)
	return b
}
