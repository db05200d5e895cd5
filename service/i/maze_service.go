package i

import (
	"context"

	dmn "github.com/beka-birhanu/mazeball/domain"
	"github.com/beka-birhanu/mazeball/layout"
	"github.com/google/uuid"
)

// LayoutParams are the physical sizes a maze is projected with.
type LayoutParams struct {
	UnitWidth     float64 // Width of one cell
	UnitHeight    float64 // Height of one cell
	WallThickness float64 // Thickness of a wall segment
}

// MazeService creates maze sessions and serves their projections.
type MazeService interface {
	// Create generates a maze from spec and persists its session.
	Create(ctx context.Context, spec dmn.MazeSpec) (*dmn.MazeSession, error)

	// Get loads a session and regenerates its maze.
	Get(ctx context.Context, id uuid.UUID) (*dmn.MazeSession, error)

	// Layout projects the maze of a session, serving repeated requests from the cache.
	Layout(ctx context.Context, id uuid.UUID, params LayoutParams) (*layout.Geometry, error)
}
