package i

import (
	"context"

	dmn "github.com/beka-birhanu/mazeball/domain"
	"github.com/google/uuid"
)

// MazeRepo defines the interface for maze session persistence operations.
type MazeRepo interface {
	// Save inserts or updates a maze session in the repository.
	Save(ctx context.Context, session *dmn.MazeSession) error

	// ByID retrieves a maze session by its unique ID.
	// Returns dmn.ErrMazeNotFound if no session has that ID.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeSession, error)
}
