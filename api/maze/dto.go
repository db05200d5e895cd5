// Package mazeapi exposes maze sessions over HTTP.
package mazeapi

import (
	"time"

	dmn "github.com/beka-birhanu/mazeball/domain"
	"github.com/beka-birhanu/mazeball/maze"
)

// CreateMazeRequest represents a request to generate a new maze.
type CreateMazeRequest struct {
	Rows  int                `json:"rows" binding:"required"`
	Cols  int                `json:"cols" binding:"required"`
	Seed  *int64             `json:"seed"`
	Start *maze.CellPosition `json:"start"`
}

// LayoutQuery holds the optional projection sizes of a layout request.
type LayoutQuery struct {
	UnitWidth     float64 `form:"unit_width"`
	UnitHeight    float64 `form:"unit_height"`
	WallThickness float64 `form:"wall_thickness"`
}

// MazeResponse represents a maze session with its regenerated walls.
type MazeResponse struct {
	ID          string            `json:"id"`
	Rows        int               `json:"rows"`
	Cols        int               `json:"cols"`
	Seed        int64             `json:"seed"`
	Start       maze.CellPosition `json:"start"`
	Goal        maze.CellPosition `json:"goal"`
	Horizontals [][]bool          `json:"horizontals"`
	Verticals   [][]bool          `json:"verticals"`
	CreatedAt   time.Time         `json:"created_at"`
}

func newMazeResponse(s *dmn.MazeSession) *MazeResponse {
	return &MazeResponse{
		ID:          s.ID.String(),
		Rows:        s.Rows,
		Cols:        s.Cols,
		Seed:        s.Seed,
		Start:       s.Maze.Start(),
		Goal:        s.Maze.Goal(),
		Horizontals: s.Maze.Horizontals(),
		Verticals:   s.Maze.Verticals(),
		CreatedAt:   s.CreatedAt,
	}
}
