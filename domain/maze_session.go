// Package domain holds the persisted entities of the maze service.
package domain

import (
	"errors"
	"math/rand"
	"time"

	"github.com/beka-birhanu/mazeball/maze"
	"github.com/google/uuid"
)

var (
	ErrMazeNotFound = errors.New("maze not found")
	ErrMazeTooLarge = errors.New("maze dimensions exceed the configured maximum")
)

// MazeSpec describes a maze to create. Nil fields are chosen by the service.
type MazeSpec struct {
	Rows  int                // Number of rows
	Cols  int                // Number of columns
	Seed  *int64             // Seed of the random source, random when nil
	Start *maze.CellPosition // Carve start, drawn from the seeded source when nil
}

// MazeSession is one generated maze. Only the generation parameters are persisted;
// the maze itself is regenerated from the seed.
type MazeSession struct {
	ID          uuid.UUID         `bson:"_id"`
	Rows        int               `bson:"rows"`
	Cols        int               `bson:"cols"`
	Seed        int64             `bson:"seed"`
	RandomStart bool              `bson:"randomStart"`
	Start       maze.CellPosition `bson:"start"`
	CreatedAt   time.Time         `bson:"createdAt"`

	Maze *maze.Maze `bson:"-"` // Regenerated maze, nil until Regenerate is called
}

// Regenerate rebuilds the maze from the session parameters and stores it in s.Maze.
func (s *MazeSession) Regenerate() (*maze.Maze, error) {
	var opts []maze.Option
	if !s.RandomStart {
		opts = append(opts, maze.WithStart(s.Start))
	}

	m, err := maze.Generate(s.Rows, s.Cols, rand.New(rand.NewSource(s.Seed)), opts...)
	if err != nil {
		return nil, err
	}
	s.Start = m.Start()
	s.Maze = m
	return m, nil
}
