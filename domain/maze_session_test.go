package domain

import (
	"testing"

	"github.com/beka-birhanu/mazeball/maze"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegenerate(t *testing.T) {
	t.Run("Random start is reproducible", func(t *testing.T) {
		a := &MazeSession{ID: uuid.New(), Rows: 8, Cols: 5, Seed: 99, RandomStart: true}
		b := &MazeSession{ID: uuid.New(), Rows: 8, Cols: 5, Seed: 99, RandomStart: true}

		ma, err := a.Regenerate()
		require.NoError(t, err)
		mb, err := b.Regenerate()
		require.NoError(t, err)

		assert.Equal(t, ma.Start(), mb.Start())
		assert.Equal(t, ma.Start(), a.Start)
		assert.Equal(t, ma.Horizontals(), mb.Horizontals())
		assert.Equal(t, ma.Verticals(), mb.Verticals())
		assert.Same(t, ma, a.Maze)
	})

	t.Run("Fixed start is honored", func(t *testing.T) {
		s := &MazeSession{Rows: 4, Cols: 4, Seed: 1, Start: maze.CellPosition{Row: 3, Col: 2}}
		m, err := s.Regenerate()
		require.NoError(t, err)
		assert.Equal(t, maze.CellPosition{Row: 3, Col: 2}, m.Start())
	})

	t.Run("Invalid dimensions", func(t *testing.T) {
		s := &MazeSession{Rows: 0, Cols: 4}
		_, err := s.Regenerate()
		assert.ErrorIs(t, err, maze.ErrInvalidDimension)
		assert.Nil(t, s.Maze)
	})
}
