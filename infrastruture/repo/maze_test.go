package repo

import (
	"context"
	"testing"
	"time"

	dmn "github.com/beka-birhanu/mazeball/domain"
	"github.com/beka-birhanu/mazeball/maze"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMazeRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("Save upserts", func(mt *mtest.T) {
		r := NewMazeRepo(mt.Client, mt.DB.Name(), mt.Coll.Name())
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		err := r.Save(context.Background(), &dmn.MazeSession{ID: uuid.New(), Rows: 3, Cols: 4, Seed: 9})
		assert.NoError(mt, err)
	})

	mt.Run("Save reports server errors", func(mt *mtest.T) {
		r := NewMazeRepo(mt.Client, mt.DB.Name(), mt.Coll.Name())
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Name:    "BadValue",
			Message: "bad value",
		}))

		err := r.Save(context.Background(), &dmn.MazeSession{ID: uuid.New()})
		assert.Error(mt, err)
	})

	mt.Run("ByID decodes the session", func(mt *mtest.T) {
		r := NewMazeRepo(mt.Client, mt.DB.Name(), mt.Coll.Name())
		id := uuid.New()
		created := time.Date(2025, 2, 8, 12, 0, 0, 0, time.UTC)
		ns := mt.DB.Name() + "." + mt.Coll.Name()

		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.Binary{Subtype: 0x00, Data: id[:]}},
			{Key: "rows", Value: 5},
			{Key: "cols", Value: 6},
			{Key: "seed", Value: int64(42)},
			{Key: "randomStart", Value: false},
			{Key: "start", Value: bson.D{{Key: "row", Value: 1}, {Key: "col", Value: 2}}},
			{Key: "createdAt", Value: primitive.NewDateTimeFromTime(created)},
		}))

		session, err := r.ByID(context.Background(), id)
		require.NoError(mt, err)
		assert.Equal(mt, id, session.ID)
		assert.Equal(mt, 5, session.Rows)
		assert.Equal(mt, 6, session.Cols)
		assert.Equal(mt, int64(42), session.Seed)
		assert.False(mt, session.RandomStart)
		assert.Equal(mt, maze.CellPosition{Row: 1, Col: 2}, session.Start)
		assert.True(mt, created.Equal(session.CreatedAt))
		assert.Nil(mt, session.Maze)
	})

	mt.Run("ByID maps missing documents", func(mt *mtest.T) {
		r := NewMazeRepo(mt.Client, mt.DB.Name(), mt.Coll.Name())
		ns := mt.DB.Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := r.ByID(context.Background(), uuid.New())
		assert.ErrorIs(mt, err, dmn.ErrMazeNotFound)
	})
}
