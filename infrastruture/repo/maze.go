package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/mazeball/domain"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MazeRepo handles the persistence of maze sessions.
type MazeRepo struct {
	collection *mongo.Collection
}

// NewMazeRepo creates a new MazeRepo with the given MongoDB client, database name, and collection name.
func NewMazeRepo(client *mongo.Client, dbName, collectionName string) *MazeRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &MazeRepo{
		collection: collection,
	}
}

// Save inserts or updates a maze session.
// Only the generation parameters are stored; the maze is regenerated on load.
func (m *MazeRepo) Save(ctx context.Context, session *dmn.MazeSession) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	filter := bson.M{"_id": session.ID}
	update := bson.M{
		"$set": bson.M{
			"rows":        session.Rows,
			"cols":        session.Cols,
			"seed":        session.Seed,
			"randomStart": session.RandomStart,
			"start":       session.Start,
			"createdAt":   session.CreatedAt,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := m.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("unexpected error: %w", err)
	}
	return nil
}

// ByID retrieves a maze session by its ID.
// Returns domain.ErrMazeNotFound when no session has that ID.
func (m *MazeRepo) ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeSession, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	filter := bson.M{"_id": id}
	var session dmn.MazeSession
	if err := m.collection.FindOne(ctx, filter).Decode(&session); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, dmn.ErrMazeNotFound
		}
		return nil, fmt.Errorf("unexpected error: %w", err)
	}
	return &session, nil
}
