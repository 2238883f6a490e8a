package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const walksCollection = "walks"

// MongoStore persists walks in a MongoDB collection, one document per
// source, keyed by source ID.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to MongoDB and verifies the connection.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(database).Collection(walksCollection),
	}, nil
}

// Put upserts a walk by ID.
func (s *MongoStore) Put(ctx context.Context, w Walk) error {
	opts := options.Replace().SetUpsert(true)
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": w.ID}, w, opts)
	if err != nil {
		return fmt.Errorf("mongo put %s: %w", w.ID, err)
	}
	return nil
}

// Get returns a walk by ID.
func (s *MongoStore) Get(ctx context.Context, id string) (Walk, error) {
	var w Walk
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&w)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Walk{}, ErrNotFound
	}
	if err != nil {
		return Walk{}, fmt.Errorf("mongo get %s: %w", id, err)
	}
	return w, nil
}

// List returns all walks ordered by category then ID.
func (s *MongoStore) List(ctx context.Context) ([]Walk, error) {
	opts := options.Find().SetSort(bson.D{{Key: "category", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo list: %w", err)
	}
	defer cur.Close(ctx)

	var out []Walk
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("mongo list: %w", err)
	}
	return out, nil
}

// Delete removes a walk.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("mongo delete %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Close disconnects the client.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)
