// Package store wraps the MongoDB document store behind the two
// operations the ingestion jobs need: upsert-by-id with field-level
// merge, and delete-by-id. Client lifecycle is owned by the caller.
package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names.
const (
	CollectionCircuit = "circuit"
	CollectionRaces   = "races"
	CollectionDrivers = "drivers"
	CollectionTeams   = "teams"
)

// NewClient creates and pings a Mongo client for the given URI. It
// centralizes client creation for all jobs; callers must Disconnect.
func NewClient(ctx context.Context, uri string) (*mongo.Client, error) {
	if uri == "" {
		return nil, fmt.Errorf("a mongo URI must be provided to create a store client")
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to reach mongo: %w", err)
	}
	return client, nil
}

// UpsertResult carries the counts callers use to tell "no-op" from
// "updated" from "inserted".
type UpsertResult struct {
	Matched  int64
	Modified int64
	Upserted int64
}

// Mongo is the document store backed by a Mongo database.
type Mongo struct {
	db *mongo.Database
}

// New wraps a connected client and database name.
func New(client *mongo.Client, database string) *Mongo {
	return &Mongo{db: client.Database(database)}
}

// UpsertByID merges the given fields into the document with the given
// id, creating it when absent. Unset fields of an existing document are
// left untouched.
func (m *Mongo) UpsertByID(ctx context.Context, collection, id string, fields any) (UpsertResult, error) {
	res, err := m.db.Collection(collection).UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return UpsertResult{}, fmt.Errorf("upsert %s/%s: %w", collection, id, err)
	}
	return UpsertResult{Matched: res.MatchedCount, Modified: res.ModifiedCount, Upserted: res.UpsertedCount}, nil
}

// UpdateByID merges fields into an existing document without creating
// one; a missing document is a matched count of zero, not an error.
func (m *Mongo) UpdateByID(ctx context.Context, collection, id string, fields any) (UpsertResult, error) {
	res, err := m.db.Collection(collection).UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
	)
	if err != nil {
		return UpsertResult{}, fmt.Errorf("update %s/%s: %w", collection, id, err)
	}
	return UpsertResult{Matched: res.MatchedCount, Modified: res.ModifiedCount}, nil
}

// DeleteEntity removes the document addressed by a bare entity id,
// applying the collection's id prefix convention. A missing document is
// a deleted count of zero, not an error.
func (m *Mongo) DeleteEntity(ctx context.Context, collection, entityID string) (int64, error) {
	id, err := DocumentID(collection, entityID)
	if err != nil {
		return 0, err
	}
	res, err := m.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	return res.DeletedCount, nil
}

// DocumentID maps a bare entity id to the prefixed _id convention of a
// collection.
//
// TODO: parameterize the race season instead of assuming 2025.
func DocumentID(collection, entityID string) (string, error) {
	switch collection {
	case CollectionCircuit:
		return "circuit_" + entityID, nil
	case CollectionRaces:
		return "gp_2025_" + entityID, nil
	default:
		return "", fmt.Errorf("unknown collection %q: must be %q or %q", collection, CollectionCircuit, CollectionRaces)
	}
}
