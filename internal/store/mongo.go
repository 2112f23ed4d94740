// Package store wraps the MongoDB collection holding startup records. Every
// operation is a single synchronous round trip; the connection is opened per
// invocation and closed unconditionally when the command finishes.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/startup-insights/insightctl/internal/startup"
)

const serverSelectionTimeout = 5 * time.Second

// Store is a connected handle to one database/collection pair.
type Store struct {
	client     *mongo.Client
	db         string
	collection string
	log        zerolog.Logger
}

// InsertSummary reports the outcome of a batch insert. Duplicate names are
// skipped, not fatal: the collection has a unique index on name.
type InsertSummary struct {
	Inserted   int
	Duplicates int
}

// Open dials the database and verifies the connection with a ping.
func Open(ctx context.Context, uri, db, collection string, log zerolog.Logger) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(serverSelectionTimeout))
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping: %w", err)
	}
	log.Debug().Str("database", db).Str("collection", collection).Msg("connected")
	return &Store{client: client, db: db, collection: collection, log: log}, nil
}

// Close disconnects the client. Safe to defer immediately after Open.
func (s *Store) Close(ctx context.Context) {
	if err := s.client.Disconnect(ctx); err != nil {
		s.log.Warn().Err(err).Msg("disconnect failed")
	}
}

func (s *Store) coll() *mongo.Collection {
	return s.client.Database(s.db).Collection(s.collection)
}

// EnsureCollection creates the query indexes: a unique ascending index on
// name plus ascending country and industry and descending founded_year.
// Creating an index that already exists is a no-op server-side.
func (s *Store) EnsureCollection(ctx context.Context) error {
	models := []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "country", Value: 1}}},
		{Keys: bson.D{{Key: "industry", Value: 1}}},
		{Keys: bson.D{{Key: "founded_year", Value: -1}}},
	}
	if _, err := s.coll().Indexes().CreateMany(ctx, models); err != nil {
		return fmt.Errorf("create indexes: %w", err)
	}
	return nil
}

// InsertStartups inserts records one at a time, counting duplicate-key
// rejections instead of failing on them.
func (s *Store) InsertStartups(ctx context.Context, records []startup.Startup) (InsertSummary, error) {
	var sum InsertSummary
	for _, r := range records {
		_, err := s.coll().InsertOne(ctx, r)
		switch {
		case err == nil:
			sum.Inserted++
		case mongo.IsDuplicateKeyError(err):
			sum.Duplicates++
			s.log.Warn().Str("name", r.Name).Msg("duplicate entry skipped")
		default:
			return sum, fmt.Errorf("insert %s: %w", r.Name, err)
		}
	}
	return sum, nil
}

// Count returns the number of documents in the collection.
func (s *Store) Count(ctx context.Context) (int64, error) {
	n, err := s.coll().CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}

// All fetches every record, without the server-assigned _id.
func (s *Store) All(ctx context.Context) ([]startup.Startup, error) {
	cur, err := s.coll().Find(ctx, bson.D{}, options.Find().
		SetProjection(bson.D{{Key: "_id", Value: 0}}))
	if err != nil {
		return nil, fmt.Errorf("find: %w", err)
	}
	var out []startup.Startup
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return out, nil
}

// IndexNames lists the names of the collection's indexes.
func (s *Store) IndexNames(ctx context.Context) ([]string, error) {
	cur, err := s.coll().Indexes().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list indexes: %w", err)
	}
	var names []string
	for cur.Next(ctx) {
		var idx bson.M
		if err := cur.Decode(&idx); err != nil {
			continue
		}
		if name, ok := idx["name"].(string); ok {
			names = append(names, name)
		}
	}
	return names, cur.Err()
}

// Drop removes the collection and its indexes.
func (s *Store) Drop(ctx context.Context) error {
	if err := s.coll().Drop(ctx); err != nil {
		return fmt.Errorf("drop: %w", err)
	}
	s.log.Info().Str("collection", s.collection).Msg("collection dropped")
	return nil
}
