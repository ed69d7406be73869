package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	apperrors "ecoshopper-backend/internal/shared/errors"
	"ecoshopper-backend/internal/shared/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	connectTimeout = 10 * time.Second

	// createdAtField orders documents by server-side insertion time. It is
	// stamped on every insert and never exposed in responses.
	createdAtField = "_created_at"
)

// Store is a lazily-connected handle to the document database. The first
// operation establishes the connection; concurrent first callers share a
// single connect attempt. The handle lives for the process lifetime.
type Store struct {
	uri    string
	dbName string
	log    logger.Logger

	once    sync.Once
	client  *mongo.Client
	db      *mongo.Database
	connErr error
}

// NewStore creates a store handle without connecting.
func NewStore(uri, dbName string, log logger.Logger) *Store {
	return &Store{
		uri:    uri,
		dbName: dbName,
		log:    log.WithComponent("store"),
	}
}

// Database returns the shared database handle, connecting on first use.
func (s *Store) Database(ctx context.Context) (*mongo.Database, error) {
	s.once.Do(func() {
		connectCtx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()

		client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(s.uri))
		if err != nil {
			s.connErr = err
			return
		}
		if err := client.Ping(connectCtx, nil); err != nil {
			s.connErr = err
			return
		}

		s.client = client
		s.db = client.Database(s.dbName)
		s.log.Infof("Connected to document store, database %q", s.dbName)
	})

	if s.connErr != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, s.connErr)
	}
	return s.db, nil
}

// Insert stamps the document with a creation timestamp, persists it, and
// returns it augmented with the assigned identifier as a hex string.
func (s *Store) Insert(ctx context.Context, collection string, doc bson.M) (bson.M, error) {
	db, err := s.Database(ctx)
	if err != nil {
		return nil, err
	}

	payload := bson.M{}
	for k, v := range doc {
		payload[k] = v
	}
	payload[createdAtField] = time.Now().UTC()

	result, err := db.Collection(collection).InsertOne(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("%w: insert into %s: %v", apperrors.ErrStoreUnavailable, collection, err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		payload["_id"] = oid.Hex()
	} else {
		payload["_id"] = fmt.Sprintf("%v", result.InsertedID)
	}
	return payload, nil
}

// FindRecent returns up to limit documents matching filter, most recently
// created first. Identifiers are normalized to hex strings.
func (s *Store) FindRecent(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	db, err := s.Database(ctx)
	if err != nil {
		return nil, err
	}
	if filter == nil {
		filter = bson.M{}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: createdAtField, Value: -1}}).
		SetLimit(limit)

	cursor, err := db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: find in %s: %v", apperrors.ErrStoreUnavailable, collection, err)
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%w: decode from %s: %v", apperrors.ErrStoreUnavailable, collection, err)
	}

	for _, doc := range docs {
		if oid, ok := doc["_id"].(primitive.ObjectID); ok {
			doc["_id"] = oid.Hex()
		}
	}
	return docs, nil
}

// Ping verifies the store connection for health checks.
func (s *Store) Ping(ctx context.Context) error {
	if _, err := s.Database(ctx); err != nil {
		return err
	}
	return s.client.Ping(ctx, nil)
}

// Close disconnects the underlying client if a connection was established.
func (s *Store) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}
