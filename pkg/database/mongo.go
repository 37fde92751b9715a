package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoStore implements the DocumentStore interface over a MongoDB database.
// A single MongoStore is shared by all requests; the driver pools
// connections internally.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoStoreConfig contains options for creating a new MongoStore.
type NewMongoStoreConfig struct {
	URI      string
	Database string
}

// NewMongoStore connects to MongoDB and verifies the connection with a ping.
func NewMongoStore(ctx context.Context, cfg NewMongoStoreConfig) (*MongoStore, error) {
	clientOpts := options.Client().
		ApplyURI(cfg.URI).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("mongo.Connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	log.Printf("Connected to MongoDB database %q", cfg.Database)
	return &MongoStore{client: client, db: client.Database(cfg.Database)}, nil
}

// Close disconnects the underlying client.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *MongoStore) coll(name string) *mongo.Collection {
	return s.db.Collection(name)
}

// UpsertByKey replaces/merges fields of the document matching keyValue,
// creating it when absent.
func (s *MongoStore) UpsertByKey(ctx context.Context, collection, keyField string, keyValue interface{}, document interface{}) (*UpsertResult, error) {
	res, err := s.coll(collection).UpdateOne(
		ctx,
		bson.M{keyField: keyValue},
		bson.M{"$set": document},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, fmt.Errorf("upsert %s by %s: %w", collection, keyField, err)
	}
	out := &UpsertResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}
	if oid, ok := res.UpsertedID.(primitive.ObjectID); ok {
		out.UpsertedID = oid.Hex()
	}
	return out, nil
}

// FindMany decodes the full match set into dest (a pointer to a slice).
func (s *MongoStore) FindMany(ctx context.Context, collection string, filter interface{}, dest interface{}) error {
	cursor, err := s.coll(collection).Find(ctx, filter)
	if err != nil {
		return fmt.Errorf("find in %s: %w", collection, err)
	}
	if err := cursor.All(ctx, dest); err != nil {
		return fmt.Errorf("decode results from %s: %w", collection, err)
	}
	return nil
}

// FindOne decodes a single matching document into dest.
func (s *MongoStore) FindOne(ctx context.Context, collection string, filter interface{}, dest interface{}) error {
	err := s.coll(collection).FindOne(ctx, filter).Decode(dest)
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("find one in %s: %w", collection, err)
	}
	return nil
}

// InsertOne inserts a document and returns the generated id as a hex string.
func (s *MongoStore) InsertOne(ctx context.Context, collection string, document interface{}) (string, error) {
	res, err := s.coll(collection).InsertOne(ctx, document)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(res.InsertedID), nil
}

func (s *MongoStore) UpdateOne(ctx context.Context, collection string, filter, update interface{}) (*UpdateResult, error) {
	res, err := s.coll(collection).UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, fmt.Errorf("update one in %s: %w", collection, err)
	}
	return &UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (s *MongoStore) UpdateMany(ctx context.Context, collection string, filter, update interface{}) (*UpdateResult, error) {
	res, err := s.coll(collection).UpdateMany(ctx, filter, update)
	if err != nil {
		return nil, fmt.Errorf("update many in %s: %w", collection, err)
	}
	return &UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (s *MongoStore) DeleteOne(ctx context.Context, collection string, filter interface{}) (*DeleteResult, error) {
	res, err := s.coll(collection).DeleteOne(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("delete one in %s: %w", collection, err)
	}
	return &DeleteResult{DeletedCount: res.DeletedCount}, nil
}

func (s *MongoStore) DeleteMany(ctx context.Context, collection string, filter interface{}) (*DeleteResult, error) {
	res, err := s.coll(collection).DeleteMany(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("delete many in %s: %w", collection, err)
	}
	return &DeleteResult{DeletedCount: res.DeletedCount}, nil
}

// AggregateMatch resolves a set of document ids into full documents via a
// $match/$in pipeline.
func (s *MongoStore) AggregateMatch(ctx context.Context, collection string, ids []primitive.ObjectID, dest interface{}) error {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}},
		}}},
	}
	cursor, err := s.coll(collection).Aggregate(ctx, pipeline)
	if err != nil {
		return fmt.Errorf("aggregate in %s: %w", collection, err)
	}
	if err := cursor.All(ctx, dest); err != nil {
		return fmt.Errorf("decode aggregate results from %s: %w", collection, err)
	}
	return nil
}

// WithTransaction runs fn inside a MongoDB session transaction. All store
// operations performed with the context passed to fn commit or abort as one
// unit.
func (s *MongoStore) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := s.client.StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
