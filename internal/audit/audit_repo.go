package audit

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Filter struct {
	Entity   string
	EntityID string
	Limit    int64
}

//go:generate mockgen -source=audit_repo.go -destination=mock/audit_repo_mock.go -package=mock
type Repository interface {
	Insert(ctx context.Context, entry Entry) error
	List(ctx context.Context, f Filter) ([]Entry, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoRepository struct {
	collection *mongo.Collection
}

func NewRepository(collection *mongo.Collection) Repository {
	return &mongoRepository{collection: collection}
}

// Insert upserts on event_id; a redelivered event leaves the first copy untouched.
func (r *mongoRepository) Insert(ctx context.Context, entry Entry) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"event_id": entry.EventID},
		bson.M{"$setOnInsert": entry},
		options.Update().SetUpsert(true),
	)
	return err
}

func (r *mongoRepository) List(ctx context.Context, f Filter) ([]Entry, error) {
	filter := bson.M{}
	if f.Entity != "" {
		filter["entity"] = f.Entity
	}
	if f.EntityID != "" {
		filter["entity_id"] = f.EntityID
	}

	opts := options.Find().SetSort(bson.D{{Key: "occurred_at", Value: -1}})
	if f.Limit > 0 {
		opts.SetLimit(f.Limit)
	}

	cur, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var entries []Entry
	for cur.Next(ctx) {
		var e Entry
		if err := cur.Decode(&e); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *mongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "event_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "entity", Value: 1}, {Key: "entity_id", Value: 1}, {Key: "occurred_at", Value: -1}}},
	})
	return err
}
