package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ops-backend/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

const defaultListLimit = 1000

type ListOptions struct {
	SortBy string
	Desc   bool
	Limit  int64
}

// Recent sorts by creation time, newest first.
func Recent(limit int64) ListOptions {
	return ListOptions{SortBy: "created_at", Desc: true, Limit: limit}
}

func (o ListOptions) find() *options.FindOptions {
	opts := options.Find()
	limit := o.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	opts.SetLimit(limit)
	if o.SortBy != "" {
		dir := 1
		if o.Desc {
			dir = -1
		}
		opts.SetSort(bson.D{{Key: o.SortBy, Value: dir}})
	}
	return opts
}

// Repository is the single-collection store every resource is persisted through.
// Records are keyed by a uuid string stored as _id.
type Repository[T any] struct {
	collection *mongo.Collection
	name       string
	now        func() time.Time
}

func NewRepository[T any](db *mongo.Database, collection string) *Repository[T] {
	return &Repository[T]{
		collection: db.Collection(collection),
		name:       collection,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (r *Repository[T]) Collection() *mongo.Collection {
	return r.collection
}

func (r *Repository[T]) List(ctx context.Context, filter bson.M, opts ListOptions) ([]T, error) {
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := r.collection.Find(ctx, filter, opts.find())
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.name, err)
	}
	defer cursor.Close(ctx)

	items := []T{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", r.name, err)
	}
	return items, nil
}

func (r *Repository[T]) FindOne(ctx context.Context, filter bson.M) (*T, error) {
	var item T
	if err := r.collection.FindOne(ctx, filter).Decode(&item); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find %s: %w", r.name, err)
	}
	return &item, nil
}

func (r *Repository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	return r.FindOne(ctx, bson.M{"_id": id})
}

func (r *Repository[T]) Count(ctx context.Context, filter bson.M) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}
	n, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", r.name, err)
	}
	return n, nil
}

// Create assigns a fresh id and creation time before inserting doc.
func (r *Repository[T]) Create(ctx context.Context, doc *T) error {
	r.stamp(doc)
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%s: %w", r.name, ErrDuplicate)
		}
		return fmt.Errorf("failed to create %s: %w", r.name, err)
	}
	return nil
}

func (r *Repository[T]) CreateMany(ctx context.Context, docs []*T) error {
	if len(docs) == 0 {
		return nil
	}
	batch := make([]interface{}, 0, len(docs))
	for _, doc := range docs {
		r.stamp(doc)
		batch = append(batch, doc)
	}
	if _, err := r.collection.InsertMany(ctx, batch); err != nil {
		return fmt.Errorf("failed to create %s: %w", r.name, err)
	}
	return nil
}

func (r *Repository[T]) stamp(doc *T) {
	if rec, ok := any(doc).(models.Record); ok {
		rec.SetMeta(uuid.NewString(), r.now())
	}
}

// Update applies set to the record with id; ErrNotFound when nothing matched.
func (r *Repository[T]) Update(ctx context.Context, id string, set bson.M) error {
	return r.UpdateWhere(ctx, bson.M{"_id": id}, set)
}

func (r *Repository[T]) UpdateWhere(ctx context.Context, filter bson.M, set bson.M) error {
	result, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%s: %w", r.name, ErrDuplicate)
		}
		return fmt.Errorf("failed to update %s: %w", r.name, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository[T]) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", r.name, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
