package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository is the read side of a collection whose documents decode into E.
type Repository[E any] interface {
	Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]E, error)
}

type baseRepo[E any] struct {
	coll *mongo.Collection
}

func NewRepository[E any](db *mongo.Database, collection string) Repository[E] {
	return &baseRepo[E]{coll: db.Collection(collection)}
}

func (r *baseRepo[E]) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]E, error) {
	cursor, err := r.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", r.coll.Name(), err)
	}
	entities := make([]E, 0)
	if err := cursor.All(ctx, &entities); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.coll.Name(), err)
	}
	return entities, nil
}
