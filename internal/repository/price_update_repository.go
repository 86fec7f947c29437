package repository

import (
	"context"

	"tabadigit-esl/internal/logger"
	"tabadigit-esl/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/otel"
)

type PriceUpdateRepository interface {
	Insert(ctx context.Context, update *model.PriceUpdate) (primitive.ObjectID, error)
	Find(ctx context.Context, limit int64) ([]model.PriceUpdate, error)
}

type mongoPriceUpdateRepository struct {
	collection *mongo.Collection
}

var PriceUpdateRepositoryTracer = otel.Tracer("PriceUpdateRepository")

func NewPriceUpdateRepository(db *mongo.Database) PriceUpdateRepository {
	return &mongoPriceUpdateRepository{
		collection: db.Collection(model.CollectionPriceUpdate),
	}
}

func (r *mongoPriceUpdateRepository) Insert(ctx context.Context, update *model.PriceUpdate) (primitive.ObjectID, error) {
	ctx, span := PriceUpdateRepositoryTracer.Start(ctx, "PriceUpdateRepository.Insert")
	defer span.End()
	logger.Info(ctx, "Repository")

	update.ID = primitive.NewObjectID()
	_, err := r.collection.InsertOne(ctx, update)
	return update.ID, err
}

func (r *mongoPriceUpdateRepository) Find(ctx context.Context, limit int64) ([]model.PriceUpdate, error) {
	ctx, span := PriceUpdateRepositoryTracer.Start(ctx, "PriceUpdateRepository.Find")
	defer span.End()
	logger.Info(ctx, "Repository")

	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	updates := make([]model.PriceUpdate, 0)
	for cursor.Next(ctx) {
		var update model.PriceUpdate
		if err := cursor.Decode(&update); err != nil {
			return nil, err
		}
		updates = append(updates, update)
	}
	return updates, cursor.Err()
}
