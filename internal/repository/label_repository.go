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

type LabelRepository interface {
	Insert(ctx context.Context, label *model.Label) (primitive.ObjectID, error)
	Find(ctx context.Context, limit int64) ([]model.Label, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (int64, error)
}

type mongoLabelRepository struct {
	collection *mongo.Collection
}

var LabelRepositoryTracer = otel.Tracer("LabelRepository")

func NewLabelRepository(db *mongo.Database) LabelRepository {
	return &mongoLabelRepository{
		collection: db.Collection(model.CollectionLabel),
	}
}

func (r *mongoLabelRepository) Insert(ctx context.Context, label *model.Label) (primitive.ObjectID, error) {
	ctx, span := LabelRepositoryTracer.Start(ctx, "LabelRepository.Insert")
	defer span.End()
	logger.Info(ctx, "Repository")

	label.ID = primitive.NewObjectID()
	_, err := r.collection.InsertOne(ctx, label)
	return label.ID, err
}

func (r *mongoLabelRepository) Find(ctx context.Context, limit int64) ([]model.Label, error) {
	ctx, span := LabelRepositoryTracer.Start(ctx, "LabelRepository.Find")
	defer span.End()
	logger.Info(ctx, "Repository")

	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	labels := make([]model.Label, 0)
	for cursor.Next(ctx) {
		var label model.Label
		if err := cursor.Decode(&label); err != nil {
			return nil, err
		}
		labels = append(labels, label)
	}
	return labels, cursor.Err()
}

// UpdateByID applies fields verbatim as a $set. Callers on the label PATCH
// path pass whatever the client sent; see LabelService.UpdateRaw.
func (r *mongoLabelRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (int64, error) {
	ctx, span := LabelRepositoryTracer.Start(ctx, "LabelRepository.UpdateByID")
	defer span.End()
	logger.Info(ctx, "Repository")

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
