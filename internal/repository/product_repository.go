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

// ProductRepository is the document-store surface the product services need.
// The store assigns opaque ObjectID identifiers on insert; update and delete
// report matched counts instead of raising on absence.
type ProductRepository interface {
	Insert(ctx context.Context, product *model.TobaccoProduct) (primitive.ObjectID, error)
	Find(ctx context.Context, filter bson.M, limit int64) ([]model.TobaccoProduct, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (int64, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error)
	SetPriceBySKU(ctx context.Context, sku string, price float64) (int64, error)
}

type mongoProductRepository struct {
	collection *mongo.Collection
}

var ProductRepositoryTracer = otel.Tracer("ProductRepository")

func NewProductRepository(db *mongo.Database) ProductRepository {
	return &mongoProductRepository{
		collection: db.Collection(model.CollectionProduct),
	}
}

func (r *mongoProductRepository) Insert(ctx context.Context, product *model.TobaccoProduct) (primitive.ObjectID, error) {
	ctx, span := ProductRepositoryTracer.Start(ctx, "ProductRepository.Insert")
	defer span.End()
	logger.Info(ctx, "Repository")

	product.ID = primitive.NewObjectID()
	_, err := r.collection.InsertOne(ctx, product)
	return product.ID, err
}

func (r *mongoProductRepository) Find(ctx context.Context, filter bson.M, limit int64) ([]model.TobaccoProduct, error) {
	ctx, span := ProductRepositoryTracer.Start(ctx, "ProductRepository.Find")
	defer span.End()
	logger.Info(ctx, "Repository")

	cursor, err := r.collection.Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := make([]model.TobaccoProduct, 0)
	for cursor.Next(ctx) {
		var product model.TobaccoProduct
		if err := cursor.Decode(&product); err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, cursor.Err()
}

func (r *mongoProductRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (int64, error) {
	ctx, span := ProductRepositoryTracer.Start(ctx, "ProductRepository.UpdateByID")
	defer span.End()
	logger.Info(ctx, "Repository")

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (r *mongoProductRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error) {
	ctx, span := ProductRepositoryTracer.Start(ctx, "ProductRepository.DeleteByID")
	defer span.End()
	logger.Info(ctx, "Repository")

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// SetPriceBySKU overwrites the price of the first product matching sku. Zero
// matches is not an error; dangling SKUs are legal.
func (r *mongoProductRepository) SetPriceBySKU(ctx context.Context, sku string, price float64) (int64, error) {
	ctx, span := ProductRepositoryTracer.Start(ctx, "ProductRepository.SetPriceBySKU")
	defer span.End()
	logger.Info(ctx, "Repository")

	res, err := r.collection.UpdateOne(ctx, bson.M{"sku": sku}, bson.M{"$set": bson.M{"price": price}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
