package service

import (
	"context"

	"tabadigit-esl/internal/apperr"
	"tabadigit-esl/internal/logger"
	"tabadigit-esl/internal/model"
	"tabadigit-esl/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel"
)

// DefaultListLimit caps list responses when the caller passes no limit.
const DefaultListLimit = 100

type ProductService struct {
	repo repository.ProductRepository
}

var ProductServiceTracer = otel.Tracer("ProductService")

func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

func (s *ProductService) Create(ctx context.Context, p *model.TobaccoProduct) (string, error) {
	ctx, span := ProductServiceTracer.Start(ctx, "ProductService.Create")
	defer span.End()
	logger.Info(ctx, "Service")

	if err := validate.Struct(p); err != nil {
		return "", apperr.FromFieldErrors(err)
	}
	p.ApplyDefaults()

	id, err := s.repo.Insert(ctx, p)
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

// CreateBulk validates the whole batch before touching the store: one invalid
// item fails the request and nothing is inserted. Inserts themselves are
// per-item with no rollback.
func (s *ProductService) CreateBulk(ctx context.Context, payload *model.BulkProducts) ([]string, error) {
	ctx, span := ProductServiceTracer.Start(ctx, "ProductService.CreateBulk")
	defer span.End()
	logger.Info(ctx, "Service")

	if err := validate.Struct(payload); err != nil {
		return nil, apperr.FromFieldErrors(err)
	}

	inserted := make([]string, 0, len(payload.Items))
	for i := range payload.Items {
		item := &payload.Items[i]
		item.ApplyDefaults()
		id, err := s.repo.Insert(ctx, item)
		if err != nil {
			return nil, err
		}
		inserted = append(inserted, id.Hex())
	}
	return inserted, nil
}

// List returns up to limit products. A non-empty q matches case-insensitively
// as a substring against name, brand, or sku.
func (s *ProductService) List(ctx context.Context, q string, limit int64) ([]model.TobaccoProduct, error) {
	ctx, span := ProductServiceTracer.Start(ctx, "ProductService.List")
	defer span.End()
	logger.Info(ctx, "Service")

	if limit <= 0 {
		limit = DefaultListLimit
	}

	filter := bson.M{}
	if q != "" {
		rx := primitive.Regex{Pattern: q, Options: "i"}
		filter = bson.M{"$or": []bson.M{
			{"name": rx},
			{"brand": rx},
			{"sku": rx},
		}}
	}
	return s.repo.Find(ctx, filter, limit)
}

// Update applies the present, non-null fields of u to the product idHex names.
// An empty effective field set is a no-op returning 0 without a store call.
// Store errors on this path surface as InvalidArgument (HTTP 400), matching
// the admin UI contract.
func (s *ProductService) Update(ctx context.Context, idHex string, u *model.ProductUpdate) (int64, error) {
	ctx, span := ProductServiceTracer.Start(ctx, "ProductService.Update")
	defer span.End()
	logger.Info(ctx, "Service")

	if s.repo == nil {
		return 0, apperr.NewUnavailable("database not available")
	}

	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return 0, apperr.NewInvalidArgument("malformed product id %q", idHex)
	}

	if err := validate.Struct(u); err != nil {
		return 0, apperr.FromFieldErrors(err)
	}

	fields := u.Fields()
	if len(fields) == 0 {
		return 0, nil
	}

	modified, err := s.repo.UpdateByID(ctx, id, fields)
	if err != nil {
		return 0, apperr.NewInvalidArgument("%s", err.Error())
	}
	return modified, nil
}

// Delete removes the product idHex names. Absence is not an error; the
// returned count is 0.
func (s *ProductService) Delete(ctx context.Context, idHex string) (int64, error) {
	ctx, span := ProductServiceTracer.Start(ctx, "ProductService.Delete")
	defer span.End()
	logger.Info(ctx, "Service")

	if s.repo == nil {
		return 0, apperr.NewUnavailable("database not available")
	}

	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return 0, apperr.NewInvalidArgument("malformed product id %q", idHex)
	}

	deleted, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return 0, apperr.NewUnavailable(err.Error())
	}
	return deleted, nil
}
