package service

import (
	"context"
	"log/slog"

	"tabadigit-esl/internal/apperr"
	"tabadigit-esl/internal/logger"
	"tabadigit-esl/internal/model"
	"tabadigit-esl/internal/repository"

	"go.opentelemetry.io/otel"
)

type PriceUpdateService struct {
	repo     repository.PriceUpdateRepository
	products repository.ProductRepository
}

var PriceUpdateServiceTracer = otel.Tracer("PriceUpdateService")

func NewPriceUpdateService(repo repository.PriceUpdateRepository, products repository.ProductRepository) *PriceUpdateService {
	return &PriceUpdateService{repo: repo, products: products}
}

// Create inserts the price-update record, then overwrites the linked product's
// price in a second, best-effort write keyed by sku. The ordering is fixed and
// there is no transaction across the two writes: a failure after the insert
// leaves the record without the price applied, and a sku matching no product
// silently matches zero documents.
func (s *PriceUpdateService) Create(ctx context.Context, u *model.PriceUpdate) (string, error) {
	ctx, span := PriceUpdateServiceTracer.Start(ctx, "PriceUpdateService.Create")
	defer span.End()
	logger.Info(ctx, "Service")

	if err := validate.Struct(u); err != nil {
		return "", apperr.FromFieldErrors(err)
	}
	u.ApplyDefaults()

	id, err := s.repo.Insert(ctx, u)
	if err != nil {
		return "", err
	}

	if u.NewPrice != nil {
		if _, err := s.products.SetPriceBySKU(ctx, u.ProductSKU, *u.NewPrice); err != nil {
			logger.Error(ctx, "Failed to apply price to product",
				slog.String("product_sku", u.ProductSKU),
				slog.String("error", err.Error()),
			)
		}
	}

	return id.Hex(), nil
}

func (s *PriceUpdateService) List(ctx context.Context, limit int64) ([]model.PriceUpdate, error) {
	ctx, span := PriceUpdateServiceTracer.Start(ctx, "PriceUpdateService.List")
	defer span.End()
	logger.Info(ctx, "Service")

	if limit <= 0 {
		limit = DefaultListLimit
	}
	return s.repo.Find(ctx, limit)
}
