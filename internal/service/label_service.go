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

type LabelService struct {
	repo repository.LabelRepository
}

var LabelServiceTracer = otel.Tracer("LabelService")

func NewLabelService(repo repository.LabelRepository) *LabelService {
	return &LabelService{repo: repo}
}

func (s *LabelService) Create(ctx context.Context, l *model.Label) (string, error) {
	ctx, span := LabelServiceTracer.Start(ctx, "LabelService.Create")
	defer span.End()
	logger.Info(ctx, "Service")

	if err := validate.Struct(l); err != nil {
		return "", apperr.FromFieldErrors(err)
	}
	l.ApplyDefaults()

	id, err := s.repo.Insert(ctx, l)
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

func (s *LabelService) List(ctx context.Context, limit int64) ([]model.Label, error) {
	ctx, span := LabelServiceTracer.Start(ctx, "LabelService.List")
	defer span.End()
	logger.Info(ctx, "Service")

	if limit <= 0 {
		limit = DefaultListLimit
	}
	return s.repo.Find(ctx, limit)
}

// UpdateRaw $sets the client-supplied fields verbatim, bypassing the Label
// schema. A battery of 150 is stored even though Create would reject it.
// Known inconsistency with the product PATCH path, kept until the API
// contract tightens it. Only the identifier keys are stripped.
func (s *LabelService) UpdateRaw(ctx context.Context, idHex string, fields map[string]any) (int64, error) {
	ctx, span := LabelServiceTracer.Start(ctx, "LabelService.UpdateRaw")
	defer span.End()
	logger.Info(ctx, "Service")

	if s.repo == nil {
		return 0, apperr.NewUnavailable("database not available")
	}

	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return 0, apperr.NewInvalidArgument("malformed label id %q", idHex)
	}

	delete(fields, "id")
	delete(fields, "_id")
	if len(fields) == 0 {
		return 0, nil
	}

	modified, err := s.repo.UpdateByID(ctx, id, bson.M(fields))
	if err != nil {
		return 0, apperr.NewUnavailable(err.Error())
	}
	return modified, nil
}
