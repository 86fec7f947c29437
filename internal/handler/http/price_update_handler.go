package http

import (
	"encoding/json"
	"net/http"

	"tabadigit-esl/internal/logger"
	"tabadigit-esl/internal/model"
	"tabadigit-esl/internal/service"

	"go.opentelemetry.io/otel"
)

type PriceUpdateHandler struct {
	service *service.PriceUpdateService
}

var HttpPriceUpdateHandlerTracer = otel.Tracer("HttpPriceUpdateHandler")

func NewPriceUpdateHandler(service *service.PriceUpdateService) *PriceUpdateHandler {
	return &PriceUpdateHandler{service: service}
}

func (h *PriceUpdateHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, span := HttpPriceUpdateHandlerTracer.Start(r.Context(), "HttpPriceUpdateHandler.Create")
	defer span.End()
	logger.Info(ctx, "HttpPriceUpdateHandler")

	var update model.PriceUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid request payload"})
		return
	}

	id, err := h.service.Create(ctx, &update)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *PriceUpdateHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, span := HttpPriceUpdateHandlerTracer.Start(r.Context(), "HttpPriceUpdateHandler.List")
	defer span.End()
	logger.Info(ctx, "HttpPriceUpdateHandler")

	updates, err := h.service.List(ctx, parseLimit(r))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": "failed to fetch price updates"})
		return
	}
	writeJSON(w, http.StatusOK, updates)
}
