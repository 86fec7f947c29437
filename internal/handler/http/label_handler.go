package http

import (
	"encoding/json"
	"net/http"

	"tabadigit-esl/internal/logger"
	"tabadigit-esl/internal/model"
	"tabadigit-esl/internal/service"

	"go.opentelemetry.io/otel"
)

type LabelHandler struct {
	service *service.LabelService
}

var HttpLabelHandlerTracer = otel.Tracer("HttpLabelHandler")

func NewLabelHandler(service *service.LabelService) *LabelHandler {
	return &LabelHandler{service: service}
}

func (h *LabelHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, span := HttpLabelHandlerTracer.Start(r.Context(), "HttpLabelHandler.Create")
	defer span.End()
	logger.Info(ctx, "HttpLabelHandler")

	var label model.Label
	if err := json.NewDecoder(r.Body).Decode(&label); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid request payload"})
		return
	}

	id, err := h.service.Create(ctx, &label)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *LabelHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, span := HttpLabelHandlerTracer.Start(r.Context(), "HttpLabelHandler.List")
	defer span.End()
	logger.Info(ctx, "HttpLabelHandler")

	labels, err := h.service.List(ctx, parseLimit(r))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": "failed to fetch labels"})
		return
	}
	writeJSON(w, http.StatusOK, labels)
}

// Update accepts an arbitrary JSON object and stores it as-is. Unlike the
// product PATCH path, fields are not schema-validated here.
func (h *LabelHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, span := HttpLabelHandlerTracer.Start(r.Context(), "HttpLabelHandler.Update")
	defer span.End()
	logger.Info(ctx, "HttpLabelHandler")

	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid request payload"})
		return
	}

	updated, err := h.service.UpdateRaw(ctx, r.PathValue("id"), fields)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"updated": updated})
}
