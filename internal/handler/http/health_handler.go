package http

import (
	"net/http"

	"tabadigit-esl/internal/logger"
	"tabadigit-esl/internal/model"
	"tabadigit-esl/internal/service"

	"go.opentelemetry.io/otel"
)

type HealthHandler struct {
	appName string
	service *service.HealthService
}

var HttpHealthHandlerTracer = otel.Tracer("HttpHealthHandler")

func NewHealthHandler(appName string, service *service.HealthService) *HealthHandler {
	return &HealthHandler{
		appName: appName,
		service: service,
	}
}

// Root is the liveness endpoint.
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	ctx, span := HttpHealthHandlerTracer.Start(r.Context(), "HttpHealthHandler.Root")
	defer span.End()
	logger.Info(ctx, "HttpHealthHandler")

	writeJSON(w, http.StatusOK, map[string]string{
		"name":   h.appName,
		"status": "ok",
	})
}

// Test reports the store connectivity diagnostic. It always answers 200; any
// probe failure is folded into the body by the service.
func (h *HealthHandler) Test(w http.ResponseWriter, r *http.Request) {
	ctx, span := HttpHealthHandlerTracer.Start(r.Context(), "HttpHealthHandler.Test")
	defer span.End()
	logger.Info(ctx, "HttpHealthHandler")

	writeJSON(w, http.StatusOK, h.service.Check(ctx))
}

// Schema lists the known collection names for admin viewers.
func (h *HealthHandler) Schema(w http.ResponseWriter, r *http.Request) {
	ctx, span := HttpHealthHandlerTracer.Start(r.Context(), "HttpHealthHandler.Schema")
	defer span.End()
	logger.Info(ctx, "HttpHealthHandler")

	writeJSON(w, http.StatusOK, map[string][]string{"collections": model.Collections()})
}
