package service

import (
	"context"
	"time"

	"tabadigit-esl/internal/logger"
	"tabadigit-esl/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel"
)

// maxDiagnosticErrLen keeps probe failures readable in the /test payload.
const maxDiagnosticErrLen = 50

// maxDiagnosticCollections caps the collection names listed by /test.
const maxDiagnosticCollections = 10

type HealthService struct {
	Client   *mongo.Client
	Database *mongo.Database
	URISet   bool
}

// Diagnostic is the /test response body. Every field is best-effort; the probe
// never raises.
type Diagnostic struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

var HealthServiceTracer = otel.Tracer("HealthService")

func NewHealthService(client *mongo.Client, db *mongo.Database, uriSet bool) *HealthService {
	return &HealthService{
		Client:   client,
		Database: db,
		URISet:   uriSet,
	}
}

// Check probes the store connection. All failures are caught and folded into
// the returned status strings, truncated so driver messages stay short.
func (s *HealthService) Check(ctx context.Context) Diagnostic {
	ctx, span := HealthServiceTracer.Start(ctx, "HealthService.Check")
	defer span.End()
	logger.Info(ctx, "Service")

	diag := Diagnostic{
		Backend:          "running",
		Database:         "not available",
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}
	if s.URISet {
		diag.DatabaseURL = "set"
	} else {
		diag.DatabaseURL = "not set"
	}

	if s.Client == nil || s.Database == nil {
		diag.Database = "available but not initialized"
		return diag
	}

	probeCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := s.Client.Ping(probeCtx, nil); err != nil {
		diag.Database = "error: " + utils.Truncate(err.Error(), maxDiagnosticErrLen)
		return diag
	}

	diag.Database = "connected"
	diag.DatabaseName = s.Database.Name()
	diag.ConnectionStatus = "connected"

	names, err := s.Database.ListCollectionNames(probeCtx, bson.M{})
	if err != nil {
		diag.Database = "connected but error: " + utils.Truncate(err.Error(), maxDiagnosticErrLen)
		return diag
	}
	if len(names) > maxDiagnosticCollections {
		names = names[:maxDiagnosticCollections]
	}
	diag.Collections = names

	return diag
}
