package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"tabadigit-esl/internal/config"
	"tabadigit-esl/internal/database"
	handler "tabadigit-esl/internal/handler/http"
	"tabadigit-esl/internal/logger"
	middleware_http "tabadigit-esl/internal/middleware/http"
	"tabadigit-esl/internal/repository"
	"tabadigit-esl/internal/service"
	"tabadigit-esl/internal/tracer"
	"tabadigit-esl/internal/version"
)

func main() {
	globalCtx := context.Background()
	log := logger.Instance()
	cfg := config.Instance()

	log.Info(cfg.AppName,
		slog.String("version", version.Version),
		slog.String("commit", version.Commit),
		slog.String("buildTime", version.BuildTime),
	)

	// Telemetry (OpenTelemetry + Pyroscope), both optional
	shutdown, _ := tracer.Instance(globalCtx)
	defer shutdown()

	// Connect to MongoDB
	db, err := database.Instance(globalCtx, cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		log.Error("Failed to connect to MongoDB", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Wiring
	productRepo := repository.NewProductRepository(db.Database)
	labelRepo := repository.NewLabelRepository(db.Database)
	priceUpdateRepo := repository.NewPriceUpdateRepository(db.Database)

	productService := service.NewProductService(productRepo)
	labelService := service.NewLabelService(labelRepo)
	priceUpdateService := service.NewPriceUpdateService(priceUpdateRepo, productRepo)
	healthService := service.NewHealthService(db.Client, db.Database, cfg.MongoURI != "")

	productHandler := handler.NewProductHandler(productService)
	labelHandler := handler.NewLabelHandler(labelService)
	priceUpdateHandler := handler.NewPriceUpdateHandler(priceUpdateService)
	healthHandler := handler.NewHealthHandler(cfg.AppName, healthService)

	// Routing
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", healthHandler.Root)
	mux.HandleFunc("GET /test", healthHandler.Test)
	mux.HandleFunc("GET /schema", healthHandler.Schema)

	mux.HandleFunc("POST /api/products", productHandler.Create)
	mux.HandleFunc("POST /api/products/bulk", productHandler.CreateBulk)
	mux.HandleFunc("GET /api/products", productHandler.List)
	mux.HandleFunc("PATCH /api/products/{id}", productHandler.Update)
	mux.HandleFunc("DELETE /api/products/{id}", productHandler.Delete)

	mux.HandleFunc("POST /api/labels", labelHandler.Create)
	mux.HandleFunc("GET /api/labels", labelHandler.List)
	mux.HandleFunc("PATCH /api/labels/{id}", labelHandler.Update)

	mux.HandleFunc("POST /api/price-updates", priceUpdateHandler.Create)
	mux.HandleFunc("GET /api/price-updates", priceUpdateHandler.List)

	// HTTP server
	wrappedMux := middleware_http.CORSMiddleware(middleware_http.TraceMiddleware(globalCtx)(mux))
	server := &http.Server{
		Addr:         ":" + cfg.AppPort,
		Handler:      wrappedMux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("HTTP server running", slog.String("addr", server.Addr))

	if err := server.ListenAndServe(); err != nil {
		log.Error("Server failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
