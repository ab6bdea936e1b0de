package handlers

import (
	"PifKeeper/internal/config"
	"PifKeeper/internal/middleware"
	"PifKeeper/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	importService *service.ImportService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	importHandler := NewImportHandler(importService, logger, config)

	// Import routes
	r.Post("/api/import", importHandler.Import)
	r.Get("/api/imports", importHandler.List)
	r.Get("/api/imports/{id}/entries", importHandler.Entries)

	return &Handler{Router: r}
}
