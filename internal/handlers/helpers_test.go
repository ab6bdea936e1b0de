package handlers_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"PifKeeper/internal/config"
	"PifKeeper/internal/handlers"
	"PifKeeper/internal/middleware"
	"PifKeeper/internal/repo"
	"PifKeeper/internal/service"

	"go.uber.org/zap"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// newTestRouter собирает роутер поверх изолированной in-memory SQLite.
func newTestRouter(t *testing.T) (http.Handler, *config.Config) {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: "file:" + name + "?mode=memory&cache=shared"}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	if err := repo.Migrate(db); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}
	cfg := &config.Config{AuthSecret: "test-secret"}
	logger := zap.NewNop().Sugar()
	svc := service.NewImportService(repo.NewImportLogRepository(db), logger)
	return handlers.NewHandler(svc, logger, cfg).Router, cfg
}

func addAuth(t *testing.T, req *http.Request, subject, secret string) {
	t.Helper()
	tok, err := middleware.BuildToken(subject, secret, time.Hour)
	if err != nil {
		t.Fatalf("BuildToken: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+tok)
}
