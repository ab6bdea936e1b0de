package main

import (
	"fmt"
	"net/http"

	"PifKeeper/internal/config"
	"PifKeeper/internal/handlers"
	"PifKeeper/internal/middleware"
	"PifKeeper/internal/repo"
	"PifKeeper/internal/service"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// -issue-token: печатаем подписанный токен и выходим
	if cfg.IssueToken != "" {
		token, err := middleware.BuildToken(cfg.IssueToken, cfg.AuthSecret, middleware.TokenTTL)
		if err != nil {
			panic(err)
		}
		fmt.Println(token)
		return
	}

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	importRepo := repo.NewImportLogRepository(gormDB)
	importService := service.NewImportService(importRepo, sugar)

	h := handlers.NewHandler(importService, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"DatabaseDSN", cfg.DatabaseDSN != "",
		"StrictTypes", cfg.StrictTypes,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
