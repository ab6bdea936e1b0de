package bootstrap

import (
	"fmt"

	"PifKeeper/internal/cli/crypto"
	reposqlite "PifKeeper/internal/cli/repo/sqlite"
	"PifKeeper/internal/cli/service"
	"PifKeeper/internal/config"
	"PifKeeper/internal/onepif"

	"go.uber.org/zap"
)

// OpenVault открывает локальное хранилище в cfg.ClientDBPath, выполняет миграции,
// загружает ключ шифрования и возвращает (service, cleanup, error).
// cleanup необходимо вызвать после окончания работы, чтобы закрыть соединение с БД.
func OpenVault(cfg *config.Config) (service.VaultService, func() error, error) {
	r, _, err := reposqlite.Open(cfg.ClientDBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open vault db: %w", err)
	}
	if err := r.Migrate(); err != nil {
		_ = r.Close()
		return nil, nil, fmt.Errorf("migrate vault db: %w", err)
	}
	key, err := crypto.LoadOrCreateKey(cfg.ClientDBPath)
	if err != nil {
		_ = r.Close()
		return nil, nil, fmt.Errorf("load vault key: %w", err)
	}
	cleanup := func() error { return r.Close() }
	return service.NewVaultServiceLocal(r, key), cleanup, nil
}

// NewLogger возвращает логгер CLI: development-логгер при -v, иначе no-op.
func NewLogger(cfg *config.Config) *zap.SugaredLogger {
	if !cfg.Verbose {
		return zap.NewNop().Sugar()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return logger.Sugar()
}

// NewImporter собирает конвертер 1PIF с логгером и режимом строгих типов из конфигурации.
func NewImporter(cfg *config.Config) *onepif.Importer {
	return onepif.NewImporter(
		onepif.WithLogger(NewLogger(cfg)),
		onepif.WithStrictTypes(cfg.StrictTypes),
	)
}
