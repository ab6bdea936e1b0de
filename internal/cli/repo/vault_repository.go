package repo

import (
	"context"

	"PifKeeper/internal/cli/model"
)

// VaultRepository определяет порт доступа к локальному хранилищу импортированных записей.
type VaultRepository interface {
	// SaveImport атомарно сохраняет импорт вместе с группами и записями.
	SaveImport(ctx context.Context, imp model.Import, groups []model.Group, entries []model.Entry) error

	// ListImports возвращает импорты, новые первыми.
	ListImports(ctx context.Context) ([]model.Import, error)

	// ListEntries возвращает записи без секретов, пользовательских полей и вложений.
	ListEntries(ctx context.Context) ([]model.Entry, error)

	// GetEntry возвращает запись целиком по id.
	GetEntry(ctx context.Context, id string) (*model.Entry, error)
}
