package service

import (
	"context"

	"PifKeeper/internal/cli/model"
	view "PifKeeper/internal/cli/model/view"
	"PifKeeper/internal/vault"
)

// VaultService описывает юзкейс-уровень работы с локальным хранилищем импортов для CLI.
type VaultService interface {
	// Import сохраняет дерево, полученное из архива source. Возвращает сведения об импорте.
	Import(ctx context.Context, source string, root *vault.Node) (model.Import, error)

	// List возвращает все записи (без секретов).
	List(ctx context.Context) ([]model.Entry, error)

	// Get возвращает запись по id (DTO с расшифрованными полями).
	Get(ctx context.Context, id string) (*view.DecryptedEntry, error)
}
