package repo

import (
	"context"

	"PifKeeper/internal/model"

	"gorm.io/gorm"
)

// ImportLogRepository хранит историю серверных импортов.
type ImportLogRepository interface {
	// Create сохраняет запись об импорте вместе со сводкой записей.
	Create(ctx context.Context, log *model.ImportLog) error

	// ListBySubject возвращает импорты субъекта, новые первыми.
	ListBySubject(ctx context.Context, subject string) ([]model.ImportLog, error)

	// GetEntries возвращает сводку записей импорта id, если он принадлежит субъекту.
	GetEntries(ctx context.Context, subject, id string) ([]model.ImportedEntry, error)
}

type importLogRepo struct {
	db *gorm.DB
}

// NewImportLogRepository создаёт реализацию репозитория истории импортов.
func NewImportLogRepository(db *gorm.DB) ImportLogRepository {
	return &importLogRepo{db: db}
}

func (r *importLogRepo) Create(ctx context.Context, log *model.ImportLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *importLogRepo) ListBySubject(ctx context.Context, subject string) ([]model.ImportLog, error) {
	var logs []model.ImportLog
	err := r.db.WithContext(ctx).
		Where("subject = ?", subject).
		Order("created_at DESC").Order("id").
		Find(&logs).Error
	return logs, err
}

func (r *importLogRepo) GetEntries(ctx context.Context, subject, id string) ([]model.ImportedEntry, error) {
	var log model.ImportLog
	err := r.db.WithContext(ctx).
		Preload("Entries", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Where("id = ? AND subject = ?", id, subject).
		First(&log).Error
	if err != nil {
		return nil, err
	}
	return log.Entries, nil
}
