package repo

import (
	"strings"

	"PifKeeper/internal/model"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// memoryDSN - in-memory SQLite (modernc.org/sqlite), используется при пустой строке подключения.
const memoryDSN = "file::memory:?cache=shared"

// InitDB открывает БД по строке подключения и выполняет миграции моделей.
// Пустая строка - SQLite в памяти, postgres:// или "host=..." - PostgreSQL,
// остальное трактуется как путь к файлу SQLite.
func InitDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(dialectorFor(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate создаёт/обновляет таблицы серверных моделей.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.ImportLog{}, &model.ImportedEntry{})
}

func dialectorFor(dsn string) gorm.Dialector {
	switch {
	case dsn == "":
		return gormsqlite.Dialector{DriverName: "sqlite", DSN: memoryDSN}
	case isPostgresDSN(dsn):
		return postgres.Open(dsn)
	default:
		return gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	}
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=")
}
