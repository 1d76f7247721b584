package repository

import (
	"errors"
	"fmt"

	"tourquote/internal/app/ds"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Типизированные ошибки хранилища - обработчики превращают их в коды ответов
var (
	ErrNotFound   = errors.New("запись не найдена")
	ErrValidation = errors.New("некорректные данные")
)

type Repository struct {
	db *gorm.DB
}

func New(dsn string) (*Repository, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Автоматическая миграция всех таблиц
	err = db.AutoMigrate(
		&ds.User{},
		&ds.Service{},
		&ds.Scenario{},
		&ds.ScenarioItem{},
		&ds.Settings{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Repository{
		db: db,
	}, nil
}

// NewWithDB оборачивает готовое подключение (используется в тестах с sqlite)
func NewWithDB(db *gorm.DB) *Repository {
	return &Repository{db: db}
}
