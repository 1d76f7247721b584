package repository

import (
	"errors"
	"time"

	"tourquote/internal/app/calc"
	"tourquote/internal/app/ds"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Наценка агента хранится единственной записью с фиксированным ключом.
// Запись создаётся идемпотентным upsert, дублей быть не может.

// Получить текущий процент наценки (0, если ещё не задан)
func (r *Repository) GetAgentMarkupPercent() (float64, error) {
	var settings ds.Settings
	err := r.db.Where("key = ?", ds.AgentMarkupKey).First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return settings.Value, nil
}

// Установить процент наценки (с ограничением диапазона)
func (r *Repository) SetAgentMarkupPercent(percent float64) (float64, error) {
	percent = calc.ClampMarkupPercent(percent)

	settings := ds.Settings{
		Key:       ds.AgentMarkupKey,
		Value:     percent,
		UpdatedAt: time.Now(),
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&settings).Error
	if err != nil {
		return 0, err
	}
	return percent, nil
}
