package ds

import "time"

// 5. Таблица настроек - единственная логическая запись с наценкой агента
type Settings struct {
	Key       string    `gorm:"type:varchar(50);primaryKey"`
	Value     float64   `gorm:"type:decimal(8,2);not null;default:0"`
	UpdatedAt time.Time `gorm:"not null"`
}

// Ключ единственной авторитетной записи настроек
const AgentMarkupKey = "agent_markup_percent"
