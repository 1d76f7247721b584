package ds

import "time"

// 2. Таблица сценариев (сохранённые расчёты туров)
type Scenario struct {
	ID           uint      `gorm:"primaryKey"`
	UserID       uint      `gorm:"not null;index"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Days         int       `gorm:"type:int;not null;default:1"`
	Participants int       `gorm:"type:int;not null;default:1"`
	Singles      int       `gorm:"type:int;not null;default:0"` // одноместные размещения
	Description  string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`

	User User `gorm:"foreignKey:UserID"`
}
